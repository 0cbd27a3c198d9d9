package registry

import (
	"fmt"
	"iter"

	apperrors "github.com/allexsabbir/uiu-ums-go/internal/errors"
	"github.com/allexsabbir/uiu-ums-go/internal/records"
	"github.com/allexsabbir/uiu-ums-go/internal/recordstore"
)

// FacultyRepo stores faculty members keyed by unique ID.
type FacultyRepo struct {
	store *recordstore.Store[records.Faculty]
}

func byFacultyID(id string) func(records.Faculty) bool {
	return func(f records.Faculty) bool { return f.ID == id }
}

// Insert appends a new faculty member, rejecting duplicate IDs.
func (r *FacultyRepo) Insert(f records.Faculty) error {
	if err := records.Validate(f); err != nil {
		return err
	}
	if _, _, err := r.store.FindFirst(byFacultyID(f.ID)); err == nil {
		return fmt.Errorf("faculty %s: %w", f.ID, apperrors.ErrDuplicateKey)
	} else if !apperrors.IsNotFound(err) {
		return err
	}
	_, err := r.store.Append(f)
	return err
}

// FindByID returns the faculty member with the given ID, or ErrNotFound.
func (r *FacultyRepo) FindByID(id string) (records.Faculty, error) {
	_, f, err := r.store.FindFirst(byFacultyID(id))
	if apperrors.IsNotFound(err) {
		return records.Faculty{}, fmt.Errorf("faculty %s: %w", id, apperrors.ErrNotFound)
	}
	return f, err
}

// FacultyPatch holds the editable faculty fields; empty means "keep".
type FacultyPatch struct {
	Name       string
	Department string
	Email      string
}

// Update applies the patch to the faculty member with the given ID in place.
func (r *FacultyRepo) Update(id string, patch FacultyPatch) error {
	idx, f, err := r.store.FindFirst(byFacultyID(id))
	if apperrors.IsNotFound(err) {
		return fmt.Errorf("faculty %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return err
	}

	if patch.Name != "" {
		f.Name = patch.Name
	}
	if patch.Department != "" {
		f.Department = patch.Department
	}
	if patch.Email != "" {
		f.Email = patch.Email
	}

	if err := records.Validate(f); err != nil {
		return err
	}
	return r.store.WriteAt(idx, f)
}

// All iterates faculty in file order.
func (r *FacultyRepo) All() iter.Seq[records.Faculty] {
	return func(yield func(records.Faculty) bool) {
		for _, f := range r.store.All() {
			if !yield(f) {
				return
			}
		}
	}
}

// Count returns the number of faculty records.
func (r *FacultyRepo) Count() int64 {
	return r.store.Count()
}
