package registry

import (
	"fmt"
	"iter"

	apperrors "github.com/allexsabbir/uiu-ums-go/internal/errors"
	"github.com/allexsabbir/uiu-ums-go/internal/records"
	"github.com/allexsabbir/uiu-ums-go/internal/recordstore"
)

// StudentRepo stores students keyed by unique ID.
type StudentRepo struct {
	store *recordstore.Store[records.Student]
}

func byStudentID(id string) func(records.Student) bool {
	return func(s records.Student) bool { return s.ID == id }
}

// Insert appends a new student. An existing record with the same ID wins:
// the insert is rejected with ErrDuplicateKey and the store is unchanged.
func (r *StudentRepo) Insert(s records.Student) error {
	if err := records.Validate(s); err != nil {
		return err
	}
	if _, _, err := r.store.FindFirst(byStudentID(s.ID)); err == nil {
		return fmt.Errorf("student %s: %w", s.ID, apperrors.ErrDuplicateKey)
	} else if !apperrors.IsNotFound(err) {
		return err
	}
	_, err := r.store.Append(s)
	return err
}

// FindByID returns the student with the given ID, or ErrNotFound.
func (r *StudentRepo) FindByID(id string) (records.Student, error) {
	_, s, err := r.store.FindFirst(byStudentID(id))
	if apperrors.IsNotFound(err) {
		return records.Student{}, fmt.Errorf("student %s: %w", id, apperrors.ErrNotFound)
	}
	return s, err
}

// StudentPatch holds the editable student fields. An empty string (or nil
// Batch) means "keep the prior value", never "clear"; the ID is the key
// and cannot change.
type StudentPatch struct {
	Name       string
	Department string
	Email      string
	Batch      *int
}

// Update applies the patch to the student with the given ID in place.
func (r *StudentRepo) Update(id string, patch StudentPatch) error {
	idx, s, err := r.store.FindFirst(byStudentID(id))
	if apperrors.IsNotFound(err) {
		return fmt.Errorf("student %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return err
	}

	if patch.Name != "" {
		s.Name = patch.Name
	}
	if patch.Department != "" {
		s.Department = patch.Department
	}
	if patch.Email != "" {
		s.Email = patch.Email
	}
	if patch.Batch != nil {
		s.Batch = *patch.Batch
	}

	if err := records.Validate(s); err != nil {
		return err
	}
	return r.store.WriteAt(idx, s)
}

// All iterates students in file order (== insertion order). The sequence
// is single-use and undefined if the store is mutated mid-scan.
func (r *StudentRepo) All() iter.Seq[records.Student] {
	return func(yield func(records.Student) bool) {
		for _, s := range r.store.All() {
			if !yield(s) {
				return
			}
		}
	}
}

// Count returns the number of student records.
func (r *StudentRepo) Count() int64 {
	return r.store.Count()
}
