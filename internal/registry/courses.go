package registry

import (
	"fmt"
	"iter"

	apperrors "github.com/allexsabbir/uiu-ums-go/internal/errors"
	"github.com/allexsabbir/uiu-ums-go/internal/records"
	"github.com/allexsabbir/uiu-ums-go/internal/recordstore"
)

// CourseRepo stores course offerings keyed by unique code.
type CourseRepo struct {
	store *recordstore.Store[records.Course]
}

func byCourseCode(code string) func(records.Course) bool {
	return func(c records.Course) bool { return c.Code == code }
}

// Insert appends a new course, rejecting duplicate codes.
func (r *CourseRepo) Insert(c records.Course) error {
	if err := records.Validate(c); err != nil {
		return err
	}
	if _, _, err := r.store.FindFirst(byCourseCode(c.Code)); err == nil {
		return fmt.Errorf("course %s: %w", c.Code, apperrors.ErrDuplicateKey)
	} else if !apperrors.IsNotFound(err) {
		return err
	}
	_, err := r.store.Append(c)
	return err
}

// FindByCode returns the course with the given code, or ErrNotFound.
func (r *CourseRepo) FindByCode(code string) (records.Course, error) {
	_, c, err := r.store.FindFirst(byCourseCode(code))
	if apperrors.IsNotFound(err) {
		return records.Course{}, fmt.Errorf("course %s: %w", code, apperrors.ErrNotFound)
	}
	return c, err
}

// AssignInstructor points the course's instructor reference at a faculty
// ID. The reference is weak: whether the faculty exists is the caller's
// concern, matching the no-integrity contract of the field.
func (r *CourseRepo) AssignInstructor(code, facultyID string) error {
	idx, c, err := r.store.FindFirst(byCourseCode(code))
	if apperrors.IsNotFound(err) {
		return fmt.Errorf("course %s: %w", code, apperrors.ErrNotFound)
	}
	if err != nil {
		return err
	}

	c.InstructorID = facultyID
	if err := records.Validate(c); err != nil {
		return err
	}
	return r.store.WriteAt(idx, c)
}

// ByInstructor iterates the courses taught by the given faculty ID, in
// file order.
func (r *CourseRepo) ByInstructor(facultyID string) iter.Seq[records.Course] {
	return func(yield func(records.Course) bool) {
		for _, c := range r.store.All() {
			if c.InstructorID != facultyID {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// All iterates courses in file order.
func (r *CourseRepo) All() iter.Seq[records.Course] {
	return func(yield func(records.Course) bool) {
		for _, c := range r.store.All() {
			if !yield(c) {
				return
			}
		}
	}
}

// Count returns the number of course records.
func (r *CourseRepo) Count() int64 {
	return r.store.Count()
}
