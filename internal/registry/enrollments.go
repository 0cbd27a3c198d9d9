package registry

import (
	"fmt"
	"iter"

	apperrors "github.com/allexsabbir/uiu-ums-go/internal/errors"
	"github.com/allexsabbir/uiu-ums-go/internal/grading"
	"github.com/allexsabbir/uiu-ums-go/internal/records"
	"github.com/allexsabbir/uiu-ums-go/internal/recordstore"
)

// EnrollmentRepo stores enrollments keyed by the composite
// (student, course, term).
type EnrollmentRepo struct {
	store *recordstore.Store[records.Enrollment]
}

// EnrollmentKey is the unique composite key of an enrollment.
type EnrollmentKey struct {
	StudentID  string
	CourseCode string
	Term       string
}

func (k EnrollmentKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.StudentID, k.CourseCode, k.Term)
}

func byEnrollmentKey(k EnrollmentKey) func(records.Enrollment) bool {
	return func(e records.Enrollment) bool {
		return e.StudentID == k.StudentID && e.CourseCode == k.CourseCode && e.Term == k.Term
	}
}

// Enroll appends a new ungraded enrollment. Re-enrolling the same
// (student, course, term) triple is rejected with ErrDuplicateKey.
func (r *EnrollmentRepo) Enroll(studentID, courseCode, term string) error {
	e := records.Enrollment{
		StudentID:  studentID,
		CourseCode: courseCode,
		Term:       term,
		Grade:      grading.Ungraded,
	}
	if err := records.Validate(e); err != nil {
		return err
	}

	key := EnrollmentKey{StudentID: studentID, CourseCode: courseCode, Term: term}
	if _, _, err := r.store.FindFirst(byEnrollmentKey(key)); err == nil {
		return fmt.Errorf("enrollment %s: %w", key, apperrors.ErrDuplicateKey)
	} else if !apperrors.IsNotFound(err) {
		return err
	}
	_, err := r.store.Append(e)
	return err
}

// Find returns the enrollment with the given composite key, or ErrNotFound.
func (r *EnrollmentRepo) Find(key EnrollmentKey) (records.Enrollment, error) {
	_, e, err := r.store.FindFirst(byEnrollmentKey(key))
	if apperrors.IsNotFound(err) {
		return records.Enrollment{}, fmt.Errorf("enrollment %s: %w", key, apperrors.ErrNotFound)
	}
	return e, err
}

// SetGrade normalizes and validates the grade, then overwrites the
// enrollment in place. Invalid grades are rejected before anything is
// persisted; assigning the ungraded sentinel clears a grade.
func (r *EnrollmentRepo) SetGrade(key EnrollmentKey, grade string) error {
	grade = grading.Normalize(grade)
	if err := grading.Validate(grade); err != nil {
		return err
	}

	idx, e, err := r.store.FindFirst(byEnrollmentKey(key))
	if apperrors.IsNotFound(err) {
		return fmt.Errorf("enrollment %s: %w", key, apperrors.ErrNotFound)
	}
	if err != nil {
		return err
	}

	e.Grade = grade
	return r.store.WriteAt(idx, e)
}

// All iterates enrollments in file order. Scan order is load-bearing: the
// reporting engine's row order and leaderboard tie-breaking follow it.
func (r *EnrollmentRepo) All() iter.Seq[records.Enrollment] {
	return func(yield func(records.Enrollment) bool) {
		for _, e := range r.store.All() {
			if !yield(e) {
				return
			}
		}
	}
}

// Count returns the number of enrollment records.
func (r *EnrollmentRepo) Count() int64 {
	return r.store.Count()
}
