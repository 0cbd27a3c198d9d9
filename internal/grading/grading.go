// Package grading maps letter grades to grade points on a 4.0 scale.
// The "NA" sentinel marks an enrollment without a result yet: it is valid
// input but carries no point value and is excluded from every weighted
// average.
package grading

import (
	"fmt"
	"strings"

	apperrors "github.com/allexsabbir/uiu-ums-go/internal/errors"
)

// Ungraded is the sentinel grade for enrollments without a result yet.
const Ungraded = "NA"

// points holds the closed grade-letter set on the 4.0 scale.
var points = map[string]float64{
	"A":  4.00,
	"A-": 3.70,
	"B+": 3.30,
	"B":  3.00,
	"B-": 2.70,
	"C+": 2.30,
	"C":  2.00,
	"C-": 1.70,
	"D":  1.00,
	"F":  0.00,
}

// Letters lists the valid grade letters in descending point order,
// for prompts and documentation.
func Letters() []string {
	return []string{"A", "A-", "B+", "B", "B-", "C+", "C", "C-", "D", "F"}
}

// Normalize trims and upper-cases a grade string before lookup.
func Normalize(grade string) string {
	return strings.ToUpper(strings.TrimSpace(grade))
}

// Validate reports whether a normalized grade may be persisted:
// a member of the letter set or the ungraded sentinel.
func Validate(grade string) error {
	if grade == Ungraded {
		return nil
	}
	if _, ok := points[grade]; !ok {
		return fmt.Errorf("grade %q: %w", grade, apperrors.ErrInvalidGrade)
	}
	return nil
}

// Points returns the point value of a normalized letter grade.
// The ungraded sentinel yields ErrUngraded and anything outside the
// letter set yields ErrInvalidGrade; callers computing weighted
// averages skip both.
func Points(grade string) (float64, error) {
	if grade == Ungraded {
		return 0, apperrors.ErrUngraded
	}
	pts, ok := points[grade]
	if !ok {
		return 0, fmt.Errorf("grade %q: %w", grade, apperrors.ErrInvalidGrade)
	}
	return pts, nil
}
