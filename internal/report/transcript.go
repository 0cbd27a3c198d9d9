package report

import (
	apperrors "github.com/allexsabbir/uiu-ums-go/internal/errors"
	"github.com/allexsabbir/uiu-ums-go/internal/grading"
)

// TranscriptRow is one enrollment joined with its course.
type TranscriptRow struct {
	CourseCode  string
	CourseTitle string
	Term        string
	Credit      float64
	Grade       string
	Points      float64 // meaningful only when Graded
	Graded      bool
}

// Transcript is a student's full enrollment history with the
// credit-weighted CGPA over graded rows.
type Transcript struct {
	StudentID     string
	Rows          []TranscriptRow
	CGPA          float64 // meaningful only when GradedCredits > 0
	GradedCredits float64
}

// HasGPA reports whether any graded credits exist. A transcript of only
// ungraded enrollments has no CGPA rather than a CGPA of zero.
func (t *Transcript) HasGPA() bool {
	return t.GradedCredits > 0
}

// Transcript scans every enrollment for the student, joins each with its
// course and accumulates points*credit over graded rows. Enrollments whose
// course cannot be resolved are skipped without counting; row order is
// enrollment scan order.
func (e *Engine) Transcript(studentID string) (*Transcript, error) {
	t := &Transcript{StudentID: studentID}
	var totalPoints float64

	for enr := range e.enrollments.All() {
		if enr.StudentID != studentID {
			continue
		}

		course, err := e.courses.FindByCode(enr.CourseCode)
		if apperrors.IsNotFound(err) {
			e.log.Warn("enrollment references unknown course",
				"student_id", studentID,
				"course_code", enr.CourseCode,
				"term", enr.Term)
			continue
		}
		if err != nil {
			return nil, err
		}

		row := TranscriptRow{
			CourseCode:  course.Code,
			CourseTitle: course.Title,
			Term:        enr.Term,
			Credit:      course.Credit,
			Grade:       enr.Grade,
		}
		if pts, err := grading.Points(enr.Grade); err == nil {
			row.Points = pts
			row.Graded = true
			totalPoints += pts * course.Credit
			t.GradedCredits += course.Credit
		}
		t.Rows = append(t.Rows, row)
	}

	if t.GradedCredits > 0 {
		t.CGPA = totalPoints / t.GradedCredits
	}
	return t, nil
}
