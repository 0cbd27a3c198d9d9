package report

import (
	apperrors "github.com/allexsabbir/uiu-ums-go/internal/errors"
)

// RosterRow is one enrolled student with their current grade.
type RosterRow struct {
	StudentID string
	Name      string
	Grade     string
}

// Roster lists the students enrolled in one course offering within one
// term. An empty Rows slice means "no students enrolled" for a course
// that does exist.
type Roster struct {
	CourseCode  string
	CourseTitle string
	Term        string
	Rows        []RosterRow
}

// Roster scans enrollments for an exact (course, term) match and joins
// each with the student record. An unknown course yields ErrNotFound so
// callers can tell "course does not exist" apart from an empty roster;
// enrollments whose student record is missing are skipped silently.
func (e *Engine) Roster(courseCode, term string) (*Roster, error) {
	course, err := e.courses.FindByCode(courseCode)
	if err != nil {
		return nil, err
	}

	roster := &Roster{CourseCode: course.Code, CourseTitle: course.Title, Term: term}
	for enr := range e.enrollments.All() {
		if enr.CourseCode != courseCode || enr.Term != term {
			continue
		}

		student, err := e.students.FindByID(enr.StudentID)
		if apperrors.IsNotFound(err) {
			e.log.Warn("enrollment references unknown student",
				"student_id", enr.StudentID,
				"course_code", courseCode,
				"term", term)
			continue
		}
		if err != nil {
			return nil, err
		}

		roster.Rows = append(roster.Rows, RosterRow{
			StudentID: student.ID,
			Name:      student.Name,
			Grade:     enr.Grade,
		})
	}
	return roster, nil
}
