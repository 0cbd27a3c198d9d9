package console

import (
	"fmt"

	apperrors "github.com/allexsabbir/uiu-ums-go/internal/errors"
	"github.com/allexsabbir/uiu-ums-go/internal/logger"
	"github.com/allexsabbir/uiu-ums-go/internal/records"
	"github.com/allexsabbir/uiu-ums-go/internal/registry"
)

func enrollmentKey(studentID, code, term string) registry.EnrollmentKey {
	return registry.EnrollmentKey{StudentID: studentID, CourseCode: code, Term: term}
}

func (c *Console) facultyMenu(log *logger.Logger, user records.User) {
	for {
		fmt.Fprint(c.out, `
==== FACULTY MENU ====
1. List My Courses
2. View Roster for a Course+Term
3. Enter/Update Grade
0. Logout
`)
		choice, ok := c.promptInt("Choose: ")
		if !ok || choice == 0 {
			return
		}

		switch choice {
		case 1:
			c.listMyCourses(user.RefID)
		case 2:
			c.facultyRoster(log, user.RefID)
		case 3:
			c.facultySetGrade(log, user.RefID)
		default:
			fmt.Fprintln(c.out, "Invalid choice.")
		}
	}
}

func (c *Console) listMyCourses(facultyID string) {
	any := false
	for course := range c.reg.Courses.ByInstructor(facultyID) {
		c.printCourse(course)
		any = true
	}
	if !any {
		fmt.Fprintln(c.out, "No assigned courses.")
	}
}

// ownsCourse gates roster and grading on the logged-in faculty being the
// course's instructor of record.
func (c *Console) ownsCourse(log *logger.Logger, code, facultyID string) bool {
	course, err := c.reg.Courses.FindByCode(code)
	if apperrors.IsNotFound(err) || (err == nil && course.InstructorID != facultyID) {
		fmt.Fprintln(c.out, "You are not the instructor of this course.")
		return false
	}
	if err != nil {
		c.printError(log, err)
		return false
	}
	return true
}

func (c *Console) facultyRoster(log *logger.Logger, facultyID string) {
	code, ok := c.promptRequired("Course code: ")
	if !ok {
		return
	}
	term, ok := c.promptRequired("Term: ")
	if !ok {
		return
	}
	if !c.ownsCourse(log, code, facultyID) {
		return
	}

	roster, err := c.reports.Roster(code, term)
	if err != nil {
		c.printError(log, err)
		return
	}
	c.printRoster(roster)
}

func (c *Console) facultySetGrade(log *logger.Logger, facultyID string) {
	code, ok := c.promptRequired("Course code: ")
	if !ok {
		return
	}
	term, ok := c.promptRequired("Term: ")
	if !ok {
		return
	}
	if !c.ownsCourse(log, code, facultyID) {
		return
	}
	studentID, ok := c.promptRequired("Student ID: ")
	if !ok {
		return
	}

	key := enrollmentKey(studentID, code, term)
	if _, err := c.reg.Enrollments.Find(key); err != nil {
		c.printError(log, err)
		return
	}
	c.setGradeForKey(log, key)
}
