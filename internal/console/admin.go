package console

import (
	"fmt"

	apperrors "github.com/allexsabbir/uiu-ums-go/internal/errors"
	"github.com/allexsabbir/uiu-ums-go/internal/logger"
	"github.com/allexsabbir/uiu-ums-go/internal/records"
	"github.com/allexsabbir/uiu-ums-go/internal/registry"
)

func (c *Console) adminMenu(log *logger.Logger) {
	for {
		fmt.Fprint(c.out, `
==== ADMIN MENU ====
 1. Add Student
 2. Edit Student
 3. List Students
 4. Add Faculty
 5. List Faculty
 6. Add Course
 7. Assign Instructor to Course
 8. List Courses
 9. Enroll Student in Course
10. Set/Update Grade
11. Transcript (by Student ID)
12. Course Roster (code+term)
13. Term GPA Leaderboard
 0. Logout
`)
		choice, ok := c.promptInt("Choose: ")
		if !ok || choice == 0 {
			return
		}

		switch choice {
		case 1:
			c.addStudent(log)
		case 2:
			c.editStudent(log)
		case 3:
			c.listStudents()
		case 4:
			c.addFaculty(log)
		case 5:
			c.listFaculty()
		case 6:
			c.addCourse(log)
		case 7:
			c.assignInstructor(log)
		case 8:
			c.listCourses()
		case 9:
			c.enrollStudent(log)
		case 10:
			c.setGradeUnchecked(log)
		case 11:
			c.transcriptPrompt(log)
		case 12:
			c.rosterPrompt(log)
		case 13:
			c.leaderboardPrompt(log)
		default:
			fmt.Fprintln(c.out, "Invalid choice.")
		}
	}
}

func (c *Console) addStudent(log *logger.Logger) {
	id, ok := c.promptRequired("Student ID: ")
	if !ok {
		return
	}
	name, ok := c.promptRequired("Name: ")
	if !ok {
		return
	}
	dept, ok := c.promptRequired("Dept (EEE/CSE...): ")
	if !ok {
		return
	}
	batch, ok := c.promptInt("Batch (e.g., 241): ")
	if !ok {
		return
	}
	email, ok := c.readLine("Email (optional): ")
	if !ok {
		return
	}

	err := c.reg.Students.Insert(records.Student{
		ID:         id,
		Name:       name,
		Department: dept,
		Batch:      batch,
		Email:      email,
	})
	if err != nil {
		c.printError(log, err)
		return
	}
	log.Info("student added", "student_id", id)
	fmt.Fprintln(c.out, "Student added.")
}

func (c *Console) editStudent(log *logger.Logger) {
	id, ok := c.promptRequired("Enter Student ID to edit: ")
	if !ok {
		return
	}
	s, err := c.reg.Students.FindByID(id)
	if err != nil {
		c.printError(log, err)
		return
	}
	c.printStudent(s)
	fmt.Fprintln(c.out, "Leave a field blank to keep the existing value.")

	name, ok := c.readLine("New name: ")
	if !ok {
		return
	}
	dept, ok := c.readLine("New dept: ")
	if !ok {
		return
	}
	email, ok := c.readLine("New email: ")
	if !ok {
		return
	}
	batch, ok := c.promptOptionalInt("New batch (blank to keep): ")
	if !ok {
		return
	}

	err = c.reg.Students.Update(id, registry.StudentPatch{
		Name:       name,
		Department: dept,
		Email:      email,
		Batch:      batch,
	})
	if err != nil {
		c.printError(log, err)
		return
	}
	log.Info("student updated", "student_id", id)
	fmt.Fprintln(c.out, "Updated.")
}

func (c *Console) addFaculty(log *logger.Logger) {
	id, ok := c.promptRequired("Faculty ID: ")
	if !ok {
		return
	}
	name, ok := c.promptRequired("Name: ")
	if !ok {
		return
	}
	dept, ok := c.promptRequired("Dept: ")
	if !ok {
		return
	}
	email, ok := c.readLine("Email (optional): ")
	if !ok {
		return
	}

	err := c.reg.Faculty.Insert(records.Faculty{
		ID:         id,
		Name:       name,
		Department: dept,
		Email:      email,
	})
	if err != nil {
		c.printError(log, err)
		return
	}
	log.Info("faculty added", "faculty_id", id)
	fmt.Fprintln(c.out, "Faculty added.")
}

func (c *Console) addCourse(log *logger.Logger) {
	code, ok := c.promptRequired("Course code (e.g., EEE-2101): ")
	if !ok {
		return
	}
	title, ok := c.promptRequired("Title: ")
	if !ok {
		return
	}
	credit, ok := c.promptFloat("Credit (e.g., 3): ")
	if !ok {
		return
	}
	dept, ok := c.promptRequired("Dept: ")
	if !ok {
		return
	}
	instructor, ok := c.readLine("Instructor ID (optional, blank to skip): ")
	if !ok {
		return
	}

	err := c.reg.Courses.Insert(records.Course{
		Code:         code,
		Title:        title,
		Credit:       credit,
		Department:   dept,
		InstructorID: instructor,
	})
	if err != nil {
		c.printError(log, err)
		return
	}
	log.Info("course added", "course_code", code)
	fmt.Fprintln(c.out, "Course added.")
}

func (c *Console) assignInstructor(log *logger.Logger) {
	code, ok := c.promptRequired("Course code: ")
	if !ok {
		return
	}
	if _, err := c.reg.Courses.FindByCode(code); err != nil {
		c.printError(log, err)
		return
	}
	facultyID, ok := c.promptRequired("Faculty ID: ")
	if !ok {
		return
	}
	// The stored reference is weak, but a typo here would dangle
	// forever, so the console insists the faculty exists now.
	if _, err := c.reg.Faculty.FindByID(facultyID); err != nil {
		c.printError(log, err)
		return
	}

	if err := c.reg.Courses.AssignInstructor(code, facultyID); err != nil {
		c.printError(log, err)
		return
	}
	log.Info("instructor assigned", "course_code", code, "faculty_id", facultyID)
	fmt.Fprintln(c.out, "Instructor assigned.")
}

func (c *Console) enrollStudent(log *logger.Logger) {
	studentID, ok := c.promptRequired("Student ID: ")
	if !ok {
		return
	}
	if _, err := c.reg.Students.FindByID(studentID); err != nil {
		c.printError(log, err)
		return
	}
	code, ok := c.promptRequired("Course code: ")
	if !ok {
		return
	}
	if _, err := c.reg.Courses.FindByCode(code); err != nil {
		c.printError(log, err)
		return
	}
	term, ok := c.promptRequired("Term (e.g., Fall-2025): ")
	if !ok {
		return
	}

	err := c.reg.Enrollments.Enroll(studentID, code, term)
	if apperrors.IsDuplicateKey(err) {
		fmt.Fprintln(c.out, "Already enrolled.")
		return
	}
	if err != nil {
		c.printError(log, err)
		return
	}
	log.Info("student enrolled", "student_id", studentID, "course_code", code, "term", term)
	fmt.Fprintln(c.out, "Enrollment added.")
}

// setGradeUnchecked sets a grade without an instructor-ownership check;
// admins may grade any enrollment.
func (c *Console) setGradeUnchecked(log *logger.Logger) {
	key, ok := c.promptEnrollmentKey()
	if !ok {
		return
	}
	c.setGradeForKey(log, key)
}

func (c *Console) promptEnrollmentKey() (registry.EnrollmentKey, bool) {
	studentID, ok := c.promptRequired("Student ID: ")
	if !ok {
		return registry.EnrollmentKey{}, false
	}
	code, ok := c.promptRequired("Course code: ")
	if !ok {
		return registry.EnrollmentKey{}, false
	}
	term, ok := c.promptRequired("Term: ")
	if !ok {
		return registry.EnrollmentKey{}, false
	}
	return registry.EnrollmentKey{StudentID: studentID, CourseCode: code, Term: term}, true
}

func (c *Console) setGradeForKey(log *logger.Logger, key registry.EnrollmentKey) {
	grade, ok := c.promptRequired("Grade (A, A-, B+, ..., F, or NA): ")
	if !ok {
		return
	}
	if err := c.reg.Enrollments.SetGrade(key, grade); err != nil {
		c.printError(log, err)
		return
	}
	log.Info("grade set", "enrollment", key.String(), "grade", grade)
	fmt.Fprintln(c.out, "Grade updated.")
}

func (c *Console) transcriptPrompt(log *logger.Logger) {
	studentID, ok := c.promptRequired("Student ID: ")
	if !ok {
		return
	}
	c.showTranscript(log, studentID)
}

func (c *Console) rosterPrompt(log *logger.Logger) {
	code, ok := c.promptRequired("Course code: ")
	if !ok {
		return
	}
	term, ok := c.promptRequired("Term: ")
	if !ok {
		return
	}

	roster, err := c.reports.Roster(code, term)
	if err != nil {
		c.printError(log, err)
		return
	}
	c.printRoster(roster)
}

func (c *Console) leaderboardPrompt(log *logger.Logger) {
	term, ok := c.promptRequired("Term: ")
	if !ok {
		return
	}

	entries, err := c.reports.Leaderboard(term)
	if err != nil {
		c.printError(log, err)
		return
	}
	c.printLeaderboard(term, entries)
}

func (c *Console) showTranscript(log *logger.Logger, studentID string) {
	transcript, err := c.reports.Transcript(studentID)
	if err != nil {
		c.printError(log, err)
		return
	}
	c.printTranscript(transcript)
}
