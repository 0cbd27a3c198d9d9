// Package seed creates demo records and logins on first run so the
// console is usable out of the box. Seeding keys off an empty user store
// and is a no-op otherwise.
package seed

import (
	"fmt"
	"log/slog"

	"github.com/allexsabbir/uiu-ums-go/internal/auth"
	"github.com/allexsabbir/uiu-ums-go/internal/records"
	"github.com/allexsabbir/uiu-ums-go/internal/registry"
)

// Demo login credentials created on first run.
const (
	AdminUsername = "admin"
	AdminPassword = "admin123"
	FacultyPass   = "teacher123"
	StudentPass   = "student123"
)

type demoUser struct {
	username string
	role     records.Role
	refID    string
	password string
}

// Bootstrap populates an empty installation with demo students, faculty,
// courses, enrollments and login accounts. Returns true when seeding ran.
func Bootstrap(reg *registry.Registry, authn *auth.Authenticator, log *slog.Logger) (bool, error) {
	if reg.Users.Count() > 0 {
		return false, nil
	}

	students := []records.Student{
		{ID: "02124100034", Name: "Sabbir Ahmed", Department: "EEE", Batch: 241, Email: "allexsabbir117@gmail.com"},
		{ID: "02124100001", Name: "Afsana Mim", Department: "CSE", Batch: 231, Email: "mim@example.com"},
	}
	faculty := []records.Faculty{
		{ID: "FAC-EEE-001", Name: "Dr. Rezwan Khan", Department: "EEE", Email: "rezwan.khan@uiu.ac.bd"},
		{ID: "FAC-CSE-002", Name: "Dr. John Doe", Department: "CSE", Email: "john.doe@uiu.ac.bd"},
	}
	courses := []records.Course{
		{Code: "EEE-2101", Title: "Circuits I", Credit: 3, Department: "EEE", InstructorID: "FAC-EEE-001"},
		{Code: "CSE-1101", Title: "Intro to Programming", Credit: 3, Department: "CSE", InstructorID: "FAC-CSE-002"},
	}
	type demoEnrollment struct {
		studentID, courseCode, term, grade string
	}
	enrollments := []demoEnrollment{
		{"02124100034", "EEE-2101", "Fall-2025", "A"},
		{"02124100034", "CSE-1101", "Fall-2025", "B+"},
		{"02124100001", "CSE-1101", "Fall-2025", "A-"},
	}
	users := []demoUser{
		{AdminUsername, records.RoleAdmin, "", AdminPassword},
		{"rezwan", records.RoleFaculty, "FAC-EEE-001", FacultyPass},
		{"john", records.RoleFaculty, "FAC-CSE-002", FacultyPass},
		{"sabbir", records.RoleStudent, "02124100034", StudentPass},
		{"mim", records.RoleStudent, "02124100001", StudentPass},
	}

	for _, s := range students {
		if err := reg.Students.Insert(s); err != nil {
			return false, fmt.Errorf("seed student %s: %w", s.ID, err)
		}
	}
	for _, f := range faculty {
		if err := reg.Faculty.Insert(f); err != nil {
			return false, fmt.Errorf("seed faculty %s: %w", f.ID, err)
		}
	}
	for _, c := range courses {
		if err := reg.Courses.Insert(c); err != nil {
			return false, fmt.Errorf("seed course %s: %w", c.Code, err)
		}
	}
	for _, e := range enrollments {
		if err := reg.Enrollments.Enroll(e.studentID, e.courseCode, e.term); err != nil {
			return false, fmt.Errorf("seed enrollment %s/%s: %w", e.studentID, e.courseCode, err)
		}
		key := registry.EnrollmentKey{StudentID: e.studentID, CourseCode: e.courseCode, Term: e.term}
		if err := reg.Enrollments.SetGrade(key, e.grade); err != nil {
			return false, fmt.Errorf("seed grade for %s: %w", key, err)
		}
	}
	for _, u := range users {
		if err := authn.Register(u.username, u.role, u.refID, u.password); err != nil {
			return false, fmt.Errorf("seed user %s: %w", u.username, err)
		}
	}

	log.Info("initialized with demo data",
		"students", len(students),
		"faculty", len(faculty),
		"courses", len(courses),
		"enrollments", len(enrollments),
		"logins", len(users))
	return true, nil
}
