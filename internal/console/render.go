package console

import (
	"fmt"
	"text/tabwriter"

	"github.com/allexsabbir/uiu-ums-go/internal/records"
	"github.com/allexsabbir/uiu-ums-go/internal/report"
)

func (c *Console) tabbed() *tabwriter.Writer {
	return tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
}

func (c *Console) printStudent(s records.Student) {
	fmt.Fprintf(c.out, "ID: %s | Name: %s | Dept: %s | Batch: %d | Email: %s\n",
		s.ID, s.Name, s.Department, s.Batch, s.Email)
}

func (c *Console) printCourse(course records.Course) {
	fmt.Fprintf(c.out, "Code: %s | Title: %s | Credit: %.1f | Dept: %s | Instructor: %s\n",
		course.Code, course.Title, course.Credit, course.Department, course.InstructorID)
}

func (c *Console) listStudents() {
	if c.reg.Students.Count() == 0 {
		fmt.Fprintln(c.out, "No students yet.")
		return
	}
	fmt.Fprintln(c.out, "\n-- Students --")
	w := c.tabbed()
	fmt.Fprintln(w, "ID\tNAME\tDEPT\tBATCH\tEMAIL")
	for s := range c.reg.Students.All() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", s.ID, s.Name, s.Department, s.Batch, s.Email)
	}
	_ = w.Flush()
}

func (c *Console) listFaculty() {
	if c.reg.Faculty.Count() == 0 {
		fmt.Fprintln(c.out, "No faculty yet.")
		return
	}
	fmt.Fprintln(c.out, "\n-- Faculty --")
	w := c.tabbed()
	fmt.Fprintln(w, "ID\tNAME\tDEPT\tEMAIL")
	for f := range c.reg.Faculty.All() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.ID, f.Name, f.Department, f.Email)
	}
	_ = w.Flush()
}

func (c *Console) listCourses() {
	if c.reg.Courses.Count() == 0 {
		fmt.Fprintln(c.out, "No courses yet.")
		return
	}
	fmt.Fprintln(c.out, "\n-- Courses --")
	w := c.tabbed()
	fmt.Fprintln(w, "CODE\tTITLE\tCREDIT\tDEPT\tINSTRUCTOR")
	for course := range c.reg.Courses.All() {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%s\t%s\n",
			course.Code, course.Title, course.Credit, course.Department, course.InstructorID)
	}
	_ = w.Flush()
}

func (c *Console) printTranscript(t *report.Transcript) {
	fmt.Fprintf(c.out, "\n-- Transcript for %s --\n", t.StudentID)
	if len(t.Rows) == 0 {
		fmt.Fprintln(c.out, "No enrollments.")
		return
	}

	w := c.tabbed()
	fmt.Fprintln(w, "COURSE\tTERM\tCREDIT\tGRADE\tGP")
	for _, row := range t.Rows {
		gp := "-"
		if row.Graded {
			gp = fmt.Sprintf("%.2f", row.Points)
		}
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%s\t%s\n", row.CourseCode, row.Term, row.Credit, row.Grade, gp)
	}
	_ = w.Flush()

	if t.HasGPA() {
		fmt.Fprintf(c.out, "CGPA: %.2f (%.1f total credits)\n", t.CGPA, t.GradedCredits)
	} else {
		fmt.Fprintln(c.out, "No graded credits yet.")
	}
}

func (c *Console) printRoster(r *report.Roster) {
	fmt.Fprintf(c.out, "\n-- Roster %s (%s) --\n", r.CourseCode, r.Term)
	if len(r.Rows) == 0 {
		fmt.Fprintln(c.out, "No students enrolled.")
		return
	}

	w := c.tabbed()
	fmt.Fprintln(w, "ID\tNAME\tGRADE")
	for _, row := range r.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\n", row.StudentID, row.Name, row.Grade)
	}
	_ = w.Flush()
}

func (c *Console) printLeaderboard(term string, entries []report.LeaderboardEntry) {
	fmt.Fprintf(c.out, "\n-- Term GPA Leaderboard: %s --\n", term)
	if len(entries) == 0 {
		fmt.Fprintln(c.out, "No graded enrollments for this term.")
		return
	}

	w := c.tabbed()
	fmt.Fprintln(w, "#\tID\tNAME\tGPA\tCREDITS")
	for i, entry := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%.1f\n", i+1, entry.StudentID, entry.Name, entry.GPA, entry.Credits)
	}
	_ = w.Flush()
}
