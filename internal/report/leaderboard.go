package report

import (
	"sort"

	apperrors "github.com/allexsabbir/uiu-ums-go/internal/errors"
	"github.com/allexsabbir/uiu-ums-go/internal/grading"
)

// LeaderboardEntry is one student's aggregated term result. Name is blank
// when the student record is missing; the entry is still reported under
// the raw ID rather than dropped.
type LeaderboardEntry struct {
	StudentID string
	Name      string
	GPA       float64
	Credits   float64
}

// Leaderboard ranks students by term GPA, descending. Ties keep the order
// in which each student's first qualifying enrollment was scanned from the
// enrollment file; that stability is an observable contract. Enrollments
// with an unresolvable course or without a grade are skipped and do not
// count, so a student with only skipped rows does not appear at all.
func (e *Engine) Leaderboard(term string) ([]LeaderboardEntry, error) {
	type acc struct {
		points  float64
		credits float64
	}
	totals := make(map[string]*acc)
	var firstSeen []string

	for enr := range e.enrollments.All() {
		if enr.Term != term {
			continue
		}

		course, err := e.courses.FindByCode(enr.CourseCode)
		if apperrors.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}

		pts, err := grading.Points(enr.Grade)
		if err != nil {
			continue // ungraded or invalid
		}

		a := totals[enr.StudentID]
		if a == nil {
			a = &acc{}
			totals[enr.StudentID] = a
			firstSeen = append(firstSeen, enr.StudentID)
		}
		a.points += pts * course.Credit
		a.credits += course.Credit
	}

	entries := make([]LeaderboardEntry, 0, len(firstSeen))
	for _, sid := range firstSeen {
		a := totals[sid]
		entry := LeaderboardEntry{StudentID: sid, Credits: a.credits}
		if a.credits > 0 {
			entry.GPA = a.points / a.credits
		}

		student, err := e.students.FindByID(sid)
		switch {
		case err == nil:
			entry.Name = student.Name
		case apperrors.IsNotFound(err):
			e.log.Warn("leaderboard entry references unknown student",
				"student_id", sid,
				"term", term)
		default:
			return nil, err
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].GPA > entries[j].GPA
	})
	return entries, nil
}
