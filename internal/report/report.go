// Package report implements the read-only reporting engine layered on the
// entity repositories: transcripts, course rosters and term GPA
// leaderboards. Every query is a fresh scan-and-aggregate pass; the engine
// holds no cross-call state and never writes.
package report

import (
	"log/slog"

	"github.com/allexsabbir/uiu-ums-go/internal/registry"
)

// Engine borrows the repositories it joins across. It is cheap to
// construct and safe to keep for the life of the registry.
type Engine struct {
	students    *registry.StudentRepo
	courses     *registry.CourseRepo
	enrollments *registry.EnrollmentRepo
	log         *slog.Logger
}

// NewEngine creates a reporting engine over the registry's repositories.
func NewEngine(reg *registry.Registry) *Engine {
	return &Engine{
		students:    reg.Students,
		courses:     reg.Courses,
		enrollments: reg.Enrollments,
		log:         slog.Default().With("module", "report"),
	}
}
