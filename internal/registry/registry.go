// Package registry provides the per-entity repositories over the
// fixed-width record store: key-unique inserts, partial in-place updates
// and ordered listing. Repositories never reach into each other's files;
// cross-entity joins live in the report package.
package registry

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/allexsabbir/uiu-ums-go/internal/config"
	apperrors "github.com/allexsabbir/uiu-ums-go/internal/errors"
	"github.com/allexsabbir/uiu-ums-go/internal/records"
	"github.com/allexsabbir/uiu-ums-go/internal/recordstore"
)

// Registry bundles one repository per entity, all rooted in the same data
// directory. Open at startup, Close at shutdown.
type Registry struct {
	Students    *StudentRepo
	Faculty     *FacultyRepo
	Courses     *CourseRepo
	Enrollments *EnrollmentRepo
	Users       *UserRepo
}

// Open creates the data directory if needed and opens all entity stores.
func Open(dataDir string) (*Registry, error) {
	wrap := apperrors.NewWrapper("registry", "open")

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, wrap.Wrapf(err, "could not create data directory %s", dataDir)
	}

	students, err := recordstore.Open(filepath.Join(dataDir, config.StudentsFile), records.StudentCodec{})
	if err != nil {
		return nil, wrap.Wrap(err, "could not open the students file")
	}
	faculty, err := recordstore.Open(filepath.Join(dataDir, config.FacultyFile), records.FacultyCodec{})
	if err != nil {
		_ = students.Close()
		return nil, wrap.Wrap(err, "could not open the faculty file")
	}
	courses, err := recordstore.Open(filepath.Join(dataDir, config.CoursesFile), records.CourseCodec{})
	if err != nil {
		_ = students.Close()
		_ = faculty.Close()
		return nil, wrap.Wrap(err, "could not open the courses file")
	}
	enrollments, err := recordstore.Open(filepath.Join(dataDir, config.EnrollmentsFile), records.EnrollmentCodec{})
	if err != nil {
		_ = students.Close()
		_ = faculty.Close()
		_ = courses.Close()
		return nil, wrap.Wrap(err, "could not open the enrollments file")
	}
	users, err := recordstore.Open(filepath.Join(dataDir, config.UsersFile), records.UserCodec{})
	if err != nil {
		_ = students.Close()
		_ = faculty.Close()
		_ = courses.Close()
		_ = enrollments.Close()
		return nil, wrap.Wrap(err, "could not open the users file")
	}

	return &Registry{
		Students:    &StudentRepo{store: students},
		Faculty:     &FacultyRepo{store: faculty},
		Courses:     &CourseRepo{store: courses},
		Enrollments: &EnrollmentRepo{store: enrollments},
		Users:       &UserRepo{store: users},
	}, nil
}

// Close flushes and releases every entity store.
func (r *Registry) Close() error {
	return errors.Join(
		r.Students.store.Close(),
		r.Faculty.store.Close(),
		r.Courses.store.Close(),
		r.Enrollments.store.Close(),
		r.Users.store.Close(),
	)
}
