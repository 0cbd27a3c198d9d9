// Package records defines the persisted entity types and their fixed-width
// binary codecs.
//
// Serialization contract: every record is a fixed number of bytes; string
// fields occupy a fixed capacity, UTF-8 encoded, truncated on a rune
// boundary and padded with NUL bytes; multi-byte integers are big-endian.
// The layout is an internal format, stable across platforms, and is
// documented per entity next to its codec.
package records

// Field capacities in bytes. Together with the field order in each codec
// they define the on-disk layout, so changing one changes the file format.
const (
	IDCap         = 16
	NameCap       = 64
	DeptCap       = 32
	EmailCap      = 64
	CodeCap       = 16
	TitleCap      = 64
	TermCap       = 16
	GradeCap      = 2
	UsernameCap   = 32
	CredentialCap = 64
)

// Role identifies what a login account may do in the console.
type Role uint8

const (
	RoleAdmin   Role = 1
	RoleFaculty Role = 2
	RoleStudent Role = 3
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleFaculty:
		return "faculty"
	case RoleStudent:
		return "student"
	default:
		return "unknown"
	}
}

// Valid reports whether the role is one of the three defined roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleFaculty || r == RoleStudent
}

// Student is a registered student. ID is the unique key. String limits
// are maxbytes, not max: capacities are byte budgets of the fixed-width
// layout, and a key that survives validation must round-trip through the
// codec unchanged.
type Student struct {
	ID         string `validate:"required,maxbytes=16"`
	Name       string `validate:"required,maxbytes=64"`
	Department string `validate:"required,maxbytes=32"`
	Batch      int    `validate:"gte=0,lte=2147483647"`
	Email      string `validate:"omitempty,email,maxbytes=64"`
}

// Faculty is a faculty member. ID is the unique key.
type Faculty struct {
	ID         string `validate:"required,maxbytes=16"`
	Name       string `validate:"required,maxbytes=64"`
	Department string `validate:"required,maxbytes=32"`
	Email      string `validate:"omitempty,email,maxbytes=64"`
}

// Course is a course offering. Code is the unique key. InstructorID is a
// weak reference to Faculty.ID: it may be blank and may dangle, since no
// delete exists but no referential integrity is enforced either.
type Course struct {
	Code         string  `validate:"required,maxbytes=16"`
	Title        string  `validate:"required,maxbytes=64"`
	Credit       float64 `validate:"gte=0,lte=40"`
	Department   string  `validate:"required,maxbytes=32"`
	InstructorID string  `validate:"omitempty,maxbytes=16"`
}

// Enrollment records a student taking a course in a term. The composite
// (StudentID, CourseCode, Term) is the unique key. Grade is either the
// ungraded sentinel or a member of the letter set.
type Enrollment struct {
	StudentID  string `validate:"required,maxbytes=16"`
	CourseCode string `validate:"required,maxbytes=16"`
	Term       string `validate:"required,maxbytes=16"`
	Grade      string `validate:"required,maxbytes=2"`
}

// User is a login account. Username is the unique key. RefID is a weak
// reference to Student.ID or Faculty.ID, blank for admins.
// CredentialHash holds a bcrypt hash of the password.
type User struct {
	Username       string `validate:"required,maxbytes=32"`
	Role           Role   `validate:"required,oneof=1 2 3"`
	RefID          string `validate:"omitempty,maxbytes=16"`
	CredentialHash string `validate:"required,maxbytes=64"`
}
