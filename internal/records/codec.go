package records

import (
	"encoding/binary"
	"math"
)

// Record widths in bytes, derived from field capacities. The width of an
// entity file never changes once records exist.
const (
	StudentWidth    = IDCap + NameCap + DeptCap + 4 + EmailCap // 180
	FacultyWidth    = IDCap + NameCap + DeptCap + EmailCap     // 176
	CourseWidth     = CodeCap + TitleCap + 4 + DeptCap + IDCap // 132
	EnrollmentWidth = IDCap + CodeCap + TermCap + GradeCap     // 50
	UserWidth       = UsernameCap + 1 + IDCap + CredentialCap  // 113
)

// StudentCodec lays out a Student as
// id[16] name[64] dept[32] batch int32 BE[4] email[64].
type StudentCodec struct{}

func (StudentCodec) Width() int { return StudentWidth }

func (StudentCodec) Encode(s Student, buf []byte) {
	c := cursor{buf: buf}
	putString(c.next(IDCap), s.ID)
	putString(c.next(NameCap), s.Name)
	putString(c.next(DeptCap), s.Department)
	binary.BigEndian.PutUint32(c.next(4), uint32(int32(s.Batch)))
	putString(c.next(EmailCap), s.Email)
}

func (StudentCodec) Decode(buf []byte) Student {
	c := cursor{buf: buf}
	return Student{
		ID:         getString(c.next(IDCap)),
		Name:       getString(c.next(NameCap)),
		Department: getString(c.next(DeptCap)),
		Batch:      int(int32(binary.BigEndian.Uint32(c.next(4)))),
		Email:      getString(c.next(EmailCap)),
	}
}

// FacultyCodec lays out a Faculty as id[16] name[64] dept[32] email[64].
type FacultyCodec struct{}

func (FacultyCodec) Width() int { return FacultyWidth }

func (FacultyCodec) Encode(f Faculty, buf []byte) {
	c := cursor{buf: buf}
	putString(c.next(IDCap), f.ID)
	putString(c.next(NameCap), f.Name)
	putString(c.next(DeptCap), f.Department)
	putString(c.next(EmailCap), f.Email)
}

func (FacultyCodec) Decode(buf []byte) Faculty {
	c := cursor{buf: buf}
	return Faculty{
		ID:         getString(c.next(IDCap)),
		Name:       getString(c.next(NameCap)),
		Department: getString(c.next(DeptCap)),
		Email:      getString(c.next(EmailCap)),
	}
}

// CourseCodec lays out a Course as
// code[16] title[64] credit int32 BE hundredths[4] dept[32] instructor[16].
// Credit is persisted in hundredths of a unit (3.0 -> 300) so the layout
// carries no platform float encoding.
type CourseCodec struct{}

func (CourseCodec) Width() int { return CourseWidth }

func (CourseCodec) Encode(course Course, buf []byte) {
	c := cursor{buf: buf}
	putString(c.next(CodeCap), course.Code)
	putString(c.next(TitleCap), course.Title)
	binary.BigEndian.PutUint32(c.next(4), uint32(int32(math.Round(course.Credit*100))))
	putString(c.next(DeptCap), course.Department)
	putString(c.next(IDCap), course.InstructorID)
}

func (CourseCodec) Decode(buf []byte) Course {
	c := cursor{buf: buf}
	return Course{
		Code:         getString(c.next(CodeCap)),
		Title:        getString(c.next(TitleCap)),
		Credit:       float64(int32(binary.BigEndian.Uint32(c.next(4)))) / 100,
		Department:   getString(c.next(DeptCap)),
		InstructorID: getString(c.next(IDCap)),
	}
}

// EnrollmentCodec lays out an Enrollment as
// studentID[16] courseCode[16] term[16] grade[2].
type EnrollmentCodec struct{}

func (EnrollmentCodec) Width() int { return EnrollmentWidth }

func (EnrollmentCodec) Encode(e Enrollment, buf []byte) {
	c := cursor{buf: buf}
	putString(c.next(IDCap), e.StudentID)
	putString(c.next(CodeCap), e.CourseCode)
	putString(c.next(TermCap), e.Term)
	putString(c.next(GradeCap), e.Grade)
}

func (EnrollmentCodec) Decode(buf []byte) Enrollment {
	c := cursor{buf: buf}
	return Enrollment{
		StudentID:  getString(c.next(IDCap)),
		CourseCode: getString(c.next(CodeCap)),
		Term:       getString(c.next(TermCap)),
		Grade:      getString(c.next(GradeCap)),
	}
}

// UserCodec lays out a User as
// username[32] role byte[1] refID[16] credentialHash[64].
// The credential field fits a bcrypt hash (60 bytes).
type UserCodec struct{}

func (UserCodec) Width() int { return UserWidth }

func (UserCodec) Encode(u User, buf []byte) {
	c := cursor{buf: buf}
	putString(c.next(UsernameCap), u.Username)
	c.next(1)[0] = byte(u.Role)
	putString(c.next(IDCap), u.RefID)
	putString(c.next(CredentialCap), u.CredentialHash)
}

func (UserCodec) Decode(buf []byte) User {
	c := cursor{buf: buf}
	return User{
		Username:       getString(c.next(UsernameCap)),
		Role:           Role(c.next(1)[0]),
		RefID:          getString(c.next(IDCap)),
		CredentialHash: getString(c.next(CredentialCap)),
	}
}
