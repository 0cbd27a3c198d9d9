package grading

import (
	"errors"
	"testing"

	apperrors "github.com/allexsabbir/uiu-ums-go/internal/errors"
)

func TestPointsTable(t *testing.T) {
	tests := []struct {
		grade string
		want  float64
	}{
		{"A", 4.00},
		{"A-", 3.70},
		{"B+", 3.30},
		{"B", 3.00},
		{"B-", 2.70},
		{"C+", 2.30},
		{"C", 2.00},
		{"C-", 1.70},
		{"D", 1.00},
		{"F", 0.00},
	}

	for _, tt := range tests {
		t.Run(tt.grade, func(t *testing.T) {
			got, err := Points(tt.grade)
			if err != nil {
				t.Fatalf("Points(%q) failed: %v", tt.grade, err)
			}
			if got != tt.want {
				t.Errorf("Points(%q) = %.2f, want %.2f", tt.grade, got, tt.want)
			}
		})
	}
}

func TestPointsUngraded(t *testing.T) {
	_, err := Points(Ungraded)
	if !errors.Is(err, apperrors.ErrUngraded) {
		t.Errorf("expected ErrUngraded, got %v", err)
	}
}

func TestPointsInvalid(t *testing.T) {
	for _, grade := range []string{"E", "A+", "", "4.0", "PASS"} {
		if _, err := Points(grade); !apperrors.IsInvalidGrade(err) {
			t.Errorf("Points(%q): expected ErrInvalidGrade, got %v", grade, err)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(Ungraded); err != nil {
		t.Errorf("Validate(NA) should pass, got %v", err)
	}
	if err := Validate("B+"); err != nil {
		t.Errorf("Validate(B+) should pass, got %v", err)
	}
	if err := Validate("Z"); !apperrors.IsInvalidGrade(err) {
		t.Errorf("Validate(Z): expected ErrInvalidGrade, got %v", err)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a", "A"},
		{" b+ ", "B+"},
		{"na", "NA"},
		{"A-", "A-"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLettersCoverPointsTable(t *testing.T) {
	letters := Letters()
	if len(letters) != len(points) {
		t.Fatalf("Letters() has %d entries, points table has %d", len(letters), len(points))
	}
	for _, l := range letters {
		if _, ok := points[l]; !ok {
			t.Errorf("letter %q missing from points table", l)
		}
	}
}
