package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		checkFn  func(error) bool
		expected bool
	}{
		{
			name:     "ErrNotFound is recognized",
			err:      ErrNotFound,
			checkFn:  IsNotFound,
			expected: true,
		},
		{
			name:     "Wrapped ErrNotFound is recognized",
			err:      fmt.Errorf("student S-001: %w", ErrNotFound),
			checkFn:  IsNotFound,
			expected: true,
		},
		{
			name:     "Different error is not ErrNotFound",
			err:      ErrDuplicateKey,
			checkFn:  IsNotFound,
			expected: false,
		},
		{
			name:     "ErrDuplicateKey is recognized",
			err:      fmt.Errorf("course EEE-2101: %w", ErrDuplicateKey),
			checkFn:  IsDuplicateKey,
			expected: true,
		},
		{
			name:     "ErrOutOfRange is recognized",
			err:      ErrOutOfRange,
			checkFn:  IsOutOfRange,
			expected: true,
		},
		{
			name:     "ErrInvalidGrade is recognized",
			err:      ErrInvalidGrade,
			checkFn:  IsInvalidGrade,
			expected: true,
		},
		{
			name:     "ErrInvalidCredentials is recognized",
			err:      ErrInvalidCredentials,
			checkFn:  IsInvalidCredentials,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.checkFn(tt.err)
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("email", "invalid format")

	if err.Field != "email" {
		t.Errorf("expected field 'email', got '%s'", err.Field)
	}

	if err.Message != "invalid format" {
		t.Errorf("expected message 'invalid format', got '%s'", err.Message)
	}

	expected := "validation failed on email: invalid format"
	if err.Error() != expected {
		t.Errorf("expected error '%s', got '%s'", expected, err.Error())
	}

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("expected validation error to unwrap to ErrInvalidInput")
	}
}
