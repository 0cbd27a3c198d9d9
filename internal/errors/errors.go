// Package errors provides domain-specific error types and sentinel errors
// for improved error handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common scenarios.
// Use errors.Is() to check these errors in your code.
var (
	// ErrNotFound indicates a requested record was not found.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey indicates an insert would violate key uniqueness.
	// The existing record wins; the store is left unchanged.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrOutOfRange indicates an index outside the store's record range.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidInput indicates user provided invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidGrade indicates a grade outside the letter set and the
	// ungraded sentinel.
	ErrInvalidGrade = errors.New("invalid grade")

	// ErrUngraded indicates an enrollment that has no grade assigned yet.
	// It carries no point value and is excluded from GPA computation.
	ErrUngraded = errors.New("enrollment not graded yet")

	// ErrInvalidCredentials indicates a failed username/password check.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrStoreClosed indicates an operation on a closed record store.
	ErrStoreClosed = errors.New("record store closed")
)

// IsNotFound checks if an error is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateKey checks if an error is or wraps ErrDuplicateKey.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}

// IsOutOfRange checks if an error is or wraps ErrOutOfRange.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

// IsInvalidInput checks if an error is or wraps ErrInvalidInput.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsInvalidGrade checks if an error is or wraps ErrInvalidGrade.
func IsInvalidGrade(err error) bool {
	return errors.Is(err, ErrInvalidGrade)
}

// IsInvalidCredentials checks if an error is or wraps ErrInvalidCredentials.
func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

// ValidationError represents input validation failures.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is treat every validation failure as invalid input.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
