package errors

import (
	"errors"
	"testing"
)

func TestWrapperWrap(t *testing.T) {
	w := NewWrapper("registry", "enroll_student")

	base := errors.New("disk full")
	err := w.Wrap(base, "could not save enrollment")

	if err == nil {
		t.Fatal("expected non-nil error")
	}
	if !errors.Is(err, base) {
		t.Error("expected wrapped error to match base error")
	}
	if got := GetUserMessage(err); got != "could not save enrollment" {
		t.Errorf("expected user message 'could not save enrollment', got '%s'", got)
	}

	expected := "[registry:enroll_student] could not save enrollment: disk full"
	if err.Error() != expected {
		t.Errorf("expected '%s', got '%s'", expected, err.Error())
	}
}

func TestWrapNilError(t *testing.T) {
	w := NewWrapper("report", "transcript")

	if err := w.Wrap(nil, "ignored"); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := w.Wrapf(nil, "ignored %d", 1); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestWrapfFormatsMessage(t *testing.T) {
	w := NewWrapper("console", "set_grade")

	err := w.Wrapf(ErrNotFound, "no enrollment for %s in %s", "S-001", "Fall-2025")
	if got := GetUserMessage(err); got != "no enrollment for S-001 in Fall-2025" {
		t.Errorf("unexpected user message: %s", got)
	}
	if !IsNotFound(err) {
		t.Error("expected wrapped error to remain ErrNotFound")
	}
}

func TestGetUserMessageFallback(t *testing.T) {
	if got := GetUserMessage(nil); got != "" {
		t.Errorf("expected empty message for nil error, got '%s'", got)
	}

	plain := errors.New("plain failure")
	if got := GetUserMessage(plain); got != "plain failure" {
		t.Errorf("expected fallback to Error(), got '%s'", got)
	}
}
