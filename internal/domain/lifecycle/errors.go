package lifecycle

import (
	"errors"
	"fmt"
	"strings"

	"solar_portal/internal/domain/entities"
)

var (
	ErrPreconditionFailed     = errors.New("precondition failed")
	ErrNotEligible            = errors.New("not eligible")
	ErrAlreadySigned          = errors.New("project already signed")
	ErrNotFound               = errors.New("not found")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrForbidden              = errors.New("forbidden")
	ErrInvalidInput           = errors.New("invalid input")
)

var ErrAlreadyReviewed = fmt.Errorf("%w: review already submitted", ErrPreconditionFailed)

// TransitionError reports a transition attempted from the wrong status.
type TransitionError struct {
	Op       string
	Expected []entities.ProjectStatus
	Actual   entities.ProjectStatus
}

func (e *TransitionError) Error() string {
	expected := make([]string, 0, len(e.Expected))
	for _, s := range e.Expected {
		expected = append(expected, string(s))
	}
	return fmt.Sprintf("%s: %s requires status %s, project is %s",
		ErrPreconditionFailed, e.Op, strings.Join(expected, "|"), e.Actual)
}

func (e *TransitionError) Unwrap() error {
	return ErrPreconditionFailed
}

func wrongStatus(op string, actual entities.ProjectStatus, expected ...entities.ProjectStatus) error {
	return &TransitionError{Op: op, Expected: expected, Actual: actual}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func forbidden(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrForbidden, fmt.Sprintf(format, args...))
}
