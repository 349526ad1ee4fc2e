package form

import (
	"errors"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

var (
	ErrSubmissionBlocked = errors.New("submission blocked")
	ErrFormClosed        = errors.New("form is closed")
	ErrUnknownField      = errors.New("unknown field")
)

// SubmitError is returned by Submit when at least one field is invalid.
// It matches ErrSubmissionBlocked and unwraps to the per-field
// validator.ValidationErrors.
type SubmitError struct {
	// Notice is the generic message to show the user.
	Notice string
	Errors validator.ValidationErrors
}

func (e *SubmitError) Error() string {
	return ErrSubmissionBlocked.Error() + ": " + e.Errors.Error()
}

func (e *SubmitError) Unwrap() []error {
	return []error{ErrSubmissionBlocked, e.Errors}
}

// IsSubmissionBlocked reports whether err comes from a blocked submission.
func IsSubmissionBlocked(err error) bool {
	return errors.Is(err, ErrSubmissionBlocked)
}
