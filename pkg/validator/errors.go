package validator

import "errors"

// ErrValidationFailed is the generic cause attached to a set of field failures.
var ErrValidationFailed = errors.New("validation failed")
