package formhttp

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/formkit/pkg/form"
)

var (
	ErrDefinitionNotFound = errors.New("form definition not found")
	ErrFormNotFound       = errors.New("form not found")
	ErrInvalidFormID      = errors.New("invalid form id")
	ErrInvalidRequest     = errors.New("invalid request")
	ErrMissingField       = errors.New("field name is required")
	ErrRegistryClosed     = errors.New("registry is closed")
)

// statusCode maps adapter and engine errors to HTTP status codes.
func statusCode(err error) int {
	switch {
	case errors.Is(err, ErrDefinitionNotFound), errors.Is(err, ErrFormNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidFormID), errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrMissingField):
		return http.StatusBadRequest
	case errors.Is(err, form.ErrFormClosed):
		return http.StatusGone
	case errors.Is(err, form.ErrSubmissionBlocked):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrRegistryClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
