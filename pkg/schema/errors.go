package schema

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownKind       = errors.New("unknown schema kind")
	ErrMissingParameter  = errors.New("missing schema parameter")
	ErrInvalidParameter  = errors.New("invalid schema parameter")
	ErrInvalidSchema     = errors.New("invalid schema")
	ErrInvalidDefinition = errors.New("invalid form definition")
)

// ConfigError reports a schema that cannot be turned into a validator.
// It wraps one of ErrUnknownKind, ErrMissingParameter or ErrInvalidParameter.
type ConfigError struct {
	Field string
	Kind  Kind
	Param string
	Err   error
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("schema %q", e.Kind)
	if e.Field != "" {
		msg = fmt.Sprintf("field %q: %s", e.Field, msg)
	}
	if e.Param != "" {
		msg += fmt.Sprintf(" parameter %q", e.Param)
	}
	return msg + ": " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError reports whether err carries a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
