package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Validator maps a field value to an error message.
// An empty message means the value is valid. Validators are pure and
// hold no state between calls, so they are safe to cache and share.
type Validator func(value Value) string

// Validate runs the validator and reports the message plus whether the
// value passed. A nil validator accepts everything.
func (fn Validator) Validate(value Value) (string, bool) {
	if fn == nil {
		return "", true
	}
	msg := fn(value)
	return msg, msg == ""
}

// Chain runs validators in order and returns the first failure.
func Chain(validators ...Validator) Validator {
	list := make([]Validator, 0, len(validators))
	for _, v := range validators {
		if v != nil {
			list = append(list, v)
		}
	}
	if len(list) == 1 {
		return list[0]
	}
	return func(value Value) string {
		for _, v := range list {
			if msg := v(value); msg != "" {
				return msg
			}
		}
		return ""
	}
}

// Option adjusts a rule factory.
type Option func(*ruleConfig)

type ruleConfig struct {
	message  string
	optional bool
}

// WithMessage overrides the rule's default failure message.
// An empty message keeps the default.
func WithMessage(msg string) Option {
	return func(c *ruleConfig) {
		if msg != "" {
			c.message = msg
		}
	}
}

// Optional makes the rule accept empty values.
func Optional() Option {
	return func(c *ruleConfig) { c.optional = true }
}

// WithOptional sets optionality from a flag, handy when it comes from a schema.
func WithOptional(optional bool) Option {
	return func(c *ruleConfig) { c.optional = optional }
}

func newRuleConfig(defaultMessage string, opts []Option) ruleConfig {
	cfg := ruleConfig{message: defaultMessage}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// build wraps check with the shared optional-and-empty early exit.
func build(cfg ruleConfig, check func(Value) bool) Validator {
	return func(value Value) string {
		if cfg.optional && value.IsEmpty() {
			return ""
		}
		if check(value) {
			return ""
		}
		return cfg.message
	}
}

// ValidationError is a failed check for one field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects field failures and implements error.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is lets errors.Is match ErrValidationFailed.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(field, message string) {
	*ve = append(*ve, ValidationError{Field: field, Message: message})
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the first message recorded for field.
func (ve ValidationErrors) Get(field string) string {
	for _, err := range ve {
		if err.Field == field {
			return err.Message
		}
	}
	return ""
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Map returns field → first message.
func (ve ValidationErrors) Map() map[string]string {
	out := make(map[string]string, len(ve))
	for _, err := range ve {
		if _, ok := out[err.Field]; !ok {
			out[err.Field] = err.Message
		}
	}
	return out
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors extracts ValidationErrors from an error chain.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
