package form

import (
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// FieldSnapshot is the state of one field at a point in time.
type FieldSnapshot struct {
	Name  string          `json:"name"`
	Value validator.Value `json:"value"`
	Error string          `json:"error,omitempty"`
	// Touched is true once the field was blurred or validated.
	Touched bool `json:"touched"`
	// Validated is true when a validator is stored for the field.
	Validated bool `json:"validated"`
	// Pending is true while a debounced validation is waiting to run.
	Pending bool `json:"pending"`
}

// Snapshot is an immutable copy of a form's values and errors.
type Snapshot struct {
	Form   string                     `json:"form,omitempty"`
	Fields []FieldSnapshot            `json:"fields"`
	Values map[string]validator.Value `json:"values"`
	// Errors holds only fields that currently show an error.
	Errors map[string]string `json:"errors"`
	// Valid is true when no field shows an error. Empty required fields that
	// were never validated do not count.
	Valid bool `json:"valid"`
}

// Error returns the message shown for name, or "".
func (s Snapshot) Error(name string) string {
	return s.Errors[name]
}

// Field returns the snapshot of one field.
func (s Snapshot) Field(name string) (FieldSnapshot, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSnapshot{}, false
}

// ValidationErrors converts Errors into validator.ValidationErrors in field order.
func (s Snapshot) ValidationErrors() validator.ValidationErrors {
	var errs validator.ValidationErrors
	for _, f := range s.Fields {
		if f.Error != "" {
			errs.Add(f.Name, f.Error)
		}
	}
	return errs
}
