package formhttp

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// FieldErrorID returns the element id holding the error of field.
func FieldErrorID(field string) string {
	return field + "-error"
}

// FieldError renders the inline error element of a field. An empty message
// renders a hidden element so a stale error disappears.
func FieldError(field, msg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		id := templ.EscapeString(FieldErrorID(field))
		if msg == "" {
			_, err := io.WriteString(w, `<p id="`+id+`" class="field-error" hidden></p>`)
			return err
		}
		_, err := io.WriteString(w, `<p id="`+id+`" class="field-error" role="alert">`+templ.EscapeString(msg)+`</p>`)
		return err
	})
}

// Notice renders the form-level submission notice. An empty message clears it.
func Notice(msg string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if msg == "" {
			_, err := io.WriteString(w, `<div id="`+NoticeID+`" class="form-notice"></div>`)
			return err
		}
		_, err := io.WriteString(w, `<div id="`+NoticeID+`" class="form-notice" role="alert">`+templ.EscapeString(msg)+`</div>`)
		return err
	})
}
