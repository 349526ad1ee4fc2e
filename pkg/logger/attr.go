package logger

import (
	"log/slog"
	"strconv"
)

// Attribute keys shared by every formkit log line.
const (
	KeyError      = "error"
	KeyErrors     = "errors"
	KeyFormID     = "form_id"
	KeyForm       = "form"
	KeyField      = "field"
	KeyKind       = "kind"
	KeyValidation = "validation"
	KeyRequestID  = "request_id"
	KeyComponent  = "component"
	KeyEvent      = "event"
)

func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error returns an empty Attr for a nil error.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any(KeyError, err)
}

// Errors groups the non-nil errors by their position in errs.
func Errors(errs ...error) slog.Attr {
	var group []slog.Attr
	for i, err := range errs {
		if err != nil {
			group = append(group, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(group) == 0 {
		return slog.Attr{}
	}
	return Group(KeyErrors, group...)
}

// FormID identifies a live form instance. Nil yields an empty Attr.
func FormID(id any) slog.Attr {
	return optional(KeyFormID, id)
}

// Form names the definition a form was built from.
func Form(name string) slog.Attr { return slog.String(KeyForm, name) }

func Field(name string) slog.Attr { return slog.String(KeyField, name) }

// Kind is a schema kind or a value kind.
func Kind(kind any) slog.Attr { return slog.Any(KeyKind, kind) }

// ValidationMessage is empty for a passing value.
func ValidationMessage(msg string) slog.Attr {
	if msg == "" {
		return slog.Attr{}
	}
	return slog.String(KeyValidation, msg)
}

func RequestID(id any) slog.Attr {
	return optional(KeyRequestID, id)
}

func Component(name string) slog.Attr { return slog.String(KeyComponent, name) }

// Event is a lifecycle event name such as "blur" or "debounce_fired".
func Event(name string) slog.Attr { return slog.String(KeyEvent, name) }

func optional(key string, v any) slog.Attr {
	if v == nil {
		return slog.Attr{}
	}
	return slog.Any(key, v)
}
