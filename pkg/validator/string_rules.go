package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const defaultRequiredMessage = "This field is required"

// Required fails on empty values: whitespace-only text, Empty or an empty
// file list.
func Required(opts ...Option) Validator {
	cfg := newRuleConfig(defaultRequiredMessage, opts)
	return build(cfg, func(value Value) bool {
		return !value.IsEmpty()
	})
}

// MinLength requires the trimmed text to be at least min characters long.
func MinLength(min int, opts ...Option) Validator {
	cfg := newRuleConfig(fmt.Sprintf("Must be at least %d characters", min), opts)
	return build(cfg, func(value Value) bool {
		text, ok := value.Text()
		if !ok {
			return false
		}
		return trimmedLen(text) >= min
	})
}

// MaxLength requires the trimmed text to be at most max characters long.
func MaxLength(max int, opts ...Option) Validator {
	cfg := newRuleConfig(fmt.Sprintf("Must be less than %d characters", max), opts)
	return build(cfg, func(value Value) bool {
		text, ok := value.Text()
		if !ok {
			return false
		}
		return trimmedLen(text) <= max
	})
}

// trimmedLen counts characters, not bytes.
func trimmedLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}
