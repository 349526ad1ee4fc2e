package validator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	defaultStrongPasswordMessage = "Password must be 8+ chars, include upper, lower, number, and special char"

	strongPasswordMinLength = 8
	strongPasswordSpecials  = "!@#$%^&*"
)

// StrongPassword requires at least eight characters with an uppercase
// letter, a lowercase letter, a digit and one of !@#$%^&*.
func StrongPassword(opts ...Option) Validator {
	cfg := newRuleConfig(defaultStrongPasswordMessage, opts)
	return build(cfg, func(value Value) bool {
		text, ok := value.Text()
		if !ok {
			return false
		}
		return isStrongPassword(strings.TrimSpace(text))
	})
}

func isStrongPassword(password string) bool {
	if utf8.RuneCountInString(password) < strongPasswordMinLength {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case unicode.IsDigit(r) && r <= unicode.MaxASCII:
			hasDigit = true
		case strings.ContainsRune(strongPasswordSpecials, r):
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSpecial
}
