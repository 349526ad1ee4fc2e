package validator

import (
	"regexp"
	"strings"
)

var (
	// local-part "@" domain "." TLD of two or more letters
	emailRegex = regexp.MustCompile(`(?i)^[^\s@]+@[^\s@]+\.[a-z]{2,}$`)

	// optional "+", optional 1-3 digit country code with an optional
	// separator, then ten digits that may be grouped 3-3-4
	phoneRegex = regexp.MustCompile(`^\+?(\d{1,3}[-.\s]?)?\d{3}[-.\s]?\d{3}[-.\s]?\d{4}$`)
)

const (
	defaultEmailMessage = "Please enter a valid email address"
	defaultPhoneMessage = "Please enter a valid phone number"
)

// Email validates an address of the form local@domain.tld.
func Email(opts ...Option) Validator {
	cfg := newRuleConfig(defaultEmailMessage, opts)
	return build(cfg, func(value Value) bool {
		text, ok := value.Text()
		if !ok {
			return false
		}
		return emailRegex.MatchString(strings.TrimSpace(text))
	})
}

// Phone validates a ten digit number with an optional country code.
//
// Accepted forms include 5551234567, +15551234567 and +1-555-123-4567.
func Phone(opts ...Option) Validator {
	cfg := newRuleConfig(defaultPhoneMessage, opts)
	return build(cfg, func(value Value) bool {
		text, ok := value.Text()
		if !ok {
			return false
		}
		return phoneRegex.MatchString(strings.TrimSpace(text))
	})
}
