package validator

import (
	"strings"
	"time"
)

const defaultDateMessage = "Please select a valid date"

// dateLayouts are the formats date inputs and pickers commonly submit.
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04",
	time.DateTime,
	"01/02/2006",
	time.RFC1123,
	time.RFC1123Z,
	"January 2, 2006",
	"Jan 2, 2006",
}

// DateRequired accepts text that parses as a real calendar date.
// Impossible dates such as 2024-02-30 are rejected.
func DateRequired(opts ...Option) Validator {
	cfg := newRuleConfig(defaultDateMessage, opts)
	return build(cfg, func(value Value) bool {
		text, ok := value.Text()
		if !ok {
			return false
		}
		_, ok = ParseDate(text)
		return ok
	})
}

// ParseDate tries every supported layout in order.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
