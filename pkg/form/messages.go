package form

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// requiredMessage builds "<Name> is required" with the first letter of name
// upper-cased and the rest left as is.
func requiredMessage(name string) string {
	return capitalize(name) + " is required"
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	// a Caser is stateful, so one is made per call
	return cases.Upper(language.Und).String(string(r)) + s[size:]
}
