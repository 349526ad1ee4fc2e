package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestStrongPassword(t *testing.T) {
	t.Parallel()

	const msg = "Password must be 8+ chars, include upper, lower, number, and special char"
	rule := validator.StrongPassword()

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"all classes", "Passw0rd!", true},
		{"exactly eight", "Aa1!aaaa", true},
		{"too short", "Aa1!aaa", false},
		{"no special", "Password1", false},
		{"no upper", "passw0rd!", false},
		{"no lower", "PASSW0RD!", false},
		{"no digit", "Password!", false},
		{"unsupported special", "Passw0rd?", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rule(validator.Text(tt.password))
			if tt.valid {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, msg, got)
			}
		})
	}
}
