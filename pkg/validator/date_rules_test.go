package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestDateRequired(t *testing.T) {
	t.Parallel()

	rule := validator.DateRequired()

	valid := []string{
		"2024-03-15",
		"2024-03-15T10:30:00Z",
		"2024-03-15T10:30",
		"2024-03-15 10:30:00",
		"03/15/2024",
		"March 15, 2024",
		"Mar 15, 2024",
	}
	for _, s := range valid {
		t.Run("valid "+s, func(t *testing.T) {
			assert.Empty(t, rule(validator.Text(s)))
		})
	}

	invalid := []string{"", "not a date", "2024-02-30", "2024-13-01", "15/03/2024"}
	for _, s := range invalid {
		t.Run("invalid "+s, func(t *testing.T) {
			assert.Equal(t, "Please select a valid date", rule(validator.Text(s)))
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	got, ok := validator.ParseDate(" 2024-03-15 ")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), got)

	_, ok = validator.ParseDate("   ")
	assert.False(t, ok)
}
