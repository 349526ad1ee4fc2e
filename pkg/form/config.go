package form

import "time"

const (
	DefaultDebounceDelay        = 500 * time.Millisecond
	DefaultSubmitBlockedMessage = "Please fill in all required fields correctly before submitting."
)

// Config holds form behaviour that operators may tune through the environment.
type Config struct {
	DebounceDelay        time.Duration `env:"FORM_DEBOUNCE_DELAY" envDefault:"500ms"`
	SubmitBlockedMessage string        `env:"FORM_SUBMIT_BLOCKED_MESSAGE" envDefault:"Please fill in all required fields correctly before submitting."`
}

// DefaultConfig returns the values used when no Config is supplied.
func DefaultConfig() Config {
	return Config{
		DebounceDelay:        DefaultDebounceDelay,
		SubmitBlockedMessage: DefaultSubmitBlockedMessage,
	}
}

func (c Config) withDefaults() Config {
	if c.DebounceDelay <= 0 {
		c.DebounceDelay = DefaultDebounceDelay
	}
	if c.SubmitBlockedMessage == "" {
		c.SubmitBlockedMessage = DefaultSubmitBlockedMessage
	}
	return c
}
