package form

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/formkit/pkg/debounce"
)

// Option configures a Form.
type Option func(*Form)

// WithName labels the form in logs and snapshots.
func WithName(name string) Option {
	return func(f *Form) {
		f.name = name
	}
}

// WithConfig replaces the form configuration. Zero fields keep their defaults.
func WithConfig(cfg Config) Option {
	return func(f *Form) {
		f.cfg = cfg.withDefaults()
	}
}

// WithFieldConfig sets the configuration of one field.
func WithFieldConfig(name string, cfg FieldConfig) Option {
	return func(f *Form) {
		f.configs[name] = cfg
	}
}

// WithFieldConfigs sets the configuration of several fields.
func WithFieldConfigs(configs map[string]FieldConfig) Option {
	return func(f *Form) {
		for name, cfg := range configs {
			f.configs[name] = cfg
		}
	}
}

// WithDebounceDelay overrides how long typing must pause before a
// debounced validation runs.
func WithDebounceDelay(d time.Duration) Option {
	return func(f *Form) {
		if d > 0 {
			f.cfg.DebounceDelay = d
		}
	}
}

// WithScheduler sets the clock used for debounced validation.
func WithScheduler(s debounce.Scheduler) Option {
	return func(f *Form) {
		if s != nil {
			f.sched = s
		}
	}
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.log = l
		}
	}
}

// WithListener registers a function called with a fresh Snapshot after
// every state transition.
func WithListener(fn func(Snapshot)) Option {
	return func(f *Form) {
		if fn != nil {
			f.listeners = append(f.listeners, fn)
		}
	}
}
