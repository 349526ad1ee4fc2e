package logger

import (
	"fmt"
	"log/slog"
)

// Config is the logger setup operators control through the environment.
type Config struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_NAME" envDefault:"formd"`
	// Level overrides the environment's level when set.
	Level string `env:"LOG_LEVEL"`
	// Format overrides the environment's format when set: "json" or "text".
	Format string `env:"LOG_FORMAT"`
}

// NewFromConfig builds a logger from cfg. Extra opts are applied last.
func NewFromConfig(cfg Config, opts ...Option) (*slog.Logger, error) {
	all := []Option{WithEnvironment(cfg.Env, cfg.Service)}

	if cfg.Level != "" {
		level, err := ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		all = append(all, WithLevel(level))
	}

	switch Format(cfg.Format) {
	case "":
	case FormatJSON, FormatText:
		all = append(all, WithFormat(Format(cfg.Format)))
	default:
		return nil, fmt.Errorf("invalid log format %q: must be %q or %q", cfg.Format, FormatJSON, FormatText)
	}

	return New(append(all, opts...)...), nil
}
