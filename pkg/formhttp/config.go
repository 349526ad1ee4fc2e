package formhttp

import (
	"errors"
	"strings"
)

// DefaultMaxMemory is the multipart limit used when Config leaves it unset.
const DefaultMaxMemory int64 = 10 << 20

// Config holds HTTP adapter settings.
type Config struct {
	// DefinitionsFile is the YAML catalog the registry creates forms from.
	DefinitionsFile string `env:"FORMS_DEFINITIONS_FILE" envDefault:"forms.yaml"`
	// MaxMemory caps the bytes of a multipart body kept in memory while
	// file metadata is read.
	MaxMemory int64 `env:"FORMS_MAX_MEMORY" envDefault:"10485760"`
}

// Validate reports settings that would make the adapter unusable.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DefinitionsFile) == "" {
		return errors.New("FORMS_DEFINITIONS_FILE must not be empty")
	}
	if c.MaxMemory <= 0 {
		return errors.New("FORMS_MAX_MEMORY must be positive")
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.MaxMemory <= 0 {
		c.MaxMemory = DefaultMaxMemory
	}
	return c
}
