package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/config"
)

type debounceConfig struct {
	Delay   time.Duration `env:"DEBOUNCE_DELAY" envDefault:"500ms"`
	Message string        `env:"SUBMIT_MESSAGE" envDefault:"blocked"`
}

type limitConfig struct {
	MaxMemory int64 `env:"MAX_MEMORY" envDefault:"1024"`
}

func (c limitConfig) Validate() error {
	if c.MaxMemory <= 0 {
		return errors.New("max memory must be positive")
	}
	return nil
}

type requiredConfig struct {
	Path string `env:"DEFINITIONS_FILE,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg debounceConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		require.NoError(t, err)
		assert.Equal(t, 500*time.Millisecond, cfg.Delay)
		assert.Equal(t, "blocked", cfg.Message)
	})

	t.Run("process environment", func(t *testing.T) {
		t.Setenv("DEBOUNCE_DELAY", "250ms")
		var cfg debounceConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 250*time.Millisecond, cfg.Delay)
	})

	t.Run("prefix", func(t *testing.T) {
		var cfg debounceConfig
		err := config.Load(&cfg,
			config.WithPrefix("FORM_"),
			config.WithEnvironment(map[string]string{"FORM_DEBOUNCE_DELAY": "1s"}),
		)
		require.NoError(t, err)
		assert.Equal(t, time.Second, cfg.Delay)
	})

	t.Run("parse error", func(t *testing.T) {
		var cfg debounceConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{"DEBOUNCE_DELAY": "soon"}))
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("missing required", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("required if no default", func(t *testing.T) {
		type cfgNoDefault struct {
			Name string `env:"FORM_NAME"`
		}
		var cfg cfgNoDefault
		err := config.Load(&cfg, config.WithRequired(), config.WithEnvironment(map[string]string{}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("validate hook", func(t *testing.T) {
		var cfg limitConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{"MAX_MEMORY": "-1"}))
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)

		err = config.Load(&cfg, config.WithEnvironment(map[string]string{"MAX_MEMORY": "2048"}))
		require.NoError(t, err)
		assert.Equal(t, int64(2048), cfg.MaxMemory)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *debounceConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	assert.NotPanics(t, func() {
		var cfg debounceConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg, config.WithEnvironment(map[string]string{}))
	})
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, ".env.custom")
	override := filepath.Join(dir, ".env.override")
	require.NoError(t, os.WriteFile(custom, []byte("FORMKIT_TEST_PATH=forms.yaml\nFORMKIT_TEST_ONLY_CUSTOM=yes\n"), 0o600))
	require.NoError(t, os.WriteFile(override, []byte("FORMKIT_TEST_PATH=other.yaml\n"), 0o600))

	t.Run("first file wins", func(t *testing.T) {
		t.Setenv("FORMKIT_TEST_PATH", "")
		os.Unsetenv("FORMKIT_TEST_PATH")
		t.Setenv("FORMKIT_TEST_ONLY_CUSTOM", "")
		os.Unsetenv("FORMKIT_TEST_ONLY_CUSTOM")

		require.NoError(t, config.LoadEnv(custom, override))
		assert.Equal(t, "forms.yaml", os.Getenv("FORMKIT_TEST_PATH"))
		assert.Equal(t, "yes", os.Getenv("FORMKIT_TEST_ONLY_CUSTOM"))
	})

	t.Run("existing variables win", func(t *testing.T) {
		t.Setenv("FORMKIT_TEST_PATH", "from-process.yaml")
		require.NoError(t, config.LoadEnv(custom))
		assert.Equal(t, "from-process.yaml", os.Getenv("FORMKIT_TEST_PATH"))
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(dir, "missing.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("default file is optional", func(t *testing.T) {
		t.Chdir(dir)
		assert.NoError(t, config.LoadEnv())
	})
}

func TestMustLoadEnv(t *testing.T) {
	dir := t.TempDir()
	assert.Panics(t, func() {
		config.MustLoadEnv(filepath.Join(dir, "missing.env"))
	})
}
