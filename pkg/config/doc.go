// Package config loads process configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing. Every formkit component
// that operators tune (form.Config, formhttp.Config, httpserver.Config)
// declares its variables with `env` tags and is populated through Load.
//
// # Usage
//
//	if err := config.LoadEnv(); err != nil {
//		log.Fatal(err)
//	}
//
//	var cfg formhttp.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Structs that implement Validator are checked right after parsing, so a
// negative multipart limit or an empty definitions path fails at startup.
//
// Tests can bypass the process environment with WithEnvironment:
//
//	err := config.Load(&cfg, config.WithEnvironment(map[string]string{
//		"FORMS_DEFINITIONS_FILE": "testdata/forms.yaml",
//	}))
//
// # Error Handling
//
// Errors wrap one of the sentinels ErrParsingConfig, ErrInvalidConfig,
// ErrLoadingEnvFile or ErrNilPointer and can be matched with errors.Is.
package config
