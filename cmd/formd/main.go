// Command formd serves the forms of a YAML catalog over HTTP.
//
// Configuration comes from the environment (and ./.env when present):
//
//	APP_ENV                      development, staging or production
//	APP_NAME                     service name in logs (default formd)
//	LOG_LEVEL                    overrides the environment's log level
//	LOG_FORMAT                   overrides the environment's log format
//	FORMS_DEFINITIONS_FILE       catalog path (default forms.yaml)
//	FORMS_MAX_MEMORY             multipart memory limit in bytes
//	FORMS_TTL                    idle forms are deleted after this long
//	FORM_DEBOUNCE_DELAY          delay before validating while typing
//	FORM_SUBMIT_BLOCKED_MESSAGE  notice shown when submission is blocked
//	HTTP_ADDR, HTTP_*_TIMEOUT    server settings
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/formhttp"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/schema"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

type appConfig struct {
	FormTTL time.Duration `env:"FORMS_TTL" envDefault:"1h"`
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "formd:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}

	var (
		appCfg   appConfig
		logCfg   logger.Config
		httpCfg  httpserver.Config
		formCfg  form.Config
		formsCfg formhttp.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&appCfg) },
		func() error { return config.Load(&logCfg) },
		func() error { return config.Load(&httpCfg) },
		func() error { return config.Load(&formCfg) },
		func() error { return config.Load(&formsCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	log, err := newLogger(logCfg)
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	catalog, err := schema.LoadCatalogFile(formsCfg.DefinitionsFile)
	if err != nil {
		return err
	}
	log.Info("form catalog loaded",
		slog.String("path", formsCfg.DefinitionsFile),
		slog.Any("forms", catalog.Names()),
	)

	registry := formhttp.NewRegistry(catalog,
		formhttp.WithRegistryLogger(log),
		formhttp.WithFormOptions(form.WithConfig(formCfg)),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go expireForms(ctx, log, registry, appCfg.FormTTL)

	r := chi.NewRouter()
	r.Use(formhttp.RequestID)
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, func(context.Context) error {
		if len(registry.Definitions()) == 0 {
			return errors.New("no form definitions loaded")
		}
		return nil
	}))
	r.Mount("/forms", formhttp.NewHandler(registry,
		formhttp.WithConfig(formsCfg),
		formhttp.WithLogger(log),
		formhttp.WithSubmitHandler(logSubmission(log)),
	).Handle())

	srv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithCloser(registry),
	)
	return srv.Run(ctx, r)
}

func newLogger(cfg logger.Config, opts ...logger.Option) (*slog.Logger, error) {
	opts = append([]logger.Option{logger.WithContextExtractors(formhttp.RequestIDExtractor())}, opts...)
	return logger.NewFromConfig(cfg, opts...)
}

// expireForms drops forms idle for longer than ttl once per minute.
func expireForms(ctx context.Context, log *slog.Logger, registry *formhttp.Registry, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := registry.Expire(ttl); n > 0 {
				log.Info("expired forms deleted", slog.Int("count", n))
			}
		}
	}
}

// logSubmission records accepted submissions. File fields are logged by
// name only.
func logSubmission(log *slog.Logger) formhttp.SubmitFunc {
	return func(ctx context.Context, id uuid.UUID, f *form.Form, values map[string]validator.Value) error {
		attrs := make([]slog.Attr, 0, len(values))
		for _, name := range f.Fields() {
			attrs = append(attrs, slog.String(name, values[name].String()))
		}
		log.InfoContext(ctx, "form submission accepted",
			logger.FormID(id),
			logger.Form(f.Name()),
			logger.Group("values", attrs...),
		)
		return nil
	}
}
