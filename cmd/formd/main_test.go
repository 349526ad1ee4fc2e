package main

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/formhttp"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/schema"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestBundledCatalog(t *testing.T) {
	t.Parallel()

	catalog, err := schema.LoadCatalogFile("forms.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"contact", "signup", "application"}, catalog.Names())

	for _, def := range catalog.Forms {
		for _, fd := range def.Fields {
			_, err := fd.Validator()
			assert.NoError(t, err, "%s.%s", def.Name, fd.Name)
		}
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("level override", func(t *testing.T) {
		log, err := newLogger(logger.Config{Env: "production", Service: "formd", Level: "warn"})
		require.NoError(t, err)
		assert.False(t, log.Enabled(context.Background(), slog.LevelInfo))
		assert.True(t, log.Enabled(context.Background(), slog.LevelWarn))
	})

	t.Run("environment level", func(t *testing.T) {
		log, err := newLogger(logger.Config{Env: "development", Service: "formd"})
		require.NoError(t, err)
		assert.True(t, log.Enabled(context.Background(), slog.LevelDebug))
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := newLogger(logger.Config{Env: "development", Service: "formd", Level: "loud"})
		assert.Error(t, err)
	})

	t.Run("request id", func(t *testing.T) {
		var buf bytes.Buffer
		log, err := newLogger(logger.Config{Env: "production", Service: "formd"}, logger.WithOutput(&buf))
		require.NoError(t, err)

		h := formhttp.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.InfoContext(r.Context(), "handled")
		}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(formhttp.RequestIDHeader, "req-42")
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	})
}

func TestLogSubmission(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	f := form.New(map[string]validator.Value{
		"email":  validator.Text("ann@example.com"),
		"resume": validator.SingleFile(validator.NewFile("cv.pdf", "application/pdf", 10)),
	}, form.WithName("application"))
	t.Cleanup(func() { _ = f.Close() })

	id := uuid.New()
	require.NoError(t, logSubmission(log)(context.Background(), id, f, f.Values()))

	out := buf.String()
	assert.Contains(t, out, "form submission accepted")
	assert.Contains(t, out, id.String())
	assert.Contains(t, out, `"email":"ann@example.com"`)
	assert.Contains(t, out, `"resume":"cv.pdf"`)
}
