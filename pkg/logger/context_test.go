package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

type ctxKey string

func TestContextWithAttrs(t *testing.T) {
	t.Parallel()

	t.Run("attributes reach the record", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))

		ctx := logger.ContextWithAttrs(context.Background(), logger.Form("contact"))
		ctx = logger.ContextWithAttrs(ctx, logger.FormID("f-1"))
		log.InfoContext(ctx, "field validated", logger.Field("email"))

		entry := decode(t, buf)
		assert.Equal(t, "contact", entry["form"])
		assert.Equal(t, "f-1", entry["form_id"])
		assert.Equal(t, "email", entry["field"])
	})

	t.Run("parent context is unchanged", func(t *testing.T) {
		parent := logger.ContextWithAttrs(context.Background(), logger.Form("contact"))
		child := logger.ContextWithAttrs(parent, logger.Field("email"))

		assert.Len(t, logger.AttrsFromContext(parent), 1)
		assert.Len(t, logger.AttrsFromContext(child), 2)
	})

	t.Run("no attrs returns the same context", func(t *testing.T) {
		ctx := context.Background()
		assert.Equal(t, ctx, logger.ContextWithAttrs(ctx))
		assert.Nil(t, logger.AttrsFromContext(ctx))
	})
}

func TestContextExtractors(t *testing.T) {
	t.Parallel()

	t.Run("extractor output", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				if v, ok := ctx.Value(ctxKey("rid")).(string); ok {
					return logger.RequestID(v), true
				}
				return slog.Attr{}, false
			}),
		)

		log.InfoContext(context.WithValue(context.Background(), ctxKey("rid"), "r-1"), "msg")
		assert.Equal(t, "r-1", decode(t, buf)["request_id"])

		buf.Reset()
		log.InfoContext(context.Background(), "msg")
		assert.NotContains(t, decode(t, buf), "request_id")
	})

	t.Run("context value", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("tenant", ctxKey("tenant")))
		log.InfoContext(context.WithValue(context.Background(), ctxKey("tenant"), "acme"), "msg")
		assert.Equal(t, "acme", decode(t, buf)["tenant"])
	})

	t.Run("with attrs and groups keep extractors", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("tenant", ctxKey("tenant")))
		log = log.With(logger.Component("form")).WithGroup("details")

		log.InfoContext(context.WithValue(context.Background(), ctxKey("tenant"), "acme"), "msg", slog.Int("n", 1))
		entry := decode(t, buf)
		assert.Equal(t, "form", entry["component"])
		details, ok := entry["details"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "acme", details["tenant"])
		assert.Equal(t, float64(1), details["n"])
	})
}
