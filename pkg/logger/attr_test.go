package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

func TestAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want any
	}{
		{"form id", logger.FormID("f-1"), logger.KeyFormID, "f-1"},
		{"form", logger.Form("contact"), logger.KeyForm, "contact"},
		{"field", logger.Field("email"), logger.KeyField, "email"},
		{"kind", logger.Kind("fileRequired"), logger.KeyKind, "fileRequired"},
		{"validation", logger.ValidationMessage("Please enter a valid email"), logger.KeyValidation, "Please enter a valid email"},
		{"request id", logger.RequestID("req-1"), logger.KeyRequestID, "req-1"},
		{"component", logger.Component("form"), logger.KeyComponent, "form"},
		{"event", logger.Event("blur"), logger.KeyEvent, "blur"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}
}

func TestEmptyAttrs(t *testing.T) {
	t.Parallel()

	for name, attr := range map[string]slog.Attr{
		"nil error":      logger.Error(nil),
		"no errors":      logger.Errors(nil, nil),
		"nil form id":    logger.FormID(nil),
		"nil request id": logger.RequestID(nil),
		"passing value":  logger.ValidationMessage(""),
	} {
		assert.True(t, attr.Equal(slog.Attr{}), name)
	}

	// empty attrs are dropped by slog handlers
	var buf bytes.Buffer
	logger.New(logger.WithOutput(&buf)).Info("checked", logger.Error(nil), logger.ValidationMessage(""))
	assert.NotContains(t, buf.String(), logger.KeyError)
	assert.NotContains(t, buf.String(), logger.KeyValidation)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	first, second := errors.New("first"), errors.New("second")
	attr := logger.Errors(first, nil, second)
	require.Equal(t, logger.KeyErrors, attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())

	group := attr.Value.Group()
	require.Len(t, group, 2)
	assert.Equal(t, "0", group[0].Key)
	assert.Equal(t, "2", group[1].Key, "keys keep the error's position")
	assert.Equal(t, second, group[1].Value.Any())
}

func TestGroup(t *testing.T) {
	t.Parallel()

	attr := logger.Group("values", logger.Field("email"), slog.Int("len", 3))
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	assert.Len(t, attr.Value.Group(), 2)
}
