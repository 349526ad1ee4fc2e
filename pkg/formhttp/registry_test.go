package formhttp_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/formhttp"
	"github.com/dmitrymomot/formkit/pkg/schema"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func newRegistry(t *testing.T, opts ...formhttp.RegistryOption) *formhttp.Registry {
	t.Helper()
	catalog, err := schema.LoadCatalog(strings.NewReader(catalogYAML))
	require.NoError(t, err)
	r := formhttp.NewRegistry(catalog, opts...)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("create and get", func(t *testing.T) {
		r := newRegistry(t)
		id, f, err := r.Create("signup")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		assert.Equal(t, "signup", f.Name())

		got, err := r.Get(id)
		require.NoError(t, err)
		assert.Same(t, f, got)
		assert.Equal(t, []string{"signup"}, r.Definitions())
	})

	t.Run("every create is a separate form", func(t *testing.T) {
		r := newRegistry(t)
		id1, f1, err := r.Create("signup")
		require.NoError(t, err)
		id2, f2, err := r.Create("signup")
		require.NoError(t, err)

		assert.NotEqual(t, id1, id2)
		require.NoError(t, f1.Blur("email", validator.Text("")))
		assert.NotEmpty(t, f1.Error("email"))
		assert.Empty(t, f2.Error("email"))
		assert.Equal(t, 2, r.Len())
	})

	t.Run("unknown definition", func(t *testing.T) {
		r := newRegistry(t)
		_, _, err := r.Create("nope")
		assert.ErrorIs(t, err, formhttp.ErrDefinitionNotFound)
	})

	t.Run("nil catalog", func(t *testing.T) {
		r := formhttp.NewRegistry(nil)
		_, _, err := r.Create("signup")
		assert.ErrorIs(t, err, formhttp.ErrDefinitionNotFound)
		assert.Nil(t, r.Definitions())
	})

	t.Run("delete closes the form and signals done", func(t *testing.T) {
		r := newRegistry(t)
		id, f, err := r.Create("signup")
		require.NoError(t, err)
		done, err := r.Done(id)
		require.NoError(t, err)

		require.NoError(t, r.Delete(id))
		assert.True(t, f.Closed())
		assert.ErrorIs(t, f.OnChange("email", validator.Text("x")), form.ErrFormClosed)

		select {
		case <-done:
		default:
			t.Fatal("done channel not closed")
		}

		_, err = r.Get(id)
		assert.ErrorIs(t, err, formhttp.ErrFormNotFound)
		assert.ErrorIs(t, r.Delete(id), formhttp.ErrFormNotFound)
		_, err = r.Done(id)
		assert.ErrorIs(t, err, formhttp.ErrFormNotFound)
	})

	t.Run("expire", func(t *testing.T) {
		r := newRegistry(t)
		_, _, err := r.Create("signup")
		require.NoError(t, err)

		assert.Equal(t, 0, r.Expire(time.Hour))
		assert.Equal(t, 1, r.Len())
		assert.Equal(t, 1, r.Expire(-time.Second))
		assert.Equal(t, 0, r.Len())
	})

	t.Run("expire counts from the last access", func(t *testing.T) {
		now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
		r := newRegistry(t, formhttp.WithClock(func() time.Time { return now }))

		active, _, err := r.Create("signup")
		require.NoError(t, err)
		idle, _, err := r.Create("signup")
		require.NoError(t, err)

		now = now.Add(50 * time.Minute)
		_, err = r.Get(active)
		require.NoError(t, err)

		now = now.Add(20 * time.Minute)
		assert.Equal(t, 1, r.Expire(time.Hour))

		_, err = r.Get(idle)
		assert.ErrorIs(t, err, formhttp.ErrFormNotFound)
		_, err = r.Get(active)
		require.NoError(t, err, "a form in use survives past its creation ttl")

		now = now.Add(61 * time.Minute)
		assert.Equal(t, 1, r.Expire(time.Hour))
		assert.Equal(t, 0, r.Len())
	})

	t.Run("close", func(t *testing.T) {
		r := newRegistry(t)
		_, f, err := r.Create("signup")
		require.NoError(t, err)

		require.NoError(t, r.Close())
		assert.True(t, f.Closed())
		assert.Equal(t, 0, r.Len())

		_, _, err = r.Create("signup")
		assert.ErrorIs(t, err, formhttp.ErrRegistryClosed)
	})
}
