package formhttp

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/schema"
)

// Registry holds live forms created from a catalog of definitions.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	catalog  *schema.Catalog
	entries  map[uuid.UUID]*entry
	formOpts []form.Option
	log      *slog.Logger
	now      func() time.Time
	closed   bool
}

type entry struct {
	form *form.Form
	done chan struct{}
	// lastSeen is the unix-nano time of the last Create or Get.
	lastSeen atomic.Int64
}

func (e *entry) seen(t time.Time) { e.lastSeen.Store(t.UnixNano()) }

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithFormOptions applies opts to every form the registry creates.
func WithFormOptions(opts ...form.Option) RegistryOption {
	return func(r *Registry) { r.formOpts = append(r.formOpts, opts...) }
}

// WithRegistryLogger sets the registry logger. Forms get the same logger
// unless WithFormOptions overrides it.
func WithRegistryLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// WithClock replaces time.Now for idle tracking.
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRegistry returns an empty registry backed by catalog.
func NewRegistry(catalog *schema.Catalog, opts ...RegistryOption) *Registry {
	r := &Registry{
		catalog: catalog,
		entries: make(map[uuid.UUID]*entry),
		log:     logger.Discard(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.formOpts = append([]form.Option{form.WithLogger(r.log)}, r.formOpts...)
	r.log = r.log.With(logger.Component("formhttp.registry"))
	return r
}

// Definitions lists the definition names forms can be created from.
func (r *Registry) Definitions() []string {
	if r.catalog == nil {
		return nil
	}
	return r.catalog.Names()
}

// Create starts a new form from the named definition.
func (r *Registry) Create(definition string) (uuid.UUID, *form.Form, error) {
	if r.catalog == nil {
		return uuid.Nil, nil, fmt.Errorf("%w: %s", ErrDefinitionNotFound, definition)
	}
	def, ok := r.catalog.Get(definition)
	if !ok {
		return uuid.Nil, nil, fmt.Errorf("%w: %s", ErrDefinitionNotFound, definition)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return uuid.Nil, nil, ErrRegistryClosed
	}

	id := uuid.New()
	f := form.FromDefinition(def, r.formOpts...)
	e := &entry{form: f, done: make(chan struct{})}
	e.seen(r.now())
	r.entries[id] = e

	r.log.Debug("form created", logger.FormID(id), logger.Form(definition))
	return id, f, nil
}

// Get returns the live form with id and marks it as active.
func (r *Registry) Get(id uuid.UUID) (*form.Form, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, ErrFormNotFound
	}
	e.seen(r.now())
	return e.form, nil
}

// Done returns a channel closed when the form with id is deleted.
func (r *Registry) Done(id uuid.UUID) (<-chan struct{}, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, ErrFormNotFound
	}
	return e.done, nil
}

// Delete closes the form with id and forgets it. Its pending debounced
// validations never run.
func (r *Registry) Delete(id uuid.UUID) error {
	r.mu.Lock()
	e, ok := r.entries[id]
	if ok {
		delete(r.entries, id)
	}
	r.mu.Unlock()

	if !ok {
		return ErrFormNotFound
	}
	r.release(id, e)
	return nil
}

// Expire deletes forms not fetched with Get for longer than ttl and
// reports how many went.
func (r *Registry) Expire(ttl time.Duration) int {
	cutoff := r.now().Add(-ttl).UnixNano()

	r.mu.Lock()
	stale := make(map[uuid.UUID]*entry)
	for id, e := range r.entries {
		if e.lastSeen.Load() < cutoff {
			stale[id] = e
			delete(r.entries, id)
		}
	}
	r.mu.Unlock()

	for id, e := range stale {
		r.release(id, e)
	}
	return len(stale)
}

// Len returns the number of live forms.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Close deletes every form. Create fails afterwards.
func (r *Registry) Close() error {
	r.mu.Lock()
	r.closed = true
	entries := r.entries
	r.entries = make(map[uuid.UUID]*entry)
	r.mu.Unlock()

	for id, e := range entries {
		r.release(id, e)
	}
	return nil
}

func (r *Registry) release(id uuid.UUID, e *entry) {
	_ = e.form.Close()
	close(e.done)
	r.log.Debug("form deleted", logger.FormID(id), logger.Form(e.form.Name()))
}
