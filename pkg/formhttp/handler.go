package formhttp

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// SubmitFunc receives the values of a form that passed submission.
// A returned error turns the response into a 500.
type SubmitFunc func(ctx context.Context, id uuid.UUID, f *form.Form, values map[string]validator.Value) error

// Handler serves the forms of a Registry over HTTP.
type Handler struct {
	registry *Registry
	cfg      Config
	log      *slog.Logger
	onSubmit SubmitFunc
}

// Option configures a Handler.
type Option func(*Handler)

// WithConfig sets the adapter configuration.
func WithConfig(cfg Config) Option {
	return func(h *Handler) { h.cfg = cfg }
}

// WithLogger sets the handler logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithSubmitHandler registers fn to run after a successful submission.
func WithSubmitHandler(fn SubmitFunc) Option {
	return func(h *Handler) { h.onSubmit = fn }
}

// NewHandler returns a Handler serving the forms of registry.
func NewHandler(registry *Registry, opts ...Option) *Handler {
	h := &Handler{
		registry: registry,
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.cfg = h.cfg.withDefaults()
	h.log = h.log.With(logger.Component("formhttp"))
	return h
}

// Handle returns the router. Mount it under a prefix such as /forms:
//
//	r := chi.NewRouter()
//	r.Mount("/forms", formhttp.NewHandler(registry).Handle())
func (h *Handler) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestID)

	r.Get("/", h.definitions)
	r.Post("/{definition}", h.create)

	byID := r.With(tagFormID)
	byID.Get("/{id}", h.snapshot)
	byID.Delete("/{id}", h.delete)
	byID.Post("/{id}/change", h.change)
	byID.Post("/{id}/blur", h.blur)
	byID.Post("/{id}/submit", h.submit)
	byID.Get("/{id}/events", h.events)

	return r
}

type createResponse struct {
	ID     uuid.UUID `json:"id"`
	Form   string    `json:"form"`
	Fields []string  `json:"fields"`
}

type submitResponse struct {
	ID     uuid.UUID                  `json:"id"`
	Values map[string]validator.Value `json:"values"`
}

type blockedResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) definitions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"definitions": h.registry.Definitions()})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "definition")
	id, f, err := h.registry.Create(name)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.log.InfoContext(r.Context(), "form created", logger.FormID(id), logger.Form(name))
	writeJSON(w, http.StatusCreated, createResponse{ID: id, Form: name, Fields: f.Fields()})
}

func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) {
	_, f, err := h.lookup(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondSnapshot(w, r, f.Snapshot())
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := formID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.registry.Delete(id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) change(w http.ResponseWriter, r *http.Request) {
	_, f, err := h.lookup(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	field, value, err := h.readField(r, f)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := f.OnChange(field, value); err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondSnapshot(w, r, f.Snapshot())
}

// blur validates the field right away with the validator resolved from its
// schemas. Fields without schemas blur with no validator.
func (h *Handler) blur(w http.ResponseWriter, r *http.Request) {
	_, f, err := h.lookup(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	field, value, err := h.readField(r, f)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := f.Blur(field, value); err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondSnapshot(w, r, f.Snapshot())
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	id, f, err := h.lookup(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	// install schema validators on fields no blur reached yet, so submit
	// checks non-empty values against their schemas
	snap := f.Snapshot()
	for _, fs := range snap.Fields {
		if fs.Validated || fs.Value.IsEmpty() || len(f.FieldConfig(fs.Name).Schemas) == 0 {
			continue
		}
		if err := f.Blur(fs.Name, fs.Value); err != nil {
			h.fail(w, r, err)
			return
		}
	}

	var hookErr error
	err = f.Submit(func(values map[string]validator.Value) {
		if h.onSubmit != nil {
			hookErr = h.onSubmit(r.Context(), id, f, values)
		}
	})

	var blocked *form.SubmitError
	switch {
	case errors.As(err, &blocked):
		h.respondBlocked(w, r, f, blocked)
		return
	case err != nil:
		h.fail(w, r, err)
		return
	case hookErr != nil:
		h.fail(w, r, hookErr)
		return
	}

	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		if err := patchNotice(sse, ""); err != nil {
			h.log.DebugContext(r.Context(), "cannot patch notice", logger.Error(err))
			return
		}
		if err := patchSnapshot(sse, f.Snapshot()); err != nil {
			h.log.DebugContext(r.Context(), "cannot patch snapshot", logger.Error(err))
		}
		return
	}
	writeJSON(w, http.StatusOK, submitResponse{ID: id, Values: f.Values()})
}

func (h *Handler) respondBlocked(w http.ResponseWriter, r *http.Request, f *form.Form, blocked *form.SubmitError) {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		if err := patchSnapshot(sse, f.Snapshot()); err != nil {
			h.log.DebugContext(r.Context(), "cannot patch snapshot", logger.Error(err))
			return
		}
		if err := patchNotice(sse, blocked.Notice); err != nil {
			h.log.DebugContext(r.Context(), "cannot patch notice", logger.Error(err))
		}
		return
	}
	writeJSON(w, http.StatusUnprocessableEntity, blockedResponse{
		Message: blocked.Notice,
		Errors:  blocked.Errors.Map(),
	})
}

func (h *Handler) respondSnapshot(w http.ResponseWriter, r *http.Request, snap form.Snapshot) {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		if err := patchSnapshot(sse, snap); err != nil {
			h.log.DebugContext(r.Context(), "cannot patch snapshot", logger.Error(err))
		}
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (h *Handler) lookup(r *http.Request) (uuid.UUID, *form.Form, error) {
	id, err := formID(r)
	if err != nil {
		return uuid.Nil, nil, err
	}
	f, err := h.registry.Get(id)
	if err != nil {
		return uuid.Nil, nil, err
	}
	return id, f, nil
}

// fail logs err and writes it as JSON, or as a notice patch for DataStar
// requests. Client errors log at warn level and server errors at error level.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusCode(err)
	level := slog.LevelWarn
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
		msg = http.StatusText(status)
	}
	h.log.Log(r.Context(), level, "request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		logger.Error(err),
	)

	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		_ = patchNotice(sse, msg)
		return
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
