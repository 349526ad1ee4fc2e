package form

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/dmitrymomot/formkit/pkg/debounce"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/schema"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Form tracks the values, errors and lifecycle of a set of fields and
// decides when each field is validated.
//
// All methods are safe for concurrent use. Debounced validations run on the
// scheduler's goroutine and take the same lock as the public methods.
// Listeners are called after the lock is released.
type Form struct {
	mu        sync.Mutex
	name      string
	cfg       Config
	fields    map[string]*fieldState
	order     []string
	configs   map[string]FieldConfig
	resolver  *schema.Resolver
	sched     debounce.Scheduler
	log       *slog.Logger
	listeners []func(Snapshot)
	listenMu  sync.RWMutex
	closed    bool
}

// New creates a form holding the given initial values.
// Fields are ordered by name.
func New(initial map[string]validator.Value, opts ...Option) *Form {
	f := newForm(opts...)
	for _, name := range slices.Sorted(maps.Keys(initial)) {
		f.addFieldLocked(name, initial[name])
	}
	return f
}

// FromDefinition creates a form from a schema definition. Fields keep the
// definition order. Text fields start as their Initial text and file fields
// start Empty.
func FromDefinition(def *schema.Definition, opts ...Option) *Form {
	configs := make(map[string]FieldConfig, len(def.Fields))
	for _, fd := range def.Fields {
		configs[fd.Name] = FieldConfig{
			Label:    fd.Label,
			Optional: fd.Optional,
			Multiple: fd.Multiple,
			Schemas:  fd.Schemas(),
		}
	}

	all := append([]Option{WithName(def.Name), WithFieldConfigs(configs)}, opts...)
	f := newForm(all...)
	for _, fd := range def.Fields {
		f.addFieldLocked(fd.Name, initialValue(fd))
	}
	return f
}

func initialValue(fd schema.FieldDefinition) validator.Value {
	for _, s := range fd.Schemas() {
		if s.Kind.IsFile() {
			return validator.Empty()
		}
	}
	return validator.Text(fd.Initial)
}

func newForm(opts ...Option) *Form {
	f := &Form{
		cfg:      DefaultConfig(),
		fields:   make(map[string]*fieldState),
		configs:  make(map[string]FieldConfig),
		resolver: schema.NewResolver(),
		sched:    debounce.RealScheduler{},
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.log = f.log.With(logger.Component("form"), logger.Form(f.name))
	return f
}

// Name returns the form name.
func (f *Form) Name() string {
	return f.name
}

// OnChange records a new value for name. Text values are validated after
// the debounce delay once the field is touched and has a validator; file
// and empty values are validated immediately under the same conditions.
// An unknown name creates a required field.
func (f *Form) OnChange(name string, value validator.Value) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrFormClosed
	}

	fs := f.fieldLocked(name)
	fs.value = value

	if value.IsText() {
		fs.timer.Schedule(func() { f.debouncedValidate(fs) })
	} else {
		// a pending pass for an older text value must not overwrite this one
		fs.timer.Cancel()
		if fs.touched() && fs.validator != nil {
			fs.setError(fs.validator(value))
			f.log.Debug("field validated on change",
				logger.Field(name),
				logger.Kind(value.Kind()),
				logger.ValidationMessage(fs.err),
			)
		}
	}

	snap := f.snapshotLocked()
	f.mu.Unlock()

	f.notify(snap)
	return nil
}

// debouncedValidate is the delayed half of OnChange. Required-empty errors
// are left for blur and submit; an empty optional field has its error cleared.
func (f *Form) debouncedValidate(fs *fieldState) {
	f.mu.Lock()
	if f.closed || f.fields[fs.name] != fs || !fs.touched() || fs.validator == nil {
		f.mu.Unlock()
		return
	}

	if !fs.value.IsEmpty() {
		fs.setError(fs.validator(fs.value))
	} else if !f.configs[fs.name].required() {
		fs.setError("")
	}
	f.log.Debug("field validated after debounce",
		logger.Field(fs.name),
		logger.ValidationMessage(fs.err),
	)

	snap := f.snapshotLocked()
	f.mu.Unlock()

	f.notify(snap)
}

// OnBlur marks name as touched, stores value and, when v is not nil, stores
// v as the field's validator and validates immediately. An empty value on
// a required field gets "<Name> is required". A nil v keeps errors set with
// SetError so callers can apply their own validation; only a required
// message made stale by a non-empty value is cleared.
func (f *Form) OnBlur(name string, value validator.Value, v validator.Validator) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrFormClosed
	}

	fs := f.fieldLocked(name)
	fs.value = value
	fs.fire(context.Background(), TriggerBlur)

	if v != nil {
		fs.validator = v
		// blur validates the current value now, the pending pass is redundant
		fs.timer.Cancel()
		f.checkLocked(fs)
		f.log.Debug("field validated on blur",
			logger.Field(name),
			logger.ValidationMessage(fs.err),
		)
	} else if fs.requiredErr && !value.IsEmpty() {
		fs.setError("")
	}

	snap := f.snapshotLocked()
	f.mu.Unlock()

	f.notify(snap)
	return nil
}

// Blur is OnBlur with the validator resolved from the field's configured
// schemas. The resolved validator is cached per field. A field without
// schemas blurs with no validator.
func (f *Form) Blur(name string, value validator.Value) error {
	f.mu.Lock()
	cfg := f.configs[name]
	f.mu.Unlock()

	var v validator.Validator
	if len(cfg.Schemas) > 0 {
		var err error
		v, err = f.resolver.ForChain(name, schema.FieldOptions{Multiple: cfg.Multiple}, cfg.Schemas...)
		if err != nil {
			f.log.Error("cannot resolve field schema", logger.Field(name), logger.Error(err))
			return err
		}
	}
	return f.OnBlur(name, value, v)
}

// checkLocked applies the blur and submit rule to fs.err: required-empty
// first, then the stored validator on non-empty values. A non-empty field
// without a validator keeps a SetError message and drops a required one.
func (f *Form) checkLocked(fs *fieldState) {
	cfg := f.configs[fs.name]
	switch {
	case fs.value.IsEmpty() && cfg.required():
		fs.err = requiredMessage(cfg.displayName(fs.name))
		fs.requiredErr = true
	case fs.value.IsEmpty():
		fs.setError("")
	case fs.validator != nil:
		fs.setError(fs.validator(fs.value))
	case fs.requiredErr:
		fs.setError("")
	}
}

// SetError sets or clears (msg == "") the error of name. It is meant for
// custom validation done by the caller after OnBlur with a nil validator.
func (f *Form) SetError(name, msg string) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrFormClosed
	}
	fs, ok := f.fields[name]
	if !ok {
		f.mu.Unlock()
		return ErrUnknownField
	}
	fs.setError(msg)
	snap := f.snapshotLocked()
	f.mu.Unlock()

	f.notify(snap)
	return nil
}

// ValidateAll validates every field regardless of touched state and
// reports whether the whole form passed. Empty required fields get the
// required message, non-empty fields with a stored validator get its
// result and empty optional fields are cleared.
func (f *Form) ValidateAll() bool {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return false
	}
	ok := f.validateAllLocked()
	snap := f.snapshotLocked()
	f.mu.Unlock()

	f.notify(snap)
	return ok
}

func (f *Form) validateAllLocked() bool {
	ctx := context.Background()
	ok := true
	for _, name := range f.order {
		fs := f.fields[name]
		fs.fire(ctx, TriggerValidate)
		f.checkLocked(fs)
		if fs.err != "" {
			ok = false
		}
	}
	return ok
}

// Submit validates every field and calls onSuccess exactly once with a copy
// of the values when all of them pass. Otherwise it returns a *SubmitError
// and onSuccess is not called.
func (f *Form) Submit(onSuccess func(values map[string]validator.Value)) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrFormClosed
	}
	ok := f.validateAllLocked()
	snap := f.snapshotLocked()
	f.mu.Unlock()

	f.notify(snap)

	if !ok {
		errs := snap.ValidationErrors()
		f.log.Warn("submission blocked",
			logger.Event("submit"),
			slog.Int("invalid_fields", len(errs)),
		)
		return &SubmitError{Notice: f.cfg.SubmitBlockedMessage, Errors: errs}
	}

	f.log.Info("form submitted", logger.Event("submit"))
	if onSuccess != nil {
		onSuccess(snap.Values)
	}
	return nil
}

// Values returns a copy of the current values.
func (f *Form) Values() map[string]validator.Value {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.valuesLocked()
}

// Value returns the current value of name.
func (f *Form) Value(name string) (validator.Value, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fs, ok := f.fields[name]
	if !ok {
		return validator.Empty(), false
	}
	return fs.value, true
}

// Errors returns the fields that currently show an error.
func (f *Form) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errorsLocked()
}

// Error returns the error shown for name, or "".
func (f *Form) Error(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if fs, ok := f.fields[name]; ok {
		return fs.err
	}
	return ""
}

// Touched reports whether name was blurred or validated at least once.
func (f *Form) Touched(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	fs, ok := f.fields[name]
	return ok && fs.touched()
}

// Valid reports whether no field currently shows an error. It does not
// check empty required fields; only ValidateAll does.
func (f *Form) Valid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, fs := range f.fields {
		if fs.err != "" {
			return false
		}
	}
	return true
}

// Fields returns field names in form order.
func (f *Form) Fields() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.order)
}

// FieldConfig returns the configuration of name; missing entries are the
// zero FieldConfig, which means required.
func (f *Form) FieldConfig(name string) FieldConfig {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.configs[name]
}

// Snapshot returns the current state of the form.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// Subscribe registers a listener and returns a function that removes it.
func (f *Form) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	f.listenMu.Lock()
	f.listeners = append(f.listeners, fn)
	idx := len(f.listeners) - 1
	f.listenMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			f.listenMu.Lock()
			defer f.listenMu.Unlock()
			if idx < len(f.listeners) {
				f.listeners[idx] = nil
			}
		})
	}
}

// RemoveField drops name from the form and cancels its pending debounced
// validation.
func (f *Form) RemoveField(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	fs, ok := f.fields[name]
	if !ok {
		return
	}
	fs.teardown()
	delete(f.fields, name)
	f.order = slices.DeleteFunc(f.order, func(n string) bool { return n == name })
	f.resolver.Forget(name)
}

// Close tears the form down. Pending debounced validations never run and
// later calls return ErrFormClosed.
func (f *Form) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true
	for _, fs := range f.fields {
		fs.teardown()
	}
	f.log.Debug("form closed")
	return nil
}

// Closed reports whether Close was called.
func (f *Form) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *Form) fieldLocked(name string) *fieldState {
	if fs, ok := f.fields[name]; ok {
		return fs
	}
	f.log.Debug("field created on the fly", logger.Field(name))
	return f.addFieldLocked(name, validator.Empty())
}

func (f *Form) addFieldLocked(name string, value validator.Value) *fieldState {
	fs := newFieldState(name, value, debounce.New(f.cfg.DebounceDelay, f.sched), f.log)
	f.fields[name] = fs
	f.order = append(f.order, name)
	return fs
}

func (f *Form) valuesLocked() map[string]validator.Value {
	out := make(map[string]validator.Value, len(f.fields))
	for name, fs := range f.fields {
		out[name] = fs.value
	}
	return out
}

func (f *Form) errorsLocked() map[string]string {
	out := make(map[string]string)
	for name, fs := range f.fields {
		if fs.err != "" {
			out[name] = fs.err
		}
	}
	return out
}

func (f *Form) snapshotLocked() Snapshot {
	snap := Snapshot{
		Form:   f.name,
		Fields: make([]FieldSnapshot, 0, len(f.order)),
		Values: f.valuesLocked(),
		Errors: f.errorsLocked(),
	}
	for _, name := range f.order {
		snap.Fields = append(snap.Fields, f.fields[name].snapshot())
	}
	snap.Valid = len(snap.Errors) == 0
	return snap
}

func (f *Form) notify(snap Snapshot) {
	f.listenMu.RLock()
	listeners := slices.Clone(f.listeners)
	f.listenMu.RUnlock()

	for _, fn := range listeners {
		if fn != nil {
			fn(snap)
		}
	}
}
