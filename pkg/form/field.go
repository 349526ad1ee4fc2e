package form

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/debounce"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/schema"
	"github.com/dmitrymomot/formkit/pkg/statemachine"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Phase is the lifecycle state of a field.
type Phase string

const (
	// Untouched fields have never lost focus nor been validated.
	Untouched Phase = "untouched"
	// Touched fields have been blurred or validated at least once.
	// There is no way back to Untouched.
	Touched Phase = "touched"
)

// Trigger is a lifecycle event.
type Trigger string

const (
	TriggerBlur     Trigger = "blur"
	TriggerValidate Trigger = "validate"
)

// FieldConfig declares per-field behaviour. A field without an entry is
// required and holds at most a single file.
type FieldConfig struct {
	Optional bool
	Multiple bool
	// Label replaces the field name in the generated required message.
	Label string
	// Schemas are resolved lazily by Form.Blur.
	Schemas []schema.Schema
}

func (c FieldConfig) required() bool {
	return !c.Optional
}

func (c FieldConfig) displayName(name string) string {
	if c.Label != "" {
		return c.Label
	}
	return name
}

// fieldState is the per-field record owned by a Form.
type fieldState struct {
	name      string
	value     validator.Value
	err       string
	validator validator.Validator
	lifecycle *statemachine.Machine[Phase, Trigger]
	timer     *debounce.Timer

	// requiredErr marks err as the engine's own required message, which
	// stops applying once the field holds a value.
	requiredErr bool
}

func newFieldState(name string, value validator.Value, timer *debounce.Timer, log *slog.Logger) *fieldState {
	touch := func(ctx context.Context, from, to Phase, event Trigger) error {
		log.DebugContext(ctx, "field touched",
			logger.Field(name),
			logger.Event(string(event)),
		)
		return nil
	}

	return &fieldState{
		name:  name,
		value: value,
		timer: timer,
		lifecycle: statemachine.MustNew(Untouched,
			statemachine.WithTransition(Untouched, Touched, TriggerBlur, statemachine.WithAction(touch)),
			statemachine.WithTransition(Untouched, Touched, TriggerValidate, statemachine.WithAction(touch)),
			statemachine.WithTransition(Touched, Touched, TriggerBlur),
			statemachine.WithTransition(Touched, Touched, TriggerValidate),
		),
	}
}

func (fs *fieldState) touched() bool {
	return fs.lifecycle.Is(Touched)
}

func (fs *fieldState) fire(ctx context.Context, trigger Trigger) {
	// every phase accepts both triggers
	_ = fs.lifecycle.Fire(ctx, trigger)
}

// teardown stops the field's debounce timer. A pending call never runs.
func (fs *fieldState) teardown() {
	fs.timer.Stop()
}

func (fs *fieldState) snapshot() FieldSnapshot {
	return FieldSnapshot{
		Name:      fs.name,
		Value:     fs.value,
		Error:     fs.err,
		Touched:   fs.touched(),
		Validated: fs.validator != nil,
		Pending:   fs.timer.Pending(),
	}
}

// setError records a message that did not come from the required check.
func (fs *fieldState) setError(msg string) {
	fs.err = msg
	fs.requiredErr = false
}
