// Package statemachine provides a small, generic finite state machine.
//
// States and events are any comparable types, typically string enums. Each
// state maps an event to one target state, optionally with Actions that run
// before the state changes.
//
//	type Phase string
//	type Trigger string
//
//	const (
//	    Untouched Phase   = "untouched"
//	    Touched   Phase   = "touched"
//	    Blur      Trigger = "blur"
//	)
//
//	m := statemachine.MustNew(Untouched,
//	    statemachine.WithTransition(Untouched, Touched, Blur, statemachine.WithAction(logTouch)),
//	    statemachine.WithTransition(Touched, Touched, Blur),
//	)
//
//	_ = m.Fire(ctx, Blur)
//
// Fire returns *ErrNoTransitionAvailable when the current state has no
// transition for the event. An action error aborts the transition and
// leaves the state unchanged. A Machine is safe for concurrent use.
package statemachine
