package statemachine

import "fmt"

// Option configures a state machine during construction.
type Option[S, E comparable] func(*Machine[S, E]) error

// TransitionOption configures a single transition.
type TransitionOption[S, E comparable] func(*transition[S, E])

// New creates a state machine in the initial state.
func New[S, E comparable](initial S, opts ...Option[S, E]) (*Machine[S, E], error) {
	m := &Machine[S, E]{
		current:     initial,
		transitions: make(map[S]map[E]transition[S, E]),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew is New that panics on an invalid option.
func MustNew[S, E comparable](initial S, opts ...Option[S, E]) *Machine[S, E] {
	m, err := New(initial, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

// WithTransition moves the machine from one state to another on event.
// Declaring a second target for the same state and event is an error.
func WithTransition[S, E comparable](from, to S, event E, opts ...TransitionOption[S, E]) Option[S, E] {
	return func(m *Machine[S, E]) error {
		t := transition[S, E]{to: to}
		for _, opt := range opts {
			opt(&t)
		}
		if prev, ok := m.transitions[from][event]; ok && prev.to != to {
			return fmt.Errorf("transition %v->%v on %v conflicts with %v->%v", from, to, event, from, prev.to)
		}
		if m.transitions[from] == nil {
			m.transitions[from] = make(map[E]transition[S, E])
		}
		m.transitions[from][event] = t
		return nil
	}
}

// WithAction runs action when the transition fires, before the state changes.
// Actions run in the order given.
func WithAction[S, E comparable](action Action[S, E]) TransitionOption[S, E] {
	return func(t *transition[S, E]) {
		if action != nil {
			t.actions = append(t.actions, action)
		}
	}
}
