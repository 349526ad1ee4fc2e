package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// Action executes side effects during a transition. Returning an error
// aborts the transition.
type Action[S, E comparable] func(ctx context.Context, from, to S, event E) error

type transition[S, E comparable] struct {
	to      S
	actions []Action[S, E]
}

// Machine is a concurrency-safe finite state machine over comparable state
// and event types. Each state maps an event to at most one target.
type Machine[S, E comparable] struct {
	mu          sync.RWMutex
	current     S
	transitions map[S]map[E]transition[S, E]
}

func (m *Machine[S, E]) Current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Is reports whether the machine is in state s.
func (m *Machine[S, E]) Is(s S) bool {
	return m.Current() == s
}

// Fire applies event to the current state.
func (m *Machine[S, E]) Fire(ctx context.Context, event E) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.transitions[m.current][event]
	if !ok {
		return newErrNoTransitionAvailable(m.current, event)
	}
	for _, action := range t.actions {
		if err := action(ctx, m.current, t.to, event); err != nil {
			return fmt.Errorf("action failed: %w", err)
		}
	}
	m.current = t.to
	return nil
}
