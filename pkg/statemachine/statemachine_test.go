package statemachine_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/statemachine"
)

type state string

type event string

const (
	draft     state = "draft"
	inReview  state = "in_review"
	approved  state = "approved"
	published state = "published"

	submit  event = "submit"
	approve event = "approve"
	reject  event = "reject"
	publish event = "publish"
)

func TestMachine_BasicTransitions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := statemachine.MustNew(draft,
		statemachine.WithTransition(draft, inReview, submit),
		statemachine.WithTransition(inReview, approved, approve),
	)

	assert.Equal(t, draft, m.Current())

	require.NoError(t, m.Fire(ctx, submit))
	assert.True(t, m.Is(inReview))

	require.NoError(t, m.Fire(ctx, approve))
	assert.Equal(t, approved, m.Current())
}

func TestMachine_NoTransition(t *testing.T) {
	t.Parallel()

	m := statemachine.MustNew(draft,
		statemachine.WithTransition(draft, inReview, submit),
	)

	err := m.Fire(context.Background(), publish)
	var noTransition *statemachine.ErrNoTransitionAvailable
	require.ErrorAs(t, err, &noTransition)
	assert.Equal(t, "draft", noTransition.StateName)
	assert.Equal(t, "no transition available from state 'draft' for event 'publish'", err.Error())
	assert.Equal(t, draft, m.Current())
}

func TestMachine_Actions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("actions run in order before the state changes", func(t *testing.T) {
		var calls []string
		m := statemachine.MustNew(draft,
			statemachine.WithTransition(draft, inReview, submit,
				statemachine.WithAction(func(_ context.Context, from, to state, ev event) error {
					calls = append(calls, string(from)+">"+string(to)+":"+string(ev))
					return nil
				}),
				statemachine.WithAction(func(context.Context, state, state, event) error {
					calls = append(calls, "second")
					return nil
				}),
			),
		)

		require.NoError(t, m.Fire(ctx, submit))
		assert.Equal(t, []string{"draft>in_review:submit", "second"}, calls)
	})

	t.Run("action error aborts the transition", func(t *testing.T) {
		boom := errors.New("boom")
		m := statemachine.MustNew(approved,
			statemachine.WithTransition(approved, published, publish,
				statemachine.WithAction(func(context.Context, state, state, event) error { return boom }),
			),
		)

		err := m.Fire(ctx, publish)
		require.ErrorIs(t, err, boom)
		assert.Equal(t, approved, m.Current())
	})
}

func TestMachine_SelfTransition(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := statemachine.MustNew(draft,
		statemachine.WithTransition(draft, inReview, submit),
		statemachine.WithTransition(inReview, inReview, submit),
	)

	for range 3 {
		require.NoError(t, m.Fire(ctx, submit))
		assert.Equal(t, inReview, m.Current())
	}
}

func TestWithTransition_Conflict(t *testing.T) {
	t.Parallel()

	t.Run("second target for the same event", func(t *testing.T) {
		_, err := statemachine.New(draft,
			statemachine.WithTransition(draft, inReview, submit),
			statemachine.WithTransition(draft, approved, submit),
		)
		assert.Error(t, err)
	})

	t.Run("repeating a transition is allowed", func(t *testing.T) {
		_, err := statemachine.New(draft,
			statemachine.WithTransition(draft, inReview, submit),
			statemachine.WithTransition(draft, inReview, submit),
		)
		assert.NoError(t, err)
	})

	t.Run("must new panics", func(t *testing.T) {
		assert.Panics(t, func() {
			statemachine.MustNew(draft,
				statemachine.WithTransition(draft, inReview, submit),
				statemachine.WithTransition(draft, approved, submit),
			)
		})
	})
}

func TestMachine_Concurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := statemachine.MustNew(draft,
		statemachine.WithTransition(draft, inReview, submit),
		statemachine.WithTransition(inReview, draft, reject),
	)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				_ = m.Fire(ctx, submit)
				_ = m.Is(inReview)
				_ = m.Fire(ctx, reject)
			}
		}()
	}
	wg.Wait()

	assert.Contains(t, []state{draft, inReview}, m.Current())
}
