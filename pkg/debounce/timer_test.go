package debounce_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/debounce"
)

func TestTimer_CoalescesBurst(t *testing.T) {
	t.Parallel()

	clock := debounce.NewManualScheduler()
	timer := debounce.New(500*time.Millisecond, clock)

	var got []int
	for i := 1; i <= 5; i++ {
		v := i
		require.True(t, timer.Schedule(func() { got = append(got, v) }))
		clock.Advance(100 * time.Millisecond)
	}

	assert.Empty(t, got, "nothing fires while input keeps coming")
	assert.True(t, timer.Pending())
	assert.Equal(t, 1, clock.Pending())

	clock.Advance(400 * time.Millisecond)
	assert.Equal(t, []int{5}, got)
	assert.False(t, timer.Pending())
	assert.Equal(t, 0, clock.Pending())
}

func TestTimer_FiresAfterDelay(t *testing.T) {
	t.Parallel()

	clock := debounce.NewManualScheduler()
	timer := debounce.New(500*time.Millisecond, clock)

	fired := 0
	timer.Schedule(func() { fired++ })

	assert.Equal(t, 0, clock.Advance(499*time.Millisecond))
	assert.Equal(t, 0, fired)
	assert.Equal(t, 1, clock.Advance(time.Millisecond))
	assert.Equal(t, 1, fired)
	assert.Equal(t, 500*time.Millisecond, clock.Elapsed())
}

func TestTimer_Cancel(t *testing.T) {
	t.Parallel()

	clock := debounce.NewManualScheduler()
	timer := debounce.New(time.Second, clock)

	assert.False(t, timer.Cancel())

	fired := false
	timer.Schedule(func() { fired = true })
	assert.True(t, timer.Cancel())
	assert.False(t, timer.Pending())

	clock.Advance(time.Hour)
	assert.False(t, fired)
}

func TestTimer_Stop(t *testing.T) {
	t.Parallel()

	clock := debounce.NewManualScheduler()
	timer := debounce.New(time.Second, clock)

	fired := false
	timer.Schedule(func() { fired = true })
	timer.Stop()

	assert.False(t, timer.Schedule(func() { fired = true }))
	clock.Advance(time.Hour)
	assert.False(t, fired)
	assert.Equal(t, 0, clock.Pending())
}

func TestTimer_RescheduleFromCallback(t *testing.T) {
	t.Parallel()

	clock := debounce.NewManualScheduler()
	timer := debounce.New(100*time.Millisecond, clock)

	runs := 0
	var tick func()
	tick = func() {
		runs++
		if runs < 3 {
			timer.Schedule(tick)
		}
	}
	timer.Schedule(tick)

	assert.Equal(t, 3, clock.Advance(time.Second))
	assert.Equal(t, 3, runs)
}

func TestTimer_DefaultsToRealScheduler(t *testing.T) {
	t.Parallel()

	timer := debounce.New(10*time.Millisecond, nil)
	assert.Equal(t, 10*time.Millisecond, timer.Delay())

	var calls atomic.Int32
	for range 5 {
		timer.Schedule(func() { calls.Add(1) })
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestManualScheduler_Order(t *testing.T) {
	t.Parallel()

	clock := debounce.NewManualScheduler()
	var order []string
	clock.AfterFunc(300*time.Millisecond, func() { order = append(order, "c") })
	clock.AfterFunc(100*time.Millisecond, func() { order = append(order, "a") })
	stopped := clock.AfterFunc(200*time.Millisecond, func() { order = append(order, "x") })
	clock.AfterFunc(100*time.Millisecond, func() { order = append(order, "b") })

	assert.True(t, stopped.Stop())
	assert.False(t, stopped.Stop())

	assert.Equal(t, 3, clock.Advance(time.Second))
	assert.Equal(t, []string{"a", "b", "c"}, order)
}
