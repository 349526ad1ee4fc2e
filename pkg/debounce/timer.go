package debounce

import (
	"sync"
	"time"
)

// Timer is a trailing-edge debounce handle: at most one call is pending and
// every Schedule replaces the previous one.
//
// A callback that was already released by the scheduler when it got
// superseded is dropped, so only the most recently scheduled function
// ever runs.
type Timer struct {
	mu      sync.Mutex
	sched   Scheduler
	delay   time.Duration
	pending Stopper
	gen     uint64
	stopped bool
}

// New returns a Timer that waits delay after the last Schedule call.
// A nil scheduler uses RealScheduler.
func New(delay time.Duration, sched Scheduler) *Timer {
	if sched == nil {
		sched = RealScheduler{}
	}
	return &Timer{sched: sched, delay: delay}
}

// Delay returns the debounce interval.
func (t *Timer) Delay() time.Duration {
	return t.delay
}

// Schedule cancels any pending call and schedules fn.
// It returns false once the timer has been stopped.
func (t *Timer) Schedule(fn func()) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return false
	}
	t.cancelLocked()

	gen := t.gen
	t.pending = t.sched.AfterFunc(t.delay, func() {
		t.mu.Lock()
		if t.stopped || t.gen != gen {
			t.mu.Unlock()
			return
		}
		t.pending = nil
		t.mu.Unlock()

		fn()
	})
	return true
}

// Cancel drops the pending call, if any, and reports whether there was one.
func (t *Timer) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancelLocked()
}

// Pending reports whether a call is waiting to run.
func (t *Timer) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending != nil
}

// Stop cancels the pending call and makes every later Schedule a no-op.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked()
	t.stopped = true
}

func (t *Timer) cancelLocked() bool {
	t.gen++
	if t.pending == nil {
		return false
	}
	t.pending.Stop()
	t.pending = nil
	return true
}
