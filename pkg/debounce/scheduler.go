package debounce

import (
	"sort"
	"sync"
	"time"
)

// Stopper cancels a scheduled call. Stop reports whether the call was
// still pending.
type Stopper interface {
	Stop() bool
}

// Scheduler runs f once after d has elapsed.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Stopper
}

// RealScheduler schedules on the runtime timer. Callbacks run on their own
// goroutine.
type RealScheduler struct{}

func (RealScheduler) AfterFunc(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
}

// ManualScheduler is a virtual clock. Nothing fires until Advance moves the
// clock past a call's due time. Callbacks run on the goroutine calling
// Advance.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   uint64
	tasks []*manualTask
}

type manualTask struct {
	s   *ManualScheduler
	due time.Duration
	seq uint64
	fn  func()
}

// NewManualScheduler returns a virtual clock starting at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) Stopper {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	task := &manualTask{s: s, due: s.now + d, seq: s.seq, fn: f}
	s.tasks = append(s.tasks, task)
	return task
}

// Advance moves the clock forward by d and runs every call that becomes
// due, earliest first. Calls scheduled by a callback also run if they fall
// inside the window. It returns the number of calls that ran.
func (s *ManualScheduler) Advance(d time.Duration) int {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	ran := 0
	for {
		s.mu.Lock()
		task := s.nextDue(target)
		if task == nil {
			s.now = target
			s.mu.Unlock()
			return ran
		}
		s.now = task.due
		s.mu.Unlock()

		task.fn()
		ran++
	}
}

// Pending reports how many calls are scheduled and not yet run or stopped.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Elapsed reports the virtual time since the scheduler was created.
func (s *ManualScheduler) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// nextDue removes and returns the earliest task due at or before target.
// Must be called with s.mu held.
func (s *ManualScheduler) nextDue(target time.Duration) *manualTask {
	if len(s.tasks) == 0 {
		return nil
	}
	sort.SliceStable(s.tasks, func(i, j int) bool {
		if s.tasks[i].due == s.tasks[j].due {
			return s.tasks[i].seq < s.tasks[j].seq
		}
		return s.tasks[i].due < s.tasks[j].due
	})
	if s.tasks[0].due > target {
		return nil
	}
	task := s.tasks[0]
	s.tasks = s.tasks[1:]
	return task
}

func (t *manualTask) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	for i, task := range t.s.tasks {
		if task == t {
			t.s.tasks = append(t.s.tasks[:i], t.s.tasks[i+1:]...)
			return true
		}
	}
	return false
}
