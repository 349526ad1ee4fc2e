// Package debounce provides a cancellable, trailing-edge delayed call.
//
// A Timer holds at most one pending call. Each Schedule cancels the previous
// call and starts the delay again, so a burst of calls results in a single
// execution of the last function once input pauses. Nothing is dropped
// except superseded calls.
//
//	t := debounce.New(500*time.Millisecond, nil)
//	t.Schedule(func() { validate(latest) })
//	defer t.Stop()
//
// The Scheduler interface decouples the timer from the wall clock.
// RealScheduler uses time.AfterFunc; ManualScheduler is a virtual clock for
// tests and hosts that drive time themselves.
package debounce
