// Package clock provides time sources and single-shot cancelable tasks.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Task is a scheduled callback that can be canceled before it fires.
type Task interface {
	// Stop cancels the task. It reports whether the task was still pending.
	Stop() bool
}

// Scheduler runs a callback once after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Task
}

// System is the wall clock with monotonic readings.
type System struct{}

// Now implements Clock.
func (System) Now() time.Time {
	return time.Now()
}

// StopTask cancels t if it is non-nil.
func StopTask(t Task) {
	if t != nil {
		t.Stop()
	}
}
