// Package schedule supplies the timer and animation-frame primitives the
// toast manager runs on. Every implementation invokes callbacks on a single
// goroutine: Manual inside Advance and Frame, Loop wherever the host calls
// Next and RunFrame.
package schedule

import "time"

// Handle identifies a pending callback.
type Handle interface {
	// Cancel prevents the callback from running. It reports whether the
	// callback was still pending.
	Cancel() bool
}

// Scheduler runs callbacks after a delay or on the next animation frame.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Handle
	RequestAnimationFrame(fn func()) Handle
}
