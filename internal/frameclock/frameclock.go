// Package frameclock provides the frame scheduling and timer capability
// consumed by the autoscroll loop. Two implementations are included: Ticker,
// which drives itself from a time.Ticker on a background goroutine, and
// Manual, which is stepped explicitly by the caller (the TUI update loop,
// tests).
package frameclock

import "time"

// CancelFunc cancels a pending frame callback or timer. Calling it more than
// once, or after the callback fired, is a no-op.
type CancelFunc func()

// Clock schedules work against a frame source. Frame callbacks are one-shot:
// a callback that wants the next frame too must call Schedule again.
// Implementations never run two callbacks concurrently with each other.
type Clock interface {
	// Schedule registers fn to run on the next frame with the frame
	// timestamp. Only one frame callback is pending at a time; scheduling
	// again replaces the previous registration.
	Schedule(fn func(now time.Time)) CancelFunc

	// AfterFunc runs fn once d has elapsed on this clock.
	AfterFunc(d time.Duration, fn func()) CancelFunc

	// Now reports the clock's current time.
	Now() time.Time
}
