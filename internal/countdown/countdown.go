// Package countdown provides the periodic countdown timer that paces a round.
// Timers are driven by a virtual Clock so every callback is delivered on the
// goroutine that advances the clock, one at a time and in time order.
package countdown

import "time"

// DefaultInterval is used when a timer is started with a non-positive interval.
const DefaultInterval = time.Second

// Listener receives countdown callbacks.
type Listener interface {
	// Tick reports the time still to run. The last tick reports zero.
	Tick(remaining time.Duration)

	// Finish is called exactly once when the countdown completes.
	Finish()
}

// Timer is a handle to a running countdown.
type Timer interface {
	// Cancel stops the timer. No callback is delivered after Cancel returns,
	// even when Cancel is called from inside one of the timer's own callbacks.
	// Calling Cancel more than once is safe.
	Cancel()

	// Remaining returns the time left before the countdown finishes.
	Remaining() time.Duration

	// Active reports whether the timer can still deliver callbacks.
	Active() bool
}

// Scheduler starts countdown timers.
type Scheduler interface {
	Start(total, interval time.Duration, l Listener) Timer
}
