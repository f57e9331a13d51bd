package countdown

import "time"

// Clock is a virtual-time Scheduler. Time only moves when Advance is called,
// which makes rounds deterministic under test and lets a UI loop feed in the
// real frame time.
//
// Clock is not safe for concurrent use; it belongs to a single event loop.
type Clock struct {
	now       time.Duration
	timers    []*clockTimer
	advancing bool
}

// NewClock creates a clock at time zero with no timers.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the virtual time elapsed since the clock was created.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Pending returns the number of active timers.
func (c *Clock) Pending() int {
	n := 0
	for _, t := range c.timers {
		if t.Active() {
			n++
		}
	}
	return n
}

// Start begins a countdown of total length that ticks every interval.
func (c *Clock) Start(total, interval time.Duration, l Listener) Timer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if total < 0 {
		total = 0
	}

	t := &clockTimer{
		clock:     c,
		listener:  l,
		startedAt: c.now,
		total:     total,
		interval:  interval,
	}
	t.due = t.nextDue(c.now)
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d and delivers every callback that
// becomes due, earliest first. Timers started from inside a callback are
// scheduled relative to the callback's time. Advance must not be called from
// a callback; such a nested call is ignored.
func (c *Clock) Advance(d time.Duration) {
	if c.advancing {
		return
	}
	if d < 0 {
		d = 0
	}

	c.advancing = true
	defer func() { c.advancing = false }()

	target := c.now + d
	for {
		t := c.earliestDue(target)
		if t == nil {
			break
		}
		c.now = t.due
		t.fire()
	}
	c.now = target
	c.prune()
}

// earliestDue returns the active timer with the earliest due time not after
// limit. Ties go to the timer started first.
func (c *Clock) earliestDue(limit time.Duration) *clockTimer {
	var best *clockTimer
	for _, t := range c.timers {
		if !t.Active() || t.due > limit {
			continue
		}
		if best == nil || t.due < best.due {
			best = t
		}
	}
	return best
}

// prune drops timers that can no longer fire.
func (c *Clock) prune() {
	kept := c.timers[:0]
	for _, t := range c.timers {
		if t.Active() {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(c.timers); i++ {
		c.timers[i] = nil
	}
	c.timers = kept
}

// clockTimer is a single countdown scheduled on a Clock.
type clockTimer struct {
	clock     *Clock
	listener  Listener
	startedAt time.Duration
	total     time.Duration
	interval  time.Duration
	due       time.Duration // absolute clock time of the next callback
	cancelled bool
	finished  bool
}

func (t *clockTimer) end() time.Duration {
	return t.startedAt + t.total
}

// nextDue returns the next tick time after from, capped at the end time.
func (t *clockTimer) nextDue(from time.Duration) time.Duration {
	next := from + t.interval
	if next > t.end() {
		next = t.end()
	}
	return next
}

// fire delivers the callback due at t.due.
func (t *clockTimer) fire() {
	remaining := t.end() - t.due
	if remaining > 0 {
		t.due = t.nextDue(t.due)
		t.listener.Tick(remaining)
		return
	}

	t.listener.Tick(0)
	if t.cancelled {
		return
	}
	t.finished = true
	t.listener.Finish()
}

func (t *clockTimer) Cancel() {
	t.cancelled = true
}

func (t *clockTimer) Remaining() time.Duration {
	if !t.Active() {
		return 0
	}
	remaining := t.end() - t.clock.now
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (t *clockTimer) Active() bool {
	return !t.cancelled && !t.finished
}
