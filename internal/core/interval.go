package core

import "time"

// Interval is a fixed-period timer measured against a simulated clock.
// It replaces wall-clock timers so producers advance deterministically and
// can be tested without waiting.
type Interval struct {
	every time.Duration
	next  time.Duration
}

// NewInterval creates an interval whose first tick is due one period after
// start. A non-positive period never fires.
func NewInterval(every, start time.Duration) Interval {
	return Interval{every: every, next: start + every}
}

// Due returns how many ticks elapsed up to and including now, and schedules
// the next one. Callers run their update once per returned tick.
func (iv *Interval) Due(now time.Duration) int {
	n := 0
	for {
		if _, ok := iv.Take(now); !ok {
			return n
		}
		n++
	}
}

// Take consumes the earliest tick due at or before now and returns the time
// it was scheduled for.
func (iv *Interval) Take(now time.Duration) (time.Duration, bool) {
	if iv.every <= 0 || iv.next > now {
		return 0, false
	}
	at := iv.next
	iv.next += iv.every
	return at, true
}

// SetEvery changes the period. The already scheduled tick is kept; the new
// period applies from the one after it.
func (iv *Interval) SetEvery(every time.Duration) {
	iv.every = every
}
