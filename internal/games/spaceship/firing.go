package spaceship

import (
	"time"

	"github.com/vovakirdan/tui-spaceship/internal/core"
)

// FireCounter turns fire presses into a monotonically increasing index.
//
// Presses are sampled once per window: any number of presses inside one
// window is accepted as a single event. The index starts at 0, which is the
// start-up value and never corresponds to a press.
type FireCounter struct {
	index   int
	pending bool
	window  core.Interval
}

// NewFireCounter creates a counter sampling presses every window.
func NewFireCounter(window time.Duration) *FireCounter {
	return &FireCounter{window: core.NewInterval(window, 0)}
}

// Press records a fire event for the current window.
func (f *FireCounter) Press() {
	f.pending = true
}

// Update closes every window that ended by now. It reports whether a
// pending press was accepted, in which case Index has advanced by one.
func (f *FireCounter) Update(now time.Duration) bool {
	accepted := false
	for n := f.window.Due(now); n > 0; n-- {
		if f.pending {
			f.index++
			f.pending = false
			accepted = true
		}
	}
	return accepted
}

// Index returns the index of the last accepted fire event.
func (f *FireCounter) Index() int {
	return f.index
}
