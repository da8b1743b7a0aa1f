package testing

import (
	"sync"
	"time"

	"github.com/go-drift/motion/pkg/animation"
)

// Epoch is the instant every FakeClock starts at.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// FakeClock is an [animation.Clock] that only moves when told to. Safe for
// concurrent use, so promise tasks may read it from their goroutines.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

var _ animation.Clock = (*FakeClock)(nil)

// NewFakeClock returns a clock at [Epoch].
func NewFakeClock() *FakeClock {
	return &FakeClock{now: Epoch}
}

// Now returns the fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d. Negative durations are ignored;
// the scheduler assumes time never runs backwards.
func (c *FakeClock) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Set moves the clock to t.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Elapsed reports how far the clock has moved since [Epoch].
func (c *FakeClock) Elapsed() time.Duration {
	return c.Now().Sub(Epoch)
}

// Pump drives sched for total time in frame-sized steps of clk, stepping
// after each advance. A non-positive frame uses [FrameDuration].
func Pump(sched *animation.Scheduler, clk *FakeClock, total, frame time.Duration) {
	if frame <= 0 {
		frame = FrameDuration
	}
	for total > 0 {
		step := min(frame, total)
		clk.Advance(step)
		sched.Step()
		total -= step
	}
}
