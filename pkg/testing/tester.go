// Package testing provides deterministic frame pumping for widget tests.
//
// # Quick Start
//
//	func TestAccordion(t *testing.T) {
//	    tester := motiontest.NewTester()
//	    acc := widgets.NewAccordion(tester.Scheduler(), widgets.AccordionProps{})
//	    defer acc.Dispose()
//
//	    acc.Toggle()
//	    acc.Measure(disclosure.Size{Height: 120})
//	    require.NoError(t, tester.PumpAndSettle(2*time.Second))
//	    assert.Equal(t, 120.0, acc.Sample(widgets.ChannelHeight))
//	}
package testing

import (
	"errors"
	"time"

	"github.com/go-drift/motion/pkg/animation"
)

// FrameDuration is the fake frame interval, roughly 60Hz.
const FrameDuration = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: animations did not settle")

// Tester owns a fake clock and a scheduler driven by it.
type Tester struct {
	clock *FakeClock
	sched *animation.Scheduler
}

// NewTester creates a tester at the fake clock's epoch.
func NewTester() *Tester {
	clk := NewFakeClock()
	return &Tester{clock: clk, sched: animation.NewScheduler(clk)}
}

// Clock returns the fake clock.
func (t *Tester) Clock() *FakeClock { return t.clock }

// Scheduler returns the scheduler driven by the fake clock.
func (t *Tester) Scheduler() *animation.Scheduler { return t.sched }

// Pump runs one frame without advancing time.
func (t *Tester) Pump() {
	t.sched.Step()
}

// PumpFrames advances the clock by one frame and steps, n times.
func (t *Tester) PumpFrames(n int) {
	for range n {
		t.clock.Advance(FrameDuration)
		t.sched.Step()
	}
}

// Advance moves time forward by d in frame-sized steps, stepping the
// scheduler after each, so timers due within d fire in order.
func (t *Tester) Advance(d time.Duration) {
	Pump(t.sched, t.clock, d, FrameDuration)
}

// PumpAndSettle runs frames until no ticker is active and no dispatch is
// queued, or the timeout is reached. Pending timers do not keep it running.
func (t *Tester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	t.sched.Step()
	for elapsed < timeout {
		if !t.sched.HasActiveTickers() {
			return nil
		}
		t.clock.Advance(FrameDuration)
		t.sched.Step()
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}
