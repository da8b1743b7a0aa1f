// Package animation provides the transition engine shared by every animated
// widget: named animation profiles, easing curves, spring physics, a
// single-threaded frame scheduler and interruptible channels.
//
// # Core Components
//
//   - [Scheduler]: the cooperative UI-thread loop. The host calls Step once per
//     display frame; Step runs dispatched closures, due timers and tickers.
//
//   - [Channel]: one animated scalar (height, rotation, opacity, color mix,
//     scale). Channels retarget from their current interpolated value and
//     fire their settle callback at most once.
//
//   - [Resolver]: maps an animation type name plus a size context to a
//     [Motion], which expands into one or more [Stage] values.
//
//   - [SpringSimulation]: damped harmonic oscillator used by spring profiles.
//
// # Basic Usage
//
//	sched := animation.NewScheduler(animation.SystemClock{})
//	height := animation.NewChannel(sched, "height", 0)
//	motion := animation.DefaultResolver().Resolve("spring", animation.Context{Size: "md"})
//	height.Animate(motion.Plan(height.Sample(), 120), func() {
//	    fmt.Println("expanded")
//	})
//
//	// Every frame, from the host:
//	sched.Step()
//	paint(height.Sample())
package animation

import "time"

// Ticker is a per-frame callback registered with a [Scheduler]. While
// active, every Step invokes it with the time since Start, in start order.
// Channels own one ticker each.
type Ticker struct {
	sched    *Scheduler
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker returns an inactive ticker bound to s.
func (s *Scheduler) NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		sched:    s,
		callback: callback,
	}
}

// Start registers the ticker. Starting an active ticker keeps its origin.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = t.sched.Now()
	t.sched.seq++
	t.sched.tickers[t] = t.sched.seq
}

// Stop unregisters the ticker; the current Step skips it if not yet run.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	delete(t.sched.tickers, t)
}

// IsActive reports whether the ticker is registered.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed is zero for an inactive ticker.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return t.sched.Now().Sub(t.start)
}
