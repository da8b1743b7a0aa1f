package animation

import (
	"fmt"
	"time"
)

// ChannelStatus represents the current state of a channel.
//
//	           SetTarget / Animate
//	Idle ──────────────────────────► Running
//	  ▲                                 │
//	  │   settle / Cancel / Jump        │
//	  └─────────────────────────────────┘
type ChannelStatus int

const (
	// ChannelIdle means the channel is at rest.
	ChannelIdle ChannelStatus = iota
	// ChannelRunning means a trajectory is in flight.
	ChannelRunning
)

// String returns a human-readable representation of the status.
func (s ChannelStatus) String() string {
	switch s {
	case ChannelIdle:
		return "idle"
	case ChannelRunning:
		return "running"
	default:
		return fmt.Sprintf("ChannelStatus(%d)", int(s))
	}
}

// Channel animates one named scalar property.
//
// A new target always starts from the value the channel shows at that
// instant, never from the previous target, so interrupted transitions never
// jump. Spring legs also inherit the current velocity.
//
// Channels belong to one [Scheduler] and must only be used on its UI thread.
// Always call Dispose when the owning widget is torn down.
type Channel struct {
	name  string
	sched *Scheduler

	value    float64
	velocity float64
	target   float64
	status   ChannelStatus

	// Active trajectory.
	stages     []Stage
	stage      int
	legStart   time.Time
	legFrom    float64
	spring     *SpringSimulation
	lastSample time.Time
	onSettle   func()
	ticker     *Ticker

	listeners      map[int]func()
	nextListenerID int
	disposed       bool
}

// NewChannel creates an idle channel at initial.
func NewChannel(sched *Scheduler, name string, initial float64) *Channel {
	return &Channel{
		name:      name,
		sched:     sched,
		value:     initial,
		target:    initial,
		listeners: make(map[int]func()),
	}
}

// Name returns the channel name.
func (c *Channel) Name() string { return c.name }

// Target returns the final target of the current or last trajectory.
func (c *Channel) Target() float64 { return c.target }

// InFlight reports whether a trajectory is running.
func (c *Channel) InFlight() bool { return c.status == ChannelRunning }

// Status returns the channel status.
func (c *Channel) Status() ChannelStatus { return c.status }

// Velocity returns the current velocity in units per second.
func (c *Channel) Velocity() float64 {
	c.advance(c.sched.Now())
	return c.velocity
}

// SetTarget begins or redirects a single-stage trajectory toward target.
// onSettle, if non-nil, fires once when the channel lands on target, unless
// the trajectory is superseded or cancelled first.
func (c *Channel) SetTarget(target float64, profile Profile, onSettle func()) {
	c.Animate([]Stage{{Target: target, Profile: profile}}, onSettle)
}

// Animate runs stages in order, starting from the current interpolated
// value. Any in-flight trajectory, including its remaining stages and settle
// callback, is abandoned. An empty stage list behaves like Cancel.
func (c *Channel) Animate(stages []Stage, onSettle func()) {
	if c.disposed {
		return
	}
	now := c.sched.Now()
	c.advance(now)
	if len(stages) == 0 {
		c.halt()
		return
	}

	c.stages = append(c.stages[:0:0], stages...)
	c.onSettle = onSettle
	c.target = stages[len(stages)-1].Target
	c.beginStage(0, now)
	c.status = ChannelRunning

	if c.ticker == nil {
		c.ticker = c.sched.NewTicker(func(time.Duration) { c.tick() })
	}
	c.ticker.Start()
}

// Cancel freezes the channel at its current value and drops the pending
// settle callback.
func (c *Channel) Cancel() {
	if c.disposed {
		return
	}
	c.advance(c.sched.Now())
	c.halt()
}

// Jump cancels any trajectory and sets the value immediately.
func (c *Channel) Jump(value float64) {
	if c.disposed {
		return
	}
	c.halt()
	c.value = value
	c.target = value
	c.velocity = 0
	c.notifyListeners()
}

// Sample returns the interpolated value at the scheduler's current time.
// Sampling never fires callbacks; settlement happens on the next frame.
func (c *Channel) Sample() float64 {
	if c.status == ChannelRunning {
		c.advance(c.sched.Now())
	}
	return c.value
}

// AddListener adds a callback fired after each frame the value changes.
// Returns an unsubscribe function.
func (c *Channel) AddListener(fn func()) func() {
	if c.disposed {
		return func() {}
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// Dispose stops the channel. Pending settle callbacks never fire and later
// calls are no-ops.
func (c *Channel) Dispose() {
	c.halt()
	c.disposed = true
	c.listeners = nil
}

func (c *Channel) beginStage(i int, now time.Time) {
	c.stage = i
	c.legStart = now
	c.lastSample = now
	c.legFrom = c.value
	st := c.stages[i]
	if st.Profile.Kind == KindSpring {
		c.spring = NewSpringSimulation(st.Profile.Spring, c.value, c.velocity, st.Target)
	} else {
		c.spring = nil
	}
}

// advance moves the trajectory to now, crossing finished stages. It returns
// true when the final stage has landed.
func (c *Channel) advance(now time.Time) bool {
	if c.status != ChannelRunning {
		return false
	}
	for {
		st := c.stages[c.stage]
		var done bool
		var doneAt time.Time
		if st.Profile.Kind == KindSpring {
			done = c.spring.Step(now.Sub(c.lastSample).Seconds())
			c.value = c.spring.Position()
			c.velocity = c.spring.Velocity()
			c.lastSample = now
			doneAt = now
		} else {
			elapsed := now.Sub(c.legStart)
			d := st.Profile.Duration
			progress := 1.0
			if d > 0 {
				progress = min(float64(elapsed)/float64(d), 1)
			}
			eased := progress
			if st.Profile.Curve != nil {
				eased = st.Profile.Curve(progress)
			}
			prev := c.value
			c.value = c.legFrom + (st.Target-c.legFrom)*eased
			if dt := now.Sub(c.lastSample).Seconds(); dt > 0 {
				c.velocity = (c.value - prev) / dt
			}
			c.lastSample = now
			done = progress >= 1
			doneAt = c.legStart.Add(d)
		}
		if !done {
			return false
		}
		c.value = st.Target
		if c.stage == len(c.stages)-1 {
			c.velocity = 0
			return true
		}
		// The next leg begins when this one ended so frame jitter does not
		// stretch multi-stage motions.
		if doneAt.After(now) {
			doneAt = now
		}
		c.beginStage(c.stage+1, doneAt)
	}
}

func (c *Channel) tick() {
	finished := c.advance(c.sched.Now())
	c.notifyListeners()
	if !finished {
		return
	}
	cb := c.onSettle
	c.halt()
	c.value = c.target
	if cb != nil {
		cb()
	}
}

func (c *Channel) halt() {
	if c.ticker != nil {
		c.ticker.Stop()
	}
	c.status = ChannelIdle
	c.stages = nil
	c.spring = nil
	c.onSettle = nil
}

func (c *Channel) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}
