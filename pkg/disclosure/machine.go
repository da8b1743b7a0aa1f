// Package disclosure provides the generic state machine shared by every
// stateful widget: it owns a logical state, derives channel targets from it
// and drives interruptible transitions toward them.
//
// A concrete widget supplies a [Variant] describing its channels and target
// function; the machine handles controlled/uncontrolled ownership, the
// disabled guard, two-phase measurement and the imperative [Controller].
package disclosure

import (
	"slices"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/rs/zerolog"
)

// Env is the context a target function sees besides the state itself.
type Env struct {
	// Natural is the measured content size. Zero until Measured.
	Natural Size
	// Measured reports whether the rendering host delivered a natural size.
	Measured bool
	// Context is the resolver context of the widget.
	Context animation.Context
}

// Variant describes one widget kind to the machine.
type Variant[S comparable] struct {
	// Name identifies the widget in logs and error reports.
	Name string
	// Channels are the animated properties, created at construction.
	Channels []string
	// Targets maps a state to channel targets. Channels missing from the
	// result keep their current trajectory.
	Targets func(S, Env) map[string]float64
	// Next returns the state Toggle moves to. Nil flips between OpenState
	// and ClosedState.
	Next func(S) S
	// OpenState and ClosedState are the states Open and Close request.
	OpenState   S
	ClosedState S
	// MeasuredChannels are held at 0 until Measure delivers a natural size.
	MeasuredChannels []string
	// Pulse channels always run the "pulse" motion when they retarget,
	// regardless of the widget's animation type.
	Pulse []string
}

// Props are the host-owned inputs of a machine.
type Props[S comparable] struct {
	// Value makes the machine controlled when non-nil.
	Value *S
	// Default seeds an uncontrolled machine.
	Default  S
	Disabled bool

	AnimationType string
	Size          string
	Variant       string

	// OnStateChange fires once per committed uncontrolled transition, or
	// with the requested state when controlled.
	OnStateChange func(S)

	// Controller, if set, is bound to Open, Close and Toggle.
	Controller *Controller
}

// Option configures a Machine.
type Option func(*options)

type options struct {
	resolver *animation.Resolver
	log      zerolog.Logger
}

// WithResolver sets the resolver used for the animation type.
func WithResolver(r *animation.Resolver) Option {
	return func(o *options) {
		if r != nil {
			o.resolver = r
		}
	}
}

// WithLogger sets the machine's debug logger.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// Machine is a disclosure state machine for one widget instance. All methods
// must be called on the scheduler's UI thread.
type Machine[S comparable] struct {
	sched    *animation.Scheduler
	variant  Variant[S]
	props    Props[S]
	resolver *animation.Resolver
	log      zerolog.Logger
	motion   animation.Motion

	state    S
	channels map[string]*animation.Channel
	natural  Size
	measured bool

	// Settle tracking for the current transition.
	generation  uint64
	pending     map[string]struct{}
	settled     bool
	settleTimer *animation.Timer

	commitListeners map[int]func(from, to S)
	settleListeners map[int]func(S)
	nextListenerID  int

	warnedNoHandler bool
	unbind          func()
	disposed        bool
}

// New creates a machine at its initial state with every channel resting on
// that state's targets.
func New[S comparable](sched *animation.Scheduler, v Variant[S], p Props[S], opts ...Option) *Machine[S] {
	o := options{resolver: animation.DefaultResolver(), log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	m := &Machine[S]{
		sched:           sched,
		variant:         v,
		props:           p,
		resolver:        o.resolver,
		log:             o.log.With().Str("widget", v.Name).Logger(),
		state:           p.Default,
		channels:        make(map[string]*animation.Channel, len(v.Channels)),
		pending:         make(map[string]struct{}),
		settled:         true,
		commitListeners: make(map[int]func(from, to S)),
		settleListeners: make(map[int]func(S)),
	}
	if p.Value != nil {
		m.state = *p.Value
	}
	m.motion = m.resolve()

	targets := m.targets(m.state)
	for _, name := range v.Channels {
		m.channels[name] = animation.NewChannel(sched, name, targets[name])
	}
	m.bind()
	return m
}

// State returns the committed logical state.
func (m *Machine[S]) State() S { return m.state }

// Controlled reports whether the host owns the state.
func (m *Machine[S]) Controlled() bool { return m.props.Value != nil }

// Disabled reports whether user transitions are blocked.
func (m *Machine[S]) Disabled() bool { return m.props.Disabled }

// Props returns the current props.
func (m *Machine[S]) Props() Props[S] { return m.props }

// Toggle requests the variant's next state.
func (m *Machine[S]) Toggle() {
	m.request(m.next(m.state))
}

// Open requests the open state.
func (m *Machine[S]) Open() { m.request(m.variant.OpenState) }

// Close requests the closed state.
func (m *Machine[S]) Close() { m.request(m.variant.ClosedState) }

// SetState requests an explicit state.
func (m *Machine[S]) SetState(s S) { m.request(s) }

func (m *Machine[S]) next(s S) S {
	if m.variant.Next != nil {
		return m.variant.Next(s)
	}
	if s == m.variant.OpenState {
		return m.variant.ClosedState
	}
	return m.variant.OpenState
}

// request is the single entry point for user, handle and method driven
// transitions.
func (m *Machine[S]) request(next S) {
	if m.disposed || m.props.Disabled || next == m.state {
		return
	}
	if m.props.Value != nil {
		if m.props.OnStateChange == nil {
			if !m.warnedNoHandler {
				m.warnedNoHandler = true
				errors.Warn("disclosure.Machine.request", m.variant.Name,
					&errors.MissingHandlerError{Handler: "OnStateChange"})
			}
			return
		}
		m.props.OnStateChange(next)
		return
	}
	m.commit(next)
	if m.props.OnStateChange != nil {
		m.props.OnStateChange(next)
	}
}

// Update applies new props. A controlled value that differs from the current
// state always commits, even when disabled, and does not echo OnStateChange.
func (m *Machine[S]) Update(p Props[S]) {
	if m.disposed {
		return
	}
	old := m.props
	m.props = p

	if old.AnimationType != p.AnimationType || old.Size != p.Size || old.Variant != p.Variant {
		m.motion = m.resolve()
	}
	if old.Controller != p.Controller {
		if m.unbind != nil {
			m.unbind()
			m.unbind = nil
		}
		m.bind()
	}
	if p.Value != nil && *p.Value != m.state {
		m.commit(*p.Value)
	}
}

// Measure delivers the natural content size. The first measurement, or a
// changed one, retargets the measured channels.
func (m *Machine[S]) Measure(size Size) {
	if m.disposed {
		return
	}
	if m.measured && size == m.natural {
		return
	}
	m.natural = size
	m.measured = true
	m.animate(m.variant.MeasuredChannels, m.targets(m.state), true)
}

// Refresh retargets the current state's channels after something their
// Targets function reads changed outside the machine. Channels already
// heading to their target keep their trajectory.
func (m *Machine[S]) Refresh() {
	if m.disposed {
		return
	}
	m.animate(m.variant.Channels, m.targets(m.state), true)
}

// Measured reports whether a natural size has been delivered.
func (m *Machine[S]) Measured() bool { return m.measured }

// Natural returns the last measured size.
func (m *Machine[S]) Natural() Size { return m.natural }

// NeedsOffstageLayout reports whether the host must lay the content out
// invisibly to obtain a measurement before the first reveal.
func (m *Machine[S]) NeedsOffstageLayout() bool {
	return len(m.variant.MeasuredChannels) > 0 && !m.measured
}

// Channel returns the named channel, or nil.
func (m *Machine[S]) Channel(name string) *animation.Channel {
	return m.channels[name]
}

// Sample returns the named channel's current value, or 0 if unknown.
func (m *Machine[S]) Sample(name string) float64 {
	if ch := m.channels[name]; ch != nil {
		return ch.Sample()
	}
	return 0
}

// Snapshot samples every channel.
func (m *Machine[S]) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(m.channels))
	for name, ch := range m.channels {
		out[name] = ch.Sample()
	}
	return out
}

// Motion returns the resolved motion.
func (m *Machine[S]) Motion() animation.Motion { return m.motion }

// Settled reports whether no channel is in flight.
func (m *Machine[S]) Settled() bool {
	for _, ch := range m.channels {
		if ch.InFlight() {
			return false
		}
	}
	return true
}

// AddCommitListener registers fn to run after every committed transition,
// controlled or not. Returns an unsubscribe function.
func (m *Machine[S]) AddCommitListener(fn func(from, to S)) func() {
	if m.disposed {
		return func() {}
	}
	id := m.nextListenerID
	m.nextListenerID++
	m.commitListeners[id] = fn
	return func() { delete(m.commitListeners, id) }
}

// AddSettleListener registers fn to run once all channels of a committed
// transition have settled. A superseded transition never reports. Returns an
// unsubscribe function.
func (m *Machine[S]) AddSettleListener(fn func(S)) func() {
	if m.disposed {
		return func() {}
	}
	id := m.nextListenerID
	m.nextListenerID++
	m.settleListeners[id] = fn
	return func() { delete(m.settleListeners, id) }
}

// Dispose cancels every channel and timer and unbinds the controller. No
// callback belonging to the machine fires afterwards.
func (m *Machine[S]) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	m.settleTimer.Stop()
	for _, ch := range m.channels {
		ch.Dispose()
	}
	if m.unbind != nil {
		m.unbind()
		m.unbind = nil
	}
	m.commitListeners = nil
	m.settleListeners = nil
}

func (m *Machine[S]) bind() {
	if m.props.Controller == nil {
		return
	}
	m.unbind = m.props.Controller.Bind(Actions{
		Open:   m.Open,
		Close:  m.Close,
		Toggle: m.Toggle,
	})
}

func (m *Machine[S]) context() animation.Context {
	return animation.Context{Size: m.props.Size, Variant: m.props.Variant}
}

func (m *Machine[S]) resolve() animation.Motion {
	return m.resolver.Resolve(m.props.AnimationType, m.context())
}

func (m *Machine[S]) targets(s S) map[string]float64 {
	out := make(map[string]float64, len(m.variant.Channels))
	if m.variant.Targets != nil {
		env := Env{Natural: m.natural, Measured: m.measured, Context: m.context()}
		for name, v := range m.variant.Targets(s, env) {
			out[name] = v
		}
	}
	if !m.measured {
		for _, name := range m.variant.MeasuredChannels {
			if _, ok := out[name]; ok {
				out[name] = 0
			}
		}
	}
	return out
}

func (m *Machine[S]) commit(next S) {
	prev := m.state
	m.state = next
	m.log.Debug().Interface("from", prev).Interface("to", next).Msg("state committed")

	m.generation++
	clear(m.pending)
	m.settled = false
	m.settleTimer.Stop()
	m.animate(m.variant.Channels, m.targets(next), false)
	if len(m.pending) == 0 {
		// Nothing moves; report the settle on the next frame so listeners
		// always run outside the committing call.
		gen := m.generation
		m.settleTimer = m.sched.AfterFunc(0, func() {
			if !m.disposed && gen == m.generation && len(m.pending) == 0 {
				m.notifySettled()
			}
		})
	}

	for _, fn := range m.commitListeners {
		fn(prev, next)
	}
}

// animate retargets the named channels from their current values. With
// keep set, channels already in flight toward their target are left alone.
func (m *Machine[S]) animate(names []string, targets map[string]float64, keep bool) {
	gen := m.generation
	for _, name := range names {
		ch := m.channels[name]
		target, ok := targets[name]
		if ch == nil || !ok {
			continue
		}
		if keep && ch.InFlight() && ch.Target() == target {
			continue
		}
		motion := m.motion
		if slices.Contains(m.variant.Pulse, name) {
			motion = m.resolver.Resolve("pulse", m.context())
		}
		stages := motion.Plan(ch.Sample(), target)
		if !ch.InFlight() && ch.Sample() == target && (keep || len(stages) == 1) {
			continue
		}
		if m.settled {
			// The commit already reported; a late retarget does not report again.
			ch.Animate(stages, nil)
			continue
		}
		m.pending[name] = struct{}{}
		ch.Animate(stages, func() { m.channelSettled(gen, name) })
	}
}

func (m *Machine[S]) channelSettled(gen uint64, name string) {
	if m.disposed || gen != m.generation {
		return
	}
	delete(m.pending, name)
	if len(m.pending) == 0 {
		m.notifySettled()
	}
}

func (m *Machine[S]) notifySettled() {
	if m.settled {
		return
	}
	m.settled = true
	for _, fn := range m.settleListeners {
		fn(m.state)
	}
}
