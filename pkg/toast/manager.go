// Package toast implements the auto-expiring toast stack: an ordered
// collection of timed items grouped by screen anchor, with capacity
// eviction, countdown progress, swipe-to-dismiss and stacking offsets.
//
// A Manager is constructed explicitly and handed to whatever needs to show
// toasts; it is not a global. All methods except [Promise]'s task run on the
// scheduler's UI thread.
//
//	m := toast.NewManager(sched, toast.DefaultConfig())
//	defer m.Dispose()
//	m.Success("Saved")
package toast

import (
	"math"
	"strconv"
	"time"

	"dario.cat/mergo"
	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/rs/zerolog"
)

// Channel names of a toast.
const (
	ChannelPresence = "presence"
	ChannelOffset   = "offset"
	ChannelDrag     = "drag"
	ChannelProgress = "progress"
)

// Config holds the manager's fixed settings.
type Config struct {
	// MaxToasts caps the visible toasts per anchor.
	MaxToasts int
	// DefaultDuration applies to payloads with a zero Duration.
	DefaultDuration time.Duration
	// Spacing is the stacking distance between neighbouring toasts.
	Spacing float64
	// SwipeThreshold is the drag distance that commits a dismissal.
	SwipeThreshold float64
	// ExitDistance is how far a swiped toast travels while leaving.
	ExitDistance float64
	// Position is the default anchor.
	Position Position
	// AnimationType is the default enter and exit animation.
	AnimationType string
}

// DefaultConfig returns the stock settings.
func DefaultConfig() Config {
	return Config{
		MaxToasts:       3,
		DefaultDuration: 4 * time.Second,
		Spacing:         64,
		SwipeThreshold:  80,
		ExitDistance:    400,
		Position:        Top,
		AnimationType:   "slide",
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.MaxToasts <= 0 {
		c.MaxToasts = def.MaxToasts
	}
	if c.DefaultDuration <= 0 {
		c.DefaultDuration = def.DefaultDuration
	}
	if c.Spacing <= 0 {
		c.Spacing = def.Spacing
	}
	if c.SwipeThreshold <= 0 {
		c.SwipeThreshold = def.SwipeThreshold
	}
	if c.ExitDistance <= 0 {
		c.ExitDistance = def.ExitDistance
	}
	if !c.Position.Valid() {
		c.Position = def.Position
	}
	if c.AnimationType == "" {
		c.AnimationType = def.AnimationType
	}
	return c
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the manager's debug logger.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Manager) { m.log = log }
}

// WithResolver sets the resolver for enter and exit animations.
func WithResolver(r *animation.Resolver) Option {
	return func(m *Manager) {
		if r != nil {
			m.resolver = r
		}
	}
}

// entry is the live state of one toast.
type entry struct {
	id        string
	payload   Payload
	createdAt time.Time
	seq       uint64
	exiting   bool

	timer    *animation.Timer
	presence *animation.Channel
	offset   *animation.Channel
	drag     *animation.Channel
	progress *animation.Channel

	dragging   bool
	dragOffset float64
}

// Manager owns the toast collection. All mutation goes through its methods.
type Manager struct {
	sched    *animation.Scheduler
	cfg      Config
	resolver *animation.Resolver
	log      zerolog.Logger

	items  []*entry
	seq    uint64
	nextID uint64

	listeners      map[int]func()
	nextListenerID int
	disposed       bool
}

// NewManager creates an empty manager. Zero config fields take
// [DefaultConfig] values.
func NewManager(sched *animation.Scheduler, cfg Config, opts ...Option) *Manager {
	m := &Manager{
		sched:     sched,
		cfg:       cfg.withDefaults(),
		resolver:  animation.DefaultResolver(),
		log:       zerolog.Nop(),
		listeners: make(map[int]func()),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Config returns the effective configuration.
func (m *Manager) Config() Config { return m.cfg }

// Show adds a toast and returns its id. Showing an id that is already
// visible replaces its payload in place and restarts its countdown; the
// entrance is not replayed. A toast with that id still running its exit is
// closed first, so its OnClose fires before the new one appears.
func (m *Manager) Show(p Payload) string {
	if m.disposed {
		return ""
	}
	payload, err := m.merge(p)
	if err != nil {
		errors.Report(&errors.WidgetError{Op: "toast.Manager.Show", Kind: errors.KindConfig, Widget: "toast", Err: err})
		payload = p
	}
	id := p.ID
	if id == "" {
		m.nextID++
		id = "toast-" + strconv.FormatUint(m.nextID, 10)
	}
	payload.ID = id

	for e := m.find(id); e != nil && e.exiting; e = m.find(id) {
		m.drop(e)
		if cb := e.payload.OnClose; cb != nil {
			cb()
		}
		if m.disposed {
			return ""
		}
	}
	if e := m.find(id); e != nil {
		payload.Position = e.payload.Position
		e.payload = payload
		m.startTimer(e)
		m.notify()
		return id
	}

	e := m.newEntry(id, payload)
	m.items = append(m.items, e)
	m.log.Debug().Str("id", id).Str("position", string(payload.Position)).Msg("toast shown")

	e.presence.Animate(m.motion(e).Plan(0, 1), nil)
	m.startTimer(e)
	m.evict(payload.Position)
	e.offset.Jump(m.stackOffset(e))
	m.restack(payload.Position)
	m.notify()
	return id
}

func (m *Manager) merge(p Payload) (Payload, error) {
	out := Payload{
		Type:          TypeDefault,
		Position:      m.cfg.Position,
		Duration:      m.cfg.DefaultDuration,
		AnimationType: m.cfg.AnimationType,
	}
	if err := mergo.Merge(&out, p, mergo.WithOverride); err != nil {
		return p, err
	}
	if !out.Position.Valid() {
		m.log.Debug().Str("position", string(out.Position)).Msg("unknown position, using default")
		out.Position = m.cfg.Position
	}
	return out, nil
}

func (m *Manager) newEntry(id string, p Payload) *entry {
	m.seq++
	return &entry{
		id:        id,
		payload:   p,
		createdAt: m.sched.Now(),
		seq:       m.seq,
		presence:  animation.NewChannel(m.sched, ChannelPresence, 0),
		offset:    animation.NewChannel(m.sched, ChannelOffset, 0),
		drag:      animation.NewChannel(m.sched, ChannelDrag, 0),
		progress:  animation.NewChannel(m.sched, ChannelProgress, 1),
	}
}

func (m *Manager) motion(e *entry) animation.Motion {
	return m.resolver.Resolve(e.payload.AnimationType, animation.Context{Variant: e.payload.Type.Variant()})
}

// Update merges the non-zero fields of partial into a visible toast. It does
// not restart a running countdown; it starts one if the toast had none and
// the new duration is finite, and stops it when the duration becomes
// Persistent. Unknown ids are ignored.
func (m *Manager) Update(id string, partial Payload) {
	if m.disposed {
		return
	}
	e := m.find(id)
	if e == nil || e.exiting {
		return
	}
	partial.ID = ""
	partial.Position = ""
	if err := mergo.Merge(&e.payload, partial, mergo.WithOverride); err != nil {
		errors.Report(&errors.WidgetError{Op: "toast.Manager.Update", Kind: errors.KindConfig, Widget: "toast", Err: err})
		return
	}
	switch {
	case partial.Duration < 0:
		e.timer.Stop()
		e.progress.Jump(1)
	case partial.Duration > 0 && !e.timer.Pending() && !e.dragging:
		m.startTimer(e)
	}
	m.notify()
}

// Hide runs the exit transition of a toast and then removes it. Its
// OnClose fires once the exit settles.
func (m *Manager) Hide(id string) {
	if m.disposed {
		return
	}
	if e := m.find(id); e != nil && !e.exiting {
		m.exit(e, 0)
	}
}

// HideAll hides every visible toast.
func (m *Manager) HideAll() {
	if m.disposed {
		return
	}
	for _, e := range append([]*entry(nil), m.items...) {
		if !e.exiting {
			m.exit(e, 0)
		}
	}
}

// Press fires the toast's OnPress handler.
func (m *Manager) Press(id string) {
	if e := m.find(id); e != nil && !e.exiting && e.payload.OnPress != nil {
		e.payload.OnPress()
	}
}

// PressAction fires the toast's action button.
func (m *Manager) PressAction(id string) {
	if e := m.find(id); e != nil && !e.exiting && e.payload.Action.OnPress != nil {
		e.payload.Action.OnPress()
	}
}

// Items samples every toast in insertion order, including those leaving.
func (m *Manager) Items() []Item {
	out := make([]Item, 0, len(m.items))
	for _, e := range m.items {
		out = append(out, e.sample())
	}
	return out
}

// ItemsAt samples the toasts stacked under one anchor.
func (m *Manager) ItemsAt(pos Position) []Item {
	var out []Item
	for _, e := range m.items {
		if e.payload.Position == pos {
			out = append(out, e.sample())
		}
	}
	return out
}

// Item samples one toast.
func (m *Manager) Item(id string) (Item, bool) {
	if e := m.find(id); e != nil {
		return e.sample(), true
	}
	return Item{}, false
}

// Len returns the number of visible toasts under pos.
func (m *Manager) Len(pos Position) int {
	n := 0
	for _, e := range m.items {
		if e.payload.Position == pos && !e.exiting {
			n++
		}
	}
	return n
}

// Offset returns the stacking offset a visible toast settles at: its index
// in the anchor group times Spacing, negative for bottom anchors.
func (m *Manager) Offset(id string) float64 {
	e := m.find(id)
	if e == nil {
		return 0
	}
	return m.stackOffset(e)
}

// AddListener registers fn to run whenever the collection changes.
// Returns an unsubscribe function.
func (m *Manager) AddListener(fn func()) func() {
	if m.disposed {
		return func() {}
	}
	id := m.nextListenerID
	m.nextListenerID++
	m.listeners[id] = fn
	return func() { delete(m.listeners, id) }
}

// Dispose cancels every timer and animation. No toast callback fires
// afterwards.
func (m *Manager) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	for _, e := range m.items {
		e.dispose()
	}
	m.items = nil
	m.listeners = nil
}

func (e *entry) sample() Item {
	return Item{
		ID:        e.id,
		Payload:   e.payload,
		CreatedAt: e.createdAt,
		Visible:   !e.exiting,
		Presence:  e.presence.Sample(),
		Offset:    e.offset.Sample(),
		Drag:      e.drag.Sample(),
		Progress:  e.progress.Sample(),
	}
}

func (e *entry) dispose() {
	e.timer.Stop()
	e.presence.Dispose()
	e.offset.Dispose()
	e.drag.Dispose()
	e.progress.Dispose()
}

func (m *Manager) find(id string) *entry {
	for _, e := range m.items {
		if e.id == id {
			return e
		}
	}
	return nil
}

func (m *Manager) alive(e *entry) bool {
	return !m.disposed && m.find(e.id) == e
}

// startTimer (re)starts the full countdown of e.
func (m *Manager) startTimer(e *entry) {
	e.timer.Stop()
	d := e.payload.Duration
	if d <= 0 {
		e.progress.Jump(1)
		return
	}
	e.progress.Jump(1)
	e.progress.SetTarget(0, animation.Timing(d, animation.LinearCurve), nil)
	e.timer = m.sched.AfterFunc(d, func() { m.expire(e) })
}

func (m *Manager) expire(e *entry) {
	if !m.alive(e) || e.exiting || e.dragging {
		m.log.Debug().Str("id", e.id).Msg("stale toast timer ignored")
		return
	}
	m.log.Debug().Str("id", e.id).Msg("toast expired")
	m.exit(e, 0)
}

// exit starts the leaving transition. A non-zero dir also slides the toast
// off along its swipe axis.
func (m *Manager) exit(e *entry, dir float64) {
	e.exiting = true
	e.dragging = false
	e.timer.Stop()
	e.progress.Cancel()

	profile := m.motion(e).Profile
	if dir != 0 {
		e.drag.SetTarget(math.Copysign(m.cfg.ExitDistance, dir), profile, nil)
	}
	e.presence.SetTarget(0, profile, func() { m.finishExit(e) })
	m.restack(e.payload.Position)
	m.notify()
}

func (m *Manager) finishExit(e *entry) {
	if !m.alive(e) {
		return
	}
	if cb := e.payload.OnClose; cb != nil {
		cb()
	}
	// OnClose may have disposed the manager or replaced the toast.
	if m.alive(e) {
		m.drop(e)
		m.notify()
	}
}

// drop removes e without callbacks.
func (m *Manager) drop(e *entry) {
	for i, it := range m.items {
		if it == e {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	e.dispose()
}

// evict silently drops the oldest visible toasts under pos beyond capacity.
func (m *Manager) evict(pos Position) {
	for m.Len(pos) > m.cfg.MaxToasts {
		var oldest *entry
		for _, e := range m.items {
			if e.payload.Position != pos || e.exiting {
				continue
			}
			if oldest == nil || e.createdAt.Before(oldest.createdAt) ||
				(e.createdAt.Equal(oldest.createdAt) && e.seq < oldest.seq) {
				oldest = e
			}
		}
		m.log.Debug().Str("id", oldest.id).Msg("toast evicted")
		m.drop(oldest)
	}
}

func (m *Manager) stackOffset(e *entry) float64 {
	idx := 0
	for _, it := range m.items {
		if it == e {
			break
		}
		if it.payload.Position == e.payload.Position && !it.exiting {
			idx++
		}
	}
	off := float64(idx) * m.cfg.Spacing
	if !e.payload.Position.IsTop() {
		off = -off
	}
	return off
}

// restack moves the visible toasts under pos to their stacking offsets.
func (m *Manager) restack(pos Position) {
	for _, e := range m.items {
		if e.payload.Position != pos || e.exiting {
			continue
		}
		target := m.stackOffset(e)
		if e.offset.Target() == target {
			continue
		}
		e.offset.Animate(m.motion(e).Plan(e.offset.Sample(), target), nil)
	}
}

func (m *Manager) notify() {
	for _, fn := range m.listeners {
		fn()
	}
}
