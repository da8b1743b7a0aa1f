package selection

import (
	"slices"
	"strconv"
	"strings"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/disclosure"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/theme"
	"github.com/rs/zerolog"
)

// Channel names of the panel.
const (
	ChannelHeight   = "height"
	ChannelOpacity  = "opacity"
	ChannelOffset   = "offset"
	ChannelRotation = "rotation"
)

// slideDistance is how far the closed panel sits from its open position,
// toward the trigger.
const slideDistance = 8

// Layout is the rendering collaborator queried when the panel opens.
type Layout interface {
	// TriggerRect returns the trigger's bounding box in viewport coordinates.
	TriggerRect() Rect
	// Viewport returns the visible area.
	Viewport() Rect
}

// Props configure a Controller.
type Props[V comparable] struct {
	Options  []Option[V]
	Multiple bool

	// Controlled makes Values the source of truth. Selection changes are
	// then only reported through the change handlers.
	Controlled bool
	Values     []V
	// Default seeds an uncontrolled selection.
	Default []V

	Placeholder string
	Searchable  bool
	Disabled    bool

	AnimationType string
	Size          string
	Position      Hint

	// OnChange fires with the new value of a single selection.
	OnChange func(V)
	// OnChangeMulti fires with the new set of a multiple selection.
	OnChangeMulti func([]V)
	// OnClear fires when a single selection is cleared.
	OnClear  func()
	OnOpen   func()
	OnClose  func()
	OnSearch func(query string)

	Controller *disclosure.Controller
	Layout     Layout
}

// ControllerOption configures a Controller.
type ControllerOption func(*controllerOptions)

type controllerOptions struct {
	resolver *animation.Resolver
	log      zerolog.Logger
}

// WithResolver sets the animation resolver.
func WithResolver(r *animation.Resolver) ControllerOption {
	return func(o *controllerOptions) { o.resolver = r }
}

// WithLogger sets the debug logger.
func WithLogger(log zerolog.Logger) ControllerOption {
	return func(o *controllerOptions) { o.log = log }
}

// Controller is the state of one select or dropdown. All methods must be
// called on the scheduler's UI thread.
type Controller[V comparable] struct {
	props    Props[V]
	machine  *disclosure.Machine[disclosure.Disclosure]
	log      zerolog.Logger
	selected []V

	query     string
	focused   bool
	highlight int
	placement Placement

	warnedValues  map[V]struct{}
	warnedHandler bool
	unbind        func()
	unlisten      func()
	disposed      bool
}

// New creates a closed selection controller.
func New[V comparable](sched *animation.Scheduler, p Props[V], opts ...ControllerOption) *Controller[V] {
	o := controllerOptions{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	c := &Controller[V]{
		props:        p,
		log:          o.log,
		highlight:    -1,
		warnedValues: make(map[V]struct{}),
	}
	if !p.Controlled {
		c.selected = slices.Clone(p.Default)
	}
	c.machine = disclosure.New(sched, c.variant(), c.machineProps(),
		disclosure.WithResolver(o.resolver), disclosure.WithLogger(o.log))
	c.unlisten = c.machine.AddCommitListener(c.onCommit)
	c.bind()
	c.checkValues()
	return c
}

func (c *Controller[V]) variant() disclosure.Variant[disclosure.Disclosure] {
	return disclosure.Variant[disclosure.Disclosure]{
		Name:             "select",
		Channels:         []string{ChannelHeight, ChannelOpacity, ChannelOffset, ChannelRotation},
		OpenState:        disclosure.Open,
		ClosedState:      disclosure.Closed,
		MeasuredChannels: []string{ChannelHeight},
		Targets: func(s disclosure.Disclosure, env disclosure.Env) map[string]float64 {
			if s == disclosure.Open {
				return map[string]float64{
					ChannelHeight:   c.panelHeight(env),
					ChannelOpacity:  1,
					ChannelOffset:   0,
					ChannelRotation: 180,
				}
			}
			offset := -slideDistance
			if c.placement.Direction == Above {
				offset = slideDistance
			}
			return map[string]float64{
				ChannelHeight:   0,
				ChannelOpacity:  0,
				ChannelOffset:   float64(offset),
				ChannelRotation: 0,
			}
		},
	}
}

func (c *Controller[V]) panelHeight(env disclosure.Env) float64 {
	if c.props.Layout == nil {
		return env.Natural.Height
	}
	return min(env.Natural.Height, c.placement.Height)
}

func (c *Controller[V]) machineProps() disclosure.Props[disclosure.Disclosure] {
	return disclosure.Props[disclosure.Disclosure]{
		Disabled:      c.props.Disabled,
		AnimationType: c.props.AnimationType,
		Size:          c.props.Size,
	}
}

func (c *Controller[V]) bind() {
	if c.props.Controller == nil {
		return
	}
	c.unbind = c.props.Controller.Bind(disclosure.Actions{
		Open:   c.Open,
		Close:  c.Close,
		Toggle: c.Toggle,
		Clear:  c.Clear,
		Focus:  c.Focus,
		Blur:   c.Blur,
	})
}

func (c *Controller[V]) onCommit(_, to disclosure.Disclosure) {
	if to == disclosure.Open {
		c.resetHighlight()
		if c.props.OnOpen != nil {
			c.props.OnOpen()
		}
		return
	}
	c.query = ""
	c.focused = false
	c.highlight = -1
	if c.props.OnClose != nil {
		c.props.OnClose()
	}
}

// Update applies new props.
func (c *Controller[V]) Update(p Props[V]) {
	if c.disposed {
		return
	}
	old := c.props
	c.props = p
	if old.Controller != p.Controller {
		if c.unbind != nil {
			c.unbind()
			c.unbind = nil
		}
		c.bind()
	}
	if old.Controlled && !p.Controlled {
		// Keep showing what the host last rendered.
		c.selected = slices.Clone(old.Values)
	}
	c.machine.Update(c.machineProps())
	c.checkValues()
	if c.highlight >= len(c.Visible()) {
		c.resetHighlight()
	}
}

// checkValues reports controlled values missing from the option list, once
// per value.
func (c *Controller[V]) checkValues() {
	if !c.props.Controlled {
		return
	}
	for _, v := range c.props.Values {
		if _, ok := Find(c.props.Options, v); ok {
			continue
		}
		if _, seen := c.warnedValues[v]; seen {
			continue
		}
		c.warnedValues[v] = struct{}{}
		errors.Warn("selection.Controller.Update", "select", &errors.UnknownValueError{Value: v})
	}
}

// State returns the panel's disclosure.
func (c *Controller[V]) State() disclosure.Disclosure { return c.machine.State() }

// IsOpen reports whether the panel is open.
func (c *Controller[V]) IsOpen() bool { return c.machine.State() == disclosure.Open }

// Machine returns the underlying disclosure machine.
func (c *Controller[V]) Machine() *disclosure.Machine[disclosure.Disclosure] { return c.machine }

// Placement returns the panel placement computed at the last open or
// measurement.
func (c *Controller[V]) Placement() Placement { return c.placement }

// Open opens the panel, placing it first.
func (c *Controller[V]) Open() {
	if c.disposed || c.props.Disabled || c.IsOpen() {
		return
	}
	c.place(c.machine.Natural().Height)
	c.machine.Open()
}

// Close closes the panel.
func (c *Controller[V]) Close() {
	if c.disposed {
		return
	}
	c.machine.Close()
}

// Toggle opens a closed panel and closes an open one.
func (c *Controller[V]) Toggle() {
	if c.IsOpen() {
		c.Close()
		return
	}
	c.Open()
}

// Measure delivers the panel content's natural size.
func (c *Controller[V]) Measure(size disclosure.Size) {
	if c.disposed {
		return
	}
	if c.IsOpen() {
		c.place(size.Height)
	}
	c.machine.Measure(size)
}

// NeedsOffstageLayout reports whether the host must lay the panel out
// invisibly to measure it.
func (c *Controller[V]) NeedsOffstageLayout() bool { return c.machine.NeedsOffstageLayout() }

// Sample returns a panel channel's current value.
func (c *Controller[V]) Sample(name string) float64 { return c.machine.Sample(name) }

func (c *Controller[V]) place(desired float64) {
	if c.props.Layout == nil {
		c.placement = Placement{Direction: Below, Height: desired, Width: c.contentWidth()}
		return
	}
	trigger, viewport := c.props.Layout.TriggerRect(), c.props.Layout.Viewport()
	p := ComputePosition(trigger, viewport, desired, c.props.Position)
	p.Width = PanelWidth(trigger, viewport, c.contentWidth())
	c.placement = p
	c.log.Debug().
		Stringer("direction", p.Direction).
		Float64("height", p.Height).
		Float64("width", p.Width).
		Msg("panel placed")
}

// contentWidth is the widest option row in the reference face.
func (c *Controller[V]) contentWidth() float64 {
	sizes := theme.SizesFor(c.props.Size)
	widest := 0.0
	for _, o := range c.props.Options {
		if o.Divider {
			continue
		}
		w := theme.MeasureText(o.Label).Width
		if o.Icon != "" {
			w += sizes.IconSize + sizes.Gap
		}
		widest = max(widest, w)
	}
	if widest == 0 {
		return 0
	}
	return widest + 2*sizes.PaddingX
}

// Query returns the current search query.
func (c *Controller[V]) Query() string { return c.query }

// SetQuery stores the search query and reports it through OnSearch.
func (c *Controller[V]) SetQuery(q string) {
	if c.disposed || q == c.query {
		return
	}
	c.query = q
	c.resetHighlight()
	if c.props.OnSearch != nil {
		c.props.OnSearch(q)
	}
}

// Visible returns the options matching the current query.
func (c *Controller[V]) Visible() []Option[V] {
	if !c.props.Searchable {
		return c.props.Options
	}
	return Filter(c.props.Options, c.query)
}

// Focus focuses the search field.
func (c *Controller[V]) Focus() {
	if c.disposed || !c.props.Searchable {
		return
	}
	c.focused = true
}

// Blur removes focus from the search field.
func (c *Controller[V]) Blur() { c.focused = false }

// Focused reports whether the search field has focus.
func (c *Controller[V]) Focused() bool { return c.focused }

// selection returns the values currently shown as selected.
func (c *Controller[V]) selection() []V {
	if c.props.Controlled {
		return c.props.Values
	}
	return c.selected
}

// IsSelected reports whether v is selected.
func (c *Controller[V]) IsSelected(v V) bool {
	return slices.Contains(c.selection(), v)
}

// Value returns the single selected value.
func (c *Controller[V]) Value() (V, bool) {
	sel := c.selection()
	if len(sel) == 0 {
		var zero V
		return zero, false
	}
	return sel[0], true
}

// Values returns a copy of the selected values.
func (c *Controller[V]) Values() []V {
	return slices.Clone(c.selection())
}

// DisplayLabel is the trigger text: the selected labels, or the placeholder
// when nothing resolves.
func (c *Controller[V]) DisplayLabel() string {
	var labels []string
	for _, v := range c.selection() {
		if o, ok := Find(c.props.Options, v); ok {
			labels = append(labels, o.Label)
		}
		if !c.props.Multiple {
			break
		}
	}
	switch len(labels) {
	case 0:
		return c.props.Placeholder
	case 1:
		return labels[0]
	case 2, 3:
		return strings.Join(labels, ", ")
	default:
		return strconv.Itoa(len(labels)) + " selected"
	}
}

// Select picks an option. A single selection commits the value and closes
// the panel; a multiple selection toggles membership and stays open.
// Disabled options and dividers are ignored.
func (c *Controller[V]) Select(o Option[V]) {
	if c.disposed || c.props.Disabled || !o.Selectable() {
		return
	}
	if c.props.Multiple {
		next := slices.Clone(c.selection())
		if i := slices.Index(next, o.Value); i >= 0 {
			next = slices.Delete(next, i, i+1)
		} else {
			next = append(next, o.Value)
		}
		c.commitMulti(next)
		return
	}

	if cur, ok := c.Value(); !ok || cur != o.Value {
		if !c.props.Controlled {
			c.selected = []V{o.Value}
		}
		c.emitSingle(o.Value)
	}
	c.Close()
}

// Clear empties the selection without opening or closing the panel.
func (c *Controller[V]) Clear() {
	if c.disposed || c.props.Disabled || len(c.selection()) == 0 {
		return
	}
	if c.props.Multiple {
		c.commitMulti(nil)
		return
	}
	if !c.props.Controlled {
		c.selected = nil
	}
	if c.props.OnClear != nil {
		c.props.OnClear()
	} else {
		c.warnMissing("OnClear")
	}
}

func (c *Controller[V]) commitMulti(next []V) {
	if !c.props.Controlled {
		c.selected = next
	}
	if c.props.OnChangeMulti != nil {
		c.props.OnChangeMulti(slices.Clone(next))
	} else {
		c.warnMissing("OnChangeMulti")
	}
}

func (c *Controller[V]) emitSingle(v V) {
	if c.props.OnChange != nil {
		c.props.OnChange(v)
	} else {
		c.warnMissing("OnChange")
	}
}

func (c *Controller[V]) warnMissing(handler string) {
	if !c.props.Controlled || c.warnedHandler {
		return
	}
	c.warnedHandler = true
	errors.Warn("selection.Controller.Select", "select", &errors.MissingHandlerError{Handler: handler})
}

// Highlighted returns the highlighted visible option.
func (c *Controller[V]) Highlighted() (Option[V], bool) {
	vis := c.Visible()
	if c.highlight < 0 || c.highlight >= len(vis) {
		return Option[V]{}, false
	}
	return vis[c.highlight], true
}

// Highlight moves the highlight to a visible index. Indexes of options that
// cannot be selected are ignored.
func (c *Controller[V]) Highlight(i int) {
	vis := c.Visible()
	if i < 0 || i >= len(vis) || !vis[i].Selectable() {
		return
	}
	c.highlight = i
}

// MoveHighlight steps the highlight by delta selectable rows, wrapping at
// either end.
func (c *Controller[V]) MoveHighlight(delta int) {
	vis := c.Visible()
	n := len(vis)
	if n == 0 || delta == 0 {
		return
	}
	step := 1
	if delta < 0 {
		step = -1
		delta = -delta
	}
	i := c.highlight
	if i < 0 && step < 0 {
		i = 0
	}
	for ; delta > 0; delta-- {
		for tries := 0; tries < n; tries++ {
			i = ((i+step)%n + n) % n
			if vis[i].Selectable() {
				break
			}
		}
	}
	if vis[i].Selectable() {
		c.highlight = i
	}
}

// SelectHighlighted selects the highlighted option, if any.
func (c *Controller[V]) SelectHighlighted() {
	if o, ok := c.Highlighted(); ok {
		c.Select(o)
	}
}

func (c *Controller[V]) resetHighlight() {
	c.highlight = -1
	for i, o := range c.Visible() {
		if o.Selectable() {
			c.highlight = i
			return
		}
	}
}

// Dispose cancels the panel's animations and unbinds the controller.
func (c *Controller[V]) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.unlisten()
	c.machine.Dispose()
	if c.unbind != nil {
		c.unbind()
		c.unbind = nil
	}
}
