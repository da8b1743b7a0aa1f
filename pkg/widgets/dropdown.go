package widgets

import (
	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/disclosure"
	"github.com/go-drift/motion/pkg/selection"
)

// DropdownProps configure a Dropdown.
type DropdownProps[V comparable] struct {
	Items         []selection.Option[V]
	Disabled      bool
	AnimationType string
	Size          string
	Position      selection.Hint
	// OnSelect fires with the chosen item. The menu closes afterwards.
	OnSelect   func(selection.Option[V])
	OnOpen     func()
	OnClose    func()
	Controller *disclosure.Controller
	Layout     selection.Layout
}

// Dropdown is an action menu. It keeps no selection: every pick reports
// through OnSelect, including picking the same item twice.
type Dropdown[V comparable] struct {
	sel   *selection.Controller[V]
	props DropdownProps[V]
}

// NewDropdown creates a closed dropdown.
func NewDropdown[V comparable](sched *animation.Scheduler, p DropdownProps[V], opts ...selection.ControllerOption) *Dropdown[V] {
	d := &Dropdown[V]{props: p}
	d.sel = selection.New(sched, d.selectionProps(), opts...)
	return d
}

func (d *Dropdown[V]) selectionProps() selection.Props[V] {
	p := d.props
	return selection.Props[V]{
		Options:       p.Items,
		Controlled:    true,
		Disabled:      p.Disabled,
		AnimationType: p.AnimationType,
		Size:          p.Size,
		Position:      p.Position,
		OnChange:      d.pick,
		OnOpen:        p.OnOpen,
		OnClose:       p.OnClose,
		Controller:    p.Controller,
		Layout:        p.Layout,
	}
}

func (d *Dropdown[V]) pick(v V) {
	if d.props.OnSelect == nil {
		return
	}
	if opt, ok := selection.Find(d.props.Items, v); ok {
		d.props.OnSelect(opt)
	}
}

// IsOpen reports whether the menu is open.
func (d *Dropdown[V]) IsOpen() bool { return d.sel.IsOpen() }

// Open opens the menu.
func (d *Dropdown[V]) Open() { d.sel.Open() }

// Close closes the menu.
func (d *Dropdown[V]) Close() { d.sel.Close() }

// Toggle opens or closes the menu.
func (d *Dropdown[V]) Toggle() { d.sel.Toggle() }

// Select picks an item and closes the menu. Disabled items and dividers are
// ignored.
func (d *Dropdown[V]) Select(o selection.Option[V]) { d.sel.Select(o) }

// Items returns the menu rows.
func (d *Dropdown[V]) Items() []selection.Option[V] { return d.sel.Visible() }

// MoveHighlight moves the keyboard highlight.
func (d *Dropdown[V]) MoveHighlight(delta int) { d.sel.MoveHighlight(delta) }

// Highlighted returns the highlighted item.
func (d *Dropdown[V]) Highlighted() (selection.Option[V], bool) { return d.sel.Highlighted() }

// SelectHighlighted picks the highlighted item.
func (d *Dropdown[V]) SelectHighlighted() { d.sel.SelectHighlighted() }

// Measure delivers the menu's natural size.
func (d *Dropdown[V]) Measure(size disclosure.Size) { d.sel.Measure(size) }

// NeedsOffstageLayout reports whether the menu still has to be measured.
func (d *Dropdown[V]) NeedsOffstageLayout() bool { return d.sel.NeedsOffstageLayout() }

// Placement returns where the menu renders.
func (d *Dropdown[V]) Placement() selection.Placement { return d.sel.Placement() }

// Sample returns a channel's current value.
func (d *Dropdown[V]) Sample(name string) float64 { return d.sel.Sample(name) }

// Update applies new props.
func (d *Dropdown[V]) Update(p DropdownProps[V]) {
	d.props = p
	d.sel.Update(d.selectionProps())
}

// Dispose cancels the menu's animations.
func (d *Dropdown[V]) Dispose() { d.sel.Dispose() }
