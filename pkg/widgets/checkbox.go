package widgets

import (
	"image/color"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/disclosure"
	"github.com/go-drift/motion/pkg/theme"
)

// CheckboxProps configure a Checkbox.
type CheckboxProps struct {
	// Checked makes the checkbox controlled when non-nil.
	Checked        *disclosure.Tristate
	DefaultChecked disclosure.Tristate
	Disabled       bool
	AnimationType  string
	Size           string
	// Variant is the color token the fill uses when checked.
	Variant  string
	OnChange func(disclosure.Tristate)
	// Controller opens (checks), closes (unchecks) and toggles.
	Controller *disclosure.Controller
}

// Checkbox is a tristate check control. Toggling from indeterminate checks
// it. Every transition pulses the box scale.
type Checkbox struct {
	m *disclosure.Machine[disclosure.Tristate]
}

var checkboxVariant = disclosure.Variant[disclosure.Tristate]{
	Name:        "checkbox",
	Channels:    []string{ChannelCheck, ChannelIndeterminate, ChannelColorMix, ChannelScale},
	OpenState:   disclosure.Checked,
	ClosedState: disclosure.Unchecked,
	Next:        disclosure.Tristate.Next,
	Pulse:       []string{ChannelScale},
	Targets: func(s disclosure.Tristate, _ disclosure.Env) map[string]float64 {
		t := map[string]float64{ChannelCheck: 0, ChannelIndeterminate: 0, ChannelColorMix: 0, ChannelScale: 1}
		switch s {
		case disclosure.Checked:
			t[ChannelCheck] = 1
			t[ChannelColorMix] = 1
		case disclosure.Indeterminate:
			t[ChannelIndeterminate] = 1
			t[ChannelColorMix] = 1
		}
		return t
	},
}

// NewCheckbox creates a checkbox.
func NewCheckbox(sched *animation.Scheduler, p CheckboxProps, opts ...disclosure.Option) *Checkbox {
	return &Checkbox{m: disclosure.New(sched, checkboxVariant, p.machineProps(), opts...)}
}

func (p CheckboxProps) machineProps() disclosure.Props[disclosure.Tristate] {
	return disclosure.Props[disclosure.Tristate]{
		Value:         p.Checked,
		Default:       p.DefaultChecked,
		Disabled:      p.Disabled,
		AnimationType: p.AnimationType,
		Size:          p.Size,
		Variant:       p.Variant,
		OnStateChange: p.OnChange,
		Controller:    p.Controller,
	}
}

// State returns the committed check state.
func (c *Checkbox) State() disclosure.Tristate { return c.m.State() }

// Toggle advances to the next check state.
func (c *Checkbox) Toggle() { c.m.Toggle() }

// SetState requests an explicit check state.
func (c *Checkbox) SetState(s disclosure.Tristate) { c.m.SetState(s) }

// Update applies new props.
func (c *Checkbox) Update(p CheckboxProps) { c.m.Update(p.machineProps()) }

// Sample returns a channel's current value.
func (c *Checkbox) Sample(name string) float64 { return c.m.Sample(name) }

// Fill blends the box color from the surface toward the variant's accent by
// the colorMix channel.
func (c *Checkbox) Fill(b theme.Brightness) color.RGBA {
	colors := theme.ColorsFor(c.m.Props().Variant, b)
	if c.m.Disabled() {
		return colors.Disabled
	}
	return animation.TweenColor(colors.Surface, colors.Accent).Transform(c.m.Channel(ChannelColorMix))
}

// Machine returns the underlying state machine.
func (c *Checkbox) Machine() *disclosure.Machine[disclosure.Tristate] { return c.m }

// Dispose cancels the checkbox's animations.
func (c *Checkbox) Dispose() { c.m.Dispose() }
