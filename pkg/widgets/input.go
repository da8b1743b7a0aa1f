package widgets

import (
	"image/color"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/disclosure"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/theme"
)

// InputProps configure an Input.
type InputProps struct {
	// Value makes the text controlled when non-nil.
	Value        *string
	DefaultValue string
	Label        string
	Placeholder  string
	// Error is the validation message. Setting it shakes the field.
	Error         string
	Disabled      bool
	AnimationType string
	Size          string
	// OnChange fires with the requested text.
	OnChange   func(string)
	OnFocus    func()
	OnBlur     func()
	Controller *disclosure.Controller
}

// shakeStages is the horizontal offset sequence played when an error
// appears.
var shakeStages = func() []animation.Stage {
	offsets := []float64{8, -8, 6, -6, 3, 0}
	stages := make([]animation.Stage, len(offsets))
	for i, o := range offsets {
		stages[i] = animation.Stage{Target: o, Profile: animation.Timing(50*time.Millisecond, animation.LinearCurve)}
	}
	return stages
}()

// Input is a text field whose focus is a disclosure: focusing floats the
// label and blends the border toward the accent. The label stays floated
// while the field holds text.
type Input struct {
	m     *disclosure.Machine[disclosure.Disclosure]
	props InputProps
	text  string

	warnedNoHandler bool
	unbind          func()
}

// NewInput creates an unfocused input.
func NewInput(sched *animation.Scheduler, p InputProps, opts ...disclosure.Option) *Input {
	in := &Input{props: p, text: p.DefaultValue}
	if p.Value != nil {
		in.text = *p.Value
	}
	in.m = disclosure.New(sched, in.variant(), in.machineProps(), opts...)
	in.bind()
	return in
}

func (in *Input) variant() disclosure.Variant[disclosure.Disclosure] {
	return disclosure.Variant[disclosure.Disclosure]{
		Name:        "input",
		Channels:    []string{ChannelLabel, ChannelBorder, ChannelError, ChannelShake},
		OpenState:   disclosure.Open,
		ClosedState: disclosure.Closed,
		Targets: func(s disclosure.Disclosure, _ disclosure.Env) map[string]float64 {
			t := map[string]float64{ChannelLabel: 0, ChannelBorder: 0, ChannelError: 0}
			if s == disclosure.Open {
				t[ChannelBorder] = 1
			}
			if s == disclosure.Open || in.text != "" {
				t[ChannelLabel] = 1
			}
			if in.props.Error != "" {
				t[ChannelError] = 1
			}
			return t
		},
	}
}

func (in *Input) machineProps() disclosure.Props[disclosure.Disclosure] {
	return disclosure.Props[disclosure.Disclosure]{
		Disabled:      in.props.Disabled,
		AnimationType: in.props.AnimationType,
		Size:          in.props.Size,
		OnStateChange: in.focusChanged,
	}
}

func (in *Input) bind() {
	if in.props.Controller == nil {
		return
	}
	in.unbind = in.props.Controller.Bind(disclosure.Actions{
		Open:   in.Focus,
		Close:  in.Blur,
		Toggle: in.m.Toggle,
		Clear:  in.Clear,
		Focus:  in.Focus,
		Blur:   in.Blur,
	})
}

func (in *Input) focusChanged(s disclosure.Disclosure) {
	if s == disclosure.Open {
		if in.props.OnFocus != nil {
			in.props.OnFocus()
		}
		return
	}
	if in.props.OnBlur != nil {
		in.props.OnBlur()
	}
}

// Text returns the displayed text.
func (in *Input) Text() string { return in.text }

// Focused reports whether the field has focus.
func (in *Input) Focused() bool { return in.m.State() == disclosure.Open }

// Focus focuses the field. Disabled fields ignore it.
func (in *Input) Focus() { in.m.Open() }

// Blur removes focus.
func (in *Input) Blur() { in.m.Close() }

// SetText requests new text. Uncontrolled inputs commit before reporting;
// controlled inputs only report.
func (in *Input) SetText(s string) {
	if in.props.Disabled || s == in.text {
		return
	}
	if in.props.Value != nil {
		if in.props.OnChange == nil {
			if !in.warnedNoHandler {
				in.warnedNoHandler = true
				errors.Warn("widgets.Input.SetText", "input", &errors.MissingHandlerError{Handler: "OnChange"})
			}
			return
		}
		in.props.OnChange(s)
		return
	}
	in.text = s
	in.m.Refresh()
	if in.props.OnChange != nil {
		in.props.OnChange(s)
	}
}

// Clear empties the text.
func (in *Input) Clear() { in.SetText("") }

// Update applies new props. A controlled value commits without echo; a newly
// set error shakes the field.
func (in *Input) Update(p InputProps) {
	old := in.props
	in.props = p
	if old.Controller != p.Controller {
		if in.unbind != nil {
			in.unbind()
			in.unbind = nil
		}
		in.bind()
	}
	if p.Value != nil {
		in.text = *p.Value
	}
	in.m.Update(in.machineProps())
	in.m.Refresh()
	if old.Error == "" && p.Error != "" {
		in.Shake()
	}
}

// Shake plays the error shake on the shake channel.
func (in *Input) Shake() {
	if ch := in.m.Channel(ChannelShake); ch != nil {
		ch.Animate(shakeStages, nil)
	}
}

// BorderColor blends the border from its resting color toward the accent by
// focus, then toward the error color by the error channel.
func (in *Input) BorderColor(b theme.Brightness) color.RGBA {
	colors := theme.ColorsFor(theme.VariantPrimary, b)
	if in.props.Disabled {
		return colors.Disabled
	}
	c := animation.LerpColor(colors.Border, colors.Accent, unit(in.m.Sample(ChannelBorder)))
	danger := theme.ColorsFor(theme.VariantError, b).Accent
	return animation.LerpColor(c, danger, unit(in.m.Sample(ChannelError)))
}

// Props returns the current props.
func (in *Input) Props() InputProps { return in.props }

// Sample returns a channel's current value.
func (in *Input) Sample(name string) float64 { return in.m.Sample(name) }

// Machine returns the underlying focus machine.
func (in *Input) Machine() *disclosure.Machine[disclosure.Disclosure] { return in.m }

// Dispose cancels the field's animations and unbinds the controller.
func (in *Input) Dispose() {
	in.m.Dispose()
	if in.unbind != nil {
		in.unbind()
		in.unbind = nil
	}
}
