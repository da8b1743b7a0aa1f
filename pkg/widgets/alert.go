package widgets

import (
	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/disclosure"
	"github.com/go-drift/motion/pkg/theme"
)

// AlertProps configure an Alert.
type AlertProps struct {
	Title       string
	Message     string
	Variant     string
	Dismissible bool
	// Hidden starts the alert dismissed.
	Hidden        bool
	AnimationType string
	Size          string
	// OnDismiss fires once the exit animation has settled.
	OnDismiss func()
}

// Alert is an inline message that fades and slides out when dismissed.
type Alert struct {
	m       *disclosure.Machine[disclosure.Disclosure]
	props   AlertProps
	mounted bool
}

// alertSlide is how far the alert travels upward on exit.
const alertSlide = -12

var alertVariant = disclosure.Variant[disclosure.Disclosure]{
	Name:        "alert",
	Channels:    []string{ChannelOpacity, ChannelSlide},
	OpenState:   disclosure.Open,
	ClosedState: disclosure.Closed,
	Targets: func(s disclosure.Disclosure, _ disclosure.Env) map[string]float64 {
		if s == disclosure.Open {
			return map[string]float64{ChannelOpacity: 1, ChannelSlide: 0}
		}
		return map[string]float64{ChannelOpacity: 0, ChannelSlide: alertSlide}
	},
}

// NewAlert creates an alert.
func NewAlert(sched *animation.Scheduler, p AlertProps, opts ...disclosure.Option) *Alert {
	a := &Alert{props: p, mounted: !p.Hidden}
	a.m = disclosure.New(sched, alertVariant, a.machineProps(), opts...)
	a.m.AddCommitListener(func(_, to disclosure.Disclosure) {
		if to == disclosure.Open {
			a.mounted = true
		}
	})
	a.m.AddSettleListener(func(s disclosure.Disclosure) {
		if s != disclosure.Closed {
			return
		}
		a.mounted = false
		if a.props.OnDismiss != nil {
			a.props.OnDismiss()
		}
	})
	return a
}

func (a *Alert) machineProps() disclosure.Props[disclosure.Disclosure] {
	return disclosure.Props[disclosure.Disclosure]{
		Default:       boolState(!a.props.Hidden),
		AnimationType: a.props.AnimationType,
		Size:          a.props.Size,
		Variant:       a.props.Variant,
	}
}

// Visible reports whether the alert is shown or entering.
func (a *Alert) Visible() bool { return a.m.State() == disclosure.Open }

// Mounted reports whether the host should render the alert.
func (a *Alert) Mounted() bool { return a.mounted }

// Dismiss plays the exit. Non-dismissible alerts ignore it.
func (a *Alert) Dismiss() {
	if a.props.Dismissible {
		a.m.Close()
	}
}

// Show brings a dismissed alert back.
func (a *Alert) Show() { a.m.Open() }

// Colors returns the palette for the alert's variant.
func (a *Alert) Colors(b theme.Brightness) theme.ColorTable {
	return theme.ColorsFor(a.props.Variant, b)
}

// Props returns the current props.
func (a *Alert) Props() AlertProps { return a.props }

// Update applies new props. Visibility is owned by the alert.
func (a *Alert) Update(p AlertProps) {
	p.Hidden = a.props.Hidden
	a.props = p
	a.m.Update(a.machineProps())
}

// Sample returns a channel's current value.
func (a *Alert) Sample(name string) float64 { return a.m.Sample(name) }

// Dispose cancels the alert's animations.
func (a *Alert) Dispose() {
	a.mounted = false
	a.m.Dispose()
}
