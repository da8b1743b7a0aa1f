package widgets

import (
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/disclosure"
)

// sweepPeriod is one pass of the indeterminate highlight across the track.
const sweepPeriod = 1200 * time.Millisecond

// ProgressBarProps configure a ProgressBar.
type ProgressBarProps struct {
	// Value is the completed fraction, clamped to [0, 1].
	Value float64
	// Indeterminate replaces the fill with a repeating sweep.
	Indeterminate bool
	AnimationType string
	Size          string
	Variant       string
}

// ProgressBar animates a fill fraction. In indeterminate mode the sweep
// channel runs 0 to 1 repeatedly until the bar becomes determinate or is
// disposed.
type ProgressBar struct {
	m     *disclosure.Machine[disclosure.Disclosure]
	props ProgressBarProps
}

// NewProgressBar creates a bar resting at its initial value.
func NewProgressBar(sched *animation.Scheduler, p ProgressBarProps, opts ...disclosure.Option) *ProgressBar {
	p.Value = unit(p.Value)
	b := &ProgressBar{props: p}
	b.m = disclosure.New(sched, b.variant(), b.machineProps(), opts...)
	if p.Indeterminate {
		b.sweep()
	}
	return b
}

func (b *ProgressBar) variant() disclosure.Variant[disclosure.Disclosure] {
	return disclosure.Variant[disclosure.Disclosure]{
		Name:        "progress",
		Channels:    []string{ChannelProgress, ChannelSweep},
		OpenState:   disclosure.Open,
		ClosedState: disclosure.Closed,
		Targets: func(disclosure.Disclosure, disclosure.Env) map[string]float64 {
			return map[string]float64{ChannelProgress: b.props.Value}
		},
	}
}

func (b *ProgressBar) machineProps() disclosure.Props[disclosure.Disclosure] {
	return disclosure.Props[disclosure.Disclosure]{
		Default:       boolState(b.props.Indeterminate),
		AnimationType: b.props.AnimationType,
		Size:          b.props.Size,
		Variant:       b.props.Variant,
	}
}

// Value returns the target fraction.
func (b *ProgressBar) Value() float64 { return b.props.Value }

// Indeterminate reports whether the sweep is running.
func (b *ProgressBar) Indeterminate() bool { return b.props.Indeterminate }

// SetValue animates the fill toward v.
func (b *ProgressBar) SetValue(v float64) {
	p := b.props
	p.Value = v
	b.Update(p)
}

// Update applies new props.
func (b *ProgressBar) Update(p ProgressBarProps) {
	p.Value = unit(p.Value)
	was := b.props.Indeterminate
	b.props = p
	b.m.Update(b.machineProps())
	b.m.Refresh()
	switch {
	case p.Indeterminate && !was:
		b.sweep()
	case !p.Indeterminate && was:
		if ch := b.m.Channel(ChannelSweep); ch != nil {
			ch.Jump(0)
		}
	}
}

func (b *ProgressBar) sweep() {
	ch := b.m.Channel(ChannelSweep)
	if ch == nil || !b.props.Indeterminate {
		return
	}
	ch.Jump(0)
	ch.SetTarget(1, animation.Timing(sweepPeriod, animation.EaseInOut), b.sweep)
}

// Sample returns a channel's current value.
func (b *ProgressBar) Sample(name string) float64 { return b.m.Sample(name) }

// Dispose stops the fill and the sweep.
func (b *ProgressBar) Dispose() { b.m.Dispose() }
