package widgets

import (
	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/disclosure"
)

// AccordionProps configure an Accordion.
type AccordionProps struct {
	// Expanded makes the accordion controlled when non-nil.
	Expanded        *bool
	DefaultExpanded bool
	Disabled        bool
	AnimationType   string
	Size            string
	// OnChange fires with the requested expansion.
	OnChange   func(bool)
	Controller *disclosure.Controller
}

// Accordion is an expandable section. Its body height animates to the
// measured content height, its chevron rotates 0 to 180 and its body fades
// in.
//
// The body must be measured before the first reveal: while
// NeedsOffstageLayout is true the host lays the body out invisibly and
// passes its natural size to Measure.
type Accordion struct {
	m *disclosure.Machine[disclosure.Disclosure]
}

var accordionVariant = disclosure.Variant[disclosure.Disclosure]{
	Name:             "accordion",
	Channels:         []string{ChannelHeight, ChannelRotation, ChannelOpacity},
	OpenState:        disclosure.Open,
	ClosedState:      disclosure.Closed,
	MeasuredChannels: []string{ChannelHeight},
	Targets: func(s disclosure.Disclosure, env disclosure.Env) map[string]float64 {
		if s == disclosure.Open {
			return map[string]float64{
				ChannelHeight:   env.Natural.Height,
				ChannelRotation: 180,
				ChannelOpacity:  1,
			}
		}
		return map[string]float64{ChannelHeight: 0, ChannelRotation: 0, ChannelOpacity: 0}
	},
}

// NewAccordion creates an accordion.
func NewAccordion(sched *animation.Scheduler, p AccordionProps, opts ...disclosure.Option) *Accordion {
	return &Accordion{m: disclosure.New(sched, accordionVariant, p.machineProps(), opts...)}
}

func (p AccordionProps) machineProps() disclosure.Props[disclosure.Disclosure] {
	return disclosure.Props[disclosure.Disclosure]{
		Value:         boolPtrState(p.Expanded),
		Default:       boolState(p.DefaultExpanded),
		Disabled:      p.Disabled,
		AnimationType: p.AnimationType,
		Size:          p.Size,
		OnStateChange: onBool(p.OnChange),
		Controller:    p.Controller,
	}
}

// Expanded reports whether the body is open.
func (a *Accordion) Expanded() bool { return a.m.State() == disclosure.Open }

// Toggle expands or collapses the body.
func (a *Accordion) Toggle() { a.m.Toggle() }

// Expand opens the body.
func (a *Accordion) Expand() { a.m.Open() }

// Collapse closes the body.
func (a *Accordion) Collapse() { a.m.Close() }

// Update applies new props.
func (a *Accordion) Update(p AccordionProps) { a.m.Update(p.machineProps()) }

// Measure delivers the body's natural size.
func (a *Accordion) Measure(size disclosure.Size) { a.m.Measure(size) }

// NeedsOffstageLayout reports whether the body still has to be measured.
func (a *Accordion) NeedsOffstageLayout() bool { return a.m.NeedsOffstageLayout() }

// Sample returns a channel's current value.
func (a *Accordion) Sample(name string) float64 { return a.m.Sample(name) }

// Machine returns the underlying state machine.
func (a *Accordion) Machine() *disclosure.Machine[disclosure.Disclosure] { return a.m }

// Dispose cancels the accordion's animations.
func (a *Accordion) Dispose() { a.m.Dispose() }
