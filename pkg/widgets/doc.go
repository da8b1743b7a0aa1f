// Package widgets provides the animated widget controllers built on the
// disclosure machine and the transition engine.
//
// A widget here is state, not paint: it owns the logical value (expanded,
// checked, selected, visible) and a fixed set of named channels the host
// samples every frame. Rendering, gestures and measurement are delivered by
// the host.
//
// # Controlled and uncontrolled
//
// Every stateful widget accepts either a host-owned value (a non-nil pointer
// prop) or a default. A controlled widget only reports change intent through
// its handler; the host renders the change by calling Update with the new
// value:
//
//	acc := widgets.NewAccordion(sched, widgets.AccordionProps{
//	    Expanded: &expanded,
//	    OnChange: func(v bool) {
//	        expanded = v
//	        acc.Update(widgets.AccordionProps{Expanded: &expanded})
//	    },
//	})
//
// # Imperative control
//
// Pass a [disclosure.Controller] in props to drive a widget from elsewhere.
// The handle runs the same code path as a press or a prop change.
//
// # Lifecycle
//
// Call Dispose when the widget leaves the tree. It cancels every animation
// and timer the widget owns; no callback fires afterwards.
package widgets

import "github.com/go-drift/motion/pkg/disclosure"

// Channel names shared across widgets.
const (
	ChannelHeight        = "height"
	ChannelRotation      = "rotation"
	ChannelOpacity       = "opacity"
	ChannelScale         = "scale"
	ChannelCheck         = "check"
	ChannelIndeterminate = "indeterminate"
	ChannelColorMix      = "colorMix"
	ChannelDot           = "dot"
	ChannelBackdrop      = "backdrop"
	ChannelSlide         = "slide"
	ChannelLabel         = "label"
	ChannelBorder        = "border"
	ChannelError         = "error"
	ChannelShake         = "shake"
	ChannelProgress      = "progress"
	ChannelSweep         = "sweep"
)

func boolState(v bool) disclosure.Disclosure {
	if v {
		return disclosure.Open
	}
	return disclosure.Closed
}

func boolPtrState(v *bool) *disclosure.Disclosure {
	if v == nil {
		return nil
	}
	s := boolState(*v)
	return &s
}

func onBool(fn func(bool)) func(disclosure.Disclosure) {
	if fn == nil {
		return nil
	}
	return func(s disclosure.Disclosure) { fn(s == disclosure.Open) }
}

func unit(v float64) float64 {
	return min(max(v, 0), 1)
}
