package widgets

import (
	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/disclosure"
)

// ModalProps configure a Modal.
type ModalProps struct {
	// Visible makes the modal controlled when non-nil.
	Visible           *bool
	DefaultVisible    bool
	DismissOnBackdrop bool
	AnimationType     string
	Size              string
	// OnChange fires with the requested visibility.
	OnChange func(bool)
	// OnOpen and OnClose fire when the visibility commits, controlled or
	// not.
	OnOpen     func()
	OnClose    func()
	Controller *disclosure.Controller
}

// Modal is a dialog over a dimmed backdrop. The dialog fades in while
// growing from 95% and sliding up; on close it plays the reverse and stays
// mounted until the exit settles.
type Modal struct {
	m       *disclosure.Machine[disclosure.Disclosure]
	props   ModalProps
	mounted bool
}

// modalSlide is how far below its resting place the dialog starts.
const modalSlide = 24

var modalVariant = disclosure.Variant[disclosure.Disclosure]{
	Name:        "modal",
	Channels:    []string{ChannelBackdrop, ChannelScale, ChannelSlide, ChannelOpacity},
	OpenState:   disclosure.Open,
	ClosedState: disclosure.Closed,
	Targets: func(s disclosure.Disclosure, _ disclosure.Env) map[string]float64 {
		if s == disclosure.Open {
			return map[string]float64{ChannelBackdrop: 1, ChannelScale: 1, ChannelSlide: 0, ChannelOpacity: 1}
		}
		return map[string]float64{ChannelBackdrop: 0, ChannelScale: 0.95, ChannelSlide: modalSlide, ChannelOpacity: 0}
	},
}

// NewModal creates a modal.
func NewModal(sched *animation.Scheduler, p ModalProps, opts ...disclosure.Option) *Modal {
	md := &Modal{props: p}
	md.m = disclosure.New(sched, modalVariant, p.machineProps(), opts...)
	md.mounted = md.m.State() == disclosure.Open
	md.m.AddCommitListener(md.onCommit)
	md.m.AddSettleListener(md.onSettle)
	return md
}

func (p ModalProps) machineProps() disclosure.Props[disclosure.Disclosure] {
	return disclosure.Props[disclosure.Disclosure]{
		Value:         boolPtrState(p.Visible),
		Default:       boolState(p.DefaultVisible),
		AnimationType: p.AnimationType,
		Size:          p.Size,
		OnStateChange: onBool(p.OnChange),
		Controller:    p.Controller,
	}
}

func (md *Modal) onCommit(_, to disclosure.Disclosure) {
	if to == disclosure.Open {
		md.mounted = true
		if md.props.OnOpen != nil {
			md.props.OnOpen()
		}
		return
	}
	if md.props.OnClose != nil {
		md.props.OnClose()
	}
}

func (md *Modal) onSettle(s disclosure.Disclosure) {
	if s == disclosure.Closed {
		md.mounted = false
	}
}

// Visible reports the committed visibility.
func (md *Modal) Visible() bool { return md.m.State() == disclosure.Open }

// Mounted reports whether the host should render the modal. It stays true
// while the exit animation plays.
func (md *Modal) Mounted() bool { return md.mounted }

// Open shows the modal.
func (md *Modal) Open() { md.m.Open() }

// Close hides the modal.
func (md *Modal) Close() { md.m.Close() }

// TapBackdrop closes the modal when DismissOnBackdrop is set.
func (md *Modal) TapBackdrop() {
	if md.props.DismissOnBackdrop {
		md.m.Close()
	}
}

// Update applies new props.
func (md *Modal) Update(p ModalProps) {
	md.props = p
	md.m.Update(p.machineProps())
}

// Sample returns a channel's current value.
func (md *Modal) Sample(name string) float64 { return md.m.Sample(name) }

// Machine returns the underlying state machine.
func (md *Modal) Machine() *disclosure.Machine[disclosure.Disclosure] { return md.m }

// Dispose cancels the modal's animations.
func (md *Modal) Dispose() {
	md.mounted = false
	md.m.Dispose()
}
