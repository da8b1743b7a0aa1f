package widgets

import (
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/disclosure"
)

// Skeleton opacity bounds and the duration of one half pulse.
const (
	skeletonDim   = 0.4
	skeletonPulse = 800 * time.Millisecond
)

// Skeleton is a loading placeholder whose opacity pulses between 0.4 and 1
// until stopped or disposed.
type Skeleton struct {
	m *disclosure.Machine[disclosure.Disclosure]
}

var skeletonVariant = disclosure.Variant[disclosure.Disclosure]{
	Name:        "skeleton",
	Channels:    []string{ChannelOpacity},
	OpenState:   disclosure.Open,
	ClosedState: disclosure.Closed,
	Targets: func(s disclosure.Disclosure, _ disclosure.Env) map[string]float64 {
		if s == disclosure.Open {
			return nil
		}
		return map[string]float64{ChannelOpacity: 1}
	},
}

// NewSkeleton creates a skeleton that starts pulsing immediately.
func NewSkeleton(sched *animation.Scheduler, opts ...disclosure.Option) *Skeleton {
	s := &Skeleton{}
	s.m = disclosure.New(sched, skeletonVariant, disclosure.Props[disclosure.Disclosure]{Default: disclosure.Open}, opts...)
	s.m.AddCommitListener(func(_, to disclosure.Disclosure) {
		if to == disclosure.Open {
			s.pulse()
		}
	})
	s.m.Channel(ChannelOpacity).Jump(1)
	s.pulse()
	return s
}

func (s *Skeleton) pulse() {
	ch := s.m.Channel(ChannelOpacity)
	if s.m.State() != disclosure.Open {
		return
	}
	target := skeletonDim
	if ch.Target() <= skeletonDim {
		target = 1
	}
	ch.SetTarget(target, animation.Timing(skeletonPulse, animation.EaseInOut), s.pulse)
}

// Active reports whether the pulse is running.
func (s *Skeleton) Active() bool { return s.m.State() == disclosure.Open }

// Start resumes the pulse.
func (s *Skeleton) Start() { s.m.Open() }

// Stop fades the placeholder back to full opacity.
func (s *Skeleton) Stop() { s.m.Close() }

// Opacity returns the current opacity.
func (s *Skeleton) Opacity() float64 { return s.m.Sample(ChannelOpacity) }

// Dispose stops the pulse.
func (s *Skeleton) Dispose() { s.m.Dispose() }
