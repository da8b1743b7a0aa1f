package animation

import (
	"fmt"
	"time"
)

// ProfileKind selects how a [Profile] moves a channel toward its target.
type ProfileKind int

const (
	// KindTiming interpolates over a fixed duration with an easing curve.
	KindTiming ProfileKind = iota
	// KindSpring integrates spring physics until the channel is at rest.
	KindSpring
)

func (k ProfileKind) String() string {
	switch k {
	case KindTiming:
		return "timing"
	case KindSpring:
		return "spring"
	default:
		return fmt.Sprintf("ProfileKind(%d)", int(k))
	}
}

// Profile is an immutable transition descriptor.
type Profile struct {
	Kind ProfileKind

	// Duration and Curve apply to KindTiming. A nil Curve is linear.
	Duration time.Duration
	Curve    Curve

	// Spring applies to KindSpring.
	Spring SpringDescription
}

// Timing returns a timing profile.
func Timing(d time.Duration, curve Curve) Profile {
	return Profile{Kind: KindTiming, Duration: d, Curve: curve}
}

// Spring returns a spring profile.
func Spring(desc SpringDescription) Profile {
	return Profile{Kind: KindSpring, Spring: desc}
}

// Instant is a zero-duration timing profile; the channel lands on its target
// at the next frame.
var Instant = Timing(0, LinearCurve)

// Stage is one leg of a staged transition.
type Stage struct {
	Target  float64
	Profile Profile
}

// Motion is a resolved animation style: the profile used for the final leg
// plus the parameters of any staged lead-in.
type Motion struct {
	// Type is the resolved animation type name.
	Type string
	// Profile drives the final stage.
	Profile Profile
	// Overshoot is the fraction of the travel distance a bounce or elastic
	// motion passes its target by before settling.
	Overshoot float64
	// Pulse is the relative amount a pulse motion grows past its target.
	Pulse float64
	// LeadIn drives the overshoot legs of staged motions.
	LeadIn Profile
}

// Plan expands the motion into the stages needed to move from one value to
// another. Single-stage types return one stage.
func (m Motion) Plan(from, to float64) []Stage {
	delta := to - from
	switch m.Type {
	case "bounce":
		if delta == 0 || m.Overshoot == 0 {
			break
		}
		return []Stage{
			{Target: to + delta*m.Overshoot, Profile: m.LeadIn},
			{Target: to, Profile: m.Profile},
		}
	case "elastic":
		if delta == 0 || m.Overshoot == 0 {
			break
		}
		return []Stage{
			{Target: to + delta*m.Overshoot, Profile: m.LeadIn},
			{Target: to - delta*m.Overshoot*0.5, Profile: m.LeadIn},
			{Target: to, Profile: m.Profile},
		}
	case "pulse":
		if m.Pulse == 0 {
			break
		}
		return []Stage{
			{Target: to * (1 + m.Pulse), Profile: m.LeadIn},
			{Target: to, Profile: m.Profile},
		}
	}
	return []Stage{{Target: to, Profile: m.Profile}}
}

// Staged reports whether Plan can produce more than one stage.
func (m Motion) Staged() bool {
	switch m.Type {
	case "bounce", "elastic":
		return m.Overshoot != 0
	case "pulse":
		return m.Pulse != 0
	}
	return false
}
