package animation

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// SpringDescription describes the physical parameters of a damped spring.
type SpringDescription struct {
	// Mass of the attached object. Must be positive.
	Mass float64
	// Stiffness is the spring constant k.
	Stiffness float64
	// Damping is the viscous damping coefficient c.
	Damping float64
	// OvershootClamping settles the spring the first time it crosses its
	// target instead of letting it oscillate.
	OvershootClamping bool
}

// IOSSpring is a near-critically damped spring used for sheets and panels.
func IOSSpring() SpringDescription {
	return SpringDescription{Mass: 1, Stiffness: 300, Damping: 35}
}

// BouncySpring oscillates visibly before coming to rest.
func BouncySpring() SpringDescription {
	return SpringDescription{Mass: 1, Stiffness: 180, Damping: 12}
}

// GentleSpring is overdamped and slow.
func GentleSpring() SpringDescription {
	return SpringDescription{Mass: 1, Stiffness: 120, Damping: 24}
}

// angularFrequency and dampingRatio convert k, c, m into the parameters
// harmonica expects.
func (d SpringDescription) angularFrequency() float64 {
	m := d.mass()
	return math.Sqrt(math.Max(d.Stiffness, 0) / m)
}

func (d SpringDescription) dampingRatio() float64 {
	m := d.mass()
	k := math.Max(d.Stiffness, 1e-9)
	return math.Max(d.Damping, 0) / (2 * math.Sqrt(k*m))
}

func (d SpringDescription) mass() float64 {
	if d.Mass <= 0 {
		return 1
	}
	return d.Mass
}

// Tolerance defines when a spring is considered at rest.
type Tolerance struct {
	Distance float64
	Velocity float64
}

// DefaultTolerance is used by [NewSpringSimulation].
var DefaultTolerance = Tolerance{Distance: 0.001, Velocity: 0.01}

// SpringSimulation integrates a damped harmonic oscillator toward a target.
//
// Each Step advances the closed-form solution by dt seconds, so uneven frame
// intervals do not accumulate integration error.
type SpringSimulation struct {
	desc      SpringDescription
	tolerance Tolerance
	position  float64
	velocity  float64
	target    float64
	side      float64
	done      bool
}

// NewSpringSimulation starts a simulation at position with the given
// velocity (units per second) heading for target.
func NewSpringSimulation(desc SpringDescription, position, velocity, target float64) *SpringSimulation {
	s := &SpringSimulation{
		desc:      desc,
		tolerance: DefaultTolerance,
		position:  position,
		velocity:  velocity,
		target:    target,
		side:      sign(position - target),
	}
	s.checkRest()
	return s
}

// Step advances the simulation by dt seconds and reports whether it is at rest.
func (s *SpringSimulation) Step(dt float64) bool {
	if s.done {
		return true
	}
	if dt <= 0 {
		return false
	}
	spring := harmonica.NewSpring(dt, s.desc.angularFrequency(), s.desc.dampingRatio())
	s.position, s.velocity = spring.Update(s.position, s.velocity, s.target)

	if s.desc.OvershootClamping && s.side != 0 && sign(s.position-s.target) != s.side {
		s.settle()
		return true
	}
	s.checkRest()
	return s.done
}

func (s *SpringSimulation) checkRest() {
	if math.Abs(s.position-s.target) < s.tolerance.Distance &&
		math.Abs(s.velocity) < s.tolerance.Velocity {
		s.settle()
	}
}

func (s *SpringSimulation) settle() {
	s.position = s.target
	s.velocity = 0
	s.done = true
}

// Position returns the current position.
func (s *SpringSimulation) Position() float64 { return s.position }

// Velocity returns the current velocity in units per second.
func (s *SpringSimulation) Velocity() float64 { return s.velocity }

// Target returns the rest position.
func (s *SpringSimulation) Target() float64 { return s.target }

// IsDone reports whether the spring has come to rest.
func (s *SpringSimulation) IsDone() bool { return s.done }

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
