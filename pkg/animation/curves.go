package animation

import "math"

// Curve maps linear progress in [0, 1] to eased progress. A timing
// [Profile] applies its Curve to the elapsed fraction of its duration.
type Curve = func(float64) float64

// LinearCurve is the identity curve.
func LinearCurve(t float64) float64 {
	return t
}

// Named curves. Control points match their CSS cubic-bezier() namesakes;
// Decelerate is the strong ease-out used by slides.
var (
	Ease       = CubicBezier(0.25, 0.1, 0.25, 1.0)
	EaseIn     = CubicBezier(0.4, 0.0, 1.0, 1.0)
	EaseOut    = CubicBezier(0.0, 0.0, 0.2, 1.0)
	EaseInOut  = CubicBezier(0.4, 0.0, 0.2, 1.0)
	Decelerate = CubicBezier(0.22, 1.0, 0.36, 1.0)
)

var curvesByName = map[string]Curve{
	"linear":      LinearCurve,
	"ease":        Ease,
	"ease-in":     EaseIn,
	"ease-out":    EaseOut,
	"ease-in-out": EaseInOut,
	"decelerate":  Decelerate,
}

// CurveByName resolves a configuration token such as "ease-out" to a curve.
func CurveByName(name string) (Curve, bool) {
	c, ok := curvesByName[name]
	return c, ok
}

// CubicBezier returns the easing through (0,0), (x1,y1), (x2,y2), (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	b := bezier{x1: x1, y1: y1, x2: x2, y2: y2}
	return b.at
}

type bezier struct {
	x1, y1, x2, y2 float64
}

const bezierEpsilon = 1e-7

func (b bezier) at(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return cubic(b.y1, b.y2, b.param(t))
}

// param finds the curve parameter whose x equals x. Newton steps usually
// land within a few iterations; bisection covers flat derivatives.
func (b bezier) param(x float64) float64 {
	u := x
	for range 8 {
		dx := cubic(b.x1, b.x2, u) - x
		if math.Abs(dx) < bezierEpsilon {
			return clampUnit(u)
		}
		slope := cubicSlope(b.x1, b.x2, u)
		if math.Abs(slope) < bezierEpsilon {
			break
		}
		u -= dx / slope
	}

	lo, hi := 0.0, 1.0
	u = clampUnit(u)
	for range 12 {
		dx := cubic(b.x1, b.x2, u) - x
		if math.Abs(dx) < bezierEpsilon {
			break
		}
		if dx > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) / 2
	}
	return u
}

// cubic evaluates one axis of the curve with endpoints 0 and 1.
func cubic(p1, p2, u float64) float64 {
	v := 1 - u
	return 3*v*v*u*p1 + 3*v*u*u*p2 + u*u*u
}

func cubicSlope(p1, p2, u float64) float64 {
	v := 1 - u
	return 3*v*v*p1 + 6*v*u*(p2-p1) + 3*u*u*(1-p2)
}

func clampUnit(v float64) float64 {
	return min(max(v, 0), 1)
}
