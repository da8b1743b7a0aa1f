package animation

import "image/color"

// Tween interpolates between Begin and End values based on a channel value.
//
// Widgets keep their channels in convenient units (0–1 for color mix,
// degrees for rotation) and use a Tween to map them onto paint values.
type Tween[T any] struct {
	// Begin is the value at t = 0.
	Begin T
	// End is the value at t = 1.
	End T
	// Lerp interpolates between Begin and End for progress t.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value at the channel's current sample.
func (tw *Tween[T]) Transform(c *Channel) T {
	return tw.Evaluate(c.Sample())
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpColor mixes two colors channel by channel. t is clamped to [0, 1].
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = clampUnit(t)
	mix := func(x, y uint8) uint8 {
		return uint8(LerpFloat64(float64(x), float64(y), t) + 0.5)
	}
	return color.RGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: LerpFloat64}
}

// TweenColor creates a tween for color values, used by color-mix channels.
func TweenColor(begin, end color.RGBA) *Tween[color.RGBA] {
	return &Tween[color.RGBA]{Begin: begin, End: end, Lerp: LerpColor}
}
