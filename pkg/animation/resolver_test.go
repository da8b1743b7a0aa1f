package animation_test

import (
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_UnknownTypeFallsBack(t *testing.T) {
	r := animation.DefaultResolver()

	m := r.Resolve("wobble", animation.Context{})

	assert.Equal(t, animation.DefaultType, m.Type)
	assert.Equal(t, animation.KindTiming, m.Profile.Kind)
	assert.Equal(t, 200*time.Millisecond, m.Profile.Duration)
}

func TestResolver_SizeScalesTiming(t *testing.T) {
	r := animation.DefaultResolver()

	sm := r.Resolve("fade", animation.Context{Size: "sm"})
	md := r.Resolve("fade", animation.Context{Size: "md"})
	lg := r.Resolve("fade", animation.Context{Size: "lg"})

	assert.Equal(t, 200*time.Millisecond, sm.Profile.Duration)
	assert.Equal(t, 250*time.Millisecond, md.Profile.Duration)
	assert.Equal(t, 300*time.Millisecond, lg.Profile.Duration)
}

func TestResolver_IsPure(t *testing.T) {
	r := animation.DefaultResolver()

	a := r.Resolve("slide", animation.Context{Size: "lg"})
	b := r.Resolve("slide", animation.Context{Size: "lg"})

	assert.Equal(t, a.Profile.Duration, b.Profile.Duration)
	assert.Equal(t, 300*time.Millisecond, r.Resolve("slide", animation.Context{}).Profile.Duration)
}

func TestResolver_Overrides(t *testing.T) {
	r := animation.NewResolver(map[string]animation.Motion{
		"fade": {Profile: animation.Timing(90*time.Millisecond, animation.LinearCurve)},
		"snap": {Profile: animation.Spring(animation.SpringDescription{Mass: 1, Stiffness: 500, Damping: 50})},
	})

	assert.Equal(t, 90*time.Millisecond, r.Resolve("fade", animation.Context{}).Profile.Duration)
	snap := r.Resolve("snap", animation.Context{})
	assert.Equal(t, "snap", snap.Type)
	assert.Equal(t, animation.KindSpring, snap.Profile.Kind)
	assert.True(t, r.Has("bounce"))
}

func TestMotion_Plan(t *testing.T) {
	r := animation.DefaultResolver()

	tests := []struct {
		name    string
		typ     string
		from    float64
		to      float64
		targets []float64
	}{
		{"single", "fade", 0, 1, []float64{1}},
		{"bounce overshoots", "bounce", 0, 100, []float64{115, 100}},
		{"bounce without travel", "bounce", 1, 1, []float64{1}},
		{"elastic", "elastic", 0, 10, []float64{12, 9, 10}},
		{"pulse in place", "pulse", 1, 1, []float64{1.1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stages := r.Resolve(tt.typ, animation.Context{}).Plan(tt.from, tt.to)
			require.Len(t, stages, len(tt.targets))
			for i, want := range tt.targets {
				assert.InDelta(t, want, stages[i].Target, 1e-9)
			}
		})
	}
}

func TestCurveByName(t *testing.T) {
	for _, name := range []string{"linear", "ease", "ease-in", "ease-out", "ease-in-out", "decelerate"} {
		c, ok := animation.CurveByName(name)
		require.True(t, ok, name)
		assert.InDelta(t, 0, c(0), 1e-9)
		assert.InDelta(t, 1, c(1), 1e-9)
	}
	_, ok := animation.CurveByName("zigzag")
	assert.False(t, ok)
}

func TestLerpColor(t *testing.T) {
	c := animation.TweenColor(
		colorRGBA(0, 0, 0, 255),
		colorRGBA(200, 100, 50, 255),
	)

	mid := c.Evaluate(0.5)
	assert.Equal(t, colorRGBA(100, 50, 25, 255), mid)
	assert.Equal(t, colorRGBA(200, 100, 50, 255), c.Evaluate(2))
}
