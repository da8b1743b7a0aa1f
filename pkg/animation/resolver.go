package animation

import (
	"time"

	"github.com/rs/zerolog"
)

// DefaultType is the animation type used when a requested type is unknown.
const DefaultType = "smooth"

// Context carries the widget attributes that influence a resolved profile.
type Context struct {
	// Size is the widget size token: "sm", "md" or "lg". Empty means "md".
	Size string
	// Variant is the widget variant token. Currently informational.
	Variant string
}

// Resolver maps animation type names to motions. It is safe to share; the
// zero value is not usable, use [NewResolver] or [DefaultResolver].
type Resolver struct {
	motions map[string]Motion
	log     zerolog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithResolverLogger sets the logger used for fallback diagnostics.
func WithResolverLogger(log zerolog.Logger) ResolverOption {
	return func(r *Resolver) { r.log = log }
}

// BuiltinMotions returns a fresh copy of the built-in motion table.
func BuiltinMotions() map[string]Motion {
	leadIn := Timing(120*time.Millisecond, EaseOut)
	return map[string]Motion{
		"none":   {Type: "none", Profile: Instant},
		"smooth": {Type: "smooth", Profile: Timing(200*time.Millisecond, EaseInOut)},
		"fade":   {Type: "fade", Profile: Timing(250*time.Millisecond, EaseOut)},
		"scale":  {Type: "scale", Profile: Timing(180*time.Millisecond, EaseOut)},
		"slide":  {Type: "slide", Profile: Timing(300*time.Millisecond, Decelerate)},
		"spring": {Type: "spring", Profile: Spring(IOSSpring())},
		"bounce": {
			Type:      "bounce",
			Profile:   Spring(BouncySpring()),
			Overshoot: 0.15,
			LeadIn:    leadIn,
		},
		"elastic": {
			Type:      "elastic",
			Profile:   Spring(GentleSpring()),
			Overshoot: 0.2,
			LeadIn:    leadIn,
		},
		"pulse": {
			Type:    "pulse",
			Profile: Timing(150*time.Millisecond, EaseInOut),
			Pulse:   0.1,
			LeadIn:  Timing(100*time.Millisecond, EaseOut),
		},
	}
}

// NewResolver returns a resolver over the built-in table with overrides
// applied on top. Overrides may add new type names.
func NewResolver(overrides map[string]Motion, opts ...ResolverOption) *Resolver {
	r := &Resolver{motions: BuiltinMotions(), log: zerolog.Nop()}
	for name, m := range overrides {
		if m.Type == "" {
			m.Type = name
		}
		r.motions[name] = m
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResolver = NewResolver(nil)

// DefaultResolver returns the shared resolver over the built-in table.
func DefaultResolver() *Resolver { return defaultResolver }

// Resolve returns the motion for animationType scaled for ctx. It never
// fails: unknown types resolve to [DefaultType].
func (r *Resolver) Resolve(animationType string, ctx Context) Motion {
	m, ok := r.motions[animationType]
	if !ok {
		if animationType != "" {
			r.log.Debug().Str("animationType", animationType).Msg("unknown animation type, using default")
		}
		m = r.motions[DefaultType]
	}
	scale := sizeScale(ctx.Size)
	m.Profile = scaleProfile(m.Profile, scale)
	m.LeadIn = scaleProfile(m.LeadIn, scale)
	return m
}

// Has reports whether animationType is a known name.
func (r *Resolver) Has(animationType string) bool {
	_, ok := r.motions[animationType]
	return ok
}

func sizeScale(size string) float64 {
	switch size {
	case "sm", "small":
		return 0.8
	case "lg", "large":
		return 1.2
	}
	return 1
}

func scaleProfile(p Profile, scale float64) Profile {
	if p.Kind == KindTiming && scale != 1 {
		p.Duration = time.Duration(float64(p.Duration) * scale)
	}
	return p
}
