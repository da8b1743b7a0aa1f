package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/toast"
	"gopkg.in/yaml.v3"
)

// Default returns an empty configuration: every consumer falls back to its
// built-in defaults.
func Default() *Config {
	return &Config{Log: LogConfig{Level: "info"}}
}

// Load reads, parses and validates the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional is Load, except a missing file yields Default.
func LoadOptional(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes and validates YAML. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Resolver builds an animation resolver with the configured overrides on
// top of the built-in table.
func (c *Config) Resolver(opts ...animation.ResolverOption) *animation.Resolver {
	overrides := make(map[string]animation.Motion, len(c.Animations))
	for name, a := range c.Animations {
		overrides[name] = a.motion(name)
	}
	return animation.NewResolver(overrides, opts...)
}

func (a AnimationConfig) motion(name string) animation.Motion {
	var profile animation.Profile
	if a.Kind == "spring" {
		profile = animation.Spring(animation.SpringDescription{
			Mass:              a.Mass,
			Stiffness:         a.Stiffness,
			Damping:           a.Damping,
			OvershootClamping: a.OvershootClamping,
		})
	} else {
		curve := animation.EaseInOut
		if c, ok := animation.CurveByName(a.Curve); ok {
			curve = c
		}
		profile = animation.Timing(a.Duration, curve)
	}

	m := animation.Motion{Type: name, Profile: profile}
	// Overshooting types plan like the built-in bounce.
	if a.Overshoot > 0 {
		m.Type = "bounce"
		m.Overshoot = a.Overshoot
		m.LeadIn = animation.Timing(120*time.Millisecond, animation.EaseOut)
	}
	return m
}

// ToastConfig builds toast manager settings. Unset fields keep the manager's
// defaults.
func (c *Config) ToastConfig() toast.Config {
	out := toast.DefaultConfig()
	t := c.Toast
	if t.MaxToasts > 0 {
		out.MaxToasts = t.MaxToasts
	}
	if t.Duration > 0 {
		out.DefaultDuration = t.Duration
	}
	if t.Spacing > 0 {
		out.Spacing = t.Spacing
	}
	if t.SwipeThreshold > 0 {
		out.SwipeThreshold = t.SwipeThreshold
	}
	if t.ExitDistance > 0 {
		out.ExitDistance = t.ExitDistance
	}
	if t.Position != "" {
		out.Position = toast.Position(t.Position)
	}
	if t.AnimationType != "" {
		out.AnimationType = t.AnimationType
	}
	return out
}
