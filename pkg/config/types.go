// Package config loads the YAML settings of a motion host: log output, toast
// manager defaults and animation profile overrides.
package config

import (
	"time"
)

// Config is the root of a settings file.
type Config struct {
	Log        LogConfig                  `yaml:"log"`
	Toast      ToastConfig                `yaml:"toast"`
	Animations map[string]AnimationConfig `yaml:"animations" validate:"omitempty,dive,keys,required,endkeys"`
}

// LogConfig selects the log level and format.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,log_level"`
	Human bool   `yaml:"human"`
}

// ToastConfig overrides toast manager defaults. Zero fields keep the
// built-in value.
type ToastConfig struct {
	MaxToasts      int           `yaml:"maxToasts" validate:"gte=0,lte=20"`
	Duration       time.Duration `yaml:"duration" validate:"gte=0"`
	Spacing        float64       `yaml:"spacing" validate:"gte=0"`
	SwipeThreshold float64       `yaml:"swipeThreshold" validate:"gte=0"`
	ExitDistance   float64       `yaml:"exitDistance" validate:"gte=0"`
	Position       string        `yaml:"position" validate:"omitempty,toast_position"`
	AnimationType  string        `yaml:"animationType"`
}

// AnimationConfig defines or overrides one animation type.
type AnimationConfig struct {
	// Kind is "timing" or "spring".
	Kind     string        `yaml:"kind" validate:"required,oneof=timing spring"`
	Duration time.Duration `yaml:"duration" validate:"gte=0"`
	Curve    string        `yaml:"curve" validate:"omitempty,curve"`

	Mass              float64 `yaml:"mass" validate:"gte=0"`
	Stiffness         float64 `yaml:"stiffness" validate:"gte=0"`
	Damping           float64 `yaml:"damping" validate:"gte=0"`
	OvershootClamping bool    `yaml:"overshootClamping"`

	// Overshoot turns the type into a staged bounce.
	Overshoot float64 `yaml:"overshoot" validate:"gte=0,lte=1"`
}
