package config

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/toast"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
			_, err := zerolog.ParseLevel(strings.ToLower(fl.Field().String()))
			return err == nil
		})

		_ = v.RegisterValidation("toast_position", func(fl validator.FieldLevel) bool {
			return toast.Position(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("curve", func(fl validator.FieldLevel) bool {
			_, ok := animation.CurveByName(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks cfg against its schema and the cross-field rules the tags
// cannot express.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validatorInstance().Struct(cfg); err != nil {
		return err
	}

	names := make([]string, 0, len(cfg.Animations))
	for name := range cfg.Animations {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		a := cfg.Animations[name]
		if a.Kind == "spring" && a.Stiffness == 0 {
			return fmt.Errorf("animations.%s: spring needs a stiffness", name)
		}
		if a.Kind == "timing" && a.Overshoot > 0 && a.Duration == 0 {
			return fmt.Errorf("animations.%s: overshoot needs a duration", name)
		}
	}
	return nil
}
