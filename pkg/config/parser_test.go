package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/toast"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `log:
  level: debug
  human: true
toast:
  maxToasts: 5
  duration: 6s
  position: bottom-right
animations:
  smooth:
    kind: timing
    duration: 150ms
    curve: ease-out
  wobble:
    kind: spring
    stiffness: 200
    damping: 10
    mass: 1
  pop:
    kind: timing
    duration: 180ms
    overshoot: 0.25
`

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "full file",
			yaml: sample,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.True(t, cfg.Log.Human)
				assert.Equal(t, 6*time.Second, cfg.Toast.Duration)
				require.Len(t, cfg.Animations, 3)
				assert.Equal(t, "spring", cfg.Animations["wobble"].Kind)
			},
		},
		{
			name: "empty document keeps defaults",
			yaml: "",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "info", cfg.Log.Level)
				assert.Empty(t, cfg.Animations)
			},
		},
		{name: "unknown key", yaml: "toast:\n  maxToast: 3\n", wantErr: true},
		{name: "malformed yaml", yaml: "log: [", wantErr: true},
		{name: "bad level", yaml: "log:\n  level: loud\n", wantErr: true},
		{name: "bad position", yaml: "toast:\n  position: middle\n", wantErr: true},
		{name: "bad curve", yaml: "animations:\n  x:\n    kind: timing\n    curve: wiggle\n", wantErr: true},
		{name: "bad kind", yaml: "animations:\n  x:\n    kind: tween\n", wantErr: true},
		{name: "spring without stiffness", yaml: "animations:\n  x:\n    kind: spring\n", wantErr: true},
		{name: "negative spacing", yaml: "toast:\n  spacing: -4\n", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Parse([]byte(tc.yaml))
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tc.check(t, cfg)
		})
	}
}

func TestParse_ValidationErrorsAreExposed(t *testing.T) {
	_, err := Parse([]byte("toast:\n  maxToasts: 99\n"))
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "MaxToasts", verrs[0].Field())
	assert.Equal(t, "lte", verrs[0].Tag())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "motion.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Toast.MaxToasts)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	cfg, err = LoadOptional(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = LoadOptional("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestConfig_Resolver(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)
	r := cfg.Resolver()

	smooth := r.Resolve("smooth", animation.Context{})
	assert.Equal(t, 150*time.Millisecond, smooth.Profile.Duration)

	wobble := r.Resolve("wobble", animation.Context{})
	assert.Equal(t, animation.KindSpring, wobble.Profile.Kind)
	assert.Equal(t, 200.0, wobble.Profile.Spring.Stiffness)

	pop := r.Resolve("pop", animation.Context{})
	assert.True(t, pop.Staged())
	assert.Len(t, pop.Plan(0, 1), 2)

	fade := r.Resolve("fade", animation.Context{})
	assert.Equal(t, 250*time.Millisecond, fade.Profile.Duration, "built-ins survive")
}

func TestConfig_ToastConfig(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	tc := cfg.ToastConfig()
	assert.Equal(t, 5, tc.MaxToasts)
	assert.Equal(t, 6*time.Second, tc.DefaultDuration)
	assert.Equal(t, toast.BottomRight, tc.Position)
	assert.Equal(t, toast.DefaultConfig().Spacing, tc.Spacing)
	assert.Equal(t, "slide", tc.AnimationType)

	assert.Equal(t, toast.DefaultConfig(), Default().ToastConfig())
}
