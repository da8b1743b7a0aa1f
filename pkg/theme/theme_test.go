package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"
)

func TestColorsForFallsBackToDefault(t *testing.T) {
	unknown := ColorsFor("sparkly", BrightnessLight)
	def := ColorsFor(VariantDefault, BrightnessLight)
	assert.Equal(t, def, unknown)
	assert.Equal(t, colornames.Firebrick, ColorsFor("danger", BrightnessDark).Accent)
}

func TestColorsForBrightness(t *testing.T) {
	light := ColorsFor(VariantPrimary, BrightnessLight)
	dark := ColorsFor(VariantPrimary, ParseBrightness("dark"))
	assert.Equal(t, light.Accent, dark.Accent)
	assert.NotEqual(t, light.Surface, dark.Surface)
	assert.Equal(t, "dark", BrightnessDark.String())
}

func TestSizesFor(t *testing.T) {
	assert.Equal(t, 32.0, SizesFor("sm").Height)
	assert.Equal(t, SizesFor("lg"), SizesFor("large"))
	assert.Equal(t, SizesFor("md"), SizesFor("huge"))
}

func TestMeasureText(t *testing.T) {
	m := MeasureText("abc")
	assert.Equal(t, 21.0, m.Width)
	assert.Equal(t, 13.0, m.Height)
	assert.Zero(t, MeasureText("").Width)
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#4169e1", Hex(colornames.Royalblue))
}
