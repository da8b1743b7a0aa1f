package theme

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// TextMetrics is the unconstrained size of a single line of text.
type TextMetrics struct {
	Width  float64
	Height float64
}

// face is the fixed-width reference face text is measured with. Hosts that
// render proportional fonts scale these numbers themselves.
var face font.Face = basicfont.Face7x13

// MeasureText returns the natural size of s set on one line.
func MeasureText(s string) TextMetrics {
	adv := font.MeasureString(face, s)
	m := face.Metrics()
	return TextMetrics{
		Width:  float64(adv) / 64,
		Height: float64(m.Height) / 64,
	}
}
