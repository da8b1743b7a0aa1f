// Package theme is the styling collaborator: opaque color, size and text
// metric lookups that hosts use to paint widgets. Widget controllers never
// compute colors or spacing themselves.
package theme

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// Brightness is the color scheme of the host.
type Brightness int

const (
	// BrightnessLight is a light background with dark text.
	BrightnessLight Brightness = iota
	// BrightnessDark is a dark background with light text.
	BrightnessDark
)

func (b Brightness) String() string {
	switch b {
	case BrightnessLight:
		return "light"
	case BrightnessDark:
		return "dark"
	default:
		return fmt.Sprintf("Brightness(%d)", int(b))
	}
}

// ParseBrightness maps "light" and "dark" to a Brightness. Anything else is
// light.
func ParseBrightness(s string) Brightness {
	if s == "dark" {
		return BrightnessDark
	}
	return BrightnessLight
}

// ColorTable is the palette for one widget variant.
type ColorTable struct {
	// Accent fills checked, selected and focused parts.
	Accent color.RGBA
	// OnAccent is text or iconography drawn over Accent.
	OnAccent color.RGBA
	// Surface is the widget background.
	Surface color.RGBA
	// Border outlines the resting widget.
	Border color.RGBA
	// Text is the primary foreground.
	Text color.RGBA
	// Muted is secondary text and placeholders.
	Muted color.RGBA
	// Disabled replaces Accent and Text when the widget is disabled.
	Disabled color.RGBA
	// Backdrop dims content behind modals.
	Backdrop color.RGBA
}

// Variant tokens understood by ColorsFor. Unknown tokens use VariantDefault.
const (
	VariantDefault = "default"
	VariantPrimary = "primary"
	VariantSuccess = "success"
	VariantError   = "error"
	VariantWarning = "warning"
	VariantInfo    = "info"
	VariantLoading = "loading"
)

var accents = map[string]color.RGBA{
	VariantDefault: colornames.Slategray,
	VariantPrimary: colornames.Royalblue,
	VariantSuccess: colornames.Seagreen,
	VariantError:   colornames.Firebrick,
	VariantWarning: colornames.Darkorange,
	VariantInfo:    colornames.Steelblue,
	VariantLoading: colornames.Mediumpurple,
}

// ColorsFor returns the palette for a variant under a brightness.
func ColorsFor(variant string, b Brightness) ColorTable {
	accent, ok := accents[variant]
	if !ok {
		accent = accents[VariantDefault]
	}
	if variant == "danger" {
		accent = accents[VariantError]
	}
	if b == BrightnessDark {
		return ColorTable{
			Accent:   accent,
			OnAccent: colornames.White,
			Surface:  colornames.Black,
			Border:   colornames.Dimgray,
			Text:     colornames.Whitesmoke,
			Muted:    colornames.Darkgray,
			Disabled: colornames.Dimgray,
			Backdrop: withAlpha(colornames.Black, 0xb3),
		}
	}
	return ColorTable{
		Accent:   accent,
		OnAccent: colornames.White,
		Surface:  colornames.White,
		Border:   colornames.Lightgray,
		Text:     colornames.Black,
		Muted:    colornames.Gray,
		Disabled: colornames.Gainsboro,
		Backdrop: withAlpha(colornames.Black, 0x80),
	}
}

// Hex formats c as #rrggbb, dropping alpha.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func withAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
