package theme

// SizeTable holds the metrics for one size token.
type SizeTable struct {
	Height   float64
	PaddingX float64
	PaddingY float64
	FontSize float64
	IconSize float64
	Radius   float64
	Gap      float64
}

var sizes = map[string]SizeTable{
	"sm": {Height: 32, PaddingX: 8, PaddingY: 4, FontSize: 13, IconSize: 14, Radius: 4, Gap: 6},
	"md": {Height: 40, PaddingX: 12, PaddingY: 8, FontSize: 15, IconSize: 18, Radius: 6, Gap: 8},
	"lg": {Height: 48, PaddingX: 16, PaddingY: 10, FontSize: 17, IconSize: 22, Radius: 8, Gap: 10},
}

// SizesFor returns the metrics for "sm", "md" or "lg". Unknown tokens use
// "md".
func SizesFor(size string) SizeTable {
	switch size {
	case "small":
		size = "sm"
	case "large":
		size = "lg"
	}
	if t, ok := sizes[size]; ok {
		return t
	}
	return sizes["md"]
}
