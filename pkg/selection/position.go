package selection

import "fmt"

// Rect is a bounding box in viewport coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Bottom returns the rect's lower edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Hint steers where the panel opens.
type Hint int

const (
	// HintAuto opens below unless only the space above fits.
	HintAuto Hint = iota
	// HintTop always opens above the trigger.
	HintTop
	// HintBottom always opens below the trigger.
	HintBottom
)

func (h Hint) String() string {
	switch h {
	case HintAuto:
		return "auto"
	case HintTop:
		return "top"
	case HintBottom:
		return "bottom"
	default:
		return fmt.Sprintf("Hint(%d)", int(h))
	}
}

// ParseHint maps "auto", "top" and "bottom" to a Hint. Unknown tokens are
// HintAuto.
func ParseHint(s string) Hint {
	switch s {
	case "top":
		return HintTop
	case "bottom":
		return HintBottom
	}
	return HintAuto
}

// Direction is the side of the trigger the panel opens on.
type Direction int

const (
	Below Direction = iota
	Above
)

func (d Direction) String() string {
	if d == Above {
		return "above"
	}
	return "below"
}

// Placement is where an open panel is laid out.
type Placement struct {
	Direction Direction
	// Top is the panel's upper edge in viewport coordinates.
	Top    float64
	Height float64
	Width  float64
}

// ComputePosition places a panel of the desired height next to trigger.
// The panel opens below by default and above when the space below is short
// and the space above is not. Its height is clamped to the space on the
// chosen side, and its width starts at the trigger width.
func ComputePosition(trigger, viewport Rect, desired float64, hint Hint) Placement {
	below := max(viewport.Bottom()-trigger.Bottom(), 0)
	above := max(trigger.Y-viewport.Y, 0)

	dir := Below
	switch hint {
	case HintTop:
		dir = Above
	case HintBottom:
		dir = Below
	default:
		if below < desired && above >= desired {
			dir = Above
		}
	}

	p := Placement{Direction: dir, Width: PanelWidth(trigger, viewport, 0)}
	if dir == Above {
		p.Height = min(desired, above)
		p.Top = trigger.Y - p.Height
	} else {
		p.Height = min(desired, below)
		p.Top = trigger.Bottom()
	}
	return p
}

// PanelWidth is the wider of the trigger and the content, clamped to the
// viewport.
func PanelWidth(trigger, viewport Rect, content float64) float64 {
	w := max(trigger.Width, content)
	if viewport.Width > 0 {
		w = min(w, viewport.Width)
	}
	return w
}
