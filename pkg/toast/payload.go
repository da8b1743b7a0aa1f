package toast

import (
	"time"

	"github.com/go-drift/motion/pkg/theme"
)

// Type selects a toast's theme and icon.
type Type string

const (
	TypeDefault Type = "default"
	TypeSuccess Type = "success"
	TypeError   Type = "error"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
	TypeLoading Type = "loading"
)

// Variant returns the theme variant token for the type.
func (t Type) Variant() string {
	switch t {
	case TypeSuccess:
		return theme.VariantSuccess
	case TypeError:
		return theme.VariantError
	case TypeWarning:
		return theme.VariantWarning
	case TypeInfo:
		return theme.VariantInfo
	case TypeLoading:
		return theme.VariantLoading
	}
	return theme.VariantDefault
}

// Position is the screen anchor a toast stacks under.
type Position string

const (
	Top         Position = "top"
	Bottom      Position = "bottom"
	TopLeft     Position = "top-left"
	TopRight    Position = "top-right"
	BottomLeft  Position = "bottom-left"
	BottomRight Position = "bottom-right"
)

// Positions lists every anchor.
var Positions = []Position{Top, Bottom, TopLeft, TopRight, BottomLeft, BottomRight}

// Valid reports whether p is a known anchor.
func (p Position) Valid() bool {
	switch p {
	case Top, Bottom, TopLeft, TopRight, BottomLeft, BottomRight:
		return true
	}
	return false
}

// IsTop reports whether the anchor is on the top edge.
func (p Position) IsTop() bool {
	return p == Top || p == TopLeft || p == TopRight
}

// IsCorner reports whether the anchor is a corner. Corner toasts swipe
// vertically; edge-centered toasts swipe horizontally.
func (p Position) IsCorner() bool {
	return p != Top && p != Bottom
}

// Persistent is the Duration of a toast that never dismisses itself.
const Persistent time.Duration = -1

// Action is an optional inline button.
type Action struct {
	Label   string
	OnPress func()
}

// Payload is the content of a toast. Zero fields take the manager's
// defaults when shown, and are left alone by Update.
type Payload struct {
	// ID is assigned by the manager when empty.
	ID      string
	Title   string
	Message string
	Type    Type
	Variant string
	// Position is fixed once shown.
	Position Position
	// Duration is the auto-dismiss delay. Zero uses the configured default
	// and Persistent disables auto-dismiss.
	Duration      time.Duration
	AnimationType string
	ShowProgress  bool
	Action        Action
	OnPress       func()
	// OnClose fires once, after the exit transition and before the toast is
	// removed. Capacity eviction does not call it.
	OnClose func()
}

// Item is a sampled view of one toast for rendering.
type Item struct {
	ID        string
	Payload   Payload
	CreatedAt time.Time
	// Visible is false once the exit transition started.
	Visible bool
	// Presence runs 0 to 1 on enter and back to 0 on exit.
	Presence float64
	// Offset is the animated stacking offset.
	Offset float64
	// Drag is the swipe displacement along the item's swipe axis.
	Drag float64
	// Progress runs 1 to 0 over the countdown.
	Progress float64
}
