package disclosure

import "fmt"

// Disclosure is the open/closed state of an expandable widget.
type Disclosure int

const (
	// Closed hides the widget's body.
	Closed Disclosure = iota
	// Open shows the widget's body.
	Open
)

func (d Disclosure) String() string {
	switch d {
	case Closed:
		return "closed"
	case Open:
		return "open"
	default:
		return fmt.Sprintf("Disclosure(%d)", int(d))
	}
}

// Flip returns the opposite disclosure.
func (d Disclosure) Flip() Disclosure {
	if d == Open {
		return Closed
	}
	return Open
}

// Tristate is the state of a checkbox.
type Tristate int

const (
	// Unchecked is the empty checkbox.
	Unchecked Tristate = iota
	// Checked shows the check mark.
	Checked
	// Indeterminate shows the mixed-state bar.
	Indeterminate
)

func (t Tristate) String() string {
	switch t {
	case Unchecked:
		return "unchecked"
	case Checked:
		return "checked"
	case Indeterminate:
		return "indeterminate"
	default:
		return fmt.Sprintf("Tristate(%d)", int(t))
	}
}

// Next returns the state a toggle moves to. Indeterminate resolves to
// Checked.
func (t Tristate) Next() Tristate {
	if t == Checked {
		return Unchecked
	}
	return Checked
}

// Selected is the state of a radio button or other single selectable.
type Selected int

const (
	// Unselected is the resting state.
	Unselected Selected = iota
	// IsSelected marks the chosen item.
	IsSelected
)

func (s Selected) String() string {
	switch s {
	case Unselected:
		return "unselected"
	case IsSelected:
		return "selected"
	default:
		return fmt.Sprintf("Selected(%d)", int(s))
	}
}

// Flip returns the opposite selection.
func (s Selected) Flip() Selected {
	if s == IsSelected {
		return Unselected
	}
	return IsSelected
}

// Size is a measured content size.
type Size struct {
	Width  float64
	Height float64
}
