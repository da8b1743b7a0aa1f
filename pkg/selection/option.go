// Package selection implements the select/dropdown controller: single and
// multiple selection over a fixed option list, search filtering and panel
// placement relative to the viewport.
package selection

import "strings"

// Option is one entry of an option list. Hosts own the list; the controller
// never mutates it.
type Option[V comparable] struct {
	Label       string
	Value       V
	Disabled    bool
	Description string
	Icon        string
	// Divider marks a separator row. Dividers are never selectable.
	Divider bool
}

// Selectable reports whether the option can be selected.
func (o Option[V]) Selectable() bool {
	return !o.Disabled && !o.Divider
}

// Filter returns the options whose label or description contains query,
// ignoring case. Whitespace in query is matched literally. Order is
// preserved and an empty query returns options unchanged. Dividers only
// survive an empty query.
func Filter[V comparable](options []Option[V], query string) []Option[V] {
	q := strings.ToLower(query)
	if q == "" {
		return options
	}
	out := make([]Option[V], 0, len(options))
	for _, o := range options {
		if o.Divider {
			continue
		}
		if strings.Contains(strings.ToLower(o.Label), q) ||
			(o.Description != "" && strings.Contains(strings.ToLower(o.Description), q)) {
			out = append(out, o)
		}
	}
	return out
}

// Find returns the first option holding v.
func Find[V comparable](options []Option[V], v V) (Option[V], bool) {
	for _, o := range options {
		if !o.Divider && o.Value == v {
			return o, true
		}
	}
	return Option[V]{}, false
}
