package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var fruits = []Option[string]{
	{Label: "Apple", Value: "apple", Description: "Crisp and red"},
	{Label: "Banana", Value: "banana"},
	{Divider: true},
	{Label: "Cherry", Value: "cherry", Disabled: true},
	{Label: "Date", Value: "date", Description: "Sweet, from palms"},
}

func values(opts []Option[string]) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.Value)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty returns all", "", []string{"apple", "banana", "", "cherry", "date"}},
		{"blank is matched literally", "  ", []string{}},
		{"trailing space is significant", "an ", []string{}},
		{"case insensitive label", "APP", []string{"apple"}},
		{"matches description", "palm", []string{"date"}},
		{"order preserved", "a", []string{"apple", "banana", "date"}},
		{"disabled stays visible", "cher", []string{"cherry"}},
		{"no match", "kiwi", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, values(Filter(fruits, tt.query)))
		})
	}
}

func TestFind(t *testing.T) {
	o, ok := Find(fruits, "date")
	assert.True(t, ok)
	assert.Equal(t, "Date", o.Label)

	_, ok = Find(fruits, "")
	assert.False(t, ok, "dividers never resolve")
}
