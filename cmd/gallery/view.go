package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/selection"
	"github.com/go-drift/motion/pkg/theme"
	"github.com/go-drift/motion/pkg/toast"
	"github.com/go-drift/motion/pkg/widgets"
)

const trackWidth = 30

func hex(c color.RGBA) lipgloss.Color { return lipgloss.Color(theme.Hex(c)) }

// fade blends from the surface to c by opacity; terminals have no alpha.
func (g *gallery) fade(c color.RGBA, opacity float64) lipgloss.Color {
	surface := theme.ColorsFor("", g.brightness).Surface
	return hex(animation.LerpColor(surface, c, opacity))
}

func (g *gallery) View() string {
	colors := theme.ColorsFor(theme.VariantPrimary, g.brightness)
	base := lipgloss.NewStyle().Foreground(hex(colors.Text)).Background(hex(colors.Surface))

	var rows []string
	rows = append(rows, g.renderToasts(true)...)
	for p := range panelCount {
		rows = append(rows, g.renderPanel(p))
	}
	rows = append(rows, g.renderToasts(false)...)
	rows = append(rows, "", lipgloss.NewStyle().Foreground(hex(colors.Muted)).Render(g.status))
	rows = append(rows, g.help.View(g.keys))

	page := base.Width(g.width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	if g.modal.Mounted() {
		return lipgloss.Place(g.width, g.height, lipgloss.Center, lipgloss.Center, g.renderModal(),
			lipgloss.WithWhitespaceBackground(g.fade(colors.Backdrop, g.modal.Sample(widgets.ChannelBackdrop))))
	}
	return page
}

func (g *gallery) renderPanel(p int) string {
	colors := theme.ColorsFor(theme.VariantPrimary, g.brightness)
	marker := "  "
	label := lipgloss.NewStyle().Width(11)
	if p == g.focus {
		marker = "> "
		label = label.Bold(true).Foreground(hex(colors.Accent))
	}
	head := marker + label.Render(panelNames[p])

	var body string
	switch p {
	case panelAccordion:
		body = g.renderAccordion()
	case panelCheckbox:
		body = g.renderCheckbox()
	case panelRadio:
		body = g.renderRadios()
	case panelSelect:
		body = g.renderSelect()
	case panelDropdown:
		body = g.renderDropdown()
	case panelInput:
		body = g.renderInput()
	case panelModal:
		body = "[ open dialog ]"
	case panelAlert:
		body = g.renderAlert()
	case panelProgress:
		body = g.renderProgress()
	case panelSkeleton:
		body = g.renderSkeleton()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, head, body)
}

func (g *gallery) renderAccordion() string {
	colors := theme.ColorsFor(theme.VariantDefault, g.brightness)
	chevron := "▸"
	if g.accordion.Sample(widgets.ChannelRotation) >= 90 {
		chevron = "▾"
	}
	head := chevron + " What is this?"
	rows := int(math.Round(g.accordion.Sample(widgets.ChannelHeight)))
	if rows <= 0 {
		return head
	}
	lines := strings.Split(accordionBody, "\n")
	lines = lines[:min(rows, len(lines))]
	body := lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(g.fade(colors.Text, g.accordion.Sample(widgets.ChannelOpacity))).
		Render(strings.Join(lines, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, head, body)
}

func (g *gallery) renderCheckbox() string {
	mark := " "
	switch {
	case g.checkbox.Sample(widgets.ChannelCheck) > 0.5:
		mark = "x"
	case g.checkbox.Sample(widgets.ChannelIndeterminate) > 0.5:
		mark = "-"
	}
	box := "[" + mark + "]"
	if g.checkbox.Sample(widgets.ChannelScale) > 1.02 {
		box = "[" + strings.ToUpper(mark) + "]"
	}
	style := lipgloss.NewStyle().Foreground(hex(g.checkbox.Fill(g.brightness)))
	return style.Render(box) + " Accept terms (" + g.checkbox.State().String() + ")"
}

func (g *gallery) renderRadios() string {
	accent := theme.ColorsFor(theme.VariantPrimary, g.brightness)
	parts := make([]string, g.radios.Len())
	for i, opt := range speeds {
		r := g.radios.Radio(i)
		dot := "( )"
		if r.Sample(widgets.ChannelDot) > 0.5 {
			dot = "(o)"
		}
		ring := animation.LerpColor(accent.Border, accent.Accent, r.Sample(widgets.ChannelColorMix))
		s := lipgloss.NewStyle().Foreground(hex(ring))
		if g.focus == panelRadio && i == g.radioAt {
			s = s.Underline(true)
		}
		parts[i] = s.Render(dot + " " + opt.Label)
	}
	return strings.Join(parts, "  ")
}

func (g *gallery) renderSelect() string {
	trigger := g.sel.DisplayLabel()
	if g.sel.Focused() {
		trigger += "  /" + g.sel.Query()
	}
	chevron := "▾"
	if g.sel.Sample(selection.ChannelRotation) >= 90 {
		chevron = "▴"
	}
	head := "[" + trigger + " " + chevron + "]"
	panel := g.renderOptions(g.sel.Visible(), g.sel.Sample(selection.ChannelHeight), g.sel.Sample(selection.ChannelOpacity),
		g.sel.IsSelected, func() (selection.Option[string], bool) { return g.sel.Highlighted() })
	if panel == "" {
		return head
	}
	if g.sel.Placement().Direction == selection.Above {
		return lipgloss.JoinVertical(lipgloss.Left, panel, head)
	}
	return lipgloss.JoinVertical(lipgloss.Left, head, panel)
}

func (g *gallery) renderDropdown() string {
	head := "[ Actions ▾ ]"
	panel := g.renderOptions(g.dropdown.Items(), g.dropdown.Sample(selection.ChannelHeight), g.dropdown.Sample(selection.ChannelOpacity),
		func(string) bool { return false }, g.dropdown.Highlighted)
	if panel == "" {
		return head
	}
	return lipgloss.JoinVertical(lipgloss.Left, head, panel)
}

func (g *gallery) renderOptions(opts []selection.Option[string], height, opacity float64, selected func(string) bool, highlighted func() (selection.Option[string], bool)) string {
	rows := int(math.Round(height))
	if rows <= 0 {
		return ""
	}
	colors := theme.ColorsFor(theme.VariantPrimary, g.brightness)
	hl, hasHL := highlighted()
	lines := make([]string, 0, len(opts))
	for _, o := range opts {
		if o.Divider {
			lines = append(lines, strings.Repeat("─", 12))
			continue
		}
		fg := colors.Text
		if !o.Selectable() {
			fg = colors.Disabled
		}
		prefix := "  "
		if selected(o.Value) {
			prefix = "✓ "
		}
		s := lipgloss.NewStyle().Foreground(g.fade(fg, opacity))
		if hasHL && o.Value == hl.Value {
			s = s.Reverse(true)
		}
		line := prefix + o.Label
		if o.Description != "" {
			line += "  " + o.Description
		}
		lines = append(lines, s.Render(line))
	}
	lines = lines[:min(rows, len(lines))]
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(g.fade(colors.Border, opacity)).
		Render(strings.Join(lines, "\n"))
}

func (g *gallery) renderInput() string {
	colors := theme.ColorsFor(theme.VariantDefault, g.brightness)
	props := g.input.Props()
	label := ""
	if g.input.Sample(widgets.ChannelLabel) > 0.5 {
		label = lipgloss.NewStyle().Foreground(hex(colors.Muted)).Render(props.Label) + "\n"
	}
	content := g.input.Text()
	if content == "" && g.input.Sample(widgets.ChannelLabel) <= 0.5 {
		content = lipgloss.NewStyle().Foreground(hex(colors.Muted)).Render(props.Label)
	}
	if g.input.Focused() {
		content += "▏"
	}
	shake := int(math.Round(g.input.Sample(widgets.ChannelShake) / 3))
	field := lipgloss.NewStyle().
		Width(28).
		MarginLeft(max(0, 2+shake)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(hex(g.input.BorderColor(g.brightness))).
		Render(content)
	out := label + field
	if props.Error != "" {
		danger := theme.ColorsFor(theme.VariantError, g.brightness).Accent
		out += "\n" + lipgloss.NewStyle().Foreground(g.fade(danger, g.input.Sample(widgets.ChannelError))).Render(props.Error)
	}
	return out
}

func (g *gallery) renderAlert() string {
	if !g.alert.Mounted() {
		return "(dismissed, press enter to restore)"
	}
	colors := g.alert.Colors(g.brightness)
	opacity := g.alert.Sample(widgets.ChannelOpacity)
	p := g.alert.Props()
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(g.fade(colors.Accent, opacity)).
		Foreground(g.fade(colors.Text, opacity)).
		PaddingLeft(1).
		MarginTop(max(0, int(math.Round(g.alert.Sample(widgets.ChannelSlide)/6)))).
		Render(lipgloss.JoinVertical(lipgloss.Left, lipgloss.NewStyle().Bold(true).Render(p.Title), p.Message))
}

func (g *gallery) renderProgress() string {
	colors := theme.ColorsFor(theme.VariantPrimary, g.brightness)
	fill := lipgloss.NewStyle().Foreground(hex(colors.Accent))
	track := lipgloss.NewStyle().Foreground(hex(colors.Border))
	if g.progress.Indeterminate() {
		at := int(g.progress.Sample(widgets.ChannelSweep) * float64(trackWidth-6))
		return track.Render(strings.Repeat("░", at)) + fill.Render(strings.Repeat("█", 6)) + track.Render(strings.Repeat("░", trackWidth-6-at))
	}
	v := g.progress.Sample(widgets.ChannelProgress)
	n := int(math.Round(v * trackWidth))
	return fill.Render(strings.Repeat("█", n)) + track.Render(strings.Repeat("░", trackWidth-n)) + fmt.Sprintf(" %3.0f%%", v*100)
}

func (g *gallery) renderSkeleton() string {
	colors := theme.ColorsFor(theme.VariantDefault, g.brightness)
	return lipgloss.NewStyle().Foreground(g.fade(colors.Muted, g.skeleton.Opacity())).Render(strings.Repeat("▇", 24))
}

func (g *gallery) renderModal() string {
	colors := theme.ColorsFor(theme.VariantPrimary, g.brightness)
	opacity := g.modal.Sample(widgets.ChannelOpacity)
	width := int(math.Round(40 * g.modal.Sample(widgets.ChannelScale)))
	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 2).
		MarginTop(max(0, int(math.Round(g.modal.Sample(widgets.ChannelSlide)/4)))).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(g.fade(colors.Accent, opacity)).
		Foreground(g.fade(colors.Text, opacity)).
		Render("Dialog\n\nenter closes, esc taps the backdrop")
}

// renderToasts stacks the toasts of the top or bottom anchors. Corner
// anchors share the row stack with their edge.
func (g *gallery) renderToasts(top bool) []string {
	var items []toast.Item
	for _, pos := range toast.Positions {
		if pos.IsTop() == top {
			items = append(items, g.toasts.ItemsAt(pos)...)
		}
	}
	var out []string
	for _, it := range items {
		colors := theme.ColorsFor(it.Payload.Type.Variant(), g.brightness)
		opacity := it.Presence
		title := it.Payload.Title
		if title == "" {
			title = string(it.Payload.Type)
		}
		line := fmt.Sprintf("%s  %s", title, it.Payload.Message)
		if it.Payload.ShowProgress && it.Payload.Duration != toast.Persistent {
			n := int(math.Round(it.Progress * 10))
			line += "  " + strings.Repeat("▬", n)
		}
		out = append(out, lipgloss.NewStyle().
			MarginLeft(max(0, 2+int(it.Drag/8))).
			Foreground(g.fade(colors.Accent, opacity)).
			Render(line))
	}
	return out
}
