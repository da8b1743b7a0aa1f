package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/config"
	"github.com/go-drift/motion/pkg/disclosure"
	"github.com/go-drift/motion/pkg/selection"
	"github.com/go-drift/motion/pkg/theme"
	"github.com/go-drift/motion/pkg/toast"
	"github.com/go-drift/motion/pkg/widgets"
	"github.com/rs/zerolog"
)

// frameInterval paces the scheduler at roughly 60 frames per second.
const frameInterval = 16 * time.Millisecond

// Panels in focus order.
const (
	panelAccordion = iota
	panelCheckbox
	panelRadio
	panelSelect
	panelDropdown
	panelInput
	panelModal
	panelAlert
	panelProgress
	panelSkeleton
	panelCount
)

var panelNames = [panelCount]string{
	"Accordion", "Checkbox", "Radio", "Select", "Dropdown",
	"Input", "Modal", "Alert", "Progress", "Skeleton",
}

const accordionBody = "Widgets own state, not pixels.\nThe host samples channels every frame\nand paints whatever they say."

var fruits = []selection.Option[string]{
	{Label: "Apple", Value: "apple", Description: "Crisp and red"},
	{Label: "Banana", Value: "banana"},
	{Divider: true},
	{Label: "Cherry", Value: "cherry", Disabled: true},
	{Label: "Date", Value: "date", Description: "Sweet, from palms"},
}

var menu = []selection.Option[string]{
	{Label: "Copy", Value: "copy", Icon: "c"},
	{Label: "Paste", Value: "paste", Icon: "v"},
	{Label: "Delete", Value: "delete", Icon: "x", Disabled: true},
}

var speeds = []selection.Option[string]{
	{Label: "Slow", Value: "slow"},
	{Label: "Normal", Value: "normal"},
	{Label: "Fast", Value: "fast"},
}

type frameMsg time.Time

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// terminalLayout places the select panel relative to the terminal rows.
type terminalLayout struct {
	g   *gallery
	row int
}

func (l terminalLayout) TriggerRect() selection.Rect {
	return selection.Rect{X: 2, Y: float64(l.row), Width: 20, Height: 1}
}

func (l terminalLayout) Viewport() selection.Rect {
	return selection.Rect{Width: float64(l.g.width), Height: float64(l.g.height)}
}

// gallery is the bubbletea model. All widget calls happen in Update, which
// bubbletea runs on one goroutine; that goroutine is the scheduler's UI
// thread.
type gallery struct {
	sched *animation.Scheduler
	log   zerolog.Logger
	keys  keyMap
	help  help.Model

	focus      int
	brightness theme.Brightness
	width      int
	height     int
	status     string
	radioAt    int
	toastCount int

	accordion *widgets.Accordion
	checkbox  *widgets.Checkbox
	radios    *widgets.RadioGroup[string]
	sel       *selection.Controller[string]
	dropdown  *widgets.Dropdown[string]
	input     *widgets.Input
	modal     *widgets.Modal
	alert     *widgets.Alert
	progress  *widgets.ProgressBar
	skeleton  *widgets.Skeleton
	toasts    *toast.Manager

	cancel context.CancelFunc
}

func newGallery(sched *animation.Scheduler, cfg *config.Config, log zerolog.Logger, dark bool) *gallery {
	g := &gallery{
		sched:  sched,
		log:    log,
		keys:   defaultKeyMap(),
		help:   help.New(),
		width:  80,
		height: 24,
	}
	if dark {
		g.brightness = theme.BrightnessDark
	}
	g.cancel = func() {}

	resolver := cfg.Resolver(animation.WithResolverLogger(log))
	mopts := []disclosure.Option{disclosure.WithResolver(resolver), disclosure.WithLogger(log)}
	sopts := []selection.ControllerOption{selection.WithResolver(resolver), selection.WithLogger(log)}

	g.accordion = widgets.NewAccordion(sched, widgets.AccordionProps{
		OnChange: func(v bool) { g.setStatus("accordion expanded=%t", v) },
	}, mopts...)
	body := lipgloss.NewStyle().Padding(0, 2).Render(accordionBody)
	g.accordion.Measure(disclosure.Size{Width: float64(lipgloss.Width(body)), Height: float64(lipgloss.Height(body))})

	g.checkbox = widgets.NewCheckbox(sched, widgets.CheckboxProps{
		DefaultChecked: disclosure.Indeterminate,
		Variant:        theme.VariantSuccess,
		OnChange:       func(s disclosure.Tristate) { g.setStatus("checkbox %s", s) },
	}, mopts...)

	g.radios = widgets.NewRadioGroup(sched, widgets.RadioGroupProps[string]{
		Options:  speeds,
		Default:  "normal",
		OnChange: func(v string) { g.setStatus("speed %s", v) },
	}, mopts...)
	g.radioAt = 1

	g.sel = selection.New(sched, selection.Props[string]{
		Options:     fruits,
		Placeholder: "Pick a fruit",
		Searchable:  true,
		Size:        "sm",
		OnChange:    func(v string) { g.setStatus("fruit %s", v) },
		OnClear:     func() { g.setStatus("fruit cleared") },
		Layout:      terminalLayout{g: g, row: 2 + panelSelect*2},
	}, sopts...)
	g.sel.Measure(disclosure.Size{Width: 24, Height: float64(len(fruits))})

	g.dropdown = widgets.NewDropdown(sched, widgets.DropdownProps[string]{
		Items:    menu,
		OnSelect: func(o selection.Option[string]) { g.setStatus("menu %s", o.Label) },
	}, sopts...)
	g.dropdown.Measure(disclosure.Size{Width: 16, Height: float64(len(menu))})

	g.input = widgets.NewInput(sched, widgets.InputProps{
		Label:       "Email",
		Placeholder: "you@example.com",
	}, mopts...)

	g.modal = widgets.NewModal(sched, widgets.ModalProps{
		DismissOnBackdrop: true,
		AnimationType:     "scale",
		OnClose:           func() { g.setStatus("modal closed") },
	}, mopts...)

	g.alert = widgets.NewAlert(sched, widgets.AlertProps{
		Title:       "Heads up",
		Message:     "Press enter to dismiss me.",
		Variant:     theme.VariantInfo,
		Dismissible: true,
		OnDismiss:   func() { g.setStatus("alert dismissed") },
	}, mopts...)

	g.progress = widgets.NewProgressBar(sched, widgets.ProgressBarProps{Value: 0.3}, mopts...)
	g.skeleton = widgets.NewSkeleton(sched, mopts...)
	g.toasts = toast.NewManager(sched, cfg.ToastConfig(), toast.WithResolver(resolver), toast.WithLogger(log))
	return g
}

func (g *gallery) setStatus(format string, args ...any) {
	g.status = fmt.Sprintf(format, args...)
	g.log.Debug().Str("status", g.status).Msg("gallery event")
}

func (g *gallery) Init() tea.Cmd {
	return frame()
}

func (g *gallery) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		g.sched.Step()
		return g, frame()
	case tea.WindowSizeMsg:
		g.width, g.height = msg.Width, msg.Height
		g.help.Width = msg.Width
		return g, nil
	case tea.KeyMsg:
		return g, g.handleKey(msg)
	}
	return g, nil
}

func (g *gallery) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, g.keys.Quit) {
		return tea.Quit
	}
	if g.modal.Visible() {
		switch {
		case key.Matches(msg, g.keys.Escape):
			g.modal.TapBackdrop()
		case key.Matches(msg, g.keys.Activate):
			g.modal.Close()
		}
		return nil
	}

	switch {
	case key.Matches(msg, g.keys.Toast):
		g.showToast()
		return nil
	case key.Matches(msg, g.keys.Promise):
		g.startPromise()
		return nil
	case key.Matches(msg, g.keys.Dismiss):
		g.toasts.HideAll()
		return nil
	case key.Matches(msg, g.keys.Palette):
		if g.brightness == theme.BrightnessDark {
			g.brightness = theme.BrightnessLight
		} else {
			g.brightness = theme.BrightnessDark
		}
		return nil
	case key.Matches(msg, g.keys.Next):
		g.moveFocus(1)
		return nil
	case key.Matches(msg, g.keys.Prev):
		g.moveFocus(-1)
		return nil
	}

	switch g.focus {
	case panelAccordion:
		if key.Matches(msg, g.keys.Activate) {
			g.accordion.Toggle()
		}
	case panelCheckbox:
		if key.Matches(msg, g.keys.Activate) {
			g.checkbox.Toggle()
		}
	case panelRadio:
		switch {
		case key.Matches(msg, g.keys.Up):
			g.radioAt = (g.radioAt + g.radios.Len() - 1) % g.radios.Len()
		case key.Matches(msg, g.keys.Down):
			g.radioAt = (g.radioAt + 1) % g.radios.Len()
		case key.Matches(msg, g.keys.Activate):
			g.radios.Radio(g.radioAt).Press()
		}
	case panelSelect:
		g.selectKey(msg)
	case panelDropdown:
		switch {
		case key.Matches(msg, g.keys.Activate):
			if g.dropdown.IsOpen() {
				g.dropdown.SelectHighlighted()
			} else {
				g.dropdown.Open()
			}
		case key.Matches(msg, g.keys.Up):
			g.dropdown.MoveHighlight(-1)
		case key.Matches(msg, g.keys.Down):
			g.dropdown.MoveHighlight(1)
		case key.Matches(msg, g.keys.Escape):
			g.dropdown.Close()
		}
	case panelInput:
		g.inputKey(msg)
	case panelModal:
		if key.Matches(msg, g.keys.Activate) {
			g.modal.Open()
		}
	case panelAlert:
		if key.Matches(msg, g.keys.Activate) {
			if g.alert.Visible() {
				g.alert.Dismiss()
			} else {
				g.alert.Show()
			}
		}
	case panelProgress:
		switch {
		case key.Matches(msg, g.keys.Up):
			g.progress.SetValue(g.progress.Value() + 0.1)
		case key.Matches(msg, g.keys.Down):
			g.progress.SetValue(g.progress.Value() - 0.1)
		case key.Matches(msg, g.keys.Activate):
			g.progress.Update(widgets.ProgressBarProps{
				Value:         g.progress.Value(),
				Indeterminate: !g.progress.Indeterminate(),
			})
		}
	case panelSkeleton:
		if key.Matches(msg, g.keys.Activate) {
			if g.skeleton.Active() {
				g.skeleton.Stop()
			} else {
				g.skeleton.Start()
			}
		}
	}
	return nil
}

func (g *gallery) selectKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, g.keys.Activate) && !(g.sel.Focused() && msg.String() == " "):
		if g.sel.IsOpen() {
			g.sel.SelectHighlighted()
		} else {
			g.sel.Open()
			g.sel.Focus()
		}
	case key.Matches(msg, g.keys.Up):
		g.sel.MoveHighlight(-1)
	case key.Matches(msg, g.keys.Down):
		g.sel.MoveHighlight(1)
	case key.Matches(msg, g.keys.Escape):
		g.sel.Close()
	case key.Matches(msg, g.keys.Clear):
		g.sel.Clear()
	case msg.Type == tea.KeyBackspace && g.sel.Focused():
		q := g.sel.Query()
		if q != "" {
			g.sel.SetQuery(q[:len(q)-1])
		}
	case (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) && g.sel.Focused():
		g.sel.SetQuery(g.sel.Query() + string(msg.Runes))
	}
}

func (g *gallery) inputKey(msg tea.KeyMsg) {
	if !g.input.Focused() {
		if key.Matches(msg, g.keys.Activate) {
			g.input.Focus()
		}
		return
	}
	text := g.input.Text()
	switch {
	case key.Matches(msg, g.keys.Escape), msg.Type == tea.KeyEnter:
		g.input.Blur()
		props := g.input.Props()
		props.Error = ""
		if text != "" && !strings.Contains(text, "@") {
			props.Error = "not an email address"
		}
		g.input.Update(props)
	case key.Matches(msg, g.keys.Clear):
		g.input.Clear()
	case msg.Type == tea.KeyBackspace:
		if text != "" {
			g.input.SetText(text[:len(text)-1])
		}
	case msg.Type == tea.KeyRunes, msg.Type == tea.KeySpace:
		g.input.SetText(text + string(msg.Runes))
	}
}

func (g *gallery) moveFocus(delta int) {
	switch g.focus {
	case panelSelect:
		g.sel.Close()
	case panelDropdown:
		g.dropdown.Close()
	case panelInput:
		g.input.Blur()
	}
	g.focus = (g.focus + delta + panelCount) % panelCount
}

var toastKinds = []toast.Type{toast.TypeSuccess, toast.TypeInfo, toast.TypeWarning, toast.TypeError}

func (g *gallery) showToast() {
	kind := toastKinds[g.toastCount%len(toastKinds)]
	g.toastCount++
	g.toasts.Show(toast.Payload{
		Title:        fmt.Sprintf("Toast #%d", g.toastCount),
		Message:      fmt.Sprintf("A %s message", kind),
		Type:         kind,
		ShowProgress: true,
	})
}

func (g *gallery) startPromise() {
	ctx, cancel := context.WithCancel(context.Background())
	prev := g.cancel
	g.cancel = func() { prev(); cancel() }
	toast.Promise(ctx, g.toasts, func(ctx context.Context) (int, error) {
		select {
		case <-time.After(1500 * time.Millisecond):
			return 42, nil
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}, toast.PromiseMessages[int]{
		Loading:     toast.Payload{Title: "Computing", Message: "Asking the oracle"},
		SuccessFunc: func(v int) toast.Payload { return toast.Payload{Title: "Done", Message: fmt.Sprintf("The answer is %d", v)} },
		Error:       toast.Payload{Title: "Failed"},
	})
}

func (g *gallery) dispose() {
	g.cancel()
	g.accordion.Dispose()
	g.checkbox.Dispose()
	g.radios.Dispose()
	g.sel.Dispose()
	g.dropdown.Dispose()
	g.input.Dispose()
	g.modal.Dispose()
	g.alert.Dispose()
	g.progress.Dispose()
	g.skeleton.Dispose()
	g.toasts.Dispose()
}
