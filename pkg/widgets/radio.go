package widgets

import (
	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/disclosure"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/selection"
)

// RadioProps configure a standalone Radio.
type RadioProps struct {
	// Selected makes the radio controlled when non-nil.
	Selected        *bool
	DefaultSelected bool
	Disabled        bool
	AnimationType   string
	Size            string
	// OnSelect fires when the radio asks to become selected. A radio never
	// deselects itself.
	OnSelect func()
}

// Radio is one selectable dot. The dot scales in and the ring color blends
// toward the accent when selected.
type Radio struct {
	m *disclosure.Machine[disclosure.Selected]
}

var radioVariant = disclosure.Variant[disclosure.Selected]{
	Name:        "radio",
	Channels:    []string{ChannelDot, ChannelColorMix},
	OpenState:   disclosure.IsSelected,
	ClosedState: disclosure.Unselected,
	Next:        func(disclosure.Selected) disclosure.Selected { return disclosure.IsSelected },
	Targets: func(s disclosure.Selected, _ disclosure.Env) map[string]float64 {
		if s == disclosure.IsSelected {
			return map[string]float64{ChannelDot: 1, ChannelColorMix: 1}
		}
		return map[string]float64{ChannelDot: 0, ChannelColorMix: 0}
	},
}

// NewRadio creates a radio.
func NewRadio(sched *animation.Scheduler, p RadioProps, opts ...disclosure.Option) *Radio {
	return &Radio{m: disclosure.New(sched, radioVariant, p.machineProps(), opts...)}
}

func (p RadioProps) machineProps() disclosure.Props[disclosure.Selected] {
	mp := disclosure.Props[disclosure.Selected]{
		Default:       selectedState(p.DefaultSelected),
		Disabled:      p.Disabled,
		AnimationType: p.AnimationType,
		Size:          p.Size,
	}
	if p.Selected != nil {
		s := selectedState(*p.Selected)
		mp.Value = &s
	}
	if p.OnSelect != nil {
		onSelect := p.OnSelect
		mp.OnStateChange = func(disclosure.Selected) { onSelect() }
	}
	return mp
}

func selectedState(v bool) disclosure.Selected {
	if v {
		return disclosure.IsSelected
	}
	return disclosure.Unselected
}

// Selected reports whether the radio is selected.
func (r *Radio) Selected() bool { return r.m.State() == disclosure.IsSelected }

// Press selects the radio.
func (r *Radio) Press() { r.m.Toggle() }

// Update applies new props.
func (r *Radio) Update(p RadioProps) { r.m.Update(p.machineProps()) }

// Sample returns a channel's current value.
func (r *Radio) Sample(name string) float64 { return r.m.Sample(name) }

// Machine returns the underlying state machine.
func (r *Radio) Machine() *disclosure.Machine[disclosure.Selected] { return r.m }

// Dispose cancels the radio's animations.
func (r *Radio) Dispose() { r.m.Dispose() }

// RadioGroupProps configure a RadioGroup.
type RadioGroupProps[V comparable] struct {
	Options []selection.Option[V]
	// Value makes the group controlled when non-nil.
	Value         *V
	Default       V
	Disabled      bool
	AnimationType string
	Size          string
	OnChange      func(V)
}

// RadioGroup owns the selected value of a set of radios. Each radio is
// controlled by the group; pressing one routes through Select.
type RadioGroup[V comparable] struct {
	sched  *animation.Scheduler
	opts   []disclosure.Option
	props  RadioGroupProps[V]
	value  V
	radios []*Radio

	warnedNoHandler bool
	warnedValues    map[V]struct{}
	disposed        bool
}

// NewRadioGroup creates a group with one radio per option.
func NewRadioGroup[V comparable](sched *animation.Scheduler, p RadioGroupProps[V], opts ...disclosure.Option) *RadioGroup[V] {
	g := &RadioGroup[V]{sched: sched, opts: opts, props: p, value: p.Default, warnedValues: make(map[V]struct{})}
	if p.Value != nil {
		g.value = *p.Value
	}
	g.build()
	g.checkValue()
	return g
}

func (g *RadioGroup[V]) build() {
	for _, r := range g.radios {
		r.Dispose()
	}
	g.radios = make([]*Radio, len(g.props.Options))
	for i := range g.props.Options {
		g.radios[i] = NewRadio(g.sched, g.radioProps(i), g.opts...)
	}
}

func (g *RadioGroup[V]) radioProps(i int) RadioProps {
	opt := g.props.Options[i]
	selected := opt.Value == g.value
	return RadioProps{
		Selected:      &selected,
		Disabled:      g.props.Disabled || !opt.Selectable(),
		AnimationType: g.props.AnimationType,
		Size:          g.props.Size,
		OnSelect:      func() { g.Select(opt.Value) },
	}
}

// Value returns the selected value.
func (g *RadioGroup[V]) Value() V { return g.value }

// Radio returns the radio for option i, or nil.
func (g *RadioGroup[V]) Radio(i int) *Radio {
	if i < 0 || i >= len(g.radios) {
		return nil
	}
	return g.radios[i]
}

// Len returns the number of radios.
func (g *RadioGroup[V]) Len() int { return len(g.radios) }

// Select requests v. Uncontrolled groups commit and then report; controlled
// groups only report.
func (g *RadioGroup[V]) Select(v V) {
	if g.disposed || g.props.Disabled || v == g.value {
		return
	}
	if opt, ok := selection.Find(g.props.Options, v); !ok || !opt.Selectable() {
		return
	}
	if g.props.Value != nil {
		if g.props.OnChange == nil {
			if !g.warnedNoHandler {
				g.warnedNoHandler = true
				errors.Warn("widgets.RadioGroup.Select", "radio-group",
					&errors.MissingHandlerError{Handler: "OnChange"})
			}
			return
		}
		g.props.OnChange(v)
		return
	}
	g.value = v
	g.sync()
	if g.props.OnChange != nil {
		g.props.OnChange(v)
	}
}

// Update applies new props. A changed option list rebuilds the radios.
func (g *RadioGroup[V]) Update(p RadioGroupProps[V]) {
	if g.disposed {
		return
	}
	rebuild := len(p.Options) != len(g.props.Options)
	if !rebuild {
		for i := range p.Options {
			if p.Options[i].Value != g.props.Options[i].Value {
				rebuild = true
				break
			}
		}
	}
	g.props = p
	if p.Value != nil {
		g.value = *p.Value
	}
	if rebuild {
		g.build()
	} else {
		g.sync()
	}
	g.checkValue()
}

func (g *RadioGroup[V]) sync() {
	for i, r := range g.radios {
		r.Update(g.radioProps(i))
	}
}

func (g *RadioGroup[V]) checkValue() {
	if g.props.Value == nil {
		return
	}
	if _, seen := g.warnedValues[g.value]; seen {
		return
	}
	if _, ok := selection.Find(g.props.Options, g.value); !ok {
		g.warnedValues[g.value] = struct{}{}
		errors.Warn("widgets.RadioGroup.Update", "radio-group", &errors.UnknownValueError{Value: g.value})
	}
}

// Dispose cancels every radio's animations.
func (g *RadioGroup[V]) Dispose() {
	if g.disposed {
		return
	}
	g.disposed = true
	for _, r := range g.radios {
		r.Dispose()
	}
}
