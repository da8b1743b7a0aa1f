package selection

import (
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/disclosure"
	"github.com/go-drift/motion/pkg/errors"
	motiontest "github.com/go-drift/motion/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedLayout struct {
	trigger, viewport Rect
}

func (l fixedLayout) TriggerRect() Rect { return l.trigger }
func (l fixedLayout) Viewport() Rect    { return l.viewport }

type recorder struct {
	errs []*errors.WidgetError
}

func (r *recorder) HandleError(err *errors.WidgetError) { r.errs = append(r.errs, err) }
func (r *recorder) HandlePanic(*errors.PanicError)      {}

func useRecorder(t *testing.T) *recorder {
	t.Helper()
	rec := &recorder{}
	prev := errors.SetHandler(rec)
	t.Cleanup(func() { errors.SetHandler(prev) })
	return rec
}

func TestController_OpensAboveWhenBelowIsShort(t *testing.T) {
	tester := motiontest.NewTester()
	c := New(tester.Scheduler(), Props[string]{
		Options: fruits,
		Layout: fixedLayout{
			trigger:  Rect{Y: 700, Width: 40},
			viewport: Rect{Width: 400, Height: 800},
		},
	})
	defer c.Dispose()

	c.Measure(disclosure.Size{Height: 300})
	c.Open()

	p := c.Placement()
	assert.Equal(t, Above, p.Direction)
	assert.Equal(t, 300.0, p.Height)
	assert.Equal(t, 400.0, p.Top)
	assert.Equal(t, 66.0, p.Width, "widened to the longest label plus padding")

	require.NoError(t, tester.PumpAndSettle(time.Second))
	assert.Equal(t, 300.0, c.Sample(ChannelHeight))
	assert.Equal(t, 0.0, c.Sample(ChannelOffset))
}

func TestController_MeasureWhileOpenReplaces(t *testing.T) {
	tester := motiontest.NewTester()
	c := New(tester.Scheduler(), Props[string]{
		Options: fruits,
		Layout: fixedLayout{
			trigger:  Rect{Y: 100, Width: 120, Height: 40},
			viewport: Rect{Width: 400, Height: 800},
		},
	})
	defer c.Dispose()

	c.Open()
	assert.Equal(t, 0.0, c.Machine().Channel(ChannelHeight).Target())

	c.Measure(disclosure.Size{Height: 900})
	assert.Equal(t, Below, c.Placement().Direction)
	assert.Equal(t, 660.0, c.Machine().Channel(ChannelHeight).Target())
}

func TestController_SingleSelectCommitsAndCloses(t *testing.T) {
	tester := motiontest.NewTester()
	var changes []string
	closes := 0
	c := New(tester.Scheduler(), Props[string]{
		Options:     fruits,
		Placeholder: "Pick one",
		OnChange:    func(v string) { changes = append(changes, v) },
		OnClose:     func() { closes++ },
	})
	defer c.Dispose()

	assert.Equal(t, "Pick one", c.DisplayLabel())
	c.Open()
	c.Select(fruits[1])

	assert.Equal(t, []string{"banana"}, changes)
	assert.False(t, c.IsOpen())
	assert.Equal(t, 1, closes)
	v, ok := c.Value()
	assert.True(t, ok)
	assert.Equal(t, "banana", v)
	assert.Equal(t, "Banana", c.DisplayLabel())

	c.Open()
	c.Select(fruits[1])
	assert.Len(t, changes, 1, "reselecting the same value is not a change")
	assert.False(t, c.IsOpen())
}

func TestController_DisabledOptionIsIgnored(t *testing.T) {
	tester := motiontest.NewTester()
	calls := 0
	c := New(tester.Scheduler(), Props[string]{
		Options:  fruits,
		OnChange: func(string) { calls++ },
	})
	defer c.Dispose()

	c.Open()
	c.Select(fruits[3])
	c.Select(fruits[2])

	assert.Zero(t, calls)
	assert.True(t, c.IsOpen())
	assert.Empty(t, c.Values())
}

func TestController_MultiSelectToggleIsItsOwnInverse(t *testing.T) {
	tester := motiontest.NewTester()
	var sets [][]string
	c := New(tester.Scheduler(), Props[string]{
		Options:       fruits,
		Multiple:      true,
		Default:       []string{"date"},
		OnChangeMulti: func(v []string) { sets = append(sets, v) },
	})
	defer c.Dispose()

	c.Open()
	before := c.Values()
	c.Select(fruits[0])
	assert.True(t, c.IsSelected("apple"))
	assert.True(t, c.IsOpen())
	c.Select(fruits[0])

	assert.ElementsMatch(t, before, c.Values())
	assert.Equal(t, [][]string{{"date", "apple"}, {"date"}}, sets)
	assert.True(t, c.IsOpen())
}

func TestController_MultiDisplayLabel(t *testing.T) {
	tester := motiontest.NewTester()
	c := New(tester.Scheduler(), Props[string]{
		Options:  fruits,
		Multiple: true,
		Default:  []string{"apple", "banana"},
	})
	defer c.Dispose()
	assert.Equal(t, "Apple, Banana", c.DisplayLabel())

	many := append(fruits, Option[string]{Label: "Elder", Value: "elder"}, Option[string]{Label: "Fig", Value: "fig"})
	c.Update(Props[string]{Options: many, Multiple: true})
	c.Select(many[4])
	c.Select(many[5])
	assert.Equal(t, "4 selected", c.DisplayLabel())
}

func TestController_ControlledEmitsIntentOnly(t *testing.T) {
	rec := useRecorder(t)
	tester := motiontest.NewTester()
	var intents []string
	c := New(tester.Scheduler(), Props[string]{
		Options:     fruits,
		Controlled:  true,
		Values:      []string{"kiwi"},
		Placeholder: "Pick one",
		OnChange:    func(v string) { intents = append(intents, v) },
	})
	defer c.Dispose()

	require.Len(t, rec.errs, 1)
	assert.Equal(t, errors.KindBoundary, rec.errs[0].Kind)
	assert.Equal(t, "Pick one", c.DisplayLabel(), "unresolved values show the placeholder")

	c.Open()
	c.Select(fruits[0])
	assert.Equal(t, []string{"apple"}, intents)
	v, _ := c.Value()
	assert.Equal(t, "kiwi", v)

	c.Update(Props[string]{Options: fruits, Controlled: true, Values: []string{"kiwi"}})
	assert.Len(t, rec.errs, 1, "each unknown value is reported once")
}

func TestController_ClearKeepsDisclosure(t *testing.T) {
	tester := motiontest.NewTester()
	cleared := 0
	c := New(tester.Scheduler(), Props[string]{
		Options: fruits,
		Default: []string{"apple"},
		OnClear: func() { cleared++ },
	})
	defer c.Dispose()

	c.Open()
	c.Clear()
	assert.True(t, c.IsOpen())
	assert.Empty(t, c.Values())
	assert.Equal(t, 1, cleared)

	c.Clear()
	assert.Equal(t, 1, cleared)
}

func TestController_SearchFiltersAndResetsOnClose(t *testing.T) {
	tester := motiontest.NewTester()
	var queries []string
	c := New(tester.Scheduler(), Props[string]{
		Options:    fruits,
		Searchable: true,
		OnSearch:   func(q string) { queries = append(queries, q) },
	})
	defer c.Dispose()

	c.Open()
	c.SetQuery("nan")
	assert.Equal(t, []string{"banana"}, values(c.Visible()))
	assert.Equal(t, []string{"nan"}, queries)

	c.Close()
	assert.Empty(t, c.Query())
	assert.Len(t, c.Visible(), len(fruits))
}

func TestController_HighlightSkipsUnselectable(t *testing.T) {
	tester := motiontest.NewTester()
	var picked []string
	c := New(tester.Scheduler(), Props[string]{
		Options:  fruits,
		OnChange: func(v string) { picked = append(picked, v) },
	})
	defer c.Dispose()

	c.Open()
	o, ok := c.Highlighted()
	require.True(t, ok)
	assert.Equal(t, "apple", o.Value)

	c.MoveHighlight(2)
	o, _ = c.Highlighted()
	assert.Equal(t, "date", o.Value)

	c.MoveHighlight(1)
	o, _ = c.Highlighted()
	assert.Equal(t, "apple", o.Value, "wraps past the end")

	c.MoveHighlight(-1)
	o, _ = c.Highlighted()
	assert.Equal(t, "date", o.Value)

	c.Highlight(3)
	o, _ = c.Highlighted()
	assert.Equal(t, "date", o.Value, "disabled index ignored")

	c.SelectHighlighted()
	assert.Equal(t, []string{"date"}, picked)
	assert.False(t, c.IsOpen())
}

func TestController_Handle(t *testing.T) {
	tester := motiontest.NewTester()
	ctrl := disclosure.NewController()
	c := New(tester.Scheduler(), Props[string]{
		Options:    fruits,
		Searchable: true,
		Default:    []string{"apple"},
		OnClear:    func() {},
		Controller: ctrl,
	})

	ctrl.Open()
	assert.True(t, c.IsOpen())
	ctrl.Focus()
	assert.True(t, c.Focused())
	ctrl.Blur()
	assert.False(t, c.Focused())
	ctrl.Clear()
	assert.Empty(t, c.Values())
	ctrl.Toggle()
	assert.False(t, c.IsOpen())

	c.Dispose()
	assert.False(t, ctrl.Attached())
	ctrl.Open()
	assert.False(t, c.IsOpen())
}

func TestController_DisabledBlocksEverything(t *testing.T) {
	tester := motiontest.NewTester()
	c := New(tester.Scheduler(), Props[string]{
		Options:  fruits,
		Disabled: true,
		Default:  []string{"apple"},
	})
	defer c.Dispose()

	c.Open()
	assert.False(t, c.IsOpen())
	c.Select(fruits[1])
	c.Clear()
	assert.Equal(t, []string{"apple"}, c.Values())
}
