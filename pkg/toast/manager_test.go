package toast

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	motiontest "github.com/go-drift/motion/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, cfg Config) (*motiontest.Tester, *Manager) {
	t.Helper()
	tester := motiontest.NewTester()
	m := NewManager(tester.Scheduler(), cfg)
	t.Cleanup(m.Dispose)
	return tester, m
}

func ids(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestManager_ShowMergesDefaults(t *testing.T) {
	_, m := newTestManager(t, Config{})

	id := m.Show(Payload{Message: "hello", Action: Action{Label: "Undo"}})
	item, ok := m.Item(id)
	require.True(t, ok)

	assert.Equal(t, "toast-1", id)
	assert.Equal(t, TypeDefault, item.Payload.Type)
	assert.Equal(t, Top, item.Payload.Position)
	assert.Equal(t, 4*time.Second, item.Payload.Duration)
	assert.Equal(t, "slide", item.Payload.AnimationType)
	assert.Equal(t, "Undo", item.Payload.Action.Label)
	assert.True(t, item.Visible)
	assert.Equal(t, 1.0, item.Progress)
}

func TestManager_UnknownPositionFallsBack(t *testing.T) {
	_, m := newTestManager(t, Config{Position: Bottom})

	id := m.Show(Payload{Message: "x", Position: "middle"})
	item, _ := m.Item(id)
	assert.Equal(t, Bottom, item.Payload.Position)
}

func TestManager_CapacityEvictsOldest(t *testing.T) {
	tester, m := newTestManager(t, Config{MaxToasts: 3})
	closes := 0

	for _, id := range []string{"a", "b", "c", "d"} {
		m.Show(Payload{ID: id, Message: id, Position: Top, OnClose: func() { closes++ }})
		tester.PumpFrames(1)
	}

	assert.Equal(t, []string{"b", "c", "d"}, ids(m.ItemsAt(Top)))
	_, ok := m.Item("a")
	assert.False(t, ok)
	assert.Zero(t, closes, "eviction is silent")
}

func TestManager_EvictionBound(t *testing.T) {
	tester, m := newTestManager(t, Config{MaxToasts: 3, DefaultDuration: time.Hour})
	var shown []string

	for i := range 25 {
		shown = append(shown, m.Show(Payload{Message: fmt.Sprint(i), Position: Bottom}))
		if i%3 == 0 {
			tester.PumpFrames(1)
		}
		got := ids(m.ItemsAt(Bottom))
		require.LessOrEqual(t, len(got), 3)
		want := shown[max(0, len(shown)-3):]
		require.Equal(t, want, got)
	}
}

func TestManager_AnchorsHaveSeparateCapacity(t *testing.T) {
	_, m := newTestManager(t, Config{MaxToasts: 2})

	for range 3 {
		m.Show(Payload{Position: Top})
		m.Show(Payload{Position: BottomLeft})
	}
	assert.Equal(t, 2, m.Len(Top))
	assert.Equal(t, 2, m.Len(BottomLeft))
	assert.Len(t, m.Items(), 4)
}

func TestManager_HideCancelsTimerAndClosesOnce(t *testing.T) {
	tester, m := newTestManager(t, Config{})
	closes := 0
	id := m.Show(Payload{Duration: time.Second, OnClose: func() { closes++ }})

	tester.Advance(500 * time.Millisecond)
	m.Hide(id)
	m.Hide(id)

	item, ok := m.Item(id)
	require.True(t, ok, "kept until the exit transition settles")
	assert.False(t, item.Visible)
	assert.Zero(t, closes)

	require.NoError(t, tester.PumpAndSettle(time.Second))
	tester.Advance(2 * time.Second)

	assert.Equal(t, 1, closes)
	_, ok = m.Item(id)
	assert.False(t, ok)
	assert.Zero(t, tester.Scheduler().PendingTimers())
}

func TestManager_OnCloseRunsBeforeRemoval(t *testing.T) {
	tester, m := newTestManager(t, Config{})
	var presentDuringClose bool
	var id string
	id = m.Show(Payload{Duration: time.Second, OnClose: func() {
		_, presentDuringClose = m.Item(id)
	}})

	tester.Advance(time.Second)
	item, _ := m.Item(id)
	assert.False(t, item.Visible, "expired")

	tester.Advance(400 * time.Millisecond)
	assert.True(t, presentDuringClose)
	_, ok := m.Item(id)
	assert.False(t, ok)
}

func TestManager_UpdateDoesNotResetTimer(t *testing.T) {
	tester, m := newTestManager(t, Config{})
	id := m.Show(Payload{Message: "saving", Duration: time.Second})

	tester.Advance(600 * time.Millisecond)
	m.Update(id, Payload{Message: "still saving", Type: TypeInfo})

	item, _ := m.Item(id)
	assert.Equal(t, "still saving", item.Payload.Message)
	assert.Equal(t, TypeInfo, item.Payload.Type)
	assert.Equal(t, time.Second, item.Payload.Duration)

	tester.Advance(500 * time.Millisecond)
	item, _ = m.Item(id)
	assert.False(t, item.Visible)
}

func TestManager_UpdateDurationTransitions(t *testing.T) {
	tester, m := newTestManager(t, Config{})
	id := m.Show(Payload{Duration: time.Second})

	m.Update(id, Payload{Duration: Persistent})
	tester.Advance(3 * time.Second)
	item, _ := m.Item(id)
	assert.True(t, item.Visible)
	assert.Equal(t, 1.0, item.Progress)

	m.Update(id, Payload{Duration: time.Second})
	tester.Advance(500 * time.Millisecond)
	item, _ = m.Item(id)
	assert.InDelta(t, 0.5, item.Progress, 0.02)

	tester.Advance(600 * time.Millisecond)
	item, _ = m.Item(id)
	assert.False(t, item.Visible)
}

func TestManager_UpdateUnknownIDIsNoop(t *testing.T) {
	_, m := newTestManager(t, Config{})
	calls := 0
	m.AddListener(func() { calls++ })

	m.Update("missing", Payload{Message: "x"})
	assert.Zero(t, calls)
	assert.Empty(t, m.Items())
}

func TestManager_ShowExistingIDReplacesAndRestarts(t *testing.T) {
	tester, m := newTestManager(t, Config{})
	m.Show(Payload{ID: "sync", Message: "one", Duration: time.Second})

	tester.Advance(800 * time.Millisecond)
	m.Show(Payload{ID: "sync", Message: "two", Duration: time.Second, Position: Bottom})

	assert.Len(t, m.Items(), 1)
	item, _ := m.Item("sync")
	assert.Equal(t, "two", item.Payload.Message)
	assert.Equal(t, Top, item.Payload.Position, "anchor is fixed once shown")

	assert.Equal(t, 1.0, item.Presence, "replacement does not replay the entrance")

	tester.Advance(800 * time.Millisecond)
	item, _ = m.Item("sync")
	assert.True(t, item.Visible)
}

func TestManager_ShowDuringExitClosesLeavingToast(t *testing.T) {
	tester, m := newTestManager(t, Config{})
	closes := 0
	m.Show(Payload{ID: "sync", Message: "one", OnClose: func() { closes++ }})

	tester.Advance(50 * time.Millisecond)
	m.Hide("sync")
	tester.Advance(16 * time.Millisecond)
	m.Show(Payload{ID: "sync", Message: "two"})
	assert.Equal(t, 1, closes)

	tester.Advance(2 * time.Second)
	assert.Equal(t, 1, closes)
	require.Len(t, m.Items(), 1)
	item, _ := m.Item("sync")
	assert.Equal(t, "two", item.Payload.Message)
	assert.True(t, item.Visible)
}

func TestManager_HideAll(t *testing.T) {
	tester, m := newTestManager(t, Config{})
	closes := 0
	for _, pos := range []Position{Top, Bottom, TopRight} {
		m.Show(Payload{Position: pos, OnClose: func() { closes++ }})
	}

	m.HideAll()
	require.NoError(t, tester.PumpAndSettle(time.Second))

	assert.Equal(t, 3, closes)
	assert.Empty(t, m.Items())
}

func TestManager_SwipePastThresholdDismisses(t *testing.T) {
	tester, m := newTestManager(t, Config{})
	closes := 0
	id := m.Show(Payload{Position: Top, OnClose: func() { closes++ }})
	tester.PumpFrames(2)

	m.DragStart(id)
	m.DragUpdate(id, 60, 300)
	m.DragUpdate(id, 40, 0)
	item, _ := m.Item(id)
	assert.Equal(t, 100.0, item.Drag, "only the horizontal axis counts")

	m.DragEnd(id)
	item, _ = m.Item(id)
	assert.False(t, item.Visible)

	require.NoError(t, tester.PumpAndSettle(time.Second))
	assert.Equal(t, 1, closes)
	assert.Empty(t, m.Items())
}

func TestManager_SwipeBelowThresholdRestartsFullTimer(t *testing.T) {
	tester, m := newTestManager(t, Config{})
	id := m.Show(Payload{Position: Top, Duration: time.Second})

	tester.Advance(800 * time.Millisecond)
	m.DragStart(id)
	assert.True(t, m.Dragging(id))
	m.DragUpdate(id, 30, 0)
	tester.Advance(time.Second)
	item, _ := m.Item(id)
	assert.True(t, item.Visible, "dragging pauses the countdown")

	m.DragEnd(id)
	tester.Advance(900 * time.Millisecond)
	item, _ = m.Item(id)
	assert.True(t, item.Visible)
	assert.InDelta(t, 0, item.Drag, 0.5, "sprang back")

	tester.Advance(200 * time.Millisecond)
	item, _ = m.Item(id)
	assert.False(t, item.Visible)
}

func TestManager_CornerSwipesVertically(t *testing.T) {
	tester, m := newTestManager(t, Config{})
	id := m.Show(Payload{Position: BottomRight})

	m.DragStart(id)
	m.DragUpdate(id, 500, 0)
	m.DragEnd(id)
	item, _ := m.Item(id)
	assert.True(t, item.Visible)

	m.DragStart(id)
	m.DragUpdate(id, 0, -90)
	m.DragEnd(id)
	require.NoError(t, tester.PumpAndSettle(time.Second))
	_, ok := m.Item(id)
	assert.False(t, ok)
}

func TestManager_StackingOffsets(t *testing.T) {
	tester, m := newTestManager(t, Config{Spacing: 50})
	a := m.Show(Payload{Position: Top})
	b := m.Show(Payload{Position: Top})
	c := m.Show(Payload{Position: Top})
	d := m.Show(Payload{Position: Bottom})
	e := m.Show(Payload{Position: Bottom})

	assert.Equal(t, 0.0, m.Offset(a))
	assert.Equal(t, 50.0, m.Offset(b))
	assert.Equal(t, 100.0, m.Offset(c))
	assert.Equal(t, 0.0, m.Offset(d))
	assert.Equal(t, -50.0, m.Offset(e))

	item, _ := m.Item(c)
	assert.Equal(t, 100.0, item.Offset, "new toasts start on their slot")

	m.Hide(a)
	assert.Equal(t, 0.0, m.Offset(b))
	assert.Equal(t, 50.0, m.Offset(c))

	tester.Advance(500 * time.Millisecond)
	item, _ = m.Item(c)
	assert.Equal(t, 50.0, item.Offset)
}

func TestManager_Press(t *testing.T) {
	_, m := newTestManager(t, Config{})
	pressed, acted := 0, 0
	id := m.Show(Payload{
		OnPress: func() { pressed++ },
		Action:  Action{Label: "Retry", OnPress: func() { acted++ }},
	})

	m.Press(id)
	m.PressAction(id)
	m.Press("missing")

	assert.Equal(t, 1, pressed)
	assert.Equal(t, 1, acted)
}

func TestManager_Helpers(t *testing.T) {
	tester, m := newTestManager(t, Config{})

	ok := m.Success("Saved", Payload{Title: "Done"})
	load := m.Loading("Uploading")

	item, _ := m.Item(ok)
	assert.Equal(t, TypeSuccess, item.Payload.Type)
	assert.Equal(t, "Done", item.Payload.Title)

	item, _ = m.Item(load)
	assert.Equal(t, TypeLoading, item.Payload.Type)
	assert.Equal(t, Persistent, item.Payload.Duration)

	tester.Advance(5 * time.Second)
	require.NoError(t, tester.PumpAndSettle(time.Second))
	_, stillThere := m.Item(load)
	assert.True(t, stillThere)
	_, gone := m.Item(ok)
	assert.False(t, gone)

	for _, typ := range []Type{TypeError, TypeInfo, TypeWarning} {
		var id string
		switch typ {
		case TypeError:
			id = m.Error("e")
		case TypeInfo:
			id = m.Info("i")
		case TypeWarning:
			id = m.Warning("w")
		}
		item, _ := m.Item(id)
		assert.Equal(t, typ, item.Payload.Type)
	}
}

func TestManager_DisposeCancelsEverything(t *testing.T) {
	tester, m := newTestManager(t, Config{})
	closes := 0
	id := m.Show(Payload{Duration: time.Second, OnClose: func() { closes++ }})
	m.Show(Payload{Duration: time.Second, OnClose: func() { closes++ }})
	m.Hide(id)

	m.Dispose()
	tester.Advance(3 * time.Second)

	assert.Zero(t, closes)
	assert.True(t, tester.Scheduler().Idle())
	assert.Empty(t, m.Show(Payload{}))
}

func TestManager_Listeners(t *testing.T) {
	tester, m := newTestManager(t, Config{})
	calls := 0
	unsubscribe := m.AddListener(func() { calls++ })

	id := m.Show(Payload{})
	m.Update(id, Payload{Message: "x"})
	m.Hide(id)
	require.NoError(t, tester.PumpAndSettle(time.Second))
	assert.Equal(t, 4, calls)

	unsubscribe()
	m.Show(Payload{})
	assert.Equal(t, 4, calls)
}

func TestPromise_RejectionShowsError(t *testing.T) {
	tester, m := newTestManager(t, Config{})

	id := Promise(context.Background(), m, func(context.Context) (string, error) {
		return "", stderrors.New("net-error")
	}, PromiseMessages[string]{
		Loading: Payload{Message: "Loading"},
		Success: Payload{Message: "Loaded"},
	})

	item, _ := m.Item(id)
	assert.Equal(t, TypeLoading, item.Payload.Type)
	assert.Equal(t, Persistent, item.Payload.Duration)

	require.Eventually(t, func() bool {
		tester.Pump()
		item, _ = m.Item(id)
		return item.Payload.Type == TypeError
	}, time.Second, time.Millisecond)

	assert.Equal(t, "net-error", item.Payload.Message)
	assert.Positive(t, item.Payload.Duration)
	for _, it := range m.Items() {
		assert.NotEqual(t, TypeLoading, it.Payload.Type)
	}

	tester.Advance(5 * time.Second)
	require.NoError(t, tester.PumpAndSettle(time.Second))
	assert.Empty(t, m.Items())
}

func TestPromise_SuccessAndErrorFuncs(t *testing.T) {
	tester, m := newTestManager(t, Config{})
	msgs := PromiseMessages[int]{
		SuccessFunc: func(n int) Payload { return Payload{Message: fmt.Sprintf("%d files", n)} },
		ErrorFunc:   func(err error) Payload { return Payload{Message: "failed: " + err.Error(), Type: TypeWarning} },
	}

	okID := Promise(context.Background(), m, func(context.Context) (int, error) { return 3, nil }, msgs)
	errID := Promise(context.Background(), m, func(context.Context) (int, error) { return 0, stderrors.New("disk") }, msgs)

	require.Eventually(t, func() bool {
		tester.Pump()
		a, _ := m.Item(okID)
		b, _ := m.Item(errID)
		return a.Payload.Type != TypeLoading && b.Payload.Type != TypeLoading
	}, time.Second, time.Millisecond)

	a, _ := m.Item(okID)
	b, _ := m.Item(errID)
	assert.Equal(t, TypeSuccess, a.Payload.Type)
	assert.Equal(t, "3 files", a.Payload.Message)
	assert.Equal(t, TypeWarning, b.Payload.Type)
	assert.Equal(t, "failed: disk", b.Payload.Message)
}

func TestPromise_ResultReplacesLoadingMessage(t *testing.T) {
	tester, m := newTestManager(t, Config{})

	id := Promise(context.Background(), m, func(context.Context) (int, error) { return 1, nil }, PromiseMessages[int]{
		Loading: Payload{Title: "Saving", Message: "Saving..."},
		Success: Payload{Title: "Saved"},
	})

	var item Item
	require.Eventually(t, func() bool {
		tester.Pump()
		item, _ = m.Item(id)
		return item.Payload.Type == TypeSuccess
	}, time.Second, time.Millisecond)

	assert.Equal(t, "Saved", item.Payload.Title)
	assert.Empty(t, item.Payload.Message)
}

func TestPromise_DismissedBeforeResolution(t *testing.T) {
	tester, m := newTestManager(t, Config{})
	release := make(chan struct{})
	done := make(chan struct{})

	id := Promise(context.Background(), m, func(context.Context) (bool, error) {
		<-release
		defer close(done)
		return true, nil
	}, PromiseMessages[bool]{})
	m.Hide(id)
	require.NoError(t, tester.PumpAndSettle(time.Second))

	close(release)
	<-done
	require.Eventually(t, func() bool {
		tester.Pump()
		return tester.Scheduler().Idle()
	}, time.Second, time.Millisecond)
	assert.Empty(t, m.Items())
}

func TestPositionAxes(t *testing.T) {
	assert.True(t, TopLeft.IsTop())
	assert.False(t, BottomRight.IsTop())
	assert.True(t, BottomLeft.IsCorner())
	assert.False(t, Top.IsCorner())
	assert.False(t, Position("middle").Valid())
	assert.Equal(t, "error", TypeError.Variant())
}
