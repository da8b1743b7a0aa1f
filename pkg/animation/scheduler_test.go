package animation_test

import (
	"sync"
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/errors"
	motiontest "github.com/go-drift/motion/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type panicRecorder struct {
	panics []*errors.PanicError
}

func (r *panicRecorder) HandleError(*errors.WidgetError)  {}
func (r *panicRecorder) HandlePanic(p *errors.PanicError) { r.panics = append(r.panics, p) }

func TestScheduler_TimersFireInDeadlineOrder(t *testing.T) {
	tester := motiontest.NewTester()
	sched := tester.Scheduler()
	var order []string

	sched.AfterFunc(30*time.Millisecond, func() { order = append(order, "b") })
	sched.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	sched.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })

	tester.Clock().Advance(50 * time.Millisecond)
	tester.Pump()

	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 0, sched.PendingTimers())
}

func TestScheduler_StoppedTimerNeverFires(t *testing.T) {
	tester := motiontest.NewTester()
	sched := tester.Scheduler()
	fired := false

	timer := sched.AfterFunc(10*time.Millisecond, func() { fired = true })
	assert.True(t, timer.Pending())
	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	tester.Advance(time.Second)
	assert.False(t, fired)
	assert.True(t, sched.Idle())
}

func TestScheduler_TimerStoppedByEarlierTimerInSameFrame(t *testing.T) {
	tester := motiontest.NewTester()
	sched := tester.Scheduler()
	fired := false

	var second *animation.Timer
	sched.AfterFunc(5*time.Millisecond, func() { second.Stop() })
	second = sched.AfterFunc(6*time.Millisecond, func() { fired = true })

	tester.Clock().Advance(10 * time.Millisecond)
	tester.Pump()
	assert.False(t, fired)
}

func TestScheduler_DispatchFromGoroutine(t *testing.T) {
	tester := motiontest.NewTester()
	sched := tester.Scheduler()
	ran := 0

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sched.Dispatch(func() { ran++ })
		}()
	}
	wg.Wait()
	assert.False(t, sched.Idle())

	tester.Pump()
	assert.Equal(t, 4, ran)
	assert.True(t, sched.Idle())
}

func TestScheduler_RecoversCallbackPanics(t *testing.T) {
	rec := &panicRecorder{}
	prev := errors.SetHandler(rec)
	t.Cleanup(func() { errors.SetHandler(prev) })

	tester := motiontest.NewTester()
	sched := tester.Scheduler()
	after := false
	sched.AfterFunc(0, func() { panic("host callback") })
	sched.AfterFunc(0, func() { after = true })

	tester.Pump()

	require.Len(t, rec.panics, 1)
	assert.Equal(t, "animation.Timer", rec.panics[0].Op)
	assert.True(t, after, "later callbacks in the frame still run")
}

func TestTicker_Elapsed(t *testing.T) {
	tester := motiontest.NewTester()
	var seen []time.Duration
	ticker := tester.Scheduler().NewTicker(func(elapsed time.Duration) { seen = append(seen, elapsed) })

	ticker.Start()
	tester.PumpFrames(2)
	assert.Equal(t, []time.Duration{16 * time.Millisecond, 32 * time.Millisecond}, seen)
	assert.Equal(t, 32*time.Millisecond, ticker.Elapsed())

	ticker.Stop()
	assert.False(t, ticker.IsActive())
	assert.Zero(t, ticker.Elapsed())
}
