package animation

import (
	"sort"
	"sync"
	"time"

	"github.com/go-drift/motion/pkg/errors"
)

// Scheduler is the cooperative UI-thread loop that drives tickers, timers and
// dispatched callbacks.
//
// Every method except [Scheduler.Dispatch] must be called from the UI thread.
// Dispatch is the single entry point for other goroutines; the closure it
// receives runs on the UI thread during the next Step.
//
// Step order within one frame:
//
//	dispatched closures ─► due timers (deadline order) ─► active tickers
type Scheduler struct {
	clock   Clock
	tickers map[*Ticker]uint64
	timers  map[*Timer]struct{}
	seq     uint64

	mu    sync.Mutex
	queue []func()
}

// NewScheduler returns a scheduler reading time from clock.
// A nil clock uses [SystemClock].
func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{
		clock:   clock,
		tickers: make(map[*Ticker]uint64),
		timers:  make(map[*Timer]struct{}),
	}
}

// Now returns the current time from the scheduler's clock.
func (s *Scheduler) Now() time.Time { return s.clock.Now() }

// Timer is a one-shot callback scheduled on the UI thread.
type Timer struct {
	sched    *Scheduler
	deadline time.Time
	seq      uint64
	fn       func()
	pending  bool
}

// AfterFunc schedules fn to run on the first Step at or after now+d.
// A non-positive d fires on the next Step.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) *Timer {
	s.seq++
	t := &Timer{
		sched:    s,
		deadline: s.Now().Add(d),
		seq:      s.seq,
		fn:       fn,
		pending:  true,
	}
	s.timers[t] = struct{}{}
	return t
}

// Stop cancels the timer. It returns true if the call prevented the timer
// from firing, false if it already fired or was stopped.
func (t *Timer) Stop() bool {
	if t == nil || !t.pending {
		return false
	}
	t.pending = false
	delete(t.sched.timers, t)
	return true
}

// Pending reports whether the timer has neither fired nor been stopped.
func (t *Timer) Pending() bool {
	return t != nil && t.pending
}

// Deadline returns when the timer is due.
func (t *Timer) Deadline() time.Time {
	return t.deadline
}

// Dispatch schedules fn to run on the UI thread during the next Step.
// It is safe to call from any goroutine.
func (s *Scheduler) Dispatch(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.queue = append(s.queue, fn)
	s.mu.Unlock()
}

// Step advances one frame. It should be called once per display refresh by
// the host.
func (s *Scheduler) Step() {
	s.mu.Lock()
	queue := s.queue
	s.queue = nil
	s.mu.Unlock()
	for _, fn := range queue {
		s.run("animation.Scheduler.Dispatch", fn)
	}

	now := s.Now()
	due := make([]*Timer, 0, len(s.timers))
	for t := range s.timers {
		if !t.deadline.After(now) {
			due = append(due, t)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline.Equal(due[j].deadline) {
			return due[i].seq < due[j].seq
		}
		return due[i].deadline.Before(due[j].deadline)
	})
	for _, t := range due {
		// An earlier timer in this frame may have stopped this one.
		if !t.pending {
			continue
		}
		t.pending = false
		delete(s.timers, t)
		s.run("animation.Timer", t.fn)
	}

	if len(s.tickers) == 0 {
		return
	}
	// Copy so callbacks may start or stop tickers.
	tickers := make([]*Ticker, 0, len(s.tickers))
	for t := range s.tickers {
		tickers = append(tickers, t)
	}
	sort.Slice(tickers, func(i, j int) bool {
		return s.tickers[tickers[i]] < s.tickers[tickers[j]]
	})
	for _, t := range tickers {
		if t.isActive && t.callback != nil {
			elapsed := s.Now().Sub(t.start)
			s.run("animation.Ticker", func() { t.callback(elapsed) })
		}
	}
}

func (s *Scheduler) run(op string, fn func()) {
	defer errors.Recover(op)
	fn()
}

// HasActiveTickers returns true if any tickers are active.
func (s *Scheduler) HasActiveTickers() bool {
	return len(s.tickers) > 0
}

// PendingTimers returns the number of timers that have not fired.
func (s *Scheduler) PendingTimers() int {
	return len(s.timers)
}

// Idle reports whether the scheduler has no active tickers, pending timers or
// queued dispatches.
func (s *Scheduler) Idle() bool {
	s.mu.Lock()
	queued := len(s.queue)
	s.mu.Unlock()
	return queued == 0 && len(s.tickers) == 0 && len(s.timers) == 0
}
