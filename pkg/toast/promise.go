package toast

import "context"

// PromiseMessages are the payloads of a promise toast's three phases.
type PromiseMessages[T any] struct {
	Loading Payload
	Success Payload
	Error   Payload
	// SuccessFunc, if set, builds the success payload from the result.
	SuccessFunc func(T) Payload
	// ErrorFunc, if set, builds the error payload from the failure.
	ErrorFunc func(error) Payload
}

// Promise shows a persistent loading toast, runs task on its own goroutine
// and, back on the UI thread, updates the toast with the success or error
// payload and a finite duration. The result's Message always replaces the
// loading message, even when empty. It returns the toast id.
//
// If the toast was dismissed before task finished the result is dropped.
func Promise[T any](ctx context.Context, m *Manager, task func(context.Context) (T, error), msgs PromiseMessages[T]) string {
	loading := msgs.Loading
	if loading.Type == "" {
		loading.Type = TypeLoading
	}
	loading.Duration = Persistent
	id := m.Show(loading)
	if id == "" {
		return ""
	}

	go func() {
		v, err := task(ctx)
		m.sched.Dispatch(func() {
			m.settle(id, resolvePromise(m, v, err, msgs))
		})
	}()
	return id
}

func resolvePromise[T any](m *Manager, v T, err error, msgs PromiseMessages[T]) Payload {
	var p Payload
	switch {
	case err != nil && msgs.ErrorFunc != nil:
		p = msgs.ErrorFunc(err)
	case err != nil:
		p = msgs.Error
		if p.Message == "" {
			p.Message = err.Error()
		}
	case msgs.SuccessFunc != nil:
		p = msgs.SuccessFunc(v)
	default:
		p = msgs.Success
	}
	if p.Type == "" {
		p.Type = TypeSuccess
		if err != nil {
			p.Type = TypeError
		}
	}
	if p.Duration <= 0 {
		p.Duration = m.cfg.DefaultDuration
	}
	return p
}

// settle merges a promise result into its toast. Update keeps fields the
// result leaves empty, which would leave the loading text on screen.
func (m *Manager) settle(id string, p Payload) {
	m.Update(id, p)
	if e := m.find(id); e != nil && !e.exiting && e.payload.Message != p.Message {
		e.payload.Message = p.Message
		m.notify()
	}
}
