package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var handler = struct {
	sync.RWMutex
	h ErrorHandler
}{h: NewLogHandler()}

// SetHandler installs h as the process error handler and returns the one it
// replaced. A nil h reinstalls a stderr LogHandler.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = NewLogHandler()
	}
	handler.Lock()
	prev := handler.h
	handler.h = h
	handler.Unlock()
	return prev
}

// Handler returns the installed error handler.
func Handler() ErrorHandler {
	handler.RLock()
	defer handler.RUnlock()
	return handler.h
}

// Report stamps err if needed and hands it to the installed handler.
func Report(err *WidgetError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// Warn reports a boundary violation detected by op.
func Warn(op, widget string, err error) {
	Report(&WidgetError{Op: op, Kind: KindBoundary, Widget: widget, Err: err})
}

// ReportPanic hands a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	Handler().HandlePanic(err)
}

// Recover reports a panic in progress. It must be deferred directly:
//
//	defer errors.Recover("scheduler.tick")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: captureStack(4),
		Timestamp:  time.Now(),
	})
}

// CaptureStack formats the caller's stack, one "function\n\tfile:line" entry
// per frame.
func CaptureStack() string {
	return captureStack(3)
}

func captureStack(skip int) string {
	pcs := make([]uintptr, 32)
	pcs = pcs[:runtime.Callers(skip, pcs)]
	if len(pcs) == 0 {
		return ""
	}
	var b strings.Builder
	frames := runtime.CallersFrames(pcs)
	for more := true; more; {
		var f runtime.Frame
		f, more = frames.Next()
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
	}
	return b.String()
}
