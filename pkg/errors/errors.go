// Package errors provides structured error reporting for widget controllers.
//
// Nothing in the widget core is fatal: configuration mismatches fall back to
// defaults, boundary violations are reported as developer warnings, and
// panics raised by host callbacks are recovered and reported so the UI loop
// keeps running.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an unrecognised configuration token that was
	// replaced by a default.
	KindConfig
	// KindBoundary indicates the host broke a widget contract, such as a
	// controlled value missing from the option list.
	KindBoundary
	// KindCallback indicates a host callback misbehaved.
	KindCallback
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindBoundary:
		return "boundary"
	case KindCallback:
		return "callback"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// WidgetError is a non-fatal problem detected by a widget controller. Op
// names the detecting operation, e.g. "selection.Controller.Update", and
// Widget the instance or type when known.
type WidgetError struct {
	Op        string
	Kind      ErrorKind
	Widget    string
	Err       error
	Timestamp time.Time
}

func (e *WidgetError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *WidgetError) Unwrap() error {
	return e.Err
}

// PanicError carries a panic recovered from a host callback or a scheduled
// closure, along with the goroutine stack at recovery.
type PanicError struct {
	Op         string
	Value      any
	StackTrace string
	Timestamp  time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// UnknownValueError reports a controlled value the widget cannot resolve.
type UnknownValueError struct {
	Value any
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("value %v is not in the option list", e.Value)
}

// MissingHandlerError reports a controlled widget without a change handler.
type MissingHandlerError struct {
	Handler string
}

func (e *MissingHandlerError) Error() string {
	return fmt.Sprintf("controlled widget has no %s handler; state cannot change", e.Handler)
}

// ErrorHandler receives everything passed to [Report] and [ReportPanic].
// Handlers run on the UI thread and must not block.
type ErrorHandler interface {
	HandleError(err *WidgetError)
	HandlePanic(err *PanicError)
}
