package errors

import (
	"os"

	"github.com/rs/zerolog"
)

// LogHandler is an ErrorHandler that writes through a zerolog logger.
// Boundary violations log at warn and config problems at debug. Anything
// else, panics included, logs at error.
type LogHandler struct {
	Logger zerolog.Logger
	// Verbose includes stack traces for panics.
	Verbose bool
}

// NewLogHandler returns a LogHandler writing to stderr.
func NewLogHandler() *LogHandler {
	return &LogHandler{Logger: zerolog.New(os.Stderr).With().Timestamp().Logger()}
}

// HandleError logs a WidgetError.
func (h *LogHandler) HandleError(err *WidgetError) {
	if err == nil {
		return
	}
	var event *zerolog.Event
	switch err.Kind {
	case KindConfig:
		event = h.Logger.Debug()
	case KindBoundary:
		event = h.Logger.Warn()
	default:
		event = h.Logger.Error()
	}
	event = event.Str("op", err.Op).Str("kind", err.Kind.String())
	if err.Widget != "" {
		event = event.Str("widget", err.Widget)
	}
	event.Err(err.Err).Msg("widget error")
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	event := h.Logger.Error().Interface("panic", err.Value)
	if err.Op != "" {
		event = event.Str("op", err.Op)
	}
	if h.Verbose && err.StackTrace != "" {
		event = event.Str("stack", err.StackTrace)
	}
	event.Msg("recovered panic")
}
