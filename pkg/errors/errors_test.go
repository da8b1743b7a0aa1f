package errors

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	errs   []*WidgetError
	panics []*PanicError
}

func (h *recordingHandler) HandleError(err *WidgetError) { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(err *PanicError)  { h.panics = append(h.panics, err) }

func useRecorder(t *testing.T) *recordingHandler {
	t.Helper()
	rec := &recordingHandler{}
	prev := SetHandler(rec)
	t.Cleanup(func() { SetHandler(prev) })
	return rec
}

func TestWidgetErrorString(t *testing.T) {
	err := &WidgetError{
		Op:     "selection.Controller.Update",
		Kind:   KindBoundary,
		Widget: "country",
		Err:    &UnknownValueError{Value: "zz"},
	}
	assert.Equal(t, "selection.Controller.Update [boundary] widget=country: value zz is not in the option list", err.Error())

	var unknown *UnknownValueError
	assert.True(t, stderrors.As(err, &unknown))
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindBoundary, "boundary"},
		{KindCallback, "callback"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestPanicErrorString(t *testing.T) {
	assert.Equal(t, "panic: boom", (&PanicError{Value: "boom"}).Error())
	assert.Equal(t, "panic in animation.Timer: boom", (&PanicError{Op: "animation.Timer", Value: "boom"}).Error())
}

func TestReportSetsTimestamp(t *testing.T) {
	rec := useRecorder(t)

	Warn("disclosure.Machine.Toggle", "accordion", &MissingHandlerError{Handler: "OnStateChange"})

	require.Len(t, rec.errs, 1)
	assert.Equal(t, KindBoundary, rec.errs[0].Kind)
	assert.False(t, rec.errs[0].Timestamp.IsZero())
}

func TestRecoverReportsPanic(t *testing.T) {
	rec := useRecorder(t)

	func() {
		defer Recover("test.op")
		panic("callback failed")
	}()

	require.Len(t, rec.panics, 1)
	assert.Equal(t, "test.op", rec.panics[0].Op)
	assert.Equal(t, "callback failed", rec.panics[0].Value)
	assert.NotEmpty(t, rec.panics[0].StackTrace)
}

func TestLogHandlerLevels(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: zerolog.New(&buf)}

	h.HandleError(&WidgetError{Op: "op", Kind: KindBoundary, Err: stderrors.New("bad value")})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "boundary", entry["kind"])
	assert.Equal(t, "bad value", entry["error"])
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	prev := SetHandler(nil)
	t.Cleanup(func() { SetHandler(prev) })

	_, ok := Handler().(*LogHandler)
	assert.True(t, ok)
}
