package errors

import (
	"bytes"
	goerrors "errors"
	"strings"
	"testing"
	"time"
)

// testHandler routes callbacks for assertions.
type testHandler struct {
	onError  func(*PopoverError)
	onLayout func(*LayoutWarning)
	onPanic  func(*PanicError)
}

func (h *testHandler) HandleError(err *PopoverError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandleLayoutWarning(w *LayoutWarning) {
	if h.onLayout != nil {
		h.onLayout(w)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func TestPopoverErrorString(t *testing.T) {
	err := &PopoverError{
		Op:   "style.LoadOptional",
		Kind: KindConfig,
		Err:  goerrors.New("bad yaml"),
	}
	got := err.Error()
	if !strings.Contains(got, "style.LoadOptional") || !strings.Contains(got, "config") {
		t.Errorf("error string %q should contain op and kind", got)
	}
}

func TestPopoverErrorUnwrap(t *testing.T) {
	inner := goerrors.New("inner")
	err := &PopoverError{Op: "test.op", Kind: KindPresent, Err: inner}
	if !goerrors.Is(err, inner) {
		t.Error("expected Unwrap to expose the inner error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindLayout, "layout"},
		{KindConfig, "config"},
		{KindPresent, "present"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestAxisString(t *testing.T) {
	if AxisHorizontal.String() != "horizontal" {
		t.Errorf("unexpected %q", AxisHorizontal.String())
	}
	if AxisVertical.String() != "vertical" {
		t.Errorf("unexpected %q", AxisVertical.String())
	}
}

func TestLayoutWarningString(t *testing.T) {
	w := &LayoutWarning{
		Op:        "placement.Place",
		Axis:      AxisHorizontal,
		Required:  440,
		Available: 400,
		Margin:    10,
	}
	got := w.Error()
	for _, want := range []string{"placement.Place", "horizontal", "440.0", "400.0", "10.0"} {
		if !strings.Contains(got, want) {
			t.Errorf("warning %q should contain %q", got, want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "overlay.notifyListeners"
	if got, want := err.Error(), "panic in overlay.notifyListeners: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *PopoverError
	handler := &testHandler{
		onError: func(err *PopoverError) { captured = err },
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&PopoverError{
		Op:   "test.op",
		Kind: KindPresent,
		Err:  goerrors.New("boom"),
	})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportLayout(t *testing.T) {
	var captured *LayoutWarning
	handler := &testHandler{
		onLayout: func(w *LayoutWarning) { captured = w },
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	ReportLayout(&LayoutWarning{Op: "placement.Place", Axis: AxisVertical, Required: 900, Available: 800})

	if captured == nil {
		t.Fatal("expected warning to be captured")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}

	// Nil is a safe no-op.
	ReportLayout(nil)
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) { captured = err },
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.StackTrace == "" {
		t.Error("expected stack trace to be captured")
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if DefaultHandler == nil {
		t.Error("SetHandler(nil) should set default LogHandler, not nil")
	}
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}

	h.HandleLayoutWarning(&LayoutWarning{
		Op:        "placement.Place",
		Axis:      AxisHorizontal,
		Required:  440,
		Available: 400,
		Margin:    10,
	})
	if !strings.Contains(buf.String(), "[popover layout]") {
		t.Errorf("expected layout prefix, got %q", buf.String())
	}

	buf.Reset()
	h.HandleError(&PopoverError{Op: "test.op", Kind: KindConfig, Err: goerrors.New("boom")})
	if !strings.Contains(buf.String(), "[popover error]") {
		t.Errorf("expected error prefix, got %q", buf.String())
	}

	// Nil values are safe no-ops.
	buf.Reset()
	h.HandleError(nil)
	h.HandleLayoutWarning(nil)
	h.HandlePanic(nil)
	if buf.Len() != 0 {
		t.Errorf("expected no output for nil values, got %q", buf.String())
	}
}
