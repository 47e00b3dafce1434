package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is a Handler that logs to a writer, stderr by default.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out is the destination writer. Nil means os.Stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs a PopoverError.
func (h *LogHandler) HandleError(err *PopoverError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(h.out(), "[popover error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
	} else {
		fmt.Fprintf(h.out(), "[popover error] %s: %v\n", err.Op, err.Err)
	}
}

// HandleLayoutWarning logs a LayoutWarning.
func (h *LogHandler) HandleLayoutWarning(w *LayoutWarning) {
	if w == nil {
		return
	}
	fmt.Fprintf(h.out(), "[popover layout] %s\n", w.Error())
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Op != "" {
		fmt.Fprintf(h.out(), "[popover panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(h.out(), "[popover panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(h.out(), "Stack trace:\n%s\n", err.StackTrace)
	}
}
