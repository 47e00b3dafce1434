// Package errors provides structured error handling and advisory layout
// diagnostics for the popover library.
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
	// KindLayout indicates a placement or overflow condition.
	KindLayout
	// KindConfig indicates a configuration loading or parsing error.
	KindConfig
	// KindPresent indicates a presentation lifecycle error.
	KindPresent
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindLayout:
		return "layout"
	case KindConfig:
		return "config"
	case KindPresent:
		return "present"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// PopoverError represents a structured error in the popover library.
type PopoverError struct {
	// Op is the operation that failed (e.g., "style.LoadOptional").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *PopoverError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *PopoverError) Unwrap() error {
	return e.Err
}

// Axis identifies which layout axis a warning refers to.
type Axis int

const (
	// AxisHorizontal is the x axis (width).
	AxisHorizontal Axis = iota
	// AxisVertical is the y axis (height).
	AxisVertical
)

func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// LayoutWarning reports that an overlay does not fit the available bounds
// on one axis. It is advisory: placement still returns a usable point and
// the presentation layer keeps rendering.
type LayoutWarning struct {
	// Op is the operation that detected the condition (e.g., "placement.Place").
	Op string
	// Axis is the overflowing axis.
	Axis Axis
	// Required is the space the overlay needs on that axis, including any
	// horizontal margin.
	Required float64
	// Available is the space the bounds offer on that axis.
	Available float64
	// Margin is the configured horizontal margin (zero for vertical warnings,
	// where no margin applies).
	Margin float64
	// Timestamp is when the condition was detected.
	Timestamp time.Time
}

func (w *LayoutWarning) Error() string {
	return fmt.Sprintf("%s: %s overflow, need %.1f of %.1f (margin %.1f)",
		w.Op, w.Axis, w.Required, w.Available, w.Margin)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "overlay.notifyListeners").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}
