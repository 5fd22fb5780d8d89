package types

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTiming          = errors.New("invalid timing: start must be before end")
	ErrInvalidFontSize        = errors.New("invalid font size: must be positive")
	ErrUnresolvableFont       = errors.New("unresolvable font")
	ErrUnresolvableDimensions = errors.New("unresolvable video dimensions")
	ErrUnknownEffect          = errors.New("unknown animation effect")
	ErrRenderingEngine        = errors.New("rendering engine failure")
	ErrEmptyText              = errors.New("overlay text is empty")
	ErrInvalidLine            = errors.New("text element line must not be negative")
	ErrNoOverlays             = errors.New("render request has no overlays")
	ErrUnsafePath             = errors.New("path must be relative and stay inside its directory")
)

// ValidationError reports the first invalid overlay of a request.
// Element is -1 when the overlay itself is at fault.
type ValidationError struct {
	Index   int
	Element int
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Element >= 0 {
		return fmt.Sprintf("overlay %d, element %d: %v", e.Index, e.Element, e.Err)
	}
	return fmt.Sprintf("overlay %d: %v", e.Index, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// RenderError carries the exit status and diagnostic output of a failed render.
type RenderError struct {
	ExitCode   int
	Diagnostic string
	Err        error
}

func (e *RenderError) Error() string {
	msg := fmt.Sprintf("%v (exit code %d)", ErrRenderingEngine, e.ExitCode)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RenderError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRenderingEngine}
	}
	return []error{ErrRenderingEngine, e.Err}
}

// Warning is a recoverable problem found while compiling.
type Warning struct {
	Overlay int    `json:"overlay"`
	Line    int    `json:"line"`
	Element int    `json:"element"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("overlay %d line %d: %s", w.Overlay, w.Line, w.Message)
}
