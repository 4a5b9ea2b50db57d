package component

import (
	"errors"
	"fmt"

	"github.com/san-kum/cosim/internal/engine"
)

// Error kinds.
var (
	// ErrUnknownVariable indicates a signal name the component or its
	// engine does not recognize for the requested accessor family.
	ErrUnknownVariable = errors.New("component: unknown variable")

	// ErrTypeMismatch indicates a known signal accessed through the wrong
	// accessor family (Real vs Boolean).
	ErrTypeMismatch = errors.New("component: type mismatch")

	// ErrRuntimeFailure indicates the engine could not be created,
	// initialized, reset or stepped.
	ErrRuntimeFailure = errors.New("component: runtime failure")
)

// ErrNotInitialized is the cause reported when Step is called before a
// successful Initialize. Its kind is ErrRuntimeFailure.
var ErrNotInitialized = errors.New("component: not initialized")

// Operation names used in Error.Op.
const (
	OpNew          = "new"
	OpInitialize   = "initialize"
	OpSetInput     = "set_input"
	OpSetBoolInput = "set_bool_input"
	OpGetOutput    = "get_output"
	OpStep         = "step"
	OpReset        = "reset"
)

// Error is returned by every fallible component operation.
type Error struct {
	Op        string
	Component string
	Variable  string
	Kind      error
	Err       error
}

func (e *Error) Error() string {
	msg := e.Component + " " + e.Op
	if e.Variable != "" {
		msg += fmt.Sprintf(" %q", e.Variable)
	}
	msg += ": " + e.Kind.Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindOf returns the kind of a component error, or nil if err carries none.
func KindOf(err error) error {
	for _, kind := range []error{ErrUnknownVariable, ErrTypeMismatch, ErrRuntimeFailure} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// engineKind classifies an engine error. Anything that is not a naming or
// typing problem is a runtime failure.
func engineKind(err error) error {
	switch {
	case errors.Is(err, engine.ErrUnknownVariable):
		return ErrUnknownVariable
	case errors.Is(err, engine.ErrTypeMismatch):
		return ErrTypeMismatch
	default:
		return ErrRuntimeFailure
	}
}
