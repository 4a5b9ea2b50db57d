package engine

import "errors"

var (
	ErrUnknownModel    = errors.New("engine: unknown model")
	ErrMalformedModel  = errors.New("engine: malformed model")
	ErrUnknownVariable = errors.New("engine: unknown variable")
	ErrTypeMismatch    = errors.New("engine: variable type mismatch")
	ErrInvalidStep     = errors.New("engine: invalid time step")
	ErrDiverged        = errors.New("engine: solver diverged")
)
