package transform

import "errors"

var (
	// ErrInvalidArgument is returned for unknown direction tokens and conflicting actions.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidState is returned when a transform value is outside the [Min, Max] range.
	ErrInvalidState = errors.New("invalid state")
)

// InvalidArgumentError describes a rejected user-provided value.
type InvalidArgumentError struct {
	Argument string // argument name, e.g. "direction"
	Value    string // rejected value (may be empty)
	Reason   string
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	var msg = "invalid " + e.Argument

	if e.Value != "" {
		msg += " " + quote(e.Value)
	}

	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	return msg
}

// Is allows errors.Is(err, ErrInvalidArgument).
func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// InvalidStateError describes an out-of-range transform value.
type InvalidStateError struct {
	Value int
}

// Error implements the error interface.
func (e *InvalidStateError) Error() string {
	return "transform " + itoa(e.Value) + " is out of range [" + itoa(int(Min)) + ", " + itoa(int(Max)) + "]"
}

// Is allows errors.Is(err, ErrInvalidState).
func (e *InvalidStateError) Is(target error) bool { return target == ErrInvalidState }
