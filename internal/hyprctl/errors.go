package hyprctl

import (
	"errors"
	"fmt"
)

var (
	ErrCommand  = errors.New("command failed")    // the external tool invocation failed
	ErrParse    = errors.New("unexpected output") // the external tool output cannot be parsed
	ErrNotFound = errors.New("monitor not found") // the monitor is absent from the listing
)

// CommandError is returned when the external tool cannot be started or exits with a non-zero code.
type CommandError struct {
	Command  string // human-readable command line
	ExitCode int    // -1 when the process was not started or was killed
	Stderr   string // trimmed standard error output

	cause error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	var msg = fmt.Sprintf("command %q failed", e.Command)

	if e.ExitCode >= 0 {
		msg = fmt.Sprintf("command %q exited with status %d", e.Command, e.ExitCode)
	}

	if e.Stderr != "" {
		msg += ": " + e.Stderr
	} else if e.cause != nil {
		msg += ": " + e.cause.Error()
	}

	return msg
}

// Unwrap returns the underlying error.
func (e *CommandError) Unwrap() error { return e.cause }

// Is allows errors.Is(err, ErrCommand).
func (e *CommandError) Is(target error) bool { return target == ErrCommand }

// ParseError is returned when the monitor listing does not have the expected shape.
type ParseError struct {
	Monitor string
	Line    int    // 1-based line number of the offending line (0 if unknown)
	Reason  string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var msg = e.Reason

	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}

	if e.Monitor != "" {
		msg = fmt.Sprintf("monitor %q: %s", e.Monitor, msg)
	}

	return msg
}

// Is allows errors.Is(err, ErrParse).
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// NotFoundError is returned when the monitor is absent from the listing.
type NotFoundError struct {
	Monitor   string
	Available []string // names of the monitors that were listed
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("monitor %q not found (no monitors listed)", e.Monitor)
	}

	return fmt.Sprintf("monitor %q not found (available: %v)", e.Monitor, e.Available)
}

// Is allows errors.Is(err, ErrNotFound).
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
