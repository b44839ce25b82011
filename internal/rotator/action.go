package rotator

import (
	"strconv"

	"github.com/hyprroll/roll/internal/transform"
)

// An Action is the operation requested for the monitor.
type Action uint8

const (
	Query       Action = iota // read and print the current transform (the zero value)
	RotateLeft                // read, decrement and apply
	RotateRight               // read, increment and apply
	Reset                     // apply transform.Min without reading
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case Query:
		return "query"
	case RotateLeft:
		return "rotate-left"
	case RotateRight:
		return "rotate-right"
	case Reset:
		return "reset"
	}

	return "action(" + strconv.Itoa(int(a)) + ")"
}

// ActionFromFlags converts the mutually exclusive action flags into the Action. No flags means Query, more
// than one flag is rejected.
func ActionFromFlags(left, right, reset bool) (Action, error) {
	var (
		set    int
		action = Query
	)

	for _, f := range []struct {
		on     bool
		action Action
	}{
		{left, RotateLeft},
		{right, RotateRight},
		{reset, Reset},
	} {
		if f.on {
			set, action = set+1, f.action
		}
	}

	if set > 1 {
		return Query, &transform.InvalidArgumentError{
			Argument: "flags",
			Reason:   "--left, --right and --reset cannot be used together",
		}
	}

	return action, nil
}
