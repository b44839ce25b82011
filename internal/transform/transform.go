// Package transform contains the monitor rotation state and the rules for cycling it.
package transform

import (
	"strconv"
	"strings"
)

// Transform is an integer-coded monitor rotation state (0, 90, 180 and 270 degrees for the values in
// [Min, Max]; the exact mapping is owned by the compositor).
type Transform int

const (
	Min   Transform = 0       // the "normal" orientation, used by reset
	Max   Transform = 3       // the highest supported value
	Count           = Max + 1 // cycle length
)

// New validates the given integer and converts it into the Transform.
func New(v int) (Transform, error) {
	var t = Transform(v)

	if err := t.Validate(); err != nil {
		return 0, err
	}

	return t, nil
}

// Validate returns an InvalidStateError if the value is out of the [Min, Max] range.
func (t Transform) Validate() error {
	if t < Min || t > Max {
		return &InvalidStateError{Value: int(t)}
	}

	return nil
}

// String returns the decimal representation (the same that is passed to the compositor).
func (t Transform) String() string { return strconv.Itoa(int(t)) }

// A Direction is a rotation direction.
type Direction uint8

const (
	Right Direction = iota + 1
	Left
)

// AllDirections returns all the known directions.
func AllDirections() []Direction { return []Direction{Left, Right} }

// String returns a lower-case representation of the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	}

	return "direction(" + strconv.Itoa(int(d)) + ")"
}

// ParseDirection parses a direction (case is ignored).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}

	return 0, &InvalidArgumentError{Argument: "direction", Value: s, Reason: "use \"left\" or \"right\""}
}

// Next computes the transform that follows the current one in the given direction. The value always stays in
// the [Min, Max] range: rotating right from Max gives Min, rotating left from Min gives Max.
func Next(current Transform, d Direction) (Transform, error) {
	if err := current.Validate(); err != nil {
		return 0, err
	}

	var delta Transform

	switch d {
	case Right:
		delta = 1
	case Left:
		delta = -1
	default:
		return 0, &InvalidArgumentError{Argument: "direction", Value: d.String()}
	}

	// non-negative modulo, so -1 becomes Max
	return ((current-Min+delta)%Count+Count)%Count + Min, nil
}

func itoa(v int) string { return strconv.Itoa(v) }

func quote(s string) string { return strconv.Quote(s) }
