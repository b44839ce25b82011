// Package rotator composes the monitor state reading, the transform cycling and applying into the user-facing
// operations.
package rotator

import (
	"context"
	"fmt"

	"github.com/hyprroll/roll/internal/logger"
	"github.com/hyprroll/roll/internal/transform"
)

type (
	// Reader reads the current monitor transform.
	Reader interface {
		Transform(ctx context.Context, monitor string) (transform.Transform, error)
	}

	// Applier applies the transform to the monitor and returns the tool output.
	Applier interface {
		Apply(ctx context.Context, monitor string, value transform.Transform) (string, error)
	}

	// Client is the control tool client (*hyprctl.Client satisfies it).
	Client interface {
		Reader
		Applier
	}
)

// Result describes the performed operation.
type Result struct {
	Action   Action
	Monitor  string
	Previous transform.Transform // the value before the change (for the Query and Rotate* only)
	Current  transform.Transform // the value after the change (or the read value for Query)
	Output   string              // control tool output (empty for Query)
}

// Rotator performs the operations. It keeps no state between the calls.
type Rotator struct {
	client Client
	log    logger.Logger
}

// New creates a new Rotator.
func New(client Client, log logger.Logger) *Rotator {
	if log == nil {
		log = logger.NewNop()
	}

	return &Rotator{client: client, log: log}
}

// Do runs the action for the monitor.
func (r *Rotator) Do(ctx context.Context, action Action, monitor string) (Result, error) {
	switch action {
	case Query:
		return r.Query(ctx, monitor)
	case RotateLeft:
		return r.Rotate(ctx, monitor, transform.Left)
	case RotateRight:
		return r.Rotate(ctx, monitor, transform.Right)
	case Reset:
		return r.Reset(ctx, monitor)
	}

	return Result{}, &transform.InvalidArgumentError{Argument: "action", Value: action.String()}
}

// Query reads the current transform.
func (r *Rotator) Query(ctx context.Context, monitor string) (Result, error) {
	current, err := r.client.Transform(ctx, monitor)
	if err != nil {
		return Result{}, err
	}

	return Result{Action: Query, Monitor: monitor, Previous: current, Current: current}, nil
}

// Rotate reads the current transform, computes the next one in the given direction and applies it.
func (r *Rotator) Rotate(ctx context.Context, monitor string, d transform.Direction) (Result, error) {
	var action = RotateRight

	if d == transform.Left {
		action = RotateLeft
	}

	current, err := r.client.Transform(ctx, monitor)
	if err != nil {
		return Result{}, err
	}

	next, err := transform.Next(current, d)
	if err != nil {
		return Result{}, fmt.Errorf("monitor %q: %w", monitor, err)
	}

	r.log.Info("Rotating", "monitor="+monitor, "direction="+d.String(), "from="+current.String(), "to="+next.String())

	out, err := r.client.Apply(ctx, monitor, next)
	if err != nil {
		return Result{}, err
	}

	return Result{Action: action, Monitor: monitor, Previous: current, Current: next, Output: out}, nil
}

// Reset applies the transform.Min without reading the current state.
func (r *Rotator) Reset(ctx context.Context, monitor string) (Result, error) {
	r.log.Info("Resetting", "monitor="+monitor)

	out, err := r.client.Apply(ctx, monitor, transform.Min)
	if err != nil {
		return Result{}, err
	}

	return Result{Action: Reset, Monitor: monitor, Current: transform.Min, Output: out}, nil
}
