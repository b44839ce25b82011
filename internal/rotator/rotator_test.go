package rotator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyprroll/roll/internal/hyprctl"
	"github.com/hyprroll/roll/internal/rotator"
	"github.com/hyprroll/roll/internal/transform"
)

// fakeClient keeps the monitors state in memory, like the compositor does.
type fakeClient struct {
	state map[string]transform.Transform

	reads, applies int
	readErr        error
	applyErr       error
}

func (f *fakeClient) Transform(_ context.Context, monitor string) (transform.Transform, error) {
	f.reads++

	if f.readErr != nil {
		return 0, f.readErr
	}

	v, ok := f.state[monitor]
	if !ok {
		return 0, &hyprctl.NotFoundError{Monitor: monitor}
	}

	return v, nil
}

func (f *fakeClient) Apply(_ context.Context, monitor string, value transform.Transform) (string, error) {
	f.applies++

	if f.applyErr != nil {
		return "", f.applyErr
	}

	f.state[monitor] = value

	return "ok", nil
}

func newFake(v transform.Transform) *fakeClient {
	return &fakeClient{state: map[string]transform.Transform{"eDP-1": v}}
}

func TestActionFromFlags(t *testing.T) {
	for name, tt := range map[string]struct {
		left, right, reset bool
		want               rotator.Action
		wantError          bool
	}{
		"none":            {want: rotator.Query},
		"left":            {left: true, want: rotator.RotateLeft},
		"right":           {right: true, want: rotator.RotateRight},
		"reset":           {reset: true, want: rotator.Reset},
		"left and reset":  {left: true, reset: true, wantError: true},
		"right and reset": {right: true, reset: true, wantError: true},
		"left and right":  {left: true, right: true, wantError: true},
		"all":             {left: true, right: true, reset: true, wantError: true},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := rotator.ActionFromFlags(tt.left, tt.right, tt.reset)

			if tt.wantError {
				assert.ErrorIs(t, err, transform.ErrInvalidArgument)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "query", rotator.Query.String())
	assert.Equal(t, "rotate-left", rotator.RotateLeft.String())
	assert.Equal(t, "rotate-right", rotator.RotateRight.String())
	assert.Equal(t, "reset", rotator.Reset.String())
	assert.Equal(t, "action(7)", rotator.Action(7).String())
}

func TestRotator_Query(t *testing.T) {
	var fake = newFake(2)

	res, err := rotator.New(fake, nil).Query(context.Background(), "eDP-1")

	require.NoError(t, err)
	assert.Equal(t, rotator.Result{Action: rotator.Query, Monitor: "eDP-1", Previous: 2, Current: 2}, res)
	assert.Equal(t, 1, fake.reads)
	assert.Zero(t, fake.applies)
}

func TestRotator_Rotate(t *testing.T) {
	for name, tt := range map[string]struct {
		giveStart     transform.Transform
		giveDirection transform.Direction
		wantAction    rotator.Action
		wantCurrent   transform.Transform
	}{
		"right from 0": {giveStart: 0, giveDirection: transform.Right, wantAction: rotator.RotateRight, wantCurrent: 1},
		"right from 3": {giveStart: 3, giveDirection: transform.Right, wantAction: rotator.RotateRight, wantCurrent: 0},
		"left from 0":  {giveStart: 0, giveDirection: transform.Left, wantAction: rotator.RotateLeft, wantCurrent: 3},
		"left from 2":  {giveStart: 2, giveDirection: transform.Left, wantAction: rotator.RotateLeft, wantCurrent: 1},
	} {
		t.Run(name, func(t *testing.T) {
			var fake = newFake(tt.giveStart)

			res, err := rotator.New(fake, nil).Rotate(context.Background(), "eDP-1", tt.giveDirection)

			require.NoError(t, err)
			assert.Equal(t, tt.wantAction, res.Action)
			assert.Equal(t, tt.giveStart, res.Previous)
			assert.Equal(t, tt.wantCurrent, res.Current)
			assert.Equal(t, "ok", res.Output)
			assert.Equal(t, tt.wantCurrent, fake.state["eDP-1"])
			assert.Equal(t, 1, fake.reads)
			assert.Equal(t, 1, fake.applies)
		})
	}
}

func TestRotator_RotateRightFourTimes(t *testing.T) {
	for start := transform.Min; start <= transform.Max; start++ {
		var (
			fake = newFake(start)
			r    = rotator.New(fake, nil)
		)

		for i := 0; i < 4; i++ {
			_, err := r.Do(context.Background(), rotator.RotateRight, "eDP-1")
			require.NoError(t, err)
		}

		assert.Equal(t, start, fake.state["eDP-1"])
	}
}

func TestRotator_Reset(t *testing.T) {
	var (
		fake = newFake(3)
		r    = rotator.New(fake, nil)
	)

	for i := 0; i < 2; i++ {
		res, err := r.Reset(context.Background(), "eDP-1")

		require.NoError(t, err)
		assert.Equal(t, transform.Min, res.Current)
		assert.Equal(t, transform.Transform(0), fake.state["eDP-1"])
	}

	assert.Zero(t, fake.reads, "reset must not read the current state")
	assert.Equal(t, 2, fake.applies)
}

func TestRotator_Reset_UnreadableState(t *testing.T) {
	var fake = newFake(1)

	fake.readErr = errors.New("must not be called")

	_, err := rotator.New(fake, nil).Do(context.Background(), rotator.Reset, "eDP-1")

	require.NoError(t, err)
}

func TestRotator_Errors(t *testing.T) {
	t.Run("read error stops the rotation", func(t *testing.T) {
		var fake = newFake(0)

		_, err := rotator.New(fake, nil).Rotate(context.Background(), "DP-7", transform.Right)

		assert.ErrorIs(t, err, hyprctl.ErrNotFound)
		assert.Zero(t, fake.applies)
	})

	t.Run("invalid state", func(t *testing.T) {
		var fake = newFake(5)

		_, err := rotator.New(fake, nil).Rotate(context.Background(), "eDP-1", transform.Left)

		assert.ErrorIs(t, err, transform.ErrInvalidState)
		assert.Zero(t, fake.applies)
	})

	t.Run("invalid direction", func(t *testing.T) {
		var fake = newFake(1)

		_, err := rotator.New(fake, nil).Rotate(context.Background(), "eDP-1", transform.Direction(9))

		assert.ErrorIs(t, err, transform.ErrInvalidArgument)
		assert.Zero(t, fake.applies)
	})

	t.Run("apply error", func(t *testing.T) {
		var fake = newFake(1)

		fake.applyErr = &hyprctl.CommandError{Command: "hyprctl keyword monitor", ExitCode: 1}

		_, err := rotator.New(fake, nil).Do(context.Background(), rotator.RotateLeft, "eDP-1")

		assert.ErrorIs(t, err, hyprctl.ErrCommand)
	})

	t.Run("unknown action", func(t *testing.T) {
		_, err := rotator.New(newFake(0), nil).Do(context.Background(), rotator.Action(42), "eDP-1")

		assert.ErrorIs(t, err, transform.ErrInvalidArgument)
	})
}
