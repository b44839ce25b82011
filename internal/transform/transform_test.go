package transform_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyprroll/roll/internal/transform"
)

func TestConstants(t *testing.T) {
	assert.Equal(t, transform.Transform(0), transform.Min)
	assert.Equal(t, transform.Transform(3), transform.Max)
	assert.Equal(t, transform.Transform(4), transform.Count)
}

func TestNew(t *testing.T) {
	for name, tt := range map[string]struct {
		give      int
		want      transform.Transform
		wantError bool
	}{
		"zero":     {give: 0, want: 0},
		"three":    {give: 3, want: 3},
		"negative": {give: -1, wantError: true},
		"four":     {give: 4, wantError: true},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := transform.New(tt.give)

			if tt.wantError {
				require.Error(t, err)
				assert.ErrorIs(t, err, transform.ErrInvalidState)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDirection(t *testing.T) {
	for name, tt := range map[string]struct {
		give      string
		want      transform.Direction
		wantError bool
	}{
		"left":       {give: "left", want: transform.Left},
		"right":      {give: "right", want: transform.Right},
		"upper case": {give: "RIGHT", want: transform.Right},
		"spaces":     {give: " left ", want: transform.Left},
		"empty":      {give: "", wantError: true},
		"up":         {give: "up", wantError: true},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := transform.ParseDirection(tt.give)

			if tt.wantError {
				assert.ErrorIs(t, err, transform.ErrInvalidArgument)

				var argErr *transform.InvalidArgumentError

				require.True(t, errors.As(err, &argErr))
				assert.Equal(t, "direction", argErr.Argument)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "left", transform.Left.String())
	assert.Equal(t, "right", transform.Right.String())
	assert.Equal(t, "direction(42)", transform.Direction(42).String())
}

func TestNext(t *testing.T) {
	for c := transform.Min; c <= transform.Max; c++ {
		right, err := transform.Next(c, transform.Right)
		require.NoError(t, err)
		assert.Equal(t, (c+1)%4, right, "right from %d", c)

		left, err := transform.Next(c, transform.Left)
		require.NoError(t, err)
		assert.Equal(t, (c+3)%4, left, "left from %d", c)
	}
}

func TestNext_Wraparound(t *testing.T) {
	for name, tt := range map[string]struct {
		giveCurrent   transform.Transform
		giveDirection transform.Direction
		want          transform.Transform
	}{
		"3 right": {giveCurrent: 3, giveDirection: transform.Right, want: 0},
		"0 right": {giveCurrent: 0, giveDirection: transform.Right, want: 1},
		"0 left":  {giveCurrent: 0, giveDirection: transform.Left, want: 3},
		"1 left":  {giveCurrent: 1, giveDirection: transform.Left, want: 0},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := transform.Next(tt.giveCurrent, tt.giveDirection)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNext_FullCycle(t *testing.T) {
	for start := transform.Min; start <= transform.Max; start++ {
		var current = start

		for i := 0; i < int(transform.Count); i++ {
			next, err := transform.Next(current, transform.Right)
			require.NoError(t, err)

			current = next
		}

		assert.Equal(t, start, current)
	}
}

func TestNext_Errors(t *testing.T) {
	_, err := transform.Next(4, transform.Right)
	assert.ErrorIs(t, err, transform.ErrInvalidState)
	assert.EqualError(t, err, "transform 4 is out of range [0, 3]")

	_, err = transform.Next(-1, transform.Left)
	assert.ErrorIs(t, err, transform.ErrInvalidState)

	_, err = transform.Next(1, transform.Direction(0))
	assert.ErrorIs(t, err, transform.ErrInvalidArgument)
	assert.NotErrorIs(t, err, transform.ErrInvalidState)
}

func TestInvalidArgumentError_Error(t *testing.T) {
	assert.Equal(t, `invalid direction "up": use "left" or "right"`,
		(&transform.InvalidArgumentError{Argument: "direction", Value: "up", Reason: `use "left" or "right"`}).Error(),
	)
	assert.Equal(t, "invalid flags: only one action allowed",
		(&transform.InvalidArgumentError{Argument: "flags", Reason: "only one action allowed"}).Error(),
	)
}
