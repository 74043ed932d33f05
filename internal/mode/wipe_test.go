package mode_test

import (
	"testing"
	"time"

	"github.com/clambin/blinky/internal/mode"
	"github.com/clambin/blinky/internal/rgb"
	"github.com/clambin/blinky/internal/strip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWipe(t *testing.T) {
	s := strip.NewBuffer(3)
	w, err := mode.NewWipe(s, rgb.Red, rgb.Blue, wait)
	require.NoError(t, err)

	now := time.Now()
	want := [][]rgb.Color{
		{rgb.Red, rgb.Black, rgb.Black},
		{rgb.Red, rgb.Red, rgb.Black},
		{rgb.Red, rgb.Red, rgb.Red},
		{rgb.Blue, rgb.Red, rgb.Red},
		{rgb.Blue, rgb.Blue, rgb.Red},
	}
	for i, frame := range want {
		require.NoError(t, w.Run(now.Add(time.Duration(i)*wait)))
		assert.Equal(t, frame, s.Shown(), i)
	}

	require.NoError(t, w.Run(now.Add(time.Duration(len(want)-1)*wait+time.Millisecond)))
	assert.Equal(t, len(want), s.Frames())
}

func TestDoubleWipe(t *testing.T) {
	s := strip.NewBuffer(4)
	w, err := mode.NewDoubleWipe(s, rgb.Red, rgb.Blue, wait)
	require.NoError(t, err)

	now := time.Now()
	want := [][]rgb.Color{
		{rgb.Red, rgb.Black, rgb.Black, rgb.Blue},
		{rgb.Red, rgb.Red, rgb.Blue, rgb.Blue},
		{rgb.Red, rgb.Blue, rgb.Red, rgb.Blue},
		{rgb.Blue, rgb.Blue, rgb.Red, rgb.Red},
		// colours have swapped
		{rgb.Blue, rgb.Blue, rgb.Red, rgb.Red},
		{rgb.Blue, rgb.Blue, rgb.Red, rgb.Red},
	}
	for i, frame := range want {
		require.NoError(t, w.Run(now.Add(time.Duration(i)*wait)))
		assert.Equal(t, frame, s.Shown(), i)
	}
}

func TestNewWipe_Errors(t *testing.T) {
	_, err := mode.NewWipe(strip.NewBuffer(0), rgb.Red, rgb.Blue, wait)
	assert.Error(t, err)
	_, err = mode.NewDoubleWipe(strip.NewBuffer(0), rgb.Red, rgb.Blue, wait)
	assert.Error(t, err)
}
