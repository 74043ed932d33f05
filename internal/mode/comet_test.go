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

const wait = 20 * time.Millisecond

func TestComet(t *testing.T) {
	s := strip.NewBuffer(5)
	c, err := mode.NewComet(s, rgb.Red, 2, wait)
	require.NoError(t, err)

	half := rgb.RGB(128, 0, 0)
	now := time.Now()

	require.NoError(t, c.Run(now))
	assert.Equal(t, []rgb.Color{rgb.Red, rgb.Black, rgb.Black, rgb.Black, half}, s.Shown())

	// not due yet
	require.NoError(t, c.Run(now.Add(wait-time.Millisecond)))
	assert.Equal(t, 1, s.Frames())

	require.NoError(t, c.Run(now.Add(wait)))
	assert.Equal(t, []rgb.Color{half, rgb.Red, rgb.Black, rgb.Black, rgb.Black}, s.Shown())
	assert.Equal(t, 2, s.Frames())
}

func TestComet_WrapAround(t *testing.T) {
	s := strip.NewBuffer(3)
	c, err := mode.NewComet(s, rgb.Blue, 1, wait)
	require.NoError(t, err)

	now := time.Now()
	for i := range 4 {
		require.NoError(t, c.Run(now.Add(time.Duration(i)*wait)))
	}
	assert.Equal(t, []rgb.Color{rgb.Blue, rgb.Black, rgb.Black}, s.Shown())
}

func TestComet_LongTail(t *testing.T) {
	s := strip.NewBuffer(4)
	c, err := mode.NewComet(s, rgb.Red, 10, wait)
	require.NoError(t, err)

	require.NoError(t, c.Run(time.Now()))
	// the tail fades over the length of the strip and ends just ahead of the head
	assert.Equal(t, []rgb.Color{rgb.Red, rgb.RGB(64, 0, 0), rgb.RGB(128, 0, 0), rgb.RGB(191, 0, 0)}, s.Shown())
}

func TestNewComet_Errors(t *testing.T) {
	_, err := mode.NewComet(strip.NewBuffer(5), rgb.Red, 0, wait)
	assert.Error(t, err)
	_, err = mode.NewComet(strip.NewBuffer(0), rgb.Red, 2, wait)
	assert.Error(t, err)
}
