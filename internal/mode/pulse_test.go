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

func TestPulse(t *testing.T) {
	s := strip.NewBuffer(2)
	p, err := mode.NewPulse(s, rgb.Red, rgb.Blue, wait)
	require.NoError(t, err)

	now := time.Now()
	run := func(frames int) {
		for range frames {
			now = now.Add(wait)
			require.NoError(t, p.Run(now))
		}
	}

	run(1)
	assert.Equal(t, repeat(rgb.Red, 2), s.Shown())

	run(1)
	assert.Equal(t, repeat(rgb.RGB(254, 0, 1), 2), s.Shown())

	// level 255 is shown on frame 256
	run(254)
	assert.Equal(t, repeat(rgb.Blue, 2), s.Shown())

	// and then fades back
	run(1)
	assert.Equal(t, repeat(rgb.RGB(1, 0, 254), 2), s.Shown())

	run(254)
	assert.Equal(t, repeat(rgb.Red, 2), s.Shown())
}

func TestNewPulse_Errors(t *testing.T) {
	_, err := mode.NewPulse(strip.NewBuffer(0), rgb.Red, rgb.Blue, wait)
	assert.Error(t, err)
}
