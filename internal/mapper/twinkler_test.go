package mapper_test

import (
	"math/rand"
	"testing"

	"github.com/clambin/blinky/internal/mapper"
	"github.com/clambin/blinky/internal/rgb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwinkler(t *testing.T) {
	inner := recorder{PixelMapper: mapper.SingleColor{Color: rgb.RGB(200, 200, 200)}}
	// Float64 of 1.0 is a full step up, 0.0 a full step down, 0.5 no step
	r := scriptedRand{floats: []float64{1, 0, 0.5}}
	m, err := mapper.NewTwinkler(&inner, 3, 0.1, 0.2, 0.8, &r)
	require.NoError(t, err)
	assert.Equal(t, 3, m.NumPixels())

	for i := 0; i < 3; i++ {
		assert.InDelta(t, 0.5, m.Brightness(i), 1e-9)
	}

	colors := frame(m, 3)
	assert.Equal(t, []int{0, 1, 2}, inner.calls)
	assert.InDelta(t, 0.6, m.Brightness(0), 1e-9)
	assert.InDelta(t, 0.4, m.Brightness(1), 1e-9)
	assert.InDelta(t, 0.5, m.Brightness(2), 1e-9)
	assert.Equal(t, []rgb.Color{rgb.RGB(120, 120, 120), rgb.RGB(80, 80, 80), rgb.RGB(100, 100, 100)}, colors)
}

func TestTwinkler_Clamped(t *testing.T) {
	r := scriptedRand{floats: []float64{1}}
	m, err := mapper.NewTwinkler(mapper.SingleColor{Color: rgb.White}, 1, 0.25, 0.3, 0.7, &r)
	require.NoError(t, err)

	for range 10 {
		m.PixelColor(0)
	}
	assert.Equal(t, 0.7, m.Brightness(0))

	r.floats = []float64{0}
	for range 10 {
		m.PixelColor(0)
	}
	assert.Equal(t, 0.3, m.Brightness(0))
}

func TestTwinkler_Range(t *testing.T) {
	const numPixels = 50
	const lo, hi = 0.1, 0.9
	m, err := mapper.NewTwinkler(&mapper.Rainbow{}, numPixels, 0.3, lo, hi, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	for range 1000 {
		frame(m, numPixels)
		for i := 0; i < numPixels; i++ {
			b := m.Brightness(i)
			require.GreaterOrEqual(t, b, lo)
			require.LessOrEqual(t, b, hi)
		}
	}
}

func TestNewTwinkler_Errors(t *testing.T) {
	tests := []struct {
		name      string
		numPixels int
		step      float64
		lo, hi    float64
	}{
		{name: "no pixels", numPixels: 0, step: 0.1, lo: 0, hi: 1},
		{name: "negative step", numPixels: 1, step: -0.1, lo: 0, hi: 1},
		{name: "inverted range", numPixels: 1, step: 0.1, lo: 0.8, hi: 0.2},
		{name: "below zero", numPixels: 1, step: 0.1, lo: -0.1, hi: 1},
		{name: "above one", numPixels: 1, step: 0.1, lo: 0, hi: 1.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mapper.NewTwinkler(mapper.SingleColor{}, tt.numPixels, tt.step, tt.lo, tt.hi, &scriptedRand{})
			assert.Error(t, err)
		})
	}
}
