package mapper

import (
	"fmt"

	"github.com/clambin/blinky/internal/rgb"
)

// Twinkler randomly varies the brightness of each pixel of its inner mapper
type Twinkler struct {
	mapper     PixelMapper
	stepRange  float64
	lo, hi     float64
	brightness []float64
	rand       Rand
}

var _ PixelMapper = &Twinkler{}
var _ Sized = &Twinkler{}

// NewTwinkler wraps mapper in a Twinkler for a strip of numPixels pixels. Every frame, each pixel's brightness
// moves by at most stepRange and stays within [minBrightness, maxBrightness], both fractions of full brightness.
func NewTwinkler(mapper PixelMapper, numPixels int, stepRange, minBrightness, maxBrightness float64, r Rand) (*Twinkler, error) {
	if err := validPixels(numPixels); err != nil {
		return nil, err
	}
	if minBrightness < 0 || maxBrightness > 1 || minBrightness > maxBrightness {
		return nil, fmt.Errorf("invalid brightness range: [%.2f, %.2f]", minBrightness, maxBrightness)
	}
	if stepRange < 0 {
		return nil, fmt.Errorf("invalid step range: %.2f", stepRange)
	}
	t := Twinkler{
		mapper:     mapper,
		stepRange:  stepRange,
		lo:         minBrightness,
		hi:         maxBrightness,
		brightness: make([]float64, numPixels),
		rand:       r,
	}
	for i := range t.brightness {
		t.brightness[i] = minBrightness + (maxBrightness-minBrightness)/2
	}
	return &t, nil
}

// NumPixels returns the number of pixels the Twinkler keeps state for
func (m *Twinkler) NumPixels() int {
	return len(m.brightness)
}

// Brightness returns the current brightness of the pixel
func (m *Twinkler) Brightness(index int) float64 {
	return m.brightness[index]
}

// PixelColor returns the inner mapper's colour, scaled by the pixel's next brightness
func (m *Twinkler) PixelColor(index int) rgb.Color {
	c := m.mapper.PixelColor(index)
	step := (m.rand.Float64()*2 - 1) * m.stepRange
	b := min(max(m.brightness[index]+step, m.lo), m.hi)
	m.brightness[index] = b
	return c.Scale(b)
}
