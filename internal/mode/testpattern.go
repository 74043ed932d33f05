package mode

import (
	"fmt"
	"time"

	"github.com/clambin/blinky/internal/rgb"
	"github.com/clambin/blinky/internal/strip"
)

var testColors = []rgb.Color{rgb.Red, rgb.Green, rgb.Blue, rgb.White}

// TestPattern lights the whole strip red, green, blue and white in turn, for hold each
type TestPattern struct {
	strip strip.Strip
	index int
	stepper
}

var _ Mode = &TestPattern{}

// NewTestPattern creates a TestPattern mode
func NewTestPattern(s strip.Strip, hold time.Duration) (*TestPattern, error) {
	if s.NumPixels() <= 0 {
		return nil, fmt.Errorf("invalid pixel count: %d", s.NumPixels())
	}
	return &TestPattern{strip: s, stepper: stepper{wait: hold}}, nil
}

// Run shows the next colour, if it is due
func (p *TestPattern) Run(now time.Time) error {
	if !p.due(now) {
		return nil
	}
	c := testColors[p.index]
	fill(p.strip, func(int) rgb.Color { return c })
	p.index = (p.index + 1) % len(testColors)
	return p.strip.Show()
}
