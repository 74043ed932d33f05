package mode

import (
	"fmt"
	"time"

	"github.com/clambin/blinky/internal/rgb"
	"github.com/clambin/blinky/internal/strip"
)

// Pulse fades the whole strip from color1 to color2 and back, one level (out of 255) every wait
type Pulse struct {
	strip     strip.Strip
	color1    rgb.Color
	color2    rgb.Color
	level     int
	direction int
	stepper
}

var _ Mode = &Pulse{}

// NewPulse creates a Pulse mode
func NewPulse(s strip.Strip, color1, color2 rgb.Color, wait time.Duration) (*Pulse, error) {
	if s.NumPixels() <= 0 {
		return nil, fmt.Errorf("invalid pixel count: %d", s.NumPixels())
	}
	return &Pulse{strip: s, color1: color1, color2: color2, direction: 1, stepper: stepper{wait: wait}}, nil
}

// Run shows the current level and moves to the next one, if the next step is due
func (p *Pulse) Run(now time.Time) error {
	if !p.due(now) {
		return nil
	}
	c := rgb.Blend(p.color1, p.color2, float64(p.level)/255)
	fill(p.strip, func(int) rgb.Color { return c })

	p.level += p.direction
	switch p.level {
	case 255:
		p.direction = -1
	case 0:
		p.direction = 1
	}
	return p.strip.Show()
}
