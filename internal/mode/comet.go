package mode

import (
	"fmt"
	"time"

	"github.com/clambin/blinky/internal/rgb"
	"github.com/clambin/blinky/internal/strip"
)

// Comet moves a single head along the strip, one pixel every wait, followed by a fading tail
type Comet struct {
	strip strip.Strip
	color rgb.Color
	tail  int
	head  int
	stepper
}

var _ Mode = &Comet{}

// NewComet creates a Comet mode. A tail longer than the strip is shortened to the strip's length.
func NewComet(s strip.Strip, color rgb.Color, tail int, wait time.Duration) (*Comet, error) {
	if tail <= 0 {
		return nil, fmt.Errorf("invalid tail: %d", tail)
	}
	if s.NumPixels() <= 0 {
		return nil, fmt.Errorf("invalid pixel count: %d", s.NumPixels())
	}
	return &Comet{strip: s, color: color, tail: min(tail, s.NumPixels()), stepper: stepper{wait: wait}}, nil
}

// Run renders the comet and moves it forward, if the next step is due
func (c *Comet) Run(now time.Time) error {
	if !c.due(now) {
		return nil
	}
	n := c.strip.NumPixels()
	fill(c.strip, func(index int) rgb.Color {
		// distance behind the head
		d := ((c.head-index)%n + n) % n
		if d >= c.tail {
			return rgb.Black
		}
		return c.color.Scale(1 - float64(d)/float64(c.tail))
	})
	c.head = (c.head + 1) % n
	return c.strip.Show()
}
