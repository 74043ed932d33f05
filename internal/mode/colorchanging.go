package mode

import (
	"fmt"
	"time"

	"github.com/clambin/blinky/internal/rgb"
	"github.com/clambin/blinky/internal/strip"
)

// ColorChanging paints even pixels in one colour and odd pixels in another. With a non-zero colorChange, both
// colours travel around the colour wheel, half a wheel apart, by colorChange positions every wait.
type ColorChanging struct {
	strip       strip.Strip
	color1      rgb.Color
	color2      rgb.Color
	colorChange int
	wheel1      int
	wheel2      int
	stepper
}

var _ Mode = &ColorChanging{}

// NewColorChanging creates a ColorChanging mode
func NewColorChanging(s strip.Strip, color1, color2 rgb.Color, colorChange int, wait time.Duration) (*ColorChanging, error) {
	if s.NumPixels() <= 0 {
		return nil, fmt.Errorf("invalid pixel count: %d", s.NumPixels())
	}
	if colorChange < 0 {
		return nil, fmt.Errorf("invalid color change: %d", colorChange)
	}
	return &ColorChanging{
		strip:       s,
		color1:      color1,
		color2:      color2,
		colorChange: colorChange,
		wheel2:      128,
		stepper:     stepper{wait: wait},
	}, nil
}

// Run paints the strip, if the next step is due
func (c *ColorChanging) Run(now time.Time) error {
	if !c.due(now) {
		return nil
	}
	if c.colorChange > 0 {
		c.color1, c.color2 = rgb.Wheel(byte(c.wheel1)), rgb.Wheel(byte(c.wheel2))
		c.wheel1 = (c.wheel1 + c.colorChange) % 256
		c.wheel2 = (c.wheel2 + c.colorChange) % 256
	}
	fill(c.strip, func(index int) rgb.Color {
		if index%2 == 0 {
			return c.color1
		}
		return c.color2
	})
	return c.strip.Show()
}
