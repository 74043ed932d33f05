package mapper

import (
	"fmt"

	"github.com/clambin/blinky/internal/rgb"
)

// Runner moves two heads along the strip, half a strip apart. Pixels close to a head fade from the foreground
// colour to the background colour over the length of the tail.
type Runner struct {
	numPixels  int
	heads      [2]int
	tail       int
	direction  int
	foreground rgb.Color
	background rgb.Color
}

var _ PixelMapper = &Runner{}
var _ Sized = &Runner{}

// NewRunner creates a Runner for a strip of numPixels pixels. direction is the number of pixels the heads move
// every frame; a negative direction runs the heads backwards.
func NewRunner(numPixels, tail, direction int, foreground, background rgb.Color) (*Runner, error) {
	if err := validPixels(numPixels); err != nil {
		return nil, err
	}
	if tail <= 0 {
		return nil, fmt.Errorf("invalid tail: %d", tail)
	}
	if direction == 0 {
		return nil, fmt.Errorf("invalid direction: %d", direction)
	}
	return &Runner{
		numPixels:  numPixels,
		heads:      [2]int{0, numPixels / 2},
		tail:       tail,
		direction:  direction,
		foreground: foreground,
		background: background,
	}, nil
}

// NumPixels returns the strip length the Runner was created for
func (m *Runner) NumPixels() int {
	return m.numPixels
}

// Heads returns the current position of both heads
func (m *Runner) Heads() (int, int) {
	return m.heads[0], m.heads[1]
}

// PixelColor returns the colour of the pixel, based on its distance to the nearest head
func (m *Runner) PixelColor(index int) rgb.Color {
	if index == 0 {
		for i := range m.heads {
			m.heads[i] = wrap(m.heads[i]+m.direction, m.numPixels)
		}
	}
	d := min(m.distance(index, m.heads[0]), m.distance(index, m.heads[1]))
	if d >= m.tail {
		return m.background
	}
	return rgb.Blend(m.foreground, m.background, float64(d)/float64(m.tail))
}

func (m *Runner) distance(index, head int) int {
	d := wrap(index-head, m.numPixels)
	return min(d, m.numPixels-d)
}

func wrap(value, n int) int {
	return ((value % n) + n) % n
}
