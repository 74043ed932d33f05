// Package mapper implements per-pixel colour functions. A PixelMapper is asked for the colour of every pixel of the
// strip, once per frame, in increasing index order starting at zero. Mappers use index zero to detect the start of
// a new frame and advance their animation state.
//
// Decorators (Twinkler, Rain) wrap another PixelMapper and always query it first, so that the inner mapper also
// sees index zero and advances its own state.
package mapper

import (
	"errors"
	"fmt"

	"github.com/clambin/blinky/internal/rgb"
)

// PixelMapper returns the colour of a pixel for the current frame
type PixelMapper interface {
	PixelColor(index int) rgb.Color
}

// Sized is implemented by mappers that keep per-pixel state. NumPixels returns the number of pixels the state was
// allocated for.
type Sized interface {
	NumPixels() int
}

// Rand is the source of randomness used by mappers and modes. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// ErrNoColors is returned when a mapper is created with an empty colour list
var ErrNoColors = errors.New("no colors provided")

func validPixels(numPixels int) error {
	if numPixels <= 0 {
		return fmt.Errorf("invalid pixel count: %d", numPixels)
	}
	return nil
}

// SingleColor returns the same colour for every pixel
type SingleColor struct {
	Color rgb.Color
}

var _ PixelMapper = SingleColor{}

// PixelColor returns the configured colour
func (m SingleColor) PixelColor(_ int) rgb.Color {
	return m.Color
}

// MultiColor repeats a list of colours along the strip
type MultiColor struct {
	colors []rgb.Color
}

var _ PixelMapper = &MultiColor{}

// NewMultiColor creates a MultiColor mapper
func NewMultiColor(colors ...rgb.Color) (*MultiColor, error) {
	if len(colors) == 0 {
		return nil, ErrNoColors
	}
	return &MultiColor{colors: colors}, nil
}

// PixelColor returns colors[index mod len(colors)]
func (m *MultiColor) PixelColor(index int) rgb.Color {
	return m.colors[index%len(m.colors)]
}

// RandomColor picks a random colour from its list for every call
type RandomColor struct {
	colors []rgb.Color
	rand   Rand
}

var _ PixelMapper = &RandomColor{}

// NewRandomColor creates a RandomColor mapper
func NewRandomColor(r Rand, colors ...rgb.Color) (*RandomColor, error) {
	if len(colors) == 0 {
		return nil, ErrNoColors
	}
	return &RandomColor{colors: colors, rand: r}, nil
}

// PixelColor returns a randomly chosen colour. The choice is not cached.
func (m *RandomColor) PixelColor(_ int) rgb.Color {
	return m.colors[m.rand.Intn(len(m.colors))]
}
