// Package strip provides the LED strips that modes render to
package strip

import (
	"errors"

	"github.com/clambin/blinky/internal/rgb"
)

// Strip is an addressable LED strip. SetPixelColor updates the pixel buffer; Show pushes the buffer to the LEDs.
type Strip interface {
	NumPixels() int
	SetPixelColor(index int, c rgb.Color)
	Show() error
}

// ErrClosed is returned when showing a frame on a strip that has been closed
var ErrClosed = errors.New("strip closed")

// Buffer is an in-memory Strip. It keeps the last frame that was shown.
type Buffer struct {
	pixels []rgb.Color
	shown  []rgb.Color
	frames int
}

var _ Strip = &Buffer{}

// NewBuffer returns a Buffer with numPixels pixels, all black
func NewBuffer(numPixels int) *Buffer {
	return &Buffer{
		pixels: make([]rgb.Color, numPixels),
		shown:  make([]rgb.Color, numPixels),
	}
}

// NumPixels returns the number of pixels of the strip
func (b *Buffer) NumPixels() int {
	return len(b.pixels)
}

// SetPixelColor sets the colour of the pixel. Indices outside the strip are ignored.
func (b *Buffer) SetPixelColor(index int, c rgb.Color) {
	if index >= 0 && index < len(b.pixels) {
		b.pixels[index] = c
	}
}

// Show commits the current pixels
func (b *Buffer) Show() error {
	copy(b.shown, b.pixels)
	b.frames++
	return nil
}

// Shown returns a copy of the last frame that was shown
func (b *Buffer) Shown() []rgb.Color {
	return append([]rgb.Color(nil), b.shown...)
}

// Frames returns the number of frames that were shown
func (b *Buffer) Frames() int {
	return b.frames
}
