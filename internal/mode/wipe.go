package mode

import (
	"fmt"
	"time"

	"github.com/clambin/blinky/internal/rgb"
	"github.com/clambin/blinky/internal/strip"
)

// Wipe paints the strip one pixel at a time with its first colour, then with its second, and so on
type Wipe struct {
	strip  strip.Strip
	colors [2]rgb.Color
	index  int
	stepper
}

var _ Mode = &Wipe{}

// NewWipe creates a Wipe mode that paints one pixel every wait
func NewWipe(s strip.Strip, color1, color2 rgb.Color, wait time.Duration) (*Wipe, error) {
	if s.NumPixels() <= 0 {
		return nil, fmt.Errorf("invalid pixel count: %d", s.NumPixels())
	}
	return &Wipe{strip: s, colors: [2]rgb.Color{color1, color2}, stepper: stepper{wait: wait}}, nil
}

// Run paints the next pixel, if the next step is due
func (w *Wipe) Run(now time.Time) error {
	if !w.due(now) {
		return nil
	}
	w.strip.SetPixelColor(w.index, w.colors[0])
	w.index++
	if w.index >= w.strip.NumPixels() {
		w.index = 0
		w.colors[0], w.colors[1] = w.colors[1], w.colors[0]
	}
	return w.strip.Show()
}

// DoubleWipe runs two wipes from opposite ends of the strip. Once both have covered the strip, the colours swap.
type DoubleWipe struct {
	strip  strip.Strip
	colors [2]rgb.Color
	index  int
	stepper
}

var _ Mode = &DoubleWipe{}

// NewDoubleWipe creates a DoubleWipe mode: color1 runs from the start of the strip, color2 from the end
func NewDoubleWipe(s strip.Strip, color1, color2 rgb.Color, wait time.Duration) (*DoubleWipe, error) {
	if s.NumPixels() <= 0 {
		return nil, fmt.Errorf("invalid pixel count: %d", s.NumPixels())
	}
	return &DoubleWipe{strip: s, colors: [2]rgb.Color{color1, color2}, stepper: stepper{wait: wait}}, nil
}

// Run advances both wipes by one pixel, if the next step is due
func (w *DoubleWipe) Run(now time.Time) error {
	if !w.due(now) {
		return nil
	}
	n := w.strip.NumPixels()
	w.strip.SetPixelColor(w.index, w.colors[0])
	w.strip.SetPixelColor(n-1-w.index, w.colors[1])
	w.index++
	if w.index >= n {
		w.index = 0
		w.colors[0], w.colors[1] = w.colors[1], w.colors[0]
	}
	return w.strip.Show()
}
