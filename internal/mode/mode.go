// Package mode implements the top-level animations that run on a strip. A Mode's Run is called once per frame by
// the player; it never blocks. Modes that animate at their own pace compare the frame time with the time of their
// previous step.
package mode

import (
	"fmt"
	"time"

	"github.com/clambin/blinky/internal/mapper"
	"github.com/clambin/blinky/internal/rgb"
	"github.com/clambin/blinky/internal/strip"
)

// Mode renders one frame
type Mode interface {
	Run(now time.Time) error
}

// None does nothing
type None struct{}

var _ Mode = None{}

// Run does nothing
func (None) Run(_ time.Time) error {
	return nil
}

// Mapped renders a PixelMapper: every frame, it asks the mapper for the colour of each pixel, in order, and shows
// the result
type Mapped struct {
	mapper mapper.PixelMapper
	strip  strip.Strip
}

var _ Mode = &Mapped{}

// NewMapped creates a Mapped mode. Mappers that keep per-pixel state must have been created for the strip's length.
func NewMapped(m mapper.PixelMapper, s strip.Strip) (*Mapped, error) {
	n := s.NumPixels()
	if n <= 0 {
		return nil, fmt.Errorf("invalid pixel count: %d", n)
	}
	if sized, ok := m.(mapper.Sized); ok && sized.NumPixels() != n {
		return nil, fmt.Errorf("mapper holds %d pixels, strip has %d", sized.NumPixels(), n)
	}
	return &Mapped{mapper: m, strip: s}, nil
}

// Run renders the next frame
func (m *Mapped) Run(_ time.Time) error {
	for i := 0; i < m.strip.NumPixels(); i++ {
		m.strip.SetPixelColor(i, m.mapper.PixelColor(i))
	}
	return m.strip.Show()
}

// stepper tracks when a self-timed animation is due for its next step
type stepper struct {
	wait    time.Duration
	last    time.Time
	started bool
}

// due reports whether the next step should run at now. The first call is always due.
func (s *stepper) due(now time.Time) bool {
	if s.started && now.Sub(s.last) < s.wait {
		return false
	}
	s.started = true
	s.last = now
	return true
}

func fill(s strip.Strip, color func(index int) rgb.Color) {
	for i := 0; i < s.NumPixels(); i++ {
		s.SetPixelColor(i, color(i))
	}
}
