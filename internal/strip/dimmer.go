package strip

import "github.com/clambin/blinky/internal/rgb"

// Dimmer scales every colour written to the underlying Strip by a global brightness
type Dimmer struct {
	Strip
	factor float64
}

// NewDimmer wraps s. brightness runs from 0 (off) to 255 (full brightness); values outside that range are clamped.
func NewDimmer(s Strip, brightness int) *Dimmer {
	brightness = min(max(brightness, 0), 255)
	return &Dimmer{Strip: s, factor: float64(brightness) / 255}
}

// SetPixelColor sets the pixel to the dimmed colour
func (d *Dimmer) SetPixelColor(index int, c rgb.Color) {
	d.Strip.SetPixelColor(index, c.Scale(d.factor))
}
