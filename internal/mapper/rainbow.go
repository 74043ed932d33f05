package mapper

import "github.com/clambin/blinky/internal/rgb"

// Rainbow spreads the colour wheel along the strip and rotates it by one step every frame
type Rainbow struct {
	offset int
}

var _ PixelMapper = &Rainbow{}

// PixelColor returns the wheel colour for the pixel
func (m *Rainbow) PixelColor(index int) rgb.Color {
	if index == 0 {
		m.offset = (m.offset + 1) % 256
	}
	return rgb.Wheel(byte((index + m.offset) % 256))
}
