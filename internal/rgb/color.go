// Package rgb holds the 8-bit RGB colour type shared by mappers, modes and strips.
package rgb

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a packed 0xRRGGBB colour, the way LED strip drivers store them
type Color uint32

// Some frequently used colours
const (
	Black Color = 0x000000
	Red   Color = 0xFF0000
	Green Color = 0x00FF00
	Blue  Color = 0x0000FF
	White Color = 0xFFFFFF
)

// RGB packs the three channels into a Color
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// R returns the red channel
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel
func (c Color) B() uint8 { return uint8(c) }

// Scale returns the colour with every channel multiplied by factor. factor is clamped to [0, 1].
func (c Color) Scale(factor float64) Color {
	switch {
	case factor <= 0:
		return Black
	case factor >= 1:
		return c
	}
	return RGB(scale(c.R(), factor), scale(c.G(), factor), scale(c.B(), factor))
}

func scale(v uint8, factor float64) uint8 {
	return uint8(float64(v)*factor + 0.5)
}

// Blend linearly interpolates from c to other. t == 0 returns c, t == 1 returns other.
func Blend(c, other Color, t float64) Color {
	switch {
	case t <= 0:
		return c
	case t >= 1:
		return other
	}
	r, g, b := c.colorful().BlendRgb(other.colorful(), t).Clamped().RGB255()
	return RGB(r, g, b)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
	}
}

// Parse decodes a "#rrggbb" (or "#rgb") string. The leading '#' is optional.
func Parse(text string) (Color, error) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "#") {
		text = "#" + text
	}
	c, err := colorful.Hex(text)
	if err != nil {
		return Black, fmt.Errorf("invalid color %q: %w", text, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// String returns the colour as "#rrggbb"
func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}

// MarshalText implements encoding.TextMarshaler
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so colours can be read from YAML and environment variables
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err == nil {
		*c = parsed
	}
	return err
}
