package rgb

// Wheel maps a position on a 256-step hue wheel to a colour. The wheel runs from red to green, green to blue
// and blue back to red, in three bands of 85 steps.
func Wheel(pos byte) Color {
	switch {
	case pos < 85:
		return RGB(255-pos*3, pos*3, 0)
	case pos < 170:
		pos -= 85
		return RGB(0, 255-pos*3, pos*3)
	default:
		pos -= 170
		return RGB(pos*3, 0, 255-pos*3)
	}
}
