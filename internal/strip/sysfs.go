package strip

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/clambin/blinky/internal/rgb"
	log "github.com/sirupsen/logrus"
)

// Sysfs is a Strip of single-colour LEDs exposed by the kernel's LED class (/sys/class/leds/<name>). Each pixel
// maps to one LED; its brightness follows the brightest channel of the pixel's colour.
type Sysfs struct {
	leds   []led
	pixels []rgb.Color
}

var _ Strip = &Sysfs{}

// NewSysfs creates a Sysfs strip, with one pixel for each LED directory in paths
func NewSysfs(paths ...string) (*Sysfs, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no led paths provided")
	}
	s := Sysfs{
		leds:   make([]led, len(paths)),
		pixels: make([]rgb.Color, len(paths)),
	}
	for i, path := range paths {
		l, err := newLED(path)
		if err != nil {
			return nil, fmt.Errorf("led %q: %w", path, err)
		}
		s.leds[i] = l
	}
	return &s, nil
}

// NumPixels returns the number of LEDs
func (s *Sysfs) NumPixels() int {
	return len(s.pixels)
}

// SetPixelColor sets the colour of the pixel. Indices outside the strip are ignored.
func (s *Sysfs) SetPixelColor(index int, c rgb.Color) {
	if index >= 0 && index < len(s.pixels) {
		s.pixels[index] = c
	}
}

// Show writes the brightness of every LED whose value changed since the previous frame
func (s *Sysfs) Show() error {
	for i, c := range s.pixels {
		level := max(c.R(), c.G(), c.B())
		if err := s.leds[i].set(level); err != nil {
			return err
		}
	}
	return nil
}

type led struct {
	brightnessPath string
	maxBrightness  int
	current        int
}

func newLED(path string) (led, error) {
	l := led{
		brightnessPath: filepath.Join(path, "brightness"),
		maxBrightness:  255,
		current:        -1,
	}
	if _, err := os.Stat(path); err != nil {
		return l, err
	}
	if m, err := readInt(filepath.Join(path, "max_brightness")); err == nil && m > 0 {
		l.maxBrightness = m
	}
	return l, nil
}

func (l *led) set(level uint8) error {
	value := int(level) * l.maxBrightness / 255
	if value == l.current {
		return nil
	}
	if err := os.WriteFile(l.brightnessPath, []byte(strconv.Itoa(value)), 0644); err != nil {
		return err
	}
	log.WithFields(log.Fields{"path": l.brightnessPath, "value": value}).Debug("led set")
	l.current = value
	return nil
}

func readInt(path string) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(content)))
}
