package configuration

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/clambin/blinky/internal/rgb"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

// Device is the configuration of the LED pattern. It is read from a YAML file and can be overridden by BLINKY_*
// environment variables.
type Device struct {
	Mode        string        `yaml:"mode" env:"BLINKY_MODE,overwrite"`
	Brightness  int           `yaml:"brightness" env:"BLINKY_BRIGHTNESS,overwrite"`
	Color1      rgb.Color     `yaml:"color1" env:"BLINKY_COLOR1,overwrite"`
	Color2      rgb.Color     `yaml:"color2" env:"BLINKY_COLOR2,overwrite"`
	Speed       int           `yaml:"speed" env:"BLINKY_SPEED,overwrite"`
	ColorChange int           `yaml:"colorChange" env:"BLINKY_COLOR_CHANGE,overwrite"`
	Rotation    time.Duration `yaml:"rotation" env:"BLINKY_ROTATION,overwrite"`
}

// DefaultDevice returns the device configuration used when no file is provided
func DefaultDevice() Device {
	return Device{
		Mode:       "rainbow",
		Brightness: 255,
		Color1:     rgb.Red,
		Color2:     rgb.Blue,
		Speed:      20,
		Rotation:   30 * time.Second,
	}
}

// StepInterval returns the time between two steps of a self-timed animation: Speed, in milliseconds
func (d Device) StepInterval() time.Duration {
	if d.Speed <= 0 {
		return 20 * time.Millisecond
	}
	return time.Duration(d.Speed) * time.Millisecond
}

// LoadDevice reads the device configuration. Settings missing from the file keep their default value. If path is
// empty, only the defaults and the environment are used.
func LoadDevice(ctx context.Context, path string) (Device, error) {
	cfg := DefaultDevice()
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("device configuration: %w", err)
		}
		if err = yaml.Unmarshal(content, &cfg); err != nil {
			return cfg, fmt.Errorf("device configuration %s: %w", path, err)
		}
	}
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return cfg, fmt.Errorf("device environment: %w", err)
	}
	if cfg.Brightness < 0 || cfg.Brightness > 255 {
		return cfg, fmt.Errorf("invalid brightness: %d", cfg.Brightness)
	}
	return cfg, nil
}
