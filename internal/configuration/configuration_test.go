package configuration_test

import (
	"testing"

	"github.com/clambin/blinky/internal/configuration"
	"github.com/stretchr/testify/assert"
)

func TestGetConfigFromArgs(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		pass bool
		eval func(cfg *configuration.Configuration) bool
	}{
		{
			name: "invalid",
			args: []string{"hello", "world"},
		},
		{
			name: "defaults",
			pass: true,
			eval: func(cfg *configuration.Configuration) bool {
				return !cfg.Debug &&
					cfg.FPS == 50 &&
					cfg.PrometheusPort == 9090 &&
					cfg.Output.Type == configuration.OutputNone &&
					cfg.Output.Pixels == 60
			},
		},
		{
			name: "set debug",
			args: []string{"--debug"},
			pass: true,
			eval: func(cfg *configuration.Configuration) bool { return cfg.Debug },
		},
		{
			name: "device file",
			args: []string{"-c", "blinky.yaml"},
			pass: true,
			eval: func(cfg *configuration.Configuration) bool { return cfg.DeviceFile == "blinky.yaml" },
		},
		{
			name: "dotstar",
			args: []string{"--output=dotstar", "--pixels=144", "--spi-port=/dev/spidev0.0"},
			pass: true,
			eval: func(cfg *configuration.Configuration) bool {
				return cfg.Output.Type == configuration.OutputDotstar &&
					cfg.Output.Pixels == 144 &&
					cfg.Output.SPIPort == "/dev/spidev0.0" &&
					cfg.Output.SPISpeed == 4000000
			},
		},
		{
			name: "sysfs",
			args: []string{"--output=sysfs", "--led-path=/sys/class/leds/led0", "--led-path=/sys/class/leds/led1"},
			pass: true,
			eval: func(cfg *configuration.Configuration) bool {
				return len(cfg.Output.LEDPaths) == 2 && cfg.Output.LEDPaths[1] == "/sys/class/leds/led1"
			},
		},
		{
			name: "sysfs without leds",
			args: []string{"--output=sysfs"},
		},
		{
			name: "invalid output",
			args: []string{"--output=hdmi"},
		},
		{
			name: "invalid fps",
			args: []string{"--fps=0"},
		},
		{
			name: "invalid pixels",
			args: []string{"--output=dotstar", "--pixels=0"},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := configuration.GetConfigFromArgs(tt.args)
			if !tt.pass {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.eval != nil {
				assert.True(t, tt.eval(&cfg))
			}
		})
	}
}
