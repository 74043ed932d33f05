package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/clambin/blinky/internal/version"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Configuration holds the command line options
type Configuration struct {
	Debug          bool
	PrometheusPort int
	FPS            int
	DeviceFile     string
	Output         OutputConfiguration
}

// OutputConfiguration selects the strip that modes render to
type OutputConfiguration struct {
	Type     string
	Pixels   int
	SPIPort  string
	SPISpeed int64
	LEDPaths []string
}

// Output types
const (
	OutputNone    = "none"
	OutputDotstar = "dotstar"
	OutputSysfs   = "sysfs"
)

// GetConfigFromArgs parses the command line
func GetConfigFromArgs(args []string) (Configuration, error) {
	var cfg Configuration

	a := kingpin.New(filepath.Base(os.Args[0]), "blinky")
	a.Version(version.BuildVersion)
	a.HelpFlag.Short('h')
	a.VersionFlag.Short('v')
	a.Flag("debug", "Log debug messages").Short('d').Default("false").BoolVar(&cfg.Debug)
	a.Flag("prometheus", "Prometheus metrics listener port").Default("9090").IntVar(&cfg.PrometheusPort)
	a.Flag("fps", "Frames per second").Default("50").IntVar(&cfg.FPS)
	a.Flag("config", "Device configuration file (YAML)").Short('c').Default("").StringVar(&cfg.DeviceFile)
	a.Flag("output", "LED strip type (none, dotstar or sysfs)").Short('o').Default(OutputNone).EnumVar(&cfg.Output.Type, OutputNone, OutputDotstar, OutputSysfs)
	a.Flag("pixels", "Number of pixels of the strip").Default("60").IntVar(&cfg.Output.Pixels)
	a.Flag("spi-port", "SPI port of a dotstar strip (default: first available port)").Default("").StringVar(&cfg.Output.SPIPort)
	a.Flag("spi-speed", "SPI clock of a dotstar strip, in Hz").Default("4000000").Int64Var(&cfg.Output.SPISpeed)
	a.Flag("led-path", "sysfs directory of an LED (repeat for each pixel)").StringsVar(&cfg.Output.LEDPaths)

	if _, err := a.Parse(args); err != nil {
		return cfg, fmt.Errorf("invalid command line arguments: %w", err)
	}
	return cfg, cfg.validate()
}

func (c Configuration) validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("invalid fps: %d", c.FPS)
	}
	switch c.Output.Type {
	case OutputDotstar:
		if c.Output.Pixels <= 0 {
			return fmt.Errorf("invalid pixel count: %d", c.Output.Pixels)
		}
		if c.Output.SPISpeed <= 0 {
			return fmt.Errorf("invalid spi speed: %d", c.Output.SPISpeed)
		}
	case OutputSysfs:
		if len(c.Output.LEDPaths) == 0 {
			return fmt.Errorf("sysfs output requires at least one led-path")
		}
	}
	return nil
}
