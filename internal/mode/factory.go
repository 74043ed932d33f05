package mode

import (
	"fmt"
	"time"

	"github.com/clambin/blinky/internal/configuration"
	"github.com/clambin/blinky/internal/mapper"
	"github.com/clambin/blinky/internal/strip"
)

// Names lists the modes that Create supports
var Names = []string{
	"none",
	"test",
	"solid",
	"multi",
	"random",
	"rainbow",
	"runner",
	"twinkle",
	"rainbow-twinkle",
	"rain",
	"rainbow-rain",
	"comet",
	"doublewipe",
	"pulse",
	"wipe",
	"colorchange",
	"rotating",
}

// rotation lists the modes that the "rotating" mode cycles through
var rotation = []string{"rainbow", "twinkle", "rain", "comet", "pulse"}

const (
	runnerTail = 8
	cometTail  = 10
	testHold   = time.Second
)

// Create builds the Mode selected by cfg.Mode. All colours written to s are dimmed to cfg.Brightness.
func Create(cfg configuration.Device, s strip.Strip, r mapper.Rand) (Mode, error) {
	if cfg.Mode == "none" {
		return None{}, nil
	}
	m, err := create(cfg.Mode, cfg, strip.NewDimmer(s, cfg.Brightness), r)
	if err != nil {
		return nil, fmt.Errorf("mode %q: %w", cfg.Mode, err)
	}
	return m, nil
}

func create(name string, cfg configuration.Device, s strip.Strip, r mapper.Rand) (Mode, error) {
	n := s.NumPixels()
	wait := cfg.StepInterval()

	switch name {
	case "none":
		return None{}, nil
	case "test":
		return asMode(NewTestPattern(s, testHold))
	case "solid":
		return mapped(mapper.SingleColor{Color: cfg.Color1}, nil, s)
	case "multi":
		m, err := mapper.NewMultiColor(cfg.Color1, cfg.Color2)
		return mapped(m, err, s)
	case "random":
		m, err := mapper.NewRandomColor(r, cfg.Color1, cfg.Color2)
		return mapped(m, err, s)
	case "rainbow":
		return mapped(&mapper.Rainbow{}, nil, s)
	case "runner":
		m, err := mapper.NewRunner(n, runnerTail, 1, cfg.Color1, cfg.Color2)
		return mapped(m, err, s)
	case "twinkle":
		inner, err := mapper.NewMultiColor(cfg.Color1, cfg.Color2)
		if err != nil {
			return nil, err
		}
		return twinkle(inner, n, s, r)
	case "rainbow-twinkle":
		return twinkle(&mapper.Rainbow{}, n, s, r)
	case "rain":
		m, err := mapper.NewRain(mapper.SingleColor{Color: cfg.Color1}, n, rainOptions(n, false), r)
		return mapped(m, err, s)
	case "rainbow-rain":
		m, err := mapper.NewRain(&mapper.Rainbow{}, n, rainOptions(n, true), r)
		return mapped(m, err, s)
	case "comet":
		return asMode(NewComet(s, cfg.Color1, cometTail, wait))
	case "doublewipe":
		return asMode(NewDoubleWipe(s, cfg.Color1, cfg.Color2, wait))
	case "pulse":
		return asMode(NewPulse(s, cfg.Color1, cfg.Color2, wait))
	case "wipe":
		return asMode(NewWipe(s, cfg.Color1, cfg.Color2, wait))
	case "colorchange":
		return asMode(NewColorChanging(s, cfg.Color1, cfg.Color2, cfg.ColorChange, wait))
	case "rotating":
		modes := make([]Mode, 0, len(rotation))
		for _, sub := range rotation {
			m, err := create(sub, cfg, s, r)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", sub, err)
			}
			modes = append(modes, m)
		}
		return asMode(NewRotating(cfg.Rotation, modes...))
	default:
		return nil, fmt.Errorf("invalid mode: %s", name)
	}
}

func rainOptions(numPixels int, multi bool) mapper.RainOptions {
	return mapper.RainOptions{
		MaxDrops:  max(1, numPixels/4),
		InitValue: 0,
		MaxValue:  1,
		MinValue:  0,
		GrowSpeed: 0.2,
		FadeSpeed: 0.05,
		FadeProb:  0.5,
		Multi:     multi,
		RandInit:  multi,
	}
}

func twinkle(inner mapper.PixelMapper, numPixels int, s strip.Strip, r mapper.Rand) (Mode, error) {
	m, err := mapper.NewTwinkler(inner, numPixels, 0.05, 0.1, 1, r)
	return mapped(m, err, s)
}

// mapped wraps a newly created mapper in a Mapped mode
func mapped(m mapper.PixelMapper, err error, s strip.Strip) (Mode, error) {
	if err != nil {
		return nil, err
	}
	return asMode(NewMapped(m, s))
}

// asMode converts the result of a constructor to a Mode, making sure a failed constructor returns a nil Mode
func asMode[T Mode](m T, err error) (Mode, error) {
	if err != nil {
		return nil, err
	}
	return m, nil
}
