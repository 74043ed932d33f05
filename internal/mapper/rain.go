package mapper

import (
	"fmt"

	"github.com/clambin/blinky/internal/rgb"
)

// RainOptions configures a Rain mapper. Values are intensities: a drop at MaxValue shows its full colour.
type RainOptions struct {
	// MaxDrops is the maximum number of simultaneously active drops
	MaxDrops int
	// InitValue is the intensity of a new drop
	InitValue float64
	// MaxValue is the intensity at which a drop stops growing and starts fading
	MaxValue float64
	// MinValue is the intensity at which a fading drop disappears
	MinValue float64
	// GrowSpeed is added to a growing drop's intensity every frame
	GrowSpeed float64
	// FadeSpeed is subtracted from a fading drop's intensity
	FadeSpeed float64
	// FadeProb is the probability that a fading drop fades in a given frame
	FadeProb float64
	// Multi allows several drops to start in the same frame
	Multi bool
	// RandInit starts new drops at a random intensity between InitValue and MaxValue
	RandInit bool
}

func (o RainOptions) validate() error {
	if o.MaxDrops < 0 {
		return fmt.Errorf("invalid max drops: %d", o.MaxDrops)
	}
	if o.MaxValue <= 0 {
		return fmt.Errorf("invalid max value: %.2f", o.MaxValue)
	}
	if o.MaxValue <= o.MinValue {
		return fmt.Errorf("invalid value range: [%.2f, %.2f]", o.MinValue, o.MaxValue)
	}
	if o.InitValue < o.MinValue || o.InitValue > o.MaxValue {
		return fmt.Errorf("init value %.2f outside of [%.2f, %.2f]", o.InitValue, o.MinValue, o.MaxValue)
	}
	if o.GrowSpeed < 0 || o.FadeSpeed < 0 {
		return fmt.Errorf("invalid speed: grow %.2f, fade %.2f", o.GrowSpeed, o.FadeSpeed)
	}
	if o.FadeProb < 0 || o.FadeProb > 1 {
		return fmt.Errorf("invalid fade probability: %.2f", o.FadeProb)
	}
	return nil
}

type dropState int

const (
	idle dropState = iota
	// reserved drops start growing when their pixel is visited in the current frame
	reserved
	growing
	fading
)

type drop struct {
	color rgb.Color
	value float64
	state dropState
}

// Rain lets drops appear at random pixels. A drop takes the colour of the inner mapper at that pixel, grows to its
// maximum intensity and then randomly fades away. Pixels without a drop are black.
type Rain struct {
	options   RainOptions
	mapper    PixelMapper
	drops     []drop
	numActive int
	rand      Rand
}

var _ PixelMapper = &Rain{}
var _ Sized = &Rain{}

// NewRain wraps mapper in a Rain mapper for a strip of numPixels pixels
func NewRain(mapper PixelMapper, numPixels int, options RainOptions, r Rand) (*Rain, error) {
	if err := validPixels(numPixels); err != nil {
		return nil, err
	}
	if err := options.validate(); err != nil {
		return nil, err
	}
	return &Rain{
		options: options,
		mapper:  mapper,
		drops:   make([]drop, numPixels),
		rand:    r,
	}, nil
}

// NumPixels returns the number of pixels Rain keeps state for
func (m *Rain) NumPixels() int {
	return len(m.drops)
}

// NumActive returns the number of active drops
func (m *Rain) NumActive() int {
	return m.numActive
}

// Value returns the intensity of the pixel's drop, or zero if the pixel has no drop
func (m *Rain) Value(index int) float64 {
	if m.drops[index].state == idle {
		return 0
	}
	return m.drops[index].value
}

// PixelColor returns the colour of the pixel's drop, scaled by its intensity
func (m *Rain) PixelColor(index int) rgb.Color {
	c := m.mapper.PixelColor(index)
	if index == 0 {
		m.startDrops()
	}

	d := &m.drops[index]
	switch d.state {
	case idle:
		return rgb.Black
	case reserved:
		d.color = c
		d.value = m.options.InitValue
		if m.options.RandInit {
			d.value += m.rand.Float64() * (m.options.MaxValue - m.options.InitValue)
		}
		d.state = growing
	case growing:
		d.value = min(d.value+m.options.GrowSpeed, m.options.MaxValue)
		if d.value >= m.options.MaxValue {
			d.state = fading
		}
	case fading:
		if m.rand.Float64() < m.options.FadeProb {
			d.value = max(d.value-m.options.FadeSpeed, m.options.MinValue)
		}
		if d.value <= m.options.MinValue {
			d.state = idle
			m.numActive--
			return rgb.Black
		}
	}
	return d.color.Scale(d.value / m.options.MaxValue)
}

func (m *Rain) startDrops() {
	attempts := 1
	if m.options.Multi {
		attempts = m.options.MaxDrops - m.numActive
	}
	for ; attempts > 0 && m.numActive < m.options.MaxDrops; attempts-- {
		d := &m.drops[m.rand.Intn(len(m.drops))]
		if d.state == idle {
			d.state = reserved
			d.value = m.options.InitValue
			m.numActive++
		}
	}
}
