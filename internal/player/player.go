// Package player runs a Mode at a fixed frame rate
package player

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/clambin/blinky/internal/mode"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

const maxFPS = 1000

// Player calls the active Mode's Run once per frame. It implements prometheus.Collector.
type Player struct {
	interval time.Duration
	metrics  *metrics
	lock     sync.Mutex
	mode     mode.Mode
}

var _ prometheus.Collector = &Player{}

// New creates a Player that renders m at fps frames per second
func New(m mode.Mode, fps int) (*Player, error) {
	if m == nil {
		return nil, fmt.Errorf("no mode")
	}
	if fps <= 0 || fps > maxFPS {
		return nil, fmt.Errorf("invalid frame rate: %d", fps)
	}
	return &Player{
		interval: time.Second / time.Duration(fps),
		metrics:  newMetrics(),
		mode:     m,
	}, nil
}

// SetMode replaces the active mode. It waits for a frame in progress to finish; the new mode runs from the next frame.
func (p *Player) SetMode(m mode.Mode) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.mode = m
	p.metrics.modeChanges.Inc()
}

// Mode returns the active mode
func (p *Player) Mode() mode.Mode {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.mode
}

// Run renders frames until ctx is cancelled. A failing frame is logged and counted; the next frame runs as usual.
func (p *Player) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	log.WithField("interval", p.interval).Info("player started")
	defer log.Info("player stopped")

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			p.Render(now)
		}
	}
}

// Render runs the active mode for a single frame
func (p *Player) Render(now time.Time) {
	p.lock.Lock()
	defer p.lock.Unlock()
	start := time.Now()
	err := p.mode.Run(now)
	p.metrics.duration.Observe(time.Since(start).Seconds())
	p.metrics.frames.Inc()
	if err != nil {
		p.metrics.frameErrors.Inc()
		log.WithError(err).Warning("failed to render frame")
	}
}

// Describe implements the prometheus.Collector interface
func (p *Player) Describe(ch chan<- *prometheus.Desc) {
	p.metrics.Describe(ch)
}

// Collect implements the prometheus.Collector interface
func (p *Player) Collect(ch chan<- prometheus.Metric) {
	p.metrics.Collect(ch)
}
