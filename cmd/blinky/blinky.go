package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clambin/blinky/internal/configuration"
	"github.com/clambin/blinky/internal/mapper"
	"github.com/clambin/blinky/internal/mode"
	"github.com/clambin/blinky/internal/player"
	"github.com/clambin/blinky/internal/strip"
	"github.com/clambin/blinky/internal/version"
	"github.com/clambin/gotools/metrics"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"periph.io/x/conn/v3/physic"
)

func main() {
	cfg, err := configuration.GetConfigFromArgs(os.Args[1:])
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}
	log.WithField("version", version.BuildVersion).Info("blinky starting")
	defer log.Info("blinky exiting")

	ctx, done := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer done()

	if err = run(ctx, cfg, prometheus.DefaultRegisterer); err != nil {
		log.WithError(err).Fatal("failed to start")
	}
}

func run(ctx context.Context, cfg configuration.Configuration, reg prometheus.Registerer) error {
	s, err := buildStrip(cfg.Output)
	if err != nil {
		return fmt.Errorf("strip: %w", err)
	}
	if c, ok := s.(io.Closer); ok {
		defer func() { _ = c.Close() }()
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	m, err := loadMode(ctx, cfg.DeviceFile, s, r)
	if err != nil {
		return err
	}
	p, err := player.New(m, cfg.FPS)
	if err != nil {
		return fmt.Errorf("player: %w", err)
	}
	if err = reg.Register(p); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	runHTTPServer(ctx, newHTTPServer(cfg.PrometheusPort), g)
	g.Go(func() error { return p.Run(ctx) })
	g.Go(func() error {
		reloadOnHangup(ctx, cfg.DeviceFile, s, r, p)
		return nil
	})
	return g.Wait()
}

func buildStrip(cfg configuration.OutputConfiguration) (strip.Strip, error) {
	switch cfg.Type {
	case configuration.OutputNone:
		return strip.NewBuffer(cfg.Pixels), nil
	case configuration.OutputDotstar:
		return strip.NewDotstar(cfg.SPIPort, physic.Frequency(cfg.SPISpeed)*physic.Hertz, cfg.Pixels)
	case configuration.OutputSysfs:
		return strip.NewSysfs(cfg.LEDPaths...)
	default:
		return nil, fmt.Errorf("invalid output type: %s", cfg.Type)
	}
}

func loadMode(ctx context.Context, path string, s strip.Strip, r mapper.Rand) (mode.Mode, error) {
	device, err := configuration.LoadDevice(ctx, path)
	if err != nil {
		return nil, err
	}
	m, err := mode.Create(device, s, r)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"mode": device.Mode, "brightness": device.Brightness}).Info("mode loaded")
	return m, nil
}

// reloadOnHangup reloads the device configuration every time the process receives a SIGHUP. A configuration that
// fails to load leaves the active mode in place.
func reloadOnHangup(ctx context.Context, path string, s strip.Strip, r mapper.Rand, p *player.Player) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGHUP)
	defer signal.Stop(ch)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ch:
			m, err := loadMode(ctx, path, s, r)
			if err != nil {
				log.WithError(err).Error("failed to reload configuration")
				continue
			}
			p.SetMode(m)
		}
	}
}

// newHTTPServer returns the server for /metrics and /health. If port is zero, a free port is allocated.
func newHTTPServer(port int) *metrics.Server {
	return metrics.NewServerWithHandlers(port, []metrics.Handler{
		{
			Path: "/health",
			Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}),
			Methods: []string{http.MethodGet},
		},
	})
}

func runHTTPServer(ctx context.Context, s *metrics.Server, g *errgroup.Group) {
	g.Go(func() error {
		log.WithField("port", s.Port).Info("http server started")
		err := s.Run()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		return err
	})
	g.Go(func() error {
		<-ctx.Done()
		return s.Shutdown(10 * time.Second)
	})
}
