package player

import "github.com/prometheus/client_golang/prometheus"

var (
	buckets = []float64{.0001, .0005, .001, .005, .01, .05}
)

type metrics struct {
	frames      prometheus.Counter
	frameErrors prometheus.Counter
	duration    prometheus.Histogram
	modeChanges prometheus.Counter
}

func newMetrics() *metrics {
	return &metrics{
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blinky_frames_total",
			Help: "Number of frames rendered",
		}),
		frameErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blinky_frame_errors_total",
			Help: "Number of frames that failed to render",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "blinky_frame_duration_seconds",
			Help:    "Time taken to render a frame",
			Buckets: buckets,
		}),
		modeChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blinky_mode_changes_total",
			Help: "Number of times the mode was replaced",
		}),
	}
}

func (m metrics) Describe(ch chan<- *prometheus.Desc) {
	m.frames.Describe(ch)
	m.frameErrors.Describe(ch)
	m.duration.Describe(ch)
	m.modeChanges.Describe(ch)
}

func (m metrics) Collect(ch chan<- prometheus.Metric) {
	m.frames.Collect(ch)
	m.frameErrors.Collect(ch)
	m.duration.Collect(ch)
	m.modeChanges.Collect(ch)
}
