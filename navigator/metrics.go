package navigator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values.
const (
	resultOK          = "ok"
	resultNoPath      = "no_path"
	resultOutOfBounds = "out_of_bounds"
)

type metrics struct {
	traces      *prometheus.CounterVec
	projections *prometheus.CounterVec
	pathCells   prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		traces: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seaway",
			Subsystem: "trace",
			Name:      "total",
			Help:      "Straight-line water traces by outcome",
		}, []string{"result"}),
		projections: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "seaway",
			Subsystem: "project",
			Name:      "total",
			Help:      "Geographic projections by outcome",
		}, []string{"result"}),
		pathCells: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "seaway",
			Subsystem: "trace",
			Name:      "path_cells",
			Help:      "Number of cells on successful traces",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
}

func (m *metrics) trace(cells int, err error) {
	if err != nil {
		m.traces.WithLabelValues(resultNoPath).Inc()
		return
	}
	m.traces.WithLabelValues(resultOK).Inc()
	if cells > 0 {
		m.pathCells.Observe(float64(cells))
	}
}

func (m *metrics) project(err error) {
	if err != nil {
		m.projections.WithLabelValues(resultOutOfBounds).Inc()
		return
	}
	m.projections.WithLabelValues(resultOK).Inc()
}
