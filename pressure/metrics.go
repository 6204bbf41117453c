package pressure

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Gauge exposes off-heap usage as prometheus metrics.
type Gauge struct {
	bytes     prometheus.Gauge
	registers prometheus.Counter
	releases  prometheus.Counter
}

// NewGauge creates a gauge monitor and registers its collectors with reg.
func NewGauge(reg prometheus.Registerer) *Gauge {
	return &Gauge{
		bytes: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Namespace: "offheap",
			Name:      "bytes",
			Help:      "Bytes of off-heap memory currently registered.",
		}),
		registers: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "offheap",
			Name:      "registrations_total",
			Help:      "Total number of off-heap pressure registrations.",
		}),
		releases: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "offheap",
			Name:      "releases_total",
			Help:      "Total number of off-heap pressure releases.",
		}),
	}
}

func (g *Gauge) Report(bytes int64) {
	g.bytes.Add(float64(bytes))
	g.registers.Inc()
}

func (g *Gauge) Release(bytes int64) {
	g.bytes.Sub(float64(bytes))
	g.releases.Inc()
}
