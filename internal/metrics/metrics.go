package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector tracks movement outcomes on a private registry so tests can
// create collectors without double-registration panics.
type Collector struct {
	registry           *prometheus.Registry
	movementsProcessed *prometheus.CounterVec
	movementsFailed    *prometheus.CounterVec
	movementDuration   prometheus.Histogram
}

func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		movementsProcessed: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "movements_processed_total",
			Help: "Total number of committed balance movements",
		}, []string{"kind"}),
		movementsFailed: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "movements_failed_total",
			Help: "Total number of rejected or rolled back balance movements",
		}, []string{"kind"}),
		movementDuration: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "movement_duration_seconds",
			Help:    "Time taken to execute a balance movement",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (c *Collector) RecordMovement(kind string, duration time.Duration, success bool) {
	if success {
		c.movementsProcessed.WithLabelValues(kind).Inc()
	} else {
		c.movementsFailed.WithLabelValues(kind).Inc()
	}

	c.movementDuration.Observe(duration.Seconds())
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
