// Package metrics mirrors entity creations and business-rule rejections into
// Prometheus counters and serves the scrape endpoint.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the interface handlers record through.
type Recorder interface {
	RecordEntityCreated(kind, discriminant string)
	RecordRejection(kind, rule string)
}

// Collector implements Recorder on a Prometheus registry.
type Collector struct {
	entitiesCreated *prometheus.CounterVec
	rejections      *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		entitiesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "guardian_entities_created_total",
			Help: "Entities created, by kind and discriminant.",
		}, []string{"kind", "discriminant"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "guardian_rejections_total",
			Help: "Business-rule rejections, by entity kind and rule.",
		}, []string{"kind", "rule"}),
	}

	reg.MustRegister(c.entitiesCreated, c.rejections)

	return c
}

// RecordEntityCreated counts one entity creation.
func (c *Collector) RecordEntityCreated(kind, discriminant string) {
	c.entitiesCreated.WithLabelValues(kind, discriminant).Inc()
}

// RecordRejection counts one rejected mutation.
func (c *Collector) RecordRejection(kind, rule string) {
	c.rejections.WithLabelValues(kind, rule).Inc()
}

// Handler returns the Prometheus scrape handler.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
