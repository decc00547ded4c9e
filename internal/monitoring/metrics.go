// Package monitoring provides Prometheus metrics for the API server.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the instruments updated by the request pipeline. One instance
// is created at startup and shared by every handler.
type Metrics struct {
	// RequestsTotal counts handled HTTP requests by method, route and status.
	RequestsTotal *prometheus.CounterVec
	// AuthDenialsTotal counts denied authentication attempts by reason. The
	// reason labels stay server-side; responses remain uniform.
	AuthDenialsTotal *prometheus.CounterVec
}

// NewMetrics creates and registers the metric instruments on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "syllabus_http_requests_total",
				Help: "Total number of handled HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		AuthDenialsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "syllabus_auth_denials_total",
				Help: "Total number of denied authentication attempts",
			},
			[]string{"reason"},
		),
	}
}
