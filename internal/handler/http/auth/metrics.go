package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// authRequestsTotal counts authentication requests by provider and result.
	authRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_requests_total",
			Help: "Total authentication requests by provider and result",
		},
		[]string{"provider", "result"}, // result: success | failure
	)

	// authDuration tracks authentication duration by provider.
	authDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "auth_duration_seconds",
			Help:    "Authentication duration by provider",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
		[]string{"provider"},
	)
)

// RecordAuthRequest records an authentication request.
func RecordAuthRequest(provider, result string) {
	authRequestsTotal.WithLabelValues(provider, result).Inc()
}

// RecordAuthDuration records authentication duration.
func RecordAuthDuration(provider string, durationSeconds float64) {
	authDuration.WithLabelValues(provider).Observe(durationSeconds)
}
