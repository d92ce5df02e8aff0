// Package metrics provides centralized Prometheus business metrics for
// the journal service. HTTP transport metrics live with the HTTP layer.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business metrics track application-specific operations
var (
	// EntriesTotal tracks the total number of journal entries in the store
	EntriesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "journal_entries_total",
			Help: "Total number of journal entries in the store",
		},
	)

	// EntriesCreatedTotal counts journal entries created since start
	EntriesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "journal_entries_created_total",
			Help: "Total number of journal entries created",
		},
	)

	// EntriesDeletedTotal counts journal entries deleted since start
	EntriesDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "journal_entries_deleted_total",
			Help: "Total number of journal entries deleted",
		},
	)

	// EntriesSharedTotal counts sharing state changes by action
	EntriesSharedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journal_entries_shared_total",
			Help: "Total number of entry sharing state changes",
		},
		[]string{"action"}, // action: share | unshare
	)

	// SharedViewsTotal counts public views served through share links
	SharedViewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "journal_shared_views_total",
			Help: "Total number of entries served through share links",
		},
	)

	// ImageNormalizeTotal counts image normalization attempts by result
	ImageNormalizeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journal_image_normalize_total",
			Help: "Total number of image normalization attempts",
		},
		[]string{"result"}, // result: success | failure
	)

	// ImageNormalizeDuration measures time to normalize an uploaded image
	ImageNormalizeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "journal_image_normalize_duration_seconds",
			Help:    "Time taken to normalize an uploaded image",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
		},
	)

	// ImageNormalizeOutputSize measures normalized image size in bytes
	ImageNormalizeOutputSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "journal_image_normalize_output_bytes",
			Help: "Normalized image size in bytes",
			Buckets: []float64{
				1024, 4096, 16384, 65536, 262144, 1048576, 4194304,
			},
		},
	)
)
