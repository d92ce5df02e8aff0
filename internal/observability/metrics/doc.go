// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes journal business metrics including:
//   - Entry lifecycle metrics (created, deleted, shared)
//   - Share link view counts
//   - Image normalization performance
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "travel-journal/internal/observability/metrics"
//
//	start := time.Now()
//	uri, err := imaging.Normalize(raw, 0)
//	if err != nil {
//	    metrics.RecordImageNormalizeFailed(time.Since(start))
//	    return err
//	}
//	metrics.RecordImageNormalized(time.Since(start), len(uri))
package metrics
