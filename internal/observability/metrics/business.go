package metrics

import (
	"time"
)

// RecordEntryCreated records a successfully created journal entry.
func RecordEntryCreated() {
	EntriesCreatedTotal.Inc()
}

// RecordEntryDeleted records a deleted journal entry.
func RecordEntryDeleted() {
	EntriesDeletedTotal.Inc()
}

// RecordEntryShared records a sharing state change.
func RecordEntryShared(enabled bool) {
	action := "share"
	if !enabled {
		action = "unshare"
	}
	EntriesSharedTotal.WithLabelValues(action).Inc()
}

// RecordSharedView records an entry served through a public share link.
func RecordSharedView() {
	SharedViewsTotal.Inc()
}

// RecordImageNormalized records a successful image normalization with
// its duration and output size.
func RecordImageNormalized(duration time.Duration, outputBytes int) {
	ImageNormalizeTotal.WithLabelValues("success").Inc()
	ImageNormalizeDuration.Observe(duration.Seconds())
	ImageNormalizeOutputSize.Observe(float64(outputBytes))
}

// RecordImageNormalizeFailed records a failed image normalization.
func RecordImageNormalizeFailed(duration time.Duration) {
	ImageNormalizeTotal.WithLabelValues("failure").Inc()
	ImageNormalizeDuration.Observe(duration.Seconds())
}

// UpdateEntriesTotal updates the total count of entries in the store.
// This gauge should be updated periodically to reflect the current state.
func UpdateEntriesTotal(count int) {
	EntriesTotal.Set(float64(count))
}
