// Package repository declares the persistence contracts consumed by the use
// case layer. Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"travel-journal/internal/domain/entity"
)

// EntryRepository is the persistence contract for journal entries.
//
// The in-memory adapter is the default backing store; a durable backend can
// be swapped in behind this interface without touching the service layer.
type EntryRepository interface {
	// Create assigns the next ID and the creation timestamp, then stores the
	// entry. The passed entry is updated in place with ID and CreatedAt.
	Create(ctx context.Context, e *entity.Entry) error

	// Get retrieves an entry by ID.
	// Returns (nil, nil) if the entry is not found.
	Get(ctx context.Context, id int64) (*entity.Entry, error)

	// ListByUser retrieves all entries owned by userID, ordered by CreatedAt
	// descending. Ties in CreatedAt keep insertion order. An empty slice is a
	// valid result.
	ListByUser(ctx context.Context, userID string) ([]*entity.Entry, error)

	// GetByShareToken retrieves the entry whose ShareID equals token and
	// whose sharing is currently enabled. Returns (nil, nil) otherwise.
	GetByShareToken(ctx context.Context, token string) (*entity.Entry, error)

	// Delete removes the entry. Returns entity.ErrNotFound if it is absent,
	// so a second delete of the same ID reports not-found rather than success.
	Delete(ctx context.Context, id int64) error

	// UpdateSharing sets the sharing flag and, when shareID is non-empty,
	// the share token. All other fields are untouched.
	// Returns the updated entry, or entity.ErrNotFound if the ID is absent.
	UpdateSharing(ctx context.Context, id int64, isShared bool, shareID string) (*entity.Entry, error)

	// Count returns the number of stored entries. Used by health checks and
	// the entries_total gauge.
	Count(ctx context.Context) (int, error)
}
