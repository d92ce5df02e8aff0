// Package memory provides a thread-safe in-memory implementation of the
// entry repository. It is the default backing store: single-process,
// memory-resident, no persistence across restarts.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"travel-journal/internal/domain/entity"
)

// EntryRepo is a mutex-guarded map store with a monotonically increasing
// ID counter starting at 1.
//
// All mutations (Create/Delete/UpdateSharing) take the write lock so the
// counter and the map stay consistent under concurrent requests; reads take
// the read lock and may run concurrently with each other.
type EntryRepo struct {
	mu      sync.RWMutex
	entries map[int64]*entity.Entry
	nextID  int64

	// now is swappable for deterministic timestamps in tests.
	now func() time.Time
}

// NewEntryRepo creates an empty in-memory entry repository.
func NewEntryRepo() *EntryRepo {
	return &EntryRepo{
		entries: make(map[int64]*entity.Entry),
		nextID:  1,
		now:     time.Now,
	}
}

// Create assigns the next ID and the current timestamp, then stores a copy.
// The passed entry is updated in place with ID and CreatedAt.
func (r *EntryRepo) Create(_ context.Context, e *entity.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e.ID = r.nextID
	r.nextID++
	e.CreatedAt = r.now()
	r.entries[e.ID] = e.Clone()
	return nil
}

// Get returns a copy of the entry, or (nil, nil) when absent.
func (r *EntryRepo) Get(_ context.Context, id int64) (*entity.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.entries[id].Clone(), nil
}

// ListByUser filters by owner and sorts by CreatedAt descending.
// Iteration runs over ascending IDs so that a stable sort preserves
// insertion order for entries created within the same timestamp.
func (r *EntryRepo) ListByUser(_ context.Context, userID string) ([]*entity.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int64, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*entity.Entry, 0)
	for _, id := range ids {
		if e := r.entries[id]; e.UserID == userID {
			out = append(out, e.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetByShareToken scans for an entry with a matching token and sharing
// enabled. A token that exists but is currently unshared is reported the
// same as an unknown token.
func (r *EntryRepo) GetByShareToken(_ context.Context, token string) (*entity.Entry, error) {
	if token == "" {
		return nil, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.ShareID == token && e.IsShared {
			return e.Clone(), nil
		}
	}
	return nil, nil
}

// Delete removes the entry if present; absent IDs yield entity.ErrNotFound.
func (r *EntryRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return entity.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

// UpdateSharing applies a partial update of the sharing fields.
// An empty shareID leaves the stored token untouched, which keeps tokens
// stable across unshare/reshare cycles.
func (r *EntryRepo) UpdateSharing(_ context.Context, id int64, isShared bool, shareID string) (*entity.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	e.IsShared = isShared
	if shareID != "" {
		e.ShareID = shareID
	}
	return e.Clone(), nil
}

// Count returns the number of stored entries.
func (r *EntryRepo) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries), nil
}
