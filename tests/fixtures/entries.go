package fixtures

import (
	"fmt"

	"travel-journal/internal/domain/entity"
)

// EntryOptions configures a generated journal entry.
type EntryOptions struct {
	// UserID is the owning user. Defaults to "traveler-1".
	UserID string

	// Caption overrides the generated caption when non-empty.
	Caption string

	// WithLocation attaches a coordinate to the entry.
	WithLocation bool

	// Shared marks the entry as shared with a fixed token.
	Shared bool
}

// NewEntry builds an unvalidated entry with sensible defaults. The entry has
// no ID or timestamp; the repository assigns both on create.
func NewEntry(opts EntryOptions) *entity.Entry {
	userID := opts.UserID
	if userID == "" {
		userID = "traveler-1"
	}
	caption := opts.Caption
	if caption == "" {
		caption = "Sunset over the harbor"
	}

	e := &entity.Entry{
		UserID:   userID,
		Caption:  caption,
		ImageURL: GenerateImageDataURI(ImageOptions{Width: 32, Height: 24}),
		ScreenInfo: entity.ScreenInfo{
			Width:       1170,
			Height:      2532,
			Orientation: "portrait",
		},
	}

	if opts.WithLocation {
		e.Location = &entity.Location{Lat: 35.6586, Lng: 139.7454}
	}
	if opts.Shared {
		e.IsShared = true
		e.ShareID = "fixture-share-token"
	}
	return e
}

// NewEntries builds n entries for the same user with distinct captions.
func NewEntries(n int, userID string) []*entity.Entry {
	entries := make([]*entity.Entry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, NewEntry(EntryOptions{
			UserID:  userID,
			Caption: fmt.Sprintf("Trip photo %d", i+1),
		}))
	}
	return entries
}
