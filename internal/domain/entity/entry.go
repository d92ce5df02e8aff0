// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Entry, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// Entry represents a single travel-journal record owned by a user.
// It combines an inline-encoded photo with a caption, optional geolocation,
// and the capturing device's viewport metadata.
type Entry struct {
	ID         int64
	UserID     string
	Caption    string
	ImageURL   string
	Location   *Location
	ScreenInfo ScreenInfo
	CreatedAt  time.Time

	// ShareID is assigned on the first share and is never cleared afterwards;
	// unsharing only flips IsShared.
	ShareID  string
	IsShared bool
}

// Location is a geographic coordinate attached to an entry.
// A nil *Location on an Entry means no location was captured.
type Location struct {
	Lat float64
	Lng float64
}

// ScreenInfo describes the capturing device's viewport at creation time.
// Unlike Location it is always present on a persisted entry.
type ScreenInfo struct {
	Width       int
	Height      int
	Orientation string
}

// Clone returns a deep copy of the entry so callers cannot mutate stored state.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	out := *e
	if e.Location != nil {
		loc := *e.Location
		out.Location = &loc
	}
	return &out
}
