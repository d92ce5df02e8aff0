// Package entry provides use cases for managing travel-journal entries.
// It implements business logic for creating, listing, deleting, and sharing
// entries, including validation and interaction with the entry repository.
package entry

import "errors"

// Sentinel errors for entry use case operations.
var (
	// ErrEntryNotFound indicates that the requested entry was not found.
	// It also covers share-token lookups: an unknown token and a known token
	// whose sharing is disabled are deliberately indistinguishable.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrInvalidEntryID indicates that the provided entry ID is invalid.
	// Entry IDs must be positive integers. Handlers map this to 400,
	// distinct from the 404 of ErrEntryNotFound.
	ErrInvalidEntryID = errors.New("invalid entry ID")
)
