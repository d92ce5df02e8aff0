// Package pathutil provides helpers for extracting identifiers from URL
// paths and normalizing paths for metrics labels.
package pathutil

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
// Handlers map it to 400, keeping it distinct from a 404 for a
// well-formed ID that matches nothing.
var ErrInvalidID = errors.New("invalid id")

// ExtractID extracts and parses an integer ID from a URL path.
// It removes the specified prefix and attempts to parse the remaining
// string as a positive int64.
//
// Example:
//
//	id, err := ExtractID("/api/entries/123", "/api/entries/")
//	// Returns: 123, nil
func ExtractID(path, prefix string) (int64, error) {
	idStr := strings.TrimPrefix(path, prefix)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// ExtractIDAction splits a path of the form <prefix><id>/<action> into the
// ID and the trailing action segment. The action may be empty when the path
// is just <prefix><id>.
//
// Example:
//
//	id, action, err := ExtractIDAction("/api/entries/7/share", "/api/entries/")
//	// Returns: 7, "share", nil
func ExtractIDAction(path, prefix string) (int64, string, error) {
	rest := strings.TrimPrefix(path, prefix)
	idStr, action, _ := strings.Cut(rest, "/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, "", ErrInvalidID
	}
	if strings.Contains(action, "/") {
		return 0, "", ErrInvalidID
	}
	return id, action, nil
}
