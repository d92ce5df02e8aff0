package entity

import (
	"fmt"
	"strings"

	"travel-journal/internal/utils/text"
)

// maxCaptionLength bounds caption size to keep payloads reasonable.
const maxCaptionLength = 1024

// ValidateScreenInfo checks that the viewport metadata is usable.
// Returns a ValidationError naming the offending field.
func ValidateScreenInfo(s ScreenInfo) error {
	if s.Width <= 0 || s.Height <= 0 {
		return &ValidationError{Field: "screenInfo", Message: "width and height must be positive"}
	}
	if strings.TrimSpace(s.Orientation) == "" {
		return &ValidationError{Field: "screenInfo", Message: "orientation is required"}
	}
	return nil
}

// ValidateLocation checks that a coordinate pair is on the globe.
func ValidateLocation(l Location) error {
	if l.Lat < -90 || l.Lat > 90 {
		return &ValidationError{Field: "location", Message: "lat must be between -90 and 90"}
	}
	if l.Lng < -180 || l.Lng > 180 {
		return &ValidationError{Field: "location", Message: "lng must be between -180 and 180"}
	}
	return nil
}

// ValidateCaption rejects captions that are blank-only or oversized.
// Empty captions are allowed here; the service layer fills the default.
func ValidateCaption(caption string) error {
	if caption == "" {
		return nil
	}
	if strings.TrimSpace(caption) == "" {
		return &ValidationError{Field: "caption", Message: "cannot be blank"}
	}
	if text.CountRunes(caption) > maxCaptionLength {
		return &ValidationError{
			Field:   "caption",
			Message: fmt.Sprintf("must not exceed %d characters", maxCaptionLength),
		}
	}
	return nil
}

// ValidateImageURL checks that the image reference is either an inline data
// URI or an absolute http(s) URL. Empty values are allowed; the service
// layer substitutes the placeholder image.
func ValidateImageURL(raw string) error {
	if raw == "" {
		return nil
	}
	if strings.HasPrefix(raw, "data:image/") {
		return nil
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return nil
	}
	return &ValidationError{Field: "imageUrl", Message: "must be a data URI or an http(s) URL"}
}
