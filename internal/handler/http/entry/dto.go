// Package entry provides HTTP handlers for journal entry endpoints.
// It includes handlers for creating, listing, fetching, deleting, and
// sharing entries, plus the public shared-entry view.
package entry

import (
	"time"

	"travel-journal/internal/domain/entity"
)

// LocationDTO represents the JSON structure for GPS coordinates.
type LocationDTO struct {
	Lat float64 `json:"lat" example:"35.3606"`
	Lng float64 `json:"lng" example:"138.7274"`
}

// ScreenInfoDTO represents the JSON structure for client display metadata.
type ScreenInfoDTO struct {
	Width       int    `json:"width" example:"390"`
	Height      int    `json:"height" example:"844"`
	Orientation string `json:"orientation" example:"portrait"`
}

// DTO represents the JSON structure for entry data transfer.
type DTO struct {
	ID         int64         `json:"id" example:"1"`
	UserID     string        `json:"userId" example:"traveler-1"`
	Caption    string        `json:"caption" example:"Sunrise over the bay"`
	ImageURL   string        `json:"imageUrl" example:"data:image/jpeg;base64,..."`
	Location   *LocationDTO  `json:"location,omitempty"`
	ScreenInfo ScreenInfoDTO `json:"screenInfo"`
	CreatedAt  time.Time     `json:"createdAt" example:"2026-08-30T12:00:00Z"`
	ShareID    string        `json:"shareId,omitempty" example:"3f2a9c"`
	IsShared   bool          `json:"isShared" example:"false"`
}

func toDTO(e *entity.Entry) DTO {
	out := DTO{
		ID:       e.ID,
		UserID:   e.UserID,
		Caption:  e.Caption,
		ImageURL: e.ImageURL,
		ScreenInfo: ScreenInfoDTO{
			Width:       e.ScreenInfo.Width,
			Height:      e.ScreenInfo.Height,
			Orientation: e.ScreenInfo.Orientation,
		},
		CreatedAt: e.CreatedAt,
		ShareID:   e.ShareID,
		IsShared:  e.IsShared,
	}
	if e.Location != nil {
		out.Location = &LocationDTO{Lat: e.Location.Lat, Lng: e.Location.Lng}
	}
	return out
}
