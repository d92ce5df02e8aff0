package fixtures_test

import (
	"bytes"
	"image"
	"strings"
	"testing"

	_ "image/jpeg"
	_ "image/png"

	"travel-journal/tests/fixtures"
)

func TestGenerateImage_Dimensions(t *testing.T) {
	raw := fixtures.GenerateImage(fixtures.ImageOptions{Width: 120, Height: 80})

	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode generated image: %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	if cfg.Width != 120 || cfg.Height != 80 {
		t.Errorf("dimensions = %dx%d, want 120x80", cfg.Width, cfg.Height)
	}
}

func TestGenerateImage_JPEG(t *testing.T) {
	raw := fixtures.GenerateImage(fixtures.ImageOptions{Width: 60, Height: 40, Format: "jpeg"})

	_, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode generated image: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("format = %q, want jpeg", format)
	}
}

func TestGenerateImageDataURI(t *testing.T) {
	uri := fixtures.GenerateImageDataURI(fixtures.ImageOptions{Width: 8, Height: 8})
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("uri prefix = %q", uri[:min(len(uri), 30)])
	}
}

func TestNewEntry_Defaults(t *testing.T) {
	e := fixtures.NewEntry(fixtures.EntryOptions{})

	if e.UserID != "traveler-1" {
		t.Errorf("UserID = %q", e.UserID)
	}
	if e.Caption == "" {
		t.Error("caption is empty")
	}
	if e.Location != nil {
		t.Error("location set without WithLocation")
	}
	if e.ScreenInfo.Orientation != "portrait" {
		t.Errorf("orientation = %q", e.ScreenInfo.Orientation)
	}
}

func TestNewEntry_SharedAndLocated(t *testing.T) {
	e := fixtures.NewEntry(fixtures.EntryOptions{WithLocation: true, Shared: true})

	if e.Location == nil {
		t.Fatal("location missing")
	}
	if !e.IsShared || e.ShareID == "" {
		t.Error("share state not set")
	}
}

func TestNewEntries_DistinctCaptions(t *testing.T) {
	entries := fixtures.NewEntries(3, "traveler-2")

	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	seen := make(map[string]bool)
	for _, e := range entries {
		if e.UserID != "traveler-2" {
			t.Errorf("UserID = %q", e.UserID)
		}
		if seen[e.Caption] {
			t.Errorf("duplicate caption %q", e.Caption)
		}
		seen[e.Caption] = true
	}
}
