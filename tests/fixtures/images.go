// Package fixtures provides reusable test data generators for integration
// tests. It eliminates test data duplication and keeps test content
// consistent across test suites.
package fixtures

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
)

// ImageOptions configures a generated test image.
type ImageOptions struct {
	// Width and Height are the pixel dimensions of the image.
	Width  int
	Height int

	// Format selects the encoding: "png" or "jpeg". Defaults to "png".
	Format string
}

// GenerateImage produces an encoded test image with a simple gradient fill
// so that JPEG re-encoding has realistic content to compress.
//
// Example:
//
//	raw := fixtures.GenerateImage(fixtures.ImageOptions{Width: 1200, Height: 900})
func GenerateImage(opts ImageOptions) []byte {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(x * 255 / max(opts.Width, 1)),
				G: uint8(y * 255 / max(opts.Height, 1)),
				B: 128,
				A: 255,
			})
		}
	}

	var buf bytes.Buffer
	switch opts.Format {
	case "jpeg":
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
			panic(fmt.Sprintf("fixtures: encode jpeg: %v", err))
		}
	default:
		if err := png.Encode(&buf, img); err != nil {
			panic(fmt.Sprintf("fixtures: encode png: %v", err))
		}
	}
	return buf.Bytes()
}

// GenerateSmallImage returns a PNG already below the resize bound,
// useful for asserting that small submissions keep their dimensions.
func GenerateSmallImage() []byte {
	return GenerateImage(ImageOptions{Width: 64, Height: 48})
}

// GenerateLargeImage returns a PNG well above the resize bound on both
// axes, useful for exercising the downscaling path.
func GenerateLargeImage() []byte {
	return GenerateImage(ImageOptions{Width: 1600, Height: 1200})
}

// GenerateImageDataURI wraps a generated image in a base64 data URI, the
// form in which clients submit photos.
func GenerateImageDataURI(opts ImageOptions) string {
	mime := "image/png"
	if opts.Format == "jpeg" {
		mime = "image/jpeg"
	}
	raw := GenerateImage(opts)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw)
}
