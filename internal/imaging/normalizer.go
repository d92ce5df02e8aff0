// Package imaging implements the image normalization pipeline: decode an
// arbitrary user-supplied image, bound its dimensions, compress it, and
// produce a self-contained data URI suitable for direct storage and
// rendering without a separate fetch.
//
// The transform is pure and operates only on in-memory bytes; callers may
// run it off the request goroutine, but a submission is accepted only after
// it has completed or failed.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"time"

	// Register stdlib codecs for image.Decode.
	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"

	"travel-journal/internal/observability/metrics"
)

const (
	// DefaultMaxDimension bounds the larger of width/height after resizing.
	DefaultMaxDimension = 800

	// jpegQuality is the fixed lossy quality factor used on re-encode.
	jpegQuality = 70
)

// DecodeError reports a corrupt or unsupported input image.
// It is terminal for the current submission attempt.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode image: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports a failure while re-encoding the resized image.
// It is terminal for the current submission attempt.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode image: %v", e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// Normalize decodes raw, scales it so that the larger of width/height does
// not exceed maxDim (aspect ratio preserved, never upscaled), re-encodes it
// as JPEG at the fixed quality factor, and returns the result as a
// data:image/jpeg;base64 URI.
//
// maxDim values <= 0 fall back to DefaultMaxDimension. Images already
// within bounds keep their dimensions but are still re-encoded.
func Normalize(raw []byte, maxDim int) (string, error) {
	if maxDim <= 0 {
		maxDim = DefaultMaxDimension
	}
	start := time.Now()

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		metrics.RecordImageNormalizeFailed(time.Since(start))
		return "", &DecodeError{Err: err}
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	nw, nh := boundedSize(w, h, maxDim)

	out := src
	if nw != w || nh != h {
		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		out = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: jpegQuality}); err != nil {
		metrics.RecordImageNormalizeFailed(time.Since(start))
		return "", &EncodeError{Err: err}
	}

	uri := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	metrics.RecordImageNormalized(time.Since(start), len(uri))
	return uri, nil
}

// boundedSize computes the target dimensions: unchanged when already within
// maxDim, otherwise scaled down proportionally so the larger side equals
// maxDim. Rounding never produces a zero dimension.
func boundedSize(w, h, maxDim int) (int, int) {
	if w <= maxDim && h <= maxDim {
		return w, h
	}
	if w >= h {
		nh := h * maxDim / w
		if nh < 1 {
			nh = 1
		}
		return maxDim, nh
	}
	nw := w * maxDim / h
	if nw < 1 {
		nw = 1
	}
	return nw, maxDim
}
