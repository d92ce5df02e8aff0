// Package capture coordinates the two mutually exclusive image-acquisition
// modes (picking an existing file and live camera capture) into one
// normalized image handed to the imaging pipeline.
package capture

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"travel-journal/internal/imaging"
)

// State is the session's acquisition state.
type State int

const (
	StateIdle State = iota
	StateFilePicking
	StateCameraActive
	StateHasImage
)

// String returns the state name for logs and errors.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFilePicking:
		return "file_picking"
	case StateCameraActive:
		return "camera_active"
	case StateHasImage:
		return "has_image"
	default:
		return "unknown"
	}
}

// Sentinel errors for capture session operations.
var (
	// ErrCameraBusy indicates the camera device is already held by an
	// active acquisition; it is a singly-owned exclusive resource.
	ErrCameraBusy = errors.New("camera device busy")

	// ErrNoActiveCamera indicates a capture or cancel was attempted while
	// the camera was not running.
	ErrNoActiveCamera = errors.New("no active camera")

	// ErrNotPickingFile indicates file bytes arrived outside file-pick mode.
	ErrNotPickingFile = errors.New("session is not picking a file")
)

// CameraDevice abstracts the exclusive capture hardware.
// Start acquires the device, Capture yields one still frame at native
// resolution, and Stop releases the device. Stop must be safe to call after
// a failed Capture.
type CameraDevice interface {
	Start(ctx context.Context) error
	Capture(ctx context.Context) ([]byte, error)
	Stop() error
}

// Session reconciles file-pick and camera acquisition into one normalized
// image. It owns the camera handle for the duration of camera mode and
// guarantees the device is stopped on every exit path: successful capture,
// explicit cancel, capture failure, and Close.
type Session struct {
	mu sync.Mutex

	state      State
	camera     CameraDevice
	cameraHeld bool
	image      string // normalized data URI, valid in StateHasImage

	maxDim    int
	normalize func(raw []byte, maxDim int) (string, error)
}

// Option configures a Session.
type Option func(*Session)

// WithMaxDimension overrides the normalizer's dimension bound.
func WithMaxDimension(maxDim int) Option {
	return func(s *Session) { s.maxDim = maxDim }
}

// WithNormalizer swaps the normalize function, mainly for tests.
func WithNormalizer(fn func(raw []byte, maxDim int) (string, error)) Option {
	return func(s *Session) { s.normalize = fn }
}

// NewSession creates an idle capture session bound to the given camera
// device. The device is not acquired until StartCamera.
func NewSession(camera CameraDevice, opts ...Option) *Session {
	s := &Session{
		state:     StateIdle,
		camera:    camera,
		maxDim:    imaging.DefaultMaxDimension,
		normalize: imaging.Normalize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current acquisition state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Image returns the normalized image and whether one is held.
func (s *Session) Image() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.image, s.state == StateHasImage
}

// BeginFilePick enters file-pick mode. Entering it while a camera is live
// or a preview is pending discards that other acquisition first.
func (s *Session) BeginFilePick() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.resetLocked(); err != nil {
		return err
	}
	s.state = StateFilePicking
	return nil
}

// ProvideFile normalizes the picked file's bytes. On success the session
// holds the image; on normalization failure it stays in file-pick mode so
// the user can pick again.
func (s *Session) ProvideFile(raw []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateFilePicking {
		return "", fmt.Errorf("%w (state %s)", ErrNotPickingFile, s.state)
	}

	uri, err := s.normalize(raw, s.maxDim)
	if err != nil {
		return "", fmt.Errorf("normalize picked file: %w", err)
	}
	s.image = uri
	s.state = StateHasImage
	return uri, nil
}

// StartCamera acquires the camera device and enters live-capture mode.
// Any pending preview from the other mode is discarded. Fails with
// ErrCameraBusy if the device is already held.
func (s *Session) StartCamera(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cameraHeld {
		return ErrCameraBusy
	}
	if err := s.resetLocked(); err != nil {
		return err
	}

	if err := s.camera.Start(ctx); err != nil {
		return fmt.Errorf("start camera: %w", err)
	}
	s.cameraHeld = true
	s.state = StateCameraActive
	return nil
}

// CaptureFrame grabs one still frame, releases the camera, and normalizes
// the frame. The device is stopped before normalization runs, so it is
// released whether or not the pipeline succeeds.
func (s *Session) CaptureFrame(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateCameraActive {
		return "", ErrNoActiveCamera
	}

	frame, captureErr := s.camera.Capture(ctx)
	stopErr := s.releaseCameraLocked()
	s.state = StateIdle

	if captureErr != nil {
		return "", fmt.Errorf("capture frame: %w", captureErr)
	}
	if stopErr != nil {
		return "", fmt.Errorf("stop camera: %w", stopErr)
	}

	uri, err := s.normalize(frame, s.maxDim)
	if err != nil {
		return "", fmt.Errorf("normalize captured frame: %w", err)
	}
	s.image = uri
	s.state = StateHasImage
	return uri, nil
}

// CancelCamera releases the device and returns to idle without capturing.
func (s *Session) CancelCamera() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateCameraActive {
		return ErrNoActiveCamera
	}
	err := s.releaseCameraLocked()
	s.state = StateIdle
	return err
}

// RemoveImage discards a held image and returns to idle.
func (s *Session) RemoveImage() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateHasImage {
		s.image = ""
		s.state = StateIdle
	}
}

// Close tears the session down, releasing the camera if it is still held.
// In-flight previews are discarded.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resetLocked()
}

// resetLocked discards any pending preview, releases a held camera, and
// returns the session to idle. Leaving the state transition here keeps a
// discarded image from still being reported after a later step fails.
// Callers must hold s.mu.
func (s *Session) resetLocked() error {
	s.image = ""
	s.state = StateIdle
	if s.cameraHeld {
		return s.releaseCameraLocked()
	}
	return nil
}

// releaseCameraLocked stops the device exactly once per acquisition.
// Callers must hold s.mu.
func (s *Session) releaseCameraLocked() error {
	if !s.cameraHeld {
		return nil
	}
	s.cameraHeld = false
	return s.camera.Stop()
}
