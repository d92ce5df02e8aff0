package entry

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"travel-journal/internal/domain/entity"
	"travel-journal/internal/repository"
)

// DefaultCaption is stored when a submission carries neither caption field.
const DefaultCaption = "My travel memory"

// PlaceholderImage is a 1x1 transparent GIF, stored when a submission
// carries no image so rendering never needs a separate fetch.
const PlaceholderImage = "data:image/gif;base64,R0lGODlhAQABAIAAAAAAAP///yH5BAEAAAAALAAAAAABAAEAAAIBRAA7"

// CreateInput represents the input parameters for creating a new entry.
// Caption and CaptionText are alternates from different client forms; they
// are resolved into one canonical caption before validation.
type CreateInput struct {
	UserID      string
	Caption     string
	CaptionText string
	ImageURL    string
	Location    *entity.Location
	ScreenInfo  *entity.ScreenInfo
}

// Service provides entry management use cases.
// It handles business logic for entry operations and delegates persistence
// to the repository.
type Service struct {
	Repo repository.EntryRepository

	// NewShareToken generates share tokens; defaults to UUID v4.
	// Swappable for deterministic tests.
	NewShareToken func() string
}

func (s *Service) shareToken() string {
	if s.NewShareToken != nil {
		return s.NewShareToken()
	}
	return uuid.NewString()
}

// Create validates the submission, fills defaults, and persists the entry.
// Validation happens entirely before any repository mutation: on failure a
// ValidationErrors listing every bad field is returned and nothing is stored.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Entry, error) {
	var verrs entity.ValidationErrors

	if in.UserID == "" {
		verrs = append(verrs, &entity.ValidationError{Field: "userId", Message: "is required"})
	}
	if in.ScreenInfo == nil {
		verrs = append(verrs, &entity.ValidationError{Field: "screenInfo", Message: "is required"})
	} else if err := entity.ValidateScreenInfo(*in.ScreenInfo); err != nil {
		var ve *entity.ValidationError
		if errors.As(err, &ve) {
			verrs = append(verrs, ve)
		}
	}

	// Resolve the caption alternates into one canonical value.
	caption := in.Caption
	if caption == "" {
		caption = in.CaptionText
	}
	if err := entity.ValidateCaption(caption); err != nil {
		var ve *entity.ValidationError
		if errors.As(err, &ve) {
			verrs = append(verrs, ve)
		}
	}
	if caption == "" {
		caption = DefaultCaption
	}

	if in.Location != nil {
		if err := entity.ValidateLocation(*in.Location); err != nil {
			var ve *entity.ValidationError
			if errors.As(err, &ve) {
				verrs = append(verrs, ve)
			}
		}
	}

	imageURL := in.ImageURL
	if err := entity.ValidateImageURL(imageURL); err != nil {
		var ve *entity.ValidationError
		if errors.As(err, &ve) {
			verrs = append(verrs, ve)
		}
	}
	if imageURL == "" {
		imageURL = PlaceholderImage
	}

	if len(verrs) > 0 {
		return nil, verrs
	}

	e := &entity.Entry{
		UserID:   in.UserID,
		Caption:  caption,
		ImageURL: imageURL,
		Location: in.Location,
	}
	e.ScreenInfo = *in.ScreenInfo

	if err := s.Repo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	return e, nil
}

// ListByUser retrieves the user's entries ordered most recent first.
// An empty result is valid, not an error.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]*entity.Entry, error) {
	if userID == "" {
		return nil, &entity.ValidationError{Field: "userId", Message: "is required"}
	}
	entries, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// Get retrieves a single entry by its ID.
// Returns ErrInvalidEntryID if the ID is not positive.
// Returns ErrEntryNotFound if the entry does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Entry, error) {
	if id <= 0 {
		return nil, ErrInvalidEntryID
	}
	e, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	if e == nil {
		return nil, ErrEntryNotFound
	}
	return e, nil
}

// Delete removes an entry by its ID. Deletion is unconditional; a second
// delete of the same ID yields ErrEntryNotFound, not success.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidEntryID
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrEntryNotFound
		}
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// SetSharing toggles public sharing for an entry and returns the updated
// record. Enabling generates a share token only when none exists yet;
// an existing token is reused. Disabling clears the flag but keeps the
// token, so resharing hands out the same link.
func (s *Service) SetSharing(ctx context.Context, id int64, enabled bool) (*entity.Entry, error) {
	if id <= 0 {
		return nil, ErrInvalidEntryID
	}

	current, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	if current == nil {
		return nil, ErrEntryNotFound
	}

	shareID := ""
	if enabled && current.ShareID == "" {
		shareID = s.shareToken()
	}

	updated, err := s.Repo.UpdateSharing(ctx, id, enabled, shareID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("update sharing: %w", err)
	}
	return updated, nil
}

// GetByShareToken retrieves an entry through its public share token.
// Unknown tokens and tokens whose entry is currently unshared both yield
// ErrEntryNotFound so existence is never leaked.
func (s *Service) GetByShareToken(ctx context.Context, token string) (*entity.Entry, error) {
	if token == "" {
		return nil, ErrEntryNotFound
	}
	e, err := s.Repo.GetByShareToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("get entry by share token: %w", err)
	}
	if e == nil {
		return nil, ErrEntryNotFound
	}
	return e, nil
}
