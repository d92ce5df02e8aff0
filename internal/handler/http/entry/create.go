package entry

import (
	"encoding/json"
	"errors"
	"net/http"

	"travel-journal/internal/domain/entity"
	"travel-journal/internal/handler/http/auth"
	"travel-journal/internal/handler/http/respond"
	"travel-journal/internal/observability/metrics"
	entryUC "travel-journal/internal/usecase/entry"
)

type CreateHandler struct{ Svc *entryUC.Service }

// ServeHTTP creates a new journal entry for the authenticated user.
// The userId field may be omitted, in which case the authenticated
// principal is used; a mismatching userId is rejected with 403.
// Validation failures list every bad field in one response.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID      string         `json:"userId"`
		Caption     string         `json:"caption"`
		CaptionText string         `json:"captionText"`
		ImageURL    string         `json:"imageUrl"`
		Location    *LocationDTO   `json:"location"`
		ScreenInfo  *ScreenInfoDTO `json:"screenInfo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("malformed request body"))
		return
	}

	principal := auth.UserFromContext(r.Context())
	if req.UserID == "" {
		req.UserID = principal
	}
	if principal != "" && req.UserID != principal {
		respond.Error(w, http.StatusForbidden,
			errors.New("cannot create entries for another user"))
		return
	}

	in := entryUC.CreateInput{
		UserID:      req.UserID,
		Caption:     req.Caption,
		CaptionText: req.CaptionText,
		ImageURL:    req.ImageURL,
	}
	if req.Location != nil {
		in.Location = &entity.Location{Lat: req.Location.Lat, Lng: req.Location.Lng}
	}
	if req.ScreenInfo != nil {
		in.ScreenInfo = &entity.ScreenInfo{
			Width:       req.ScreenInfo.Width,
			Height:      req.ScreenInfo.Height,
			Orientation: req.ScreenInfo.Orientation,
		}
	}

	created, err := h.Svc.Create(r.Context(), in)
	if err != nil {
		var verrs entity.ValidationErrors
		if errors.As(err, &verrs) {
			respond.Validation(w, verrs)
			return
		}
		var verr *entity.ValidationError
		if errors.As(err, &verr) {
			respond.Validation(w, entity.ValidationErrors{verr})
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	metrics.RecordEntryCreated()
	respond.JSON(w, http.StatusCreated, toDTO(created))
}
