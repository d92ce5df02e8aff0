package entry

import (
	"errors"
	"net/http"

	"travel-journal/internal/handler/http/auth"
	"travel-journal/internal/handler/http/respond"
	entryUC "travel-journal/internal/usecase/entry"
)

type ListHandler struct{ Svc *entryUC.Service }

// ServeHTTP lists the user's entries, most recent first. The userId
// query parameter defaults to the authenticated principal; requesting
// another user's entries is rejected with 403.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal := auth.UserFromContext(r.Context())

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		userID = principal
	}
	if userID == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("userId is required"))
		return
	}
	if principal != "" && userID != principal {
		respond.Error(w, http.StatusForbidden,
			errors.New("cannot list entries of another user"))
		return
	}

	entries, err := h.Svc.ListByUser(r.Context(), userID)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	// Always an array, never null.
	out := make([]DTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toDTO(e))
	}
	respond.JSON(w, http.StatusOK, out)
}
