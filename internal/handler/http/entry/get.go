package entry

import (
	"errors"
	"net/http"

	"travel-journal/internal/handler/http/auth"
	"travel-journal/internal/handler/http/pathutil"
	"travel-journal/internal/handler/http/respond"
	entryUC "travel-journal/internal/usecase/entry"
)

type GetHandler struct{ Svc *entryUC.Service }

// ServeHTTP fetches a single entry by ID. A non-numeric or non-positive
// ID is 400; a well-formed ID with no entry behind it is 404.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/entries/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	e, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	if principal := auth.UserFromContext(r.Context()); principal != "" && e.UserID != principal {
		respond.Error(w, http.StatusForbidden, errors.New("not your entry"))
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(e))
}

// statusFor maps use case errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entryUC.ErrInvalidEntryID):
		return http.StatusBadRequest
	case errors.Is(err, entryUC.ErrEntryNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
