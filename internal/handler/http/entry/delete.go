package entry

import (
	"errors"
	"net/http"

	"travel-journal/internal/handler/http/auth"
	"travel-journal/internal/handler/http/pathutil"
	"travel-journal/internal/handler/http/respond"
	"travel-journal/internal/observability/metrics"
	entryUC "travel-journal/internal/usecase/entry"
)

type DeleteHandler struct{ Svc *entryUC.Service }

// ServeHTTP deletes an entry. Deleting an already-deleted or unknown
// entry is 404, so a double delete is visible to the client.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/entries/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if principal := auth.UserFromContext(r.Context()); principal != "" {
		e, err := h.Svc.Get(r.Context(), id)
		if err != nil {
			respond.SafeError(w, statusFor(err), err)
			return
		}
		if e.UserID != principal {
			respond.Error(w, http.StatusForbidden, errors.New("not your entry"))
			return
		}
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, entryUC.ErrEntryNotFound) {
			respond.SafeError(w, http.StatusNotFound, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	metrics.RecordEntryDeleted()
	respond.Message(w, http.StatusOK, "entry deleted")
}
