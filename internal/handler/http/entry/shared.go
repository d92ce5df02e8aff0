package entry

import (
	"net/http"
	"strings"

	"travel-journal/internal/handler/http/respond"
	"travel-journal/internal/observability/metrics"
	entryUC "travel-journal/internal/usecase/entry"
)

type SharedHandler struct{ Svc *entryUC.Service }

// ServeHTTP serves GET /api/shared/{token}, the public view behind a
// share link. No authentication. Unknown tokens and unshared entries
// both answer 404 so the link alone reveals nothing.
func (h SharedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.URL.Path, "/api/shared/")
	token = strings.TrimSuffix(token, "/")

	e, err := h.Svc.GetByShareToken(r.Context(), token)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	metrics.RecordSharedView()
	respond.JSON(w, http.StatusOK, toDTO(e))
}
