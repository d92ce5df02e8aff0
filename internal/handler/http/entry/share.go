package entry

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"travel-journal/internal/handler/http/auth"
	"travel-journal/internal/handler/http/pathutil"
	"travel-journal/internal/handler/http/respond"
	"travel-journal/internal/observability/metrics"
	entryUC "travel-journal/internal/usecase/entry"
)

// DefaultShareBaseURL is used when SHARE_BASE_URL is not configured.
const DefaultShareBaseURL = "http://localhost:8080"

type ShareHandler struct{ Svc *entryUC.Service }

// ServeHTTP dispatches POST /api/entries/{id}/share and
// POST /api/entries/{id}/unshare. Sharing returns the token and a
// ready-to-send link; resharing an entry reuses its existing token so
// old links keep working. Unsharing returns a confirmation message.
func (h ShareHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, action, err := pathutil.ExtractIDAction(r.URL.Path, "/api/entries/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var enabled bool
	switch action {
	case "share":
		enabled = true
	case "unshare":
		enabled = false
	default:
		respond.SafeError(w, http.StatusNotFound, errors.New("not found"))
		return
	}

	if principal := auth.UserFromContext(r.Context()); principal != "" {
		current, err := h.Svc.Get(r.Context(), id)
		if err != nil {
			respond.SafeError(w, statusFor(err), err)
			return
		}
		if current.UserID != principal {
			respond.Error(w, http.StatusForbidden, errors.New("not your entry"))
			return
		}
	}

	updated, err := h.Svc.SetSharing(r.Context(), id, enabled)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	metrics.RecordEntryShared(enabled)

	if !enabled {
		respond.Message(w, http.StatusOK, "sharing disabled")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{
		"shareId":  updated.ShareID,
		"shareUrl": shareBaseURL() + "/shared/" + updated.ShareID,
	})
}

func shareBaseURL() string {
	base := os.Getenv("SHARE_BASE_URL")
	if base == "" {
		base = DefaultShareBaseURL
	}
	return strings.TrimRight(base, "/")
}
