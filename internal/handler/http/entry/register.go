package entry

import (
	"net/http"

	"travel-journal/internal/handler/http/auth"
	entryUC "travel-journal/internal/usecase/entry"
)

// Register registers all entry-related HTTP handlers with the given mux.
// Owned-entry routes require authentication via the auth middleware;
// the shared view is public by design.
func Register(mux *http.ServeMux, svc *entryUC.Service) {
	mux.Handle("GET    /api/entries", auth.Authz(ListHandler{svc}))
	mux.Handle("POST   /api/entries", auth.Authz(CreateHandler{svc}))

	mux.Handle("GET    /api/entries/", auth.Authz(GetHandler{svc}))
	mux.Handle("DELETE /api/entries/", auth.Authz(DeleteHandler{svc}))
	mux.Handle("POST   /api/entries/", auth.Authz(ShareHandler{svc}))

	mux.Handle("GET    /api/shared/", SharedHandler{svc})
}
