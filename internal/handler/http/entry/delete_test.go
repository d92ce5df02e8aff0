package entry_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-journal/internal/handler/http/entry"
)

func TestDeleteHandler_DeleteThenGone(t *testing.T) {
	svc := newService()
	seeded := seedEntry(t, svc, "traveler-1")
	path := fmt.Sprintf("/api/entries/%d", seeded.ID)

	del := entry.DeleteHandler{Svc: svc}
	rr := httptest.NewRecorder()
	del.ServeHTTP(rr, authed(httptest.NewRequest(http.MethodDelete, path, nil), "traveler-1"))

	if rr.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200: %s", rr.Code, rr.Body.String())
	}

	get := entry.GetHandler{Svc: svc}
	rr = httptest.NewRecorder()
	get.ServeHTTP(rr, authed(httptest.NewRequest(http.MethodGet, path, nil), "traveler-1"))

	if rr.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", rr.Code)
	}

	// Double delete surfaces as not found, not success.
	rr = httptest.NewRecorder()
	del.ServeHTTP(rr, authed(httptest.NewRequest(http.MethodDelete, path, nil), "traveler-1"))

	if rr.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rr.Code)
	}
}

func TestDeleteHandler_InvalidID(t *testing.T) {
	handler := entry.DeleteHandler{Svc: newService()}
	req := authed(httptest.NewRequest(http.MethodDelete, "/api/entries/abc", nil), "traveler-1")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want 400", rr.Code)
	}
}

func TestDeleteHandler_ForeignEntryForbidden(t *testing.T) {
	svc := newService()
	seeded := seedEntry(t, svc, "traveler-2")

	handler := entry.DeleteHandler{Svc: svc}
	req := authed(httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/entries/%d", seeded.ID), nil), "traveler-1")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("status code = %d, want 403", rr.Code)
	}
}
