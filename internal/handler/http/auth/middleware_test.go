package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-key-for-middleware"

func signToken(t *testing.T, claims jwt.MapClaims, method jwt.SigningMethod, secret string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthz_PublicEndpointPassesThrough(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	called := false
	h := Authz(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if !called {
		t.Fatal("public endpoint did not reach handler")
	}
}

func TestAuthz_ProtectedRequiresToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	h := Authz(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached without token")
	}))

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(method, "/api/entries", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s without token: status = %d, want 401", method, rec.Code)
		}
	}
}

func TestAuthz_ValidTokenSetsUser(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	var user string
	h := Authz(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user = UserFromContext(r.Context())
	}))

	token := signToken(t, jwt.MapClaims{
		"sub": "traveler-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, jwt.SigningMethodHS256, testSecret)

	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if user != "traveler-1" {
		t.Errorf("user in context = %q, want traveler-1", user)
	}
}

func TestAuthz_RejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	h := Authz(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached with expired token")
	}))

	token := signToken(t, jwt.MapClaims{
		"sub": "traveler-1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	}, jwt.SigningMethodHS256, testSecret)

	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthz_RejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	h := Authz(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached with forged token")
	}))

	token := signToken(t, jwt.MapClaims{
		"sub": "traveler-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}, jwt.SigningMethodHS256, "attacker-secret")

	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthz_RejectsMissingSub(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	h := Authz(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached without sub claim")
	}))

	token := signToken(t, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}, jwt.SigningMethodHS256, testSecret)

	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
