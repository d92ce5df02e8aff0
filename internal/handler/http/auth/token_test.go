package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenHandler_IssuesToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("JOURNAL_USER", "traveler-1")
	t.Setenv("JOURNAL_USER_PASSWORD", "a-long-enough-password")

	h := TokenHandler(NewEnvProvider(12), time.Hour)

	body := strings.NewReader(`{"userId":"traveler-1","password":"a-long-enough-password"}`)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/token", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}

	tok, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("issued token does not validate: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if claims["sub"] != "traveler-1" {
		t.Errorf("sub = %v, want traveler-1", claims["sub"])
	}
}

func TestTokenHandler_RejectsBadCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("JOURNAL_USER", "traveler-1")
	t.Setenv("JOURNAL_USER_PASSWORD", "a-long-enough-password")

	h := TokenHandler(NewEnvProvider(12), time.Hour)

	body := strings.NewReader(`{"userId":"traveler-1","password":"wrong-password-here"}`)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/token", body))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestTokenHandler_RejectsMalformedBody(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	h := TokenHandler(NewEnvProvider(12), time.Hour)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader("{not json")))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
