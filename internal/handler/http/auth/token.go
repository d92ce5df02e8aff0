package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	"travel-journal/internal/handler/http/requestid"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long issued tokens stay valid.
const DefaultTokenTTL = time.Hour

type loginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// TokenHandler creates an HTTP handler that authenticates users and
// issues JWT tokens. The token's sub claim carries the user ID that
// journal entries are owned by.
func TokenHandler(provider Provider, ttl time.Duration) http.HandlerFunc {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := requestid.FromContext(r.Context())
		logger := slog.With(slog.String("request_id", requestID))

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_request"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest(provider.Name(), "failure")
			RecordAuthDuration(provider.Name(), time.Since(start).Seconds())
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		creds := Credentials{UserID: req.UserID, Password: req.Password}
		if err := provider.ValidateCredentials(r.Context(), creds); err != nil {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_credentials"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest(provider.Name(), "failure")
			RecordAuthDuration(provider.Name(), time.Since(start).Seconds())
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		secret := []byte(os.Getenv("JWT_SECRET"))
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": req.UserID,
			"exp": time.Now().Add(ttl).Unix(),
		})

		signed, err := token.SignedString(secret)
		if err != nil {
			logger.Error("token generation failed",
				slog.String("error", err.Error()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			RecordAuthRequest(provider.Name(), "failure")
			RecordAuthDuration(provider.Name(), time.Since(start).Seconds())
			http.Error(w, "token generation failed", http.StatusInternalServerError)
			return
		}

		logger.Info("authentication successful",
			slog.String("user_id", req.UserID),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))

		RecordAuthRequest(provider.Name(), "success")
		RecordAuthDuration(provider.Name(), time.Since(start).Seconds())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tokenResponse{Token: signed}); err != nil {
			logger.Error("failed to encode token response",
				slog.String("error", err.Error()))
		}
	}
}
