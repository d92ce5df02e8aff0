// Package middleware provides cross-cutting HTTP middleware that sits in
// front of the routing layer.
package middleware

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
)

// CORSConfig holds the configuration for CORS middleware.
type CORSConfig struct {
	// AllowedOrigins is a whitelist of permitted origins.
	// Example: ["http://localhost:3000", "https://journal.example.com"]
	AllowedOrigins []string

	// AllowedMethods specifies which HTTP methods are allowed in CORS requests.
	AllowedMethods []string

	// AllowedHeaders specifies which request headers are allowed in CORS requests.
	AllowedHeaders []string

	// MaxAge specifies how long preflight results can be cached (in seconds).
	MaxAge int

	// Logger records policy violations; nil disables logging.
	Logger *slog.Logger
}

// LoadCORSConfig builds a CORSConfig from environment variables.
//
//	CORS_ALLOWED_ORIGINS  comma-separated origin whitelist (default: http://localhost:3000)
//	CORS_MAX_AGE          preflight cache seconds (default: 86400)
func LoadCORSConfig() CORSConfig {
	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ALLOWED_ORIGINS"); env != "" {
		origins = origins[:0]
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	maxAge := 86400
	if env := os.Getenv("CORS_MAX_AGE"); env != "" {
		if v, err := strconv.Atoi(env); err == nil && v >= 0 {
			maxAge = v
		}
	}

	return CORSConfig{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
		MaxAge:         maxAge,
	}
}

// allowed reports whether the origin is in the whitelist. A single "*"
// entry allows any origin.
func (c CORSConfig) allowed(origin string) bool {
	for _, o := range c.AllowedOrigins {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}

// CORS returns an HTTP middleware that handles cross-origin requests.
//
// Behavior:
//   - Requests without an Origin header pass through untouched.
//   - Disallowed origins get no CORS headers; the browser blocks the response.
//   - Allowed preflight (OPTIONS) requests are answered with 204 directly.
//   - Allowed actual requests get the origin echoed back, as required for
//     credentialed requests, before reaching the next handler.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !config.allowed(origin) {
				if config.Logger != nil {
					config.Logger.Warn("CORS: origin not allowed",
						slog.String("origin", origin),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("remote_addr", r.RemoteAddr),
					)
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(config.AllowedHeaders, ", "))
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
