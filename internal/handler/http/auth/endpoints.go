package auth

import "strings"

// PublicEndpoints defines endpoints that don't require authentication.
//
// Justification for each public endpoint:
// - /health, /ready, /live: orchestration health checks (Kubernetes, Docker, monitoring)
// - /metrics: Prometheus scraping
// - /auth/token: token generation endpoint (can't require a token to get a token)
// - /api/shared/: shared journal entries are reachable by anyone holding the link
var PublicEndpoints = []string{
	"/health",
	"/ready",
	"/live",
	"/metrics",
	"/auth/token",
	"/api/shared/",
}

// IsPublicEndpoint checks if a given path is a public endpoint.
//
// Matching logic:
// - Endpoints ending with '/' use prefix matching (e.g., /api/shared/* matches /api/shared/abc)
// - Endpoints without '/' require exact match or query params only
//   (e.g., /health matches /health?x=1 but not /health/detail)
func IsPublicEndpoint(path string) bool {
	for _, endpoint := range PublicEndpoints {
		if strings.HasSuffix(endpoint, "/") {
			if strings.HasPrefix(path, endpoint) {
				return true
			}
			continue
		}

		// Exact match, trailing slash, or query params only. This prevents
		// /health from matching /health/detail or /healthcheck.
		if path == endpoint {
			return true
		}
		if path == endpoint+"/" {
			return true
		}
		if strings.HasPrefix(path, endpoint+"?") {
			return true
		}
	}
	return false
}
