package pathutil

import (
	"regexp"
	"strings"
)

// pathPattern pairs a regex for a dynamic route with its normalized template.
type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// pathPatterns lists the dynamic routes, most specific first.
// Pre-compiled at init so normalization stays cheap on the hot path.
var pathPatterns = []pathPattern{
	{pattern: regexp.MustCompile(`^/api/entries/\d+/share$`), template: "/api/entries/:id/share"},
	{pattern: regexp.MustCompile(`^/api/entries/\d+/unshare$`), template: "/api/entries/:id/unshare"},
	{pattern: regexp.MustCompile(`^/api/entries/\d+$`), template: "/api/entries/:id"},
	{pattern: regexp.MustCompile(`^/api/shared/[^/]+$`), template: "/api/shared/:token"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label
// cardinality explosion. Paths carrying IDs or share tokens collapse to a
// template; static paths pass through unchanged.
//
// Examples:
//
//	NormalizePath("/api/entries/123")        // "/api/entries/:id"
//	NormalizePath("/api/entries/123/share")  // "/api/entries/:id/share"
//	NormalizePath("/api/shared/550e8400")    // "/api/shared/:token"
//	NormalizePath("/health")                 // "/health" (unchanged)
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
