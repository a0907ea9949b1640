// Package urls joins and normalizes URL path segments.
package urls

import "strings"

// Normalize joins the given parts into a single URL, collapsing duplicate
// slashes while preserving a protocol separator. The result keeps a leading
// slash when the first part has one and never ends with a trailing slash
// (except for a bare "/").
func Normalize(parts ...string) string {
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	joined := strings.Join(segments, "/")
	if joined == "" {
		return ""
	}

	// Protect the protocol separator from slash collapsing.
	var scheme string
	if idx := strings.Index(joined, "://"); idx != -1 {
		scheme = joined[:idx+3]
		joined = joined[idx+3:]
	}

	for strings.Contains(joined, "//") {
		joined = strings.ReplaceAll(joined, "//", "/")
	}

	if len(joined) > 1 {
		joined = strings.TrimSuffix(joined, "/")
	}

	return scheme + joined
}
