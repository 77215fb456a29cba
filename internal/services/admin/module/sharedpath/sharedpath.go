// Package sharedpath parses the path suffixes owned by admin route modules.
package sharedpath

import (
	"net/http"
	"strings"
)

// Segments returns the non-empty segments of r's path after prefix.
//
// A path with trailing slashes is redirected to its canonical form with the
// query kept, and ok is false. GET and HEAD redirects are permanent; other
// methods get 308 so form posts keep their body.
func Segments(w http.ResponseWriter, r *http.Request, prefix string) (parts []string, ok bool) {
	if r == nil || r.URL == nil {
		return nil, false
	}
	path := r.URL.Path
	canonical := strings.TrimRight(path, "/")
	if canonical == "" {
		canonical = "/"
	}
	if canonical != path {
		target := canonical
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		status := http.StatusMovedPermanently
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			status = http.StatusPermanentRedirect
		}
		http.Redirect(w, r, target, status)
		return nil, false
	}
	return Split(strings.TrimPrefix(path, prefix)), true
}

// Split breaks a slash-delimited suffix into trimmed, non-empty segments.
func Split(suffix string) []string {
	parts := []string{}
	for _, part := range strings.Split(suffix, "/") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
