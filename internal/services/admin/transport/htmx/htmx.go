// Package htmx renders admin responses for plain and HTMX requests.
package htmx

import (
	"bytes"
	"html"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// Request headers sent by htmx, and the response header it follows.
const (
	RequestHeader  = "HX-Request"
	BoostedHeader  = "HX-Boosted"
	RedirectHeader = "HX-Redirect"
)

// IsRequest reports whether the request was issued by htmx.
func IsRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeader), "true")
}

// IsPartial reports whether the request expects a fragment. Boosted
// navigation swaps the whole body and receives the full page.
func IsPartial(r *http.Request) bool {
	return IsRequest(r) && !strings.EqualFold(r.Header.Get(BoostedHeader), "true")
}

// TitleTag formats an escaped <title> element, or "" for a blank title.
func TitleTag(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return "<title>" + html.EscapeString(title) + "</title>"
}

// Render writes fragment for partial requests and full otherwise. Fragments
// are prefixed with title so htmx updates the document title.
func Render(w http.ResponseWriter, r *http.Request, status int, fragment templ.Component, full templ.Component, title string) {
	if status <= 0 {
		status = http.StatusOK
	}
	if !IsPartial(r) || fragment == nil {
		if full == nil {
			full = fragment
		}
		if full == nil {
			w.WriteHeader(status)
			return
		}
		templ.Handler(full, templ.WithStatus(status)).ServeHTTP(w, r)
		return
	}

	var body bytes.Buffer
	body.WriteString(title)
	if err := fragment.Render(r.Context(), &body); err != nil {
		log.Printf("render fragment %s: %v", r.URL.Path, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body.Bytes())
}

// Redirect sends a see-other redirect. htmx requests also get HX-Redirect so
// the browser performs a full navigation.
func Redirect(w http.ResponseWriter, r *http.Request, target string) {
	if IsRequest(r) {
		w.Header().Set("Location", target)
		w.Header().Set(RedirectHeader, target)
		w.WriteHeader(http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
