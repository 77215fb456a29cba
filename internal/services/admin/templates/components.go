package templates

import (
	"context"
	"net/url"
	"sort"
	"strings"

	"github.com/a-h/templ"
)

// PageHeading holds header metadata for pages.
type PageHeading struct {
	// Title is the page heading.
	Title string
	// Breadcrumbs renders a path trail for the page.
	Breadcrumbs []Breadcrumb
}

// Breadcrumb represents a single breadcrumb item.
type Breadcrumb struct {
	// Label is the visible label.
	Label string
	// URL is the optional navigation target.
	URL string
}

// ConfirmView is a confirmation dialog. Both buttons post a "decision" field.
type ConfirmView struct {
	Heading    string
	Text       string
	ConfirmURL string
	CancelURL  string
	Busy       bool
}

// AppendQueryParam appends a single query parameter to a URL.
func AppendQueryParam(baseURL string, key string, value string) string {
	encodedKey := url.QueryEscape(key)
	encodedValue := url.QueryEscape(value)
	if strings.Contains(baseURL, "?") {
		return baseURL + "&" + encodedKey + "=" + encodedValue
	}
	return baseURL + "?" + encodedKey + "=" + encodedValue
}

func pageHeading(h *htmlWriter, heading PageHeading) {
	if len(heading.Breadcrumbs) > 0 {
		h.raw(`<nav class="breadcrumbs text-sm"><ul>`)
		for _, crumb := range heading.Breadcrumbs {
			h.raw("<li>")
			if crumb.URL != "" {
				h.raw("<a")
				h.attr("href", crumb.URL)
				h.raw(">")
				h.text(crumb.Label)
				h.raw("</a>")
			} else {
				h.text(crumb.Label)
			}
			h.raw("</li>")
		}
		h.raw("</ul></nav>")
	}
	h.raw(`<h1 class="text-2xl font-semibold">`)
	h.text(heading.Title)
	h.raw("</h1>")
}

func confirmDialog(h *htmlWriter, loc Localizer, view ConfirmView) {
	h.raw(`<dialog class="modal modal-open" role="alertdialog" aria-modal="true"><div class="modal-box"><h3 class="text-lg font-bold">`)
	h.text(view.Heading)
	h.raw(`</h3><p class="py-4">`)
	h.text(view.Text)
	h.raw(`</p><div class="modal-action">`)
	postButton(h, view.CancelURL, T(loc, "core.action.cancel"), "btn", view.Busy, map[string]string{"decision": "cancel"})
	postButton(h, view.ConfirmURL, T(loc, "core.action.delete"), "btn btn-error", view.Busy, map[string]string{"decision": "confirm"})
	h.raw("</div></div></dialog>")
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Message renders a standalone paragraph, used for error pages.
func Message(text string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<p class="text-lg" role="alert">`)
		h.text(text)
		h.raw("</p>")
	})
}
