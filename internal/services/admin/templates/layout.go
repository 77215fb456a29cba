package templates

import (
	"context"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/storeadmin/internal/services/admin/routepath"
)

const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// PageTitle composes the document title.
func PageTitle(page PageContext) string {
	app := T(page.Loc, "core.app.title")
	title := strings.TrimSpace(page.Title)
	if title == "" {
		return app
	}
	return title + " | " + app
}

// AppLayout renders the document shell around content. Content is placed in
// <main> so HTMX swaps can extract it.
func AppLayout(page PageContext, content templ.Component) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		lang := page.Lang
		if lang == "" {
			lang = "en-US"
		}
		h.raw("<!DOCTYPE html><html")
		h.attr("lang", lang)
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(PageTitle(page))
		h.raw(`</title><link rel="stylesheet" href="` + routepath.StaticPrefix + `admin.css"><script src="` + htmxScriptURL + `" defer></script><script src="` + routepath.StaticPrefix + `admin.js" defer></script></head><body hx-boost="true">`)
		navigation(h, page)
		h.raw(`<div id="toasts" class="toast toast-end">`)
		toasts(h, page.Toasts)
		h.raw(`</div><main id="main" class="container mx-auto p-4">`)
		h.component(ctx, content)
		h.raw("</main></body></html>")
	})
}

func navigation(h *htmlWriter, page PageContext) {
	h.raw(`<header class="navbar bg-base-200"><a class="btn btn-ghost text-xl"`)
	h.attr("href", routepath.Team)
	h.raw(">")
	h.text(T(page.Loc, "core.app.title"))
	h.raw(`</a><nav><ul class="menu menu-horizontal">`)
	for _, item := range []struct {
		path  string
		label string
	}{
		{path: routepath.Team, label: "core.nav.team"},
		{path: routepath.Products, label: "core.nav.products"},
	} {
		active := page.CurrentPath == item.path || strings.HasPrefix(page.CurrentPath, item.path+"/")
		h.raw("<li><a")
		h.attr("href", item.path)
		if active {
			h.raw(` class="active" aria-current="page"`)
		}
		h.raw(">")
		h.text(T(page.Loc, item.label))
		h.raw("</a></li>")
	}
	h.raw(`</ul></nav><ul class="menu menu-horizontal ml-auto">`)
	for _, option := range LanguageOptions(page) {
		h.raw("<li><a")
		h.attr("href", LanguageURL(page, option.Tag))
		h.attr("hreflang", option.Tag)
		if option.Active {
			h.raw(` class="active"`)
		}
		h.raw(">")
		h.text(option.Label)
		h.raw("</a></li>")
	}
	h.raw("</ul></header>")
}

// Toasts renders drained notifications, for out-of-band swaps.
func Toasts(items []Toast) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div id="toasts" class="toast toast-end" hx-swap-oob="true">`)
		toasts(h, items)
		h.raw("</div>")
	})
}

func toasts(h *htmlWriter, items []Toast) {
	for _, item := range items {
		class := "alert alert-success"
		if item.Kind == ToastError {
			class = "alert alert-error"
		}
		h.raw("<div")
		h.attr("class", class)
		h.raw(` role="status"><strong>`)
		h.text(item.Title)
		h.raw("</strong> <span>")
		h.text(item.Message)
		h.raw("</span></div>")
	}
}
