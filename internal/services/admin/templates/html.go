package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so components can emit markup
// without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (h *htmlWriter) attr(name string, value string) {
	h.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// flag writes a boolean attribute when set.
func (h *htmlWriter) flag(name string, set bool) {
	if set {
		h.raw(" " + name)
	}
}

func (h *htmlWriter) component(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// component adapts a markup function to templ.Component.
func component(render func(ctx context.Context, h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		render(ctx, h)
		return h.err
	})
}

// hiddenInput renders a hidden form field.
func hiddenInput(h *htmlWriter, name string, value string) {
	h.raw(`<input type="hidden"`)
	h.attr("name", name)
	h.attr("value", value)
	h.raw(">")
}

// postButton renders a single-button form posting to action.
func postButton(h *htmlWriter, action string, label string, class string, disabled bool, fields map[string]string) {
	h.raw(`<form method="post"`)
	h.attr("action", action)
	h.attr("hx-post", action)
	h.raw(` hx-target="#main" class="inline">`)
	for _, name := range sortedKeys(fields) {
		hiddenInput(h, name, fields[name])
	}
	h.raw(`<button type="submit"`)
	h.attr("class", class)
	h.flag("disabled", disabled)
	h.raw(">")
	h.text(label)
	h.raw("</button></form>")
}
