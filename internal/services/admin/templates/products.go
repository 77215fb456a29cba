package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
)

// ProductsPageView provides data for the product list.
type ProductsPageView struct {
	Heading   PageHeading
	Rows      []ProductRowView
	LoadError string
}

// ProductRowView is one product in the list.
type ProductRowView struct {
	Title        string
	Status       string
	VariantCount int
	UpdatedAt    string
	URL          string
}

// ProductPageView provides data for the product edit page.
type ProductPageView struct {
	Heading     PageHeading
	Title       string
	Subtitle    string
	Description string
	Handle      string
	Status      string
	ToggleLabel string
	Variants    []VariantView
	UpdateURL   string
	StatusURL   string
	DeleteURL   string
	AddURL      string
	Busy        ProductBusy
	Confirm     *ConfirmView
}

// ProductBusy mirrors the in-flight product slots.
type ProductBusy struct {
	Updating        bool
	Deleting        bool
	AddingVariant   bool
	UpdatingVariant bool
	DeletingVariant bool
}

// VariantView is one editable variant.
type VariantView struct {
	ID        string
	Title     string
	SKU       string
	Inventory int
	// Price is the amount in the smallest currency unit.
	Price     string
	Currency  string
	UpdateURL string
	DeleteURL string
}

// ProductsPage renders the product list.
func ProductsPage(page PageContext, view ProductsPageView) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		loc := page.Loc
		pageHeading(h, view.Heading)
		if view.LoadError != "" {
			h.raw(`<p class="form-error" role="alert">`)
			h.text(view.LoadError)
			h.raw("</p>")
			return
		}
		if len(view.Rows) == 0 {
			h.raw("<p>")
			h.text(T(loc, "core.empty"))
			h.raw("</p>")
			return
		}
		h.raw("<table><thead><tr><th>")
		h.text(T(loc, "product.column.title"))
		h.raw("</th><th>")
		h.text(T(loc, "product.column.status"))
		h.raw("</th><th>")
		h.text(T(loc, "product.column.variants"))
		h.raw("</th><th>")
		h.text(T(loc, "product.column.updated"))
		h.raw("</th></tr></thead><tbody>")
		for _, row := range view.Rows {
			h.raw("<tr><td><a")
			h.attr("href", row.URL)
			h.raw(">")
			h.text(row.Title)
			h.raw("</a></td><td>")
			h.text(row.Status)
			h.raw("</td><td>")
			h.text(strconv.Itoa(row.VariantCount))
			h.raw("</td><td>")
			h.text(row.UpdatedAt)
			h.raw("</td></tr>")
		}
		h.raw("</tbody></table>")
	})
}

// ProductPage renders the product edit page with its variants.
func ProductPage(page PageContext, view ProductPageView) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		loc := page.Loc
		pageHeading(h, view.Heading)
		h.raw(`<div class="flex gap-2 my-2"><span class="badge">`)
		h.text(view.Status)
		h.raw("</span>")
		postButton(h, view.StatusURL, view.ToggleLabel, "btn btn-sm", view.Busy.Updating, nil)
		h.raw("<a")
		h.attr("href", view.DeleteURL)
		h.attr("hx-get", view.DeleteURL)
		h.raw(` hx-target="#main" class="btn btn-sm btn-error">`)
		h.text(T(loc, "product.action.delete"))
		h.raw("</a></div>")

		h.raw(`<form method="post"`)
		h.attr("action", view.UpdateURL)
		h.attr("hx-post", view.UpdateURL)
		h.raw(` hx-target="#main">`)
		textField(h, "title", T(loc, "product.field.title"), view.Title)
		textField(h, "subtitle", T(loc, "product.field.subtitle"), view.Subtitle)
		h.raw(`<label class="form-control"><span>`)
		h.text(T(loc, "product.field.description"))
		h.raw(`</span><textarea name="description">`)
		h.text(view.Description)
		h.raw("</textarea></label>")
		textField(h, "handle", T(loc, "product.field.handle"), view.Handle)
		h.raw(`<button type="submit" class="btn btn-primary"`)
		h.flag("disabled", view.Busy.Updating)
		h.raw(">")
		h.text(T(loc, "product.action.save"))
		h.raw("</button></form>")

		h.raw(`<section class="my-4"><h2 class="text-xl">`)
		h.text(T(loc, "product.variants.title"))
		h.raw("</h2>")
		for _, variant := range view.Variants {
			h.raw(`<div class="variant"`)
			h.attr("id", "variant-"+variant.ID)
			h.raw(">")
			variantForm(h, loc, variant.UpdateURL, variant, T(loc, "product.variant.save"), view.Busy.UpdatingVariant)
			postButton(h, variant.DeleteURL, T(loc, "product.variant.delete"), "btn btn-sm btn-error", view.Busy.DeletingVariant, nil)
			h.raw("</div>")
		}
		variantForm(h, loc, view.AddURL, VariantView{}, T(loc, "product.variant.add"), view.Busy.AddingVariant)
		h.raw("</section>")

		if view.Confirm != nil {
			confirmDialog(h, loc, *view.Confirm)
		}
	})
}

func variantForm(h *htmlWriter, loc Localizer, action string, variant VariantView, submit string, busy bool) {
	h.raw(`<form method="post" class="flex gap-2"`)
	h.attr("action", action)
	h.attr("hx-post", action)
	h.raw(` hx-target="#main">`)
	textField(h, "title", T(loc, "product.variant.field.title"), variant.Title)
	textField(h, "sku", T(loc, "product.variant.field.sku"), variant.SKU)
	inventory := ""
	if variant.ID != "" {
		inventory = strconv.Itoa(variant.Inventory)
	}
	textField(h, "inventory_quantity", T(loc, "product.variant.field.inventory"), inventory)
	textField(h, "price", T(loc, "product.variant.field.price"), variant.Price)
	textField(h, "currency_code", T(loc, "product.variant.field.currency"), variant.Currency)
	h.raw(`<button type="submit" class="btn btn-sm"`)
	h.flag("disabled", busy)
	h.raw(">")
	h.text(submit)
	h.raw("</button></form>")
}
