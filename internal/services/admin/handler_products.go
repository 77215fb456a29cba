package admin

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/louisbranch/storeadmin/internal/services/admin/commerce"
	"github.com/louisbranch/storeadmin/internal/services/admin/mutation"
	"github.com/louisbranch/storeadmin/internal/services/admin/routepath"
	"github.com/louisbranch/storeadmin/internal/services/admin/templates"
	"github.com/louisbranch/storeadmin/internal/services/admin/transport/htmx"
)

const productDateLayout = "2006-01-02"

func (h *Handler) handleProductsPage(w http.ResponseWriter, r *http.Request) {
	page := h.pageContext(r, "product.list.title")
	view := templates.ProductsPageView{Heading: templates.PageHeading{Title: page.Title}}

	products, err := h.products.List(r.Context())
	if err != nil {
		log.Printf("list products: %v", err)
		view.LoadError = templates.T(page.Loc, "core.error.load")
		h.renderStatus(w, r, http.StatusBadGateway, page, templates.ProductsPage(page, view))
		return
	}
	for _, product := range products {
		row := templates.ProductRowView{
			Title:        productTitle(product),
			Status:       templates.T(page.Loc, "product.state."+string(product.Status)),
			VariantCount: len(product.Variants),
			URL:          routepath.Product(product.ID),
		}
		if !product.UpdatedAt.IsZero() {
			row.UpdatedAt = product.UpdatedAt.Format(productDateLayout)
		}
		view.Rows = append(view.Rows, row)
	}
	h.render(w, r, page, templates.ProductsPage(page, view))
}

func productTitle(product commerce.Product) string {
	if title := strings.TrimSpace(product.Title); title != "" {
		return title
	}
	return product.ID
}

func (h *Handler) handleProductPage(w http.ResponseWriter, r *http.Request, productID string) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	h.renderProductPage(w, r, session, productID, nil)
}

// renderProductPage renders the edit page, with prompt as an open
// confirmation dialog when set.
func (h *Handler) renderProductPage(w http.ResponseWriter, r *http.Request, session *operatorSession, productID string, prompt *mutation.Prompt) {
	product, err := h.products.Get(r.Context(), productID)
	if err != nil {
		if commerce.IsNotFound(err) {
			h.renderNotFound(w, r)
			return
		}
		log.Printf("get product %s: %v", productID, err)
		page := h.pageContext(r, "product.edit.title")
		h.renderStatus(w, r, http.StatusBadGateway, page, templates.Message(templates.T(page.Loc, "core.error.load")))
		return
	}

	page := h.pageContext(r, "product.edit.title")
	loc := page.Loc
	inFlight := h.productActions(session, productID).InFlight()
	view := templates.ProductPageView{
		Heading: templates.PageHeading{
			Title: productTitle(product),
			Breadcrumbs: []templates.Breadcrumb{
				{Label: templates.T(loc, "product.list.title"), URL: routepath.Products},
				{Label: productTitle(product)},
			},
		},
		Title:       product.Title,
		Subtitle:    product.Subtitle,
		Description: product.Description,
		Handle:      product.Handle,
		Status:      templates.T(loc, "product.state."+string(product.Status)),
		ToggleLabel: templates.T(loc, "product.action.publish"),
		UpdateURL:   routepath.Product(productID),
		StatusURL:   routepath.ProductStatus(productID),
		DeleteURL:   routepath.ProductDelete(productID),
		AddURL:      routepath.ProductVariants(productID),
		Busy: templates.ProductBusy{
			Updating:        inFlight.Updating,
			Deleting:        inFlight.Deleting,
			AddingVariant:   inFlight.AddingVariant,
			UpdatingVariant: inFlight.UpdatingVariant,
			DeletingVariant: inFlight.DeletingVariant,
		},
	}
	if product.Status == commerce.ProductPublished {
		view.ToggleLabel = templates.T(loc, "product.action.unpublish")
	}
	for _, variant := range product.Variants {
		variantView := templates.VariantView{
			ID:        variant.ID,
			Title:     variant.Title,
			SKU:       variant.SKU,
			Inventory: variant.InventoryQuantity,
			UpdateURL: routepath.ProductVariant(productID, variant.ID),
			DeleteURL: routepath.ProductVariantDelete(productID, variant.ID),
		}
		if len(variant.Prices) > 0 {
			variantView.Price = strconv.FormatInt(variant.Prices[0].Amount, 10)
			variantView.Currency = variant.Prices[0].CurrencyCode
		}
		view.Variants = append(view.Variants, variantView)
	}
	if prompt != nil {
		view.Confirm = &templates.ConfirmView{
			Heading:    prompt.Heading,
			Text:       prompt.Text,
			ConfirmURL: routepath.ProductDelete(productID),
			CancelURL:  routepath.ProductDelete(productID),
			Busy:       inFlight.Deleting,
		}
	}
	h.render(w, r, page, templates.ProductPage(page, view))
}

// markProductStale forces the next product and list reads to refetch.
func (h *Handler) markProductStale(productID string) func() {
	return func() {
		h.products.Product(productID).MarkStale()
		h.products.MarkListStale()
	}
}

func (h *Handler) handleProductUpdate(w http.ResponseWriter, r *http.Request, productID string) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	var patch commerce.ProductPatch
	patch.Title = formString(r, "title")
	patch.Subtitle = formString(r, "subtitle")
	patch.Description = formString(r, "description")
	patch.Handle = formString(r, "handle")

	err := h.productActions(session, productID).Update(r.Context(), patch, mutation.Then(h.markProductStale(productID)))
	logMutationError("update product", err)
	htmx.Redirect(w, r, routepath.Product(productID))
}

func (h *Handler) handleProductStatus(w http.ResponseWriter, r *http.Request, productID string) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	product, err := h.products.Get(r.Context(), productID)
	if err != nil {
		if commerce.IsNotFound(err) {
			h.renderNotFound(w, r)
			return
		}
		log.Printf("get product %s: %v", productID, err)
		http.Error(w, "unable to load product", http.StatusBadGateway)
		return
	}
	err = h.productActions(session, productID).ToggleStatus(r.Context(), product.Status, mutation.Then(h.markProductStale(productID)))
	logMutationError("toggle product status", err)
	htmx.Redirect(w, r, routepath.Product(productID))
}

// handleProductDelete runs the delete flow. GET asks for confirmation; POST
// carries the operator's decision.
func (h *Handler) handleProductDelete(w http.ResponseWriter, r *http.Request, productID string) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	decision := ""
	if r.Method == http.MethodPost {
		decision = r.PostFormValue("decision")
	}
	ctx, flow := withRequestFlow(r.Context(), decision)
	actions := h.productActions(session, productID)
	err := actions.Delete(ctx, mutation.Then(func() {
		h.products.Evict(productID)
		session.forgetProduct(productID)
	}))
	logMutationError("delete product", err)

	if prompt, asked := flow.Prompt(); asked {
		h.renderProductPage(w, r, session, productID, &prompt)
		return
	}
	if target := flow.Navigation(); target != "" {
		htmx.Redirect(w, r, target)
		return
	}
	htmx.Redirect(w, r, routepath.Product(productID))
}

func (h *Handler) handleVariantCreate(w http.ResponseWriter, r *http.Request, productID string) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	input, err := parseVariantInput(r)
	if err != nil {
		h.notifyInvalidVariant(r, err)
		htmx.Redirect(w, r, routepath.Product(productID))
		return
	}
	err = h.productActions(session, productID).AddVariant(r.Context(), input, mutation.Then(h.products.MarkListStale))
	logMutationError("add variant", err)
	htmx.Redirect(w, r, routepath.Product(productID))
}

func (h *Handler) handleVariantUpdate(w http.ResponseWriter, r *http.Request, productID string, variantID string) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	patch, err := parseVariantPatch(r)
	if err != nil {
		h.notifyInvalidVariant(r, err)
		htmx.Redirect(w, r, routepath.Product(productID))
		return
	}
	err = h.productActions(session, productID).UpdateVariant(r.Context(), variantID, patch, mutation.Then(h.products.MarkListStale))
	logMutationError("update variant", err)
	htmx.Redirect(w, r, routepath.Product(productID))
}

func (h *Handler) handleVariantDelete(w http.ResponseWriter, r *http.Request, productID string, variantID string) {
	session, ok := requireSession(w, r)
	if !ok {
		return
	}
	err := h.productActions(session, productID).DeleteVariant(r.Context(), variantID, mutation.Then(h.products.MarkListStale))
	logMutationError("delete variant", err)
	htmx.Redirect(w, r, routepath.Product(productID))
}

func (h *Handler) notifyInvalidVariant(r *http.Request, err error) {
	loc := h.localizer(r)
	h.inbox.Notify(r.Context(), templates.T(loc, "notify.error.title"), templates.T(loc, "product.variant.invalid", err.Error()), mutation.KindError)
}

// formString returns the trimmed form value, or nil when the field was not
// submitted.
func formString(r *http.Request, name string) *string {
	if !r.PostForm.Has(name) {
		return nil
	}
	value := strings.TrimSpace(r.PostForm.Get(name))
	return &value
}

var errVariantTitleRequired = errors.New("title is required")

func parseVariantInput(r *http.Request) (commerce.VariantInput, error) {
	input := commerce.VariantInput{}
	if title := formString(r, "title"); title != nil {
		input.Title = *title
	}
	if input.Title == "" {
		return commerce.VariantInput{}, errVariantTitleRequired
	}
	if sku := formString(r, "sku"); sku != nil {
		input.SKU = *sku
	}
	inventory, err := parseInventory(r)
	if err != nil {
		return commerce.VariantInput{}, err
	}
	if inventory != nil {
		input.InventoryQuantity = *inventory
	}
	prices, err := parsePrices(r)
	if err != nil {
		return commerce.VariantInput{}, err
	}
	input.Prices = prices
	return input, nil
}

func parseVariantPatch(r *http.Request) (commerce.VariantPatch, error) {
	patch := commerce.VariantPatch{
		Title: formString(r, "title"),
		SKU:   formString(r, "sku"),
	}
	if patch.Title != nil && *patch.Title == "" {
		return commerce.VariantPatch{}, errVariantTitleRequired
	}
	inventory, err := parseInventory(r)
	if err != nil {
		return commerce.VariantPatch{}, err
	}
	patch.InventoryQuantity = inventory
	prices, err := parsePrices(r)
	if err != nil {
		return commerce.VariantPatch{}, err
	}
	patch.Prices = prices
	return patch, nil
}

// parseInventory returns nil for a blank field.
func parseInventory(r *http.Request) (*int, error) {
	raw := formString(r, "inventory_quantity")
	if raw == nil || *raw == "" {
		return nil, nil
	}
	quantity, err := strconv.Atoi(*raw)
	if err != nil || quantity < 0 {
		return nil, fmt.Errorf("inventory %q must be a non-negative integer", *raw)
	}
	return &quantity, nil
}

// parsePrices reads a single price. A blank amount yields no prices.
func parsePrices(r *http.Request) ([]commerce.Price, error) {
	raw := formString(r, "price")
	if raw == nil || *raw == "" {
		return nil, nil
	}
	amount, err := strconv.ParseInt(*raw, 10, 64)
	if err != nil || amount < 0 {
		return nil, fmt.Errorf("price %q must be a non-negative amount in minor units", *raw)
	}
	currency := ""
	if code := formString(r, "currency_code"); code != nil {
		currency = strings.ToLower(*code)
	}
	if len(currency) != 3 {
		return nil, fmt.Errorf("currency %q must be a three-letter code", currency)
	}
	return []commerce.Price{{CurrencyCode: currency, Amount: amount}}, nil
}
