package mutation

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/louisbranch/storeadmin/internal/services/admin/cache"
	"github.com/louisbranch/storeadmin/internal/services/admin/commerce"
	"github.com/louisbranch/storeadmin/internal/services/admin/routepath"
)

// ProductClient performs product writes.
type ProductClient interface {
	UpdateProduct(ctx context.Context, productID string, patch commerce.ProductPatch) (commerce.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
	CreateVariant(ctx context.Context, productID string, input commerce.VariantInput) (commerce.Product, error)
	UpdateVariant(ctx context.Context, productID string, variantID string, patch commerce.VariantPatch) (commerce.Product, error)
	DeleteVariant(ctx context.Context, productID string, variantID string) (commerce.Product, error)
}

// ProductInFlight reports which product slots are running.
type ProductInFlight struct {
	Updating        bool
	Deleting        bool
	AddingVariant   bool
	UpdatingVariant bool
	DeletingVariant bool
}

// ProductActions runs writes against one product.
type ProductActions struct {
	productID string
	client    ProductClient
	runner
}

// NewProductActions binds the orchestrator to productID.
func NewProductActions(productID string, client ProductClient, deps Deps) *ProductActions {
	return &ProductActions{productID: productID, client: client, runner: newRunner(deps)}
}

// ProductID returns the bound product id.
func (a *ProductActions) ProductID() string {
	return a.productID
}

// InFlight snapshots the slot flags.
func (a *ProductActions) InFlight() ProductInFlight {
	return ProductInFlight{
		Updating:        a.slots.inFlight(SlotUpdating),
		Deleting:        a.slots.inFlight(SlotDeleting),
		AddingVariant:   a.slots.inFlight(SlotAddingVariant),
		UpdatingVariant: a.slots.inFlight(SlotUpdatingVariant),
		DeletingVariant: a.slots.inFlight(SlotDeletingVariant),
	}
}

func (a *ProductActions) variantOp(name string, slot Slot, successKey string, variantID string) operation {
	attrs := []attribute.KeyValue{attribute.String("product.id", a.productID)}
	if variantID != "" {
		attrs = append(attrs, attribute.String("variant.id", variantID))
	}
	return operation{
		name:       name,
		slot:       slot,
		successKey: successKey,
		invalidate: cache.ProductName(a.productID),
		attributes: attrs,
	}
}

// AddVariant creates a variant, then refetches the product before Then runs.
func (a *ProductActions) AddVariant(ctx context.Context, input commerce.VariantInput, opts ...CallOption) error {
	op := a.variantOp("add_variant", SlotAddingVariant, "product.variant.created", "")
	return a.run(ctx, op, func(ctx context.Context) error {
		_, err := a.client.CreateVariant(ctx, a.productID, input)
		return err
	}, opts)
}

// UpdateVariant patches a variant, then refetches the product before Then runs.
func (a *ProductActions) UpdateVariant(ctx context.Context, variantID string, patch commerce.VariantPatch, opts ...CallOption) error {
	op := a.variantOp("update_variant", SlotUpdatingVariant, "product.variant.updated", variantID)
	return a.run(ctx, op, func(ctx context.Context) error {
		_, err := a.client.UpdateVariant(ctx, a.productID, variantID, patch)
		return err
	}, opts)
}

// DeleteVariant removes a variant, then refetches the product before Then runs.
func (a *ProductActions) DeleteVariant(ctx context.Context, variantID string, opts ...CallOption) error {
	op := a.variantOp("delete_variant", SlotDeletingVariant, "product.variant.deleted", variantID)
	return a.run(ctx, op, func(ctx context.Context) error {
		_, err := a.client.DeleteVariant(ctx, a.productID, variantID)
		return err
	}, opts)
}

// Update patches the product.
func (a *ProductActions) Update(ctx context.Context, patch commerce.ProductPatch, opts ...CallOption) error {
	op := operation{
		name:       "update_product",
		slot:       SlotUpdating,
		successKey: "product.updated",
		attributes: []attribute.KeyValue{attribute.String("product.id", a.productID)},
	}
	return a.run(ctx, op, func(ctx context.Context) error {
		_, err := a.client.UpdateProduct(ctx, a.productID, patch)
		return err
	}, opts)
}

// ToggleStatus publishes a product that is not published and moves a
// published product back to draft.
func (a *ProductActions) ToggleStatus(ctx context.Context, current commerce.ProductStatus, opts ...CallOption) error {
	next, successKey := commerce.ProductPublished, "product.status.published"
	if current == commerce.ProductPublished {
		next, successKey = commerce.ProductDraft, "product.status.drafted"
	}
	op := operation{
		name:       "toggle_status",
		slot:       SlotUpdating,
		successKey: successKey,
		attributes: []attribute.KeyValue{
			attribute.String("product.id", a.productID),
			attribute.String("product.status", string(next)),
		},
	}
	return a.run(ctx, op, func(ctx context.Context) error {
		_, err := a.client.UpdateProduct(ctx, a.productID, commerce.ProductPatch{Status: &next})
		return err
	}, opts)
}

// Delete asks for confirmation, deletes the product and navigates to the
// product list. A declined confirmation returns nil without side effects.
func (a *ProductActions) Delete(ctx context.Context, opts ...CallOption) error {
	if a.slots.inFlight(SlotDeleting) {
		return ErrInFlight
	}
	if a.deps.Confirmer != nil {
		confirmed, err := a.deps.Confirmer.Confirm(ctx, Prompt{
			Heading: translate(a.deps.Localizer, "product.delete.heading"),
			Text:    translate(a.deps.Localizer, "product.delete.text"),
		})
		if err != nil {
			return err
		}
		if !confirmed {
			return nil
		}
	}
	op := operation{
		name:       "delete_product",
		slot:       SlotDeleting,
		successKey: "product.deleted",
		navigate:   routepath.Products,
		attributes: []attribute.KeyValue{attribute.String("product.id", a.productID)},
	}
	return a.run(ctx, op, func(ctx context.Context) error {
		return a.client.DeleteProduct(ctx, a.productID)
	}, opts)
}
