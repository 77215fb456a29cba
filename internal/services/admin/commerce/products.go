package commerce

import (
	"context"
	"net/http"
)

type productEnvelope struct {
	Product Product `json:"product"`
}

// ListProducts returns the first page of products.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var envelope struct {
		Products []Product `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, c.endpoint("products"), nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Products, nil
}

// GetProduct returns a product with its variants.
func (c *Client) GetProduct(ctx context.Context, productID string) (Product, error) {
	var envelope productEnvelope
	if err := c.do(ctx, http.MethodGet, c.endpoint("products", productID), nil, &envelope); err != nil {
		return Product{}, err
	}
	return envelope.Product, nil
}

// UpdateProduct applies patch to a product.
func (c *Client) UpdateProduct(ctx context.Context, productID string, patch ProductPatch) (Product, error) {
	var envelope productEnvelope
	if err := c.do(ctx, http.MethodPost, c.endpoint("products", productID), patch, &envelope); err != nil {
		return Product{}, err
	}
	return envelope.Product, nil
}

// DeleteProduct removes a product and its variants.
func (c *Client) DeleteProduct(ctx context.Context, productID string) error {
	return c.do(ctx, http.MethodDelete, c.endpoint("products", productID), nil, nil)
}

// CreateVariant adds a variant and returns the parent product.
func (c *Client) CreateVariant(ctx context.Context, productID string, input VariantInput) (Product, error) {
	var envelope productEnvelope
	if err := c.do(ctx, http.MethodPost, c.endpoint("products", productID, "variants"), input, &envelope); err != nil {
		return Product{}, err
	}
	return envelope.Product, nil
}

// UpdateVariant applies patch to a variant and returns the parent product.
func (c *Client) UpdateVariant(ctx context.Context, productID string, variantID string, patch VariantPatch) (Product, error) {
	var envelope productEnvelope
	if err := c.do(ctx, http.MethodPost, c.endpoint("products", productID, "variants", variantID), patch, &envelope); err != nil {
		return Product{}, err
	}
	return envelope.Product, nil
}

// DeleteVariant removes a variant and returns the parent product.
func (c *Client) DeleteVariant(ctx context.Context, productID string, variantID string) (Product, error) {
	var envelope productEnvelope
	if err := c.do(ctx, http.MethodDelete, c.endpoint("products", productID, "variants", variantID), nil, &envelope); err != nil {
		return Product{}, err
	}
	return envelope.Product, nil
}
