package cache

import (
	"fmt"

	"go.einride.tech/aip/resourcename"
)

const (
	// TeamKey caches the users and invites of the store.
	TeamKey = "team"
	// StoreKey caches the store settings.
	StoreKey = "store"
	// ProductsKey caches the product list.
	ProductsKey = "products"
)

const productPattern = "products/{product}"

// ProductName returns the cache key of one product, e.g. "products/prod_1".
func ProductName(productID string) string {
	return resourcename.Sprint(productPattern, productID)
}

// ParseProductName extracts the product id from a product cache key.
func ParseProductName(name string) (string, error) {
	var productID string
	if err := resourcename.Sscan(name, productPattern, &productID); err != nil {
		return "", fmt.Errorf("parse product name %q: %w", name, err)
	}
	return productID, nil
}
