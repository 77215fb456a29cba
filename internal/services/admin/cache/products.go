package cache

import (
	"context"
	"sync"
	"time"

	"github.com/louisbranch/storeadmin/internal/services/admin/commerce"
)

// ProductClient reads catalog products.
type ProductClient interface {
	ListProducts(ctx context.Context) ([]commerce.Product, error)
	GetProduct(ctx context.Context, productID string) (commerce.Product, error)
}

// Products caches the product list and each product under its resource name.
type Products struct {
	registry *Registry
	client   ProductClient
	ttl      time.Duration
	opts     []Option

	list *Resource[[]commerce.Product]

	mu   sync.Mutex
	byID map[string]*Resource[commerce.Product]
}

// NewProducts registers the product list under ProductsKey. Single products
// register lazily on first access.
func NewProducts(registry *Registry, client ProductClient, ttl time.Duration, opts ...Option) *Products {
	return &Products{
		registry: registry,
		client:   client,
		ttl:      ttl,
		opts:     opts,
		list:     Register(registry, NewResource(ProductsKey, ttl, client.ListProducts, opts...)),
		byID:     make(map[string]*Resource[commerce.Product]),
	}
}

// List returns the cached product list.
func (p *Products) List(ctx context.Context) ([]commerce.Product, error) {
	entry, err := p.list.Get(ctx)
	if err != nil {
		return nil, err
	}
	return entry.Value, nil
}

// Product returns the resource for productID, registering it when needed.
func (p *Products) Product(productID string) *Resource[commerce.Product] {
	p.mu.Lock()
	defer p.mu.Unlock()
	if resource, ok := p.byID[productID]; ok {
		return resource
	}
	fetch := func(ctx context.Context) (commerce.Product, error) {
		return p.client.GetProduct(ctx, productID)
	}
	resource := Register(p.registry, NewResource(ProductName(productID), p.ttl, fetch, p.opts...))
	p.byID[productID] = resource
	return resource
}

// Get returns the cached product.
func (p *Products) Get(ctx context.Context, productID string) (commerce.Product, error) {
	entry, err := p.Product(productID).Get(ctx)
	if err != nil {
		return commerce.Product{}, err
	}
	return entry.Value, nil
}

// Evict forgets productID and marks the list stale, for deleted products.
func (p *Products) Evict(productID string) {
	p.mu.Lock()
	delete(p.byID, productID)
	p.mu.Unlock()
	p.registry.Forget(ProductName(productID))
	p.list.MarkStale()
}

// MarkListStale forces the next list read to refetch.
func (p *Products) MarkListStale() {
	p.list.MarkStale()
}
