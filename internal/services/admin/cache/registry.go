package cache

import (
	"context"
	"fmt"
	"sync"
)

type invalidator interface {
	Invalidate(ctx context.Context) error
	MarkStale()
}

// Registry maps cache keys to resources.
type Registry struct {
	mu        sync.RWMutex
	resources map[string]invalidator
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{resources: make(map[string]invalidator)}
}

// Register adds resource under its key, replacing any previous entry.
func Register[T any](registry *Registry, resource *Resource[T]) *Resource[T] {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.resources[resource.Key()] = resource
	return resource
}

// Invalidate refetches the resource registered under key and returns once the
// refetch finishes. Unknown keys have nothing cached and succeed.
func (r *Registry) Invalidate(ctx context.Context, key string) error {
	r.mu.RLock()
	resource, ok := r.resources[key]
	r.mu.RUnlock()
	if !ok {
		return nil
	}
	if err := resource.Invalidate(ctx); err != nil {
		return fmt.Errorf("refetch %s: %w", key, err)
	}
	return nil
}

// MarkStale forces the next read of key to refetch.
func (r *Registry) MarkStale(key string) {
	r.mu.RLock()
	resource, ok := r.resources[key]
	r.mu.RUnlock()
	if ok {
		resource.MarkStale()
	}
}

// Forget drops key from the registry.
func (r *Registry) Forget(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.resources, key)
}
