package cache

import (
	"context"
	"time"

	"github.com/louisbranch/storeadmin/internal/services/admin/commerce"
)

// StoreClient reads the store settings.
type StoreClient interface {
	GetStore(ctx context.Context) (commerce.Store, error)
}

// StoreSettings exposes the store settings without blocking page renders.
type StoreSettings struct {
	resource *Resource[commerce.Store]
}

// NewStoreSettings registers the store resource under StoreKey.
func NewStoreSettings(registry *Registry, client StoreClient, ttl time.Duration, opts ...Option) *StoreSettings {
	resource := NewResource(StoreKey, ttl, client.GetStore, opts...)
	return &StoreSettings{resource: Register(registry, resource)}
}

// InviteLinkTemplate returns the configured template, or nil when none is set
// or the settings have not loaded.
func (s *StoreSettings) InviteLinkTemplate() *string {
	entry, ok, _ := s.resource.Peek()
	if !ok {
		return nil
	}
	return entry.Value.InviteLinkTemplate
}

// Loading reports whether the settings are still unavailable.
func (s *StoreSettings) Loading() bool {
	_, ok, _ := s.resource.Peek()
	return !ok
}

// Prefetch starts a background load when the settings are not fresh.
func (s *StoreSettings) Prefetch(ctx context.Context) {
	s.resource.Prefetch(ctx)
}

// Get blocks until the settings are available.
func (s *StoreSettings) Get(ctx context.Context) (commerce.Store, error) {
	entry, err := s.resource.Get(ctx)
	if err != nil {
		return commerce.Store{}, err
	}
	return entry.Value, nil
}
