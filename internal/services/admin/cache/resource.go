package cache

import (
	"context"
	"log"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/louisbranch/storeadmin/internal/platform/timeouts"
)

// Fetcher loads the current remote value.
type Fetcher[T any] func(ctx context.Context) (T, error)

// Entry is a cached value with the generation of the fetch that produced it.
// Generations increase with every successful fetch.
type Entry[T any] struct {
	Value      T
	Generation uint64
	FetchedAt  time.Time
}

// Resource caches one remote value.
type Resource[T any] struct {
	key   string
	fetch Fetcher[T]
	ttl   time.Duration
	clock func() time.Time

	group singleflight.Group

	mu    sync.Mutex
	entry Entry[T]
	valid bool
	stale bool
	gen   uint64
	// epoch advances on every MarkStale. Fetches only join fetches of the
	// same epoch, and a fetch never replaces an entry from a later epoch.
	epoch      uint64
	entryEpoch uint64
	inflight   int
	pending    int
}

// Option configures a Resource.
type Option func(*options)

type options struct {
	clock func() time.Time
}

// WithClock overrides the clock used for expiry.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{clock: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// NewResource builds a resource cached for ttl. A zero ttl keeps values until
// invalidated.
func NewResource[T any](key string, ttl time.Duration, fetch Fetcher[T], opts ...Option) *Resource[T] {
	o := applyOptions(opts)
	return &Resource[T]{key: key, fetch: fetch, ttl: ttl, clock: o.clock}
}

// Key returns the cache key.
func (r *Resource[T]) Key() string {
	return r.key
}

// Get returns the cached entry, fetching it when missing, stale or expired.
func (r *Resource[T]) Get(ctx context.Context) (Entry[T], error) {
	r.mu.Lock()
	if r.freshLocked() {
		entry := r.entry
		r.mu.Unlock()
		return entry, nil
	}
	r.mu.Unlock()
	return r.Refetch(ctx)
}

// Refetch loads the value now. Concurrent refetches within one epoch share a
// remote call, which runs detached from any single caller's cancellation.
func (r *Resource[T]) Refetch(ctx context.Context) (Entry[T], error) {
	r.mu.Lock()
	epoch := r.epoch
	r.mu.Unlock()

	results := r.group.DoChan(r.key+"@"+strconv.FormatUint(epoch, 10), func() (any, error) {
		return r.load(ctx, epoch)
	})
	select {
	case <-ctx.Done():
		return Entry[T]{}, ctx.Err()
	case result := <-results:
		if result.Err != nil {
			return Entry[T]{}, result.Err
		}
		return result.Val.(Entry[T]), nil
	}
}

func (r *Resource[T]) load(ctx context.Context, epoch uint64) (Entry[T], error) {
	fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeouts.APIRequest)
	defer cancel()

	r.mu.Lock()
	r.inflight++
	r.mu.Unlock()

	value, err := r.fetch(fetchCtx)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.inflight--
	if err != nil {
		return Entry[T]{}, err
	}
	r.gen++
	entry := Entry[T]{Value: value, Generation: r.gen, FetchedAt: r.clock()}
	if !r.valid || epoch >= r.entryEpoch {
		r.entry = entry
		r.entryEpoch = epoch
		r.valid = true
		r.stale = epoch < r.epoch
	}
	return entry, nil
}

// Invalidate marks the value stale and waits for a fetch that started after
// the call. Fetches already in flight are not joined.
func (r *Resource[T]) Invalidate(ctx context.Context) error {
	r.MarkStale()
	_, err := r.Refetch(ctx)
	return err
}

// MarkStale forces the next Get to refetch.
func (r *Resource[T]) MarkStale() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stale = true
	r.epoch++
}

// Peek returns the cached entry without fetching. ok is false until the first
// successful fetch; loading reports a fetch in progress.
func (r *Resource[T]) Peek() (entry Entry[T], ok bool, loading bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entry, r.valid, r.inflight > 0 || r.pending > 0
}

// Prefetch refreshes the value in the background when it is not fresh.
func (r *Resource[T]) Prefetch(ctx context.Context) {
	r.mu.Lock()
	if r.freshLocked() || r.inflight > 0 || r.pending > 0 {
		r.mu.Unlock()
		return
	}
	r.pending++
	r.mu.Unlock()

	go func() {
		defer func() {
			r.mu.Lock()
			r.pending--
			r.mu.Unlock()
		}()
		if _, err := r.Refetch(context.WithoutCancel(ctx)); err != nil {
			log.Printf("prefetch %s: %v", r.key, err)
		}
	}()
}

func (r *Resource[T]) freshLocked() bool {
	if !r.valid || r.stale {
		return false
	}
	return r.ttl <= 0 || r.clock().Sub(r.entry.FetchedAt) < r.ttl
}
