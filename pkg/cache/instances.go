// Package cache keeps lazily built values: live instances per owner in
// memory, and rendered output on disk.
//
// [Instances] is the keyed-singleton store behind layout.For: the first
// lookup for an owner runs a factory, later lookups return the stored value
// until it is explicitly removed. There is no expiry and no size limit.
//
// [FileStore] persists byte blobs between runs under the hash of their key.
// The CLI uses it to skip re-rendering SVGs for unchanged graphs.
//
// Both report hits, misses, sets and removals through the observability
// cache hooks.
//
// Instances is not safe for concurrent use. Like the views it is keyed by,
// it belongs to the goroutine that owns the UI state; callers that share it
// across goroutines must add their own synchronization.
package cache

import (
	"slices"

	"github.com/matzehuels/viewlayout/pkg/observability"
)

// Factory builds the value for an owner on a cache miss. Returning false
// means nothing should be stored.
type Factory[V any] func() (V, bool)

// Instances maps owner identities to cached values.
type Instances[K comparable, V any] struct {
	name  string
	items map[K]V
	order []K
}

// NewInstances creates an empty cache. name labels the cache in
// observability events.
func NewInstances[K comparable, V any](name string) *Instances[K, V] {
	return &Instances[K, V]{
		name:  name,
		items: make(map[K]V),
	}
}

// Get returns the value cached for owner. On a miss it calls factory (when
// non-nil) and stores its result if the factory reports success. Without a
// stored value it returns the zero value and false.
func (c *Instances[K, V]) Get(owner K, factory Factory[V]) (V, bool) {
	if v, ok := c.items[owner]; ok {
		observability.Cache().OnCacheHit(c.name)
		return v, true
	}
	observability.Cache().OnCacheMiss(c.name)

	var zero V
	if factory == nil {
		return zero, false
	}
	v, ok := factory()
	if !ok {
		return zero, false
	}
	c.items[owner] = v
	c.order = append(c.order, owner)
	observability.Cache().OnCacheSet(c.name)
	return v, true
}

// Remove evicts the value cached for owner and returns it.
func (c *Instances[K, V]) Remove(owner K) (V, bool) {
	v, ok := c.items[owner]
	if !ok {
		return v, false
	}
	delete(c.items, owner)
	if i := slices.Index(c.order, owner); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}
	observability.Cache().OnCacheRemove(c.name)
	return v, true
}

// Len returns the number of cached values.
func (c *Instances[K, V]) Len() int { return len(c.items) }

// Keys returns the cached owners in insertion order.
func (c *Instances[K, V]) Keys() []K { return slices.Clone(c.order) }

// Name returns the label given at construction.
func (c *Instances[K, V]) Name() string { return c.name }
