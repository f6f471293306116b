// Package observability provides hooks for logging and metrics.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about layout controllers, constraint rebuilds and cache
// operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are called synchronously from the goroutine that mutates the layout,
// so implementations must be cheap and must not call back into the layout
// packages.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Layout().OnConstraintRebuilt(view, attribute, "constant", active)
package observability

import (
	"sync"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from layout controllers and mutable constraints.
// Views and attributes are passed by name to keep this package free of
// layout types.
type LayoutHooks interface {
	// Controller lifecycle
	OnLayoutCreated(view string)
	OnLayoutRemoved(view string, constraints int)

	// OnConstraintAdded records a constraint registered with a controller.
	OnConstraintAdded(view, attribute string)

	// OnConstraintRebuilt records a native constraint swap caused by changing
	// field. active is the activation state carried over.
	OnConstraintRebuilt(view, attribute, field string, active bool)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from instance cache operations.
type CacheHooks interface {
	// OnCacheHit records a lookup served from the cache.
	OnCacheHit(cache string)

	// OnCacheMiss records a lookup with no cached value.
	OnCacheMiss(cache string)

	// OnCacheSet records a value built by a factory and stored.
	OnCacheSet(cache string)

	// OnCacheRemove records an explicit eviction.
	OnCacheRemove(cache string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayoutCreated(string)                           {}
func (NoopLayoutHooks) OnLayoutRemoved(string, int)                      {}
func (NoopLayoutHooks) OnConstraintAdded(string, string)                 {}
func (NoopLayoutHooks) OnConstraintRebuilt(string, string, string, bool) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(string)    {}
func (NoopCacheHooks) OnCacheMiss(string)   {}
func (NoopCacheHooks) OnCacheSet(string)    {}
func (NoopCacheHooks) OnCacheRemove(string) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
	hooksMu     sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout operations.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	cacheHooks = NoopCacheHooks{}
}
