// Package registry provides a thread-safe, optionally sealed name table.
//
// jsonlogic keeps its three operator namespaces (built-in, array-context and
// custom) in registries. Built-in tables are sealed once populated so they
// cannot be changed after an engine is constructed.
package registry

import (
	"cmp"
	"errors"
	"slices"
	"sync"
)

// ErrSealed is returned when writing to a sealed registry.
var ErrSealed = errors.New("registry is sealed")

// Registry is a thread-safe table of values indexed by key.
// It uses sync.RWMutex since lookups vastly outnumber writes.
type Registry[K cmp.Ordered, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
	sealed  bool
}

// New creates a new empty registry.
func New[K cmp.Ordered, V any]() *Registry[K, V] {
	return &Registry[K, V]{
		entries: make(map[K]V),
	}
}

// Sealed creates a read-only registry holding a copy of entries.
func Sealed[K cmp.Ordered, V any](entries map[K]V) *Registry[K, V] {
	r := New[K, V]()
	for k, v := range entries {
		r.entries[k] = v
	}
	r.sealed = true
	return r
}

// Register adds or replaces the value for key.
func (r *Registry[K, V]) Register(key K, value V) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		return ErrSealed
	}
	r.entries[key] = value
	return nil
}

// Get returns the value for a key and whether it exists.
func (r *Registry[K, V]) Get(key K) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[key]
	return v, ok
}

// Has returns true if the key exists in the registry.
func (r *Registry[K, V]) Has(key K) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[key]
	return ok
}

// Delete removes a key from the registry.
func (r *Registry[K, V]) Delete(key K) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		return ErrSealed
	}
	delete(r.entries, key)
	return nil
}

// Keys returns all keys in ascending order.
func (r *Registry[K, V]) Keys() []K {
	r.mu.RLock()
	keys := make([]K, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	r.mu.RUnlock()
	slices.Sort(keys)
	return keys
}

// Len returns the number of entries in the registry.
func (r *Registry[K, V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// IsSealed reports whether the registry rejects writes.
func (r *Registry[K, V]) IsSealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// GetOrCreate returns the value for key, building it with factory if it
// doesn't exist. A factory error is returned and nothing is stored.
// The factory runs at most once per key even under concurrent access.
// Sealed registries never create entries.
func (r *Registry[K, V]) GetOrCreate(key K, factory func() (V, error)) (V, error) {
	r.mu.RLock()
	v, ok := r.entries[key]
	sealed := r.sealed
	r.mu.RUnlock()
	if ok {
		return v, nil
	}
	if sealed {
		var zero V
		return zero, ErrSealed
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock
	if v, ok := r.entries[key]; ok {
		return v, nil
	}

	v, err := factory()
	if err != nil {
		var zero V
		return zero, err
	}
	r.entries[key] = v
	return v, nil
}
