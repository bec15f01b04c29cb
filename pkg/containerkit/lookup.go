package containerkit

import "github.com/hemmingway/mili/pkg/errorkit"

// ErrNotFound is returned by the signaling lookup variants
// when the container holds no matching element.
const ErrNotFound errorkit.Error = "element not found"

// Find locates the element equal to target and returns a reference to it.
// The returned pointer aliases the container's storage.
//
// Find is the signaling lookup variant: when no element matches,
// it fails with ErrNotFound.
// Use TryFind when absence is a routine, expected outcome.
func Find[T comparable](c RefIterable[T], target T) (*T, error) {
	if ptr := TryFind(c, target); ptr != nil {
		return ptr, nil
	}
	return nil, ErrNotFound
}

// TryFind locates the element equal to target and returns a reference to it,
// or nil when no element matches.
//
// Containers with a native lookup primitive (set shape) answer through it;
// the rest are scanned linearly.
func TryFind[T comparable](c RefIterable[T], target T) *T {
	if ref, ok := c.(refLookup[T]); ok {
		ptr, ok := ref.Ref(target)
		if !ok {
			return nil
		}
		return ptr
	}
	for ptr := range c.RefIter() {
		if *ptr == target {
			return ptr
		}
	}
	return nil
}

// refLookup is the native element lookup capability of set shaped containers.
type refLookup[T any] interface {
	Ref(v T) (*T, bool)
}

// FindKey locates the value associated with the key in a map shaped container,
// and returns a reference to the associated value, never to the key.
// Mutating through the returned reference updates the value
// observed by subsequent lookups of the key.
//
// FindKey is the signaling lookup variant: when the key is absent,
// it fails with ErrNotFound.
// Use TryFindKey when absence is a routine, expected outcome.
func FindKey[K comparable, V any](m KVS[K, V], key K) (*V, error) {
	if ptr := TryFindKey(m, key); ptr != nil {
		return ptr, nil
	}
	return nil, ErrNotFound
}

// TryFindKey locates the value associated with the key in a map shaped container,
// or returns nil when the key is absent.
func TryFindKey[K comparable, V any](m KVS[K, V], key K) *V {
	ptr, ok := m.Ref(key)
	if !ok {
		return nil
	}
	return ptr
}

// Contains reports whether the container holds an element equal to target.
//
// When the container has a native membership primitive (Haser),
// Contains answers through it instead of scanning;
// the generic fallback for shapes without one is a linear value scan.
func Contains[T comparable](c Iterable[T], target T) bool {
	if h, ok := c.(Haser[T]); ok {
		return h.Has(target)
	}
	for v := range c.Iter() {
		if v == target {
			return true
		}
	}
	return false
}

// ContainsKey reports whether the map shaped container holds the given key.
// It always answers through the container's native key lookup.
func ContainsKey[K comparable, V any](m KVS[K, V], key K) bool {
	_, ok := m.Lookup(key)
	return ok
}
