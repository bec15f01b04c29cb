package datastruct

import (
	"iter"

	"github.com/hemmingway/mili/pkg/containerkit"
)

// MakeMap creates a Map populated with the entries of a native map.
func MakeMap[K comparable, V any](m map[K]V) Map[K, V] {
	var out Map[K, V]
	for k, v := range m {
		out.Set(k, v)
	}
	return out
}

// Map is a map shaped container (Key Value Store).
// Values are stored boxed, so each key's value has a stable identity reference:
// mutating through a reference returned by Ref
// is observed by subsequent lookups of the same key.
type Map[K comparable, V any] struct {
	vs map[K]*V
}

var _ containerkit.KVS[string, int] = (*Map[string, int])(nil)

// Set associates the key with the given value.
// When the key is already present, its stored value is updated in place,
// so previously handed out references observe the new value.
func (m *Map[K, V]) Set(key K, val V) {
	if m.vs == nil {
		m.vs = make(map[K]*V)
	}
	if ptr, ok := m.vs[key]; ok {
		*ptr = val
		return
	}
	box := val
	m.vs[key] = &box
}

// Lookup returns the value associated with the key.
func (m Map[K, V]) Lookup(key K) (V, bool) {
	ptr, ok := m.vs[key]
	if !ok {
		var zero V
		return zero, false
	}
	return *ptr, true
}

// Get returns the value associated with the key,
// or the zero value when the key is absent.
func (m Map[K, V]) Get(key K) V {
	v, _ := m.Lookup(key)
	return v
}

// Ref returns a reference to the value associated with the key.
func (m Map[K, V]) Ref(key K) (*V, bool) {
	ptr, ok := m.vs[key]
	return ptr, ok
}

func (m *Map[K, V]) Delete(key K) {
	delete(m.vs, key)
}

func (m Map[K, V]) Len() int { return len(m.vs) }

func (m Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.vs))
	for k := range m.vs {
		keys = append(keys, k)
	}
	return keys
}

func (m Map[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, ptr := range m.vs {
			if !yield(k, *ptr) {
				return
			}
		}
	}
}

// ToMap returns a copy of the entries as a native map.
func (m Map[K, V]) ToMap() map[K]V {
	out := make(map[K]V, len(m.vs))
	for k, ptr := range m.vs {
		out[k] = *ptr
	}
	return out
}
