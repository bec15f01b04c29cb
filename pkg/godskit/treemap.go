package godskit

import (
	"iter"

	"github.com/emirpasic/gods/maps/treemap"

	"github.com/hemmingway/mili/pkg/containerkit"
)

// NewTreeMap creates a map shaped container backed by a gods tree map.
// The cmp function defines the key ordering.
func NewTreeMap[K comparable, V any](cmp func(a, b K) int) *TreeMap[K, V] {
	return &TreeMap[K, V]{m: treemap.NewWith(func(a, b interface{}) int {
		return cmp(a.(K), b.(K))
	})}
}

// TreeMap is a map shaped adapter over gods' treemap.Map.
// Key lookup answers in O(log n) through the tree,
// and iteration yields the entries in ascending key order.
// Values are stored boxed, so each key's value has a stable identity reference.
type TreeMap[K comparable, V any] struct {
	m *treemap.Map
}

var _ containerkit.KVS[string, int] = (*TreeMap[string, int])(nil)

// Set associates the key with the given value.
// When the key is already present, its stored value is updated in place,
// so previously handed out references observe the new value.
func (m *TreeMap[K, V]) Set(key K, val V) {
	if ptr, ok := m.Ref(key); ok {
		*ptr = val
		return
	}
	box := val
	m.m.Put(key, &box)
}

// Lookup returns the value associated with the key.
func (m *TreeMap[K, V]) Lookup(key K) (V, bool) {
	ptr, ok := m.Ref(key)
	if !ok {
		var zero V
		return zero, false
	}
	return *ptr, true
}

// Ref returns a reference to the value associated with the key.
func (m *TreeMap[K, V]) Ref(key K) (*V, bool) {
	got, ok := m.m.Get(key)
	if !ok {
		return nil, false
	}
	return got.(*V), true
}

func (m *TreeMap[K, V]) Delete(key K) {
	m.m.Remove(key)
}

func (m *TreeMap[K, V]) Len() int { return m.m.Size() }

// Keys returns the keys in ascending order.
func (m *TreeMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.m.Size())
	for _, k := range m.m.Keys() {
		keys = append(keys, k.(K))
	}
	return keys
}

func (m *TreeMap[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.m.Iterator()
		for it.Next() {
			if !yield(it.Key().(K), *it.Value().(*V)) {
				return
			}
		}
	}
}

// ToMap returns a copy of the entries as a native map.
func (m *TreeMap[K, V]) ToMap() map[K]V {
	out := make(map[K]V, m.m.Size())
	it := m.m.Iterator()
	for it.Next() {
		out[it.Key().(K)] = *it.Value().(*V)
	}
	return out
}
