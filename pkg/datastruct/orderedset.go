package datastruct

import (
	"iter"

	"github.com/hemmingway/mili/pkg/containerkit"
)

// OrderedSet is a set shaped container that keeps insertion order.
type OrderedSet[T comparable] struct {
	index map[T]*T
	order []*T
}

var _ containerkit.Set[int] = (*OrderedSet[int])(nil)

// Append adds the values to the set, keeping their insertion order.
// Values that are already present are ignored, keeping their stored identity.
func (s *OrderedSet[T]) Append(vs ...T) {
	for _, v := range vs {
		s.add(v)
	}
}

func (s *OrderedSet[T]) add(v T) {
	if s.index == nil {
		s.index = make(map[T]*T)
	}
	if _, ok := s.index[v]; ok {
		return
	}
	box := v
	s.index[v] = &box
	s.order = append(s.order, &box)
}

// FromSlice populates the set from a slice, keeping the slice's order.
func (s OrderedSet[T]) FromSlice(vs []T) OrderedSet[T] {
	s.Append(vs...)
	return s
}

func (s OrderedSet[T]) Has(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Ref returns the stored identity of the element equal to v.
func (s OrderedSet[T]) Ref(v T) (*T, bool) {
	ptr, ok := s.index[v]
	return ptr, ok
}

func (s OrderedSet[T]) Len() int { return len(s.index) }

func (s OrderedSet[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, ptr := range s.order {
			if !yield(*ptr) {
				return
			}
		}
	}
}

func (s OrderedSet[T]) RefIter() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, ptr := range s.order {
			if !yield(ptr) {
				return
			}
		}
	}
}

// ToSlice returns the set's elements in insertion order.
func (s OrderedSet[T]) ToSlice() []T {
	out := make([]T, 0, len(s.order))
	for _, ptr := range s.order {
		out = append(out, *ptr)
	}
	return out
}
