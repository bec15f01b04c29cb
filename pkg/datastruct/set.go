package datastruct

import (
	"iter"

	"github.com/hemmingway/mili/pkg/containerkit"
)

// MakeSet creates a Set populated with the given values.
func MakeSet[T comparable](vs ...T) Set[T] {
	var s Set[T]
	s.Append(vs...)
	return s
}

// Set is a hash based set shaped container.
// Elements are stored boxed, so every element has a stable identity reference
// for as long as it is a member of the set.
//
// Mutating a stored element through its reference in a way that changes
// its equality is undefined, the same as it would be for a hash key.
type Set[T comparable] struct {
	vs map[T]*T
}

var _ containerkit.Set[int] = (*Set[int])(nil)

// Append adds the values to the set.
// Values that are already present are ignored, keeping their stored identity.
func (s *Set[T]) Append(vs ...T) {
	for _, v := range vs {
		s.add(v)
	}
}

func (s *Set[T]) add(v T) {
	if s.vs == nil {
		s.vs = make(map[T]*T)
	}
	if _, ok := s.vs[v]; ok {
		return
	}
	box := v
	s.vs[v] = &box
}

func (s Set[T]) Has(v T) bool {
	_, ok := s.vs[v]
	return ok
}

// Ref returns the stored identity of the element equal to v.
func (s Set[T]) Ref(v T) (*T, bool) {
	ptr, ok := s.vs[v]
	return ptr, ok
}

func (s Set[T]) Len() int { return len(s.vs) }

func (s Set[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, ptr := range s.vs {
			if !yield(*ptr) {
				return
			}
		}
	}
}

func (s Set[T]) RefIter() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, ptr := range s.vs {
			if !yield(ptr) {
				return
			}
		}
	}
}

// ToSlice returns the set's elements in no particular order.
func (s Set[T]) ToSlice() []T {
	var out []T
	for _, ptr := range s.vs {
		out = append(out, *ptr)
	}
	return out
}
