package godskit

import (
	"iter"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/hemmingway/mili/pkg/containerkit"
)

// NewTreeSet creates an ordered set shaped container backed by a gods red-black tree.
// The cmp function defines the element ordering, and thereby element equality:
// elements comparing equal are considered the same set member.
func NewTreeSet[T comparable](cmp func(a, b T) int, vs ...T) *TreeSet[T] {
	s := &TreeSet[T]{tree: redblacktree.NewWith(func(a, b interface{}) int {
		return cmp(*a.(*T), *b.(*T))
	})}
	s.Append(vs...)
	return s
}

// TreeSet is an ordered set shaped adapter over gods' redblacktree.Tree.
// Iteration yields the elements in ascending order,
// and membership queries answer in O(log n) through the tree.
type TreeSet[T comparable] struct {
	tree *redblacktree.Tree
}

var _ containerkit.Set[int] = (*TreeSet[int])(nil)

// Append adds the values to the set.
// Values that are already present are ignored, keeping their stored identity.
func (s *TreeSet[T]) Append(vs ...T) {
	for _, v := range vs {
		if s.Has(v) {
			continue
		}
		box := v
		s.tree.Put(&box, &box)
	}
}

func (s *TreeSet[T]) Has(v T) bool {
	_, ok := s.tree.Get(&v)
	return ok
}

// Ref returns the stored identity of the element equal to v.
func (s *TreeSet[T]) Ref(v T) (*T, bool) {
	got, ok := s.tree.Get(&v)
	if !ok {
		return nil, false
	}
	return got.(*T), true
}

func (s *TreeSet[T]) Len() int { return s.tree.Size() }

func (s *TreeSet[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.tree.Iterator()
		for it.Next() {
			if !yield(*it.Key().(*T)) {
				return
			}
		}
	}
}

func (s *TreeSet[T]) RefIter() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		it := s.tree.Iterator()
		for it.Next() {
			if !yield(it.Key().(*T)) {
				return
			}
		}
	}
}

// ToSlice returns the set's elements in ascending order.
func (s *TreeSet[T]) ToSlice() []T {
	out := make([]T, 0, s.tree.Size())
	it := s.tree.Iterator()
	for it.Next() {
		out = append(out, *it.Key().(*T))
	}
	return out
}
