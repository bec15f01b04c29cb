package godskit

import (
	"iter"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/hemmingway/mili/pkg/containerkit"
	"github.com/hemmingway/mili/pkg/pointer"
)

// NewList creates a sequence shaped container backed by a gods array list.
func NewList[T any](vs ...T) *List[T] {
	l := &List[T]{list: arraylist.New()}
	l.Append(vs...)
	return l
}

// List is a sequence shaped adapter over gods' arraylist.List.
type List[T any] struct {
	list *arraylist.List
}

var _ containerkit.Sequence[int] = (*List[int])(nil)

// Append adds the values at the end of the list.
func (l *List[T]) Append(vs ...T) {
	for _, v := range vs {
		l.list.Add(pointer.Of(v))
	}
}

func (l *List[T]) Len() int { return l.list.Size() }

// RefAt returns a reference to the element at the given position.
func (l *List[T]) RefAt(index int) *T {
	v, ok := l.list.Get(index)
	if !ok {
		panic("godskit: list index out of range")
	}
	return v.(*T)
}

func (l *List[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.list.Iterator()
		for it.Next() {
			if !yield(*it.Value().(*T)) {
				return
			}
		}
	}
}

func (l *List[T]) RefIter() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		it := l.list.Iterator()
		for it.Next() {
			if !yield(it.Value().(*T)) {
				return
			}
		}
	}
}

// ToSlice returns a copy of the list's elements.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.list.Size())
	it := l.list.Iterator()
	for it.Next() {
		out = append(out, *it.Value().(*T))
	}
	return out
}
