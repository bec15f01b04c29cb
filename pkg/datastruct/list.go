package datastruct

import (
	"iter"

	"github.com/hemmingway/mili/pkg/containerkit"
)

// MakeList creates a List populated with the given values.
func MakeList[T any](vs ...T) List[T] {
	var l List[T]
	l.Append(vs...)
	return l
}

// List is a slice backed sequence shaped container.
type List[T any] []T

var _ containerkit.Sequence[any] = (*List[any])(nil)

// Append adds the values at the end of the list.
func (l *List[T]) Append(vs ...T) {
	*l = append(*l, vs...)
}

func (l List[T]) Len() int { return len(l) }

// RefAt returns a reference to the element at the given position.
// The reference stays valid until the next structural mutation of the list.
func (l List[T]) RefAt(index int) *T { return &l[index] }

func (l List[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l {
			if !yield(v) {
				return
			}
		}
	}
}

func (l List[T]) RefIter() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range l {
			if !yield(&l[i]) {
				return
			}
		}
	}
}

// ToSlice returns a copy of the list's elements.
func (l List[T]) ToSlice() []T {
	return append([]T(nil), l...)
}
