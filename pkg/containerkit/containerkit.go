// Package containerkit provides generic operations over heterogeneous container shapes.
//
// # Summary
//
// Higher-level code often needs to look up, test membership for, or insert values
// into containers without caring whether the container is a sequence, a set or a
// key-value map. containerkit expresses each container shape as a small capability
// interface, and the package level operations (Find, Contains, InsertInto, ...)
// pick the right algorithm for the shape they are given at compile time:
// sequences are scanned linearly, while sets and maps answer through their
// native lookup primitive.
//
// The package doesn't implement container storage itself;
// it operates on containers supplied by the caller,
// such as the ones found in the datastruct and godskit packages.
package containerkit

import "iter"

// Iterable is a container capability that yields the container's elements by value.
type Iterable[T any] interface {
	Iter() iter.Seq[T]
}

// RefIterable is a container capability that yields references to the stored elements.
// The yielded pointers alias the container's storage,
// so assigning through them mutates the container.
type RefIterable[T any] interface {
	RefIter() iter.Seq[*T]
}

// Appender is a container capability to take in new elements
// with whatever insertion semantics the container shape defines.
// Sequence shaped containers append at their logical end,
// set shaped containers place the value according to their own rules
// and ignore values that are already present.
type Appender[T any] interface {
	Append(vs ...T)
}

// Haser is a container capability for a native membership query.
// Shapes with a Haser implementation answer Contains without scanning.
type Haser[T any] interface {
	Has(v T) bool
}

type Sizer interface {
	// Len returns the number of elements in the container.
	Len() int
}

// Sequence is the capability set of a sequence shaped container:
// an ordered series of elements with positional access and append-at-end insertion.
type Sequence[T any] interface {
	Iterable[T]
	RefIterable[T]
	Appender[T]
	Sizer
	// RefAt returns a reference to the element at the given position.
	RefAt(index int) *T
}

// Set is the capability set of a set shaped container:
// a collection of unique elements with native membership testing.
type Set[T any] interface {
	Iterable[T]
	RefIterable[T]
	Appender[T]
	Haser[T]
	Sizer
	// Ref returns a reference to the stored element that is equal to v.
	// The returned pointer is the element's stored identity:
	// looking up the same element again yields the same pointer
	// until the element is removed from the set.
	Ref(v T) (*T, bool)
}

// KVS is the capability set of a map shaped container (Key Value Store):
// a unique-key to value association with native key lookup.
type KVS[K comparable, V any] interface {
	// Lookup returns the value associated with the key.
	Lookup(key K) (V, bool)
	// Ref returns a reference to the value associated with the key.
	// Mutating through the reference is observed by subsequent lookups of the key.
	Ref(key K) (*V, bool)
	// Set associates the key with the given value.
	Set(key K, val V)
	Iter() iter.Seq2[K, V]
	Sizer
}
