package containerkit

// InsertInto inserts a value into a container
// using the insertion semantics of the container's shape:
// sequences append at their logical end,
// sets place the value by their own ordering/hashing rule
// and leave the container unchanged when an equal value is already present.
func InsertInto[T any](c Appender[T], v T) {
	c.Append(v)
}

// CopyInto copies every element of the source container into the destination,
// using the destination's own insertion semantics.
func CopyInto[T any](src Iterable[T], dst Appender[T]) {
	for v := range src.Iter() {
		dst.Append(v)
	}
}

// Inserter is the capability of being an insertion target.
//
// Code that only needs to put values somewhere can depend on Inserter
// and stay agnostic about the concrete container it fills.
// Insert returns a reference to the inserted element,
// so the caller can chain further mutation on it.
// An Inserter holds a reference to its container, it doesn't own it.
type Inserter[T any] interface {
	Insert(v T) *T
}

// SequenceInserter binds a sequence shaped container into an Inserter.
// Insert appends the value at the sequence's logical end
// and returns the reference of the freshly appended element.
func SequenceInserter[T any](seq Sequence[T]) Inserter[T] {
	return seqInserter[T]{seq: seq}
}

type seqInserter[T any] struct{ seq Sequence[T] }

func (i seqInserter[T]) Insert(v T) *T {
	i.seq.Append(v)
	return i.seq.RefAt(i.seq.Len() - 1)
}

// SetInserter binds a set shaped container into an Inserter.
// Insert adds the value through the set's native insertion,
// and returns the stored identity:
// when an equal element was already present, that element's reference is returned.
func SetInserter[T comparable](set Set[T]) Inserter[T] {
	return setInserter[T]{set: set}
}

type setInserter[T comparable] struct{ set Set[T] }

func (i setInserter[T]) Insert(v T) *T {
	i.set.Append(v)
	ptr, _ := i.set.Ref(v)
	return ptr
}
