package containerkit

// View is the indexed read/write access a Cursor needs from its source container.
// Any Sequence satisfies it.
//
// View implementations are expected to be reference shaped values (pointers),
// so that copies of a Cursor keep observing the same source.
type View[T any] interface {
	RefAt(index int) *T
	Sizer
}

// Cursor is a self-contained position over a container:
// it bundles the current position and the end position into a single movable value,
// so call sites don't have to track and compare against an end marker separately.
//
// A Cursor is a value; copying it saves the position,
// and the copies can be advanced independently of each other.
// The end position is fixed at construction and never changes afterwards.
//
// A Cursor doesn't own or guard its source container:
// structurally mutating the container while a Cursor over it is alive
// invalidates the Cursor the same way it would invalidate a held index,
// and using it afterwards is undefined.
type Cursor[T any] struct {
	view View[T]
	pos  int
	end  int
}

// CursorOf returns a Cursor standing at the first element of the view,
// with the end position fixed at the view's current length.
func CursorOf[T any](view View[T]) Cursor[T] {
	return Cursor[T]{view: view, pos: 0, end: view.Len()}
}

// CursorOverSlice returns a Cursor over the elements of a slice.
// The Cursor aliases the slice's backing array,
// so writes through Ref are visible in the original slice.
func CursorOverSlice[T any](vs []T) Cursor[T] {
	view := sliceView[T](vs)
	return CursorOf[T](&view)
}

type sliceView[T any] []T

func (v *sliceView[T]) RefAt(index int) *T { return &(*v)[index] }

func (v *sliceView[T]) Len() int { return len(*v) }

// Advance moves the Cursor to the next position.
// Advancing past the end position is undefined.
func (c *Cursor[T]) Advance() { c.pos++ }

// Retreat moves the Cursor to the previous position.
// Retreating before the first position is undefined.
func (c *Cursor[T]) Retreat() { c.pos-- }

// Ref returns a reference to the element at the Cursor's current position.
// Assigning through it mutates the source container.
// Dereferencing a Cursor that stands at the end is undefined.
func (c Cursor[T]) Ref() *T { return c.view.RefAt(c.pos) }

// Value returns the element at the Cursor's current position.
func (c Cursor[T]) Value() T { return *c.Ref() }

// AtEnd reports whether the Cursor reached its end position.
func (c Cursor[T]) AtEnd() bool { return c.pos == c.end }

// Equal reports whether two cursors originate from the same source
// and stand at the same position.
// The end positions take no part in the comparison.
func (c Cursor[T]) Equal(oth Cursor[T]) bool {
	return c.view == oth.view && c.pos == oth.pos
}
