// Package pointer is a syntax sugar package for pointer manipulation.
package pointer

// Of takes the pointer of a value.
func Of[T any](v T) *T { return &v }

// Deref returns the referenced value,
// or the zero value when the pointer is nil.
func Deref[T any](v *T) T {
	if v == nil {
		return *new(T)
	}
	return *v
}
