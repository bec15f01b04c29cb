// Package compare contains comparison helpers for ordered container types.
package compare

import (
	"strings"

	"github.com/hemmingway/mili/internal/constraints"
)

// Interface defines how comparison can be implemented by a user-defined type.
//
// Types implementing this interface provide a Compare method
// that defines the ordering or equivalence of their values,
// which makes them usable as elements of ordered containers.
type Interface[T any] interface {
	// Compare returns
	//   -1 if the receiver is less than the argument,
	//    0 if they are equal, and
	//   +1 if the receiver is greater.
	Compare(T) int
}

// ByInterface is a comparator function for types implementing Interface.
func ByInterface[T Interface[T]](a, b T) int { return a.Compare(b) }

// IsEqual reports whether a comparison result means equality.
func IsEqual(cmp int) bool { return cmp == 0 }

// IsLess reports whether a comparison result means the receiver was the smaller value.
func IsLess(cmp int) bool { return cmp < 0 }

// IsGreater reports whether a comparison result means the receiver was the bigger value.
func IsGreater(cmp int) bool { return 0 < cmp }

// Numbers is a comparator function for any numeric type.
func Numbers[T constraints.Number](a, b T) int {
	switch {
	case a < b:
		return -1
	case b < a:
		return 1
	default:
		return 0
	}
}

// Strings is a comparator function for any string based type.
func Strings[S ~string](a, b S) int {
	return strings.Compare(string(a), string(b))
}
