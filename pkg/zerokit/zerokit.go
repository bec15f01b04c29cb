// Package zerokit helps with zero value related use-cases.
package zerokit

import "reflect"

// Coalesce will return the first non-zero value from the provided values.
func Coalesce[T any](vs ...T) T {
	for _, v := range vs {
		if !IsZero(v) {
			return v
		}
	}
	return *new(T)
}

// IsZero reports whether a value is the zero value of its type.
// It works with non-comparable types such as functions, maps and slices as well.
func IsZero[T any](v T) bool {
	return reflect.ValueOf(&v).Elem().IsZero()
}
