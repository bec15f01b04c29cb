// Package errorkit contains the error handling building blocks of the library.
package errorkit

import (
	"errors"
	"fmt"
)

// Error is an error implementation that makes it possible
// to declare error values as exported constants.
//
//	const ErrNotFound errorkit.Error = "element not found"
type Error string

// Error implements the error interface.
func (err Error) Error() string { return string(err) }

// Wrap bundles another error value together with this Error.
// The returned error value matches both of them with errors.Is / errors.As.
func (err Error) Wrap(oth error) error {
	if oth == nil {
		return err
	}
	return wrapper{Owner: err, Wrapped: oth}
}

// F formats a detail message and wraps it under this Error.
func (err Error) F(format string, a ...any) error {
	return err.Wrap(fmt.Errorf(format, a...))
}

type wrapper struct {
	Owner   Error
	Wrapped error // never nil
}

func (w wrapper) Error() string {
	return fmt.Sprintf("[%s] %s", w.Owner, w.Wrapped.Error())
}

func (w wrapper) As(target any) bool {
	return errors.As(w.Owner, target) || errors.As(w.Wrapped, target)
}

func (w wrapper) Is(target error) bool {
	return errors.Is(w.Owner, target) || errors.Is(w.Wrapped, target)
}
