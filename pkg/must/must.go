// Package must is a syntax sugar package to turn (value, error) returns into panics.
//
// It is meant for call sites where an error is a programming mistake
// and meaningful recovery isn't possible, similarly to regexp.MustCompile.
package must

// Must is a syntax sugar to express things like must.Must(strconv.Atoi("42")).
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func Must2[A, B any](a A, b B, err error) (A, B) {
	if err != nil {
		panic(err)
	}
	return a, b
}
