package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make is a function meant to create a new instance of the testing subject.
// In contract suites, the focus is on the role interface being examined,
// and Make supplies a fresh implementation of it for each testing case.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract represents a role interface specification.
//
// Any behavioral expectation a consumer has towards a supplier implementation
// should be defined in a contract, so different implementations
// can be verified against the same high-level behavior.
type Contract interface {
	testcase.Suite
	// Test asserts the expected behavioral requirements on a supplier implementation.
	Test(*testing.T)
	// Benchmark allows A/B testing supplier implementations on the performance aspects the consumer cares about.
	Benchmark(*testing.B)
}
