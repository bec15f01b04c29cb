// Package containerkitcontract provides reusable behavioral contracts
// for the container shapes of containerkit.
//
// Any Sequence, Set or KVS implementation can be verified against
// the shape semantics that the containerkit operations rely on.
package containerkitcontract

import (
	"fmt"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"github.com/hemmingway/mili/pkg/containerkit"
	"github.com/hemmingway/mili/pkg/zerokit"
	"github.com/hemmingway/mili/port/contract"
	"github.com/hemmingway/mili/port/option"
)

// Sequence is the behavioral contract of a sequence shaped container.
func Sequence[T comparable](mk contract.Make[containerkit.Sequence[T]], opts ...SequenceOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	s.Test("append grows the sequence and the prior elements keep their order", func(t *testcase.T) {
		seq := mk(t)
		var exp []T
		t.Random.Repeat(3, 7, func() {
			v := c.makeUnique(t, exp)
			seq.Append(v)
			exp = append(exp, v)
			assert.Equal(t, len(exp), seq.Len())
		})
		for i, v := range exp {
			assert.Equal(t, v, *seq.RefAt(i))
		}
	})

	s.Test("the appended element becomes the last element", func(t *testcase.T) {
		seq := mk(t)
		var used []T
		t.Random.Repeat(2, 5, func() {
			v := c.makeUnique(t, used)
			used = append(used, v)
			seq.Append(v)
			assert.Equal(t, v, *seq.RefAt(seq.Len()-1))
		})
	})

	s.Test("RefAt aliases the stored element", func(t *testcase.T) {
		seq := mk(t)
		og := c.makeT(t)
		seq.Append(og)
		oth := c.makeUnique(t, []T{og})
		*seq.RefAt(0) = oth
		assert.Equal(t, oth, *seq.RefAt(0))
	})

	s.Test("Iter yields the elements in positional order", func(t *testcase.T) {
		seq := mk(t)
		var exp []T
		t.Random.Repeat(3, 7, func() {
			v := c.makeUnique(t, exp)
			exp = append(exp, v)
			seq.Append(v)
		})
		var got []T
		for v := range seq.Iter() {
			got = append(got, v)
		}
		assert.Equal(t, exp, got)
	})

	s.Test("RefIter references the stored elements", func(t *testcase.T) {
		seq := mk(t)
		var used []T
		t.Random.Repeat(3, 7, func() {
			v := c.makeUnique(t, used)
			used = append(used, v)
			seq.Append(v)
		})
		var i int
		for ptr := range seq.RefIter() {
			assert.Equal(t, *seq.RefAt(i), *ptr)
			i++
		}
		assert.Equal(t, seq.Len(), i)
	})

	return s.AsSuite(fmt.Sprintf("Sequence[%T]", *new(T)))
}

type SequenceOption[T comparable] interface {
	option.Option[SequenceConfig[T]]
}

type SequenceConfig[T comparable] struct {
	MakeT func(tb testing.TB) T
}

var _ SequenceOption[string] = SequenceConfig[string]{}

func (c SequenceConfig[T]) Configure(o *SequenceConfig[T]) {
	o.MakeT = zerokit.Coalesce(c.MakeT, o.MakeT)
}

func (c SequenceConfig[T]) makeT(t *testcase.T) T {
	return makeT(t, c.MakeT)
}

func (c SequenceConfig[T]) makeUnique(t *testcase.T, used []T) T {
	return random.Unique(func() T { return c.makeT(t) }, used...)
}

// Set is the behavioral contract of a set shaped container.
func Set[T comparable](mk contract.Make[containerkit.Set[T]], opts ...SetOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	s.Test("append makes the element a member", func(t *testcase.T) {
		set := mk(t)
		v := c.makeT(t)
		assert.False(t, set.Has(v))
		set.Append(v)
		assert.True(t, set.Has(v))
		oth := c.makeUnique(t, []T{v})
		assert.False(t, set.Has(oth))
	})

	s.Test("members are unique, appending a present element leaves the set unchanged", func(t *testcase.T) {
		set := mk(t)
		v := c.makeT(t)
		set.Append(v)
		assert.Equal(t, 1, set.Len())
		t.Random.Repeat(2, 5, func() {
			set.Append(v)
		})
		assert.Equal(t, 1, set.Len())
		assert.True(t, set.Has(v))
	})

	s.Test("appending a present element keeps the stored identity", func(t *testcase.T) {
		set := mk(t)
		v := c.makeT(t)
		set.Append(v)
		og, ok := set.Ref(v)
		assert.True(t, ok)
		set.Append(v)
		got, ok := set.Ref(v)
		assert.True(t, ok)
		assert.True(t, og == got, "the stored identity was expected to be kept")
	})

	s.Test("Ref misses for non members", func(t *testcase.T) {
		set := mk(t)
		_, ok := set.Ref(c.makeT(t))
		assert.False(t, ok)
	})

	s.Test("Iter yields each member exactly once", func(t *testcase.T) {
		set := mk(t)
		var members []T
		t.Random.Repeat(3, 7, func() {
			v := c.makeUnique(t, members)
			members = append(members, v)
			set.Append(v)
		})
		var got []T
		for v := range set.Iter() {
			got = append(got, v)
		}
		assert.ContainExactly(t, members, got)
	})

	return s.AsSuite(fmt.Sprintf("Set[%T]", *new(T)))
}

type SetOption[T comparable] interface {
	option.Option[SetConfig[T]]
}

type SetConfig[T comparable] struct {
	MakeT func(tb testing.TB) T
}

var _ SetOption[string] = SetConfig[string]{}

func (c SetConfig[T]) Configure(o *SetConfig[T]) {
	o.MakeT = zerokit.Coalesce(c.MakeT, o.MakeT)
}

func (c SetConfig[T]) makeT(t *testcase.T) T {
	return makeT(t, c.MakeT)
}

func (c SetConfig[T]) makeUnique(t *testcase.T, used []T) T {
	return random.Unique(func() T { return c.makeT(t) }, used...)
}

// KVS is the behavioral contract of a map shaped container.
func KVS[K comparable, V any](mk contract.Make[containerkit.KVS[K, V]], opts ...KVSOption[K, V]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	s.Test("set and lookup", func(t *testcase.T) {
		kvs := mk(t)
		var keys []K
		expected := map[K]V{}
		t.Random.Repeat(3, 7, func() {
			k := random.Unique(func() K { return c.makeK(t) }, keys...)
			keys = append(keys, k)
			expected[k] = c.makeV(t)
		})

		var expLen int
		for k, v := range expected {
			assert.Equal(t, expLen, kvs.Len())
			_, ok := kvs.Lookup(k)
			assert.False(t, ok, assert.MessageF("%#v key was not expected to be found", k))

			kvs.Set(k, v)
			expLen++
			assert.Equal(t, expLen, kvs.Len())
			got, ok := kvs.Lookup(k)
			assert.True(t, ok)
			assert.Equal(t, v, got)
		}
	})

	s.Test("keys are unique in the store", func(t *testcase.T) {
		kvs := mk(t)
		k := c.makeK(t)
		t.Random.Repeat(2, 5, func() {
			kvs.Set(k, c.makeV(t))
		})
		assert.Equal(t, 1, kvs.Len())
		exp := c.makeV(t)
		kvs.Set(k, exp)
		assert.Equal(t, 1, kvs.Len())
		got, ok := kvs.Lookup(k)
		assert.True(t, ok)
		assert.Equal(t, exp, got)
	})

	s.Test("Ref returns a reference to the associated value, and mutation through it is visible", func(t *testcase.T) {
		kvs := mk(t)
		k := c.makeK(t)
		kvs.Set(k, c.makeV(t))

		ptr, ok := kvs.Ref(k)
		assert.True(t, ok)
		exp := c.makeV(t)
		*ptr = exp
		got, ok := kvs.Lookup(k)
		assert.True(t, ok)
		assert.Equal(t, exp, got)
	})

	s.Test("Ref misses for absent keys", func(t *testcase.T) {
		kvs := mk(t)
		_, ok := kvs.Ref(c.makeK(t))
		assert.False(t, ok)
	})

	s.Test("Iter yields the stored entries", func(t *testcase.T) {
		kvs := mk(t)
		var keys []K
		expected := map[K]V{}
		t.Random.Repeat(3, 7, func() {
			k := random.Unique(func() K { return c.makeK(t) }, keys...)
			keys = append(keys, k)
			v := c.makeV(t)
			expected[k] = v
			kvs.Set(k, v)
		})
		got := map[K]V{}
		for k, v := range kvs.Iter() {
			got[k] = v
		}
		assert.Equal(t, expected, got)
	})

	return s.AsSuite(fmt.Sprintf("KVS[%T, %T]", *new(K), *new(V)))
}

type KVSOption[K comparable, V any] interface {
	option.Option[KVSConfig[K, V]]
}

type KVSConfig[K comparable, V any] struct {
	MakeK func(testing.TB) K
	MakeV func(testing.TB) V
}

var _ KVSOption[string, int] = KVSConfig[string, int]{}

func (c KVSConfig[K, V]) Configure(o *KVSConfig[K, V]) {
	o.MakeK = zerokit.Coalesce(c.MakeK, o.MakeK)
	o.MakeV = zerokit.Coalesce(c.MakeV, o.MakeV)
}

func (c KVSConfig[K, V]) makeK(t *testcase.T) K {
	return makeT(t, c.MakeK)
}

func (c KVSConfig[K, V]) makeV(t *testcase.T) V {
	return makeT(t, c.MakeV)
}

// makeT falls back to random values for the common element types
// when no Make function is configured.
func makeT[T any](t *testcase.T, mk func(testing.TB) T) T {
	if mk != nil {
		return mk(t)
	}
	var zero T
	switch any(zero).(type) {
	case string:
		return any(t.Random.String()).(T)
	case int:
		return any(t.Random.Int()).(T)
	default:
		panic(fmt.Sprintf("containerkitcontract: Make function is required for %T", zero))
	}
}
