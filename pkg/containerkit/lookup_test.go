package containerkit_test

import (
	"iter"
	"testing"

	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"github.com/hemmingway/mili/pkg/containerkit"
	"github.com/hemmingway/mili/pkg/datastruct"
)

var rnd = random.New(random.CryptoSeed{})

func TestFind(t *testing.T) {
	t.Run("happy - the matching element's reference is returned", func(t *testing.T) {
		list := datastruct.MakeList(3, 1, 4)

		ptr, err := containerkit.Find(&list, 1)
		assert.NoError(t, err)
		assert.NotNil(t, ptr)
		assert.Equal(t, 1, *ptr)
	})

	t.Run("happy - the reference aliases the container's storage", func(t *testing.T) {
		list := datastruct.MakeList(3, 1, 4)

		ptr, err := containerkit.Find(&list, 1)
		assert.NoError(t, err)
		*ptr = 42
		assert.Equal(t, []int{3, 42, 4}, list.ToSlice())
	})

	t.Run("rainy - missing element fails with ErrNotFound", func(t *testing.T) {
		list := datastruct.MakeList(3, 1, 4)

		ptr, err := containerkit.Find(&list, 9)
		assert.ErrorIs(t, err, containerkit.ErrNotFound)
		assert.Nil(t, ptr)
	})

	t.Run("set shape answers through its native lookup", func(t *testing.T) {
		spy := &spySet{}
		spy.Append(7)

		ptr, err := containerkit.Find[int](spy, 7)
		assert.NoError(t, err)
		assert.Equal(t, 7, *ptr)
		assert.Equal(t, 1, spy.refCalls)
		assert.Equal(t, 0, spy.refIterCalls)
	})
}

func TestTryFind(t *testing.T) {
	t.Run("present element", func(t *testing.T) {
		list := datastruct.MakeList(3, 1, 4)

		ptr := containerkit.TryFind(&list, 4)
		assert.NotNil(t, ptr)
		assert.Equal(t, 4, *ptr)
	})

	t.Run("absent element yields nil instead of a failure", func(t *testing.T) {
		list := datastruct.MakeList(3, 1, 4)

		assert.Nil(t, containerkit.TryFind(&list, 9))
	})

	t.Run("set shape answers through its native lookup", func(t *testing.T) {
		spy := &spySet{}
		spy.Append(7)

		assert.NotNil(t, containerkit.TryFind[int](spy, 7))
		assert.Nil(t, containerkit.TryFind[int](spy, 9))
		assert.Equal(t, 2, spy.refCalls)
		assert.Equal(t, 0, spy.refIterCalls)
	})
}

func TestFindKey(t *testing.T) {
	t.Run("happy - the associated value's reference is returned, not the key's", func(t *testing.T) {
		m := datastruct.MakeMap(map[string]int{"a": 1, "b": 2})

		ptr, err := containerkit.FindKey[string, int](&m, "a")
		assert.NoError(t, err)
		assert.Equal(t, 1, *ptr)
	})

	t.Run("happy - mutation through the reference is observed by later lookups", func(t *testing.T) {
		m := datastruct.MakeMap(map[string]int{"a": 1, "b": 2})

		ptr, err := containerkit.FindKey[string, int](&m, "a")
		assert.NoError(t, err)
		*ptr = 42
		got, ok := m.Lookup("a")
		assert.True(t, ok)
		assert.Equal(t, 42, got)
	})

	t.Run("rainy - missing key fails with ErrNotFound", func(t *testing.T) {
		m := datastruct.MakeMap(map[string]int{"a": 1, "b": 2})

		ptr, err := containerkit.FindKey[string, int](&m, "z")
		assert.ErrorIs(t, err, containerkit.ErrNotFound)
		assert.Nil(t, ptr)
	})
}

func TestTryFindKey(t *testing.T) {
	m := datastruct.MakeMap(map[string]int{"a": 1, "b": 2})

	t.Run("present key", func(t *testing.T) {
		ptr := containerkit.TryFindKey[string, int](&m, "b")
		assert.NotNil(t, ptr)
		assert.Equal(t, 2, *ptr)
	})

	t.Run("absent key yields nil instead of a failure", func(t *testing.T) {
		assert.Nil(t, containerkit.TryFindKey[string, int](&m, "z"))
	})
}

func TestContains(t *testing.T) {
	t.Run("sequence shape falls back to a linear scan", func(t *testing.T) {
		list := datastruct.MakeList(3, 1, 4)

		assert.True(t, containerkit.Contains(&list, 1))
		assert.False(t, containerkit.Contains(&list, 9))
	})

	t.Run("set shape answers through its native membership query", func(t *testing.T) {
		spy := &spySet{}
		spy.Append(7)

		assert.True(t, containerkit.Contains[int](spy, 7))
		assert.False(t, containerkit.Contains[int](spy, 9))
		assert.Equal(t, 2, spy.hasCalls)
		assert.Equal(t, 0, spy.iterCalls, "a linear scan was not expected")
	})

	t.Run("random elements", func(t *testing.T) {
		var list datastruct.List[int]
		present := rnd.Int()
		absent := random.Unique(rnd.Int, present)
		list.Append(present)

		assert.True(t, containerkit.Contains(&list, present))
		assert.False(t, containerkit.Contains(&list, absent))
	})
}

func TestContainsKey(t *testing.T) {
	m := datastruct.MakeMap(map[string]int{"a": 1, "b": 2})

	assert.True(t, containerkit.ContainsKey[string, int](&m, "a"))
	assert.False(t, containerkit.ContainsKey[string, int](&m, "z"))
}

// spySet records which lookup path the containerkit operations take.
type spySet struct {
	inner datastruct.Set[int]

	hasCalls     int
	refCalls     int
	iterCalls    int
	refIterCalls int
}

func (s *spySet) Append(vs ...int) { s.inner.Append(vs...) }

func (s *spySet) Has(v int) bool {
	s.hasCalls++
	return s.inner.Has(v)
}

func (s *spySet) Ref(v int) (*int, bool) {
	s.refCalls++
	return s.inner.Ref(v)
}

func (s *spySet) Len() int { return s.inner.Len() }

func (s *spySet) Iter() iter.Seq[int] {
	s.iterCalls++
	return s.inner.Iter()
}

func (s *spySet) RefIter() iter.Seq[*int] {
	s.refIterCalls++
	return s.inner.RefIter()
}
