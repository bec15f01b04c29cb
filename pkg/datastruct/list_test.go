package datastruct_test

import (
	"testing"

	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"github.com/hemmingway/mili/pkg/containerkit"
	"github.com/hemmingway/mili/pkg/containerkit/containerkitcontract"
	"github.com/hemmingway/mili/pkg/datastruct"
)

func ExampleList() {
	list := datastruct.MakeList("foo", "bar")
	list.Append("baz")
	list.ToSlice() // []string{"foo", "bar", "baz"}
	list.Len()     // 3
}

func TestList(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})

	t.Run("Append and RefAt", func(t *testing.T) {
		var list datastruct.List[int]
		v := rnd.Int()
		list.Append(v)
		assert.Equal(t, 1, list.Len())
		assert.Equal(t, v, *list.RefAt(0))
	})

	t.Run("Append keeps the prior order", func(t *testing.T) {
		list := datastruct.MakeList(3, 1, 4)
		list.Append(1, 5)
		assert.Equal(t, []int{3, 1, 4, 1, 5}, list.ToSlice())
	})

	t.Run("RefAt aliases the stored element", func(t *testing.T) {
		list := datastruct.MakeList(1, 2, 3)
		*list.RefAt(1) = 42
		assert.Equal(t, []int{1, 42, 3}, list.ToSlice())
	})

	t.Run("Iter yields the elements in order", func(t *testing.T) {
		exp := []int{rnd.Int(), rnd.Int(), rnd.Int()}
		list := datastruct.MakeList(exp...)
		var got []int
		for v := range list.Iter() {
			got = append(got, v)
		}
		assert.Equal(t, exp, got)
	})

	t.Run("ToSlice returns a copy", func(t *testing.T) {
		list := datastruct.MakeList(1, 2, 3)
		out := list.ToSlice()
		out[0] = 42
		assert.Equal(t, 1, *list.RefAt(0))
	})

	t.Run("implements the sequence shape", containerkitcontract.Sequence[int](func(tb testing.TB) containerkit.Sequence[int] {
		return &datastruct.List[int]{}
	}).Test)
}
