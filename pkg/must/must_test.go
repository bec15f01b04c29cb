package must_test

import (
	"strconv"
	"testing"

	"github.com/hemmingway/mili/pkg/must"
	"go.llib.dev/testcase/assert"
)

func TestMust(t *testing.T) {
	t.Run("happy", func(t *testing.T) {
		assert.Equal(t, 42, must.Must(strconv.Atoi("42")))
	})
	t.Run("rainy", func(t *testing.T) {
		pv := assert.Panic(t, func() {
			must.Must(strconv.Atoi("forty-two"))
		})
		err, ok := pv.(error)
		assert.True(t, ok)
		assert.Error(t, err)
	})
}

func TestMust2(t *testing.T) {
	t.Run("happy", func(t *testing.T) {
		a, b := must.Must2("a", "b", nil)
		assert.Equal(t, "a", a)
		assert.Equal(t, "b", b)
	})
	t.Run("rainy", func(t *testing.T) {
		assert.Panic(t, func() {
			must.Must2("a", "b", strconv.ErrSyntax)
		})
	})
}
