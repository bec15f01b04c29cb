package pointer_test

import (
	"testing"

	"github.com/hemmingway/mili/pkg/pointer"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

var rnd = random.New(random.CryptoSeed{})

func TestOf(t *testing.T) {
	v := rnd.Int()
	ptr := pointer.Of(v)
	assert.NotNil(t, ptr)
	assert.Equal(t, v, *ptr)
}

func TestDeref(t *testing.T) {
	t.Run("valid pointer", func(t *testing.T) {
		v := rnd.String()
		assert.Equal(t, v, pointer.Deref(&v))
	})
	t.Run("nil pointer yields zero value", func(t *testing.T) {
		assert.Equal(t, "", pointer.Deref[string](nil))
	})
}
