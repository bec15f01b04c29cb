package datastruct_test

import (
	"testing"

	"github.com/Pallinder/go-randomdata"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"github.com/hemmingway/mili/pkg/containerkit"
	"github.com/hemmingway/mili/pkg/containerkit/containerkitcontract"
	"github.com/hemmingway/mili/pkg/datastruct"
)

func ExampleMap() {
	m := datastruct.MakeMap(map[string]int{"a": 1, "b": 2})
	m.Get("a")    // 1
	m.Lookup("z") // 0, false
	m.Set("c", 3)
}

func TestMap(t *testing.T) {
	rnd := random.New(random.CryptoSeed{})

	t.Run("Set and Lookup", func(t *testing.T) {
		var m datastruct.Map[string, int]
		key := randomdata.SillyName()
		val := rnd.Int()

		_, ok := m.Lookup(key)
		assert.False(t, ok)

		m.Set(key, val)
		got, ok := m.Lookup(key)
		assert.True(t, ok)
		assert.Equal(t, val, got)
		assert.Equal(t, val, m.Get(key))
	})

	t.Run("Ref gives a stable reference to the value", func(t *testing.T) {
		var m datastruct.Map[string, int]
		key := randomdata.SillyName()
		m.Set(key, 1)

		ptr, ok := m.Ref(key)
		assert.True(t, ok)
		*ptr = 42
		assert.Equal(t, 42, m.Get(key))

		// updating the key keeps the handed out reference alive
		m.Set(key, 7)
		assert.Equal(t, 7, *ptr)
	})

	t.Run("Delete", func(t *testing.T) {
		var m datastruct.Map[string, int]
		key := randomdata.SillyName()
		m.Set(key, rnd.Int())
		m.Delete(key)
		_, ok := m.Lookup(key)
		assert.False(t, ok)
		assert.Equal(t, 0, m.Len())
	})

	t.Run("Keys and ToMap", func(t *testing.T) {
		exp := map[string]int{"a": 1, "b": 2}
		m := datastruct.MakeMap(exp)
		assert.ContainExactly(t, []string{"a", "b"}, m.Keys())
		assert.Equal(t, exp, m.ToMap())
	})

	t.Run("implements the map shape", containerkitcontract.KVS[string, int](func(tb testing.TB) containerkit.KVS[string, int] {
		return &datastruct.Map[string, int]{}
	}).Test)
}
