package mapslicehelp

import (
	"testing"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"github.com/stretchr/testify/assert"
)

func TestOrderedMapKeysAndValues(t *testing.T) {
	m := orderedmap.New[string, int]()
	m.Set("c", 3)
	m.Set("a", 1)
	m.Set("b", 2)

	assert.Equal(t, []string{"c", "a", "b"}, OrderedMapKeys(m))
	assert.Equal(t, []int{3, 1, 2}, OrderedMapValues(m))

	k, v, ok := Nth(m, 1)
	assert.True(t, ok)
	assert.Equal(t, "a", k)
	assert.Equal(t, 1, v)

	_, _, ok = Nth(m, 3)
	assert.False(t, ok)
	_, _, ok = Nth(m, -1)
	assert.False(t, ok)
}

func TestOrderedMapKeysEmpty(t *testing.T) {
	m := orderedmap.New[string, int]()
	assert.Empty(t, OrderedMapKeys(m))
	assert.Empty(t, OrderedMapValues(m))
}
