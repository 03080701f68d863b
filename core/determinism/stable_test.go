package determinism

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"c": 3, "a": 1, "b": 2}

	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(m))
	assert.Equal(t, []int{1, 2, 3}, SortedValues(m))
	assert.Empty(t, SortedKeys(map[string]int{}))
}

func TestHasherIsOrderSensitive(t *testing.T) {
	a := NewHasher().Record("rate", "x", 1).Record("fee", "y", 2).Sum()
	b := NewHasher().Record("rate", "x", 1).Record("fee", "y", 2).Sum()
	c := NewHasher().Record("fee", "y", 2).Record("rate", "x", 1).Sum()
	d := NewHasher().Record("rate", "x1").Record("fee", "y", 2).Sum()

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
}

func TestContentHashFormatting(t *testing.T) {
	h := NewHasher().Record("aws").Sum()

	assert.Len(t, h.Hex(), 64)
	assert.Equal(t, h.Hex()[:16], h.Short())
	assert.Equal(t, h.Short()+"...", h.String())
}
