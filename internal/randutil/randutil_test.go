package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()

	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Int64(), b.Int64())
	}

	c, d := New(1), New(2)
	same := true
	for i := 0; i < 10; i++ {
		if c.Int64() != d.Int64() {
			same = false
		}
	}
	assert.False(t, same, "different seeds should diverge")
}

func TestPins(t *testing.T) {
	t.Parallel()

	r := New(7)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		p := Pins(r, 1, 10)
		assert.GreaterOrEqual(t, p, 1)
		assert.LessOrEqual(t, p, 10)
		seen[p] = true
	}
	assert.Len(t, seen, 10)

	assert.Equal(t, 3, Pins(r, 3, 3))
	assert.Equal(t, 5, Pins(r, 5, 2))
}
