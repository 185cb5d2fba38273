package maps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtOutOfBounds(t *testing.T) {
	w := FromRows([][]int{{1, 2}, {3}})
	assert.Equal(t, 2, w.Cols())
	assert.Equal(t, 3, w.At(0, 1))
	assert.Equal(t, 0, w.At(1, 1), "short row is zero-filled")
	assert.Equal(t, -1, w.At(-1, 0))
	assert.Equal(t, -1, w.At(2, 0))
	assert.Equal(t, -1, w.At(0, 2))
}

func TestFingerprint(t *testing.T) {
	a := FromRows([][]int{{1, 2}, {3, 4}})
	b := FromRows([][]int{{1, 2}, {3, 4}})
	c := FromRows([][]int{{1, 2}, {4, 3}})
	d := FromRows([][]int{{1, 2, 3, 4}})

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), d.Fingerprint(), "same cells, different shape")
}

func TestDefaultWorld(t *testing.T) {
	w := DefaultWorld(50, 50)
	for i := 0; i < 50; i++ {
		assert.Equal(t, DefaultBorder, w.At(i, 0))
		assert.Equal(t, DefaultBorder, w.At(i, 49))
		assert.Equal(t, DefaultBorder, w.At(0, i))
		assert.Equal(t, DefaultBorder, w.At(49, i))
	}
	assert.Equal(t, DefaultWater, w.At(50/3, 50/3))
	assert.Equal(t, DefaultGround, w.At(25, 25))

	counts := w.Counts()
	assert.Equal(t, 50*50, counts[DefaultGround]+counts[DefaultBorder]+counts[DefaultWater])
}
