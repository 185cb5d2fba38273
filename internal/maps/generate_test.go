package maps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	a, ac, ar := Generate(40, 30, 7)
	b, bc, br := Generate(40, 30, 7)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.Equal(t, ac, bc)
	assert.Equal(t, ar, br)

	c, _, _ := Generate(40, 30, 8)
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestGenerateShape(t *testing.T) {
	w, sc, sr := Generate(40, 30, 42)
	require.Equal(t, 40, w.Cols())
	require.Equal(t, 30, w.Rows())

	for c := 0; c < 40; c++ {
		assert.Equal(t, DefaultBorder, w.At(c, 0))
		assert.Equal(t, DefaultBorder, w.At(c, 29))
	}
	for r := 0; r < 30; r++ {
		assert.Equal(t, DefaultBorder, w.At(0, r))
		assert.Equal(t, DefaultBorder, w.At(39, r))
	}
	for id := range w.Counts() {
		assert.Contains(t, []int{DefaultGround, DefaultBorder, DefaultWater}, id)
	}

	// Every ground tile is reachable from the spawn.
	require.Equal(t, DefaultGround, w.At(sc, sr))
	ground := func(id int) bool { return id == DefaultGround }
	reach := w.Reachable(sc, sr, ground)
	for r := 0; r < w.Rows(); r++ {
		for c := 0; c < w.Cols(); c++ {
			if w.At(c, r) == DefaultGround {
				assert.True(t, reach[r*w.Cols()+c], "(%d,%d)", c, r)
			}
		}
	}
}

func TestReachable(t *testing.T) {
	w := FromRows([][]int{
		{0, 0, 1, 0},
		{1, 0, 1, 0},
		{0, 0, 1, 0},
	})
	ground := func(id int) bool { return id == 0 }

	reach := w.Reachable(0, 0, ground)
	want := []bool{
		true, true, false, false,
		false, true, false, false,
		true, true, false, false,
	}
	assert.Equal(t, want, reach)

	assert.Equal(t, make([]bool, 12), w.Reachable(2, 0, ground), "start on a wall")
	assert.Equal(t, make([]bool, 12), w.Reachable(-1, 0, ground), "start outside")
}
