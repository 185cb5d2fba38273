package render

import (
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalComposeDiffs(t *testing.T) {
	canvas := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			canvas.SetRGBA(x, y, red)
		}
	}
	term := NewTerminal(6, 3)

	first := term.Compose(canvas, "hi", 6, 3)
	require.NotEmpty(t, first)
	assert.True(t, strings.HasPrefix(first, MoveTo(1, 1)))
	assert.Equal(t, 8, strings.Count(first, string(UpperHalf)), "4 columns x 2 cell rows")
	assert.Contains(t, first, "h")
	assert.True(t, strings.HasSuffix(first, Reset))

	assert.Empty(t, term.Compose(canvas, "hi", 6, 3), "unchanged frame emits nothing")

	canvas.SetRGBA(3, 3, green)
	delta := term.Compose(canvas, "hi", 6, 3)
	assert.Equal(t, 1, strings.Count(delta, string(UpperHalf)))
	// Canvas is centered: offset 1, cell column 3, cell row 1.
	assert.True(t, strings.HasPrefix(delta, MoveTo(2, 5)))
}

func TestTerminalResizeRedraws(t *testing.T) {
	canvas := image.NewRGBA(image.Rect(0, 0, 2, 2))
	term := NewTerminal(4, 2)
	term.Compose(canvas, "", 4, 2)
	out := term.Compose(canvas, "", 5, 3)
	assert.Equal(t, 15, strings.Count(out, "m")-1, "every cell re-emitted after resize")
	assert.Empty(t, term.Compose(canvas, "", 0, 0))
}
