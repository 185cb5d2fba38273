package render

import (
	"image"
	"image/color"
	"strings"
)

var sentinel = Cell{Ch: '\x00', Fg: color.RGBA{R: 255}, Bg: color.RGBA{B: 255}, Bold: true}

var (
	terminalBg = color.RGBA{10, 10, 15, 255}
	statusBg   = color.RGBA{15, 18, 30, 255}
	statusFg   = color.RGBA{180, 180, 195, 255}
)

// Terminal is a per-session double-buffer diff encoder. It turns a pixel
// canvas into half-block cells, two pixel rows per cell, and emits ANSI only
// for cells that changed since the previous frame.
type Terminal struct {
	width, height int
	current       [][]Cell
	next          [][]Cell
	firstFrame    bool
}

// NewTerminal creates an encoder for the given terminal dimensions.
func NewTerminal(width, height int) *Terminal {
	t := &Terminal{}
	t.Resize(width, height)
	return t
}

// Resize adjusts the encoder for a new terminal size and forces a full
// redraw.
func (t *Terminal) Resize(width, height int) {
	t.width = max(width, 0)
	t.height = max(height, 0)
	t.current = t.makeBuffer(sentinel)
	t.next = t.makeBuffer(Cell{})
	t.firstFrame = true
}

func (t *Terminal) makeBuffer(fill Cell) [][]Cell {
	buf := make([][]Cell, t.height)
	for y := 0; y < t.height; y++ {
		buf[y] = make([]Cell, t.width)
		for x := 0; x < t.width; x++ {
			buf[y][x] = fill
		}
	}
	return buf
}

// Compose produces the ANSI output for one frame. The canvas is centered
// horizontally above a one-row status line and clipped to the terminal.
func (t *Terminal) Compose(canvas *image.RGBA, status string, termW, termH int) string {
	if termW != t.width || termH != t.height {
		t.Resize(termW, termH)
	}
	if t.width == 0 || t.height == 0 {
		return ""
	}

	bgCell := Cell{Ch: ' ', Bg: terminalBg}
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			t.next[y][x] = bgCell
		}
	}

	viewRows := t.height - 1
	cb := canvas.Bounds()
	offX := max((t.width-cb.Dx())/2, 0)
	for cy := 0; cy < viewRows && 2*cy < cb.Dy(); cy++ {
		for cx := 0; cx < cb.Dx() && offX+cx < t.width; cx++ {
			top := canvas.RGBAAt(cb.Min.X+cx, cb.Min.Y+2*cy)
			bottom := terminalBg
			if 2*cy+1 < cb.Dy() {
				bottom = canvas.RGBAAt(cb.Min.X+cx, cb.Min.Y+2*cy+1)
			}
			t.next[cy][offX+cx] = Cell{Ch: UpperHalf, Fg: top, Bg: bottom}
		}
	}

	t.drawStatus(status)
	return t.flush()
}

func (t *Terminal) drawStatus(status string) {
	y := t.height - 1
	runes := []rune(status)
	for x := 0; x < t.width; x++ {
		c := Cell{Ch: ' ', Fg: statusFg, Bg: statusBg}
		if x >= 1 && x-1 < len(runes) {
			c.Ch = runes[x-1]
		}
		t.next[y][x] = c
	}
}

// flush diffs current vs next, emitting only changed cells, then swaps.
func (t *Terminal) flush() string {
	var sb strings.Builder
	sb.Grow(16384)

	lastRow, lastCol := -1, -1
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			nc := t.next[y][x]
			if t.firstFrame || nc != t.current[y][x] {
				// Only emit cursor position if not consecutive
				if y != lastRow || x != lastCol {
					sb.WriteString(MoveTo(y+1, x+1))
				}
				WriteCellSGR(&sb, nc)
				lastRow = y
				lastCol = x + 1
			}
		}
	}

	if sb.Len() > 0 {
		sb.WriteString(Reset)
	}

	t.current, t.next = t.next, t.current
	t.firstFrame = false

	return sb.String()
}
