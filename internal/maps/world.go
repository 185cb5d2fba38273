package maps

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// World is a fixed-size grid of tile ids stored row-major.
type World struct {
	cols, rows int
	cells      []int
}

// NewWorld returns a cols x rows world filled with tile 0.
func NewWorld(cols, rows int) *World {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &World{cols: cols, rows: rows, cells: make([]int, cols*rows)}
}

// FromRows builds a world from a [row][col] grid. Short rows are zero-filled
// up to the width of the longest row.
func FromRows(grid [][]int) *World {
	cols := 0
	for _, row := range grid {
		if len(row) > cols {
			cols = len(row)
		}
	}
	w := NewWorld(cols, len(grid))
	for r, row := range grid {
		copy(w.cells[r*cols:], row)
	}
	return w
}

// Cols returns the world width in tiles.
func (w *World) Cols() int { return w.cols }

// Rows returns the world height in tiles.
func (w *World) Rows() int { return w.rows }

// InBounds reports whether (col, row) is inside the grid.
func (w *World) InBounds(col, row int) bool {
	return col >= 0 && col < w.cols && row >= 0 && row < w.rows
}

// At returns the tile id at (col, row), or -1 outside the grid.
func (w *World) At(col, row int) int {
	if !w.InBounds(col, row) {
		return -1
	}
	return w.cells[row*w.cols+col]
}

func (w *World) set(col, row, id int) {
	w.cells[row*w.cols+col] = id
}

// Counts returns how many cells hold each tile id.
func (w *World) Counts() map[int]int {
	counts := make(map[int]int)
	for _, id := range w.cells {
		counts[id]++
	}
	return counts
}

// Fingerprint hashes the dimensions and contents of the grid. Two worlds
// with equal fingerprints are, for practical purposes, identical.
func (w *World) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [8]byte
	put := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		d.Write(buf[:])
	}
	put(w.cols)
	put(w.rows)
	for _, id := range w.cells {
		put(id)
	}
	return d.Sum64()
}

// WriteText encodes the world in the text map format: one line per row,
// ids separated by single spaces.
func (w *World) WriteText(out io.Writer) error {
	bw := bufio.NewWriter(out)
	for r := 0; r < w.rows; r++ {
		for c := 0; c < w.cols; c++ {
			if c > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(w.At(c, r)))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write map: %w", err)
	}
	return nil
}
