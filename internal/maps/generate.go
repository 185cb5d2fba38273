package maps

// Thresholds on normalized elevation for Generate.
const (
	waterLevel = 0.30
	rockLevel  = 0.74
)

// Generate builds a cols x rows world from fractal noise using the default
// tile ids: low ground becomes water, high ground becomes border stone, and
// the edge is a border ring. Ground not reachable from the returned spawn
// tile is filled with stone, so every open tile can be walked to.
func Generate(cols, rows int, seed int64) (w *World, spawnCol, spawnRow int) {
	elevation := newSimplex(seed)

	grid := make([][]int, rows)
	for r := range grid {
		grid[r] = make([]int, cols)
		for c := range grid[r] {
			if c == 0 || c == cols-1 || r == 0 || r == rows-1 {
				grid[r][c] = DefaultBorder
				continue
			}
			e := elevation.fractal(float64(c), float64(r), 0.06, 4)
			switch {
			case e < waterLevel:
				grid[r][c] = DefaultWater
			case e > rockLevel:
				grid[r][c] = DefaultBorder
			default:
				grid[r][c] = DefaultGround
			}
		}
	}
	w = FromRows(grid)

	spawnCol, spawnRow = findSpawn(w)
	if w.At(spawnCol, spawnRow) != DefaultGround {
		return w, spawnCol, spawnRow
	}

	reach := w.Reachable(spawnCol, spawnRow, func(id int) bool { return id == DefaultGround })
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if w.At(c, r) == DefaultGround && !reach[r*cols+c] {
				w.set(c, r, DefaultBorder)
			}
		}
	}
	return w, spawnCol, spawnRow
}

// findSpawn searches rings outward from the center for a ground tile whose
// 3x3 neighbourhood is all ground. It falls back to any ground tile, then
// the center.
func findSpawn(w *World) (int, int) {
	cc, cr := w.cols/2, w.rows/2
	open := func(c, r int) bool {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if w.At(c+dc, r+dr) != DefaultGround {
					return false
				}
			}
		}
		return true
	}

	for radius := 0; radius <= max(w.cols, w.rows)/2; radius++ {
		for dr := -radius; dr <= radius; dr++ {
			for dc := -radius; dc <= radius; dc++ {
				if abs(dc) != radius && abs(dr) != radius {
					continue // ring perimeter only
				}
				if open(cc+dc, cr+dr) {
					return cc + dc, cr + dr
				}
			}
		}
	}
	for r := 0; r < w.rows; r++ {
		for c := 0; c < w.cols; c++ {
			if w.At(c, r) == DefaultGround {
				return c, r
			}
		}
	}
	return cc, cr
}

// Reachable flood-fills from (col, row) through tiles accepted by walkable
// and returns a row-major membership mask.
func (w *World) Reachable(col, row int, walkable func(id int) bool) []bool {
	seen := make([]bool, len(w.cells))
	if !w.InBounds(col, row) || !walkable(w.At(col, row)) {
		return seen
	}

	type cell struct{ c, r int }
	stack := []cell{{col, row}}
	seen[row*w.cols+col] = true
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
			nc, nr := p.c+d[0], p.r+d[1]
			if !w.InBounds(nc, nr) {
				continue
			}
			i := nr*w.cols + nc
			if seen[i] || !walkable(w.cells[i]) {
				continue
			}
			seen[i] = true
			stack = append(stack, cell{nc, nr})
		}
	}
	return seen
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
