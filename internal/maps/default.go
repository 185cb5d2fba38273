package maps

// Tile ids used by DefaultWorld. They match the built-in tile set.
const (
	DefaultGround = 0
	DefaultBorder = 1
	DefaultWater  = 2
)

// DefaultWorld returns a fallback world when no map file is configured:
// open ground ringed by border tiles, with an oval pond off-center.
func DefaultWorld(cols, rows int) *World {
	w := NewWorld(cols, rows)
	pondCol, pondRow := cols/3, rows/3
	radCol, radRow := max(cols/8, 1), max(rows/10, 1)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c == 0 || c == cols-1 || r == 0 || r == rows-1 {
				w.set(c, r, DefaultBorder)
				continue
			}
			dc := float64(c-pondCol) / float64(radCol)
			dr := float64(r-pondRow) / float64(radRow)
			if dc*dc+dr*dr <= 1 {
				w.set(c, r, DefaultWater)
			}
		}
	}
	return w
}
