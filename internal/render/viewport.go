package render

import (
	"errors"
	"fmt"

	"durotar/internal/game"
)

// ErrBadGeometry is returned by Config.Validate.
var ErrBadGeometry = errors.New("invalid viewport geometry")

// Config is the fixed screen and world geometry shared by the camera, the
// culler and the renderer. It never changes after startup.
type Config struct {
	TileSize   int // pixels per tile edge, on screen and in the world
	ScreenCols int
	ScreenRows int
	WorldCols  int
	WorldRows  int
}

// Validate checks that every dimension is positive.
func (c Config) Validate() error {
	if c.TileSize <= 0 || c.ScreenCols <= 0 || c.ScreenRows <= 0 || c.WorldCols <= 0 || c.WorldRows <= 0 {
		return fmt.Errorf("%w: tile %d, screen %dx%d, world %dx%d", ErrBadGeometry,
			c.TileSize, c.ScreenCols, c.ScreenRows, c.WorldCols, c.WorldRows)
	}
	return nil
}

// ScreenWidth returns the viewport width in pixels.
func (c Config) ScreenWidth() int { return c.TileSize * c.ScreenCols }

// ScreenHeight returns the viewport height in pixels.
func (c Config) ScreenHeight() int { return c.TileSize * c.ScreenRows }

// AnchorX is the screen x where the tracked entity is always drawn.
func (c Config) AnchorX() int { return c.ScreenWidth()/2 - c.TileSize/2 }

// AnchorY is the screen y where the tracked entity is always drawn.
func (c Config) AnchorY() int { return c.ScreenHeight()/2 - c.TileSize/2 }

// Camera is the world-space rectangle currently on screen, identified by its
// top-left corner.
type Camera struct {
	Left, Top int
}

// NewCamera centers the view on an entity whose box starts at (x, y).
func NewCamera(cfg Config, x, y int) Camera {
	return Camera{Left: x - cfg.AnchorX(), Top: y - cfg.AnchorY()}
}

// WorldToScreen converts world pixel coordinates to screen pixels.
func (c Camera) WorldToScreen(wx, wy int) (int, int) {
	return wx - c.Left, wy - c.Top
}

// Range is an inclusive block of map cells. It is empty when a start
// exceeds its end.
type Range struct {
	ColStart, ColEnd int
	RowStart, RowEnd int
}

// Empty reports whether the range holds no cells.
func (r Range) Empty() bool {
	return r.ColStart > r.ColEnd || r.RowStart > r.RowEnd
}

// Contains reports whether (col, row) lies in the range.
func (r Range) Contains(col, row int) bool {
	return col >= r.ColStart && col <= r.ColEnd && row >= r.RowStart && row <= r.RowEnd
}

// Cells returns how many cells the range holds.
func (r Range) Cells() int {
	if r.Empty() {
		return 0
	}
	return (r.ColEnd - r.ColStart + 1) * (r.RowEnd - r.RowStart + 1)
}

// VisibleRange returns the smallest block of map cells that can intersect
// the screen, clamped to the world. The inclusive end tile covers partial
// overlap at the right and bottom edges, so at most one extra column and
// row are included.
func VisibleRange(cam Camera, cfg Config) Range {
	ts := cfg.TileSize
	r := Range{
		ColStart: game.FloorDiv(cam.Left, ts),
		ColEnd:   game.FloorDiv(cam.Left+cfg.ScreenWidth(), ts),
		RowStart: game.FloorDiv(cam.Top, ts),
		RowEnd:   game.FloorDiv(cam.Top+cfg.ScreenHeight(), ts),
	}
	r.ColStart = max(r.ColStart, 0)
	r.RowStart = max(r.RowStart, 0)
	r.ColEnd = min(r.ColEnd, cfg.WorldCols-1)
	r.RowEnd = min(r.RowEnd, cfg.WorldRows-1)
	return r
}
