package game

import (
	"durotar/internal/maps"
	"durotar/internal/tiles"
)

// TileBlocker rejects positions whose tile-sized box touches an impassable
// tile or leaves the world. Overlap is checked per whole tile.
type TileBlocker struct {
	World    *maps.World
	Tiles    *tiles.Registry
	TileSize int
}

// Blocked implements Blocker.
func (b TileBlocker) Blocked(x, y int) bool {
	ts := b.TileSize
	c0, r0 := FloorDiv(x, ts), FloorDiv(y, ts)
	c1, r1 := FloorDiv(x+ts-1, ts), FloorDiv(y+ts-1, ts)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			if !b.World.InBounds(c, r) || !b.Tiles.Passable(b.World.At(c, r)) {
				return true
			}
		}
	}
	return false
}
