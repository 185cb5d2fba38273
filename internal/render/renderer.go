package render

import (
	"durotar/internal/game"
	"durotar/internal/maps"
	"durotar/internal/tiles"
)

// Renderer draws the visible part of the world and the tracked entity.
type Renderer struct {
	cfg     Config
	world   *maps.World
	tiles   *tiles.Registry
	sprites *SpriteSet
}

// NewRenderer creates a renderer over read-only world data.
func NewRenderer(cfg Config, world *maps.World, reg *tiles.Registry, sprites *SpriteSet) *Renderer {
	return &Renderer{cfg: cfg, world: world, tiles: reg, sprites: sprites}
}

// Config returns the geometry the renderer was built with.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Render issues one draw per visible tile, rows top to bottom and columns
// left to right, then draws the tracked entity at the screen anchor. Cells
// whose id has no registered image are skipped. It returns the culled range.
func (r *Renderer) Render(target Target, tracked *game.Entity) Range {
	ts := r.cfg.TileSize
	cam := NewCamera(r.cfg, tracked.X, tracked.Y)
	vis := VisibleRange(cam, r.cfg)

	for row := vis.RowStart; row <= vis.RowEnd; row++ {
		for col := vis.ColStart; col <= vis.ColEnd; col++ {
			tt, ok := r.tiles.Lookup(r.world.At(col, row))
			if !ok || tt.Image == nil {
				continue
			}
			sx, sy := cam.WorldToScreen(col*ts, row*ts)
			target.Draw(tt.Image, sx, sy, ts, ts)
		}
	}

	if r.sprites != nil {
		if img := r.sprites.For(tracked.Dir, tracked.Frame); img != nil {
			target.Draw(img, r.cfg.AnchorX(), r.cfg.AnchorY(), ts, ts)
		}
	}
	return vis
}
