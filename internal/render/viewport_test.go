package render

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() Config {
	return Config{TileSize: 48, ScreenCols: 16, ScreenRows: 12, WorldCols: 50, WorldRows: 50}
}

func TestConfigGeometry(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 768, cfg.ScreenWidth())
	assert.Equal(t, 576, cfg.ScreenHeight())
	assert.Equal(t, 360, cfg.AnchorX())
	assert.Equal(t, 264, cfg.AnchorY())

	cfg.TileSize = 0
	assert.ErrorIs(t, cfg.Validate(), ErrBadGeometry)
}

func TestWorldToScreenCentersEntity(t *testing.T) {
	cfg := defaultConfig()
	cam := NewCamera(cfg, 1104, 1008)
	sx, sy := cam.WorldToScreen(1104, 1008)
	assert.Equal(t, cfg.AnchorX(), sx)
	assert.Equal(t, cfg.AnchorY(), sy)

	sx, sy = cam.WorldToScreen(1104+48, 1008-48)
	assert.Equal(t, cfg.AnchorX()+48, sx)
	assert.Equal(t, cfg.AnchorY()-48, sy)
}

func TestVisibleRangeScenarios(t *testing.T) {
	cfg := defaultConfig()
	tests := []struct {
		name string
		x, y int
		want Range
	}{
		{"center of world", 23 * 48, 21 * 48, Range{15, 31, 15, 27}},
		{"near top-left corner", 1 * 48, 1 * 48, Range{0, 9, 0, 7}},
		{"near bottom-right corner", 48 * 48, 48 * 48, Range{40, 49, 42, 49}},
		{"tile-aligned view", 24*48 - 24, 22*48 - 24, Range{16, 32, 16, 28}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleRange(NewCamera(cfg, tt.x, tt.y), cfg)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVisibleRangeOffWorld(t *testing.T) {
	cfg := defaultConfig()
	r := VisibleRange(NewCamera(cfg, -5000, 100), cfg)
	assert.True(t, r.Empty())
	assert.Equal(t, 0, r.Cells())

	r = VisibleRange(NewCamera(cfg, 100, 50*48+400), cfg)
	assert.True(t, r.Empty())
}

func TestVisibleRangeIsPure(t *testing.T) {
	cfg := defaultConfig()
	cam := NewCamera(cfg, 777, 555)
	first := VisibleRange(cam, cfg)
	for i := 0; i < 100; i++ {
		require.Equal(t, first, VisibleRange(NewCamera(cfg, 777, 555), cfg))
	}
}

// intersects is the reference oracle: does the cell's screen rectangle
// overlap [0,W) x [0,H)?
func intersects(cfg Config, cam Camera, col, row int) bool {
	sx, sy := cam.WorldToScreen(col*cfg.TileSize, row*cfg.TileSize)
	return sx < cfg.ScreenWidth() && sx+cfg.TileSize > 0 &&
		sy < cfg.ScreenHeight() && sy+cfg.TileSize > 0
}

func TestVisibleRangeMatchesExhaustiveScan(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 400; i++ {
		cfg := Config{
			TileSize:   1 + rng.Intn(64),
			ScreenCols: 1 + rng.Intn(20),
			ScreenRows: 1 + rng.Intn(20),
			WorldCols:  1 + rng.Intn(60),
			WorldRows:  1 + rng.Intn(60),
		}
		worldW, worldH := cfg.WorldCols*cfg.TileSize, cfg.WorldRows*cfg.TileSize
		x := rng.Intn(worldW+2*cfg.ScreenWidth()) - cfg.ScreenWidth()
		y := rng.Intn(worldH+2*cfg.ScreenHeight()) - cfg.ScreenHeight()
		cam := NewCamera(cfg, x, y)
		vis := VisibleRange(cam, cfg)

		for row := 0; row < cfg.WorldRows; row++ {
			for col := 0; col < cfg.WorldCols; col++ {
				if intersects(cfg, cam, col, row) {
					require.True(t, vis.Contains(col, row),
						"case %d: visible cell (%d,%d) culled; cfg %+v cam %+v range %+v", i, col, row, cfg, cam, vis)
				}
				if vis.Contains(col, row) {
					// Over-inclusion is limited to cells touching the far edges.
					sx, sy := cam.WorldToScreen(col*cfg.TileSize, row*cfg.TileSize)
					require.LessOrEqual(t, sx, cfg.ScreenWidth())
					require.LessOrEqual(t, sy, cfg.ScreenHeight())
					require.Greater(t, sx+cfg.TileSize, 0)
					require.Greater(t, sy+cfg.TileSize, 0)
				}
			}
		}
	}
}
