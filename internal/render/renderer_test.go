package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"durotar/internal/game"
	"durotar/internal/maps"
	"durotar/internal/tiles"
)

func solid(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func testSprites(t *testing.T) (*SpriteSet, map[game.Direction]Frames) {
	t.Helper()
	byDir := make(map[game.Direction]Frames)
	for i, d := range game.Directions {
		byDir[d] = Frames{
			solid(color.RGBA{uint8(i), 0, 0, 255}),
			solid(color.RGBA{uint8(i), 1, 0, 255}),
			solid(color.RGBA{uint8(i), 2, 0, 255}),
		}
	}
	s, err := NewSpriteSet(byDir)
	require.NoError(t, err)
	return s, byDir
}

type fixture struct {
	cfg      Config
	world    *maps.World
	reg      *tiles.Registry
	sprites  *SpriteSet
	frames   map[game.Direction]Frames
	renderer *Renderer
}

func newFixture(t *testing.T, cols, rows int, grid [][]int) fixture {
	t.Helper()
	reg, err := tiles.New([]tiles.TileType{
		{ID: 0, Name: "field", Image: solid(color.RGBA{0, 200, 0, 255}), Passable: true},
		{ID: 1, Name: "border", Image: solid(color.RGBA{90, 90, 90, 255})},
		{ID: 2, Name: "hole"},
	})
	require.NoError(t, err)
	world := maps.FromRows(grid)
	cfg := Config{TileSize: 10, ScreenCols: cols, ScreenRows: rows, WorldCols: world.Cols(), WorldRows: world.Rows()}
	sprites, frames := testSprites(t)
	return fixture{
		cfg: cfg, world: world, reg: reg, sprites: sprites, frames: frames,
		renderer: NewRenderer(cfg, world, reg, sprites),
	}
}

func TestRenderRowMajorThenEntity(t *testing.T) {
	f := newFixture(t, 2, 2, [][]int{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 0},
	})
	// Anchor is (5,5); an entity at (5,5) puts the camera at the origin.
	e := game.NewEntity(5, 5, 1)
	var rec Recorder
	vis := f.renderer.Render(&rec, e)

	assert.Equal(t, Range{0, 2, 0, 2}, vis)
	require.Len(t, rec.Calls, 9+1)

	i := 0
	for row := 0; row <= 2; row++ {
		for col := 0; col <= 2; col++ {
			c := rec.Calls[i]
			tt, _ := f.reg.Lookup(f.world.At(col, row))
			assert.Same(t, tt.Image, c.Image, "call %d", i)
			assert.Equal(t, DrawCall{Image: tt.Image, X: col * 10, Y: row * 10, W: 10, H: 10}, c)
			i++
		}
	}

	last := rec.Calls[len(rec.Calls)-1]
	assert.Same(t, f.frames[game.DirDown][game.FrameIdle], last.Image)
	assert.Equal(t, 5, last.X)
	assert.Equal(t, 5, last.Y)
}

func TestRenderSkipsUnregisteredAndImagelessTiles(t *testing.T) {
	f := newFixture(t, 2, 2, [][]int{
		{0, 2},
		{9, 0},
	})
	e := game.NewEntity(5, 5, 1)
	var rec Recorder
	f.renderer.Render(&rec, e)

	// (1,0) has no image and (0,1) is not registered.
	require.Len(t, rec.Calls, 2+1)
	assert.Equal(t, 0, rec.Calls[0].X)
	assert.Equal(t, 0, rec.Calls[0].Y)
	assert.Equal(t, 10, rec.Calls[1].X)
	assert.Equal(t, 10, rec.Calls[1].Y)
}

func TestRenderScrollsWorldNotEntity(t *testing.T) {
	grid := make([][]int, 20)
	for r := range grid {
		grid[r] = make([]int, 20)
	}
	f := newFixture(t, 4, 4, grid)
	e := game.NewEntity(100, 80, 1)
	e.Dir = game.DirLeft
	e.Frame = game.FrameWalk2

	var rec Recorder
	vis := f.renderer.Render(&rec, e)
	require.Equal(t, vis.Cells()+1, len(rec.Calls))

	cam := NewCamera(f.cfg, e.X, e.Y)
	for _, c := range rec.Calls[:len(rec.Calls)-1] {
		wx, wy := c.X+cam.Left, c.Y+cam.Top
		assert.Zero(t, wx%10)
		assert.Zero(t, wy%10)
	}
	last := rec.Calls[len(rec.Calls)-1]
	assert.Same(t, f.frames[game.DirLeft][game.FrameWalk2], last.Image)
	assert.Equal(t, f.cfg.AnchorX(), last.X)
	assert.Equal(t, f.cfg.AnchorY(), last.Y)
}

func TestRenderDoesNotMutate(t *testing.T) {
	f := newFixture(t, 3, 3, [][]int{{0, 1}, {1, 0}})
	e := game.NewEntity(7, 3, 2)
	e.Frame = game.FrameWalk1
	before := *e
	fp := f.world.Fingerprint()

	var rec Recorder
	f.renderer.Render(&rec, e)
	f.renderer.Render(&rec, e)

	assert.Equal(t, before, *e)
	assert.Equal(t, fp, f.world.Fingerprint())
	half := len(rec.Calls) / 2
	assert.Equal(t, rec.Calls[:half], rec.Calls[half:], "repeat renders are identical")
}
