package engine

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"durotar/internal/config"
	"durotar/internal/game"
	"durotar/internal/render"
)

func TestSetupDefaults(t *testing.T) {
	cfg := config.Default()
	g, err := Setup(cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, 48, g.Renderer.Config().TileSize)
	assert.Equal(t, 23*48, g.SpawnX)
	assert.Equal(t, 21*48, g.SpawnY)
	assert.Nil(t, g.Blocker)

	// The spawn tile and its neighbours are drawn from the default world.
	s := g.NewSession(nil, time.Unix(0, 0), nil)
	var rec render.Recorder
	vis := s.Draw(&rec)
	assert.Equal(t, vis.Cells()+1, len(rec.Calls))
}

func TestSetupMapFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.txt")
	rows := []string{
		"1 1 1 1",
		"1 0 x 1",
		"1 0 9 1",
		"1 1 1 1",
	}
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(rows, "\n")), 0o644))

	cfg := config.Default()
	cfg.World = config.World{Cols: 4, Rows: 4, Map: path}
	cfg.Player.SpawnCol, cfg.Player.SpawnRow = 1, 1
	cfg.Collision = true

	core, logs := observer.New(zapcore.WarnLevel)
	g, err := Setup(cfg, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, 2, logs.Len(), "bad token and out-of-range id")
	require.NotNil(t, g.Blocker)

	var keys game.KeyState
	keys.Set(game.KeyUp, true)
	s := g.NewSession(&keys, time.Unix(0, 0), nil)
	s.Advance(time.Unix(1, 0))
	assert.Equal(t, 48, s.Player().Y, "wall above the spawn blocks")
}

func TestSetupErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Assets.Dir = t.TempDir()
	_, err := Setup(cfg, nil)
	assert.ErrorContains(t, err, "load assets")

	cfg = config.Default()
	cfg.World.Map = filepath.Join(t.TempDir(), "missing.txt")
	_, err = Setup(cfg, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func writeSolidPNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{60, 140, 60, 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestSetupDefaultWorldWithSmallTileSet(t *testing.T) {
	dir := t.TempDir()
	manifest := "tiles:\n  - id: 0\n    name: field\n    image: field.png\n    passable: true\nentity:\n  prefix: orc\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tiles.yaml"), []byte(manifest), 0o644))
	writeSolidPNG(t, filepath.Join(dir, "field.png"))
	for _, d := range game.Directions {
		for _, frame := range []string{"left", "right"} {
			writeSolidPNG(t, filepath.Join(dir, "orc_"+d.String()+"_"+frame+".png"))
		}
	}

	cfg := config.Default()
	cfg.Assets.Dir = dir
	cfg.Collision = true

	core, logs := observer.New(zapcore.WarnLevel)
	g, err := Setup(cfg, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("default world uses tiles missing from the tile set, using 0").Len())

	// Every visible cell holds a registered id, so every cell is drawn.
	s := g.NewSession(nil, time.Unix(0, 0), nil)
	var rec render.Recorder
	vis := s.Draw(&rec)
	assert.Equal(t, vis.Cells()+1, len(rec.Calls))

	// No stray ids remain to act as walls; only the world edge stops the walk.
	var keys game.KeyState
	keys.Set(game.KeyUp, true)
	walker := g.NewSession(&keys, time.Unix(0, 0), nil)
	walker.Advance(time.Unix(5, 0))
	assert.Equal(t, 0, walker.Player().Y)
}
