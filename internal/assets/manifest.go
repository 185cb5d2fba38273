package assets

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"durotar/internal/game"
	"durotar/internal/render"
	"durotar/internal/tiles"
)

// ManifestFile is the manifest name inside an assets directory.
const ManifestFile = "tiles.yaml"

// frameNames maps animation frames to sprite filename suffixes.
var frameNames = [...]string{
	game.FrameIdle:  "stay",
	game.FrameWalk1: "left",
	game.FrameWalk2: "right",
}

// Manifest describes the tile set and entity sprites of an assets directory.
type Manifest struct {
	Tiles  []TileEntry `yaml:"tiles"`
	Entity EntityEntry `yaml:"entity"`
}

// TileEntry is one tile type. Image is relative to the assets directory.
type TileEntry struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Image    string `yaml:"image"`
	Passable bool   `yaml:"passable"`
}

// EntityEntry locates entity sprites. Files are named
// <prefix>_<direction>_<stay|left|right>.png.
type EntityEntry struct {
	Prefix string `yaml:"prefix"`
}

// Bundle is everything the renderer needs from the asset pipeline.
type Bundle struct {
	Tiles   *tiles.Registry
	Sprites *render.SpriteSet
	Source  string
}

// ParseManifest decodes a YAML manifest.
func ParseManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(m.Tiles) == 0 {
		return nil, errors.New("parse manifest: no tiles")
	}
	if m.Entity.Prefix == "" {
		return nil, errors.New("parse manifest: entity prefix is required")
	}
	return &m, nil
}

// Load reads dir/tiles.yaml and every image it names. Any image that fails
// to load fails the whole bundle.
func Load(dir string) (*Bundle, error) {
	f, err := os.Open(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	m, err := ParseManifest(f)
	if err != nil {
		return nil, err
	}

	types := make([]tiles.TileType, 0, len(m.Tiles))
	for _, te := range m.Tiles {
		img, err := LoadImage(filepath.Join(dir, te.Image))
		if err != nil {
			return nil, fmt.Errorf("tile %d (%s): %w", te.ID, te.Name, err)
		}
		types = append(types, tiles.TileType{ID: te.ID, Name: te.Name, Image: img, Passable: te.Passable})
	}
	reg, err := tiles.New(types)
	if err != nil {
		return nil, fmt.Errorf("tile registry: %w", err)
	}

	sprites, err := loadSprites(filepath.Join(dir, m.Entity.Prefix))
	if err != nil {
		return nil, fmt.Errorf("entity sprites: %w", err)
	}

	return &Bundle{Tiles: reg, Sprites: sprites, Source: dir}, nil
}

// loadSprites loads all facings. An absent idle image is allowed and falls
// back inside the sprite set; a broken one is not.
func loadSprites(prefix string) (*render.SpriteSet, error) {
	byDir := make(map[game.Direction]render.Frames, len(game.Directions))
	for _, d := range game.Directions {
		var frames render.Frames
		for frame, suffix := range frameNames {
			path := fmt.Sprintf("%s_%s_%s.png", prefix, d, suffix)
			img, err := LoadImage(path)
			if err != nil {
				if frame == game.FrameIdle && errors.Is(err, os.ErrNotExist) {
					continue
				}
				return nil, fmt.Errorf("%w: %w", render.ErrMissingSprite, err)
			}
			frames[frame] = image.Image(img)
		}
		byDir[d] = frames
	}
	return render.NewSpriteSet(byDir)
}
