package engine

import (
	"fmt"

	"go.uber.org/zap"

	"durotar/internal/assets"
	"durotar/internal/config"
	"durotar/internal/game"
	"durotar/internal/maps"
	"durotar/internal/render"
)

// Setup loads assets and the world named by cfg and returns the shared game.
// Any asset failure is returned; map content problems are only warnings.
func Setup(cfg config.Config, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var bundle *assets.Bundle
	var err error
	if cfg.Assets.Dir == "" {
		bundle, err = assets.Builtin()
	} else {
		bundle, err = assets.Load(cfg.Assets.Dir)
	}
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}
	logger.Info("assets loaded",
		zap.String("source", bundle.Source),
		zap.Int("tiles", bundle.Tiles.Len()),
	)

	var world *maps.World
	if cfg.World.Map == "" {
		world = maps.DefaultWorld(cfg.World.Cols, cfg.World.Rows)
		if warnings := world.Coerce(bundle.Tiles.Len()); len(warnings) > 0 {
			logger.Warn("default world uses tiles missing from the tile set, using 0",
				zap.Int("cells", len(warnings)),
				zap.Int("tiles", bundle.Tiles.Len()),
			)
		}
		logger.Info("using default world",
			zap.Int("cols", world.Cols()),
			zap.Int("rows", world.Rows()),
			zap.String("fingerprint", fmt.Sprintf("%016x", world.Fingerprint())),
		)
	} else {
		loader := maps.NewLoader(cfg.World.Cols, cfg.World.Rows, bundle.Tiles.Len(), logger)
		world, _, err = loader.LoadFile(cfg.World.Map)
		if err != nil {
			return nil, err
		}
	}

	view := cfg.View()
	if err := view.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		Renderer:  render.NewRenderer(view, world, bundle.Tiles, bundle.Sprites),
		TickRate:  cfg.TickRate,
		FrameRate: cfg.FrameRate,
		Speed:     cfg.Player.Speed,
	}
	g.SpawnX, g.SpawnY = cfg.Spawn()
	if cfg.Collision {
		g.Blocker = &game.TileBlocker{World: world, Tiles: bundle.Tiles, TileSize: view.TileSize}
	}
	return g, nil
}
