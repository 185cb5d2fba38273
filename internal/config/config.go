package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"durotar/internal/logging"
	"durotar/internal/render"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid config")

// Config holds all application configuration.
type Config struct {
	Screen    Screen         `yaml:"screen"`
	World     World          `yaml:"world"`
	TickRate  int            `yaml:"tick_rate"`
	FrameRate int            `yaml:"frame_rate"`
	Player    Player         `yaml:"player"`
	Collision bool           `yaml:"collision"`
	Assets    Assets         `yaml:"assets"`
	Server    Server         `yaml:"server"`
	Terminal  Terminal       `yaml:"terminal"`
	Log       logging.Config `yaml:"log"`
}

// Screen is the visible area, in tiles.
type Screen struct {
	BaseTileSize int `yaml:"base_tile_size"`
	Scale        int `yaml:"scale"`
	Cols         int `yaml:"cols"`
	Rows         int `yaml:"rows"`
}

// World sizes the tile grid. Map is a text map path; empty means the
// generated default world.
type World struct {
	Cols int    `yaml:"cols"`
	Rows int    `yaml:"rows"`
	Map  string `yaml:"map"`
}

// Player holds spawn tile and pixels moved per tick.
type Player struct {
	SpawnCol int `yaml:"spawn_col"`
	SpawnRow int `yaml:"spawn_row"`
	Speed    int `yaml:"speed"`
}

// Assets points at a directory with tiles.yaml. Empty uses the built-in art.
type Assets struct {
	Dir string `yaml:"dir"`
}

// Server configures the SSH frontend.
type Server struct {
	Addr    string        `yaml:"addr"`
	HostKey string        `yaml:"host_key"`
	KeyHold time.Duration `yaml:"key_hold"`
}

// Terminal configures the ANSI rasterizer.
type Terminal struct {
	PixelsPerCell int `yaml:"pixels_per_cell"`
}

// Default returns the stock game: 16px tiles drawn at x3 on a 16x12 tile
// screen, 60 updates per second.
func Default() Config {
	return Config{
		Screen:    Screen{BaseTileSize: 16, Scale: 3, Cols: 16, Rows: 12},
		World:     World{Cols: 50, Rows: 50},
		TickRate:  60,
		FrameRate: 60,
		Player:    Player{SpawnCol: 23, SpawnRow: 21, Speed: 4},
		Server: Server{
			Addr:    ":2222",
			HostKey: "host_key",
			KeyHold: 150 * time.Millisecond,
		},
		Terminal: Terminal{PixelsPerCell: 8},
		Log:      logging.Config{Level: "info", Encoding: "console"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// PORT in the environment overrides the server listen port.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		host, _, err := net.SplitHostPort(cfg.Server.Addr)
		if err != nil {
			host = ""
		}
		cfg.Server.Addr = net.JoinHostPort(host, port)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects geometry and rates the game cannot run with.
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    int
	}{
		{"screen.base_tile_size", c.Screen.BaseTileSize},
		{"screen.scale", c.Screen.Scale},
		{"screen.cols", c.Screen.Cols},
		{"screen.rows", c.Screen.Rows},
		{"world.cols", c.World.Cols},
		{"world.rows", c.World.Rows},
		{"tick_rate", c.TickRate},
		{"frame_rate", c.FrameRate},
		{"terminal.pixels_per_cell", c.Terminal.PixelsPerCell},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, p.name, p.v)
		}
	}
	if c.Player.Speed < 0 {
		return fmt.Errorf("%w: player.speed must not be negative", ErrInvalid)
	}
	if c.Player.SpawnCol < 0 || c.Player.SpawnCol >= c.World.Cols ||
		c.Player.SpawnRow < 0 || c.Player.SpawnRow >= c.World.Rows {
		return fmt.Errorf("%w: spawn (%d,%d) outside %dx%d world", ErrInvalid,
			c.Player.SpawnCol, c.Player.SpawnRow, c.World.Cols, c.World.Rows)
	}
	if c.Server.KeyHold <= 0 {
		return fmt.Errorf("%w: server.key_hold must be positive", ErrInvalid)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// TileSize is the on-screen tile edge in pixels.
func (c Config) TileSize() int {
	return c.Screen.BaseTileSize * c.Screen.Scale
}

// View returns the render geometry.
func (c Config) View() render.Config {
	return render.Config{
		TileSize:   c.TileSize(),
		ScreenCols: c.Screen.Cols,
		ScreenRows: c.Screen.Rows,
		WorldCols:  c.World.Cols,
		WorldRows:  c.World.Rows,
	}
}

// Spawn returns the player's starting pixel position.
func (c Config) Spawn() (x, y int) {
	return c.Player.SpawnCol * c.TileSize(), c.Player.SpawnRow * c.TileSize()
}
