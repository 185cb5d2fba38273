package engine

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"durotar/internal/game"
	"durotar/internal/render"
)

// Game is the read-only state every session plays on. It is shared across
// sessions without locking.
type Game struct {
	Renderer  *render.Renderer
	Blocker   game.Blocker
	TickRate  int
	FrameRate int
	SpawnX    int
	SpawnY    int
	Speed     int
}

// Frame summarizes the state a canvas presents.
type Frame struct {
	Tick   uint64
	Player game.Entity
	FPS    int
}

// Status formats the frame for a one-line display. Tile coordinates use
// floor division, so positions left of or above the world read as negative
// tiles.
func (f Frame) Status(tileSize int) string {
	p := f.Player
	return fmt.Sprintf("tile %d,%d  %s  facing %s  fps %d",
		game.FloorDiv(p.X, tileSize), game.FloorDiv(p.Y, tileSize), p.State(), p.Dir, f.FPS)
}

// Session is one player walking the shared world. All methods must be
// called from a single goroutine; only the input source is concurrent.
type Session struct {
	renderer *render.Renderer
	clock    *game.Clock
	control  game.PlayerControl
	player   game.Entity
	tick     uint64
	fps      int
	log      *zap.Logger
}

// NewSession spawns a player driven by input. The clock starts at now.
func (g *Game) NewSession(input game.Input, now time.Time, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		renderer: g.Renderer,
		control:  game.PlayerControl{Input: input, Blocker: g.Blocker},
		player:   *game.NewEntity(g.SpawnX, g.SpawnY, g.Speed),
		log:      logger,
	}
	s.clock = game.NewClock(g.TickRate, now, s.report)
	return s
}

func (s *Session) report(frames int) {
	s.fps = frames
	s.log.Debug("frame rate",
		zap.Int("fps", frames),
		zap.Int("x", s.player.X),
		zap.Int("y", s.player.Y),
	)
}

// Advance runs every logical update due at now and returns how many ran.
func (s *Session) Advance(now time.Time) int {
	n := s.clock.Tick(now)
	for i := 0; i < n; i++ {
		s.control.Update(&s.player)
		s.tick++
	}
	return n
}

// Draw renders the current state to target and counts the frame.
func (s *Session) Draw(target render.Target) render.Range {
	vis := s.renderer.Render(target, &s.player)
	s.clock.CountFrame()
	return vis
}

// Frame returns the presentable state.
func (s *Session) Frame() Frame {
	return Frame{Tick: s.tick, Player: s.player, FPS: s.fps}
}

// Player returns a copy of the tracked entity.
func (s *Session) Player() game.Entity {
	return s.player
}
