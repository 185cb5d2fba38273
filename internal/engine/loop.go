package engine

import (
	"context"
	"time"

	"durotar/internal/render"
)

// Canvas is a render target that is presented once per frame.
type Canvas interface {
	render.Target
	// Begin prepares a new frame.
	Begin()
	// Present shows the finished frame.
	Present(f Frame) error
}

// Loop paces a session: every frame it runs the updates that are due and
// renders once.
type Loop struct {
	session   *Session
	frameRate int
	now       func() time.Time
}

// NewLoop creates a loop for s running at the game's frame rate.
func (g *Game) NewLoop(s *Session) *Loop {
	rate := g.FrameRate
	if rate < 1 {
		rate = 1
	}
	return &Loop{session: s, frameRate: rate, now: time.Now}
}

// Step advances the session to now and presents one frame.
func (l *Loop) Step(now time.Time, canvas Canvas) error {
	l.session.Advance(now)
	canvas.Begin()
	l.session.Draw(canvas)
	return canvas.Present(l.session.Frame())
}

// Run steps until ctx is done or the canvas fails to present.
func (l *Loop) Run(ctx context.Context, canvas Canvas) error {
	if err := l.Step(l.now(), canvas); err != nil {
		return err
	}

	ticker := time.NewTicker(time.Second / time.Duration(l.frameRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := l.Step(l.now(), canvas); err != nil {
				return err
			}
		}
	}
}
