package render

import (
	"errors"
	"fmt"
	"image"

	"durotar/internal/game"
)

// ErrMissingSprite is returned when a required entity frame has no image.
var ErrMissingSprite = errors.New("missing sprite")

// Frames holds the idle and two walk images for one facing, indexed by
// animation frame.
type Frames [3]image.Image

// SpriteSet maps (direction, frame) to an entity image.
type SpriteSet struct {
	frames [len(game.Directions)]Frames
}

// NewSpriteSet requires both walk frames for every direction. A missing idle
// frame reuses the second walk frame, which is how side-facing sprites
// usually ship.
func NewSpriteSet(byDir map[game.Direction]Frames) (*SpriteSet, error) {
	s := &SpriteSet{}
	for _, d := range game.Directions {
		f := byDir[d]
		for _, n := range []int{game.FrameWalk1, game.FrameWalk2} {
			if f[n] == nil {
				return nil, fmt.Errorf("%s frame %d: %w", d, n, ErrMissingSprite)
			}
		}
		if f[game.FrameIdle] == nil {
			f[game.FrameIdle] = f[game.FrameWalk2]
		}
		s.frames[d] = f
	}
	return s, nil
}

// For returns the image for a facing and frame. An unknown facing is drawn
// facing down and an unknown frame as idle.
func (s *SpriteSet) For(dir game.Direction, frame int) image.Image {
	if !dir.Valid() {
		dir = game.DirDown
	}
	if frame < game.FrameIdle || frame > game.FrameWalk2 {
		frame = game.FrameIdle
	}
	return s.frames[dir][frame]
}
