package game

// AnimationThreshold is how many moving ticks a walk frame lasts before the
// counter overflows and the frame toggles.
const AnimationThreshold = 12

// Animation frames. Walk frames alternate while moving.
const (
	FrameIdle  = 0
	FrameWalk1 = 1
	FrameWalk2 = 2
)

// AnimState is the sprite state derived from facing and frame.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimWalkUp
	AnimWalkDown
	AnimWalkLeft
	AnimWalkRight
)

func (s AnimState) String() string {
	switch s {
	case AnimIdle:
		return "idle"
	case AnimWalkUp:
		return "walk-up"
	case AnimWalkDown:
		return "walk-down"
	case AnimWalkLeft:
		return "walk-left"
	case AnimWalkRight:
		return "walk-right"
	default:
		return "unknown"
	}
}

// Entity is a moving, animated body in world pixel space. X and Y are the
// top-left corner of its tile-sized bounding box.
type Entity struct {
	X, Y      int
	Speed     int
	Dir       Direction
	Frame     int
	AnimTicks int
	Moving    bool
}

// NewEntity places an idle entity facing down at (x, y).
func NewEntity(x, y, speed int) *Entity {
	return &Entity{X: x, Y: y, Speed: speed, Dir: DirDown}
}

// State returns the animation state for the current facing and frame.
func (e *Entity) State() AnimState {
	if e.Frame == FrameIdle {
		return AnimIdle
	}
	switch e.Dir {
	case DirUp:
		return AnimWalkUp
	case DirLeft:
		return AnimWalkLeft
	case DirRight:
		return AnimWalkRight
	default:
		return AnimWalkDown
	}
}

// Blocker decides whether an entity may occupy the box at (x, y).
type Blocker interface {
	Blocked(x, y int) bool
}

// Step advances e by one tick. A nil dir means no movement was requested.
// A blocked move still turns the entity and plays the walk cycle.
func (e *Entity) Step(dir *Direction, blocker Blocker) {
	e.Moving = dir != nil

	if e.Moving {
		e.Dir = *dir
		dx, dy := dir.delta()
		nx, ny := e.X+dx*e.Speed, e.Y+dy*e.Speed
		if blocker == nil || !blocker.Blocked(nx, ny) {
			e.X, e.Y = nx, ny
		}
	}

	if !e.Moving {
		e.Frame = FrameIdle
		return
	}
	if e.Frame == FrameIdle {
		// Fresh walk cycle.
		e.Frame = FrameWalk1
		e.AnimTicks = 0
		return
	}
	e.AnimTicks++
	if e.AnimTicks > AnimationThreshold {
		if e.Frame == FrameWalk1 {
			e.Frame = FrameWalk2
		} else {
			e.Frame = FrameWalk1
		}
		e.AnimTicks = 0
	}
}

// PlayerControl drives an entity from an input source. Only the first held
// key in the order Up, Down, Left, Right acts on a given tick; there is no
// diagonal movement.
type PlayerControl struct {
	Input   Input
	Blocker Blocker
}

// Resolve returns the movement requested by keys, or nil for none.
func Resolve(keys Keys) *Direction {
	if !keys.Any() {
		return nil
	}
	var d Direction
	switch {
	case keys.Up:
		d = DirUp
	case keys.Down:
		d = DirDown
	case keys.Left:
		d = DirLeft
	default:
		d = DirRight
	}
	return &d
}

// Update reads one input snapshot and steps e.
func (pc *PlayerControl) Update(e *Entity) {
	var keys Keys
	if pc.Input != nil {
		keys = pc.Input.Snapshot()
	}
	e.Step(Resolve(keys), pc.Blocker)
}
