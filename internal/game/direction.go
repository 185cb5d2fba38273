package game

// Direction the entity is facing.
type Direction int

const (
	DirDown Direction = iota // default, facing the camera
	DirUp
	DirLeft
	DirRight
)

// Directions lists every facing in enum order.
var Directions = [...]Direction{DirDown, DirUp, DirLeft, DirRight}

func (d Direction) String() string {
	switch d {
	case DirDown:
		return "down"
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four facings.
func (d Direction) Valid() bool {
	return d >= DirDown && d <= DirRight
}

// delta returns the unit step for d in screen axes (Y grows downward).
func (d Direction) delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}
