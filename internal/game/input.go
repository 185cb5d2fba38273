package game

import "sync/atomic"

// Key is one of the four movement inputs.
type Key uint32

const (
	KeyUp Key = 1 << iota
	KeyDown
	KeyLeft
	KeyRight
)

// Keys is a point-in-time snapshot of the movement inputs.
type Keys struct {
	Up, Down, Left, Right bool
}

// Any reports whether at least one key is held.
func (k Keys) Any() bool {
	return k.Up || k.Down || k.Left || k.Right
}

// Input supplies one consistent snapshot per logical tick.
type Input interface {
	Snapshot() Keys
}

// KeyState holds the four flags in a single atomic word so that writers on
// other goroutines can never be observed half-applied.
type KeyState struct {
	bits atomic.Uint32
}

// Set marks key as held or released.
func (s *KeyState) Set(key Key, held bool) {
	for {
		old := s.bits.Load()
		next := old &^ uint32(key)
		if held {
			next = old | uint32(key)
		}
		if old == next || s.bits.CompareAndSwap(old, next) {
			return
		}
	}
}

// Only holds key and releases the others in one step.
func (s *KeyState) Only(key Key) {
	s.bits.Store(uint32(key))
}

// Reset releases every key.
func (s *KeyState) Reset() {
	s.bits.Store(0)
}

// Snapshot implements Input.
func (s *KeyState) Snapshot() Keys {
	b := s.bits.Load()
	return Keys{
		Up:    b&uint32(KeyUp) != 0,
		Down:  b&uint32(KeyDown) != 0,
		Left:  b&uint32(KeyLeft) != 0,
		Right: b&uint32(KeyRight) != 0,
	}
}
