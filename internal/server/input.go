package server

import (
	"sync"
	"time"
	"unicode/utf8"

	"durotar/internal/game"
)

var arrowKeys = map[byte]game.Key{
	'A': game.KeyUp,
	'B': game.KeyDown,
	'C': game.KeyRight,
	'D': game.KeyLeft,
}

// parseInput converts raw terminal bytes into key presses.
// Handles WASD, arrow key escape sequences, Q, and Ctrl-C.
func parseInput(data []byte) (keys []game.Key, quit bool) {
	i := 0
	for i < len(data) {
		// Arrow keys, normal and application cursor mode. CSI sequences may
		// carry parameters (ESC [ 1 ; 5 A for Ctrl+Up) before the final byte.
		if i+2 < len(data) && data[i] == 0x1b && (data[i+1] == '[' || data[i+1] == 'O') {
			end := i + 2
			if data[i+1] == '[' {
				for end < len(data) && (data[end] < 0x40 || data[end] > 0x7e) {
					end++
				}
			}
			if end < len(data) {
				if k, ok := arrowKeys[data[end]]; ok {
					keys = append(keys, k)
				}
			}
			i = end + 1
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		switch r {
		case 'w', 'W':
			keys = append(keys, game.KeyUp)
		case 's', 'S':
			keys = append(keys, game.KeyDown)
		case 'a', 'A':
			keys = append(keys, game.KeyLeft)
		case 'd', 'D':
			keys = append(keys, game.KeyRight)
		case 'q', 'Q':
			return keys, true
		case 3: // Ctrl-C
			return keys, true
		}
		i += size
	}
	return keys, false
}

// keyLatch turns terminal key presses into held keys. Terminals never report
// a release, so a press holds its key until hold passes without a repeat.
// Only the latest key is held.
type keyLatch struct {
	keys *game.KeyState
	hold time.Duration

	mu    sync.Mutex
	gen   uint64
	timer *time.Timer
}

func newKeyLatch(keys *game.KeyState, hold time.Duration) *keyLatch {
	return &keyLatch{keys: keys, hold: hold}
}

// Press holds key and releases every other key.
func (l *keyLatch) Press(key game.Key) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.gen++
	gen := l.gen
	if l.timer != nil {
		l.timer.Stop()
	}
	l.keys.Only(key)
	l.timer = time.AfterFunc(l.hold, func() { l.release(gen) })
}

func (l *keyLatch) release(gen uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return
	}
	l.keys.Reset()
	l.timer = nil
}

// Close releases all keys and stops the pending timer.
func (l *keyLatch) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gen++
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
	l.keys.Reset()
}
