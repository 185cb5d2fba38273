package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"durotar/internal/game"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		keys []game.Key
		quit bool
	}{
		{"wasd", "wasd", []game.Key{game.KeyUp, game.KeyLeft, game.KeyDown, game.KeyRight}, false},
		{"upper case", "WD", []game.Key{game.KeyUp, game.KeyRight}, false},
		{"arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []game.Key{game.KeyUp, game.KeyDown, game.KeyRight, game.KeyLeft}, false},
		{"application arrows", "\x1bOA", []game.Key{game.KeyUp}, false},
		{"modified arrows", "\x1b[1;5A\x1b[1;2D", []game.Key{game.KeyUp, game.KeyLeft}, false},
		{"other csi", "\x1b[3~w", []game.Key{game.KeyUp}, false},
		{"truncated csi", "\x1b[1;5", nil, false},
		{"quit", "q", nil, true},
		{"ctrl-c after move", "w\x03", []game.Key{game.KeyUp}, true},
		{"ignored", "xyz\x1b", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys, quit := parseInput([]byte(tt.in))
			assert.Equal(t, tt.keys, keys)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestKeyLatch(t *testing.T) {
	var keys game.KeyState
	l := newKeyLatch(&keys, 30*time.Millisecond)
	defer l.Close()

	l.Press(game.KeyUp)
	assert.Equal(t, game.Keys{Up: true}, keys.Snapshot())

	l.Press(game.KeyRight)
	assert.Equal(t, game.Keys{Right: true}, keys.Snapshot(), "a new key replaces the held one")

	assert.Eventually(t, func() bool { return !keys.Snapshot().Any() },
		time.Second, 5*time.Millisecond)
}

func TestKeyLatchRepeatExtendsHold(t *testing.T) {
	var keys game.KeyState
	l := newKeyLatch(&keys, 80*time.Millisecond)
	defer l.Close()

	for i := 0; i < 5; i++ {
		l.Press(game.KeyLeft)
		time.Sleep(20 * time.Millisecond)
		assert.True(t, keys.Snapshot().Left)
	}
}

func TestKeyLatchClose(t *testing.T) {
	var keys game.KeyState
	l := newKeyLatch(&keys, time.Hour)
	l.Press(game.KeyDown)
	l.Close()
	assert.False(t, keys.Snapshot().Any())
}
