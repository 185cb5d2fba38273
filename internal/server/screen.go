package server

import (
	"image"
	"image/color"
	"io"
	"sync"

	"durotar/internal/engine"
	"durotar/internal/render"
)

var canvasBg = color.RGBA{0, 0, 0, 255}

// screen is the engine canvas for one SSH session: a software framebuffer
// diffed into ANSI half-block cells.
type screen struct {
	fb       *render.Framebuffer
	term     *render.Terminal
	out      io.Writer
	tileSize int

	mu            sync.Mutex
	width, height int
}

func newScreen(out io.Writer, view render.Config, pixelsPerCell, width, height int) *screen {
	return &screen{
		fb:       render.NewFramebuffer(view.ScreenWidth(), view.ScreenHeight(), pixelsPerCell, canvasBg),
		term:     render.NewTerminal(width, height),
		out:      out,
		tileSize: view.TileSize,
		width:    width,
		height:   height,
	}
}

// Resize records a new terminal size. Safe to call from any goroutine.
func (s *screen) Resize(width, height int) {
	s.mu.Lock()
	s.width, s.height = width, height
	s.mu.Unlock()
}

func (s *screen) size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

func (s *screen) Begin() {
	s.fb.Clear()
}

func (s *screen) Draw(img image.Image, x, y, w, h int) {
	s.fb.Draw(img, x, y, w, h)
}

func (s *screen) Present(f engine.Frame) error {
	w, h := s.size()
	output := s.term.Compose(s.fb.Image(), s.status(f), w, h)
	if len(output) == 0 {
		return nil
	}
	_, err := io.WriteString(s.out, output)
	return err
}

func (s *screen) status(f engine.Frame) string {
	return f.Status(s.tileSize) + "  |  WASD/arrows move, q quits"
}
