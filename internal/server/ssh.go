package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"durotar/internal/engine"
	"durotar/internal/game"
	"durotar/internal/render"
)

// Options configures the SSH frontend.
type Options struct {
	Addr          string
	HostKey       string
	KeyHold       time.Duration
	PixelsPerCell int
}

// SSHServer serves one independent game session per SSH connection.
type SSHServer struct {
	opts   Options
	game   *engine.Game
	log    *zap.Logger
	server *ssh.Server
}

// NewSSHServer creates a server for g. The host key file must exist.
func NewSSHServer(opts Options, g *engine.Game, logger *zap.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &SSHServer{opts: opts, game: g, log: logger}
	s.server = &ssh.Server{
		Addr:    opts.Addr,
		Handler: s.handleSession,
	}
	if err := s.server.SetOption(ssh.HostKeyFile(opts.HostKey)); err != nil {
		return nil, fmt.Errorf("set host key: %w", err)
	}
	return s, nil
}

// ListenAndServe blocks until the server fails or Shutdown is called.
// After Shutdown it returns nil.
func (s *SSHServer) ListenAndServe() error {
	s.log.Info("ssh server listening", zap.String("addr", s.opts.Addr))
	err := s.server.ListenAndServe()
	if errors.Is(err, ssh.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops accepting connections and waits for open sessions until
// ctx is done.
func (s *SSHServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *SSHServer) handleSession(sess ssh.Session) {
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		_ = sess.Exit(1)
		return
	}

	log := s.log.With(
		zap.String("session", uuid.NewString()),
		zap.String("user", sess.User()),
		zap.String("remote", sess.RemoteAddr().String()),
	)
	log.Info("session started")
	defer log.Info("session ended")

	ctx, cancel := context.WithCancel(sess.Context())
	defer cancel()

	var keys game.KeyState
	latch := newKeyLatch(&keys, s.opts.KeyHold)
	defer latch.Close()

	view := s.game.Renderer.Config()
	scr := newScreen(sess, view, s.opts.PixelsPerCell, ptyReq.Window.Width, ptyReq.Window.Height)

	io.WriteString(sess, render.EnableAltScreen())
	io.WriteString(sess, render.HideCursor())
	io.WriteString(sess, render.ClearScreen())
	defer func() {
		io.WriteString(sess, render.ShowCursor())
		io.WriteString(sess, render.DisableAltScreen())
	}()

	// Goroutine: read input
	go func() {
		defer cancel()
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				return
			}
			pressed, quit := parseInput(buf[:n])
			for _, k := range pressed {
				latch.Press(k)
			}
			if quit {
				return
			}
		}
	}()

	// Goroutine: handle window resizes
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case win, ok := <-winCh:
				if !ok {
					return
				}
				scr.Resize(win.Width, win.Height)
			}
		}
	}()

	session := s.game.NewSession(&keys, time.Now(), log)
	if err := s.game.NewLoop(session).Run(ctx, scr); err != nil {
		log.Debug("session output closed", zap.Error(err))
	}
}
