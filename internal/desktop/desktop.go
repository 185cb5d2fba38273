package desktop

import (
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"durotar/internal/engine"
	"durotar/internal/game"
	"durotar/internal/render"
)

// keyBindings lists the physical keys for each movement key.
var keyBindings = []struct {
	key  game.Key
	keys []ebiten.Key
}{
	{game.KeyUp, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
	{game.KeyDown, []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
	{game.KeyLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
	{game.KeyRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
}

// keysFrom polls pressed for every binding.
func keysFrom(pressed func(ebiten.Key) bool) game.Keys {
	var held game.Key
	for _, b := range keyBindings {
		for _, k := range b.keys {
			if pressed(k) {
				held |= b.key
				break
			}
		}
	}
	return game.Keys{
		Up:    held&game.KeyUp != 0,
		Down:  held&game.KeyDown != 0,
		Left:  held&game.KeyLeft != 0,
		Right: held&game.KeyRight != 0,
	}
}

// keyboard reads the window's keyboard. It is polled from Update, on the
// game goroutine.
type keyboard struct{}

func (keyboard) Snapshot() game.Keys {
	return keysFrom(ebiten.IsKeyPressed)
}

// target draws onto the ebiten screen, uploading each source image once.
type target struct {
	dst   *ebiten.Image
	cache map[image.Image]*ebiten.Image
}

func newTarget() *target {
	return &target{cache: make(map[image.Image]*ebiten.Image)}
}

func (t *target) Draw(img image.Image, x, y, w, h int) {
	src, ok := t.cache[img]
	if !ok {
		src = ebiten.NewImageFromImage(img)
		t.cache[img] = src
	}
	b := src.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	t.dst.DrawImage(src, op)
}

// Game runs one session in a desktop window.
type Game struct {
	session *engine.Session
	view    render.Config
	target  *target
}

var _ ebiten.Game = (*Game)(nil)

// New starts a keyboard-driven session on g.
func New(g *engine.Game, logger *zap.Logger) *Game {
	return &Game{
		session: g.NewSession(keyboard{}, time.Now(), logger),
		view:    g.Renderer.Config(),
		target:  newTarget(),
	}
}

func (d *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	d.session.Advance(time.Now())
	return nil
}

func (d *Game) Draw(screen *ebiten.Image) {
	d.target.dst = screen
	d.session.Draw(d.target)

	ebitenutil.DebugPrint(screen, d.session.Frame().Status(d.view.TileSize))
}

func (d *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return d.view.ScreenWidth(), d.view.ScreenHeight()
}

// Run opens the window and blocks until it is closed.
func Run(d *Game, title string) error {
	ebiten.SetWindowSize(d.view.ScreenWidth(), d.view.ScreenHeight())
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	if err := ebiten.RunGame(d); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
