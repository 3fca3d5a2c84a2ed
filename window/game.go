//go:build ebiten

package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/utils"
)

const title = "Game of Life - Enter to pause / ESC to exit"

// Game adapts a session to the ebiten.Game interface
type Game struct {
	session  *game.Session
	cellSize int
	img      *ebiten.Image
	buf      []byte
}

// New constructs a Game drawing each cell as a cellSize square
func New(session *game.Session, cellSize int) *Game {
	w := session.World()
	return &Game{
		session:  session,
		cellSize: cellSize,
		img:      ebiten.NewImage(w.Width(), w.Height()),
		buf:      make([]byte, 4*w.Total()),
	}
}

// Run opens the window and blocks until it is closed
func Run(session *game.Session, cfg utils.Config) error {
	g := New(session, cfg.CellSize)
	width, height := screenSize(session.World(), cfg.CellSize)

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	if cfg.FrameRate > 0 {
		ebiten.SetTPS(max(1, int(time.Second/cfg.FrameRate)))
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update handles input and advances the session by one tick
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reseed()
	}

	if g.session.Paused() {
		g.paint()
		return nil
	}
	g.session.Tick()
	return nil
}

func (g *Game) paint() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	px, py := ebiten.CursorPosition()
	idx, ok := cellAt(g.session.World(), px, py, g.cellSize)
	if !ok {
		return
	}
	g.session.Paint(idx, left)
}

// Draw renders the grid and the status text
func (g *Game) Draw(screen *ebiten.Image) {
	fillPixels(g.buf, g.session.World(), aliveColor, deadColor)
	g.img.WritePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.cellSize), float64(g.cellSize))
	screen.DrawImage(g.img, op)

	y := g.session.World().Height()*g.cellSize + basicfont.Face7x13.Ascent + 4
	text.Draw(screen, g.session.Status().String(), basicfont.Face7x13, 4, y, aliveColor)
}

// Layout returns the logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize(g.session.World(), g.cellSize)
}
