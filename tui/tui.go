// Package tui runs a session interactively in a terminal using tcell.
package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/game"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	// cellWidth is how many terminal columns one cell takes, so cells look square
	cellWidth = 2

	aliveRune = '█'
	helpLine  = "Enter run/pause | n step | c clear | r reseed | Esc quit | mouse: left alive, right dead"
)

// App draws a session on a tcell screen and translates input into session calls
type App struct {
	screen    tcell.Screen
	session   *game.Session
	frameRate time.Duration

	aliveStyle  tcell.Style
	deadStyle   tcell.Style
	statusStyle tcell.Style
}

// New builds an App on an initialized screen
func New(screen tcell.Screen, session *game.Session, frameRate time.Duration) *App {
	if frameRate <= 0 {
		frameRate = utils.DefaultConfig().FrameRate
	}
	return &App{
		screen:      screen,
		session:     session,
		frameRate:   frameRate,
		aliveStyle:  tcell.StyleDefault.Foreground(tcell.ColorWhite),
		deadStyle:   tcell.StyleDefault,
		statusStyle: tcell.StyleDefault.Reverse(true),
	}
}

// Run opens the terminal, plays the session until the user quits or ctx is
// cancelled, and restores the terminal
func Run(ctx context.Context, session *game.Session, frameRate time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "[Run] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "[Run] failed to initialize screen")
	}
	screen.EnableMouse()
	screen.HideCursor()

	return New(screen, session, frameRate).Loop(ctx)
}

// Loop polls input on one goroutine and owns the session on another.
// The screen is finalized when Loop returns.
func (a *App) Loop(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		eg, egCtx = errgroup.WithContext(ctx)
		events    = make(chan tcell.Event)
	)

	eg.Go(func() error {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return nil // screen finalized
			}
			select {
			case events <- ev:
			case <-egCtx.Done():
				return nil
			}
		}
	})

	eg.Go(func() error {
		defer a.screen.Fini()
		defer cancel()

		ticker := time.NewTicker(a.frameRate)
		defer ticker.Stop()

		a.Draw()
		for {
			select {
			case <-egCtx.Done():
				return nil
			case ev := <-events:
				if a.HandleEvent(ev) {
					return nil
				}
				a.Draw()
			case <-ticker.C:
				if a.session.Tick() {
					a.Draw()
				}
			}
		}
	})

	return eg.Wait()
}

// HandleEvent applies one input event and reports whether the user asked to quit
func (a *App) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		a.session.TogglePause()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			a.session.TogglePause()
		case 'n':
			a.session.StepOnce()
		case 'c':
			a.session.Clear()
		case 'r':
			a.session.Reseed()
		}
	}
	return false
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	if !a.session.Paused() {
		return
	}
	idx, ok := a.CellAt(ev.Position())
	if !ok {
		return
	}
	switch buttons := ev.Buttons(); {
	case buttons&tcell.ButtonPrimary != 0:
		a.session.Paint(idx, true)
	case buttons&tcell.ButtonSecondary != 0:
		a.session.Paint(idx, false)
	}
}

// CellAt maps a screen position to the index of the cell drawn there
func (a *App) CellAt(sx, sy int) (int, bool) {
	if sx < 0 || sy < 0 {
		return 0, false
	}
	return a.session.World().Index(sx/cellWidth, sy)
}

// Draw renders the world followed by the status and help lines
func (a *App) Draw() {
	a.screen.Clear()

	world := a.session.World()
	for y := range world.Height() {
		for x := range world.Width() {
			idx, _ := world.Index(x, y)
			r, style := ' ', a.deadStyle
			if world.IsAlive(idx) {
				r, style = aliveRune, a.aliveStyle
			}
			for c := range cellWidth {
				a.screen.SetContent(x*cellWidth+c, y, r, nil, style)
			}
		}
	}

	a.drawText(0, world.Height(), a.statusStyle, a.session.Status().String())
	a.drawText(0, world.Height()+1, a.deadStyle, helpLine)
	a.screen.Show()
}

func (a *App) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}
