package model

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Pattern is a set of alive cells given as offsets from a top-left origin
type Pattern struct {
	Name   string
	Width  int
	Height int
	Alive  [][2]int // {x, y}
}

var (
	// Glider travels one cell diagonally every four generations
	Glider = Pattern{
		Name:   "glider",
		Width:  3,
		Height: 3,
		Alive:  [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	}
	// Blinker is the horizontal period-2 oscillator
	Blinker = Pattern{
		Name:   "blinker",
		Width:  3,
		Height: 1,
		Alive:  [][2]int{{0, 0}, {1, 0}, {2, 0}},
	}
	// Block is the 2x2 still-life
	Block = Pattern{
		Name:   "block",
		Width:  2,
		Height: 2,
		Alive:  [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	}
)

// Patterns indexes the built-in patterns by name
var Patterns = map[string]Pattern{
	Glider.Name:  Glider,
	Blinker.Name: Blinker,
	Block.Name:   Block,
}

// Place sets the cells of p alive with its top-left corner at (x, y).
// Nothing is written when the pattern does not fit entirely.
func (w *World) Place(p Pattern, x, y int) error {
	if x < 0 || y < 0 || x+p.Width > w.width || y+p.Height > w.height {
		return errors.Wrapf(ErrPatternOutOfBounds, "[Place] %s at (%d,%d) on %dx%d", p.Name, x, y, w.width, w.height)
	}
	for _, off := range p.Alive {
		idx, _ := w.Index(x+off[0], y+off[1])
		w.SetCell(idx, true)
	}
	return nil
}

// Randomize sets each cell alive with probability density
func (w *World) Randomize(rng *rand.Rand, density float64) {
	for i := range w.cells {
		w.SetCell(i, rng.Float64() < density)
	}
}

// Seed clears the world and sprinkles random life at the given density.
// With patterns set, a glider, blinker and block are dropped on worlds of at
// least 10x10 cells.
func (w *World) Seed(seed int64, density float64, patterns bool) {
	w.Clear()

	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	if density > 0 {
		w.Randomize(rng, density)
	}

	if !patterns || w.width < 10 || w.height < 10 {
		return
	}
	// all three fit on any world of at least 10x10
	placements := []struct {
		p    Pattern
		x, y int
	}{
		{Glider, 1, 1},
		{Blinker, w.width/2 - 1, w.height / 2},
		{Block, w.width - 4, w.height - 4},
	}
	for _, pl := range placements {
		if err := w.Place(pl.p, pl.x, pl.y); err != nil {
			panic(err)
		}
	}
}
