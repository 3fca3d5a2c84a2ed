package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// World is the fixed-size grid of cells the simulation runs on
type World struct {
	width  int
	height int

	// cells is the live generation, back is where Step writes the next one.
	// Both carry the same indices and neighbor lists.
	cells []Cell
	back  []Cell

	generation int
	births     int
	deaths     int
}

// NewWorld creates a world of width x height dead cells
func NewWorld(width, height int) (*World, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewWorld] width: %d, height: %d", width, height)
	}

	total := width * height
	cells := make([]Cell, total)
	for i := range total {
		cells[i] = NewCell(i, width, height)
	}
	back := make([]Cell, total)
	copy(back, cells)

	return &World{
		width:  width,
		height: height,
		cells:  cells,
		back:   back,
	}, nil
}

// Width returns the number of columns
func (w *World) Width() int { return w.width }

// Height returns the number of rows
func (w *World) Height() int { return w.height }

// Total returns the number of cells
func (w *World) Total() int { return len(w.cells) }

// Generation returns how many steps have been applied since creation or the last Clear
func (w *World) Generation() int { return w.generation }

// LastChanges returns the births and deaths of the most recent step
func (w *World) LastChanges() (births, deaths int) { return w.births, w.deaths }

// Contains reports whether index addresses a cell of this world
func (w *World) Contains(index int) bool {
	return index >= 0 && index < len(w.cells)
}

// Index converts column x and row y to a row-major index
func (w *World) Index(x, y int) (int, bool) {
	if x < 0 || x >= w.width || y < 0 || y >= w.height {
		return 0, false
	}
	return y*w.width + x, true
}

// Coords converts a row-major index back to column and row
func (w *World) Coords(index int) (x, y int) {
	w.mustContain(index, "Coords")
	return index % w.width, index / w.width
}

// Cell returns a copy of the cell at index
func (w *World) Cell(index int) Cell {
	w.mustContain(index, "Cell")
	return w.cells[index]
}

// IsAlive reports whether the cell at index is alive
func (w *World) IsAlive(index int) bool {
	w.mustContain(index, "IsAlive")
	return w.cells[index].state == Alive
}

// SetCell overwrites the state of the cell at index
func (w *World) SetCell(index int, alive bool) {
	w.mustContain(index, "SetCell")
	if alive {
		w.cells[index].state = Alive
	} else {
		w.cells[index].state = Dead
	}
}

// ToggleCell flips the state of the cell at index
func (w *World) ToggleCell(index int) {
	w.mustContain(index, "ToggleCell")
	w.cells[index].toggle()
}

// Clear kills every cell and resets the generation counter
func (w *World) Clear() {
	for i := range w.cells {
		w.cells[i].state = Dead
	}
	w.generation = 0
	w.births, w.deaths = 0, 0
}

// aliveNeighbors counts the alive neighbors of c within the given generation
func aliveNeighbors(c *Cell, generation []Cell) (count int) {
	for _, n := range c.neighbors {
		if n.present && generation[n.index].state == Alive {
			count++
		}
	}
	return
}

// Step advances every cell by one generation.
// All neighbor counts are read from the current buffer and written to the back
// buffer, then the two are swapped so no reader sees a half-updated world.
func (w *World) Step() {
	var births, deaths int

	for i := range w.cells {
		cur := &w.cells[i]
		outcome := rules.Apply(aliveNeighbors(cur, w.cells), cur.state == Alive)

		switch outcome {
		case rules.Birth:
			births++
		case rules.Death:
			deaths++
		}

		if outcome.Alive() {
			w.back[i].state = Alive
		} else {
			w.back[i].state = Dead
		}
	}

	w.cells, w.back = w.back, w.cells
	w.generation++
	w.births, w.deaths = births, deaths
}

// CountLivingCells returns the total number of living cells
func (w *World) CountLivingCells() (count int) {
	for i := range w.cells {
		if w.cells[i].state == Alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 hash of the current generation
func (w *World) Hash() string {
	h := md5.New()
	buf := make([]byte, len(w.cells))
	for i := range w.cells {
		buf[i] = byte(w.cells[i].state)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

func (w *World) mustContain(index int, op string) {
	if !w.Contains(index) {
		panic(errors.Wrapf(ErrIndexOutOfRange, "[%s] index: %d, total: %d", op, index, len(w.cells)))
	}
}
