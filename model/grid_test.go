package model

import (
	"testing"

	"github.com/pkg/errors"
)

func newTestWorld(t *testing.T, width, height int) *World {
	t.Helper()
	w, err := NewWorld(width, height)
	if err != nil {
		t.Fatalf("NewWorld(%d, %d): %v", width, height, err)
	}
	return w
}

// setRowCol marks cells alive given {row, col} pairs
func setRowCol(t *testing.T, w *World, cells ...[2]int) {
	t.Helper()
	for _, rc := range cells {
		idx, ok := w.Index(rc[1], rc[0])
		if !ok {
			t.Fatalf("cell %v outside %dx%d world", rc, w.Width(), w.Height())
		}
		w.SetCell(idx, true)
	}
}

// expectAlive checks that exactly the given {row, col} cells are alive
func expectAlive(t *testing.T, w *World, cells ...[2]int) {
	t.Helper()
	want := make(map[int]bool, len(cells))
	for _, rc := range cells {
		idx, _ := w.Index(rc[1], rc[0])
		want[idx] = true
	}
	for i := range w.Total() {
		if w.IsAlive(i) != want[i] {
			x, y := w.Coords(i)
			t.Fatalf("generation %d: cell (row %d, col %d) alive=%v, expected %v", w.Generation(), y, x, w.IsAlive(i), want[i])
		}
	}
}

func TestNewWorld(t *testing.T) {
	w := newTestWorld(t, 7, 4)
	if w.Width() != 7 || w.Height() != 4 || w.Total() != 28 {
		t.Fatalf("dimensions %dx%d total %d", w.Width(), w.Height(), w.Total())
	}
	for i := range w.Total() {
		if w.IsAlive(i) {
			t.Fatalf("fresh cell %d alive", i)
		}
		if w.Cell(i).Index() != i {
			t.Fatalf("cell %d reports index %d", i, w.Cell(i).Index())
		}
	}
	if w.CountLivingCells() != 0 {
		t.Fatalf("fresh world has %d living cells", w.CountLivingCells())
	}
}

func TestNewWorldInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		w, err := NewWorld(dims[0], dims[1])
		if w != nil || !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("NewWorld(%d, %d) = %v, %v", dims[0], dims[1], w, err)
		}
	}
}

func TestSetAndToggle(t *testing.T) {
	w := newTestWorld(t, 3, 3)

	w.SetCell(4, true)
	if !w.IsAlive(4) {
		t.Fatal("SetCell(4, true) did not take")
	}
	w.SetCell(4, false)
	if w.IsAlive(4) {
		t.Fatal("SetCell(4, false) did not take")
	}

	for _, start := range []bool{false, true} {
		w.SetCell(2, start)
		w.ToggleCell(2)
		if w.IsAlive(2) == start {
			t.Fatalf("toggle from %v did not flip", start)
		}
		w.ToggleCell(2)
		if w.IsAlive(2) != start {
			t.Fatalf("double toggle from %v did not restore", start)
		}
	}

	before := w.Cell(4).Neighbors()
	w.ToggleCell(4)
	if after := w.Cell(4).Neighbors(); len(after) != len(before) {
		t.Fatal("toggling changed neighbor list")
	}
}

func TestOutOfRangePanics(t *testing.T) {
	w := newTestWorld(t, 3, 2)
	expectPanic(t, ErrIndexOutOfRange, func() { w.IsAlive(6) })
	expectPanic(t, ErrIndexOutOfRange, func() { w.SetCell(6, true) })
	expectPanic(t, ErrIndexOutOfRange, func() { w.ToggleCell(-1) })
	expectPanic(t, ErrIndexOutOfRange, func() { w.Cell(100) })

	if w.Contains(6) || !w.Contains(5) || w.Contains(-1) {
		t.Fatal("Contains disagrees with bounds")
	}
	if _, ok := w.Index(3, 0); ok {
		t.Fatal("Index accepted column 3 on a 3-wide world")
	}
}

func TestStepEmptyWorldStaysEmpty(t *testing.T) {
	w := newTestWorld(t, 6, 5)
	for range 3 {
		w.Step()
		expectAlive(t, w)
	}
	if w.Generation() != 3 {
		t.Fatalf("generation = %d", w.Generation())
	}
}

func TestStepUnderpopulation(t *testing.T) {
	w := newTestWorld(t, 5, 5)
	setRowCol(t, w, [2]int{2, 2})
	w.Step()
	expectAlive(t, w)
	if births, deaths := w.LastChanges(); births != 0 || deaths != 1 {
		t.Fatalf("changes = %d births, %d deaths", births, deaths)
	}
}

func TestStepBlockIsStill(t *testing.T) {
	w := newTestWorld(t, 6, 6)
	block := [][2]int{{2, 2}, {2, 3}, {3, 2}, {3, 3}}
	setRowCol(t, w, block...)
	for range 4 {
		w.Step()
		expectAlive(t, w, block...)
	}
}

func TestStepBlinker(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		origin [2]int
	}{
		{"3x3 world", 3, 3, [2]int{0, 0}},
		{"interior of 7x6 world", 7, 6, [2]int{2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, tt.width, tt.height)
			at := func(r, c int) [2]int { return [2]int{tt.origin[0] + r, tt.origin[1] + c} }

			horizontal := [][2]int{at(1, 0), at(1, 1), at(1, 2)}
			vertical := [][2]int{at(0, 1), at(1, 1), at(2, 1)}

			setRowCol(t, w, horizontal...)
			hash := w.Hash()

			w.Step()
			expectAlive(t, w, vertical...)
			if births, deaths := w.LastChanges(); births != 2 || deaths != 2 {
				t.Fatalf("changes = %d births, %d deaths", births, deaths)
			}

			w.Step()
			expectAlive(t, w, horizontal...)
			if w.Hash() != hash {
				t.Fatal("hash differs after a full blinker period")
			}
		})
	}
}

func TestStepGliderAtEdgeIsClipped(t *testing.T) {
	// A glider heading into the bottom-right corner of a bounded world
	// turns into a block instead of wrapping around.
	w := newTestWorld(t, 5, 5)
	if err := w.Place(Glider, 2, 2); err != nil {
		t.Fatal(err)
	}
	for range 12 {
		w.Step()
	}
	expectAlive(t, w, [2]int{3, 3}, [2]int{3, 4}, [2]int{4, 3}, [2]int{4, 4})
}

func TestClear(t *testing.T) {
	w := newTestWorld(t, 4, 4)
	setRowCol(t, w, [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1})
	w.Step()
	w.Clear()
	expectAlive(t, w)
	if w.Generation() != 0 {
		t.Fatalf("generation after Clear = %d", w.Generation())
	}
}
