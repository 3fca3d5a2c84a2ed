// Package window runs a session in a desktop window. The GUI itself needs the
// ebiten build tag; the pixel and pointer mapping here is shared by both builds.
package window

import (
	"image/color"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// statusHeight is the strip below the grid reserved for on-screen text
const statusHeight = 32

var (
	aliveColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	deadColor  = color.RGBA{A: 0xff}

	// ErrUnavailable is returned by Run in builds without the ebiten tag
	ErrUnavailable = errors.New("window driver requires building with the 'ebiten' tag")
)

// fillPixels writes one RGBA pixel per cell of w into buf
func fillPixels(buf []byte, w *model.World, on, off color.RGBA) {
	for i := range w.Total() {
		col := off
		if w.IsAlive(i) {
			col = on
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// cellAt maps a pointer position in layout pixels to a cell index
func cellAt(w *model.World, px, py, cellSize int) (int, bool) {
	if px < 0 || py < 0 || cellSize <= 0 {
		return 0, false
	}
	return w.Index(px/cellSize, py/cellSize)
}

// screenSize returns the logical window size for a world drawn at cellSize
func screenSize(w *model.World, cellSize int) (int, int) {
	return w.Width() * cellSize, w.Height()*cellSize + statusHeight
}
