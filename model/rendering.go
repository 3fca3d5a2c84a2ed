package model

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "
	gridEdge     = "|"
)

// TextRenderer writes the world as rows of text blocks
type TextRenderer struct {
	Alive string
	Dead  string
}

// NewTextRenderer returns a renderer using two-column blocks per cell
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{Alive: gridPosBlock, Dead: gridPosEmpty}
}

// Display renders every row of the world to out
func (r *TextRenderer) Display(out io.Writer, w *World) error {
	bw := bufio.NewWriter(out)
	for y := range w.height {
		bw.WriteString(gridEdge)
		for x := range w.width {
			if w.cells[y*w.width+x].state == Alive {
				bw.WriteString(r.Alive)
			} else {
				bw.WriteString(r.Dead)
			}
		}
		bw.WriteString(gridEdge)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "[Display] failed to flush rendered world")
	}
	return nil
}
