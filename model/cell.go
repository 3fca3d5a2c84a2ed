package model

import "github.com/pkg/errors"

// CellState is the binary state of a single cell
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

// String returns a human readable state name
func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Direction names one of the eight compass neighbors, in fixed order
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest

	numDirections = 8
)

var directionNames = [numDirections]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Directions lists all compass directions in neighbor order
func Directions() [numDirections]Direction {
	return [numDirections]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
}

// Opposite returns the direction pointing back the other way
func (d Direction) Opposite() Direction {
	return (d + numDirections/2) % numDirections
}

func (d Direction) String() string {
	if d < 0 || d >= numDirections {
		return "?"
	}
	return directionNames[d]
}

// neighbor is an optional cell index. A zero value means no neighbor.
type neighbor struct {
	index   int
	present bool
}

// Cell is one position of the world along with its precomputed neighbors
type Cell struct {
	index     int
	state     CellState
	neighbors [numDirections]neighbor
}

// NewCell builds a dead cell at index for a width x height world.
// Neighbors that would cross the world edge are left absent; edges never wrap.
func NewCell(index, width, height int) Cell {
	if width <= 0 || height <= 0 {
		panic(errors.Wrapf(ErrInvalidDimensions, "[NewCell] %dx%d", width, height))
	}
	if index < 0 || index >= width*height {
		panic(errors.Wrapf(ErrIndexOutOfRange, "[NewCell] index %d, total %d", index, width*height))
	}

	var (
		x        = index % width
		y        = index / width
		onLeft   = x == 0
		onRight  = x == width-1
		onTop    = y == 0
		onBottom = y == height-1
	)

	at := func(include bool, idx int) neighbor {
		if !include {
			return neighbor{}
		}
		return neighbor{index: idx, present: true}
	}

	return Cell{
		index: index,
		state: Dead,
		neighbors: [numDirections]neighbor{
			North:     at(!onTop, index-width),
			NorthEast: at(!onTop && !onRight, index-width+1),
			East:      at(!onRight, index+1),
			SouthEast: at(!onBottom && !onRight, index+width+1),
			South:     at(!onBottom, index+width),
			SouthWest: at(!onLeft && !onBottom, index+width-1),
			West:      at(!onLeft, index-1),
			NorthWest: at(!onTop && !onLeft, index-width-1),
		},
	}
}

// Index returns the row-major position of the cell
func (c Cell) Index() int { return c.index }

// State returns the current state of the cell
func (c Cell) State() CellState { return c.state }

// IsAlive reports whether the cell is alive
func (c Cell) IsAlive() bool { return c.state == Alive }

// Neighbor returns the index of the neighbor in direction d, if there is one
func (c Cell) Neighbor(d Direction) (int, bool) {
	if d < 0 || d >= numDirections {
		return 0, false
	}
	n := c.neighbors[d]
	return n.index, n.present
}

// Neighbors returns the indices of all present neighbors in compass order
func (c Cell) Neighbors() []int {
	out := make([]int, 0, numDirections)
	for _, n := range c.neighbors {
		if n.present {
			out = append(out, n.index)
		}
	}
	return out
}

func (c *Cell) toggle() {
	if c.state == Alive {
		c.state = Dead
		return
	}
	c.state = Alive
}
