package rules

// Outcome classifies what happens to a single cell during one generation
type Outcome int

const (
	StaysDead Outcome = iota
	Birth
	Survival
	Death
)

/*
Apply resolves the classic Conway rule (B3/S23) for one cell.

A dead cell with exactly three alive neighbors is born, and an alive cell with
two or three alive neighbors survives. Every other cell ends up dead.
*/
func Apply(neighbors int, alive bool) Outcome {
	switch {
	case !alive && neighbors == 3:
		return Birth
	case alive && (neighbors == 2 || neighbors == 3):
		return Survival
	case alive:
		return Death
	default:
		return StaysDead
	}
}

// Alive reports whether the outcome leaves the cell alive
func (o Outcome) Alive() bool {
	return o == Birth || o == Survival
}
