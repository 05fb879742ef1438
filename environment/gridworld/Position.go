package gridworld

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// NumActions is the number of discrete actions available in every cell
const NumActions = 4

// Action is a unit move on the grid. The ordinal of an Action is its
// index into a row of action values.
type Action int

const (
	Up Action = iota
	Right
	Down
	Left
)

// Actions lists every Action in index order
var Actions = [NumActions]Action{Up, Right, Down, Left}

// displacements are indexed by Action; y grows downwards
var displacements = [NumActions]Position{
	Up:    {X: 0, Y: -1},
	Right: {X: 1, Y: 0},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
}

// Displacement returns the unit offset of the Action
func (a Action) Displacement() Position {
	if !a.Valid() {
		panic(fmt.Sprintf("displacement: no such action %d", int(a)))
	}
	return displacements[a]
}

// Valid returns whether the Action is one of the four directions
func (a Action) Valid() bool {
	return a >= Up && a <= Left
}

func (a Action) String() string {
	switch a {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Arrow returns a single character arrow pointing in the Action's
// direction
func (a Action) Arrow() string {
	switch a {
	case Up:
		return "^"
	case Right:
		return ">"
	case Down:
		return "v"
	case Left:
		return "<"
	}
	return "?"
}

// Position is an (x, y) cell coordinate. x indexes columns and y
// indexes rows, with (0, 0) the top-left cell.
type Position struct {
	X, Y int
}

// Move returns the position reached by applying the Action's
// displacement. The result may lie outside of any grid.
func (p Position) Move(a Action) Position {
	d := a.Displacement()
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Distance returns the Euclidean distance between two positions
func (p Position) Distance(other Position) float64 {
	return r2.Norm(r2.Sub(p.r2(), other.r2()))
}

// Vec returns the position as a 2-vector (x, y), the observation
// format of timesteps
func (p Position) Vec() *mat.VecDense {
	return mat.NewVecDense(2, []float64{float64(p.X), float64(p.Y)})
}

// PositionOf converts a 2-vector observation back into a Position
func PositionOf(v mat.Vector) Position {
	if v.Len() != 2 {
		panic(fmt.Sprintf("positionOf: observation must have length 2, "+
			"have %d", v.Len()))
	}
	return Position{X: int(v.AtVec(0)), Y: int(v.AtVec(1))}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func (p Position) r2() r2.Vec {
	return r2.Vec{X: float64(p.X), Y: float64(p.Y)}
}
