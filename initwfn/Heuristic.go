package initwfn

import (
	"github.com/samuelfneumann/qgrid/agent/tabular/qtable"
	"github.com/samuelfneumann/qgrid/environment/gridworld"
)

// DefaultScale is the steepness used by a HeuristicConfig with no scale
const DefaultScale = 2.0

// HeuristicConfig implements a configuration of a distance-based
// initialisation. The value of action a in cell c is
//
//	-Scale * ||(c + displacement(a)) - goal||
//
// so that acting greedily on an untrained table moves toward the goal.
// A zero Scale means DefaultScale.
type HeuristicConfig struct {
	Scale float64
}

// NewHeuristic returns a new heuristic initialisation with steepness
// scale
func NewHeuristic(scale float64) *InitWFn {
	return newInitWFn(HeuristicConfig{Scale: scale})
}

// Type returns the type of initialisation described by this config
func (h HeuristicConfig) Type() Type {
	return Heuristic
}

// Create returns a table holding the negative scaled distance from each
// cell's neighbours to the goal. Every cell, walls included, receives a
// row.
func (h HeuristicConfig) Create(size int,
	goal gridworld.Position) *qtable.QTable {
	scale := h.Scale
	if scale == 0 {
		scale = DefaultScale
	}

	q := qtable.New(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := gridworld.Position{X: x, Y: y}
			for _, a := range gridworld.Actions {
				q.Set(c, a, -scale*c.Move(a).Distance(goal))
			}
		}
	}
	return q
}
