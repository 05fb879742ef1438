// Package visualize renders the state of a learning gridworld agent to
// the terminal, to PNG images and to HTML charts
package visualize

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/qgrid/environment/gridworld"
)

// Engine is the read-only view of a learning run that the renderers
// draw from. experiment.Online implements Engine.
//
// BestAction may draw from the engine's random source to break ties,
// so rendering a run can change the random choices of later steps.
type Engine interface {
	Grid() *gridworld.Grid
	AgentPosition() gridworld.Position
	BestAction(p gridworld.Position) gridworld.Action
	StateValues() *mat.Dense
}

// policy returns the greedy action of every open cell other than the
// goal, in row-major order
func policy(e Engine, g *gridworld.Grid) map[gridworld.Position]gridworld.Action {
	actions := make(map[gridworld.Position]gridworld.Action)
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			p := gridworld.Position{X: x, Y: y}
			switch g.Classify(p) {
			case gridworld.Empty, gridworld.Start:
				actions[p] = e.BestAction(p)
			}
		}
	}
	return actions
}
