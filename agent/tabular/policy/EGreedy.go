// Package policy implements policies over tabular action values
package policy

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/qgrid/environment/gridworld"
	"github.com/samuelfneumann/qgrid/utils/floatutils"
)

// EGreedy implements an ε-greedy policy over a row of action values.
// The value of ε is supplied on every call, so an EGreedy holds no state
// other than its source of randomness.
type EGreedy struct {
	seed rand.Source // Seed for random number generation
	rng  *rand.Rand
}

// NewEGreedy constructs a new EGreedy policy which draws all random
// numbers from src
func NewEGreedy(src rand.Source) *EGreedy {
	return &EGreedy{seed: src, rng: rand.New(src)}
}

// SelectAction selects an action from an ε-greedy policy: with
// probability ε an action chosen uniformly at random, otherwise a
// greedy action. Greedy ties are broken uniformly at random. ε is
// clipped to [0, 1].
func (p *EGreedy) SelectAction(row []float64,
	epsilon float64) gridworld.Action {
	if len(row) != gridworld.NumActions {
		panic(fmt.Sprintf("selectAction: want %d action values, have %d",
			gridworld.NumActions, len(row)))
	}
	epsilon = floatutils.Clip(epsilon, 0, 1)

	// Calculate the ε probability of choosing any action at random
	prob := epsilon / float64(gridworld.NumActions)
	actionProbabilites := make([]float64, gridworld.NumActions)
	for i := range actionProbabilites {
		actionProbabilites[i] = prob
	}

	// Split the remaining probability evenly between greedy actions
	_, greedy := floatutils.MaxSlice(row)
	for _, i := range greedy {
		actionProbabilites[i] += (1.0 - epsilon) / float64(len(greedy))
	}

	// Construct a categorical distribution over actions using action
	// probabilities
	dist := distuv.NewCategorical(actionProbabilites, p.seed)

	return gridworld.Action(dist.Rand())
}

// BestAction returns the action of largest value, breaking ties
// uniformly at random
func (p *EGreedy) BestAction(row []float64) gridworld.Action {
	return gridworld.Action(floatutils.ArgMax(row, p.rng))
}

// Rand returns the random number generator the policy draws from
func (p *EGreedy) Rand() *rand.Rand {
	return p.rng
}
