package policy

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/qgrid/environment/gridworld"
)

// Greedy is an EGreedy policy which never explores
type Greedy struct {
	*EGreedy
}

// NewGreedy creates a new Greedy policy
func NewGreedy(src rand.Source) *Greedy {
	return &Greedy{NewEGreedy(src)}
}

// SelectAction selects a greedy action, breaking ties uniformly at
// random
func (g *Greedy) SelectAction(row []float64) gridworld.Action {
	return g.EGreedy.SelectAction(row, 0)
}
