// Package qlearning implements tabular Q-Learning with an ε-greedy
// behaviour policy and a greedy target policy.
package qlearning

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/qgrid/agent/tabular/policy"
	"github.com/samuelfneumann/qgrid/agent/tabular/qtable"
	"github.com/samuelfneumann/qgrid/environment/gridworld"
	"github.com/samuelfneumann/qgrid/timestep"
)

// QLearning implements the Q-Learning algorithm
//
// The behaviour and target policies share one source of randomness, so
// that exploratory choices and tie-breaks are reproducible from a single
// seed.
type QLearning struct {
	*QLearner
	behaviour *policy.EGreedy
	target    *policy.Greedy
	table     *qtable.QTable
	epsilon   float64
}

// New creates a new QLearning agent which learns the values in table.
// All random numbers are drawn from src.
func New(table *qtable.QTable, c Config, src rand.Source) *QLearning {
	behaviour := policy.NewEGreedy(src)
	target := &policy.Greedy{EGreedy: behaviour}
	learner := NewQLearner(table, c.Alpha)

	return &QLearning{
		QLearner:  learner,
		behaviour: behaviour,
		target:    target,
		table:     table,
		epsilon:   c.Epsilon,
	}
}

// SelectAction selects an ε-greedy action in the cell observed by t
func (q *QLearning) SelectAction(t timestep.TimeStep) gridworld.Action {
	p := gridworld.PositionOf(t.Observation)
	return q.behaviour.SelectAction(q.table.Row(p), q.epsilon)
}

// TargetAction selects a greedy action in cell p
func (q *QLearning) TargetAction(p gridworld.Position) gridworld.Action {
	return q.target.SelectAction(q.table.Row(p))
}

// BestAction returns the action of largest value in cell p with random
// tie-breaking
func (q *QLearning) BestAction(p gridworld.Position) gridworld.Action {
	return q.table.BestAction(p, q.behaviour.Rand())
}

// SetEpsilon sets the exploration probability of the behaviour policy
func (q *QLearning) SetEpsilon(e float64) {
	q.epsilon = e
}

// Epsilon returns the exploration probability of the behaviour policy
func (q *QLearning) Epsilon() float64 {
	return q.epsilon
}

// Table returns the action-value table being learned
func (q *QLearning) Table() *qtable.QTable {
	return q.table
}
