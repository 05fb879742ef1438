package qlearning

import (
	"fmt"
	"os"

	"github.com/samuelfneumann/qgrid/agent/tabular/qtable"
	"github.com/samuelfneumann/qgrid/environment/gridworld"
	"github.com/samuelfneumann/qgrid/timestep"
)

// QLearner implements the update functionality for the Q-Learning
// algorithm.
//
// The update target bootstraps off of the maximum action value of the
// observed next cell, whether or not the transition ended the episode.
type QLearner struct {
	table        *qtable.QTable
	step         timestep.TimeStep
	action       gridworld.Action
	nextStep     timestep.TimeStep
	learningRate float64
}

// NewQLearner creates a new QLearner struct
//
// table is the action-value table of the policy to learn
func NewQLearner(table *qtable.QTable, learningRate float64) *QLearner {
	return &QLearner{table: table, learningRate: learningRate}
}

// ObserveFirst observes and records the first episodic timestep
func (q *QLearner) ObserveFirst(t timestep.TimeStep) {
	if !t.First() {
		fmt.Fprintf(os.Stderr, "Warning: ObserveFirst() should only be "+
			"called on the first timestep (current timestep = %d)\n",
			t.Number)
	}
	q.step = timestep.TimeStep{}
	q.nextStep = t
}

// Observe observes and records any timestep other than the first timestep
func (q *QLearner) Observe(action gridworld.Action, nextStep timestep.TimeStep) {
	q.step = q.nextStep
	q.action = action
	q.nextStep = nextStep
}

// TdError returns the TD error of the last observed transition
func (q *QLearner) TdError() float64 {
	state, nextState := q.states()

	target := q.nextStep.Reward + q.nextStep.Discount*q.table.MaxValue(nextState)
	return target - q.table.At(state, q.action)
}

// Step updates the value of the last observed state-action pair
// toward its Q-Learning target
func (q *QLearner) Step() {
	state, _ := q.states()
	currentEstimate := q.table.At(state, q.action)

	q.table.Set(state, q.action, currentEstimate+q.learningRate*q.TdError())
}

// SetLearningRate sets the step size used by subsequent updates
func (q *QLearner) SetLearningRate(learningRate float64) {
	q.learningRate = learningRate
}

// LearningRate returns the step size of the learner
func (q *QLearner) LearningRate() float64 {
	return q.learningRate
}

func (q *QLearner) states() (state, nextState gridworld.Position) {
	if q.step.Observation == nil || q.nextStep.Observation == nil {
		panic("qLearner: no transition has been observed")
	}
	return gridworld.PositionOf(q.step.Observation),
		gridworld.PositionOf(q.nextStep.Observation)
}
