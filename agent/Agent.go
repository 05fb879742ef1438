// Package agent defines the interfaces of tabular gridworld agents
package agent

import (
	"github.com/samuelfneumann/qgrid/environment/gridworld"
	"github.com/samuelfneumann/qgrid/timestep"
)

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which learns action values, and a
// Policy which chooses actions in each state. The Policy and Learner
// share the same action-value table, so any change the Learner makes is
// reflected in the actions the Policy chooses.
type Agent interface {
	Learner
	Policy
}

// Learner implements a learning algorithm that defines how action
// values are updated.
type Learner interface {
	// ObserveFirst records the first timestep in an episode
	ObserveFirst(timestep.TimeStep)

	// Observe records that an action led to some timestep
	Observe(action gridworld.Action, nextStep timestep.TimeStep)

	// Step performs a single update using the last observed transition
	Step()

	// TdError returns the TD error of the last observed transition
	TdError() float64
}

// Policy chooses an action given the timestep whose observation is the
// agent's current cell
type Policy interface {
	SelectAction(t timestep.TimeStep) gridworld.Action
}
