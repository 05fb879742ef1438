// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// StepType denotes the type of step that a TimeStep can be, either a first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType describes why an episode ended
type EndType int

const (
	// NotEnded is the EndType of any TimeStep that is not Last
	NotEnded EndType = iota

	// TerminalStateReached denotes an episode ended by reaching the goal
	TerminalStateReached

	// Timeout denotes an episode cut off by the episode step limit
	Timeout
)

func (e EndType) String() string {
	switch e {
	case TerminalStateReached:
		return "TerminalStateReached"
	case Timeout:
		return "Timeout"
	default:
		return "NotEnded"
	}
}

// TimeStep packages together a single timestep in an environment.
//
// Observation holds the (x, y) coordinates of the cell the agent
// observed at the end of the step. Number is the move count within the
// episode when the step was taken, so a First step has Number 0.
type TimeStep struct {
	StepType    StepType
	Reward      float64
	Discount    float64
	Observation *mat.VecDense
	Number      int

	endType EndType
}

// New returns a new TimeStep
func New(t StepType, r, d float64, o *mat.VecDense, n int) TimeStep {
	return TimeStep{StepType: t, Reward: r, Discount: d, Observation: o,
		Number: n}
}

// First returns whether a TimeStep is the first in an episode
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an episode
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an episode
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

// SetEnd marks the TimeStep as the last in its episode, ending for
// reason e
func (t *TimeStep) SetEnd(e EndType) {
	t.StepType = Last
	t.endType = e
}

// EndType returns why the episode ended on this TimeStep. Steps which
// are not Last always return NotEnded.
func (t *TimeStep) EndType() EndType {
	if !t.Last() {
		return NotEnded
	}
	return t.endType
}

// Coordinates returns the observed (x, y) cell coordinates
func (t *TimeStep) Coordinates() (int, int) {
	if t.Observation == nil || t.Observation.Len() != 2 {
		panic("coordinates: observation is not a 2-vector")
	}
	return int(t.Observation.AtVec(0)), int(t.Observation.AtVec(1))
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  End: %v  |  Reward:  %.2f  |  " +
		"Discount: %.2f  |  Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.EndType(), t.Reward, t.Discount,
		t.Number)
}
