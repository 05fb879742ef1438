package gridworld

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Rewards of the navigation task
const (
	GoalReward = 100.0
	WallReward = -100.0
	StepReward = -1.0
)

// Outcome describes the result of taking an action in some cell
type Outcome struct {
	Next     Position
	Reward   float64
	Terminal bool // Next is the goal
	Blocked  bool // the move ran into a wall, Next is unchanged
}

func (o Outcome) String() string {
	return fmt.Sprintf("Outcome | Next: %v  |  Reward: %.2f  |  "+
		"Terminal: %v  |  Blocked: %v", o.Next, o.Reward, o.Terminal,
		o.Blocked)
}

// Transition returns the outcome of taking action a from position p in
// grid g. Transition does not modify g.
//
// A move off the grid leaves the agent where it is and is scored by
// the classification of p itself rather than as a wall hit. Moving into
// the goal earns GoalReward and ends the episode, moving into a wall
// earns WallReward and leaves the agent in place, and any other move
// earns StepReward.
func Transition(g *Grid, p Position, a Action) Outcome {
	candidate := p.Move(a)
	if !g.InBounds(candidate) {
		candidate = p
	}

	switch g.Classify(candidate) {
	case Goal:
		return Outcome{Next: candidate, Reward: GoalReward, Terminal: true}

	case Wall:
		return Outcome{Next: p, Reward: WallReward, Blocked: true}

	default:
		return Outcome{Next: candidate, Reward: StepReward}
	}
}

// MinReward returns the minimum reward attainable in one transition
func MinReward() float64 {
	return floats.Min([]float64{GoalReward, WallReward, StepReward})
}

// MaxReward returns the maximum reward attainable in one transition
func MaxReward() float64 {
	return floats.Max([]float64{GoalReward, WallReward, StepReward})
}
