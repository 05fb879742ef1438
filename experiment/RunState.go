package experiment

import "fmt"

// Epsilon decay schedule applied when an episode reaches the goal
const (
	EpsilonDecay = 0.995
	EpsilonFloor = 0.01
)

// RunState holds the counters of a learning run
type RunState struct {
	Episode int     // episodes finished, by reaching the goal or timing out
	Moves   int     // moves taken in the current episode
	Return  float64 // cumulative reward of the current episode
	Epsilon float64 // current exploration probability
}

// newRunState returns the run state at the start of a run
func newRunState(epsilon float64) RunState {
	return RunState{Epsilon: epsilon}
}

// startEpisode resets the per-episode counters
func (r *RunState) startEpisode() {
	r.Moves = 0
	r.Return = 0
}

// decayEpsilon shrinks epsilon multiplicatively toward EpsilonFloor.
// Epsilon at or below the floor is left unchanged.
func (r *RunState) decayEpsilon() {
	if r.Epsilon > EpsilonFloor {
		r.Epsilon *= EpsilonDecay
		if r.Epsilon < EpsilonFloor {
			r.Epsilon = EpsilonFloor
		}
	}
}

func (r RunState) String() string {
	return fmt.Sprintf("Episode: %d  |  Moves: %d  |  Return: %.2f  |  "+
		"ε: %.4f", r.Episode, r.Moves, r.Return, r.Epsilon)
}
