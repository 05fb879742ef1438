package experiment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/qgrid/agent/tabular/qlearning"
	"github.com/samuelfneumann/qgrid/environment/gridworld"
	"github.com/samuelfneumann/qgrid/experiment/trackers"
	"github.com/samuelfneumann/qgrid/initwfn"
	ts "github.com/samuelfneumann/qgrid/timestep"
)

func newOnline(t testing.TB, size int, hp qlearning.Config,
	seed uint64) *Online {
	g, err := gridworld.New(size)
	require.NoError(t, err)
	return NewOnline(g, hp, nil, rand.NewSource(seed))
}

// The first greedy step on an untrained 5 x 5 grid
func TestFirstStep(t *testing.T) {
	start := gridworld.Position{X: 1, Y: 1}
	seen := make(map[gridworld.Action]bool)

	for seed := uint64(0); seed < 64; seed++ {
		o := newOnline(t, 5, qlearning.Config{Alpha: 0.5, Gamma: 0.9},
			seed)
		step := o.Step()

		state := o.RunState()
		assert.Equal(t, 1, state.Moves)
		assert.Equal(t, 0, state.Episode)
		assert.Equal(t, step.Reward, state.Return)
		assert.False(t, step.Last())

		var action gridworld.Action
		for _, a := range gridworld.Actions {
			if o.ActionValues(start)[a] != 0 {
				action = a
			}
		}
		seen[action] = true

		switch action {
		case gridworld.Right, gridworld.Down:
			assert.Equal(t, -1.0, state.Return)
			assert.Equal(t, -0.5, o.ActionValues(start)[action])
			assert.Equal(t, start.Move(action), o.AgentPosition())

		case gridworld.Up, gridworld.Left:
			assert.Equal(t, -100.0, state.Return)
			assert.Equal(t, -50.0, o.ActionValues(start)[action])
			assert.Equal(t, start, o.AgentPosition())
		}
	}

	assert.Len(t, seen, gridworld.NumActions,
		"untrained ties are broken at random")
}

func TestGoalResetsEpisode(t *testing.T) {
	o := newOnline(t, 4, qlearning.Config{Alpha: 0.5, Gamma: 0.9,
		Epsilon: 0.5}, 7)

	// The goal of a 4 x 4 grid neighbours every open cell but the start
	var step ts.TimeStep
	for i := 0; i < 1000; i++ {
		before := o.RunState()
		step = o.Step()
		if step.EndType() == ts.TerminalStateReached {
			after := o.RunState()
			assert.Equal(t, before.Episode+1, after.Episode)
			assert.Equal(t, 0, after.Moves)
			assert.Equal(t, 0.0, after.Return)
			assert.Equal(t, o.Grid().Start(), o.AgentPosition())
			assert.InDelta(t, math.Max(EpsilonFloor,
				before.Epsilon*EpsilonDecay), after.Epsilon, 1e-12)
			assert.Equal(t, gridworld.GoalReward, step.Reward)
			assert.Equal(t, before.Moves+1, step.Number)
			assert.Equal(t, o.Grid().Goal(),
				gridworld.PositionOf(step.Observation))
			return
		}
	}
	t.Fatal("goal never reached")
}

func TestTimeout(t *testing.T) {
	const size = 5
	o := newOnline(t, size, qlearning.Config{Alpha: 0.5, Gamma: 0.9,
		Epsilon: 0.3}, 11)
	require.True(t, o.SetCell(gridworld.Position{X: 2, Y: 1},
		gridworld.Wall))
	require.True(t, o.SetCell(gridworld.Position{X: 1, Y: 2},
		gridworld.Wall))

	limit := 2 * size * size
	assert.Equal(t, limit, o.EpisodeLimit())

	for i := 1; i <= limit; i++ {
		step := o.Step()
		require.False(t, step.Last(), "move %d", i)
		assert.Equal(t, i, o.RunState().Moves)
	}

	step := o.Step()
	assert.Equal(t, ts.Timeout, step.EndType())
	assert.Equal(t, limit+1, step.Number)

	state := o.RunState()
	assert.Equal(t, 1, state.Episode)
	assert.Equal(t, 0, state.Moves)
	assert.Equal(t, 0.0, state.Return)
	assert.Equal(t, 0.3, state.Epsilon, "timeouts do not decay epsilon")
	assert.Equal(t, o.Grid().Start(), o.AgentPosition())
}

func TestEpsilonFloor(t *testing.T) {
	s := RunState{Epsilon: 0.0100001}
	s.decayEpsilon()
	assert.Equal(t, EpsilonFloor, s.Epsilon)

	s = RunState{Epsilon: 0.005}
	s.decayEpsilon()
	assert.Equal(t, 0.005, s.Epsilon)

	s = RunState{Epsilon: 0}
	s.decayEpsilon()
	assert.Equal(t, 0.0, s.Epsilon)
}

func TestConvergence(t *testing.T) {
	o := newOnline(t, 5, qlearning.Config{Alpha: 0.5, Gamma: 0.9,
		Epsilon: 0.5}, 2024)
	returns := trackers.NewReturn("")
	o.Register(returns)
	o.Run(30000)

	// Following the greedy policy from the start reaches the goal along
	// a shortest path, and each cell on it is worth the discounted goal
	// reward less the discounted step costs
	g := o.Grid()
	want := []float64{70.19, 79.1, 89, 100}
	p := g.Start()
	for i, w := range want {
		assert.InDelta(t, w, o.MaxValue(p), 0.05, "cell %v", p)

		out := gridworld.Transition(g, p, o.BestAction(p))
		require.False(t, out.Blocked)
		assert.Equal(t, i == len(want)-1, out.Terminal)
		p = out.Next
	}
	assert.Equal(t, g.Goal(), p)
	assert.InDelta(t, 70.19, o.MaxValue(g.Start()), 1e-3)

	assert.Greater(t, o.RunState().Episode, 1000)
	assert.Less(t, o.RunState().Epsilon, 0.5)
	assert.NotEmpty(t, returns.Data())
}

func TestSetCellResetsRunState(t *testing.T) {
	o := newOnline(t, 6, qlearning.Config{Alpha: 0.5, Gamma: 0.9,
		Epsilon: 0.2}, 3)
	o.Run(5)
	values := o.StateValues()

	assert.False(t, o.SetCell(o.Grid().Start(), gridworld.Wall))
	assert.Equal(t, 5, o.RunState().Moves, "ignored edits keep state")

	require.True(t, o.SetCell(gridworld.Position{X: 3, Y: 3},
		gridworld.Wall))
	assert.Equal(t, RunState{Epsilon: 0.2}, o.RunState())
	assert.Equal(t, o.Grid().Start(), o.AgentPosition())
	assert.Equal(t, values, o.StateValues(), "learned values are kept")
}

func TestResetLearning(t *testing.T) {
	o := newOnline(t, 6, qlearning.Config{Alpha: 0.5, Gamma: 0.9,
		Epsilon: 0.2}, 5)
	require.True(t, o.SetCell(gridworld.Position{X: 2, Y: 2},
		gridworld.Wall))
	o.Run(50)

	start := gridworld.Position{X: 4, Y: 1}
	goal := gridworld.Position{X: 1, Y: 4}
	require.NoError(t, o.ResetLearning(start, goal))

	g := o.Grid()
	assert.Equal(t, start, g.Start())
	assert.Equal(t, goal, g.Goal())
	assert.Equal(t, gridworld.Wall, g.Classify(gridworld.Position{X: 2,
		Y: 2}))
	assert.Equal(t, start, o.AgentPosition())
	assert.Equal(t, RunState{Epsilon: 0.2}, o.RunState())
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			assert.Equal(t, 0.0, o.MaxValue(gridworld.Position{X: x, Y: y}))
		}
	}

	assert.Error(t, o.ResetLearning(start, start))
}

func TestResetGrid(t *testing.T) {
	o := newOnline(t, 5, qlearning.DefaultConfig(), 9)
	o.Run(20)

	require.NoError(t, o.ResetGrid(8))
	assert.Equal(t, 8, o.Grid().Size())
	assert.Equal(t, 128, o.EpisodeLimit())
	assert.Equal(t, gridworld.Position{X: 1, Y: 1}, o.AgentPosition())
	assert.Equal(t, 0, o.RunState().Moves)

	assert.ErrorIs(t, o.ResetGrid(2), gridworld.ErrBadSize)
	assert.Equal(t, 8, o.Grid().Size())
}

func TestSetInit(t *testing.T) {
	o := newOnline(t, 5, qlearning.DefaultConfig(), 4)
	o.SetInit(initwfn.NewHeuristic(0))

	start := o.Grid().Start()
	assert.InDelta(t, -2*math.Sqrt(5), o.MaxValue(start), 1e-9)

	for i := 0; i < 20; i++ {
		assert.Contains(t, []gridworld.Action{gridworld.Right,
			gridworld.Down}, o.BestAction(start))
	}
}

func TestSetHyperparameters(t *testing.T) {
	o := newOnline(t, 5, qlearning.Config{Alpha: 0.5, Gamma: 0.9,
		Epsilon: 0.4}, 8)
	o.Run(3)

	hp := qlearning.Config{Alpha: 1, Gamma: 0, Epsilon: 0}
	o.SetHyperparameters(hp)
	assert.Equal(t, hp, o.Hyperparameters())
	assert.Equal(t, 0.0, o.RunState().Epsilon)
	assert.Equal(t, 3, o.RunState().Moves, "moves are kept")

	// With alpha 1 and gamma 0 a value equals the last reward seen
	from := o.AgentPosition()
	step := o.Step()
	values := o.ActionValues(from)
	assert.Contains(t, values, step.Reward)
}

func TestReproducible(t *testing.T) {
	hp := qlearning.Config{Alpha: 0.3, Gamma: 0.95, Epsilon: 0.3}
	a := newOnline(t, 6, hp, 99)
	b := newOnline(t, 6, hp, 99)

	for i := 0; i < 500; i++ {
		sa, sb := a.Step(), b.Step()
		require.Equal(t, sa.Reward, sb.Reward)
		require.Equal(t, a.AgentPosition(), b.AgentPosition())
	}
	assert.Equal(t, a.StateValues(), b.StateValues())
}

func TestRunEpisode(t *testing.T) {
	o := newOnline(t, 5, qlearning.DefaultConfig(), 12)
	lengths := trackers.NewEpisodeLength("")
	o.Register(lengths)

	for i := 0; i < 5; i++ {
		o.RunEpisode()
	}
	assert.Equal(t, 5, o.RunState().Episode)
	assert.Len(t, lengths.Data(), 5)
}

func BenchmarkOnlineStep(b *testing.B) {
	o := newOnline(b, 10, qlearning.DefaultConfig(), 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		o.Step()
	}
}
