package gridworld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	g, err := New(5)
	require.NoError(t, err)
	require.True(t, g.SetCell(Position{2, 2}, Wall))

	tests := []struct {
		name string
		from Position
		a    Action
		want Outcome
	}{
		{"step", Position{1, 1}, Right, Outcome{Next: Position{2, 1},
			Reward: StepReward}},
		{"border", Position{1, 1}, Up, Outcome{Next: Position{1, 1},
			Reward: WallReward, Blocked: true}},
		{"wall", Position{2, 1}, Down, Outcome{Next: Position{2, 1},
			Reward: WallReward, Blocked: true}},
		{"onto start", Position{2, 1}, Left, Outcome{Next: Position{1, 1},
			Reward: StepReward}},
		{"goal", Position{3, 2}, Down, Outcome{Next: Position{3, 3},
			Reward: GoalReward, Terminal: true}},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, Transition(g, test.from, test.a),
			test.name)
	}
}

func TestTransitionOffGrid(t *testing.T) {
	// Off-grid moves stay put and are scored by the current cell
	g, err := New(4)
	require.NoError(t, err)

	for _, a := range []Action{Up, Left} {
		out := Transition(g, Position{0, 0}, a)
		assert.Equal(t, Position{0, 0}, out.Next)
		assert.Equal(t, WallReward, out.Reward)
	}

	out := Transition(g, Position{1, 0}, Up)
	assert.Equal(t, Position{1, 0}, out.Next)
}

func TestTransitionDoesNotModify(t *testing.T) {
	g, err := New(5)
	require.NoError(t, err)
	before := g.Layout()

	for _, p := range []Position{{1, 1}, {2, 1}, {3, 2}} {
		for _, a := range Actions {
			Transition(g, p, a)
		}
	}
	assert.Equal(t, before, g.Layout())
}

func TestRewardBounds(t *testing.T) {
	assert.Equal(t, WallReward, MinReward())
	assert.Equal(t, GoalReward, MaxReward())
}
