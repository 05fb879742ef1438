package gridworld

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionDisplacement(t *testing.T) {
	p := Position{2, 2}
	assert.Equal(t, Position{2, 1}, p.Move(Up))
	assert.Equal(t, Position{3, 2}, p.Move(Right))
	assert.Equal(t, Position{2, 3}, p.Move(Down))
	assert.Equal(t, Position{1, 2}, p.Move(Left))

	for i, a := range Actions {
		assert.Equal(t, i, int(a), "action ordinals index value rows")
	}
	assert.Panics(t, func() { Action(NumActions).Displacement() })
}

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Position{0, 0}.Distance(Position{3, 4}), 1e-12)
	assert.InDelta(t, math.Sqrt2, Position{1, 1}.Distance(Position{2, 2}),
		1e-12)
}

func TestPositionVec(t *testing.T) {
	p := Position{3, 1}
	assert.Equal(t, p, PositionOf(p.Vec()))
}
