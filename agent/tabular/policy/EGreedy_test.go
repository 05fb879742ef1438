package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/qgrid/environment/gridworld"
)

const draws = 20000

func frequencies(n int, choose func() gridworld.Action) []float64 {
	counts := make([]float64, gridworld.NumActions)
	for i := 0; i < n; i++ {
		counts[choose()]++
	}
	for i := range counts {
		counts[i] /= float64(n)
	}
	return counts
}

func TestEGreedyGreedyWhenEpsilonZero(t *testing.T) {
	p := NewEGreedy(rand.NewSource(1))
	row := []float64{-1, 3, 2, 0}
	for i := 0; i < 100; i++ {
		assert.Equal(t, gridworld.Right, p.SelectAction(row, 0))
	}
}

func TestEGreedyUniformWhenEpsilonOne(t *testing.T) {
	p := NewEGreedy(rand.NewSource(2))
	row := []float64{-1, 3, 2, 0}
	freq := frequencies(draws, func() gridworld.Action {
		return p.SelectAction(row, 1)
	})
	for a, f := range freq {
		assert.InDelta(t, 0.25, f, 0.02, "action %d", a)
	}
}

func TestEGreedyExploration(t *testing.T) {
	p := NewEGreedy(rand.NewSource(3))
	row := []float64{0, 0, 5, 0}
	freq := frequencies(draws, func() gridworld.Action {
		return p.SelectAction(row, 0.2)
	})

	assert.InDelta(t, 0.85, freq[gridworld.Down], 0.02)
	for _, a := range []gridworld.Action{gridworld.Up, gridworld.Right,
		gridworld.Left} {
		assert.InDelta(t, 0.05, freq[a], 0.02, "action %v", a)
	}
}

func TestEGreedyTieBreak(t *testing.T) {
	p := NewEGreedy(rand.NewSource(4))
	row := []float64{1, 1, -2, 1}
	freq := frequencies(draws, func() gridworld.Action {
		return p.SelectAction(row, 0)
	})

	assert.Zero(t, freq[gridworld.Down])
	for _, a := range []gridworld.Action{gridworld.Up, gridworld.Right,
		gridworld.Left} {
		assert.InDelta(t, 1.0/3, freq[a], 0.02, "action %v", a)
	}

	best := frequencies(draws, func() gridworld.Action {
		return p.BestAction(row)
	})
	assert.Zero(t, best[gridworld.Down])
	assert.InDelta(t, 1.0/3, best[gridworld.Up], 0.02)
}

func TestEGreedyClipsEpsilon(t *testing.T) {
	p := NewEGreedy(rand.NewSource(5))
	row := []float64{0, 1, 0, 0}
	assert.NotPanics(t, func() {
		p.SelectAction(row, 1.5)
		p.SelectAction(row, -0.5)
	})
	assert.Equal(t, gridworld.Right, p.SelectAction(row, -0.5))
}

func TestEGreedyReproducible(t *testing.T) {
	row := []float64{0, 0, 0, 0}
	a := NewEGreedy(rand.NewSource(42))
	b := NewEGreedy(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.SelectAction(row, 0.3), b.SelectAction(row, 0.3))
	}
}

func TestGreedy(t *testing.T) {
	g := NewGreedy(rand.NewSource(6))
	for i := 0; i < 50; i++ {
		assert.Equal(t, gridworld.Left, g.SelectAction([]float64{0, 0, 0, 1}))
	}
}
