package trackers

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/qgrid/experiment/tracker"
	ts "github.com/samuelfneumann/qgrid/timestep"
)

func obs(x, y int) *mat.VecDense {
	return mat.NewVecDense(2, []float64{float64(x), float64(y)})
}

// episode returns the timesteps of an episode with the given rewards,
// ending with end
func episode(end ts.EndType, rewards ...float64) []ts.TimeStep {
	steps := []ts.TimeStep{ts.New(ts.First, 0, 0.9, obs(1, 1), 0)}
	for i, r := range rewards {
		step := ts.New(ts.Mid, r, 0.9, obs(1, 2), i+1)
		if i == len(rewards)-1 && end != ts.NotEnded {
			step.SetEnd(end)
		}
		steps = append(steps, step)
	}
	return steps
}

func TestReturn(t *testing.T) {
	r := NewReturn("")
	var steps []ts.TimeStep
	steps = append(steps, episode(ts.TerminalStateReached, -1, -1, 100)...)
	steps = append(steps, episode(ts.NotEnded, -1, -100)...)
	steps = append(steps, episode(ts.Timeout, -1, -1)...)

	for _, s := range steps {
		r.Track(s)
	}
	assert.Equal(t, []float64{98, -2}, r.Data())
}

func TestReturnNonSequentialPanics(t *testing.T) {
	r := NewReturn("")
	r.Track(ts.New(ts.First, 0, 0.9, obs(1, 1), 0))
	assert.Panics(t, func() {
		r.Track(ts.New(ts.Mid, -1, 0.9, obs(1, 1), 3))
	})
}

func TestReturnIgnoresStepsBeforeFirst(t *testing.T) {
	r := NewReturn("")
	r.Track(ts.New(ts.Mid, -1, 0.9, obs(1, 1), 4))
	for _, s := range episode(ts.TerminalStateReached, 100) {
		r.Track(s)
	}
	assert.Equal(t, []float64{100}, r.Data())
}

func TestEpisodeLength(t *testing.T) {
	e := NewEpisodeLength("")
	for _, s := range episode(ts.TerminalStateReached, -1, -1, 100) {
		e.Track(s)
	}
	for _, s := range episode(ts.Timeout, -1, -1, -1, -1) {
		e.Track(s)
	}

	assert.Equal(t, []float64{3, 4}, e.Data())
	assert.Equal(t, 1, e.Timeouts())
}

func TestVisits(t *testing.T) {
	v := NewVisits(4, "")
	v.Track(ts.New(ts.First, 0, 0.9, obs(1, 1), 0))
	v.Track(ts.New(ts.Mid, -1, 0.9, obs(2, 1), 1))
	v.Track(ts.New(ts.Mid, -1, 0.9, obs(2, 1), 2))

	m := v.Matrix()
	assert.Equal(t, 1.0, m.At(1, 1))
	assert.Equal(t, 2.0, m.At(1, 2))
	assert.Equal(t, 3.0, mat.Sum(m))
}

func TestSaveLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "returns.bin")
	r := NewReturn(filename)
	for _, s := range episode(ts.TerminalStateReached, -1, 100) {
		r.Track(s)
	}
	require.NoError(t, r.Save())

	data, err := tracker.LoadData(filename)
	require.NoError(t, err)
	assert.Equal(t, []float64{99}, data)

	_, err = tracker.LoadData(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{1, 2, 3, 10, 20}, 2)
	assert.Equal(t, 2, s.Episodes)
	assert.Equal(t, 15.0, s.Mean)
	assert.Equal(t, 10.0, s.Min)
	assert.Equal(t, 20.0, s.Max)

	assert.Equal(t, Summary{}, Summarize(nil, 10))
	assert.Equal(t, 0.0, Summarize([]float64{4}, 0).StdDev)
}
