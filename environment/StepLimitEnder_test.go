package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/qgrid/timestep"
)

func TestStepLimit(t *testing.T) {
	var e Ender = NewStepLimit(3)
	obs := mat.NewVecDense(2, []float64{1, 1})

	step := timestep.New(timestep.Mid, -1, 0.9, obs, 2)
	assert.False(t, e.End(&step))
	assert.Equal(t, timestep.Mid, step.StepType)
	assert.Equal(t, timestep.NotEnded, step.EndType())

	step = timestep.New(timestep.Mid, -1, 0.9, obs, 3)
	assert.True(t, e.End(&step))
	assert.True(t, step.Last())
	assert.Equal(t, timestep.Timeout, step.EndType())
}
