// Package floatutils provides utilities for working with floats
package floatutils

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// Clip clips a floating point to within a minimum and maximum value.
// If the floating point exceeds max, then the function returns the max
// If min exceeds the floating point, then the function returns the min
func Clip(value, min, max float64) float64 {
	clipped := math.Min(value, max)
	return math.Max(clipped, min)
}

// MaxSlice gets the maximum value and indices of all occurrences of the
// maximum value in a slice of float64
func MaxSlice(values []float64) (max float64, indices []int) {
	if len(values) == 0 {
		panic("maxSlice: empty slice")
	}
	max, indices = values[0], []int{0}

	for i := 1; i < len(values); i++ {
		value := values[i]
		if value > max {
			max = value
			indices = []int{i}
		} else if value == max {
			indices = append(indices, i)
		}
	}
	return
}

// ArgMax returns the index of the maximum value in values. If several
// values tie for the maximum, one of their indices is chosen uniformly
// at random using rng.
func ArgMax(values []float64, rng *rand.Rand) int {
	_, indices := MaxSlice(values)
	if len(indices) == 1 {
		return indices[0]
	}
	if rng == nil {
		panic(fmt.Sprintf("argMax: %d tied maxima and no random source",
			len(indices)))
	}
	return indices[rng.Intn(len(indices))]
}
