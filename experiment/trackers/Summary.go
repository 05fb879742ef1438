package trackers

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the most recent window of some tracked episodic
// data
type Summary struct {
	Episodes int
	Mean     float64
	StdDev   float64
	Min, Max float64
}

// Summarize summarizes the last window values of data, or all of data
// if window is not positive
func Summarize(data []float64, window int) Summary {
	if window > 0 && window < len(data) {
		data = data[len(data)-window:]
	}
	if len(data) == 0 {
		return Summary{}
	}

	mean, std := stat.MeanStdDev(data, nil)
	if len(data) == 1 {
		std = 0
	}
	return Summary{
		Episodes: len(data),
		Mean:     mean,
		StdDev:   std,
		Min:      floats.Min(data),
		Max:      floats.Max(data),
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("Episodes: %d  |  Mean: %.2f  |  StdDev: %.2f  |  "+
		"Min: %.2f  |  Max: %.2f", s.Episodes, s.Mean, s.StdDev, s.Min,
		s.Max)
}
