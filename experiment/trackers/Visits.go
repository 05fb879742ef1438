package trackers

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/qgrid/experiment/tracker"
	"github.com/samuelfneumann/qgrid/timestep"
)

// Visits counts how often each cell of a size x size grid is observed.
// Counts are stored in row-major order, so the count of cell (x, y) is
// element y*size + x.
type Visits struct {
	size     int
	counts   []float64
	filename string
}

// NewVisits returns a new Visits tracker for a size x size grid which
// will save its data at filename
func NewVisits(size int, filename string) *Visits {
	return &Visits{size: size, counts: make([]float64, size*size),
		filename: filename}
}

// Track counts the cell observed by t
func (v *Visits) Track(t timestep.TimeStep) {
	x, y := t.Coordinates()
	if x < 0 || x >= v.size || y < 0 || y >= v.size {
		return
	}
	v.counts[y*v.size+x]++
}

// Data returns the visit counts in row-major order
func (v *Visits) Data() []float64 {
	data := make([]float64, len(v.counts))
	copy(data, v.counts)
	return data
}

// Matrix returns the visit counts as a size x size matrix whose (y, x)
// element counts visits to cell (x, y)
func (v *Visits) Matrix() *mat.Dense {
	return mat.NewDense(v.size, v.size, v.Data())
}

// Save saves the visit counts to disk
func (v *Visits) Save() error {
	return tracker.SaveData(v.filename, v.counts)
}
