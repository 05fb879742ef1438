// Package qtable implements tabular action-value functions over the cells
// of a square gridworld
package qtable

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/qgrid/environment/gridworld"
	"github.com/samuelfneumann/qgrid/utils/floatutils"
	"github.com/samuelfneumann/qgrid/utils/matutils"
)

// QTable stores one value per (cell, action) pair of a size x size grid.
// Row y*size + x holds the values of the cell (x, y), and the column
// index is the gridworld.Action ordinal. Rows of wall cells are kept so
// that every cell has a row.
type QTable struct {
	size   int
	values *mat.Dense
}

// New returns a QTable for a size x size grid with every value 0
func New(size int) *QTable {
	if size < 1 {
		panic(fmt.Sprintf("new: size must be positive, have %d", size))
	}
	return &QTable{
		size:   size,
		values: mat.NewDense(size*size, gridworld.NumActions, nil),
	}
}

// Size returns the side length of the grid the table covers
func (q *QTable) Size() int {
	return q.size
}

// At returns the value of taking action a in cell p
func (q *QTable) At(p gridworld.Position, a gridworld.Action) float64 {
	return q.values.At(q.row(p), q.col(a))
}

// Set sets the value of taking action a in cell p
func (q *QTable) Set(p gridworld.Position, a gridworld.Action, v float64) {
	q.values.Set(q.row(p), q.col(a), v)
}

// Row returns a copy of the action values of cell p, indexed by action
func (q *QTable) Row(p gridworld.Position) []float64 {
	row := make([]float64, gridworld.NumActions)
	copy(row, q.values.RawRowView(q.row(p)))
	return row
}

// MaxValue returns the largest action value of cell p
func (q *QTable) MaxValue(p gridworld.Position) float64 {
	return floats.Max(q.values.RawRowView(q.row(p)))
}

// BestAction returns the action with the largest value in cell p. Ties
// are broken uniformly at random using rng, so that untrained cells do
// not always prefer the first action.
func (q *QTable) BestAction(p gridworld.Position,
	rng *rand.Rand) gridworld.Action {
	return gridworld.Action(floatutils.ArgMax(q.values.RawRowView(q.row(p)),
		rng))
}

// StateValues returns a size x size matrix whose (y, x) element is the
// maximum action value of cell (x, y)
func (q *QTable) StateValues() *mat.Dense {
	return matutils.Reshape(matutils.RowMax(q.values), q.size, q.size)
}

// Values returns a copy of the underlying (size*size) x NumActions
// matrix of action values
func (q *QTable) Values() *mat.Dense {
	return mat.DenseCopyOf(q.values)
}

// Clone returns a deep copy of the table
func (q *QTable) Clone() *QTable {
	return &QTable{size: q.size, values: mat.DenseCopyOf(q.values)}
}

func (q *QTable) String() string {
	return fmt.Sprintf("QTable | Size: %d\n%v", q.size,
		matutils.Format(q.values))
}

func (q *QTable) row(p gridworld.Position) int {
	if p.X < 0 || p.X >= q.size || p.Y < 0 || p.Y >= q.size {
		panic(fmt.Sprintf("qtable: position %v out of bounds for table "+
			"of size %d", p, q.size))
	}
	return p.Y*q.size + p.X
}

func (q *QTable) col(a gridworld.Action) int {
	if !a.Valid() {
		panic(fmt.Sprintf("qtable: no such action %d", int(a)))
	}
	return int(a)
}
