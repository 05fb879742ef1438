// Package matutils implements utility function for working with mat.Matrix
// structs
package matutils

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Format formats a matrix for printing
func Format(X mat.Matrix) string {
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	return fmt.Sprintf("%v", fa)
}

// RowMax returns a vector holding the maximum of each row of a matrix
func RowMax(matrix *mat.Dense) *mat.VecDense {
	r, _ := matrix.Dims()
	rowMax := make([]float64, r)

	for i := 0; i < r; i++ {
		rowMax[i] = floats.Max(matrix.RawRowView(i))
	}
	return mat.NewVecDense(r, rowMax)
}

// Reshape returns a rows x cols matrix holding a copy of the elements
// of v in row-major order
func Reshape(v mat.Vector, rows, cols int) *mat.Dense {
	if v.Len() != rows*cols {
		panic(fmt.Sprintf("reshape: cannot reshape vector of length %d "+
			"to (%d, %d)", v.Len(), rows, cols))
	}

	data := make([]float64, v.Len())
	for i := range data {
		data[i] = v.AtVec(i)
	}
	return mat.NewDense(rows, cols, data)
}
