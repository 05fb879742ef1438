package visualize

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/samuelfneumann/qgrid/environment/gridworld"
)

// valueGrid adapts a size x size matrix of state values to a
// plotter.GridXYZ. Plot row 0 is the bottom grid row, so the image has
// the same orientation as the grid. Walls are NaN.
type valueGrid struct {
	grid   *gridworld.Grid
	values *mat.Dense
}

var _ plotter.GridXYZ = &valueGrid{}

func (v *valueGrid) Dims() (int, int) {
	return v.grid.Size(), v.grid.Size()
}

func (v *valueGrid) Z(c, r int) float64 {
	p := gridworld.Position{X: c, Y: v.grid.Size() - 1 - r}
	if v.grid.Classify(p) == gridworld.Wall {
		return math.NaN()
	}
	return v.values.At(p.Y, p.X)
}

func (v *valueGrid) X(c int) float64 {
	return float64(c)
}

func (v *valueGrid) Y(r int) float64 {
	return float64(r)
}

func (v *valueGrid) Min() float64 {
	min, _ := v.bounds()
	return min
}

func (v *valueGrid) Max() float64 {
	_, max := v.bounds()
	return max
}

// bounds returns the range of the open cells' values. The range is
// never empty so that a constant table can still be coloured.
func (v *valueGrid) bounds() (float64, float64) {
	min, max := math.Inf(1), math.Inf(-1)
	c, r := v.Dims()
	for i := 0; i < c; i++ {
		for j := 0; j < r; j++ {
			z := v.Z(i, j)
			if math.IsNaN(z) {
				continue
			}
			min = math.Min(min, z)
			max = math.Max(max, z)
		}
	}

	if math.IsInf(min, 1) {
		return 0, 1
	}
	if min == max {
		return min - 0.5, max + 0.5
	}
	return min, max
}

// SaveHeatMap saves a heat map of the state values of the open cells of
// g to filename. The image format is taken from the file extension.
func SaveHeatMap(filename string, g *gridworld.Grid, values *mat.Dense) error {
	r, c := values.Dims()
	if r != g.Size() || c != g.Size() {
		return fmt.Errorf("saveHeatMap: values of shape (%d, %d) do not "+
			"match grid of size %d", r, c, g.Size())
	}

	p := plot.New()
	p.Title.Text = "State values"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y (flipped)"

	hm := plotter.NewHeatMap(&valueGrid{grid: g, values: values},
		palette.Heat(20, 1))
	hm.NaN = color.Black
	p.Add(hm)

	if err := p.Save(8*vg.Inch, 8*vg.Inch, filename); err != nil {
		return fmt.Errorf("saveHeatMap: %w", err)
	}
	return nil
}
