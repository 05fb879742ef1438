// Package gridworld implements square 2D gridworld environments with a
// start cell, a goal cell and walls
package gridworld

import (
	"errors"
	"fmt"
	"strings"
)

// MinSize is the smallest grid with room for a distinct start and goal
// inside its wall border
const MinSize = 4

var (
	// ErrBadSize is returned when a grid would be smaller than MinSize
	ErrBadSize = errors.New("grid size too small")

	// ErrBadLayout is returned when a character layout cannot describe a
	// valid grid
	ErrBadLayout = errors.New("invalid grid layout")

	// ErrBadPosition is returned when a start or goal position is not an
	// interior cell, or when start and goal coincide
	ErrBadPosition = errors.New("invalid start or goal position")
)

// Grid is an N x N gridworld. The grid is stored flattened in row-major
// order, so cell (x, y) lives at index y*size + x. The border is always
// Wall, and exactly one Start and one Goal exist in the interior.
//
// A Grid knows nothing about any agent moving through it.
type Grid struct {
	size        int
	cells       []Cell
	start, goal Position
}

// New creates a size x size grid with a wall border, the start at
// (1, 1) and the goal at (size-2, size-2)
func New(size int) (*Grid, error) {
	if size < MinSize {
		return nil, fmt.Errorf("new: %w: have %d, want at least %d",
			ErrBadSize, size, MinSize)
	}

	g := &Grid{size: size, cells: make([]Cell, size*size)}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !g.Interior(Position{x, y}) {
				g.cells[g.cToInd(x, y)] = Wall
			}
		}
	}

	g.start = Position{1, 1}
	g.goal = Position{size - 2, size - 2}
	g.cells[g.index(g.start)] = Start
	g.cells[g.index(g.goal)] = Goal

	return g, nil
}

// NewFromLayout creates a grid from rows of layout characters: '#' for
// a wall, '.' for an empty cell, 'S' for the start and 'G' for the goal.
// The layout must be square, bordered by walls, and contain exactly one
// start and one goal.
func NewFromLayout(rows []string) (*Grid, error) {
	size := len(rows)
	if size < MinSize {
		return nil, fmt.Errorf("newFromLayout: %w: have %d rows, want at "+
			"least %d", ErrBadSize, size, MinSize)
	}

	g := &Grid{size: size, cells: make([]Cell, size*size)}
	var starts, goals int

	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != size {
			return nil, fmt.Errorf("newFromLayout: %w: row %d has %d "+
				"cells, want %d", ErrBadLayout, y, len(runes), size)
		}

		for x, r := range runes {
			cell, err := ParseCell(r)
			if err != nil {
				return nil, fmt.Errorf("newFromLayout: %w: %v", ErrBadLayout,
					err)
			}

			p := Position{x, y}
			if !g.Interior(p) && cell != Wall {
				return nil, fmt.Errorf("newFromLayout: %w: border cell %v "+
					"is %v", ErrBadLayout, p, cell)
			}

			switch cell {
			case Start:
				starts++
				g.start = p
			case Goal:
				goals++
				g.goal = p
			}
			g.cells[g.index(p)] = cell
		}
	}

	if starts != 1 || goals != 1 {
		return nil, fmt.Errorf("newFromLayout: %w: have %d starts and %d "+
			"goals, want exactly one of each", ErrBadLayout, starts, goals)
	}

	return g, nil
}

// Size returns the number of rows (and columns) of the grid
func (g *Grid) Size() int {
	return g.size
}

// Start returns the start position
func (g *Grid) Start() Position {
	return g.start
}

// Goal returns the goal position
func (g *Grid) Goal() Position {
	return g.goal
}

// InBounds returns whether p lies on the grid
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.size && p.Y >= 0 && p.Y < g.size
}

// Interior returns whether p lies on the grid but not on its border
func (g *Grid) Interior(p Position) bool {
	return p.X > 0 && p.X < g.size-1 && p.Y > 0 && p.Y < g.size-1
}

// Classify returns the Cell at position p. Classify panics if p is
// not on the grid.
func (g *Grid) Classify(p Position) Cell {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("classify: position %v out of bounds for grid "+
			"of size %d", p, g.size))
	}
	return g.cells[g.index(p)]
}

// IsTraversable returns whether an agent may occupy p, which is true
// for any on-grid cell that is not a Wall
func (g *Grid) IsTraversable(p Position) bool {
	return g.InBounds(p) && g.cells[g.index(p)] != Wall
}

// SetCell sets the cell at p to c, which must be either Empty or Wall.
// Only interior cells that are neither the start nor the goal can be
// edited; any other edit is ignored. SetCell returns whether the
// classification at p changed.
func (g *Grid) SetCell(p Position, c Cell) bool {
	if c != Empty && c != Wall {
		return false
	}
	if !g.Interior(p) || p == g.start || p == g.goal {
		return false
	}

	ind := g.index(p)
	if g.cells[ind] == c {
		return false
	}
	g.cells[ind] = c
	return true
}

// Move relocates the start and goal cells. Both must be distinct
// interior cells. The previous start and goal become Empty, and any
// wall at the new positions is cleared.
func (g *Grid) Move(start, goal Position) error {
	if !g.Interior(start) || !g.Interior(goal) {
		return fmt.Errorf("move: %w: start %v and goal %v must be "+
			"interior cells", ErrBadPosition, start, goal)
	}
	if start == goal {
		return fmt.Errorf("move: %w: start and goal both at %v",
			ErrBadPosition, start)
	}

	g.cells[g.index(g.start)] = Empty
	g.cells[g.index(g.goal)] = Empty

	g.start, g.goal = start, goal
	g.cells[g.index(start)] = Start
	g.cells[g.index(goal)] = Goal

	return nil
}

// Walls returns the positions of every wall, including the border, in
// row-major order
func (g *Grid) Walls() []Position {
	var walls []Position
	for i, c := range g.cells {
		if c == Wall {
			walls = append(walls, g.indToP(i))
		}
	}
	return walls
}

// Index returns the row-major index of p. Index panics if p is not on
// the grid.
func (g *Grid) Index(p Position) int {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("index: position %v out of bounds for grid "+
			"of size %d", p, g.size))
	}
	return g.index(p)
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{size: g.size, cells: cells, start: g.start, goal: g.goal}
}

// Layout returns the grid as rows of layout characters, the inverse of
// NewFromLayout
func (g *Grid) Layout() []string {
	rows := make([]string, g.size)
	for y := 0; y < g.size; y++ {
		var b strings.Builder
		for x := 0; x < g.size; x++ {
			b.WriteRune(g.cells[g.cToInd(x, y)].Rune())
		}
		rows[y] = b.String()
	}
	return rows
}

func (g *Grid) String() string {
	return strings.Join(g.Layout(), "\n")
}

func (g *Grid) index(p Position) int {
	return g.cToInd(p.X, p.Y)
}

func (g *Grid) cToInd(x, y int) int {
	return cToInd(x, y, g.size)
}

func (g *Grid) indToP(i int) Position {
	y := i / g.size
	return Position{X: i - y*g.size, Y: y}
}

func cToInd(x, y, c int) int {
	return y*c + x
}
