package gridworld

import "fmt"

// Cell classifies a single square of a Grid
type Cell int

const (
	Empty Cell = iota
	Wall
	Start
	Goal
)

// Layout characters used by NewFromLayout and Grid.String
const (
	EmptyRune = '.'
	WallRune  = '#'
	StartRune = 'S'
	GoalRune  = 'G'
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	case Start:
		return "Start"
	case Goal:
		return "Goal"
	}
	return fmt.Sprintf("Cell(%d)", int(c))
}

// Rune returns the layout character of the cell
func (c Cell) Rune() rune {
	switch c {
	case Wall:
		return WallRune
	case Start:
		return StartRune
	case Goal:
		return GoalRune
	default:
		return EmptyRune
	}
}

// ParseCell converts a layout character into a Cell
func ParseCell(r rune) (Cell, error) {
	switch r {
	case EmptyRune:
		return Empty, nil
	case WallRune:
		return Wall, nil
	case StartRune:
		return Start, nil
	case GoalRune:
		return Goal, nil
	}
	return Empty, fmt.Errorf("parseCell: unknown layout character %q", r)
}
