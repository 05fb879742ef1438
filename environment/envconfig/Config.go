// Package envconfig provides configuration structs for configuring
// gridworld environments. Environment configurations in this package
// are JSON serializable.
package envconfig

import (
	"fmt"

	"github.com/samuelfneumann/qgrid/environment/gridworld"
)

// DefaultSize is the side length of grids configured without a size or
// layout
const DefaultSize = 5

// Config implements a specific configuration of a gridworld. A grid is
// built either from Layout, rows of layout characters, or from Size
// with a plain wall border. Start, Goal and Walls are then applied on
// top of it.
type Config struct {
	Size   int                  `json:",omitempty"`
	Layout []string             `json:",omitempty"`
	Start  *gridworld.Position  `json:",omitempty"`
	Goal   *gridworld.Position  `json:",omitempty"`
	Walls  []gridworld.Position `json:",omitempty"`
}

// NewConfig returns a new environment Config for a plain size x size
// grid
func NewConfig(size int) Config {
	return Config{Size: size}
}

// Create returns the grid described by the Config
func (c Config) Create() (*gridworld.Grid, error) {
	var g *gridworld.Grid
	var err error

	switch {
	case len(c.Layout) > 0:
		if c.Size != 0 && c.Size != len(c.Layout) {
			return nil, fmt.Errorf("create: size %d does not match layout "+
				"with %d rows", c.Size, len(c.Layout))
		}
		g, err = gridworld.NewFromLayout(c.Layout)

	case c.Size == 0:
		g, err = gridworld.New(DefaultSize)

	default:
		g, err = gridworld.New(c.Size)
	}
	if err != nil {
		return nil, fmt.Errorf("create: %w", err)
	}

	if c.Start != nil || c.Goal != nil {
		start, goal := g.Start(), g.Goal()
		if c.Start != nil {
			start = *c.Start
		}
		if c.Goal != nil {
			goal = *c.Goal
		}
		if err := g.Move(start, goal); err != nil {
			return nil, fmt.Errorf("create: %w", err)
		}
	}

	for _, w := range c.Walls {
		if w == g.Start() || w == g.Goal() || !g.Interior(w) {
			return nil, fmt.Errorf("create: cannot place wall at %v", w)
		}
		g.SetCell(w, gridworld.Wall)
	}

	return g, nil
}
