package visualize

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/samuelfneumann/qgrid/environment/gridworld"
)

// Terminal prints a gridworld as text, one character per cell. Open
// cells show the arrow of their greedy action and the agent is drawn
// as '@'.
type Terminal struct {
	out io.Writer
	au  aurora.Aurora
}

// NewTerminal returns a Terminal printing to out, with ANSI colours if
// colors is true
func NewTerminal(out io.Writer, colors bool) *Terminal {
	return &Terminal{out: out, au: aurora.NewAurora(colors)}
}

// Render prints the current grid, agent and greedy policy of e
func (t *Terminal) Render(e Engine) error {
	g := e.Grid()
	agent := e.AgentPosition()
	actions := policy(e, g)

	var b strings.Builder
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			p := gridworld.Position{X: x, Y: y}
			b.WriteString(t.cell(g, p, agent, actions))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	if _, err := io.WriteString(t.out, b.String()); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func (t *Terminal) cell(g *gridworld.Grid, p, agent gridworld.Position,
	actions map[gridworld.Position]gridworld.Action) string {
	if p == agent {
		return t.au.Red("@").String()
	}

	switch c := g.Classify(p); c {
	case gridworld.Wall:
		return t.au.White(string(c.Rune())).String()
	case gridworld.Start:
		return t.au.Green(string(c.Rune())).String()
	case gridworld.Goal:
		return t.au.Yellow(string(c.Rune())).String()
	}
	return t.au.Blue(actions[p].Arrow()).String()
}
