package visualize

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/samuelfneumann/qgrid/environment/gridworld"
)

var (
	wallColour  = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	emptyColour = color.White
	startColour = color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}
	goalColour  = color.RGBA{R: 0xff, G: 0xc1, B: 0x07, A: 0xff}
	arrowColour = color.RGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0xff}
	agentColour = color.RGBA{R: 0xe5, G: 0x39, B: 0x35, A: 0xff}
)

// SaveGrid draws the grid, greedy policy arrows and agent of e to a PNG
// file, with each cell cellSize pixels wide
func SaveGrid(filename string, e Engine, cellSize int) error {
	if cellSize < 4 {
		return fmt.Errorf("saveGrid: cell size %d too small", cellSize)
	}

	g := e.Grid()
	actions := policy(e, g)
	side := float64(cellSize)

	dc := gg.NewContext(g.Size()*cellSize, g.Size()*cellSize)
	dc.SetColor(emptyColour)
	dc.Clear()

	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			p := gridworld.Position{X: x, Y: y}
			left, top := float64(x)*side, float64(y)*side

			switch g.Classify(p) {
			case gridworld.Wall:
				dc.SetColor(wallColour)
			case gridworld.Start:
				dc.SetColor(startColour)
			case gridworld.Goal:
				dc.SetColor(goalColour)
			default:
				dc.SetColor(emptyColour)
			}
			dc.DrawRectangle(left, top, side, side)
			dc.Fill()

			// Cell outline
			dc.SetColor(color.Gray{Y: 0xc0})
			dc.SetLineWidth(1)
			dc.DrawRectangle(left, top, side, side)
			dc.Stroke()

			if a, ok := actions[p]; ok {
				drawArrow(dc, left+side/2, top+side/2, side*0.35, a)
			}
		}
	}

	agent := e.AgentPosition()
	dc.SetColor(agentColour)
	dc.DrawCircle((float64(agent.X)+0.5)*side, (float64(agent.Y)+0.5)*side,
		side*0.2)
	dc.Fill()

	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("saveGrid: %w", err)
	}
	return nil
}

// drawArrow draws an arrow of half-length l centred on (cx, cy) pointing
// in the direction of a
func drawArrow(dc *gg.Context, cx, cy, l float64, a gridworld.Action) {
	d := a.Displacement()
	dx, dy := float64(d.X), float64(d.Y)

	tipX, tipY := cx+dx*l, cy+dy*l
	dc.SetColor(arrowColour)
	dc.SetLineWidth(2)
	dc.DrawLine(cx-dx*l, cy-dy*l, tipX, tipY)
	dc.Stroke()

	// Head, drawn as two strokes back from the tip
	head := l * 0.5
	dc.DrawLine(tipX, tipY, tipX-dx*head-dy*head, tipY-dy*head+dx*head)
	dc.DrawLine(tipX, tipY, tipX-dx*head+dy*head, tipY-dy*head-dx*head)
	dc.Stroke()
}
