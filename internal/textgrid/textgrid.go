// Package textgrid renders a grid snapshot as colored ASCII for the CLI.
package textgrid

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/pdrpinto/gridnav"
	"github.com/pdrpinto/gridnav/grid"
)

var (
	wallColor     = color.New(color.FgRed)
	startColor    = color.New(color.FgGreen)
	goalColor     = color.New(color.FgYellow)
	agentColor    = color.New(color.FgCyan, color.Bold)
	obstacleColor = color.New(color.FgMagenta)
)

// Render writes the grid at the given tick. agent, when non-nil, is drawn
// over whatever cell it occupies.
func Render(w io.Writer, g *grid.Grid, agent *gridnav.Position, tick int) {
	fmt.Fprintf(w, "tick %d (%dx%d)\n", tick, g.Width(), g.Height())
	moving := g.MovingObstaclePositions(tick)

	for y := g.Height() - 1; y >= 0; y-- {
		for x := 0; x < g.Width(); x++ {
			pos := gridnav.Position{X: x, Y: y}
			switch {
			case agent != nil && *agent == pos:
				agentColor.Fprint(w, "A ")
			case moving[pos]:
				obstacleColor.Fprint(w, "M ")
			case g.At(pos) == grid.Obstacle:
				wallColor.Fprint(w, "# ")
			case g.At(pos) == grid.Start:
				startColor.Fprint(w, "S ")
			case g.At(pos) == grid.Goal:
				goalColor.Fprint(w, "G ")
			case g.CostAt(pos) > 1:
				fmt.Fprintf(w, "%.0f ", g.CostAt(pos))
			default:
				fmt.Fprint(w, ". ")
			}
		}
		fmt.Fprintln(w)
	}
}
