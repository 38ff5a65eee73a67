// Package grid implements the standard gridnav environment: a bounded 2-D
// grid with static obstacles, weighted terrain, periodic moving obstacles,
// and the shared discrete clock the executor advances.
package grid

import (
	"math"

	"github.com/pdrpinto/gridnav"
)

// CellType classifies a grid cell.
type CellType uint8

const (
	Empty CellType = iota
	Obstacle
	Start
	Goal
)

// MovingObstacle occupies a cyclic sequence of positions, one per tick.
type MovingObstacle struct {
	ID        int
	Positions []gridnav.Position
}

// At returns the obstacle's position at the given tick. ok is false when the
// obstacle has no positions at all.
func (m MovingObstacle) At(tick int) (gridnav.Position, bool) {
	if len(m.Positions) == 0 {
		return gridnav.Position{}, false
	}
	idx := tick % len(m.Positions)
	if idx < 0 {
		idx += len(m.Positions)
	}
	return m.Positions[idx], true
}

// Grid is a row-major cell grid. It implements gridnav.TickingEnvironment.
type Grid struct {
	width, height int
	cells         []CellType
	costs         []float64

	start, goal gridnav.Position
	obstacles   []MovingObstacle
	now         int
}

// neighbor probes in fixed up, right, down, left order so that searches are
// deterministic.
var directions = [4]gridnav.Position{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}}

// New creates an empty width x height grid with unit terrain everywhere.
func New(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]CellType, width*height),
		costs:  make([]float64, width*height),
	}
	for i := range g.costs {
		g.costs[i] = 1
	}
	return g
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// Start returns the designated start cell.
func (g *Grid) Start() gridnav.Position { return g.start }

// Goal returns the designated goal cell.
func (g *Grid) Goal() gridnav.Position { return g.goal }

// Obstacles returns the registered moving obstacles.
func (g *Grid) Obstacles() []MovingObstacle { return g.obstacles }

// InBounds reports whether pos lies on the grid.
func (g *Grid) InBounds(pos gridnav.Position) bool {
	return pos.X >= 0 && pos.X < g.width && pos.Y >= 0 && pos.Y < g.height
}

func (g *Grid) index(pos gridnav.Position) int { return pos.Y*g.width + pos.X }

// At returns the cell type at pos; out-of-bounds reads as Obstacle.
func (g *Grid) At(pos gridnav.Position) CellType {
	if !g.InBounds(pos) {
		return Obstacle
	}
	return g.cells[g.index(pos)]
}

// CostAt is a bounds-checked accessor mirroring TerrainCost.
func (g *Grid) CostAt(pos gridnav.Position) float64 { return g.TerrainCost(pos) }

// Set assigns a cell type; Start and Goal cells are also recorded as the
// grid's designated endpoints. Overwriting a recorded endpoint with another
// cell type resets that record to the zero position.
func (g *Grid) Set(pos gridnav.Position, cell CellType) {
	if !g.InBounds(pos) {
		return
	}
	g.cells[g.index(pos)] = cell
	if cell != Start && pos == g.start {
		g.start = gridnav.Position{}
	}
	if cell != Goal && pos == g.goal {
		g.goal = gridnav.Position{}
	}
	switch cell {
	case Start:
		g.start = pos
	case Goal:
		g.goal = pos
	}
}

// SetCost assigns the terrain cost of a cell.
func (g *Grid) SetCost(pos gridnav.Position, cost float64) {
	if g.InBounds(pos) {
		g.costs[g.index(pos)] = cost
	}
}

// SetStart designates the start cell.
func (g *Grid) SetStart(pos gridnav.Position) { g.Set(pos, Start) }

// SetGoal designates the goal cell.
func (g *Grid) SetGoal(pos gridnav.Position) { g.Set(pos, Goal) }

// AddMovingObstacle registers a moving obstacle.
func (g *Grid) AddMovingObstacle(obstacle MovingObstacle) {
	g.obstacles = append(g.obstacles, obstacle)
}

// Passable reports whether pos is on the grid and free of static obstacles.
func (g *Grid) Passable(pos gridnav.Position) bool {
	return g.InBounds(pos) && g.cells[g.index(pos)] != Obstacle
}

// PassableAt additionally checks moving obstacles at the given tick.
func (g *Grid) PassableAt(pos gridnav.Position, tick int) bool {
	if !g.Passable(pos) {
		return false
	}
	for _, obstacle := range g.obstacles {
		if occupied, ok := obstacle.At(tick); ok && occupied == pos {
			return false
		}
	}
	return true
}

// TerrainCost returns the movement cost of entering pos; out of bounds
// costs +Inf.
func (g *Grid) TerrainCost(pos gridnav.Position) float64 {
	if !g.InBounds(pos) {
		return math.Inf(1)
	}
	return g.costs[g.index(pos)]
}

// Neighbors returns the 4-connected statically passable neighbors of pos.
func (g *Grid) Neighbors(pos gridnav.Position) []gridnav.Position {
	out := make([]gridnav.Position, 0, 4)
	for _, d := range directions {
		next := gridnav.Position{X: pos.X + d.X, Y: pos.Y + d.Y}
		if g.Passable(next) {
			out = append(out, next)
		}
	}
	return out
}

// NeighborsAt returns the neighbors of pos passable at the given tick.
func (g *Grid) NeighborsAt(pos gridnav.Position, tick int) []gridnav.Position {
	out := make([]gridnav.Position, 0, 4)
	for _, d := range directions {
		next := gridnav.Position{X: pos.X + d.X, Y: pos.Y + d.Y}
		if g.PassableAt(next, tick) {
			out = append(out, next)
		}
	}
	return out
}

// Now returns the shared clock.
func (g *Grid) Now() int { return g.now }

// Advance moves the shared clock one tick forward.
func (g *Grid) Advance() { g.now++ }

// SetNow rewinds or fast-forwards the clock; experiment runs use it to
// reset the environment between runs.
func (g *Grid) SetNow(tick int) { g.now = tick }

// MovingObstaclePositions returns every cell occupied by a moving obstacle
// at the given tick.
func (g *Grid) MovingObstaclePositions(tick int) map[gridnav.Position]bool {
	out := make(map[gridnav.Position]bool, len(g.obstacles))
	for _, obstacle := range g.obstacles {
		if pos, ok := obstacle.At(tick); ok {
			out[pos] = true
		}
	}
	return out
}
