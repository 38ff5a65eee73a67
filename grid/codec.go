package grid

import (
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/pdrpinto/gridnav"
)

// Map file cell glyphs.
const (
	glyphEmpty    = '.'
	glyphObstacle = '#'
	glyphStart    = 'S'
	glyphGoal     = 'G'
)

type mapDocument struct {
	Width     int           `yaml:"width"`
	Height    int           `yaml:"height"`
	Rows      []string      `yaml:"rows"`
	Costs     [][]float64   `yaml:"costs,omitempty"`
	Obstacles []obstacleDoc `yaml:"moving_obstacles,omitempty"`
	Now       int           `yaml:"now,omitempty"`
}

type obstacleDoc struct {
	ID   int      `yaml:"id"`
	Path [][2]int `yaml:"path"`
}

// Encode serializes a grid to YAML. Cells are written as glyph rows
// (. # S G), costs and moving obstacle paths alongside.
func Encode(g *Grid) ([]byte, error) {
	doc := mapDocument{
		Width:  g.width,
		Height: g.height,
		Now:    g.now,
	}
	for y := 0; y < g.height; y++ {
		row := make([]byte, g.width)
		costs := make([]float64, g.width)
		for x := 0; x < g.width; x++ {
			pos := gridnav.Position{X: x, Y: y}
			switch g.At(pos) {
			case Obstacle:
				row[x] = glyphObstacle
			case Start:
				row[x] = glyphStart
			case Goal:
				row[x] = glyphGoal
			default:
				row[x] = glyphEmpty
			}
			costs[x] = g.TerrainCost(pos)
		}
		doc.Rows = append(doc.Rows, string(row))
		doc.Costs = append(doc.Costs, costs)
	}
	for _, obstacle := range g.obstacles {
		od := obstacleDoc{ID: obstacle.ID}
		for _, pos := range obstacle.Positions {
			od.Path = append(od.Path, [2]int{pos.X, pos.Y})
		}
		doc.Obstacles = append(doc.Obstacles, od)
	}
	return yaml.Marshal(doc)
}

// Decode parses a YAML map document produced by Encode (or written by
// hand) back into a grid.
func Decode(data []byte) (*Grid, error) {
	var doc mapDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("grid: decode map: %w", err)
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("grid: decode map: invalid dimensions %dx%d", doc.Width, doc.Height)
	}
	if len(doc.Rows) != doc.Height {
		return nil, fmt.Errorf("grid: decode map: want %d rows, got %d", doc.Height, len(doc.Rows))
	}

	g := New(doc.Width, doc.Height)
	g.now = doc.Now
	for y, row := range doc.Rows {
		if len(row) != doc.Width {
			return nil, fmt.Errorf("grid: decode map: row %d is %d cells wide, want %d", y, len(row), doc.Width)
		}
		for x := 0; x < doc.Width; x++ {
			pos := gridnav.Position{X: x, Y: y}
			switch row[x] {
			case glyphEmpty:
			case glyphObstacle:
				g.Set(pos, Obstacle)
			case glyphStart:
				g.SetStart(pos)
			case glyphGoal:
				g.SetGoal(pos)
			default:
				return nil, fmt.Errorf("grid: decode map: unknown glyph %q at (%d,%d)", row[x], x, y)
			}
		}
	}
	if len(doc.Costs) > 0 && len(doc.Costs) != doc.Height {
		return nil, fmt.Errorf("grid: decode map: want %d cost rows, got %d", doc.Height, len(doc.Costs))
	}
	for y, costs := range doc.Costs {
		if len(costs) != doc.Width {
			return nil, fmt.Errorf("grid: decode map: cost row %d has %d entries, want %d", y, len(costs), doc.Width)
		}
		for x, cost := range costs {
			g.SetCost(gridnav.Position{X: x, Y: y}, cost)
		}
	}
	for _, od := range doc.Obstacles {
		obstacle := MovingObstacle{ID: od.ID}
		for _, p := range od.Path {
			obstacle.Positions = append(obstacle.Positions, gridnav.Position{X: p[0], Y: p[1]})
		}
		g.AddMovingObstacle(obstacle)
	}
	return g, nil
}
