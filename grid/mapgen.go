package grid

import (
	"math"
	"math/rand"

	"github.com/pdrpinto/gridnav"
)

// SmallMap builds a fixed 10x10 map: a handful of walls and one patch of
// difficult terrain between start (1,1) and goal (8,8).
func SmallMap() *Grid {
	g := New(10, 10)
	g.SetStart(gridnav.Position{X: 1, Y: 1})
	g.SetGoal(gridnav.Position{X: 8, Y: 8})

	for _, wall := range []gridnav.Position{
		{X: 3, Y: 2}, {X: 3, Y: 3}, {X: 3, Y: 4},
		{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 7, Y: 5},
	} {
		g.Set(wall, Obstacle)
	}

	for x := 2; x < 5; x++ {
		for y := 6; y < 9; y++ {
			g.SetCost(gridnav.Position{X: x, Y: y}, 3)
		}
	}
	return g
}

// MediumMap builds a 20x20 maze-like map: two walls with gaps and randomly
// scattered difficult terrain.
func MediumMap(rng *rand.Rand) *Grid {
	g := New(20, 20)
	g.SetStart(gridnav.Position{X: 2, Y: 2})
	g.SetGoal(gridnav.Position{X: 17, Y: 17})

	for x := 5; x < 15; x++ {
		g.Set(gridnav.Position{X: x, Y: 8}, Obstacle)
		g.Set(gridnav.Position{X: x, Y: 12}, Obstacle)
	}
	for _, gap := range []gridnav.Position{
		{X: 7, Y: 8}, {X: 12, Y: 8}, {X: 9, Y: 12}, {X: 14, Y: 12},
	} {
		g.Set(gap, Empty)
	}

	for x := 0; x < 20; x++ {
		for y := 0; y < 20; y++ {
			if rng.Float64() < 0.2 {
				g.SetCost(gridnav.Position{X: x, Y: y}, float64(2+rng.Intn(3)))
			}
		}
	}
	return g
}

// LargeMap builds a 50x50 map with 15% random obstacles and tiered terrain
// costs.
func LargeMap(rng *rand.Rand) *Grid {
	g := New(50, 50)
	start := gridnav.Position{X: 5, Y: 5}
	goal := gridnav.Position{X: 44, Y: 44}
	g.SetStart(start)
	g.SetGoal(goal)

	for x := 0; x < 50; x++ {
		for y := 0; y < 50; y++ {
			pos := gridnav.Position{X: x, Y: y}
			if pos != start && pos != goal && rng.Float64() < 0.15 {
				g.Set(pos, Obstacle)
			}
		}
	}

	for x := 0; x < 50; x++ {
		for y := 0; y < 50; y++ {
			pos := gridnav.Position{X: x, Y: y}
			if g.At(pos) == Obstacle {
				continue
			}
			switch roll := rng.Float64(); {
			case roll < 0.6:
				g.SetCost(pos, 1)
			case roll < 0.8:
				g.SetCost(pos, 2)
			case roll < 0.95:
				g.SetCost(pos, 3)
			default:
				g.SetCost(pos, 5)
			}
		}
	}
	return g
}

// DynamicMap builds a 15x15 map with static walls and three patrolling
// obstacles: one horizontal, one vertical, one circling.
func DynamicMap() *Grid {
	g := New(15, 15)
	g.SetStart(gridnav.Position{X: 1, Y: 1})
	g.SetGoal(gridnav.Position{X: 13, Y: 13})

	for _, wall := range []gridnav.Position{
		{X: 5, Y: 3}, {X: 5, Y: 4}, {X: 5, Y: 5},
		{X: 9, Y: 7}, {X: 9, Y: 8}, {X: 9, Y: 9},
	} {
		g.Set(wall, Obstacle)
	}

	var horizontal []gridnav.Position
	for x := 2; x < 8; x++ {
		horizontal = append(horizontal, gridnav.Position{X: x, Y: 7})
	}
	for x := 6; x > 1; x-- {
		horizontal = append(horizontal, gridnav.Position{X: x, Y: 7})
	}
	g.AddMovingObstacle(MovingObstacle{ID: 1, Positions: horizontal})

	var vertical []gridnav.Position
	for y := 3; y < 9; y++ {
		vertical = append(vertical, gridnav.Position{X: 11, Y: y})
	}
	for y := 7; y > 2; y-- {
		vertical = append(vertical, gridnav.Position{X: 11, Y: y})
	}
	g.AddMovingObstacle(MovingObstacle{ID: 2, Positions: vertical})

	center := gridnav.Position{X: 7, Y: 10}
	const radius = 2.0
	var circular []gridnav.Position
	for angle := 0; angle < 360; angle += 45 {
		rad := float64(angle) * math.Pi / 180
		pos := gridnav.Position{
			X: center.X + int(radius*math.Cos(rad)),
			Y: center.Y + int(radius*math.Sin(rad)),
		}
		if g.InBounds(pos) {
			circular = append(circular, pos)
		}
	}
	if len(circular) > 0 {
		g.AddMovingObstacle(MovingObstacle{ID: 3, Positions: circular})
	}
	return g
}

// Clustered scatters walls via random walks: each cluster drops cells with
// the given density while wandering for the given number of steps. Start
// and goal cells are never walled over.
func Clustered(width, height, clusters, steps int, density float64, start, goal gridnav.Position, rng *rand.Rand) *Grid {
	g := New(width, height)
	g.SetStart(start)
	g.SetGoal(goal)

	for c := 0; c < clusters; c++ {
		pos := gridnav.Position{X: rng.Intn(width), Y: rng.Intn(height)}
		for s := 0; s < steps; s++ {
			if rng.Float64() < density && pos != start && pos != goal {
				g.Set(pos, Obstacle)
			}
			d := directions[rng.Intn(4)]
			next := gridnav.Position{X: pos.X + d.X, Y: pos.Y + d.Y}
			if g.InBounds(next) {
				pos = next
			}
		}
	}
	return g
}
