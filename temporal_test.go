package gridnav_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridnav"
	"github.com/pdrpinto/gridnav/grid"
)

func TestTemporalDegeneratesToAStarWithoutMovingObstacles(t *testing.T) {
	g := weightedGrid()
	start := gridnav.Position{X: 0, Y: 0}
	goal := gridnav.Position{X: 7, Y: 7}

	astar, err := gridnav.New(gridnav.AStarName, g)
	require.NoError(t, err)
	temporal, err := gridnav.New(gridnav.TemporalAStarName, g)
	require.NoError(t, err)

	astarResult := astar.FindPath(start, goal, 0)
	temporalResult := temporal.FindPath(start, goal, 0)

	require.True(t, astarResult.Found)
	require.True(t, temporalResult.Found)
	// Waiting only ever adds cost on a static grid, so the time dimension
	// degenerates and both optima coincide.
	assert.InDelta(t, astarResult.TotalCost, temporalResult.TotalCost, 1e-9)
}

func TestTemporalAvoidsPeriodicBlockerInCorridor(t *testing.T) {
	// 1-wide corridor with a blocker oscillating between x=2 and x=3:
	// the only way through is to wait for a gap.
	g := grid.New(5, 1)
	blocker := grid.MovingObstacle{ID: 1, Positions: []gridnav.Position{
		{X: 2, Y: 0}, {X: 3, Y: 0},
	}}
	g.AddMovingObstacle(blocker)

	planner, err := gridnav.New(gridnav.TemporalAStarName, g)
	require.NoError(t, err)

	start := gridnav.Position{X: 0, Y: 0}
	goal := gridnav.Position{X: 4, Y: 0}
	result := planner.FindPath(start, goal, 0)

	require.True(t, result.Found)
	require.Equal(t, start, result.Path[0])
	require.Equal(t, goal, result.Path[len(result.Path)-1])

	// The agent must never share a cell with the blocker at the tick it
	// occupies that cell.
	for i, pos := range result.Path {
		occupied, ok := blocker.At(i)
		require.True(t, ok)
		assert.NotEqual(t, occupied, pos, "collision at tick %d", i)
	}

	// A detour is impossible in a 1-wide corridor, so the plan must wait:
	// strictly more steps than the unobstructed distance.
	assert.Greater(t, len(result.Path)-1, 4)
}

func TestTemporalHorizonBoundsSearch(t *testing.T) {
	g := grid.New(12, 1)
	planner, err := gridnav.New(gridnav.TemporalAStarName, g, gridnav.WithHorizon(3))
	require.NoError(t, err)

	// Goal is 11 ticks away but expansion stops 3 ticks past the start
	// time, so the search gives up rather than idling forever.
	result := planner.FindPath(gridnav.Position{X: 0, Y: 0}, gridnav.Position{X: 11, Y: 0}, 0)
	assert.False(t, result.Found)
	assert.Empty(t, result.Path)
}

func TestTemporalStartTickShiftsObstaclePhase(t *testing.T) {
	// Blocker parked on x=1 at even ticks only.
	g := grid.New(3, 1)
	g.AddMovingObstacle(grid.MovingObstacle{ID: 1, Positions: []gridnav.Position{
		{X: 1, Y: 0}, {X: 99, Y: 99},
	}})

	planner, err := gridnav.New(gridnav.TemporalAStarName, g)
	require.NoError(t, err)

	start := gridnav.Position{X: 0, Y: 0}
	goal := gridnav.Position{X: 2, Y: 0}

	// Starting at tick 0, the first move lands on x=1 at tick 1 (odd, free):
	// no wait needed.
	atEven := planner.FindPath(start, goal, 0)
	require.True(t, atEven.Found)
	assert.Len(t, atEven.Path, 3)

	// Starting at tick 1, the first move would land on x=1 at tick 2
	// (even, blocked): the plan must wait first.
	atOdd := planner.FindPath(start, goal, 1)
	require.True(t, atOdd.Found)
	assert.Greater(t, len(atOdd.Path), 3)
}
