package experiment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridnav"
	"github.com/pdrpinto/gridnav/experiment"
	"github.com/pdrpinto/gridnav/grid"
)

func TestRunOneRecordsOutcome(t *testing.T) {
	runner := &experiment.Runner{}
	result, err := runner.RunOne(grid.SmallMap(), gridnav.AStarName, "small", 1000)
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, "small", result.MapName)
	assert.Equal(t, gridnav.AStarName, result.Algorithm)
	assert.True(t, result.Success)
	assert.Greater(t, result.TotalCost, 0.0)
	assert.Greater(t, result.NodesExpanded, 0)
	assert.Len(t, runner.Results(), 1)
}

func TestRunOneResetsClockBetweenRuns(t *testing.T) {
	g := grid.SmallMap()
	runner := &experiment.Runner{}

	first, err := runner.RunOne(g, gridnav.UCSName, "small", 1000)
	require.NoError(t, err)
	second, err := runner.RunOne(g, gridnav.UCSName, "small", 1000)
	require.NoError(t, err)

	assert.Equal(t, first.TotalCost, second.TotalCost)
	assert.Equal(t, first.ElapsedTicks, second.ElapsedTicks)
}

func TestRunOneRejectsUnknownAlgorithm(t *testing.T) {
	runner := &experiment.Runner{}
	_, err := runner.RunOne(grid.SmallMap(), "bogus", "small", 1000)
	require.Error(t, err)
	assert.Empty(t, runner.Results())
}

func TestRunMatrixAndSummaries(t *testing.T) {
	runner := &experiment.Runner{}
	maps := map[string]*grid.Grid{"small": grid.SmallMap()}
	algorithms := []string{gridnav.BFSName, gridnav.AStarName}

	require.NoError(t, runner.RunMatrix(maps, algorithms, 2, 1000, gridnav.WithSeed(1)))
	assert.Len(t, runner.Results(), 4)

	summaries := runner.Summaries()
	require.Len(t, summaries, 2)
	// Sorted by algorithm name.
	assert.Equal(t, gridnav.AStarName, summaries[0].Algorithm)
	assert.Equal(t, gridnav.BFSName, summaries[1].Algorithm)

	for _, summary := range summaries {
		assert.Equal(t, 2, summary.Runs)
		assert.Equal(t, 1.0, summary.SuccessRate)
		assert.Greater(t, summary.MeanCost, 0.0)
		assert.Greater(t, summary.MeanNodesExpanded, 0.0)
	}
}
