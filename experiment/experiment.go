// Package experiment batches navigation runs across maps and algorithms and
// aggregates per-algorithm statistics.
package experiment

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/pdrpinto/gridnav"
	"github.com/pdrpinto/gridnav/grid"
)

// Result captures one navigation run.
type Result struct {
	RunID          string        `yaml:"run_id"`
	MapName        string        `yaml:"map"`
	Algorithm      string        `yaml:"algorithm"`
	Success        bool          `yaml:"success"`
	PathLength     int           `yaml:"path_length"`
	TotalCost      float64       `yaml:"total_cost"`
	ElapsedTicks   int           `yaml:"elapsed_ticks"`
	Replans        int           `yaml:"replans"`
	NodesExpanded  int           `yaml:"nodes_expanded"`
	SearchDuration time.Duration `yaml:"search_duration"`
	WallTime       time.Duration `yaml:"wall_time"`
}

// Summary aggregates all runs of one algorithm.
type Summary struct {
	Algorithm          string        `yaml:"algorithm"`
	Runs               int           `yaml:"runs"`
	SuccessRate        float64       `yaml:"success_rate"`
	MeanCost           float64       `yaml:"mean_cost"`
	MeanNodesExpanded  float64       `yaml:"mean_nodes_expanded"`
	MeanReplans        float64       `yaml:"mean_replans"`
	MeanSearchDuration time.Duration `yaml:"mean_search_duration"`
}

// Runner accumulates results across experiments.
type Runner struct {
	results []Result
}

// Results returns every recorded run, in execution order.
func (r *Runner) Results() []Result { return r.results }

// RunOne resets the map's clock, navigates one agent from the map's start
// to its goal with the named algorithm, and records the outcome.
func (r *Runner) RunOne(g *grid.Grid, algorithm, mapName string, maxSteps int, options ...gridnav.Option) (Result, error) {
	g.SetNow(0)

	agent, err := gridnav.NewAgent(g, algorithm, g.Start(), options...)
	if err != nil {
		return Result{}, fmt.Errorf("experiment: %w", err)
	}

	began := time.Now()
	success := agent.NavigateTo(g.Goal(), maxSteps)
	wall := time.Since(began)

	stats := agent.Stats()
	result := Result{
		RunID:          uuid.NewString(),
		MapName:        mapName,
		Algorithm:      algorithm,
		Success:        success,
		PathLength:     len(agent.Path()),
		TotalCost:      stats.TotalCost,
		ElapsedTicks:   stats.ElapsedTicks,
		Replans:        stats.Replans,
		NodesExpanded:  stats.NodesExpanded,
		SearchDuration: stats.SearchDuration,
		WallTime:       wall,
	}
	r.results = append(r.results, result)
	return result, nil
}

// RunMatrix crosses maps x algorithms x runs. Map order follows the sorted
// map names so repeated experiments execute in a stable order.
func (r *Runner) RunMatrix(maps map[string]*grid.Grid, algorithms []string, runs, maxSteps int, options ...gridnav.Option) error {
	names := make([]string, 0, len(maps))
	for name := range maps {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, algorithm := range algorithms {
			for run := 0; run < runs; run++ {
				if _, err := r.RunOne(maps[name], algorithm, name, maxSteps, options...); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Summaries aggregates the recorded runs per algorithm, sorted by name.
// MeanCost averages successful runs only; the other means cover all runs.
func (r *Runner) Summaries() []Summary {
	byAlgorithm := make(map[string][]Result)
	for _, result := range r.results {
		byAlgorithm[result.Algorithm] = append(byAlgorithm[result.Algorithm], result)
	}

	out := make([]Summary, 0, len(byAlgorithm))
	for algorithm, results := range byAlgorithm {
		summary := Summary{Algorithm: algorithm, Runs: len(results)}
		successes := 0
		var costSum float64
		var nodesSum, replanSum int
		var searchSum time.Duration
		for _, result := range results {
			if result.Success {
				successes++
				costSum += result.TotalCost
			}
			nodesSum += result.NodesExpanded
			replanSum += result.Replans
			searchSum += result.SearchDuration
		}
		summary.SuccessRate = float64(successes) / float64(len(results))
		if successes > 0 {
			summary.MeanCost = costSum / float64(successes)
		}
		summary.MeanNodesExpanded = float64(nodesSum) / float64(len(results))
		summary.MeanReplans = float64(replanSum) / float64(len(results))
		summary.MeanSearchDuration = searchSum / time.Duration(len(results))
		out = append(out, summary)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Algorithm < out[j].Algorithm })
	return out
}
