package gridnav

import (
	"math"
	"math/rand"
	"time"
)

// hillClimbing refines an A* baseline with random-restart local search.
// Each round perturbs a short interior segment of the best path, then
// greedily applies first-improvement single-waypoint substitutions until no
// improving move remains. It is a best-effort repair layer: never worse than
// the baseline, but with no optimality guarantee.
type hillClimbing struct {
	env         Environment
	base        *aStar
	maxRestarts int
	rng         *rand.Rand
}

func (h *hillClimbing) Name() string { return HillClimbingName }

func (h *hillClimbing) FindPath(start, goal Position, startTick int) Result {
	began := time.Now()

	baseline := h.base.FindPath(start, goal, startTick)
	if !baseline.Found {
		// No feasible path to repair; propagate the failure unchanged.
		return baseline
	}

	bestPath := baseline.Path
	bestCost := baseline.TotalCost
	// Local search expands no tree; evaluations stand in for expansions.
	evaluations := baseline.ExpandedNodes

	for restart := 0; restart < h.maxRestarts; restart++ {
		currentPath := h.perturb(bestPath)
		currentCost := h.evaluate(currentPath, startTick)
		if math.IsInf(currentCost, 1) {
			continue
		}

		improved := true
		for improved {
			improved = false
			for _, neighborPath := range h.pathNeighbors(currentPath) {
				neighborCost := h.evaluate(neighborPath, startTick)
				evaluations++
				if neighborCost < currentCost {
					currentPath = neighborPath
					currentCost = neighborCost
					improved = true
					break
				}
			}
		}

		if currentCost < bestCost {
			bestPath = currentPath
			bestCost = currentCost
		}
	}

	return Result{
		Path:          bestPath,
		TotalCost:     bestCost,
		ExpandedNodes: evaluations,
		Duration:      time.Since(began),
		Found:         true,
		Algorithm:     HillClimbingName,
	}
}

// perturb replaces a random interior segment (1-3 waypoints, endpoints
// untouched) with a bounded random walk between the segment's fixed
// boundaries. If the walk fails to reconnect, the path is returned
// unchanged.
func (h *hillClimbing) perturb(path []Position) []Position {
	if len(path) < 3 {
		return path
	}

	startIdx := 1 + h.rng.Intn(len(path)-2)
	endIdx := startIdx + 1 + h.rng.Intn(3)
	if endIdx > len(path)-1 {
		endIdx = len(path) - 1
	}

	segmentStart := path[startIdx-1]
	segmentEnd := path[endIdx]

	current := segmentStart
	segment := []Position{current}
	for step := 0; step < endIdx-startIdx+2; step++ {
		neighbors := h.env.Neighbors(current)
		if len(neighbors) == 0 {
			break
		}
		if containsPosition(neighbors, segmentEnd) {
			segment = append(segment, segmentEnd)
			break
		}
		current = neighbors[h.rng.Intn(len(neighbors))]
		segment = append(segment, current)
	}

	if segment[len(segment)-1] != segmentEnd {
		return path
	}

	out := make([]Position, 0, startIdx+len(segment)-1+len(path)-endIdx-1)
	out = append(out, path[:startIdx]...)
	out = append(out, segment[1:]...)
	out = append(out, path[endIdx+1:]...)
	return out
}

// pathNeighbors generates candidate paths by substituting one interior
// waypoint at a time with a grid neighbor, keeping every other waypoint
// fixed. Candidates that break adjacency are dropped here.
func (h *hillClimbing) pathNeighbors(path []Position) [][]Position {
	var out [][]Position
	for i := 1; i < len(path)-1; i++ {
		for _, substitute := range h.env.Neighbors(path[i]) {
			candidate := make([]Position, len(path))
			copy(candidate, path)
			candidate[i] = substitute
			if h.isValid(candidate) {
				out = append(out, candidate)
			}
		}
	}
	return out
}

// isValid reports whether every consecutive pair of positions is
// grid-adjacent and passable.
func (h *hillClimbing) isValid(path []Position) bool {
	for i := 0; i < len(path)-1; i++ {
		if !containsPosition(h.env.Neighbors(path[i]), path[i+1]) {
			return false
		}
	}
	return true
}

// evaluate scores a path: +Inf when adjacency breaks or any position is
// blocked at its time offset (startTick + index), otherwise the sum of
// terrain costs of all positions after the first.
func (h *hillClimbing) evaluate(path []Position, startTick int) float64 {
	if !h.isValid(path) {
		return math.Inf(1)
	}
	var total float64
	for i, pos := range path {
		if !h.env.PassableAt(pos, startTick+i) {
			return math.Inf(1)
		}
		if i > 0 {
			total += h.env.TerrainCost(pos)
		}
	}
	return total
}

func containsPosition(positions []Position, want Position) bool {
	for _, pos := range positions {
		if pos == want {
			return true
		}
	}
	return false
}
