package gridnav

import (
	"container/heap"
	"time"
)

// aStar applies the same relaxation rule as uniform-cost search but orders
// the frontier by f = g + h. With an admissible heuristic the returned cost
// equals the true optimum; only tie-breaking among expansions differs from
// UCS.
type aStar struct {
	env       Environment
	heuristic Heuristic
}

func (a *aStar) Name() string { return AStarName }

func (a *aStar) FindPath(start, goal Position, startTick int) Result {
	began := time.Now()
	expanded := 0

	startH := a.heuristic(start, goal)
	open := &frontier{}
	heap.Init(open)
	heap.Push(open, &frontierItem{node: &searchNode{pos: start, h: startH, f: startH}})

	closed := make(map[Position]bool)
	bestG := map[Position]float64{start: 0}

	for open.Len() > 0 {
		current := heap.Pop(open).(*frontierItem).node

		if closed[current.pos] {
			continue
		}
		closed[current.pos] = true
		expanded++

		if current.pos == goal {
			return Result{
				Path:          current.path(),
				TotalCost:     current.g,
				ExpandedNodes: expanded,
				Duration:      time.Since(began),
				Found:         true,
				Algorithm:     AStarName,
			}
		}

		for _, neighbor := range a.env.Neighbors(current.pos) {
			tentativeG := current.g + a.env.TerrainCost(neighbor)
			if known, seen := bestG[neighbor]; seen && tentativeG >= known {
				continue
			}
			bestG[neighbor] = tentativeG
			h := a.heuristic(neighbor, goal)
			heap.Push(open, &frontierItem{node: &searchNode{
				pos:    neighbor,
				g:      tentativeG,
				h:      h,
				f:      tentativeG + h,
				parent: current,
			}})
		}
	}

	return failed(AStarName, expanded, began)
}
