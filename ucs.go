package gridnav

import (
	"container/heap"
	"time"
)

// uniformCost orders its frontier by accumulated terrain cost alone.
// A position may sit in the frontier several times with different tentative
// costs; it is finalized the first time it is popped with a cost not yet
// superseded, and never re-expanded after that. With non-negative edge
// weights this yields the minimum-terrain-cost path.
type uniformCost struct {
	env Environment
}

func (u *uniformCost) Name() string { return UCSName }

func (u *uniformCost) FindPath(start, goal Position, startTick int) Result {
	began := time.Now()
	expanded := 0

	open := &frontier{}
	heap.Init(open)
	heap.Push(open, &frontierItem{node: &searchNode{pos: start}})

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
				Algorithm:     UCSName,
			}
		}

		for _, neighbor := range u.env.Neighbors(current.pos) {
			tentativeG := current.g + u.env.TerrainCost(neighbor)
			if known, seen := bestG[neighbor]; seen && tentativeG >= known {
				continue
			}
			bestG[neighbor] = tentativeG
			heap.Push(open, &frontierItem{node: &searchNode{
				pos:    neighbor,
				g:      tentativeG,
				f:      tentativeG,
				parent: current,
			}})
		}
	}

	return failed(UCSName, expanded, began)
}
