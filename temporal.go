package gridnav

import (
	"container/heap"
	"time"
)

// spaceTimeState identifies a temporal search state. De-duplication is keyed
// by (position, tick), never position alone: the same cell may legitimately
// be revisited at a different time.
type spaceTimeState struct {
	pos  Position
	tick int
}

// temporalAStar searches the state space of (position, time) pairs. Each
// expansion offers a wait action (stay put one tick, cost 1) and move
// actions (step to a neighbor passable at the next tick, cost = destination
// terrain). The Manhattan heuristic ignores time and stays admissible since
// neither action has negative cost. The planning horizon bounds how far past
// the search's own start tick nodes are expanded, so periodic obstacles
// cannot induce unbounded idle-waiting.
type temporalAStar struct {
	env     Environment
	horizon int
}

func (t *temporalAStar) Name() string { return TemporalAStarName }

func (t *temporalAStar) FindPath(start, goal Position, startTick int) Result {
	began := time.Now()
	expanded := 0

	startH := Manhattan(start, goal)
	open := &frontier{}
	heap.Init(open)
	heap.Push(open, &frontierItem{node: &searchNode{pos: start, h: startH, f: startH, tick: startTick}})

	closed := make(map[spaceTimeState]bool)
	bestG := make(map[spaceTimeState]float64)
	bestG[spaceTimeState{start, startTick}] = 0

	relax := func(current *searchNode, pos Position, tick int, g float64) {
		state := spaceTimeState{pos, tick}
		if known, seen := bestG[state]; seen && g >= known {
			return
		}
		bestG[state] = g
		h := Manhattan(pos, goal)
		heap.Push(open, &frontierItem{node: &searchNode{
			pos:    pos,
			g:      g,
			h:      h,
			f:      g + h,
			tick:   tick,
			parent: current,
		}})
	}

	for open.Len() > 0 {
		current := heap.Pop(open).(*frontierItem).node

		state := spaceTimeState{current.pos, current.tick}
		if closed[state] {
			continue
		}
		closed[state] = true
		expanded++

		if current.pos == goal {
			return Result{
				Path:          current.path(),
				TotalCost:     current.g,
				ExpandedNodes: expanded,
				Duration:      time.Since(began),
				Found:         true,
				Algorithm:     TemporalAStarName,
			}
		}

		// Don't plan past the horizon.
		if current.tick-startTick > t.horizon {
			continue
		}

		nextTick := current.tick + 1

		// Wait action: stay in place if it remains passable.
		if t.env.PassableAt(current.pos, nextTick) {
			relax(current, current.pos, nextTick, current.g+1)
		}

		// Move actions.
		for _, neighbor := range t.env.NeighborsAt(current.pos, nextTick) {
			relax(current, neighbor, nextTick, current.g+t.env.TerrainCost(neighbor))
		}
	}

	return failed(TemporalAStarName, expanded, began)
}
