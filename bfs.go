package gridnav

import "time"

// breadthFirst explores the neighbor graph in discrete layers, treating
// every edge as unit weight. The first path discovered to the goal is
// shortest by step count, not by terrain cost.
type breadthFirst struct {
	env Environment
}

func (b *breadthFirst) Name() string { return BFSName }

func (b *breadthFirst) FindPath(start, goal Position, startTick int) Result {
	began := time.Now()
	expanded := 0

	queue := []*searchNode{{pos: start}}
	visited := map[Position]bool{start: true}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		expanded++

		if current.pos == goal {
			path := current.path()
			return Result{
				Path:          path,
				TotalCost:     float64(len(path) - 1), // number of moves
				ExpandedNodes: expanded,
				Duration:      time.Since(began),
				Found:         true,
				Algorithm:     BFSName,
			}
		}

		for _, neighbor := range b.env.Neighbors(current.pos) {
			if visited[neighbor] {
				continue
			}
			visited[neighbor] = true
			queue = append(queue, &searchNode{pos: neighbor, parent: current})
		}
	}

	return failed(BFSName, expanded, began)
}
