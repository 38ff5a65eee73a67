package gridnav

// searchNode is one node of the search tree. Parent links form a tree
// rooted at the start state: every node has exactly one parent and the tree
// is read-only once built. The invariant f == g + h holds at all times;
// algorithms without a heuristic keep h == 0.
type searchNode struct {
	pos    Position
	g      float64 // accumulated cost from start
	h      float64 // heuristic estimate to goal
	f      float64 // total priority, g + h
	tick   int     // time stamp, used only by temporal search
	parent *searchNode
}

// path walks the parent links back to the root and returns the positions in
// start-to-goal order.
func (n *searchNode) path() []Position {
	var out []Position
	for current := n; current != nil; current = current.parent {
		out = append(out, current.pos)
	}
	// reverse path
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
