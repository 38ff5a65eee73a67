package gridnav

// frontierItem wraps a search node in the open set. seq records insertion
// order so that equal-priority pops are deterministic across runs.
type frontierItem struct {
	node *searchNode
	seq  int
}

// frontier is a min-heap over f; ties break on insertion order.
type frontier struct {
	items   []*frontierItem
	nextSeq int
}

func (q frontier) Len() int { return len(q.items) }

func (q frontier) Less(i, j int) bool {
	if q.items[i].node.f != q.items[j].node.f {
		return q.items[i].node.f < q.items[j].node.f
	}
	return q.items[i].seq < q.items[j].seq
}

func (q frontier) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

func (q *frontier) Push(x any) {
	item := x.(*frontierItem)
	item.seq = q.nextSeq
	q.nextSeq++
	q.items = append(q.items, item)
}

func (q *frontier) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}
