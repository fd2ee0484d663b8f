package revwalk

import "container/heap"

// dateQueue is the pending queue of discovered-but-unvisited commits,
// ordered by descending commit time. Ties pop in insertion order so that
// walks over equal-timestamp commits stay deterministic.
//
// This is an approximation of history order, not a topological sort: when
// committer clocks are skewed, a parent carrying a later timestamp than an
// already-popped descendant will still surface afterwards. Downstream
// consumers depend on this exact ordering, so it is kept as-is.
type dateQueue struct {
	items   commitHeap
	nextSeq uint64
}

func newDateQueue() *dateQueue {
	return &dateQueue{}
}

func (q *dateQueue) add(c *Commit) {
	heap.Push(&q.items, queueItem{commit: c, seq: q.nextSeq})
	q.nextSeq++
}

// pop removes and returns the most recent pending commit, or nil when the
// queue is empty.
func (q *dateQueue) pop() *Commit {
	if len(q.items) == 0 {
		return nil
	}
	return heap.Pop(&q.items).(queueItem).commit
}

func (q *dateQueue) clear() {
	q.items = q.items[:0]
	q.nextSeq = 0
}

func (q *dateQueue) len() int {
	return len(q.items)
}

type queueItem struct {
	commit *Commit
	seq    uint64
}

type commitHeap []queueItem

func (h commitHeap) Len() int {
	return len(h)
}

func (h commitHeap) Less(i, j int) bool {
	ti, tj := h[i].commit.commitTime, h[j].commit.commitTime
	if ti.Equal(tj) {
		return h[i].seq < h[j].seq
	}
	return ti.After(tj)
}

func (h commitHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *commitHeap) Push(x interface{}) {
	*h = append(*h, x.(queueItem))
}

func (h *commitHeap) Pop() interface{} {
	old := *h
	n := len(old) - 1
	item := old[n]
	*h = old[:n]
	return item
}
