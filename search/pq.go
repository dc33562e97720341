package search

import (
	"container/heap"
	"fmt"
)

// pqItem is a frontier entry: a cell, its ordering score and the sequence
// number of its insertion, used to break score ties in FIFO order.
type pqItem struct {
	cell  int
	score int
	seq   int
	index int // position in the heap; -1 once popped
}

// scorePQ is a min-heap of *pqItem ordered by (score, seq).
type scorePQ []*pqItem

// Len returns the number of items in the heap.
func (pq scorePQ) Len() int { return len(pq) }

// Less orders by score, then by earliest insertion.
func (pq scorePQ) Less(i, j int) bool {
	if pq[i].score != pq[j].score {
		return pq[i].score < pq[j].score
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements and keeps their index fields current.
func (pq scorePQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push adds x; called by heap.Push.
func (pq *scorePQ) Push(x interface{}) {
	item := x.(*pqItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

// Pop removes the last element; called by heap.Pop.
func (pq *scorePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]

	return item
}

// frontier wraps scorePQ with an insertion counter.
type frontier struct {
	pq  scorePQ
	seq int
}

func newFrontier(capacity int) *frontier {
	f := &frontier{pq: make(scorePQ, 0, capacity)}
	heap.Init(&f.pq)
	return f
}

func (f *frontier) Len() int { return f.pq.Len() }

// push inserts cell with score and returns its handle.
func (f *frontier) push(cell, score int) *pqItem {
	it := &pqItem{cell: cell, score: score, seq: f.seq}
	f.seq++
	heap.Push(&f.pq, it)
	return it
}

// pop removes and returns the lowest-scored item.
func (f *frontier) pop() *pqItem {
	return heap.Pop(&f.pq).(*pqItem)
}

// update lowers the score of an item still in the heap. The insertion
// sequence is kept, so ties still favor the earliest insertion.
func (f *frontier) update(it *pqItem, score int) error {
	if it.index < 0 || it.index >= len(f.pq) || f.pq[it.index] != it {
		return fmt.Errorf("%w: cell %d not in heap", ErrCorruptFrontier, it.cell)
	}
	it.score = score
	heap.Fix(&f.pq, it.index)
	return nil
}
