package huffman

import (
	"container/heap"
)

// queueItem is an entry of nodeQueue: a reference into the tree arena, the
// node's weight, and the order in which it was inserted.
type queueItem struct {
	index  int32
	weight uint64
	seq    uint32
}

// nodeQueue is a min-heap of tree nodes ordered by ascending weight.  Nodes
// of equal weight come out in insertion order.
type nodeQueue struct {
	list    []queueItem
	nextSeq uint32
}

func newNodeQueue(capacity int) *nodeQueue {
	return &nodeQueue{list: make([]queueItem, 0, capacity)}
}

func (q *nodeQueue) insert(index int32, weight uint64) {
	heap.Push(q, queueItem{index: index, weight: weight, seq: q.nextSeq})
	q.nextSeq++
}

func (q *nodeQueue) extractMin() (queueItem, error) {
	if len(q.list) == 0 {
		return queueItem{}, ErrEmptyContainer
	}
	return heap.Pop(q).(queueItem), nil
}

func (q *nodeQueue) peekMin() (queueItem, error) {
	if len(q.list) == 0 {
		return queueItem{}, ErrEmptyContainer
	}
	return q.list[0], nil
}

// heap.Interface {{{

func (q *nodeQueue) Len() int {
	return len(q.list)
}

func (q *nodeQueue) Swap(i, j int) {
	q.list[i], q.list[j] = q.list[j], q.list[i]
}

func (q *nodeQueue) Less(i, j int) bool {
	a, b := q.list[i], q.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.seq < b.seq
}

func (q *nodeQueue) Push(x interface{}) {
	q.list = append(q.list, x.(queueItem))
}

func (q *nodeQueue) Pop() interface{} {
	last := uint(len(q.list)) - 1
	x := q.list[last]
	q.list = q.list[:last]
	return x
}

var _ heap.Interface = (*nodeQueue)(nil)

// }}}
