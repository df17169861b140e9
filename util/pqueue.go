package util

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

//*******************************************
// priority queue
//*******************************************

type pq_entry[T any, P constraints.Ordered] struct {
	item     T
	priority P
}

type pq_heap[T any, P constraints.Ordered] []pq_entry[T, P]

func (self pq_heap[T, P]) Len() int { return len(self) }

func (self pq_heap[T, P]) Less(i, j int) bool {
	return self[i].priority < self[j].priority
}

func (self pq_heap[T, P]) Swap(i, j int) {
	self[i], self[j] = self[j], self[i]
}

func (self *pq_heap[T, P]) Push(x any) {
	*self = append(*self, x.(pq_entry[T, P]))
}

func (self *pq_heap[T, P]) Pop() any {
	old := *self
	n := len(old)
	item := old[n-1]
	*self = old[:n-1]
	return item
}

// Minimum priority queue without decrease-key.
//
// Duplicate entries for the same item are allowed, stale entries have to be
// filtered by the consumer on dequeue.
type PriorityQueue[T any, P constraints.Ordered] struct {
	entries *pq_heap[T, P]
}

func NewPriorityQueue[T any, P constraints.Ordered](cap int) PriorityQueue[T, P] {
	entries := make(pq_heap[T, P], 0, cap)
	return PriorityQueue[T, P]{
		entries: &entries,
	}
}

func (self *PriorityQueue[T, P]) Enqueue(item T, priority P) {
	heap.Push(self.entries, pq_entry[T, P]{item: item, priority: priority})
}

func (self *PriorityQueue[T, P]) Dequeue() (T, bool) {
	if self.entries.Len() == 0 {
		var t T
		return t, false
	}
	entry := heap.Pop(self.entries).(pq_entry[T, P])
	return entry.item, true
}

func (self *PriorityQueue[T, P]) Len() int {
	return self.entries.Len()
}
