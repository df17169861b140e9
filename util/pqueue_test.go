package util

import (
	"math/rand"
	"sort"
	"testing"
)

func TestPriorityQueueOrder(t *testing.T) {
	queue := NewPriorityQueue[int, float64](10)

	priorities := make([]float64, 100)
	for i := range priorities {
		priorities[i] = rand.Float64() * 1000
		queue.Enqueue(i, priorities[i])
	}

	sorted := append([]float64{}, priorities...)
	sort.Float64s(sorted)

	for i := 0; i < len(priorities); i++ {
		item, ok := queue.Dequeue()
		if !ok {
			t.Fatalf("queue empty after %v items; want %v", i, len(priorities))
		}
		if priorities[item] != sorted[i] {
			t.Errorf("dequeued priority %v; want %v", priorities[item], sorted[i])
		}
	}
	if _, ok := queue.Dequeue(); ok {
		t.Errorf("queue not empty after draining")
	}
}

func TestPriorityQueueDuplicates(t *testing.T) {
	queue := NewPriorityQueue[string, int](4)
	queue.Enqueue("a", 10)
	queue.Enqueue("a", 3)
	queue.Enqueue("b", 5)

	if queue.Len() != 3 {
		t.Errorf("queue.Len() = %v; want 3", queue.Len())
	}
	item, _ := queue.Dequeue()
	if item != "a" {
		t.Errorf("first item = %v; want a", item)
	}
	item, _ = queue.Dequeue()
	if item != "b" {
		t.Errorf("second item = %v; want b", item)
	}
	item, _ = queue.Dequeue()
	if item != "a" {
		t.Errorf("third item = %v; want a", item)
	}
}
