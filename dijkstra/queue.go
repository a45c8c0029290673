// SPDX-License-Identifier: MIT

package dijkstra

// PriorityQueue holds PathItems and always pops the one with the smallest
// current TotalCost.
//
// The algorithm lowers TotalCost on items that are already enqueued without
// telling the queue, so a heap would go stale. Pop therefore re-derives the
// minimum with a linear scan over the held items: O(n) per Pop, O(V²) per
// query. Ties go to the item enqueued first.
type PriorityQueue struct {
	items []*PathItem
}

// NewPriorityQueue returns an empty queue with room for capacity items.
func NewPriorityQueue(capacity int) *PriorityQueue {
	if capacity < 0 {
		capacity = 0
	}

	return &PriorityQueue{items: make([]*PathItem, 0, capacity)}
}

// Enqueue adds item to the working set.
func (pq *PriorityQueue) Enqueue(item *PathItem) {
	pq.items = append(pq.items, item)
}

// Len returns the number of items still held.
func (pq *PriorityQueue) Len() int { return len(pq.items) }

// Pop removes and returns the item with the minimum current TotalCost.
// Returns ErrQueueEmpty if nothing is held.
func (pq *PriorityQueue) Pop() (*PathItem, error) {
	if len(pq.items) == 0 {
		return nil, ErrQueueEmpty
	}

	best := 0
	for i := 1; i < len(pq.items); i++ {
		// strict < keeps the earliest-enqueued item on ties
		if pq.items[i].TotalCost < pq.items[best].TotalCost {
			best = i
		}
	}

	item := pq.items[best]
	// remove while preserving insertion order for later tie-breaks
	copy(pq.items[best:], pq.items[best+1:])
	pq.items[len(pq.items)-1] = nil
	pq.items = pq.items[:len(pq.items)-1]

	return item, nil
}
