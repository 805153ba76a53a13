package momentum

import "container/heap"

// entry is one pending Frontier item. parent is the state it was reached
// from; seeds have root set and no parent.
type entry struct {
	cost   int64
	node   Node
	parent Node
	root   bool
}

// frontier is a min-heap of entries ordered by accumulated cost. Ties are
// broken arbitrarily. A Node may be present several times at different costs;
// the Ledger filters the superseded copies when they are popped.
type frontier struct {
	items entryHeap
}

func newFrontier(capacity int) *frontier {
	f := &frontier{items: make(entryHeap, 0, capacity)}
	heap.Init(&f.items)

	return f
}

// Len returns the number of pending entries, stale ones included.
func (f *frontier) Len() int { return f.items.Len() }

// Push adds an entry.
func (f *frontier) Push(e entry) { heap.Push(&f.items, e) }

// PopMin removes and returns the cheapest entry, or false if the frontier is empty.
func (f *frontier) PopMin() (entry, bool) {
	if f.items.Len() == 0 {
		return entry{}, false
	}

	return heap.Pop(&f.items).(entry), true
}

// entryHeap implements heap.Interface over entry values.
type entryHeap []entry

func (h entryHeap) Len() int           { return len(h) }
func (h entryHeap) Less(i, j int) bool { return h[i].cost < h[j].cost }
func (h entryHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be an entry.
func (h *entryHeap) Push(x any) { *h = append(*h, x.(entry)) }

// Pop is called by heap.Pop.
func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}
