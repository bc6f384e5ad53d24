package search

import "github.com/vilnius-transit/routesearch/model"

// heapItem is a candidate arrival at a stop, not yet settled.
type heapItem struct {
	arrival   model.Timestamp
	transfers uint64
	stop      int
	parent    int // -1 if seeded directly from the origin
	segment   model.Segment
}

// costKey realizes "earlier is better, but each additional transfer
// costs a fixed time penalty": it projects the arrival time forward by
// transfers*penalty seconds before the cyclic comparison is applied.
func costKey(item heapItem, penaltySeconds uint64) model.Timestamp {
	return item.arrival.Offset(item.transfers * penaltySeconds)
}

// frontier is a priority queue of heapItem ordered by cost key, cheapest
// first, relative to a fixed reference departure. It implements
// container/heap.Interface.
type frontier struct {
	items     []heapItem
	departure model.Timestamp
	penalty   uint64
}

func newFrontier(departure model.Timestamp, transferPenaltySeconds uint64) *frontier {
	return &frontier{departure: departure, penalty: transferPenaltySeconds}
}

func (f *frontier) Len() int { return len(f.items) }

func (f *frontier) Less(i, j int) bool {
	a := costKey(f.items[i], f.penalty)
	b := costKey(f.items[j], f.penalty)
	return a.CompareUsingDeparture(b, f.departure) == model.Less
}

func (f *frontier) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

func (f *frontier) Push(x any) { f.items = append(f.items, x.(heapItem)) }

func (f *frontier) Pop() any {
	n := len(f.items)
	item := f.items[n-1]
	f.items = f.items[:n-1]
	return item
}
