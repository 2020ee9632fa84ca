package matching

import (
	"container/heap"
	"container/list"

	"crossengine/internal/price"
)

// levelEntry wraps a price level for heap storage, tracking its own heap
// index so removal (heap.Remove) is O(log n). This generalizes the
// teacher's orderEntry/index idiom one layer up: the heap here orders
// price *levels*, not individual orders.
type levelEntry struct {
	price price.Price
	lvl   *level
	index int
}

// levelHeap is a container/heap.Interface over price levels. Ordering is
// parameterized by side: for Bid, higher price sorts first (best bid is
// the highest price); for Ask, lower price sorts first (best ask is the
// lowest price).
type levelHeap struct {
	entries []*levelEntry
	side    Side
}

func (h levelHeap) Len() int { return len(h.entries) }

func (h levelHeap) Less(i, j int) bool {
	a, b := h.entries[i], h.entries[j]
	if h.side == Bid {
		return a.price > b.price
	}
	return a.price < b.price
}

func (h levelHeap) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.entries[i].index = i
	h.entries[j].index = j
}

func (h *levelHeap) Push(x any) {
	e := x.(*levelEntry)
	e.index = len(h.entries)
	h.entries = append(h.entries, e)
}

func (h *levelHeap) Pop() any {
	old := h.entries
	n := len(old)
	e := old[n-1]
	e.index = -1
	h.entries = old[:n-1]
	return e
}

// SideBook is a price-ordered map from price to price level, for one side
// of one symbol's book. best() is O(log n) via the root of levelHeap;
// empty levels are pruned eagerly so best() never returns a stale level.
type SideBook struct {
	side    Side
	heap    levelHeap
	byPrice map[price.Price]*levelEntry
}

func newSideBook(side Side) *SideBook {
	return &SideBook{
		side:    side,
		heap:    levelHeap{side: side},
		byPrice: make(map[price.Price]*levelEntry),
	}
}

// insert appends order to its price level, creating the level if needed,
// and returns the intrusive handle used for O(1) removal.
func (sb *SideBook) insert(o *Order) *list.Element {
	entry, ok := sb.byPrice[o.Price]
	if !ok {
		entry = &levelEntry{price: o.Price, lvl: newLevel()}
		sb.byPrice[o.Price] = entry
		heap.Push(&sb.heap, entry)
	}
	return entry.lvl.pushBack(o)
}

// best returns the price and level at the top of book (best first), or
// false if the side is empty.
func (sb *SideBook) best() (price.Price, *level, bool) {
	if sb.heap.Len() == 0 {
		return 0, nil, false
	}
	top := sb.heap.entries[0]
	return top.price, top.lvl, true
}

// removeLevelIfEmpty prunes the level at p if it has no resting orders.
func (sb *SideBook) removeLevelIfEmpty(p price.Price) {
	entry, ok := sb.byPrice[p]
	if !ok || !entry.lvl.isEmpty() {
		return
	}
	heap.Remove(&sb.heap, entry.index)
	delete(sb.byPrice, p)
}

// remove deletes the order referenced by handle from the level at p,
// pruning the level if it becomes empty.
func (sb *SideBook) remove(p price.Price, handle *list.Element) {
	entry, ok := sb.byPrice[p]
	if !ok {
		return
	}
	entry.lvl.remove(handle)
	sb.removeLevelIfEmpty(p)
}

// isEmpty reports whether the side has no resting orders at all.
func (sb *SideBook) isEmpty() bool {
	return sb.heap.Len() == 0
}

// levelsDescending returns every live level sorted by price descending,
// independent of side: printing the book lists the ask side from its
// worst (highest) price down to its best (lowest), and the bid side from
// its best (highest) down to its worst (lowest) — both descending, so a
// single sort serves both sides. Used only by Snapshot; reading the book
// is not a hot path, so a plain insertion sort is fine here.
func (sb *SideBook) levelsDescending() []*levelEntry {
	out := make([]*levelEntry, len(sb.heap.entries))
	copy(out, sb.heap.entries)
	insertionSort(out, func(i, j int) bool { return out[i].price > out[j].price })
	return out
}

func insertionSort(s []*levelEntry, less func(i, j int) bool) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && less(j, j-1); j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
