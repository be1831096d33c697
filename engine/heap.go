package engine

import (
	"container/heap"

	"mandelcore/mrect"
)

// heapItem is one pending region, scored by squared distance to the
// current focus point. seq breaks ties in insertion order so the
// scheduler behaves deterministically for equally-distant regions.
type heapItem struct {
	region   mrect.RectRegion
	priority int64
	seq      int
}

type priorityQueue []*heapItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}

func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(*heapItem))
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

// regionHeap is the dirty-region work queue: every pending RectRegion
// ordered by proximity to a focus pixel, nearest first, so an
// interactive zoom or click refines visible detail before anything
// off-screen.
type regionHeap struct {
	pq    priorityQueue
	focus mrect.Point
	next  int
}

func newRegionHeap() *regionHeap {
	rh := &regionHeap{pq: make(priorityQueue, 0)}
	heap.Init(&rh.pq)
	return rh
}

// SetFocus changes the point future Push priorities are measured
// against. It does not reprioritize items already queued.
func (rh *regionHeap) SetFocus(p mrect.Point) {
	rh.focus = p
}

// Push enqueues region, scored against the current focus.
func (rh *regionHeap) Push(region mrect.RectRegion) {
	item := &heapItem{
		region:   region,
		priority: region.SquaredDistanceTo(rh.focus.X, rh.focus.Y),
		seq:      rh.next,
	}
	rh.next++
	heap.Push(&rh.pq, item)
}

// Pop removes and returns the nearest-to-focus region.
func (rh *regionHeap) Pop() (mrect.RectRegion, bool) {
	if rh.pq.Len() == 0 {
		return mrect.RectRegion{}, false
	}
	item := heap.Pop(&rh.pq).(*heapItem)
	return item.region, true
}

func (rh *regionHeap) Len() int { return rh.pq.Len() }

// Clear drops every queued region.
func (rh *regionHeap) Clear() {
	rh.pq = rh.pq[:0]
}

// ShiftAndReprioritize translates every queued region by (dx, dy) —
// the same shift the image buffer's Pan received, so regions still
// waiting to compute track the same complex-plane location — and
// rescores them against the new focus.
func (rh *regionHeap) ShiftAndReprioritize(dx, dy int32, focus mrect.Point) {
	rh.focus = focus
	for _, item := range rh.pq {
		item.region.X0 += dx
		item.region.Y0 += dy
		item.priority = item.region.SquaredDistanceTo(focus.X, focus.Y)
	}
	heap.Init(&rh.pq)
}

// Regions returns every queued region in heap-pop order, for tests
// and fingerprinting; it does not mutate the queue.
func (rh *regionHeap) Regions() []mrect.RectRegion {
	cp := make(priorityQueue, len(rh.pq))
	copy(cp, rh.pq)
	heap.Init(&cp)
	out := make([]mrect.RectRegion, 0, len(cp))
	for cp.Len() > 0 {
		item := heap.Pop(&cp).(*heapItem)
		out = append(out, item.region)
	}
	return out
}
