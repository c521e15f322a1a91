package evaluate

import (
	"container/heap"
	"slices"

	"github.com/cory-johannsen/gearopt/internal/game/character"
)

// better reports whether a ranks ahead of b: higher score first, then the
// lower combination id so ties resolve the same way on every run.
func better(a, b *character.Character) bool {
	sa, sb := a.Score(), b.Score()
	if sa != sb {
		return sa > sb
	}
	return a.CombinationID < b.CombinationID
}

// worstFirst is a min-heap of candidates; the root is the weakest kept value.
type worstFirst []character.Character

func (h worstFirst) Len() int           { return len(h) }
func (h worstFirst) Less(i, j int) bool { return better(&h[j], &h[i]) }
func (h worstFirst) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

// Push and Pop satisfy heap.Interface; TopK grows the slice itself and only
// calls heap.Fix so the hot path does not box candidates.
func (h *worstFirst) Push(x any) { *h = append(*h, x.(character.Character)) }
func (h *worstFirst) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// TopK keeps copies of the best k candidates offered to it.
//
// Invariant: Len() <= k. TopK is not safe for concurrent use; give each
// worker its own and Merge them afterwards.
type TopK struct {
	k    int
	heap worstFirst
}

// NewTopK returns an empty keeper for at most k candidates.
//
// Precondition: k >= 1.
func NewTopK(k int) *TopK {
	return &TopK{k: k, heap: make(worstFirst, 0, k)}
}

// Len returns the number of kept candidates.
func (t *TopK) Len() int { return len(t.heap) }

// Offer copies c into the keeper if it ranks among the best k seen so far.
//
// Postcondition: Returns true if c was kept.
func (t *TopK) Offer(c *character.Character) bool {
	if len(t.heap) < t.k {
		t.heap = append(t.heap, *c)
		heap.Fix(&t.heap, len(t.heap)-1)
		return true
	}
	if !better(c, &t.heap[0]) {
		return false
	}
	t.heap[0] = *c
	heap.Fix(&t.heap, 0)
	return true
}

// Merge offers every candidate kept by other.
func (t *TopK) Merge(other *TopK) {
	for i := range other.heap {
		t.Offer(&other.heap[i])
	}
}

// Sorted returns the kept candidates best first. The keeper is unchanged.
func (t *TopK) Sorted() []character.Character {
	out := slices.Clone(t.heap)
	slices.SortFunc(out, func(a, b character.Character) int {
		switch {
		case better(&a, &b):
			return -1
		case better(&b, &a):
			return 1
		}
		return 0
	})
	return out
}
