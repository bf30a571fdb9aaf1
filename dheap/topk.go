package dheap

import "fmt"

// TopK returns the k largest items under less, in ascending order.
// When k ≥ len(items) every item is returned, sorted. items is not modified.
//
// Steps:
//  1. Keep a min-heap holding at most k items.
//  2. For each item: insert it; if the heap grew past k, drop its minimum.
//  3. Drain the heap; minima come out first, so the result is ascending.
//
// Errors:
//   - ErrInvalidArgument (wrapped) if k < 0.
//   - ErrNilItem if an item is a nil pointer, map, slice, func, chan or interface.
//
// Complexity: O(n log k) time, O(k) extra memory.
func TopK[T comparable](k int, items []T, less func(a, b T) bool) ([]T, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: k=%d", ErrInvalidArgument, k)
	}
	k = min(k, len(items))
	if k == 0 {
		return []T{}, nil
	}

	// 1–2) Bounded heap of the current top k.
	h := New(less, WithCapacity(k+1))
	for _, it := range items {
		if err := h.Insert(it); err != nil {
			return nil, err
		}
		if h.Len() > k {
			_, _ = h.RemoveMin() // Len() > k ≥ 1, never empty
		}
	}

	// 3) Ascending drain.
	out := make([]T, 0, k)
	for !h.IsEmpty() {
		it, _ := h.RemoveMin()
		out = append(out, it)
	}

	return out, nil
}
