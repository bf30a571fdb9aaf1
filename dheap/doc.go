// Package dheap implements a generic d-ary min-heap (priority queue) backed by
// an explicitly grown slice.
//
// Each node has up to Arity children (default 4, minimum 2):
//
//	parent(i)  = (i-1) / d
//	child(i,k) = d*i + k + 1,  k ∈ [0, d)
//
// Operations:
//
//	Insert(x)     – append at the end and sift up while x is strictly less than its parent. O(log_d n)
//	PeekMin()     – return the root without removing it.                                 O(1)
//	RemoveMin()   – move the last element to the root and sift down, swapping with the
//	                smallest of up to d children while the moved element is greater.    O(d·log_d n)
//	Remove(x)     – linear scan for x, refill its slot with the last element, then
//	                sift that element up or down as needed.                              O(n)
//	Len/IsEmpty   –                                                                      O(1)
//
// TopK(k, items, less) uses a heap bounded at k elements to return the k largest
// items in ascending order, in O(n·log k), without touching items.
//
// Ordering is supplied as a less function (New) or taken from cmp.Ordered (NewOrdered).
// Element identity for Remove/Contains uses ==, so T must be comparable.
//
// Errors:
//
//	ErrInvalidArgument – base for rejected inputs (nil items, TopK with k < 0); ErrNilItem wraps it.
//	ErrEmpty           – PeekMin/RemoveMin on an empty heap.
//	ErrUnknownElement  – Remove of an element that is not in the heap.
//	ErrBadArity        – WithArity(d) with d < 2 (panics, see WithArity).
//
// A Heap is not safe for concurrent use.
package dheap
