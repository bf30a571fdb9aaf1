package dheap

import (
	"cmp"
	"reflect"
)

// Heap is a d-ary min-heap of comparable elements.
type Heap[T comparable] struct {
	items  []T // backing storage; only items[:length] is live
	length int
	arity  int
	less   func(a, b T) bool
}

// New returns an empty heap ordered by less.
// less must describe a strict weak ordering; ties pop in unspecified order.
//
// Complexity: O(capacity).
func New[T comparable](less func(a, b T) bool, opts ...Option) *Heap[T] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Capacity < 1 {
		cfg.Capacity = defaultCapacity
	}

	return &Heap[T]{
		items: make([]T, cfg.Capacity),
		arity: cfg.Arity,
		less:  less,
	}
}

// NewOrdered returns an empty heap ordered by the natural < of T.
func NewOrdered[T cmp.Ordered](opts ...Option) *Heap[T] {
	return New(cmp.Less[T], opts...)
}

// Len returns the number of elements. O(1).
func (h *Heap[T]) Len() int { return h.length }

// IsEmpty reports whether the heap holds no elements. O(1).
func (h *Heap[T]) IsEmpty() bool { return h.length == 0 }

// Arity returns the configured branching factor.
func (h *Heap[T]) Arity() int { return h.arity }

// Insert adds item to the heap.
//
// Errors: ErrNilItem if item is a nil pointer, interface, channel or func value.
// Complexity: O(log_d n) amortized.
func (h *Heap[T]) Insert(item T) error {
	if isNil(item) {
		return ErrNilItem
	}
	if h.length == len(h.items) {
		h.grow()
	}
	h.items[h.length] = item
	h.length++
	h.siftUp(h.length - 1)

	return nil
}

// PeekMin returns the minimum element without removing it.
//
// Errors: ErrEmpty on an empty heap.
func (h *Heap[T]) PeekMin() (T, error) {
	if h.length == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return h.items[0], nil
}

// RemoveMin removes and returns the minimum element.
//
// Errors: ErrEmpty on an empty heap.
// Complexity: O(d·log_d n).
func (h *Heap[T]) RemoveMin() (T, error) {
	if h.length == 0 {
		var zero T
		return zero, ErrEmpty
	}
	top := h.items[0]
	h.removeAt(0)

	return top, nil
}

// Remove deletes the first occurrence of item found by a linear scan.
//
// Errors: ErrUnknownElement if item is not in the heap.
// Complexity: O(n) scan + O(d·log_d n) repair.
func (h *Heap[T]) Remove(item T) error {
	i := h.indexOf(item)
	if i < 0 {
		return ErrUnknownElement
	}
	h.removeAt(i)

	return nil
}

// Contains reports whether item is in the heap. O(n).
func (h *Heap[T]) Contains(item T) bool {
	return h.indexOf(item) >= 0
}

func (h *Heap[T]) indexOf(item T) int {
	for i := 0; i < h.length; i++ {
		if h.items[i] == item {
			return i
		}
	}

	return -1
}

// removeAt refills slot i with the last element and restores heap order.
func (h *Heap[T]) removeAt(i int) {
	last := h.length - 1
	h.items[i] = h.items[last]
	var zero T
	h.items[last] = zero // drop the reference for the GC
	h.length--
	if i == h.length {
		return
	}
	// The moved element may belong above or below slot i.
	if !h.siftDown(i) {
		h.siftUp(i)
	}
}

// siftUp moves the element at i toward the root while it is strictly less than its parent.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / h.arity
		if !h.less(h.items[i], h.items[p]) {
			break
		}
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

// siftDown moves the element at i0 down while it is greater than its smallest child.
// Reports whether the element moved.
func (h *Heap[T]) siftDown(i0 int) bool {
	i := i0
	for {
		first := h.arity*i + 1
		if first >= h.length {
			break
		}
		// Pick the smallest of up to arity children.
		m := first
		end := first + h.arity
		if end > h.length {
			end = h.length
		}
		for c := first + 1; c < end; c++ {
			if h.less(h.items[c], h.items[m]) {
				m = c
			}
		}
		if !h.less(h.items[m], h.items[i]) {
			break
		}
		h.items[i], h.items[m] = h.items[m], h.items[i]
		i = m
	}

	return i > i0
}

// grow doubles the backing slice.
func (h *Heap[T]) grow() {
	next := make([]T, 2*len(h.items))
	copy(next, h.items[:h.length])
	h.items = next
}

// isNil reports whether v holds a nil pointer-like value.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Func, reflect.Map, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
