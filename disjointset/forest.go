package disjointset

import "fmt"

// Forest is a disjoint-set forest over comparable elements.
// The zero value is not usable; construct with New.
type Forest[T comparable] struct {
	index    map[T]int // element → slot in pointers
	pointers []int     // parent index, or -(rank+1) for roots
	size     int       // number of registered elements (used prefix of pointers)
	sets     int       // number of components
}

// New returns an empty Forest.
//
// Complexity: O(capacity).
func New[T comparable](opts ...Option) *Forest[T] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Capacity < 1 {
		cfg.Capacity = defaultCapacity
	}

	return &Forest[T]{
		index:    make(map[T]int, cfg.Capacity),
		pointers: make([]int, cfg.Capacity),
	}
}

// MakeSet registers item as a new singleton component of rank 0.
//
// Errors: ErrDuplicateElement if item is already registered.
// Complexity: O(1) amortized.
func (f *Forest[T]) MakeSet(item T) error {
	if _, ok := f.index[item]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateElement, item)
	}
	// Grow by doubling; existing indexes (and so representative ids) keep their slots.
	if f.size == len(f.pointers) {
		f.grow()
	}
	f.index[item] = f.size
	f.pointers[f.size] = -1
	f.size++
	f.sets++

	return nil
}

// FindSet returns the representative id of the component containing item.
// Every node on the walk is re-pointed directly at the root.
//
// Errors: ErrUnknownElement if item was never registered.
// Complexity: O(α(n)) amortized.
func (f *Forest[T]) FindSet(item T) (int, error) {
	i, ok := f.index[item]
	if !ok {
		return -1, fmt.Errorf("%w: %v", ErrUnknownElement, item)
	}

	return f.root(i), nil
}

// Union merges the components of a and b. The root of lower rank is attached
// under the root of higher rank; on a tie, a's root survives and its rank grows by one.
//
// Errors:
//   - ErrUnknownElement if either element is unregistered.
//   - ErrAlreadyUnioned if both already resolve to the same root (the forest is untouched).
//
// Complexity: O(α(n)) amortized.
func (f *Forest[T]) Union(a, b T) error {
	ra, err := f.FindSet(a)
	if err != nil {
		return err
	}
	rb, err := f.FindSet(b)
	if err != nil {
		return err
	}
	if ra == rb {
		return fmt.Errorf("%w: %v and %v", ErrAlreadyUnioned, a, b)
	}

	// Roots hold -(rank+1): the more negative slot is the taller tree.
	switch {
	case f.pointers[ra] > f.pointers[rb]:
		f.pointers[ra] = rb
	case f.pointers[ra] < f.pointers[rb]:
		f.pointers[rb] = ra
	default:
		f.pointers[rb] = ra
		f.pointers[ra]--
	}
	f.sets--

	return nil
}

// Connected reports whether a and b belong to the same component.
//
// Errors: ErrUnknownElement if either element is unregistered.
func (f *Forest[T]) Connected(a, b T) (bool, error) {
	ra, err := f.FindSet(a)
	if err != nil {
		return false, err
	}
	rb, err := f.FindSet(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

// Contains reports whether item has been registered.
func (f *Forest[T]) Contains(item T) bool {
	_, ok := f.index[item]
	return ok
}

// Len returns the number of registered elements.
func (f *Forest[T]) Len() int { return f.size }

// Count returns the number of disjoint components.
func (f *Forest[T]) Count() int { return f.sets }

// Rank returns the rank of the root of item's component.
//
// Errors: ErrUnknownElement if item was never registered.
func (f *Forest[T]) Rank(item T) (int, error) {
	r, err := f.FindSet(item)
	if err != nil {
		return 0, err
	}

	return -f.pointers[r] - 1, nil
}

// root walks from slot i to its root, then compresses the walked path.
// Iterative on purpose: chains can be long before rank balancing kicks in.
func (f *Forest[T]) root(i int) int {
	// 1) Locate the root.
	r := i
	for f.pointers[r] >= 0 {
		r = f.pointers[r]
	}

	// 2) Re-point every node on the path straight at r.
	for f.pointers[i] >= 0 && f.pointers[i] != r {
		next := f.pointers[i]
		f.pointers[i] = r
		i = next
	}

	return r
}

// grow doubles the backing slice.
func (f *Forest[T]) grow() {
	next := make([]int, 2*len(f.pointers))
	copy(next, f.pointers[:f.size])
	f.pointers = next
}
