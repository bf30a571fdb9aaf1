package disjointset

import "errors"

// Sentinel errors returned by Forest operations.
var (
	// ErrDuplicateElement indicates MakeSet was called for an already registered element.
	ErrDuplicateElement = errors.New("disjointset: element already registered")

	// ErrUnknownElement indicates an operation referenced an element never passed to MakeSet.
	ErrUnknownElement = errors.New("disjointset: element not registered")

	// ErrAlreadyUnioned indicates both elements of a Union already belong to the same component.
	ErrAlreadyUnioned = errors.New("disjointset: elements already in the same set")
)

// defaultCapacity is the initial backing size of a Forest.
const defaultCapacity = 10

// Options configures a Forest before construction.
type Options struct {
	// Capacity is the initial length of the backing slice. Values < 1 fall back to the default.
	Capacity int
}

// Option mutates Options.
type Option func(*Options)

// WithCapacity pre-sizes the backing slice when the number of elements is known upfront.
func WithCapacity(n int) Option {
	return func(o *Options) {
		o.Capacity = n
	}
}

// DefaultOptions returns Options with Capacity = 10.
func DefaultOptions() Options {
	return Options{Capacity: defaultCapacity}
}
