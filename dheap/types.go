package dheap

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Heap operations.
var (
	// ErrInvalidArgument is the base error for rejected inputs.
	ErrInvalidArgument = errors.New("dheap: invalid argument")

	// ErrNilItem indicates Insert was called with a nil pointer or interface.
	ErrNilItem = fmt.Errorf("%w: nil item", ErrInvalidArgument)

	// ErrEmpty indicates PeekMin or RemoveMin on a heap with no elements.
	ErrEmpty = errors.New("dheap: heap is empty")

	// ErrUnknownElement indicates Remove was asked for an element the heap does not hold.
	ErrUnknownElement = errors.New("dheap: element not in heap")

	// ErrBadArity indicates a branching factor below 2.
	ErrBadArity = errors.New("dheap: arity must be at least 2")
)

const (
	// DefaultArity is the branching factor used when WithArity is not given.
	DefaultArity = 4

	// defaultCapacity is the initial backing length.
	defaultCapacity = 10
)

// Options configures a Heap.
//
// Arity    – children per node, ≥ 2.
// Capacity – initial backing length; values < 1 fall back to the default.
type Options struct {
	Arity    int
	Capacity int
}

// Option is a functional option for New and NewOrdered.
type Option func(*Options)

// WithArity sets the branching factor.
// Panics with ErrBadArity when d < 2 so misconfiguration surfaces at construction.
func WithArity(d int) Option {
	return func(o *Options) {
		if d < 2 {
			panic(ErrBadArity.Error())
		}
		o.Arity = d
	}
}

// WithCapacity sets the initial backing length.
func WithCapacity(n int) Option {
	return func(o *Options) {
		o.Capacity = n
	}
}

// DefaultOptions returns Arity = 4, Capacity = 10.
func DefaultOptions() Options {
	return Options{
		Arity:    DefaultArity,
		Capacity: defaultCapacity,
	}
}
