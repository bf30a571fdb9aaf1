// Package disjointset provides a generic disjoint-set forest (union-find)
// with union by rank and path compression.
//
// What & Why
//
//   - A Forest partitions registered elements into disjoint components.
//   - FindSet returns a stable integer representative for the component of an element.
//   - Union merges two components; it refuses to merge a component with itself.
//   - Kruskal's algorithm uses it to reject cycle-closing edges in near-constant time.
//
// Representation
//
//	Every element is mapped to an index in a growable backing slice ("pointers").
//	  pointers[i] <  0  →  i is a root; its rank is -pointers[i]-1.
//	  pointers[i] >= 0  →  pointers[i] is the parent index of i.
//	A fresh singleton therefore stores -1 (root, rank 0).
//
// Complexity
//
//   - MakeSet: O(1) amortized (backing slice doubles when full).
//   - FindSet, Union: O(α(n)) amortized thanks to rank + compression.
//   - Space: O(n).
//
// Errors
//
//   - ErrDuplicateElement: MakeSet on an element that is already registered.
//   - ErrUnknownElement:   FindSet/Union on an element never registered.
//   - ErrAlreadyUnioned:   Union of two elements that already share a root.
//
// Concurrency: a Forest is not safe for concurrent use; callers synchronize externally.
package disjointset
