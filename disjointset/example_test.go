package disjointset_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/disjointset"
)

// ExampleForest tracks two merged pairs among five elements.
func ExampleForest() {
	f := disjointset.New[int]()
	for i := 1; i <= 5; i++ {
		_ = f.MakeSet(i)
	}
	_ = f.Union(1, 2)
	_ = f.Union(3, 4)

	same12, _ := f.Connected(1, 2)
	same15, _ := f.Connected(1, 5)
	fmt.Println(same12, same15, f.Count())

	err := f.Union(2, 1)
	fmt.Println(errors.Is(err, disjointset.ErrAlreadyUnioned))
	// Output:
	// true false 3
	// true
}
