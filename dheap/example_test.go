package dheap_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/dheap"
)

// ExampleHeap orders tasks by cost with a custom less function.
func ExampleHeap() {
	type task struct {
		name string
		cost float64
	}
	h := dheap.New(func(a, b task) bool { return a.cost < b.cost })
	_ = h.Insert(task{"paint", 3.5})
	_ = h.Insert(task{"sand", 1})
	_ = h.Insert(task{"prime", 2})

	for !h.IsEmpty() {
		t, _ := h.RemoveMin()
		fmt.Println(t.name)
	}
	// Output:
	// sand
	// prime
	// paint
}

// ExampleTopK keeps the three highest scores, lowest first.
func ExampleTopK() {
	scores := []int{42, 7, 99, 13, 64, 88}
	top, err := dheap.TopK(3, scores, func(a, b int) bool { return a < b })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(top)
	// Output: [64 88 99]
}
