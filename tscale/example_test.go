package tscale_test

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/recursiver/tscale"
)

// ExampleRateWithData shows the Fibonacci ratio approaching the golden ratio.
func ExampleRateWithData() {
	rates, err := tscale.RateWithData(50, []float64{0, 1}, []float64{1, 1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	var last float64
	for r := range rates {
		last = r
	}
	fmt.Printf("%.6f\n", last)
	// Output:
	// 1.618034
}

// ExampleState_Iter borrows a state, then keeps using it afterwards.
func ExampleState_Iter() {
	s := tscale.MustNewWithConfig([]int{0, 1}, []int{1, 1})

	g := s.Iter(tscale.WithSteps(5))
	fmt.Println(g.Collect())
	fmt.Println(s.Terms())
	// Output:
	// [0 1 1 2 3]
	// [5 8]
}

// ExampleState_IntoIter consumes a state; its buffers now live in the generator.
func ExampleState_IntoIter() {
	s := tscale.MustNewWithConfig([]int{3, 0, 2}, []int{0, 1, 1}) // Perrin: a(n) = a(n-2) + a(n-3)

	fmt.Println(slices.Collect(s.IntoIter().Take(8)))
	fmt.Println(s.Consumed())
	// Output:
	// [3 0 2 3 2 5 5 7]
	// true
}

// ExampleGenerator_Next pulls values one at a time.
func ExampleGenerator_Next() {
	g, _ := tscale.NewGenerator([]int{1}, []int{2}, tscale.WithSteps(3))
	for {
		v, ok := g.Next()
		if !ok {
			break
		}
		fmt.Println(v)
	}
	// Output:
	// 1
	// 2
	// 4
}
