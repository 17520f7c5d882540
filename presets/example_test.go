package presets_test

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/recursiver/presets"
	"github.com/katalvlaran/recursiver/tscale"
)

// ExampleByName builds a preset by name and draws a few terms.
func ExampleByName() {
	s, err := presets.ByName[int64]("pell")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(slices.Collect(s.IntoIter(tscale.WithSteps(7)).All()))
	// Output:
	// [0 1 2 5 12 29 70]
}

// ExampleNames lists the available presets.
func ExampleNames() {
	fmt.Println(presets.Names())
	// Output:
	// [fibonacci jacobsthal lucas padovan pell perrin tribonacci]
}
