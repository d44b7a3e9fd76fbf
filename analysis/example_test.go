package analysis_test

import (
	"fmt"
	"log"

	"github.com/arloliu/wehnelt/analysis"
	"github.com/arloliu/wehnelt/measurement"
	"github.com/arloliu/wehnelt/physics"
)

// ExampleRun analyzes the built-in dataset and prints the d-spacing of every
// ring order from its unweighted slope.
func ExampleRun() {
	table, err := measurement.Default()
	if err != nil {
		log.Fatal(err)
	}

	res, err := analysis.Run(table, physics.Default())
	if err != nil {
		log.Fatal(err)
	}

	for _, g := range res.Groups {
		fmt.Printf("d_%d = %.3e\n", g.N, g.DSpacing.D)
	}

	// Output:
	// d_1 = 2.154e-10
	// d_2 = 1.248e-10
}
