package regression_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/arloliu/wehnelt/errs"
	"github.com/arloliu/wehnelt/regression"
)

// ExampleFitLinear fits an unweighted line and reports the standard errors.
func ExampleFitLinear() {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 5, 4, 5}

	fit, err := regression.FitLinear(x, y)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("m = %.3f ± %.3f\n", fit.Slope, fit.SlopeErr)
	fmt.Printf("c = %.3f ± %.3f\n", fit.Intercept, fit.InterceptErr)
	fmt.Printf("R² = %.3f\n", fit.RSquared)

	// Output:
	// m = 0.600 ± 0.283
	// c = 2.200 ± 0.938
	// R² = 0.600
}

// ExampleFitWeighted fits a weighted line with unit uncertainties.
func ExampleFitWeighted() {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 5, 4, 5}
	sigma := regression.FixedError{Value: 1}.Errors(x, y)

	fit, err := regression.FitWeighted(x, y, sigma)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("m = %.3f ± %.3f (95%% CI ± %.3f)\n", fit.Slope, fit.SlopeErr, fit.SlopeCI)
	fmt.Printf("chi2 = %.3f, chi2_red = %.3f, dof = %d\n", fit.Chi2, fit.Chi2Red, fit.DOF)

	// Output:
	// m = 0.600 ± 0.316 (95% CI ± 1.006)
	// chi2 = 2.400, chi2_red = 0.800, dof = 3
}

// ExampleFitWeighted_twoPoints shows that a two-point fit keeps its parameters
// while the statistics are degenerate.
func ExampleFitWeighted_twoPoints() {
	fit, err := regression.FitWeighted([]float64{1, 3}, []float64{5, 11}, []float64{1, 1})
	if !errors.Is(err, errs.ErrDegenerateFit) {
		log.Fatal(err)
	}

	fmt.Printf("m = %.1f, c = %.1f, dof = %d\n", fit.Slope, fit.Intercept, fit.DOF)

	// Output:
	// m = 3.0, c = 2.0, dof = 0
}
