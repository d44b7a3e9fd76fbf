package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/wehnelt/errs"
)

// FitLinear fits y = m·x + c by unweighted ordinary least squares.
//
// The slope standard error is sqrt((1 − r²)·Syy / Sxx / (n − 2)) and the intercept
// standard error is slopeErr·sqrt(Σx²/n). With exactly 2 points the line passes
// through both and both standard errors are 0.
//
// Parameters:
//   - x: Abscissae
//   - y: Ordinates, paired with x
//
// Returns:
//   - *Fit: The fitted line and its statistics
//   - error: errs.ErrLengthMismatch for unpaired input, errs.ErrInsufficientData
//     for fewer than 2 points, fewer than 2 distinct x values or non-finite points
func FitLinear(x, y []float64) (*Fit, error) {
	if err := validatePairs(x, y); err != nil {
		return nil, err
	}
	if allEqual(x) {
		return nil, fmt.Errorf("%w: fewer than 2 distinct x values", errs.ErrInsufficientData)
	}

	n := len(x)
	intercept, slope := stat.LinearRegression(x, y, nil, false)

	xMean := stat.Mean(x, nil)
	yMean := stat.Mean(y, nil)
	var ssxm, ssym, sumX2 float64
	for i := range x {
		dx := x[i] - xMean
		dy := y[i] - yMean
		ssxm += dx * dx
		ssym += dy * dy
		sumX2 += x[i] * x[i]
	}

	r := 0.0
	if !allEqual(y) {
		r = math.Max(-1, math.Min(1, stat.Correlation(x, y, nil)))
	}

	fit := &Fit{
		Slope:     slope,
		Intercept: intercept,
		R:         r,
		N:         n,
	}

	if n > 2 {
		df := float64(n - 2)
		fit.SlopeErr = math.Sqrt(math.Max(0, 1-r*r) * ssym / ssxm / df)
		fit.InterceptErr = fit.SlopeErr * math.Sqrt(sumX2/float64(n))
	}

	predicted := predict(x, slope, intercept)
	fit.RSquared = math.NaN()
	if !allEqual(y) {
		fit.RSquared = r * r
	}
	fit.RMSE = rmse(y, predicted)

	return fit, nil
}
