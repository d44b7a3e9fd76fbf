package regression

import (
	"fmt"
	"math"

	"github.com/arloliu/wehnelt/errs"
)

// validatePairs checks that x and y are paired, finite and hold at least 2 points.
func validatePairs(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: x has %d values, y has %d", errs.ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return fmt.Errorf("%w: need at least 2 points, got %d", errs.ErrInsufficientData, len(x))
	}
	for i := range x {
		if !isFinite(x[i]) || !isFinite(y[i]) {
			return fmt.Errorf("%w: point %d is not finite (x=%g, y=%g)", errs.ErrInsufficientData, i, x[i], y[i])
		}
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// allEqual reports whether every value equals the first.
func allEqual(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}

	return true
}

// rSquared returns 1 − SS_res/SS_tot, or NaN when every observed value is identical.
func rSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 || allEqual(observed) {
		return math.NaN()
	}

	mean := 0.0
	for _, v := range observed {
		mean += v
	}
	mean /= float64(len(observed))

	ssTot := 0.0 // Total sum of squares
	ssRes := 0.0 // Residual sum of squares
	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	return 1.0 - ssRes/ssTot
}

// rmse returns the root mean square of observed − predicted.
func rmse(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	sumSq := 0.0
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}

func predict(x []float64, m, c float64) []float64 {
	out := make([]float64, len(x))
	for i, xi := range x {
		out[i] = m*xi + c
	}

	return out
}
