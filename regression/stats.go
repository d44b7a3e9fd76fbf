package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/arloliu/wehnelt/errs"
)

// ComputeStats evaluates the goodness of fit of the line y = m·x + c against
// points with uncertainties sigma.
//
// With dof = n − 2 ≤ 0 every statistic is NaN and the error wraps
// errs.ErrDegenerateFit. The confidence intervals are left NaN; fill them with
// SetIntervals once the parameter standard errors are known.
//
// Parameters:
//   - x, y: The fitted points
//   - sigma: Per-point uncertainties of y
//   - m, c: The fitted slope and intercept
//
// Returns:
//   - Stats: χ², dof, reduced χ² and R²
//   - error: errs.ErrDegenerateFit when dof ≤ 0
func ComputeStats(x, y, sigma []float64, m, c float64) (Stats, error) {
	s := Stats{
		DOF:         len(x) - 2,
		Chi2:        math.NaN(),
		Chi2Red:     math.NaN(),
		RSquared:    math.NaN(),
		SlopeCI:     math.NaN(),
		InterceptCI: math.NaN(),
	}
	if s.DOF <= 0 {
		return s, fmt.Errorf("%w: %d points leave %d degrees of freedom", errs.ErrDegenerateFit, len(x), s.DOF)
	}

	predicted := predict(x, m, c)
	chi2 := 0.0
	for i := range y {
		r := (y[i] - predicted[i]) / sigma[i]
		chi2 += r * r
	}

	s.Chi2 = chi2
	s.Chi2Red = chi2 / float64(s.DOF)
	s.RSquared = rSquared(y, predicted)

	return s, nil
}

// SetIntervals sets the two-sided confidence half-widths t·stderr for the given level.
func (s *Stats) SetIntervals(slopeErr, interceptErr, level float64) {
	s.Confidence = level
	t := TQuantile(0.5+level/2, s.DOF)
	s.SlopeCI = t * slopeErr
	s.InterceptCI = t * interceptErr
}

// TQuantile returns the p-quantile of Student's t distribution with dof degrees
// of freedom, or NaN when dof ≤ 0.
func TQuantile(p float64, dof int) float64 {
	if dof <= 0 {
		return math.NaN()
	}

	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(dof)}.Quantile(p)
}
