package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/wehnelt/errs"
)

// FitWeighted fits y = m·x + c minimizing Σ((y − m·x − c)/σ)².
//
// The iterative solvers start from the unweighted estimate. A returned error
// wrapping errs.ErrDegenerateFit comes with a usable fit: the parameters and the
// covariance are valid while the χ² statistics are NaN. Any other error comes
// with a nil fit.
//
// Parameters:
//   - x: Abscissae
//   - y: Ordinates, paired with x
//   - yErr: Per-point uncertainties of y, finite and strictly positive
//   - opts: Solver and statistics options
//
// Returns:
//   - *WeightedFit: The fitted line, covariance and statistics
//   - error: errs.ErrLengthMismatch, errs.ErrInsufficientData,
//     errs.ErrFitConvergence (also wrapping errs.ErrInvalidUncertainty for bad σ),
//     errs.ErrInvalidOption or errs.ErrDegenerateFit
func FitWeighted(x, y, yErr []float64, opts ...WeightedOption) (*WeightedFit, error) {
	cfg, err := NewWeightedConfig(opts...)
	if err != nil {
		return nil, err
	}

	if err := validatePairs(x, y); err != nil {
		return nil, err
	}
	if len(yErr) != len(x) {
		return nil, fmt.Errorf("%w: %d points, %d uncertainties", errs.ErrLengthMismatch, len(x), len(yErr))
	}
	for i, s := range yErr {
		if !isFinite(s) || s <= 0 {
			return nil, fmt.Errorf("%w: %w: y_err[%d] = %g", errs.ErrFitConvergence, errs.ErrInvalidUncertainty, i, s)
		}
	}
	if allEqual(x) {
		return nil, fmt.Errorf("%w: singular covariance, all x equal", errs.ErrFitConvergence)
	}

	f, err := newFrame(x, y, yErr)
	if err != nil {
		return nil, err
	}

	start := []float64{0, 0}
	if ols, olsErr := FitLinear(x, y); olsErr == nil {
		start[0], start[1] = f.toStandard(ols.Slope, ols.Intercept)
	}

	sol, err := solve(f, start, cfg)
	if err != nil {
		return nil, err
	}

	m, c := f.fromStandard(sol.a, sol.b)
	if !isFinite(m) || !isFinite(c) {
		return nil, fmt.Errorf("%w: non-finite parameters m=%g c=%g", errs.ErrFitConvergence, m, c)
	}

	cov, err := f.covariance()
	if err != nil {
		return nil, err
	}

	fit := &WeightedFit{
		Slope:      m,
		Intercept:  c,
		Covariance: cov,
		N:          len(x),
		Solver:     cfg.Solver,
		Iterations: sol.iterations,
	}

	fit.Stats, fit.StatsErr = ComputeStats(x, y, yErr, m, c)
	if cfg.ScaleCovariance && fit.StatsErr == nil {
		for i := range fit.Covariance {
			for j := range fit.Covariance[i] {
				fit.Covariance[i][j] *= fit.Chi2Red
			}
		}
	}
	fit.SlopeErr = math.Sqrt(fit.Covariance[0][0])
	fit.InterceptErr = math.Sqrt(fit.Covariance[1][1])

	if fit.StatsErr == nil {
		fit.Stats.SetIntervals(fit.SlopeErr, fit.InterceptErr, cfg.Confidence)
	} else {
		fit.Confidence = cfg.Confidence
	}

	return fit, fit.StatsErr
}

// covariance returns (JᵀWJ)⁻¹ for [slope, intercept].
//
// The normal matrix is inverted in standardized coordinates, scaled by Σw, and
// mapped back through m = b'/sx, c = a' − b'·x̄/sx where y = a' + b'·u.
func (f *frame) covariance() ([2][2]float64, error) {
	s0, s1, s2 := f.moments()
	normal := mat.NewSymDense(2, []float64{
		f.sumW * s0, f.sumW * s1,
		f.sumW * s1, f.sumW * s2,
	})

	var chol mat.Cholesky
	if ok := chol.Factorize(normal); !ok {
		return [2][2]float64{}, fmt.Errorf("%w: singular covariance", errs.ErrFitConvergence)
	}
	var inv mat.SymDense
	if err := chol.InverseTo(&inv); err != nil {
		return [2][2]float64{}, fmt.Errorf("%w: covariance: %v", errs.ErrFitConvergence, err)
	}

	jac := mat.NewDense(2, 2, []float64{
		0, 1 / f.sx,
		1, -f.xMean / f.sx,
	})
	var tmp, out mat.Dense
	tmp.Mul(jac, &inv)
	out.Mul(&tmp, jac.T())

	return [2][2]float64{
		{out.At(0, 0), out.At(0, 1)},
		{out.At(1, 0), out.At(1, 1)},
	}, nil
}
