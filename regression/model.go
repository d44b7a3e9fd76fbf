package regression

import (
	"fmt"
	"math"
)

// Fit is the result of an unweighted ordinary least squares fit of y = m·x + c.
//
// Fields:
//   - Slope, Intercept: The fitted m and c
//   - R: Pearson correlation coefficient of x and y
//   - SlopeErr, InterceptErr: Standard errors of m and c
//   - RSquared: Coefficient of determination (NaN when every y is identical)
//   - RMSE: Root mean square of the residuals
//   - N: Number of points
type Fit struct {
	Slope        float64
	Intercept    float64
	R            float64
	SlopeErr     float64
	InterceptErr float64
	RSquared     float64
	RMSE         float64
	N            int
}

// String returns a string representation of the fit.
func (f *Fit) String() string {
	return fmt.Sprintf("Fit{m: %.6g ± %.2g, c: %.6g ± %.2g, r: %.4f, R²: %.4f, n: %d}",
		f.Slope, f.SlopeErr, f.Intercept, f.InterceptErr, f.R, f.RSquared, f.N)
}

// Estimator returns an estimator evaluating the fitted line.
func (f *Fit) Estimator() Estimator {
	return NewLinearEstimator(ModelTypeOLS, f.Slope, f.Intercept)
}

// Stats holds the goodness-of-fit statistics of a weighted fit.
//
// Every field except DOF is NaN when DOF ≤ 0.
type Stats struct {
	// Chi2 is Σ((y − m·x − c)/σ)².
	Chi2 float64
	// DOF is the number of degrees of freedom, n − 2.
	DOF int
	// Chi2Red is Chi2 / DOF.
	Chi2Red float64
	// RSquared is the unweighted coefficient of determination; NaN when every y is identical.
	RSquared float64
	// Confidence is the two-sided level of SlopeCI and InterceptCI.
	Confidence float64
	// SlopeCI is the confidence half-width of the slope.
	SlopeCI float64
	// InterceptCI is the confidence half-width of the intercept.
	InterceptCI float64
}

// WeightedFit is the result of a weighted least squares fit of y = m·x + c.
type WeightedFit struct {
	// Slope is the fitted m.
	Slope float64
	// Intercept is the fitted c.
	Intercept float64
	// SlopeErr is sqrt(Covariance[0][0]).
	SlopeErr float64
	// InterceptErr is sqrt(Covariance[1][1]).
	InterceptErr float64
	// Covariance is the parameter covariance, ordered [slope, intercept].
	Covariance [2][2]float64
	// N is the number of points.
	N int
	// Solver is the strategy that produced the parameters.
	Solver Solver
	// Iterations is the number of major iterations the solver used (0 for SolverNormal).
	Iterations int
	// StatsErr is non-nil, wrapping errs.ErrDegenerateFit, when DOF ≤ 0.
	// Slope, intercept and covariance remain valid in that case.
	StatsErr error

	Stats
}

// String returns a string representation of the weighted fit.
func (f *WeightedFit) String() string {
	return fmt.Sprintf("WeightedFit{m: %.6g ± %.2g, c: %.6g ± %.2g, χ²: %.4g, dof: %d, χ²red: %.4g, R²: %.4f, solver: %s}",
		f.Slope, f.SlopeErr, f.Intercept, f.InterceptErr, f.Chi2, f.DOF, f.Chi2Red, f.RSquared, f.Solver)
}

// RelativeSlopeErr returns σ_m/|m|, or +Inf for a zero slope.
func (f *WeightedFit) RelativeSlopeErr() float64 {
	if f.Slope == 0 {
		return math.Inf(1)
	}

	return f.SlopeErr / math.Abs(f.Slope)
}

// Correlation returns the correlation coefficient of the slope and intercept estimates.
func (f *WeightedFit) Correlation() float64 {
	return f.Covariance[0][1] / (f.SlopeErr * f.InterceptErr)
}

// Estimator returns an estimator evaluating the fitted line.
func (f *WeightedFit) Estimator() Estimator {
	return NewLinearEstimator(ModelTypeWeighted, f.Slope, f.Intercept)
}
