// Package regression fits the straight line y = m·x + c to a measurement series
// and reports the fit quality.
//
// Two independent fits are provided:
//
//   - **FitLinear**: unweighted ordinary least squares in closed form, with the
//     Pearson correlation coefficient and the standard errors of both parameters
//   - **FitWeighted**: weighted least squares minimizing Σ((y − m·x − c)/σ)² for
//     per-point uncertainties σ, with the parameter covariance and the
//     goodness-of-fit statistics (χ², reduced χ², R², confidence intervals)
//
// # Basic Usage
//
//	x := []float64{3000, 3500, 4000, 4500, 5000}
//	y := []float64{5350, 6290, 7130, 8140, 8920}
//
//	ols, err := regression.FitLinear(x, y)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sigma := regression.RelativeError{Fraction: 0.05}.Errors(x, y)
//	wfit, err := regression.FitWeighted(x, y, sigma)
//	if err != nil && !errors.Is(err, errs.ErrDegenerateFit) {
//	    log.Fatal(err)
//	}
//	fmt.Println(ols, wfit)
//
// # Solvers
//
// The weighted model is linear in its parameters, so every solver must land on
// the closed-form weighted normal-equation solution. The solvers are:
//
//   - **SolverNewton** (default): gonum optimize.Newton with the exact
//     Gauss-Newton Hessian, started from the unweighted estimate
//   - **SolverBFGS**: gonum optimize.BFGS with the analytic gradient
//   - **SolverNormal**: the weighted normal equations, no iteration
//
// The iterative solvers work in standardized coordinates (abscissa and ordinate
// centered on their weighted means and scaled by their weighted spread), where
// the Hessian is 2·I regardless of the units of the data. A solver result is
// accepted only when the gradient at the returned point is below the configured
// tolerance; otherwise FitWeighted fails with errs.ErrFitConvergence.
//
// # Statistics
//
// Residuals are r_i = y_i − (m·x_i + c). With dof = n − 2:
//
//	χ²      = Σ (r_i / σ_i)²
//	χ²_red  = χ² / dof
//	R²      = 1 − SS_res / SS_tot,  SS_tot = Σ (y_i − ȳ)²
//	CI(p)   = t(0.5 + level/2, dof) × stderr(p)
//
// R² is NaN when every y is identical (SS_tot = 0). When dof ≤ 0 the χ²
// statistics and confidence intervals are NaN and FitWeighted returns the fit
// together with an error wrapping errs.ErrDegenerateFit; the slope, intercept
// and covariance are still valid.
//
// The covariance is (JᵀWJ)⁻¹ with W = diag(1/σ²), i.e. σ is taken as an
// absolute uncertainty. WithScaledCovariance multiplies it by χ²_red instead.
package regression
