// Package analysis runs the per-group electron diffraction analysis.
//
// Run partitions a measurement table by ring order n and processes every group
// independently through these stages:
//
//   - ols: unweighted fit of 1/r² against voltage (regression.FitLinear)
//   - weighted: weighted fit with per-point uncertainties from an ErrorModel
//     (regression.FitWeighted)
//   - stats: goodness of fit of the weighted line; a two-point group yields
//     errs.ErrDegenerateFit here while its slope stays usable
//   - dspacing: lattice spacing d = sqrt(m·coeff²) from the OLS slope, and
//     separately from the weighted slope
//   - points: per-point estimates d_i = coeff/(r_i·√U_i) with mean and
//     standard deviation
//
// A failing stage is recorded on its group as an *errs.StageError and never
// stops the other groups. The slope-based d and the per-point mean are separate
// results and are never merged.
package analysis
