// Package wehnelt estimates crystal lattice spacings from electron diffraction
// ring measurements.
//
// An electron diffraction tube accelerates electrons through a voltage U onto a
// polycrystalline target; each lattice plane family produces a ring on the
// screen. For a ring of radius r the lattice spacing is
//
//	d = 2·R·h / (r·sqrt(2·mₑ·e·U))
//
// so 1/r² grows linearly with U and the slope m of that line gives
// d = sqrt(m)·2·R·h/sqrt(2·mₑ·e).
//
// # Basic Usage
//
//	res, err := wehnelt.Analyze([][]any{
//	    {1, 3.0, 28.1, 26.5},
//	    {1, 4.0, 24.5, 22.5},
//	    {1, 5.0, 22.3, 20.0},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, g := range res.Groups {
//	    if g.DSpacing != nil {
//	        fmt.Printf("d_%d = %.3e\n", g.N, g.DSpacing.D)
//	    }
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers for the common case:
// rows in the default schema, the standard tube constants and the default fit
// settings. Use the measurement, analysis, regression, plot and report packages
// directly for fine-grained control.
package wehnelt

import (
	"github.com/arloliu/wehnelt/analysis"
	"github.com/arloliu/wehnelt/measurement"
	"github.com/arloliu/wehnelt/physics"
)

// Analyze builds a table from rows in the default schema
// (n, voltage_kv, diameter_outer, diameter_inner) and analyzes every ring order
// with the standard tube constants.
//
// Parameters:
//   - rows: Raw measurement tuples
//   - opts: Pipeline options (error model, solver, logger, recorder)
//
// Returns:
//   - *analysis.Result: Per-group results; group failures are recorded there
//   - error: errs.ErrSchemaMismatch or errs.ErrDegenerateGeometry for bad rows,
//     errs.ErrInvalidOption for a rejected option
func Analyze(rows [][]any, opts ...analysis.Option) (*analysis.Result, error) {
	table, err := measurement.Build(rows, measurement.DefaultSchema())
	if err != nil {
		return nil, err
	}

	return analysis.Run(table, physics.Default(), opts...)
}

// AnalyzeDefault analyzes the built-in measurement series.
func AnalyzeDefault(opts ...analysis.Option) (*analysis.Result, error) {
	return Analyze(measurement.DefaultData, opts...)
}

// Wavelength returns the electron wavelength in meters for an accelerating
// voltage u in volts.
func Wavelength(u float64) (float64, error) {
	return physics.Default().Wavelength(u)
}
