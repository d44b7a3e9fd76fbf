package analysis

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/arloliu/wehnelt/errs"
	"github.com/arloliu/wehnelt/measurement"
	"github.com/arloliu/wehnelt/regression"
)

// DSpacing is the lattice spacing derived from the slope of one fit of a group.
type DSpacing struct {
	N uint32
	// Fit names the regression that produced Slope.
	Fit      regression.ModelType
	Slope    float64
	SlopeErr float64
	// D is sqrt(Slope·coeff²) in meters.
	D float64
	// Err is the propagated uncertainty of D.
	Err float64
}

// PointEstimate holds the per-row d-spacing estimates of one group.
type PointEstimate struct {
	N      uint32
	Values []float64
	Mean   float64
	// StdDev is the sample standard deviation, NaN for fewer than 2 rows.
	StdDev float64
}

// DSpacingFromSlope returns d = sqrt(m·coeff²).
//
// A negative radicand means the slope has the wrong sign for the physics and is
// reported as errs.ErrNegativeRadicand rather than coerced. A non-finite slope
// is reported as errs.ErrFitConvergence.
func DSpacingFromSlope(m, coeff float64) (float64, error) {
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return math.NaN(), fmt.Errorf("%w: slope is %g", errs.ErrFitConvergence, m)
	}

	radicand := m * coeff * coeff
	if radicand < 0 {
		return math.NaN(), fmt.Errorf("%w: slope %g gives d² = %g", errs.ErrNegativeRadicand, m, radicand)
	}

	return math.Sqrt(radicand), nil
}

func newDSpacing(n uint32, fit regression.ModelType, slope, slopeErr, coeff float64) (*DSpacing, error) {
	d, err := DSpacingFromSlope(slope, coeff)
	if err != nil {
		return nil, fmt.Errorf("%s slope: %w", fit, err)
	}

	return &DSpacing{
		N:        n,
		Fit:      fit,
		Slope:    slope,
		SlopeErr: slopeErr,
		D:        d,
		Err:      DSpacingUncertainty(d, slope, slopeErr),
	}, nil
}

// DSpacingUncertainty propagates the slope uncertainty to d: σ_d = d·σ_m/(2|m|).
func DSpacingUncertainty(d, m, sigmaM float64) float64 {
	if m == 0 {
		return math.Inf(1)
	}

	return d * sigmaM / (2 * math.Abs(m))
}

// PointEstimates computes d_i = coeff/(r_i·√U_i) for every row of the group.
func PointEstimates(g *measurement.Group, coeff float64) (*PointEstimate, error) {
	if g.Len() == 0 {
		return nil, fmt.Errorf("%w: group n=%d has no rows", errs.ErrInsufficientData, g.N)
	}

	values := g.Column(func(row measurement.Row) float64 {
		return coeff / (row.R * row.SqrtVoltage)
	})
	sample := stats.Sample{Xs: values}

	pe := &PointEstimate{
		N:      g.N,
		Values: values,
		Mean:   sample.Mean(),
		StdDev: math.NaN(),
	}
	if len(values) >= 2 {
		pe.StdDev = sample.StdDev()
	}

	return pe, nil
}
