package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/wehnelt/errs"
	"github.com/arloliu/wehnelt/measurement"
	"github.com/arloliu/wehnelt/physics"
)

func TestDSpacingFromSlope(t *testing.T) {
	coeff := physics.Default().Coeff()

	tests := []struct {
		slope float64
		want  float64
	}{
		{slope: 1e-4, want: 1e-2 * coeff},
		{slope: 5e-5, want: math.Sqrt(5e-5) * coeff},
		{slope: 0, want: 0},
	}

	for _, tt := range tests {
		d, err := DSpacingFromSlope(tt.slope, coeff)
		require.NoError(t, err)
		require.InDelta(t, tt.want, d, 1e-24)
		require.InDelta(t, math.Sqrt(tt.slope*coeff*coeff), d, 1e-24)
	}
}

func TestDSpacingFromSlope_Errors(t *testing.T) {
	coeff := physics.Default().Coeff()

	d, err := DSpacingFromSlope(-1e-4, coeff)
	require.ErrorIs(t, err, errs.ErrNegativeRadicand)
	require.True(t, math.IsNaN(d))

	_, err = DSpacingFromSlope(math.NaN(), coeff)
	require.ErrorIs(t, err, errs.ErrFitConvergence)

	_, err = DSpacingFromSlope(math.Inf(1), coeff)
	require.ErrorIs(t, err, errs.ErrFitConvergence)
}

func TestDSpacingUncertainty(t *testing.T) {
	require.InDelta(t, 0.05, DSpacingUncertainty(1, 2, 0.2), 1e-15)
	require.InDelta(t, 0.05, DSpacingUncertainty(1, -2, 0.2), 1e-15)
	require.True(t, math.IsInf(DSpacingUncertainty(1, 0, 0.2), 1))
}

func TestPointEstimates(t *testing.T) {
	table, err := measurement.FromRecords([]measurement.Record{
		{N: 1, VoltageKV: 4, DiameterOuter: 42, DiameterInner: 38},
		{N: 1, VoltageKV: 1, DiameterOuter: 82, DiameterInner: 78},
	})
	require.NoError(t, err)
	g := table.Partition().Groups[1]

	// r = 20 mm at 4 kV and 40 mm at 1 kV give the same r·√U.
	pe, err := PointEstimates(g, 2)
	require.NoError(t, err)
	want := 2 / (20e-3 * math.Sqrt(4000))
	require.InDeltaSlice(t, []float64{want, want}, pe.Values, 1e-9)
	require.InDelta(t, want, pe.Mean, 1e-9)
	require.InDelta(t, 0.0, pe.StdDev, 1e-9)
	require.Equal(t, uint32(1), pe.N)
}

func TestPointEstimates_SingleRow(t *testing.T) {
	table, err := measurement.FromRecords([]measurement.Record{
		{N: 3, VoltageKV: 4, DiameterOuter: 42, DiameterInner: 38},
	})
	require.NoError(t, err)

	pe, err := PointEstimates(table.Partition().Groups[3], 1)
	require.NoError(t, err)
	require.Len(t, pe.Values, 1)
	require.InDelta(t, pe.Values[0], pe.Mean, 0)
	require.True(t, math.IsNaN(pe.StdDev))
}

func TestPointEstimates_Empty(t *testing.T) {
	_, err := PointEstimates(&measurement.Group{N: 2}, 1)
	require.ErrorIs(t, err, errs.ErrInsufficientData)
}
