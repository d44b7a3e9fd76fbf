package measurement

import (
	"fmt"
	"math"

	"github.com/arloliu/wehnelt/errs"
)

// Record is one observed diffraction ring at a given ring order and voltage.
type Record struct {
	// N is the ring order, the grouping key.
	N uint32
	// VoltageKV is the accelerating voltage reading in kilovolts.
	VoltageKV float64
	// DiameterOuter is the outer edge diameter of the ring in millimeters.
	DiameterOuter float64
	// DiameterInner is the inner edge diameter of the ring in millimeters.
	DiameterInner float64
}

// Validate checks voltage_kv > 0 and diameter_outer ≥ diameter_inner ≥ 0, all finite.
func (r Record) Validate() error {
	for _, v := range [...]float64{r.VoltageKV, r.DiameterOuter, r.DiameterInner} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite value in %+v", errs.ErrSchemaMismatch, r)
		}
	}
	if r.VoltageKV <= 0 {
		return fmt.Errorf("%w: voltage_kv must be positive, got %g", errs.ErrSchemaMismatch, r.VoltageKV)
	}
	if r.DiameterInner < 0 {
		return fmt.Errorf("%w: diameter_inner must be non-negative, got %g", errs.ErrSchemaMismatch, r.DiameterInner)
	}
	if r.DiameterOuter < r.DiameterInner {
		return fmt.Errorf("%w: diameter_outer %g is smaller than diameter_inner %g",
			errs.ErrSchemaMismatch, r.DiameterOuter, r.DiameterInner)
	}

	return nil
}

// Row is a Record with its derived columns and its position in the input.
type Row struct {
	Record
	// Index is the zero-based position of the row in the input sequence.
	Index int
	// Voltage is the accelerating voltage in volts.
	Voltage float64
	// SqrtVoltage is √Voltage.
	SqrtVoltage float64
	// R is the mean ring radius in meters.
	R float64
	// X is the regression abscissa (Voltage).
	X float64
	// Y is the regression ordinate 1/R².
	Y float64
}

// derive computes the derived columns of rec. It fails with
// errs.ErrDegenerateGeometry instead of producing an infinite Y.
func derive(idx int, rec Record) (Row, error) {
	voltage := rec.VoltageKV * 1e3
	r := (rec.DiameterOuter + rec.DiameterInner) / 4 * 1e-3
	if r == 0 {
		return Row{}, fmt.Errorf("%w: row %d (n=%d) has zero ring radius", errs.ErrDegenerateGeometry, idx, rec.N)
	}

	return Row{
		Record:      rec,
		Index:       idx,
		Voltage:     voltage,
		SqrtVoltage: math.Sqrt(voltage),
		R:           r,
		X:           voltage,
		Y:           1 / (r * r),
	}, nil
}
