package measurement

import (
	"fmt"
	"math"

	"github.com/arloliu/wehnelt/errs"
)

// Kind is the declared type of a raw column.
type Kind uint8

const (
	// KindUint accepts unsigned integers and non-negative signed integers that fit in uint32.
	KindUint Kind = iota + 1
	// KindFloat accepts floats and integers (widened to float64).
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Column names understood by the table builder.
const (
	ColN             = "n"
	ColVoltageKV     = "voltage_kv"
	ColDiameterOuter = "diameter_outer"
	ColDiameterInner = "diameter_inner"
)

// Column declares one position of a raw tuple.
type Column struct {
	Name string
	Kind Kind
}

// Schema declares the arity, order and types of raw tuples.
type Schema []Column

// DefaultSchema returns n:uint, voltage_kv:float, diameter_outer:float, diameter_inner:float.
func DefaultSchema() Schema {
	return Schema{
		{Name: ColN, Kind: KindUint},
		{Name: ColVoltageKV, Kind: KindFloat},
		{Name: ColDiameterOuter, Kind: KindFloat},
		{Name: ColDiameterInner, Kind: KindFloat},
	}
}

var requiredColumns = map[string]Kind{
	ColN:             KindUint,
	ColVoltageKV:     KindFloat,
	ColDiameterOuter: KindFloat,
	ColDiameterInner: KindFloat,
}

// Validate checks that the schema declares every required column exactly once
// with its expected kind. Extra columns are allowed and ignored by the builder.
func (s Schema) Validate() error {
	seen := make(map[string]bool, len(s))
	for i, col := range s {
		if seen[col.Name] {
			return fmt.Errorf("%w: column %q declared twice (position %d)", errs.ErrSchemaMismatch, col.Name, i)
		}
		seen[col.Name] = true

		if want, ok := requiredColumns[col.Name]; ok && col.Kind != want {
			return fmt.Errorf("%w: column %q declared %s, want %s", errs.ErrSchemaMismatch, col.Name, col.Kind, want)
		}
		if col.Kind != KindUint && col.Kind != KindFloat {
			return fmt.Errorf("%w: column %q has unknown kind %d", errs.ErrSchemaMismatch, col.Name, col.Kind)
		}
	}
	for name := range requiredColumns {
		if !seen[name] {
			return fmt.Errorf("%w: missing column %q", errs.ErrSchemaMismatch, name)
		}
	}

	return nil
}

// decode converts one raw tuple into a Record.
func (s Schema) decode(idx int, tuple []any) (Record, error) {
	if len(tuple) != len(s) {
		return Record{}, fmt.Errorf("%w: row %d has %d values, schema declares %d",
			errs.ErrSchemaMismatch, idx, len(tuple), len(s))
	}

	var rec Record
	for i, col := range s {
		switch col.Kind {
		case KindUint:
			v, ok := asUint32(tuple[i])
			if !ok {
				return Record{}, columnMismatch(idx, col, tuple[i])
			}
			if col.Name == ColN {
				rec.N = v
			}
		case KindFloat:
			v, ok := asFloat64(tuple[i])
			if !ok {
				return Record{}, columnMismatch(idx, col, tuple[i])
			}
			switch col.Name {
			case ColVoltageKV:
				rec.VoltageKV = v
			case ColDiameterOuter:
				rec.DiameterOuter = v
			case ColDiameterInner:
				rec.DiameterInner = v
			}
		}
	}

	return rec, nil
}

func columnMismatch(idx int, col Column, v any) error {
	return fmt.Errorf("%w: row %d column %q: %T(%v) is not %s",
		errs.ErrSchemaMismatch, idx, col.Name, v, v, col.Kind)
}

func asUint32(v any) (uint32, bool) {
	u, ok := asUint64(v)
	if !ok {
		switch v.(type) {
		case int, int8, int16, int32, int64:
			if i := signed(v); i >= 0 {
				u, ok = uint64(i), true
			}
		}
	}
	if !ok || u > math.MaxUint32 {
		return 0, false
	}

	return uint32(u), true
}

func asFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int, int8, int16, int32, int64:
		return float64(signed(x)), true
	case uint, uint8, uint16, uint32, uint64:
		u, ok := asUint64(x)
		return float64(u), ok
	default:
		return 0, false
	}
}

func signed(v any) int64 {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	}

	return 0
}

func asUint64(v any) (uint64, bool) {
	switch x := v.(type) {
	case uint:
		return uint64(x), true
	case uint8:
		return uint64(x), true
	case uint16:
		return uint64(x), true
	case uint32:
		return uint64(x), true
	case uint64:
		return x, true
	}

	return 0, false
}
