package measurement

import (
	"fmt"
	"slices"

	"github.com/arloliu/wehnelt/internal/hash"
)

// Table is the immutable measurement table with derived columns populated.
type Table struct {
	schema Schema
	rows   []Row
}

// Build validates raw tuples against schema and derives every column.
//
// Parameters:
//   - raw: Tuples in input order
//   - schema: Column declaration the tuples must match
//
// Returns:
//   - *Table: Table with rows in input order
//   - error: errs.ErrSchemaMismatch for malformed tuples or records violating
//     the invariants, errs.ErrDegenerateGeometry for a zero ring radius
func Build(raw [][]any, schema Schema) (*Table, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(raw))
	for i, tuple := range raw {
		rec, err := schema.decode(i, tuple)
		if err != nil {
			return nil, err
		}
		row, err := newRow(i, rec)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return &Table{schema: slices.Clone(schema), rows: rows}, nil
}

// FromRecords builds a table from typed records using DefaultSchema.
func FromRecords(records []Record) (*Table, error) {
	rows := make([]Row, 0, len(records))
	for i, rec := range records {
		row, err := newRow(i, rec)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return &Table{schema: DefaultSchema(), rows: rows}, nil
}

func newRow(idx int, rec Record) (Row, error) {
	if err := rec.Validate(); err != nil {
		return Row{}, fmt.Errorf("row %d: %w", idx, err)
	}

	return derive(idx, rec)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns a copy of the rows in input order.
func (t *Table) Rows() []Row {
	return slices.Clone(t.rows)
}

// Row returns the i-th row.
func (t *Table) Row(i int) Row {
	return t.rows[i]
}

// Schema returns a copy of the schema the table was built with.
func (t *Table) Schema() Schema {
	return slices.Clone(t.schema)
}

// Records returns the raw records in input order.
func (t *Table) Records() []Record {
	out := make([]Record, len(t.rows))
	for i, row := range t.rows {
		out[i] = row.Record
	}

	return out
}

// Fingerprint returns an xxHash64 over the raw records in input order.
// Derived columns are not hashed; they are a pure function of the records.
func (t *Table) Fingerprint() uint64 {
	fp := hash.New()
	for _, row := range t.rows {
		fp.Uint32(row.N).
			Float64(row.VoltageKV).
			Float64(row.DiameterOuter).
			Float64(row.DiameterInner)
	}

	return fp.Sum64()
}

// Partition groups the rows by ring order in a single pass.
func (t *Table) Partition() *Partition {
	p := &Partition{Groups: make(map[uint32]*Group)}
	for _, row := range t.rows {
		g, ok := p.Groups[row.N]
		if !ok {
			g = &Group{N: row.N}
			p.Groups[row.N] = g
			p.Keys = append(p.Keys, row.N)
		}
		g.Rows = append(g.Rows, row)
	}
	slices.Sort(p.Keys)

	return p
}
