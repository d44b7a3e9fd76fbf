package measurement

import "slices"

// Group holds the rows sharing one ring order, in input order.
type Group struct {
	N    uint32
	Rows []Row
}

// Len returns the number of rows in the group.
func (g *Group) Len() int {
	return len(g.Rows)
}

// XY returns the regression coordinates (voltage, 1/r²).
func (g *Group) XY() (x, y []float64) {
	x = make([]float64, len(g.Rows))
	y = make([]float64, len(g.Rows))
	for i, row := range g.Rows {
		x[i] = row.X
		y[i] = row.Y
	}

	return x, y
}

// Column extracts one value per row.
func (g *Group) Column(fn func(Row) float64) []float64 {
	out := make([]float64, len(g.Rows))
	for i, row := range g.Rows {
		out[i] = fn(row)
	}

	return out
}

// Partition is the result of grouping a table by ring order.
type Partition struct {
	// Keys lists the ring orders in ascending order.
	Keys []uint32
	// Groups maps ring order to its rows.
	Groups map[uint32]*Group
}

// Each calls fn for every group in ascending key order.
func (p *Partition) Each(fn func(g *Group)) {
	for _, n := range p.Keys {
		fn(p.Groups[n])
	}
}

// Reconstitute merges the groups back into a single row sequence in the
// original input order.
func (p *Partition) Reconstitute() []Row {
	var total int
	for _, g := range p.Groups {
		total += len(g.Rows)
	}

	rows := make([]Row, 0, total)
	for _, g := range p.Groups {
		rows = append(rows, g.Rows...)
	}
	slices.SortFunc(rows, func(a, b Row) int {
		return a.Index - b.Index
	})

	return rows
}
