package measurement

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/wehnelt/errs"
)

func TestBuild_DerivedColumns(t *testing.T) {
	table, err := Build([][]any{{1, 10.0, 20.0, 18.0}}, DefaultSchema())
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())

	row := table.Row(0)
	require.Equal(t, uint32(1), row.N)
	require.Equal(t, 0, row.Index)
	require.Equal(t, 10000.0, row.Voltage)
	require.InDelta(t, 100.0, row.SqrtVoltage, 1e-12)
	require.InDelta(t, 9.5e-3, row.R, 1e-15)
	require.Equal(t, row.Voltage, row.X)
	require.InEpsilon(t, 1/(9.5e-3*9.5e-3), row.Y, 1e-12)
}

func TestBuild_PreservesOrder(t *testing.T) {
	raw := [][]any{
		{2, 3.0, 48.3, 46.7},
		{1, 3.0, 28.1, 26.5},
		{2, 3.5, 44.8, 43.1},
		{1, 3.5, 26.2, 24.4},
	}
	table, err := Build(raw, DefaultSchema())
	require.NoError(t, err)

	for i, row := range table.Rows() {
		require.Equal(t, i, row.Index)
		require.Equal(t, raw[i][0], int(row.N))
		require.Equal(t, raw[i][1], row.VoltageKV)
	}
}

func TestBuild_AcceptedTypes(t *testing.T) {
	raw := [][]any{
		{uint32(1), 3, float32(28.5), 26},
		{uint8(2), int64(4), 42.0, uint(40)},
	}
	table, err := Build(raw, DefaultSchema())
	require.NoError(t, err)
	require.Equal(t, 3.0, table.Row(0).VoltageKV)
	require.Equal(t, 28.5, table.Row(0).DiameterOuter)
	require.Equal(t, 40.0, table.Row(1).DiameterInner)
}

func TestBuild_SchemaMismatch(t *testing.T) {
	tests := []struct {
		name string
		raw  []any
	}{
		{"too few values", []any{1, 3.0, 28.1}},
		{"too many values", []any{1, 3.0, 28.1, 26.5, 0.0}},
		{"float ring order", []any{1.0, 3.0, 28.1, 26.5}},
		{"negative ring order", []any{-1, 3.0, 28.1, 26.5}},
		{"ring order overflow", []any{uint64(math.MaxUint32) + 1, 3.0, 28.1, 26.5}},
		{"string voltage", []any{1, "3.0", 28.1, 26.5}},
		{"nil diameter", []any{1, 3.0, nil, 26.5}},
		{"bool diameter", []any{1, 3.0, 28.1, true}},
		{"zero voltage", []any{1, 0.0, 28.1, 26.5}},
		{"negative voltage", []any{1, -3.0, 28.1, 26.5}},
		{"inner larger than outer", []any{1, 3.0, 26.5, 28.1}},
		{"negative inner", []any{1, 3.0, 28.1, -1.0}},
		{"nan diameter", []any{1, 3.0, math.NaN(), 26.5}},
		{"infinite voltage", []any{1, math.Inf(1), 28.1, 26.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build([][]any{{1, 3.0, 28.1, 26.5}, tt.raw}, DefaultSchema())
			require.ErrorIs(t, err, errs.ErrSchemaMismatch)
			require.Contains(t, err.Error(), "row 1")
		})
	}
}

func TestBuild_InvalidSchema(t *testing.T) {
	tests := []struct {
		name   string
		schema Schema
	}{
		{"missing column", DefaultSchema()[:3]},
		{"wrong kind", Schema{
			{Name: ColN, Kind: KindFloat},
			{Name: ColVoltageKV, Kind: KindFloat},
			{Name: ColDiameterOuter, Kind: KindFloat},
			{Name: ColDiameterInner, Kind: KindFloat},
		}},
		{"duplicate column", append(DefaultSchema(), Column{Name: ColN, Kind: KindUint})},
		{"unknown kind", append(DefaultSchema(), Column{Name: "note", Kind: Kind(9)})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(nil, tt.schema)
			require.ErrorIs(t, err, errs.ErrSchemaMismatch)
		})
	}
}

func TestBuild_ExtraColumnIgnored(t *testing.T) {
	schema := Schema{
		{Name: "run", Kind: KindUint},
		{Name: ColDiameterInner, Kind: KindFloat},
		{Name: ColDiameterOuter, Kind: KindFloat},
		{Name: ColVoltageKV, Kind: KindFloat},
		{Name: ColN, Kind: KindUint},
	}
	table, err := Build([][]any{{7, 26.5, 28.1, 3.0, 1}}, schema)
	require.NoError(t, err)

	rec := table.Row(0).Record
	require.Equal(t, Record{N: 1, VoltageKV: 3.0, DiameterOuter: 28.1, DiameterInner: 26.5}, rec)
	require.Len(t, table.Schema(), 5)
}

func TestBuild_DegenerateGeometry(t *testing.T) {
	_, err := Build([][]any{{1, 3.0, 0.0, 0.0}}, DefaultSchema())
	require.ErrorIs(t, err, errs.ErrDegenerateGeometry)
	require.NotErrorIs(t, err, errs.ErrSchemaMismatch)
}

func TestFromRecords(t *testing.T) {
	records := []Record{
		{N: 1, VoltageKV: 3.0, DiameterOuter: 28.1, DiameterInner: 26.5},
		{N: 2, VoltageKV: 3.0, DiameterOuter: 48.3, DiameterInner: 46.7},
	}
	table, err := FromRecords(records)
	require.NoError(t, err)
	require.Equal(t, records, table.Records())

	_, err = FromRecords([]Record{{N: 1, VoltageKV: 3.0, DiameterOuter: 1, DiameterInner: 2}})
	require.ErrorIs(t, err, errs.ErrSchemaMismatch)
}

func TestTable_RowsIsCopy(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	rows := table.Rows()
	rows[0].Y = -1
	require.NotEqual(t, -1.0, table.Row(0).Y)
}

func TestTable_Fingerprint(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)
	require.Equal(t, a.Fingerprint(), b.Fingerprint())

	changed := a.Records()
	changed[3].DiameterInner += 0.1
	c, err := FromRecords(changed)
	require.NoError(t, err)
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestDefault(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)
	require.Equal(t, len(DefaultData), table.Len())

	for _, row := range table.Rows() {
		require.Greater(t, row.R, 0.0)
		require.False(t, math.IsInf(row.Y, 0))
	}
}
