package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/wehnelt/analysis"
	"github.com/arloliu/wehnelt/compress"
	"github.com/arloliu/wehnelt/measurement"
	"github.com/arloliu/wehnelt/physics"
)

func defaultResult(t *testing.T) (*measurement.Table, *analysis.Result) {
	t.Helper()
	table, err := measurement.Default()
	require.NoError(t, err)
	res, err := analysis.Run(table, physics.Default())
	require.NoError(t, err)

	return table, res
}

func TestSummary(t *testing.T) {
	_, res := defaultResult(t)

	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, res))
	out := buf.String()

	require.Contains(t, out, "\nd_1 = 2.154e-10\n")
	require.Contains(t, out, "\nd_2 = 1.248e-10\n")
	require.Contains(t, out, "σ_d = 3.3e-12 m (from ols slope)")
	require.Contains(t, out, "weighted d = 2.161e-10 m ± 1.3e-11")
	g1, _ := res.Group(1)
	require.Contains(t, out, fmt.Sprintf("corr(m, c) = %.4f", g1.Weighted.Correlation()))
	require.Contains(t, out, "chi2_red = ")
	require.Contains(t, out, "95% CI: m ± ")
	require.Contains(t, out, "σ_m/m = ")
	require.Contains(t, out, "per-point d = 2.139e-10")
	require.NotContains(t, out, "error [")
}

func TestSummary_GroupErrors(t *testing.T) {
	table, err := measurement.FromRecords([]measurement.Record{
		{N: 4, VoltageKV: 3.0, DiameterOuter: 28.1, DiameterInner: 26.5},
		{N: 6, VoltageKV: 3.0, DiameterOuter: 30.0, DiameterInner: 28.0},
		{N: 6, VoltageKV: 5.0, DiameterOuter: 24.0, DiameterInner: 22.0},
	})
	require.NoError(t, err)
	res, err := analysis.Run(table, physics.Default())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, res))
	out := buf.String()

	require.Contains(t, out, "group n=4 (1 points)")
	require.Contains(t, out, "error [ols]: insufficient data")
	require.Contains(t, out, "error [stats]: degenerate fit")
	require.Contains(t, out, "per-point d = ")
	require.Contains(t, out, "± n/a m")
	require.Contains(t, out, "\nd_6 = ")
	require.Contains(t, out, "corr(m, c) = ")
}

func TestTable(t *testing.T) {
	table, _ := defaultResult(t)

	var buf bytes.Buffer
	require.NoError(t, Table(&buf, table.Rows()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, table.Len()+1)
	require.Contains(t, lines[0], "voltage_kv")
	require.Contains(t, lines[0], "sqrt_voltage")
	require.Contains(t, lines[1], "3000")
}

func TestNumber_JSON(t *testing.T) {
	data, err := json.Marshal([]Number{1.5, Number(math.NaN()), Number(math.Inf(-1)), 2e-10})
	require.NoError(t, err)
	require.JSONEq(t, `[1.5, null, null, 2e-10]`, string(data))

	var back []Number
	require.NoError(t, json.Unmarshal(data, &back))
	require.InDelta(t, 1.5, float64(back[0]), 0)
	require.True(t, math.IsNaN(float64(back[1])))
	require.InDelta(t, 2e-10, float64(back[3]), 0)
}

func TestDocument_RoundTrip(t *testing.T) {
	table, res := defaultResult(t)
	generated := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	doc := NewDocument(res, generated)

	require.Len(t, doc.Rows, table.Len())
	require.Len(t, doc.Groups, 2)
	require.Equal(t, "newton", doc.Groups[0].Weighted.Solver)

	for _, kind := range []compress.Kind{compress.KindNone, compress.KindZstd, compress.KindS2, compress.KindLZ4} {
		t.Run(kind.String(), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "report.json"+kind.Extension())

			stats, err := doc.WriteFile(path, kind)
			require.NoError(t, err)
			require.Equal(t, kind, stats.Kind)
			require.Positive(t, stats.CompressedSize)

			back, err := ReadFile(path, kind)
			require.NoError(t, err)
			require.True(t, generated.Equal(back.Generated))
			require.Equal(t, doc.Fingerprint, back.Fingerprint)
			require.Len(t, back.Groups, 2)
			require.Equal(t, "ols", back.Groups[0].DSpacing.Fit)
			require.InEpsilon(t, 2.1542e-10, float64(back.Groups[0].DSpacing.D), 1e-3)
			require.Equal(t, "weighted", back.Groups[0].WeightedD.Fit)
			require.InEpsilon(t, 2.1613e-10, float64(back.Groups[0].WeightedD.D), 1e-3)
			require.Equal(t, 3, back.Groups[0].Weighted.DOF)
			require.Len(t, back.Groups[1].PointEstimate.Values, 5)
		})
	}
}

func TestDocument_DegenerateGroup(t *testing.T) {
	table, err := measurement.FromRecords([]measurement.Record{
		{N: 3, VoltageKV: 3.0, DiameterOuter: 30.0, DiameterInner: 28.0},
		{N: 3, VoltageKV: 5.0, DiameterOuter: 24.0, DiameterInner: 22.0},
	})
	require.NoError(t, err)
	res, err := analysis.Run(table, physics.Default())
	require.NoError(t, err)

	data, _, err := NewDocument(res, time.Now()).Marshal(compress.KindNone)
	require.NoError(t, err)
	require.Contains(t, string(data), `"chi2": null`)
	require.Contains(t, string(data), `"stage": "stats"`)

	var back Document
	require.NoError(t, json.Unmarshal(data, &back))
	require.True(t, math.IsNaN(float64(back.Groups[0].Weighted.Chi2Red)))
	require.Equal(t, 0, back.Groups[0].Weighted.DOF)
}

func TestReadFile_WrongCodec(t *testing.T) {
	_, res := defaultResult(t)
	path := filepath.Join(t.TempDir(), "report.json.zst")

	_, err := NewDocument(res, time.Now()).WriteFile(path, compress.KindZstd)
	require.NoError(t, err)

	_, err = ReadFile(path, compress.KindLZ4)
	require.Error(t, err)
}
