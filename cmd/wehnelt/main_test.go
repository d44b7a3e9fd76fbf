package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/wehnelt/compress"
	"github.com/arloliu/wehnelt/report"
)

func TestRunDefaultDataset(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-log-level", "error"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	out := stdout.String()
	require.Contains(t, out, "\nd_1 = 2.154e-10\n")
	require.Contains(t, out, "\nd_2 = 1.248e-10\n")
	require.Empty(t, stderr.String())
}

func TestRunTable(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-table", "-log-level", "error"}, &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "sqrt_voltage")
}

func TestRunWritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	reportPath := filepath.Join(dir, "report.json.zst")
	metricsPath := filepath.Join(dir, "wehnelt.prom")
	rawPlot := filepath.Join(dir, "raw.png")
	analysisPlot := filepath.Join(dir, "analysis.svg")

	var stdout, stderr bytes.Buffer
	code := run([]string{
		"-report", reportPath,
		"-compress", "zstd",
		"-metrics", metricsPath,
		"-raw-plot", rawPlot,
		"-analysis-plot", analysisPlot,
		"-log-format", "json",
	}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	for _, p := range []string{reportPath, metricsPath, rawPlot, analysisPlot} {
		info, err := os.Stat(p)
		require.NoError(t, err, p)
		require.Positive(t, info.Size(), p)
	}

	doc, err := report.ReadFile(reportPath, compress.KindZstd)
	require.NoError(t, err)
	require.Len(t, doc.Groups, 2)

	metrics, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	require.Contains(t, string(metrics), "wehnelt_groups_total")

	require.Contains(t, stderr.String(), `"msg":"report written"`)
}

func TestRunSolvers(t *testing.T) {
	for _, solver := range []string{"newton", "bfgs", "normal"} {
		t.Run(solver, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run([]string{"-solver", solver, "-log-level", "error"}, &stdout, &stderr)
			require.Equal(t, 0, code, stderr.String())
			require.Contains(t, stdout.String(), "\nd_1 = 2.154e-10\n")
			require.Contains(t, stdout.String(), "weighted d = 2.161e-10 m")
		})
	}
}

func TestRunInvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{name: "unknown flag", args: []string{"-bogus"}, code: 2},
		{name: "negative relative error", args: []string{"-relative-error", "-1"}, code: 2},
		{name: "zero radius tolerance", args: []string{"-radius-tolerance", "0"}, code: 2},
		{name: "bad log level", args: []string{"-log-level", "loud"}, code: 2},
		{name: "bad log format", args: []string{"-log-format", "xml"}, code: 2},
		{name: "unknown solver", args: []string{"-solver", "simplex"}, code: 1},
		{name: "unknown compression", args: []string{"-compress", "brotli"}, code: 1},
		{name: "confidence out of range", args: []string{"-confidence", "1.5"}, code: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)
			require.Equal(t, tt.code, code)
			require.NotEmpty(t, stderr.String())
		})
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-h"}, &stdout, &stderr)
	require.Equal(t, 0, code)
	require.True(t, strings.Contains(stderr.String(), "-solver"))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := newLogger(&buf, "warn", "text")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "msg=shown")
	require.Regexp(t, `time="\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}"`, buf.String())
}
