// Command wehnelt analyzes the built-in electron diffraction measurements and
// prints the lattice spacing of every ring order.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/arloliu/wehnelt/analysis"
	"github.com/arloliu/wehnelt/compress"
	"github.com/arloliu/wehnelt/internal/telemetry"
	"github.com/arloliu/wehnelt/measurement"
	"github.com/arloliu/wehnelt/physics"
	"github.com/arloliu/wehnelt/plot"
	"github.com/arloliu/wehnelt/regression"
	"github.com/arloliu/wehnelt/report"
)

type config struct {
	rawPlot         string
	analysisPlot    string
	reportPath      string
	compression     string
	metricsPath     string
	table           bool
	relativeError   float64
	radiusTolerance float64
	solver          string
	tolerance       float64
	confidence      float64
	scaled          bool
	strict          bool
	logLevel        string
	logFormat       string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("wehnelt", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.rawPlot, "raw-plot", "", "Write the ring radius plot to this file (.png, .svg, .pdf)")
	fs.StringVar(&cfg.analysisPlot, "analysis-plot", "", "Write the 1/r² plot with fitted lines to this file")
	fs.StringVar(&cfg.reportPath, "report", "", "Write a JSON report to this file")
	fs.StringVar(&cfg.compression, "compress", "none", "Report compression: none, zstd, s2 or lz4")
	fs.StringVar(&cfg.metricsPath, "metrics", "", "Write Prometheus metrics in textfile format to this file")
	fs.BoolVar(&cfg.table, "table", false, "Print the measurement table with derived columns")
	fs.Float64Var(&cfg.relativeError, "relative-error", analysis.DefaultRelativeError, "Relative uncertainty of 1/r² for the weighted fit")
	fs.Float64Var(&cfg.radiusTolerance, "radius-tolerance", plot.DefaultRadiusTolerance, "Ring radius tolerance in meters for the raw plot error bars")
	fs.StringVar(&cfg.solver, "solver", regression.SolverNewton.String(), "Weighted fit solver: newton, bfgs or normal")
	fs.Float64Var(&cfg.tolerance, "tolerance", 1e-9, "Gradient tolerance of the iterative solvers")
	fs.Float64Var(&cfg.confidence, "confidence", 0.95, "Confidence level of the parameter intervals")
	fs.BoolVar(&cfg.scaled, "scale-covariance", false, "Scale the parameter covariance by the reduced chi-square")
	fs.BoolVar(&cfg.strict, "strict", false, "Exit with status 1 when any group reports an error")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "Log format: text or json")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if !(cfg.relativeError > 0) {
		return nil, fmt.Errorf("-relative-error must be positive, got %g", cfg.relativeError)
	}
	if !(cfg.radiusTolerance > 0) {
		return nil, fmt.Errorf("-radius-tolerance must be positive, got %g", cfg.radiusTolerance)
	}

	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	logger, err := newLogger(stderr, cfg.logLevel, cfg.logFormat)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	slog.SetDefault(logger)

	if err := analyze(cfg, stdout, logger); err != nil {
		logger.Error("analysis failed", slog.Any("error", err))
		return 1
	}

	return 0
}

var errGroupFailures = errors.New("groups reported errors")

func analyze(cfg *config, stdout io.Writer, logger *slog.Logger) error {
	solver, err := regression.ParseSolver(cfg.solver)
	if err != nil {
		return err
	}
	kind, err := compress.ParseKind(cfg.compression)
	if err != nil {
		return err
	}

	table, err := measurement.Default()
	if err != nil {
		return err
	}

	errModel := regression.RelativeError{Fraction: cfg.relativeError}
	weighted := []regression.WeightedOption{
		regression.WithSolver(solver),
		regression.WithTolerance(cfg.tolerance),
		regression.WithConfidence(cfg.confidence),
	}
	if cfg.scaled {
		weighted = append(weighted, regression.WithScaledCovariance())
	}

	opts := []analysis.Option{
		analysis.WithErrorModel(errModel),
		analysis.WithWeightedOptions(weighted...),
		analysis.WithLogger(logger),
	}
	var recorder *telemetry.Recorder
	if cfg.metricsPath != "" {
		recorder = telemetry.NewRecorder()
		opts = append(opts, analysis.WithRecorder(recorder))
	}

	res, err := analysis.Run(table, physics.Default(), opts...)
	if err != nil {
		return err
	}

	if cfg.table {
		if err := report.Table(stdout, table.Rows()); err != nil {
			return err
		}
		fmt.Fprintln(stdout)
	}
	if err := report.Summary(stdout, res); err != nil {
		return err
	}

	var groups []*measurement.Group
	res.Partition.Each(func(g *measurement.Group) {
		groups = append(groups, g)
	})

	if cfg.rawPlot != "" {
		tolerance := regression.FixedError{Value: cfg.radiusTolerance}
		if err := plot.Render(cfg.rawPlot, groups, plot.RawStyle{}, tolerance, nil); err != nil {
			return err
		}
		logger.Info("raw plot written", slog.String("path", cfg.rawPlot))
	}
	if cfg.analysisPlot != "" {
		if err := plot.Render(cfg.analysisPlot, groups, plot.AnalysisStyle{}, errModel, res.Estimators()); err != nil {
			return err
		}
		logger.Info("analysis plot written", slog.String("path", cfg.analysisPlot))
	}

	if cfg.reportPath != "" {
		stats, err := report.NewDocument(res, time.Now()).WriteFile(cfg.reportPath, kind)
		if err != nil {
			return err
		}
		logger.Info("report written",
			slog.String("path", cfg.reportPath),
			slog.String("compression", kind.String()),
			slog.Int64("bytes", stats.CompressedSize),
			slog.Float64("space_savings_pct", stats.SpaceSavings()),
		)
	}

	if recorder != nil {
		if err := recorder.WriteTextfile(cfg.metricsPath); err != nil {
			return err
		}
		logger.Info("metrics written", slog.String("path", cfg.metricsPath))
	}

	if cfg.strict {
		if err := res.Err(); err != nil {
			return fmt.Errorf("%w: %w", errGroupFailures, err)
		}
	}

	return nil
}
