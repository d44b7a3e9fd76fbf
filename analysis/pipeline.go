package analysis

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/arloliu/wehnelt/errs"
	"github.com/arloliu/wehnelt/measurement"
	"github.com/arloliu/wehnelt/physics"
	"github.com/arloliu/wehnelt/regression"
)

// Run partitions the table by ring order and analyzes every group.
//
// Group failures are recorded on the group results and never abort the run;
// the returned error is non-nil only for invalid options.
//
// Parameters:
//   - table: The measurement table
//   - constants: Physical constants providing the d-spacing coefficient
//   - opts: Pipeline options
//
// Returns:
//   - *Result: One GroupResult per ring order, in ascending order
//   - error: errs.ErrInvalidOption for a rejected option
func Run(table *measurement.Table, constants physics.Constants, opts ...Option) (*Result, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	part := table.Partition()
	res := &Result{
		Constants:   constants,
		Fingerprint: table.Fingerprint(),
		Partition:   part,
		Groups:      make([]*GroupResult, 0, len(part.Keys)),
	}

	cfg.Logger.Info("analysis started",
		slog.Int("rows", table.Len()),
		slog.Int("groups", len(part.Keys)),
		slog.String("fingerprint", fmt.Sprintf("%016x", res.Fingerprint)),
	)

	part.Each(func(g *measurement.Group) {
		res.Groups = append(res.Groups, runGroup(g, constants, &cfg))
	})

	failed := 0
	for _, g := range res.Groups {
		if len(g.Errs) > 0 {
			failed++
		}
	}
	cfg.Logger.Info("analysis finished",
		slog.Int("groups", len(res.Groups)),
		slog.Int("groups_with_errors", failed),
	)

	return res, nil
}

// RunGroup analyzes a single group. The group's stage errors are returned joined,
// alongside the result.
func RunGroup(g *measurement.Group, constants physics.Constants, opts ...Option) (*GroupResult, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	res := runGroup(g, constants, &cfg)

	return res, res.Err()
}

func runGroup(g *measurement.Group, constants physics.Constants, cfg *Config) *GroupResult {
	res := &GroupResult{N: g.N, Points: g.Len()}
	logger := cfg.Logger.With(slog.Uint64("group", uint64(g.N)))
	coeff := constants.Coeff()
	x, y := g.XY()

	ols, err := regression.FitLinear(x, y)
	res.OLS = ols
	res.fail(errs.StageOLS, err)

	sigma := cfg.ErrorModel.Errors(x, y)
	wfit, err := regression.FitWeighted(x, y, sigma, cfg.WeightedOptions...)
	switch {
	case err == nil:
	case errors.Is(err, errs.ErrDegenerateFit) && wfit != nil:
		res.fail(errs.StageStats, err)
	default:
		res.fail(errs.StageWeighted, err)
	}
	res.Weighted = wfit

	if ols != nil {
		res.DSpacing, err = newDSpacing(g.N, regression.ModelTypeOLS, ols.Slope, ols.SlopeErr, coeff)
		res.fail(errs.StageDSpacing, err)
	}
	if wfit != nil {
		res.WeightedDSpacing, err = newDSpacing(g.N, regression.ModelTypeWeighted, wfit.Slope, wfit.SlopeErr, coeff)
		res.fail(errs.StageDSpacing, err)
	}

	pe, err := PointEstimates(g, coeff)
	res.PointEstimate = pe
	res.fail(errs.StagePoints, err)

	for _, e := range res.Errs {
		logger.Warn("group stage failed",
			slog.String("stage", string(e.Stage)),
			slog.Any("error", e.Err),
		)
	}
	if res.DSpacing != nil {
		attrs := []any{
			slog.Int("points", res.Points),
			slog.Float64("slope", res.DSpacing.Slope),
			slog.Float64("d", res.DSpacing.D),
		}
		if wd := res.WeightedDSpacing; wd != nil {
			attrs = append(attrs, slog.Float64("d_weighted", wd.D))
		}
		logger.Debug("group analyzed", attrs...)
	}

	if cfg.Recorder != nil {
		cfg.Recorder.ObserveGroup(res)
	}

	return res
}
