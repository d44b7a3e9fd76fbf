package analysis

import (
	"errors"

	"github.com/arloliu/wehnelt/errs"
	"github.com/arloliu/wehnelt/measurement"
	"github.com/arloliu/wehnelt/physics"
	"github.com/arloliu/wehnelt/regression"
)

// GroupResult holds everything computed for one ring order.
//
// A stage that failed leaves its field nil and appends to Errs. The weighted fit
// of a two-point group is kept together with a StageStats error.
//
// DSpacing is the headline d_n from the unweighted slope. WeightedDSpacing is
// the same quantity from the weighted slope and depends on the error model.
type GroupResult struct {
	N      uint32
	Points int

	OLS              *regression.Fit
	Weighted         *regression.WeightedFit
	DSpacing         *DSpacing
	WeightedDSpacing *DSpacing
	PointEstimate    *PointEstimate

	Errs []*errs.StageError
}

// Err joins the stage errors of the group, or returns nil.
func (g *GroupResult) Err() error {
	if len(g.Errs) == 0 {
		return nil
	}

	joined := make([]error, len(g.Errs))
	for i, e := range g.Errs {
		joined[i] = e
	}

	return errors.Join(joined...)
}

// Failed reports whether the given stage recorded an error.
func (g *GroupResult) Failed(stage errs.Stage) bool {
	for _, e := range g.Errs {
		if e.Stage == stage {
			return true
		}
	}

	return false
}

func (g *GroupResult) fail(stage errs.Stage, err error) {
	if se := errs.NewStageError(g.N, stage, err); se != nil {
		g.Errs = append(g.Errs, se)
	}
}

// Result is the outcome of a run over a whole table.
type Result struct {
	Constants   physics.Constants
	Fingerprint uint64
	// Partition is the grouped input table.
	Partition *measurement.Partition
	// Groups lists the group results in ascending ring order.
	Groups []*GroupResult
}

// Group returns the result for ring order n.
func (r *Result) Group(n uint32) (*GroupResult, bool) {
	for _, g := range r.Groups {
		if g.N == n {
			return g, true
		}
	}

	return nil, false
}

// Err joins the errors of every group, or returns nil.
func (r *Result) Err() error {
	var all []error
	for _, g := range r.Groups {
		if err := g.Err(); err != nil {
			all = append(all, err)
		}
	}

	return errors.Join(all...)
}

// Estimators returns the weighted fit line of every group that has one.
func (r *Result) Estimators() map[uint32]regression.Estimator {
	out := make(map[uint32]regression.Estimator, len(r.Groups))
	for _, g := range r.Groups {
		if g.Weighted != nil {
			out[g.N] = g.Weighted.Estimator()
		}
	}

	return out
}
