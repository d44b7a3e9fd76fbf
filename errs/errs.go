// Package errs defines the error taxonomy shared by the wehnelt packages.
//
// Every failure returned by the analysis is one of the sentinel errors below,
// usually wrapped with context via fmt.Errorf("%w: ...", errs.ErrX, ...).
// Callers classify failures with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrSchemaMismatch indicates a raw tuple whose arity or column types disagree
	// with the declared schema, or a record violating the measurement invariants.
	ErrSchemaMismatch = errors.New("schema mismatch")
	// ErrDegenerateGeometry indicates a ring radius of zero, which would make 1/r² infinite.
	ErrDegenerateGeometry = errors.New("degenerate ring geometry")
	// ErrLengthMismatch indicates paired sequences of different lengths.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrInsufficientData indicates fewer points than a fit requires.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrFitConvergence indicates the weighted fit did not converge or its covariance is singular.
	ErrFitConvergence = errors.New("fit did not converge")
	// ErrInvalidUncertainty indicates a non-positive or non-finite per-point uncertainty.
	ErrInvalidUncertainty = errors.New("invalid uncertainty")
	// ErrDegenerateFit indicates zero or negative degrees of freedom for fit statistics.
	ErrDegenerateFit = errors.New("degenerate fit")
	// ErrNegativeRadicand indicates a slope that implies a negative squared d-spacing.
	ErrNegativeRadicand = errors.New("negative radicand")
	// ErrInvalidVoltage indicates a non-positive accelerating voltage.
	ErrInvalidVoltage = errors.New("invalid voltage")
	// ErrInvalidOption indicates an option value outside its accepted range.
	ErrInvalidOption = errors.New("invalid option")
)

// Stage names the step of the per-group pipeline that produced an error.
type Stage string

const (
	StagePartition Stage = "partition"
	StageOLS       Stage = "ols"
	StageWeighted  Stage = "weighted"
	StageStats     Stage = "stats"
	StageDSpacing  Stage = "dspacing"
	StagePoints    Stage = "points"
)

// StageError attaches the group key and pipeline stage to a failure.
type StageError struct {
	Group uint32
	Stage Stage
	Err   error
}

// NewStageError wraps err with the group key and stage. A nil err yields nil.
func NewStageError(group uint32, stage Stage, err error) *StageError {
	if err == nil {
		return nil
	}

	return &StageError{Group: group, Stage: stage, Err: err}
}

func (e *StageError) Error() string {
	return fmt.Sprintf("group n=%d: %s: %v", e.Group, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
