package regression

import (
	"fmt"
	"strings"

	"github.com/arloliu/wehnelt/errs"
	"github.com/arloliu/wehnelt/internal/options"
)

// Solver selects how FitWeighted minimizes χ².
type Solver int

const (
	// SolverNewton minimizes with gonum optimize.Newton and the exact Hessian.
	SolverNewton Solver = iota
	// SolverBFGS minimizes with gonum optimize.BFGS.
	SolverBFGS
	// SolverNormal solves the weighted normal equations directly.
	SolverNormal
)

var solverNames = map[Solver]string{
	SolverNewton: "newton",
	SolverBFGS:   "bfgs",
	SolverNormal: "normal",
}

// String returns the solver name.
func (s Solver) String() string {
	if name, ok := solverNames[s]; ok {
		return name
	}

	return "unknown"
}

// ParseSolver returns the solver for a case-insensitive name.
func ParseSolver(name string) (Solver, error) {
	for s, n := range solverNames {
		if strings.EqualFold(n, name) {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown solver %q (want newton, bfgs or normal)", errs.ErrInvalidOption, name)
}

// WeightedConfig holds the FitWeighted settings.
type WeightedConfig struct {
	// Solver is the minimization strategy.
	Solver Solver
	// MaxIterations bounds the major iterations of the iterative solvers.
	MaxIterations int
	// Tolerance is the gradient threshold in standardized coordinates.
	Tolerance float64
	// Confidence is the two-sided confidence level of the parameter intervals.
	Confidence float64
	// ScaleCovariance multiplies the covariance by the reduced χ².
	ScaleCovariance bool
}

func defaultWeightedConfig() WeightedConfig {
	return WeightedConfig{
		Solver:        SolverNewton,
		MaxIterations: 100,
		Tolerance:     1e-9,
		Confidence:    0.95,
	}
}

// NewWeightedConfig returns the defaults with opts applied.
func NewWeightedConfig(opts ...WeightedOption) (WeightedConfig, error) {
	cfg := defaultWeightedConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return WeightedConfig{}, err
	}

	return cfg, nil
}

// WeightedOption is a functional option for WeightedConfig.
type WeightedOption = options.Option[*WeightedConfig]

// WithSolver sets the minimization strategy.
func WithSolver(s Solver) WeightedOption {
	return options.New(func(cfg *WeightedConfig) error {
		if _, ok := solverNames[s]; !ok {
			return fmt.Errorf("%w: solver %d", errs.ErrInvalidOption, int(s))
		}
		cfg.Solver = s

		return nil
	})
}

// WithMaxIterations bounds the iterations of the iterative solvers.
func WithMaxIterations(n int) WeightedOption {
	return options.New(func(cfg *WeightedConfig) error {
		if n <= 0 {
			return fmt.Errorf("%w: max iterations must be positive, got %d", errs.ErrInvalidOption, n)
		}
		cfg.MaxIterations = n

		return nil
	})
}

// WithTolerance sets the gradient threshold of the iterative solvers.
func WithTolerance(tol float64) WeightedOption {
	return options.New(func(cfg *WeightedConfig) error {
		if !(tol > 0) {
			return fmt.Errorf("%w: tolerance must be positive, got %g", errs.ErrInvalidOption, tol)
		}
		cfg.Tolerance = tol

		return nil
	})
}

// WithConfidence sets the confidence level of the parameter intervals, in (0, 1).
func WithConfidence(level float64) WeightedOption {
	return options.New(func(cfg *WeightedConfig) error {
		if !(level > 0 && level < 1) {
			return fmt.Errorf("%w: confidence must be in (0, 1), got %g", errs.ErrInvalidOption, level)
		}
		cfg.Confidence = level

		return nil
	})
}

// WithScaledCovariance treats σ as relative weights and rescales the covariance
// by the reduced χ².
func WithScaledCovariance() WeightedOption {
	return options.NoError(func(cfg *WeightedConfig) {
		cfg.ScaleCovariance = true
	})
}
