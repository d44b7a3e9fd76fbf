package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	"github.com/arloliu/wehnelt/errs"
)

// acceptGradient is the largest standardized gradient norm a solver result may
// leave behind when the configured tolerance is tighter.
const acceptGradient = 1e-5

// solution is a line v = a + b·u in standardized coordinates.
type solution struct {
	a, b       float64
	iterations int
}

func solve(f *frame, start []float64, cfg WeightedConfig) (solution, error) {
	switch cfg.Solver {
	case SolverNormal:
		return solveNormal(f)
	case SolverBFGS:
		return minimize(f, start, cfg, &optimize.BFGS{})
	default:
		return minimize(f, start, cfg, &optimize.Newton{})
	}
}

// solveNormal solves the weighted normal equations by Cholesky factorization.
func solveNormal(f *frame) (solution, error) {
	s0, s1, s2 := f.moments()

	var r0, r1 float64
	for i := range f.u {
		r0 += f.w[i] * f.v[i]
		r1 += f.w[i] * f.u[i] * f.v[i]
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(mat.NewSymDense(2, []float64{s0, s1, s1, s2})); !ok {
		return solution{}, fmt.Errorf("%w: normal matrix is not positive definite", errs.ErrFitConvergence)
	}

	var p mat.VecDense
	if err := chol.SolveVecTo(&p, mat.NewVecDense(2, []float64{r0, r1})); err != nil {
		return solution{}, fmt.Errorf("%w: normal equations: %v", errs.ErrFitConvergence, err)
	}

	return solution{a: p.AtVec(0), b: p.AtVec(1)}, nil
}

// minimize runs a gonum optimizer on the standardized χ² and checks that the
// returned point is a stationary point.
func minimize(f *frame, start []float64, cfg WeightedConfig, method optimize.Method) (solution, error) {
	problem := optimize.Problem{
		Func: f.objective,
		Grad: f.gradient,
		Hess: func(dst *mat.SymDense, _ []float64) {
			s0, s1, s2 := f.moments()
			dst.SetSym(0, 0, 2*s0)
			dst.SetSym(0, 1, 2*s1)
			dst.SetSym(1, 1, 2*s2)
		},
	}
	settings := &optimize.Settings{
		GradientThreshold: cfg.Tolerance,
		MajorIterations:   cfg.MaxIterations,
	}

	res, err := optimize.Minimize(problem, start, settings, method)
	if res == nil {
		return solution{}, fmt.Errorf("%w: %s: %v", errs.ErrFitConvergence, cfg.Solver, err)
	}
	if res.Status == optimize.IterationLimit {
		return solution{}, fmt.Errorf("%w: %s stopped after %d iterations", errs.ErrFitConvergence, cfg.Solver, res.Stats.MajorIterations)
	}

	grad := make([]float64, 2)
	f.gradient(grad, res.X)
	norm := math.Max(math.Abs(grad[0]), math.Abs(grad[1]))
	limit := math.Max(cfg.Tolerance, acceptGradient)
	if !isFinite(res.X[0]) || !isFinite(res.X[1]) || !(norm <= limit) {
		return solution{}, fmt.Errorf("%w: %s ended with gradient %g (status %v, err %v)",
			errs.ErrFitConvergence, cfg.Solver, norm, res.Status, err)
	}

	return solution{a: res.X[0], b: res.X[1], iterations: res.Stats.MajorIterations}, nil
}
