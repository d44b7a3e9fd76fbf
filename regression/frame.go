package regression

import (
	"fmt"
	"math"

	"github.com/arloliu/wehnelt/errs"
)

// frame holds a weighted series in standardized coordinates
// u = (x − x̄)/sx, v = (y − ȳ)/sy, where the means and spreads are weighted by
// the normalized weights ŵ = w/Σw with w = 1/σ².
//
// In this frame Σŵu = 0 and Σŵu² = 1, so the χ² Hessian is 2·I whatever the
// units of x and y.
type frame struct {
	w     []float64 // normalized weights, Σw = 1
	u, v  []float64
	sumW  float64 // Σ 1/σ² before normalization
	xMean float64
	yMean float64
	sx    float64
	sy    float64
}

func newFrame(x, y, sigma []float64) (*frame, error) {
	n := len(x)
	f := &frame{
		w: make([]float64, n),
		u: make([]float64, n),
		v: make([]float64, n),
	}

	for i, s := range sigma {
		f.w[i] = 1 / (s * s)
		f.sumW += f.w[i]
	}
	if !isFinite(f.sumW) || f.sumW <= 0 {
		return nil, fmt.Errorf("%w: %w: weights sum to %g", errs.ErrFitConvergence, errs.ErrInvalidUncertainty, f.sumW)
	}
	for i := range f.w {
		f.w[i] /= f.sumW
		f.xMean += f.w[i] * x[i]
		f.yMean += f.w[i] * y[i]
	}

	var vx, vy float64
	for i := range x {
		dx := x[i] - f.xMean
		dy := y[i] - f.yMean
		vx += f.w[i] * dx * dx
		vy += f.w[i] * dy * dy
	}
	f.sx = math.Sqrt(vx)
	f.sy = math.Sqrt(vy)
	if f.sx == 0 || !isFinite(f.sx) {
		return nil, fmt.Errorf("%w: singular normal matrix (x spread %g)", errs.ErrFitConvergence, f.sx)
	}
	if allEqual(y) || f.sy == 0 {
		f.sy = 1
	}

	for i := range x {
		f.u[i] = (x[i] - f.xMean) / f.sx
		f.v[i] = (y[i] - f.yMean) / f.sy
	}

	return f, nil
}

// toStandard maps a line in original coordinates to (a, b) with v = a + b·u.
func (f *frame) toStandard(m, c float64) (a, b float64) {
	a = (c + m*f.xMean - f.yMean) / f.sy
	b = m * f.sx / f.sy

	return a, b
}

// fromStandard maps (a, b) back to slope and intercept.
func (f *frame) fromStandard(a, b float64) (m, c float64) {
	m = f.sy * b / f.sx
	c = f.yMean + f.sy*a - m*f.xMean

	return m, c
}

// objective returns Σŵ(a + b·u − v)².
func (f *frame) objective(p []float64) float64 {
	sum := 0.0
	for i := range f.u {
		r := p[0] + p[1]*f.u[i] - f.v[i]
		sum += f.w[i] * r * r
	}

	return sum
}

// gradient writes ∂objective/∂(a, b) into grad.
func (f *frame) gradient(grad, p []float64) {
	grad[0], grad[1] = 0, 0
	for i := range f.u {
		r := p[0] + p[1]*f.u[i] - f.v[i]
		grad[0] += 2 * f.w[i] * r
		grad[1] += 2 * f.w[i] * r * f.u[i]
	}
}

// moments returns Σŵ, Σŵu and Σŵu², the entries of the normal matrix.
func (f *frame) moments() (s0, s1, s2 float64) {
	for i := range f.u {
		s0 += f.w[i]
		s1 += f.w[i] * f.u[i]
		s2 += f.w[i] * f.u[i] * f.u[i]
	}

	return s0, s1, s2
}
