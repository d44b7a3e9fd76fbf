package regression

import (
	"fmt"
	"strings"

	"github.com/arloliu/wehnelt/errs"
)

// ModelType identifies the fit that produced a set of line coefficients.
type ModelType int

const (
	// ModelTypeOLS is the unweighted ordinary least squares line.
	ModelTypeOLS ModelType = iota
	// ModelTypeWeighted is the weighted least squares line.
	ModelTypeWeighted
)

var modelTypeNames = map[ModelType]string{
	ModelTypeOLS:      "ols",
	ModelTypeWeighted: "weighted",
}

// String returns the string representation of the model type.
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

// ModelTypeFromString returns the ModelType for a given string name.
// Returns ModelType(-1) for unknown names.
func ModelTypeFromString(name string) ModelType {
	for mt, n := range modelTypeNames {
		if n == strings.ToLower(name) {
			return mt
		}
	}

	return ModelType(-1)
}

// Estimator evaluates a fitted line.
type Estimator interface {
	// Estimate returns the fitted y at x.
	Estimate(x float64) float64
	// Type returns the fit that produced the coefficients.
	Type() ModelType
	// Coefficients returns [slope, intercept].
	Coefficients() []float64
	// SetCoefficients replaces the coefficients. Exactly 2 are expected: [slope, intercept].
	SetCoefficients(coeffs []float64) error
}

// LinearEstimator implements y = m·x + c.
type LinearEstimator struct {
	modelType ModelType
	m, c      float64
	coeffs    []float64 // Cached coefficient slice to avoid allocations
}

var _ Estimator = (*LinearEstimator)(nil)

// NewLinearEstimator creates an estimator for the line y = m·x + c.
func NewLinearEstimator(modelType ModelType, m, c float64) *LinearEstimator {
	return &LinearEstimator{
		modelType: modelType,
		m:         m,
		c:         c,
		coeffs:    make([]float64, 2),
	}
}

// NewEstimator creates an estimator for the given model type and coefficients.
//
// Parameters:
//   - modelType: The fit that produced the coefficients
//   - coeffs: [slope, intercept]
//
// Returns:
//   - Estimator: The configured estimator
//   - error: errs.ErrInvalidOption for an unknown model type or wrong coefficient count
func NewEstimator(modelType ModelType, coeffs []float64) (Estimator, error) {
	if _, ok := modelTypeNames[modelType]; !ok {
		return nil, fmt.Errorf("%w: unknown model type %d", errs.ErrInvalidOption, int(modelType))
	}

	e := NewLinearEstimator(modelType, 0, 0)
	if err := e.SetCoefficients(coeffs); err != nil {
		return nil, err
	}

	return e, nil
}

// Estimate calculates y = m·x + c.
func (l *LinearEstimator) Estimate(x float64) float64 {
	return l.m*x + l.c
}

// Type returns the model type.
func (l *LinearEstimator) Type() ModelType {
	return l.modelType
}

// Coefficients returns the model coefficients [m, c].
func (l *LinearEstimator) Coefficients() []float64 {
	l.coeffs[0] = l.m
	l.coeffs[1] = l.c

	return l.coeffs
}

// SetCoefficients updates the coefficients of the line.
// Expects exactly 2 coefficients: [m, c] for the formula y = m·x + c.
func (l *LinearEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("%w: linear model expects exactly 2 coefficients, got %d", errs.ErrInvalidOption, len(coeffs))
	}
	l.m = coeffs[0]
	l.c = coeffs[1]

	return nil
}

// Residuals returns y_i − Estimate(x_i) for each point.
func Residuals(e Estimator, x, y []float64) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		out[i] = y[i] - e.Estimate(x[i])
	}

	return out
}
