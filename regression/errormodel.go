package regression

// ErrorModel produces the per-point uncertainty of y used to weight a fit.
type ErrorModel interface {
	Errors(x, y []float64) []float64
}

// RelativeError assigns σ_i = Fraction·|y_i|.
type RelativeError struct {
	Fraction float64
}

// Errors returns Fraction·|y_i| for every point.
func (e RelativeError) Errors(_, y []float64) []float64 {
	out := make([]float64, len(y))
	for i, v := range y {
		if v < 0 {
			v = -v
		}
		out[i] = e.Fraction * v
	}

	return out
}

// FixedError assigns the same σ to every point.
type FixedError struct {
	Value float64
}

// Errors returns Value for every point.
func (e FixedError) Errors(x, _ []float64) []float64 {
	out := make([]float64, len(x))
	for i := range out {
		out[i] = e.Value
	}

	return out
}

// ErrorFunc adapts a function to ErrorModel.
type ErrorFunc func(x, y []float64) []float64

// Errors calls fn(x, y).
func (fn ErrorFunc) Errors(x, y []float64) []float64 {
	return fn(x, y)
}
