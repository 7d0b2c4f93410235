package contrast

// PolyCoeffs holds orthogonal-polynomial coefficient vectors over an ordered
// factor with n levels: a constant trend (all ones), a linear trend evenly
// spaced over [-1, 1], and a quadratic trend (squared linear, mean-centered).
type PolyCoeffs struct {
	Constant  []float64
	Linear    []float64
	Quadratic []float64
}

// Poly builds the three trend coefficient vectors for n ordered levels.
func Poly(n int) PolyCoeffs {
	constant := make([]float64, n)
	linear := make([]float64, n)
	quadratic := make([]float64, n)
	step := 2.0 / float64(n-1)
	mean := 0.0
	for i := 0; i < n; i++ {
		constant[i] = 1
		linear[i] = -1 + float64(i)*step
		quadratic[i] = linear[i] * linear[i]
		mean += quadratic[i]
	}
	mean /= float64(n)
	for i := range quadratic {
		quadratic[i] -= mean
	}
	return PolyCoeffs{Constant: constant, Linear: linear, Quadratic: quadratic}
}

// Combine forms the dot product of a coefficient vector with a stack of
// elementary regressor vectors, in factor-level order: the resulting vector
// assigns coeffs[i] to the column selected by vectors[i].
func Combine(coeffs []float64, vectors []Vector) Vector {
	out := make(Vector, len(vectors[0]))
	for i, v := range vectors {
		for j := range v {
			out[j] += coeffs[i] * v[j]
		}
	}
	return out
}
