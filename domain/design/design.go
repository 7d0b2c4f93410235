// Package design builds second-level design matrices from categorical
// factors: label encoding, one-hot expansion, and reference coding with the
// last category of each factor dropped against an intercept column.
package design

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"neurostat/internal/errors"
)

// Factor is one categorical factor: its sorted class labels and the one-hot
// indicator matrix (observations × classes).
type Factor struct {
	Name    string
	Classes []string
	Indic   *mat.Dense
}

// Encode label-encodes a categorical feature and expands it to a one-hot
// indicator matrix. Classes are sorted, matching the column order used
// downstream.
func Encode(name string, values []string) (*Factor, error) {
	if len(values) == 0 {
		return nil, errors.New(errors.CodeDegenerateDesign, "cannot encode an empty factor")
	}
	seen := map[string]bool{}
	var classes []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			classes = append(classes, v)
		}
	}
	sort.Strings(classes)
	index := make(map[string]int, len(classes))
	for i, c := range classes {
		index[c] = i
	}
	indic := mat.NewDense(len(values), len(classes), nil)
	for row, v := range values {
		indic.Set(row, index[v], 1)
	}
	return &Factor{Name: name, Classes: classes, Indic: indic}, nil
}

// DoF returns the factor's degrees of freedom under reference coding.
func (f *Factor) DoF() int {
	return len(f.Classes) - 1
}

// Matrix is an assembled second-level design: reference-coded factor blocks
// plus a trailing intercept column.
type Matrix struct {
	X       *mat.Dense
	Labels  []string
	Factors []*Factor
	// Offsets[i] is the first design column of factor i; each factor spans
	// DoF columns.
	Offsets []int
}

// Build concatenates the factors under reference coding (last class of each
// factor dropped) and appends an intercept.
func Build(factors ...*Factor) (*Matrix, error) {
	if len(factors) == 0 {
		return nil, errors.New(errors.CodeDegenerateDesign, "no factors given")
	}
	rows, _ := factors[0].Indic.Dims()
	cols := 1
	for _, f := range factors {
		r, _ := f.Indic.Dims()
		if r != rows {
			return nil, errors.New(errors.CodeDegenerateDesign,
				"factors have mismatched observation counts")
		}
		cols += f.DoF()
	}
	x := mat.NewDense(rows, cols, nil)
	var labels []string
	offsets := make([]int, len(factors))
	col := 0
	for i, f := range factors {
		offsets[i] = col
		for j := 0; j < f.DoF(); j++ {
			for row := 0; row < rows; row++ {
				x.Set(row, col, f.Indic.At(row, j))
			}
			labels = append(labels, f.Classes[j])
			col++
		}
	}
	for row := 0; row < rows; row++ {
		x.Set(row, col, 1)
	}
	labels = append(labels, "intercept")
	return &Matrix{X: x, Labels: labels, Factors: factors, Offsets: offsets}, nil
}

// SmallestSingularValue reports the conditioning of the design. A value
// near zero means a rank-deficient design; callers decide whether to
// proceed.
func (m *Matrix) SmallestSingularValue() float64 {
	var svd mat.SVD
	if !svd.Factorize(m.X, mat.SVDNone) {
		return 0
	}
	values := svd.Values(nil)
	return values[len(values)-1]
}

// FactorSpan returns the half-open design-column range covered by factor i.
func (m *Matrix) FactorSpan(i int) (start, end int) {
	start = m.Offsets[i]
	return start, start + m.Factors[i].DoF()
}
