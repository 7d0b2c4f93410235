// Package group runs population-level analyses over first-level contrast
// maps: a fixed-effects ANOVA across subjects, contrasts and acquisitions,
// and similarity analyses of the contrast maps themselves.
package group

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"neurostat/domain/design"
	"neurostat/internal/errors"
)

// Values below this are considered numerically meaningless and zeroed out
// in the reported z maps.
const zFloor = -8.2095

// GLM holds a fitted mass-univariate ordinary least squares model: one
// regression per data column, sharing the design matrix.
type GLM struct {
	design *design.Matrix
	beta   *mat.Dense
	rss    []float64
	nObs   int
	nVox   int
}

// Fit regresses each column of data on the design matrix.
func Fit(dm *design.Matrix, data *mat.Dense) (*GLM, error) {
	nObs, nVox := data.Dims()
	dRows, dCols := dm.X.Dims()
	if dRows != nObs {
		return nil, errors.New(errors.CodeDegenerateDesign,
			"design matrix and data have mismatched observation counts")
	}
	if nObs <= dCols {
		return nil, errors.New(errors.CodeDegenerateDesign,
			"not enough observations to estimate the model")
	}
	var beta mat.Dense
	if err := beta.Solve(dm.X, data); err != nil {
		return nil, errors.Wrap(err, "least squares solve failed")
	}
	return &GLM{
		design: dm,
		beta:   &beta,
		rss:    residualSumSquares(dm.X, &beta, data),
		nObs:   nObs,
		nVox:   nVox,
	}, nil
}

// FactorZMap tests the joint effect of factor i with an F test against the
// model with that factor's columns removed, and converts the result to a z
// score per data column.
func (g *GLM) FactorZMap(data *mat.Dense, i int) ([]float64, error) {
	start, end := g.design.FactorSpan(i)
	q := end - start
	if q == 0 {
		return nil, errors.New(errors.CodeDegenerateDesign,
			"factor has no degrees of freedom")
	}
	reduced := dropColumns(g.design.X, start, end)
	var betaRed mat.Dense
	if err := betaRed.Solve(reduced, data); err != nil {
		return nil, errors.Wrap(err, "reduced model solve failed")
	}
	rssRed := residualSumSquares(reduced, &betaRed, data)

	_, p := g.design.X.Dims()
	dofErr := float64(g.nObs - p)
	fdist := distuv.F{D1: float64(q), D2: dofErr}

	z := make([]float64, g.nVox)
	for v := 0; v < g.nVox; v++ {
		if g.rss[v] <= 0 {
			z[v] = 0
			continue
		}
		f := ((rssRed[v] - g.rss[v]) / float64(q)) / (g.rss[v] / dofErr)
		if f < 0 {
			f = 0
		}
		z[v] = fToZ(fdist, f)
	}
	return z, nil
}

// fToZ maps an F statistic to the standard normal quantile with the same
// upper tail probability. Extreme statistics are clamped so the map stays
// finite.
func fToZ(fdist distuv.F, f float64) float64 {
	p := fdist.Survival(f)
	if p < 1e-16 {
		p = 1e-16
	}
	if p > 1-1e-16 {
		p = 1 - 1e-16
	}
	z := -distuv.UnitNormal.Quantile(p)
	if math.IsNaN(z) {
		return 0
	}
	return z
}

// floorZ zeroes every value at or below the reporting floor, in place.
func floorZ(z []float64) {
	for i, v := range z {
		if v <= zFloor {
			z[i] = 0
		}
	}
}

func residualSumSquares(x *mat.Dense, beta, data *mat.Dense) []float64 {
	var fitted mat.Dense
	fitted.Mul(x, beta)
	nObs, nVox := data.Dims()
	rss := make([]float64, nVox)
	for v := 0; v < nVox; v++ {
		var sum float64
		for r := 0; r < nObs; r++ {
			d := data.At(r, v) - fitted.At(r, v)
			sum += d * d
		}
		rss[v] = sum
	}
	return rss
}

func dropColumns(x *mat.Dense, start, end int) *mat.Dense {
	rows, cols := x.Dims()
	out := mat.NewDense(rows, cols-(end-start), nil)
	for r := 0; r < rows; r++ {
		k := 0
		for c := 0; c < cols; c++ {
			if c >= start && c < end {
				continue
			}
			out.Set(r, k, x.At(r, c))
			k++
		}
	}
	return out
}
