// Package contrast provides the vector algebra underneath paradigm contrast
// definitions: elementary (basis) contrasts over design-matrix columns,
// linear combinations thereof, and the two bookkeeping extensions applied to
// every paradigm's contrast set.
package contrast

import (
	"fmt"

	"neurostat/internal/errors"
)

// Vector is one row of a contrast: a linear combination of design-matrix
// columns, with one coefficient per column.
type Vector []float64

// Contrast is a named linear combination of design-matrix columns. Most
// contrasts are a single row; bookkeeping contrasts such as effects_interest
// span several rows, one basis vector each.
type Contrast struct {
	Rows []Vector
}

// Set maps contrast names to contrasts for one design matrix. All vectors in
// a Set share the same length; combining vectors from different design
// matrices is never valid.
type Set map[string]Contrast

// Single wraps one vector as a contrast.
func Single(v Vector) Contrast {
	return Contrast{Rows: []Vector{v}}
}

// Vector returns the single row of a one-row contrast.
func (c Contrast) Vector() Vector {
	if len(c.Rows) != 1 {
		panic(fmt.Sprintf("contrast has %d rows, expected 1", len(c.Rows)))
	}
	return c.Rows[0]
}

// Empty reports whether the contrast carries no rows (the schema-only case).
func (c Contrast) Empty() bool {
	return len(c.Rows) == 0
}

// Basis returns the standard basis vector of length n selecting column i.
func Basis(n, i int) Vector {
	v := make(Vector, n)
	v[i] = 1
	return v
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + w[i]
	}
	return out
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] - w[i]
	}
	return out
}

// Scale returns a*v.
func (v Vector) Scale(a float64) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = a * v[i]
	}
	return out
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return v.Scale(-1)
}

// Sum adds any number of vectors.
func Sum(vs ...Vector) Vector {
	out := make(Vector, len(vs[0]))
	for _, v := range vs {
		for i := range v {
			out[i] += v[i]
		}
	}
	return out
}

// Elementary returns one basis contrast per design-matrix column, keyed by
// column label. Labels must be unique within a design matrix; duplicates are
// a caller bug and rejected outright.
func Elementary(columns []string) (map[string]Vector, error) {
	n := len(columns)
	con := make(map[string]Vector, n)
	for i, label := range columns {
		if _, dup := con[label]; dup {
			return nil, errors.New(errors.CodeInternalError,
				fmt.Sprintf("duplicate design-matrix column %q", label))
		}
		con[label] = Basis(n, i)
	}
	return con, nil
}

// Get fetches the elementary contrast for label, or a MISSING_REGRESSOR
// error when the subject's design matrix has no such column.
func Get(con map[string]Vector, label string) (Vector, error) {
	v, ok := con[label]
	if !ok {
		return nil, errors.MissingRegressor(label)
	}
	return v, nil
}

// FirstPresent resolves an ordered fallback chain: it returns the elementary
// contrast of the first candidate present in the design matrix. The
// candidate order is paradigm-specific configuration, not error handling.
func FirstPresent(con map[string]Vector, candidates ...string) (Vector, error) {
	for _, name := range candidates {
		if v, ok := con[name]; ok {
			return v, nil
		}
	}
	return nil, errors.MissingRegressor(candidates...)
}
