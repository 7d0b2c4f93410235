package contrast

import (
	"fmt"
	"strings"
)

// Reserved keys for the bookkeeping contrasts appended to every set.
const (
	EffectsInterestKey = "effects_interest"
	DerivativesKey     = "derivatives"
)

// derivativeSuffix marks temporal-derivative regressors by naming convention.
const derivativeSuffix = "_derivative"

// nuisanceLabels is the fixed set of non-task regressor names: motion
// parameters, the intercept, and numbered drift/confound terms.
var nuisanceLabels = buildNuisanceLabels()

func buildNuisanceLabels() map[string]bool {
	labels := map[string]bool{
		"tx": true, "ty": true, "tz": true,
		"rx": true, "ry": true, "rz": true,
		"constant": true,
	}
	for i := 0; i < 20; i++ {
		labels[fmt.Sprintf("drift_%d", i)] = true
		labels[fmt.Sprintf("conf_%d", i)] = true
	}
	return labels
}

// IsNuisance reports whether a column label names a nuisance regressor.
func IsNuisance(label string) bool {
	return nuisanceLabels[label]
}

// IsDerivative reports whether a column label names a derivative regressor.
func IsDerivative(label string) bool {
	return strings.HasSuffix(label, derivativeSuffix) && len(label) > len(derivativeSuffix)
}

// AppendEffectsInterest inserts, under the effects_interest key, a multi-row
// contrast stacking the basis vectors of every column that is neither a
// nuisance regressor nor a derivative. The set is left untouched when no
// such column exists; re-applying the extension just rebuilds the same rows.
func AppendEffectsInterest(columns []string, set Set) Set {
	n := len(columns)
	var rows []Vector
	for i, label := range columns {
		if IsNuisance(label) || IsDerivative(label) {
			continue
		}
		rows = append(rows, Basis(n, i))
	}
	if len(rows) > 0 {
		set[EffectsInterestKey] = Contrast{Rows: rows}
	}
	return set
}

// AppendDerivatives inserts, under the derivatives key, a multi-row contrast
// stacking the basis vectors of every derivative column. No entry is added
// when the design matrix has no derivatives.
func AppendDerivatives(columns []string, set Set) Set {
	n := len(columns)
	var rows []Vector
	for i, label := range columns {
		if IsDerivative(label) {
			rows = append(rows, Basis(n, i))
		}
	}
	if len(rows) > 0 {
		set[DerivativesKey] = Contrast{Rows: rows}
	}
	return set
}

// OfInterest returns the elementary contrasts restricted to columns of
// interest: any column whose name does not start with a nuisance label.
// The prefix test (rather than equality) also drops derivative variants of
// nuisance terms.
func OfInterest(columns []string) (map[string]Vector, error) {
	con, err := Elementary(columns)
	if err != nil {
		return nil, err
	}
	out := make(map[string]Vector, len(con))
	for label, v := range con {
		if hasNuisancePrefix(label) {
			continue
		}
		out[label] = v
	}
	return out, nil
}

func hasNuisancePrefix(label string) bool {
	for nuisance := range nuisanceLabels {
		if strings.HasPrefix(label, nuisance) {
			return true
		}
	}
	return false
}
