package contrast

import (
	"math"
	"testing"

	"neurostat/internal/errors"
)

func vectorsEqual(a, b Vector) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-12 {
			return false
		}
	}
	return true
}

func TestElementaryBasis(t *testing.T) {
	columns := []string{"audio", "video", "motor"}
	con, err := Elementary(columns)
	if err != nil {
		t.Fatalf("Elementary failed: %v", err)
	}
	if len(con) != 3 {
		t.Fatalf("got %d contrasts, want 3", len(con))
	}
	if !vectorsEqual(con["video"], Vector{0, 1, 0}) {
		t.Errorf("video basis = %v", con["video"])
	}
}

func TestElementaryRejectsDuplicates(t *testing.T) {
	_, err := Elementary([]string{"audio", "audio"})
	if err == nil {
		t.Fatal("expected an error for duplicate column labels")
	}
}

func TestAppendEffectsInterestSkipsNuisance(t *testing.T) {
	columns := []string{"audio", "tx", "drift_3", "audio_derivative", "conf_19", "constant"}
	set := AppendEffectsInterest(columns, Set{})
	ei, ok := set[EffectsInterestKey]
	if !ok {
		t.Fatal("effects_interest missing")
	}
	if len(ei.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(ei.Rows))
	}
	if !vectorsEqual(ei.Rows[0], Vector{1, 0, 0, 0, 0, 0}) {
		t.Errorf("effects_interest row = %v", ei.Rows[0])
	}
}

func TestAppendEffectsInterestEmpty(t *testing.T) {
	columns := []string{"tx", "ty", "constant", "drift_0"}
	set := AppendEffectsInterest(columns, Set{})
	if _, ok := set[EffectsInterestKey]; ok {
		t.Fatal("effects_interest should not be added when every column is nuisance")
	}
}

func TestAppendDerivatives(t *testing.T) {
	columns := []string{"audio", "audio_derivative", "video", "video_derivative"}
	set := AppendDerivatives(columns, Set{})
	dv, ok := set[DerivativesKey]
	if !ok {
		t.Fatal("derivatives missing")
	}
	if len(dv.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(dv.Rows))
	}
	if !vectorsEqual(dv.Rows[0], Vector{0, 1, 0, 0}) {
		t.Errorf("first derivative row = %v", dv.Rows[0])
	}
}

func TestAppendExtensionsIdempotent(t *testing.T) {
	columns := []string{"audio", "audio_derivative", "tx"}
	set := Set{}
	AppendEffectsInterest(columns, set)
	AppendDerivatives(columns, set)
	AppendEffectsInterest(columns, set)
	AppendDerivatives(columns, set)
	if len(set[EffectsInterestKey].Rows) != 1 {
		t.Errorf("effects_interest grew on re-application: %d rows", len(set[EffectsInterestKey].Rows))
	}
	if len(set[DerivativesKey].Rows) != 1 {
		t.Errorf("derivatives grew on re-application: %d rows", len(set[DerivativesKey].Rows))
	}
}

func TestIsDerivative(t *testing.T) {
	cases := map[string]bool{
		"audio_derivative": true,
		"_derivative":      false,
		"audio":            false,
		"derivative":       false,
	}
	for label, want := range cases {
		if got := IsDerivative(label); got != want {
			t.Errorf("IsDerivative(%q) = %v, want %v", label, got, want)
		}
	}
}

func TestOfInterestDropsNuisancePrefixes(t *testing.T) {
	columns := []string{"we_all_reference", "tx", "tx_derivative", "drift_5", "conf_0", "constant"}
	con, err := OfInterest(columns)
	if err != nil {
		t.Fatalf("OfInterest failed: %v", err)
	}
	if len(con) != 1 {
		t.Fatalf("got %d contrasts, want 1: %v", len(con), con)
	}
	if _, ok := con["we_all_reference"]; !ok {
		t.Error("we_all_reference should survive the filter")
	}
}

func TestFirstPresent(t *testing.T) {
	con, err := Elementary([]string{"b", "c"})
	if err != nil {
		t.Fatal(err)
	}
	v, err := FirstPresent(con, "a", "b", "c")
	if err != nil {
		t.Fatalf("FirstPresent failed: %v", err)
	}
	if !vectorsEqual(v, Vector{1, 0}) {
		t.Errorf("fallback resolved to %v, want basis of b", v)
	}
	_, err = FirstPresent(con, "x", "y")
	if errors.GetCode(err) != errors.CodeMissingRegressor {
		t.Errorf("got code %q, want MISSING_REGRESSOR", errors.GetCode(err))
	}
}

func TestPolySixLevels(t *testing.T) {
	p := Poly(6)
	wantLinear := []float64{-1, -0.6, -0.2, 0.2, 0.6, 1}
	if !vectorsEqual(p.Linear, wantLinear) {
		t.Errorf("linear = %v, want %v", p.Linear, wantLinear)
	}
	var sum float64
	for _, q := range p.Quadratic {
		sum += q
	}
	if math.Abs(sum) > 1e-12 {
		t.Errorf("quadratic trend not mean-centered: sum = %g", sum)
	}
}

func TestCombine(t *testing.T) {
	vectors := []Vector{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	got := Combine([]float64{2, -1, 0.5}, vectors)
	if !vectorsEqual(got, Vector{2, -1, 0.5}) {
		t.Errorf("Combine = %v", got)
	}
}

func TestVectorAlgebra(t *testing.T) {
	a := Vector{1, 2}
	b := Vector{3, -1}
	if !vectorsEqual(a.Add(b), Vector{4, 1}) {
		t.Error("Add")
	}
	if !vectorsEqual(a.Sub(b), Vector{-2, 3}) {
		t.Error("Sub")
	}
	if !vectorsEqual(a.Neg(), Vector{-1, -2}) {
		t.Error("Neg")
	}
	if !vectorsEqual(Sum(a, b, b), Vector{7, 0}) {
		t.Error("Sum")
	}
}
