package design

import (
	"reflect"
	"testing"
)

func TestEncodeSortsClasses(t *testing.T) {
	f, err := Encode("subject", []string{"sub-02", "sub-01", "sub-02", "sub-03"})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(f.Classes, []string{"sub-01", "sub-02", "sub-03"}) {
		t.Errorf("classes = %v", f.Classes)
	}
	rows, cols := f.Indic.Dims()
	if rows != 4 || cols != 3 {
		t.Fatalf("indicator is %dx%d, want 4x3", rows, cols)
	}
	if f.Indic.At(0, 1) != 1 || f.Indic.At(1, 0) != 1 {
		t.Error("one-hot rows misplaced")
	}
	if f.DoF() != 2 {
		t.Errorf("DoF = %d, want 2", f.DoF())
	}
}

func TestEncodeEmpty(t *testing.T) {
	if _, err := Encode("subject", nil); err == nil {
		t.Fatal("expected an error for an empty factor")
	}
}

func TestBuildReferenceCoding(t *testing.T) {
	subjects, _ := Encode("subject", []string{"a", "b", "a", "b"})
	conditions, _ := Encode("condition", []string{"x", "x", "y", "y"})
	m, err := Build(subjects, conditions)
	if err != nil {
		t.Fatal(err)
	}
	rows, cols := m.X.Dims()
	if rows != 4 || cols != 3 {
		t.Fatalf("design is %dx%d, want 4x3 (1+1 factor columns + intercept)", rows, cols)
	}
	if !reflect.DeepEqual(m.Labels, []string{"a", "x", "intercept"}) {
		t.Errorf("labels = %v", m.Labels)
	}
	for r := 0; r < rows; r++ {
		if m.X.At(r, cols-1) != 1 {
			t.Fatal("intercept column must be all ones")
		}
	}
	start, end := m.FactorSpan(1)
	if start != 1 || end != 2 {
		t.Errorf("condition span = [%d,%d)", start, end)
	}
}

func TestBuildMismatchedFactors(t *testing.T) {
	a, _ := Encode("a", []string{"x", "y"})
	b, _ := Encode("b", []string{"x", "y", "z"})
	if _, err := Build(a, b); err == nil {
		t.Fatal("expected an error for mismatched observation counts")
	}
}

func TestSmallestSingularValue(t *testing.T) {
	subjects, _ := Encode("subject", []string{"a", "b", "a", "b", "a", "b"})
	conditions, _ := Encode("condition", []string{"x", "x", "y", "y", "z", "z"})
	m, err := Build(subjects, conditions)
	if err != nil {
		t.Fatal(err)
	}
	if sv := m.SmallestSingularValue(); sv <= 0 {
		t.Errorf("crossed design should be full rank, smallest singular value = %g", sv)
	}
}
