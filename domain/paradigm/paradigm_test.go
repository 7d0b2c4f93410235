package paradigm

import (
	"math"
	"reflect"
	"testing"

	"neurostat/domain/contrast"
	"neurostat/internal/errors"
)

func vectorsEqual(a, b contrast.Vector) bool {
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

func single(t *testing.T, set contrast.Set, name string) contrast.Vector {
	t.Helper()
	c, ok := set[name]
	if !ok {
		t.Fatalf("contrast %q missing from set", name)
	}
	return c.Vector()
}

func TestSchemaOnlyForEveryIdentifier(t *testing.T) {
	for _, id := range Identifiers() {
		set, err := MakeContrasts(id, nil)
		if err != nil {
			t.Errorf("%s: schema request failed: %v", id, err)
			continue
		}
		if id == "clips_trn" {
			if len(set) != 0 {
				t.Errorf("clips_trn should declare no contrasts, got %d", len(set))
			}
			continue
		}
		if len(set) == 0 {
			t.Errorf("%s: empty schema", id)
		}
		for name, c := range set {
			if !c.Empty() {
				t.Errorf("%s: schema entry %q carries rows", id, name)
			}
		}
	}
}

func TestUnknownParadigm(t *testing.T) {
	_, err := MakeContrasts("no_such_task", nil)
	if errors.GetCode(err) != errors.CodeUnknownParadigm {
		t.Fatalf("got code %q, want UNKNOWN_PARADIGM", errors.GetCode(err))
	}
	_, err = MakeContrasts("preference_cars", nil)
	if errors.GetCode(err) != errors.CodeUnknownParadigm {
		t.Fatalf("unknown preference domain: got code %q", errors.GetCode(err))
	}
}

func TestStopSignal(t *testing.T) {
	set, err := MakeContrasts("stop_signal", []string{"go", "stop", "tx", "constant"})
	if err != nil {
		t.Fatal(err)
	}
	if got := single(t, set, "stop-go"); !vectorsEqual(got, contrast.Vector{-1, 1, 0, 0}) {
		t.Errorf("stop-go = %v", got)
	}
	ei := set[contrast.EffectsInterestKey]
	if len(ei.Rows) != 2 {
		t.Errorf("effects_interest has %d rows, want 2", len(ei.Rows))
	}
}

func TestMissingRegressorIsFatal(t *testing.T) {
	_, err := MakeContrasts("stop_signal", []string{"go", "tx"})
	if errors.GetCode(err) != errors.CodeMissingRegressor {
		t.Fatalf("got code %q, want MISSING_REGRESSOR", errors.GetCode(err))
	}
}

func TestWedgeFamilyEquivalence(t *testing.T) {
	columns := []string{
		"lower_meridian", "lower_right", "right_meridian", "upper_right",
		"upper_meridian", "upper_left", "left_meridian", "lower_left",
	}
	base, err := MakeContrasts("wedge", columns)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"wedge_anti", "wedge_clock"} {
		got, err := MakeContrasts(id, columns)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		if !reflect.DeepEqual(got, base) {
			t.Errorf("%s differs from wedge", id)
		}
	}
}

func TestRingFamilyEquivalence(t *testing.T) {
	columns := []string{"foveal", "middle", "peripheral"}
	base, err := MakeContrasts("ring", columns)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"cont_ring", "exp_ring"} {
		got, err := MakeContrasts(id, columns)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		if !reflect.DeepEqual(got, base) {
			t.Errorf("%s differs from ring", id)
		}
	}
}

func TestHCPCaseFolding(t *testing.T) {
	set, err := MakeContrasts("hcp_language", []string{"MATH", "STORY", "tx"})
	if err != nil {
		t.Fatal(err)
	}
	if got := single(t, set, "math-story"); !vectorsEqual(got, contrast.Vector{1, -1, 0}) {
		t.Errorf("math-story = %v", got)
	}
}

func TestHCPMotorAverage(t *testing.T) {
	columns := []string{"LEFT_HAND", "RIGHT_HAND", "LEFT_FOOT", "RIGHT_FOOT", "TONGUE", "CUE"}
	set, err := MakeContrasts("hcp_motor", columns)
	if err != nil {
		t.Fatal(err)
	}
	got := single(t, set, "tongue-avg")
	want := contrast.Vector{-0.2, -0.2, -0.2, -0.2, 0.8, 0}
	if !vectorsEqual(got, want) {
		t.Errorf("tongue-avg = %v, want %v", got, want)
	}
}

func TestPreferencePluralTolerated(t *testing.T) {
	columns := []string{"painting_linear", "painting_constant", "painting_quadratic"}
	base, err := MakeContrasts("preference_painting", columns)
	if err != nil {
		t.Fatal(err)
	}
	plural, err := MakeContrasts("preference_paintings", columns)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(base, plural) {
		t.Error("plural identifier resolved to a different contrast set")
	}
}

func TestVSTMTrends(t *testing.T) {
	columns := []string{
		"response_num_1", "response_num_2", "response_num_3",
		"response_num_4", "response_num_5", "response_num_6", "tx",
	}
	set, err := MakeContrasts("VSTM", columns)
	if err != nil {
		t.Fatal(err)
	}
	linear := single(t, set, "vstm_linear")
	want := contrast.Vector{-1, -0.6, -0.2, 0.2, 0.6, 1, 0}
	if !vectorsEqual(linear, want) {
		t.Errorf("vstm_linear = %v, want %v", linear, want)
	}
	quadratic := single(t, set, "vstm_quadratic")
	var sum float64
	for _, v := range quadratic {
		sum += v
	}
	if math.Abs(sum) > 1e-12 {
		t.Errorf("vstm_quadratic coefficients sum to %g", sum)
	}
}

func TestSelfFallbackChains(t *testing.T) {
	// Subject with self hits only: recognition_hit falls back to the self
	// hits, recognition_other resolves through the miss column.
	columns := []string{
		"encode_self", "encode_other", "instructions", "false_alarm",
		"recognition_self_hit", "recognition_other_miss",
	}
	set, err := MakeContrasts("self", columns)
	if err != nil {
		t.Fatal(err)
	}
	selfHit := contrast.Basis(len(columns), 4)
	if got := single(t, set, "recognition_hit"); !vectorsEqual(got, selfHit) {
		t.Errorf("recognition_hit = %v, want self-hit basis", got)
	}
	falseAlarm := contrast.Basis(len(columns), 3)
	if got := single(t, set, "correct_rejection"); !vectorsEqual(got, falseAlarm) {
		t.Errorf("correct_rejection = %v, want false_alarm basis", got)
	}
	otherMiss := contrast.Basis(len(columns), 5)
	if got := single(t, set, "recognition_other_hit"); !vectorsEqual(got, otherMiss) {
		t.Errorf("recognition_other_hit = %v, want other-miss basis", got)
	}
}

func TestSelfBothRecognitionColumns(t *testing.T) {
	columns := []string{
		"encode_self", "encode_other", "instructions", "false_alarm",
		"correct_rejection", "recognition_self_hit", "recognition_other_hit",
	}
	set, err := MakeContrasts("self", columns)
	if err != nil {
		t.Fatal(err)
	}
	want := contrast.Basis(len(columns), 5).Add(contrast.Basis(len(columns), 6))
	if got := single(t, set, "recognition_hit"); !vectorsEqual(got, want) {
		t.Errorf("recognition_hit = %v, want sum of both hit columns", got)
	}
}

func TestMTTDropsNuisanceColumns(t *testing.T) {
	columns := []string{
		"we_all_reference", "we_all_space_cue", "we_all_time_cue",
		"we_all_event_response",
		"we_westside_close_event", "we_westside_far_event",
		"we_eastside_close_event", "we_eastside_far_event",
		"we_before_close_event", "we_before_far_event",
		"we_after_close_event", "we_after_far_event",
		"tx", "ty", "tz", "rx", "ry", "rz", "constant", "drift_0",
	}
	set, err := MakeContrasts("MTTWE", columns)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := set[contrast.DerivativesKey]; ok {
		t.Error("MTT sets must not carry a derivatives contrast")
	}
	ei, ok := set[contrast.EffectsInterestKey]
	if !ok {
		t.Fatal("effects_interest missing")
	}
	if len(ei.Rows) != 12 {
		t.Errorf("effects_interest has %d rows, want 12", len(ei.Rows))
	}
	westside := single(t, set, "we_westside_event")
	want := contrast.Basis(len(columns), 4).Add(contrast.Basis(len(columns), 5))
	if !vectorsEqual(westside, want) {
		t.Errorf("we_westside_event = %v", westside)
	}
	if got := single(t, set, "we_all_time-space_cue"); !vectorsEqual(got,
		single(t, set, "we_all_space-time_cue").Neg()) {
		t.Error("time-space cue is not the negation of space-time cue")
	}
}

func TestSchemaMismatchSurfaces(t *testing.T) {
	// A mismatch needs a definition bug, so exercise the validator directly.
	d := begin("stroop", stroopNames, []string{"congruent", "incongruent"})
	d.elem("congruent", "incongruent")
	d.set("incongruent-congruent", d.get("incongruent").Sub(d.get("congruent")))
	// "congruent-incongruent" deliberately left out
	_, err := d.finish()
	if errors.GetCode(err) != errors.CodeSchemaMismatch {
		t.Fatalf("got code %q, want SCHEMA_MISMATCH", errors.GetCode(err))
	}
}

func TestIdentifiersSortedAndComplete(t *testing.T) {
	ids := Identifiers()
	seen := map[string]bool{}
	for i, id := range ids {
		if seen[id] {
			t.Errorf("duplicate identifier %q", id)
		}
		seen[id] = true
		if i > 0 && ids[i-1] > id {
			t.Fatal("identifiers are not sorted")
		}
	}
	for _, id := range []string{"archi_standard", "wedge_anti", "preference_face", "clips_trn"} {
		if !seen[id] {
			t.Errorf("identifier %q missing", id)
		}
	}
}
