package paradigm

import (
	"neurostat/domain/contrast"
)

// Definitions for the Stanford self-regulation battery.

var selectiveStopSignalNames = []string{
	"go", "stop", "ignore",
	"stop-go", "ignore-stop", "stop-ignore", "ignore-go",
}

func selectiveStopSignal(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(selectiveStopSignalNames), nil
	}
	d := begin("selective_stop_signal", selectiveStopSignalNames, columns)
	d.elem("go", "stop", "ignore")
	d.set("stop-go", d.get("stop").Sub(d.get("go")))
	d.set("ignore-stop", d.get("ignore").Sub(d.get("stop")))
	d.set("stop-ignore", d.get("stop").Sub(d.get("ignore")))
	d.set("ignore-go", d.get("ignore").Sub(d.get("go")))
	return d.finish()
}

var stopSignalNames = []string{"go", "stop", "stop-go"}

func stopSignal(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(stopSignalNames), nil
	}
	d := begin("stop_signal", stopSignalNames, columns)
	d.elem("go", "stop")
	d.set("stop-go", d.get("stop").Sub(d.get("go")))
	return d.finish()
}

var stroopNames = []string{
	"congruent", "incongruent", "congruent-incongruent", "incongruent-congruent",
}

func stroop(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(stroopNames), nil
	}
	d := begin("stroop", stroopNames, columns)
	d.elem("congruent", "incongruent")
	d.set("incongruent-congruent", d.get("incongruent").Sub(d.get("congruent")))
	d.set("congruent-incongruent", d.get("congruent").Sub(d.get("incongruent")))
	return d.finish()
}

var discountNames = []string{"delay", "amount"}

func discount(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(discountNames), nil
	}
	d := begin("discount", discountNames, columns)
	d.elem("delay", "amount")
	return d.finish()
}

var attentionNames = []string{
	"spatial_cue-double_cue",
	"spatial_cue", "double_cue",
	"incongruent-congruent", "spatial_incongruent-spatial_congruent",
	"double_incongruent-double_congruent", "spatial_incongruent",
	"double_congruent", "spatial_congruent",
	"double_incongruent",
}

func attention(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(attentionNames), nil
	}
	d := begin("attention", attentionNames, columns)
	d.set("spatial_cue-double_cue", d.get("spatialcue").Sub(d.get("doublecue")))
	d.set("spatial_cue", d.get("spatialcue"))
	d.set("double_cue", d.get("doublecue"))
	d.set("incongruent-congruent",
		d.get("spatial_incongruent").Sub(d.get("spatial_congruent")).
			Add(d.get("double_incongruent")).Sub(d.get("double_congruent")))
	d.set("spatial_incongruent-spatial_congruent",
		d.get("spatial_incongruent").Sub(d.get("spatial_congruent")))
	d.set("double_incongruent-double_congruent",
		d.get("double_incongruent").Sub(d.get("double_congruent")))
	d.elem("spatial_incongruent", "double_congruent", "spatial_congruent",
		"double_incongruent")
	return d.finish()
}

var towerTaskNames = []string{
	"ambiguous_intermediate", "ambiguous_direct",
	"unambiguous_intermediate", "unambiguous_direct",
	"intermediate-direct", "ambiguous-unambiguous",
}

func towerTask(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(towerTaskNames), nil
	}
	d := begin("ward_and_aliport", towerTaskNames, columns)
	d.elem("ambiguous_intermediate", "ambiguous_direct",
		"unambiguous_intermediate", "unambiguous_direct")
	d.set("intermediate-direct",
		d.get("ambiguous_intermediate").Add(d.get("unambiguous_intermediate")).
			Sub(d.get("ambiguous_direct").Add(d.get("unambiguous_direct"))))
	d.set("ambiguous-unambiguous",
		d.get("ambiguous_intermediate").Sub(d.get("unambiguous_intermediate")).
			Add(d.get("ambiguous_direct")).Sub(d.get("unambiguous_direct")))
	return d.finish()
}

var twoByTwoNames = []string{
	"task_stay_cue_stay", "task_switch_cue_switch",
	"task_switch_cue_stay", "task_stay_cue_switch",
	"task_switch-stay", "cue_switch",
}

func twoByTwo(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(twoByTwoNames), nil
	}
	d := begin("two_by_two", twoByTwoNames, columns)
	d.set("task_stay_cue_stay", d.get("taskstay_cuestay"))
	d.set("task_switch_cue_switch", d.get("taskswitch_cueswitch"))
	d.set("task_switch_cue_stay", d.get("taskswitch_cuestay"))
	d.set("task_stay_cue_switch", d.get("taskstay_cueswitch"))
	d.set("task_switch-stay",
		d.get("taskswitch_cueswitch").Add(d.get("taskswitch_cuestay")).
			Sub(d.get("taskstay_cueswitch").Scale(2)))
	d.set("cue_switch", d.get("taskstay_cueswitch").Sub(d.get("taskstay_cuestay")))
	return d.finish()
}

var columbiaCardsNames = []string{"num_loss_cards", "loss", "gain"}

func columbiaCards(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(columbiaCardsNames), nil
	}
	d := begin("columbia_cards", columbiaCardsNames, columns)
	d.elem(columbiaCardsNames...)
	return d.finish()
}

var dotPatternsNames = []string{
	"cue",
	"correct_cue_correct_probe",
	"correct_cue_incorrect_probe",
	"incorrect_cue_correct_probe",
	"incorrect_cue_incorrect_probe",
	"correct_cue_incorrect_probe-correct_cue_correct_probe",
	"incorrect_cue_incorrect_probe-incorrect_cue_correct_probe",
	"correct_cue_incorrect_probe-incorrect_cue_correct_probe",
	"incorrect_cue_incorrect_probe-correct_cue_incorrect_probe",
	"correct_cue-incorrect_cue",
	"incorrect_probe-correct_probe",
}

func dotPatterns(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(dotPatternsNames), nil
	}
	d := begin("dot_patterns", dotPatternsNames, columns)
	d.elem("cue", "correct_cue_correct_probe", "correct_cue_incorrect_probe",
		"incorrect_cue_correct_probe", "incorrect_cue_incorrect_probe")
	d.set("correct_cue_incorrect_probe-correct_cue_correct_probe",
		d.get("correct_cue_incorrect_probe").Sub(d.get("correct_cue_correct_probe")))
	d.set("incorrect_cue_incorrect_probe-incorrect_cue_correct_probe",
		d.get("incorrect_cue_incorrect_probe").Sub(d.get("incorrect_cue_correct_probe")))
	d.set("correct_cue_incorrect_probe-incorrect_cue_correct_probe",
		d.get("correct_cue_incorrect_probe").Sub(d.get("incorrect_cue_correct_probe")))
	d.set("incorrect_cue_incorrect_probe-correct_cue_incorrect_probe",
		d.get("incorrect_cue_incorrect_probe").Sub(d.get("correct_cue_incorrect_probe")))
	d.set("correct_cue-incorrect_cue",
		d.get("correct_cue_correct_probe").
			Add(d.get("correct_cue_incorrect_probe")).
			Sub(d.get("incorrect_cue_correct_probe")).
			Sub(d.get("incorrect_cue_incorrect_probe")))
	d.set("incorrect_probe-correct_probe",
		d.get("correct_cue_incorrect_probe").
			Sub(d.get("correct_cue_correct_probe")).
			Sub(d.get("incorrect_cue_correct_probe")).
			Add(d.get("incorrect_cue_incorrect_probe")))
	return d.finish()
}
