package paradigm

import (
	"neurostat/domain/contrast"
)

// Self-referential memory encoding localizer. Recognition-phase regressors
// depend on each subject's behavior: a subject with no hits (or no misses,
// or no correct rejections) simply lacks that column, so several contrasts
// resolve through documented fallback substitutions. The chains below are
// fixed policy; do not extend them per-subject.

var selfLocalizerNames = []string{
	"encode_self-other", "encode_other", "encode_self",
	"instructions", "false_alarm", "correct_rejection",
	"recognition_hit", "recognition_hit-correct_rejection",
	"recognition_self-other", "recognition_self_hit",
	"recognition_other_hit",
}

// sumOrFallback adds the two named regressors when both are present,
// otherwise resolves the ordered fallback chain.
func sumOrFallback(d *def, a, b string, fallbacks ...string) contrast.Vector {
	if d.has(a) && d.has(b) {
		return d.get(a).Add(d.get(b))
	}
	return d.first(fallbacks...)
}

func selfLocalizer(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(selfLocalizerNames), nil
	}
	d := begin("self", selfLocalizerNames, columns)

	recognitionHit := sumOrFallback(d,
		"recognition_other_hit", "recognition_self_hit",
		"recognition_self_hit", "recognition_other_hit",
		"recognition_other_no_response")
	correctRejection := d.first("correct_rejection", "false_alarm")
	recognitionSelfHit := d.first("recognition_self_hit", "recognition_self_miss")
	recognitionSelf := sumOrFallback(d,
		"recognition_self_hit", "recognition_self_miss",
		"recognition_self_miss", "recognition_self_hit")
	recognitionOther := sumOrFallback(d,
		"recognition_other_hit", "recognition_other_miss",
		"recognition_other_hit", "recognition_other_miss")
	recognitionOtherHit := d.first("recognition_other_hit", "recognition_other_miss")

	d.set("encode_self-other", d.get("encode_self").Sub(d.get("encode_other")))
	d.elem("encode_other", "encode_self", "instructions", "false_alarm")
	d.set("recognition_hit", recognitionHit)
	d.set("recognition_self_hit", recognitionSelfHit)
	d.set("recognition_hit-correct_rejection", recognitionHit.Sub(correctRejection))
	d.set("correct_rejection", correctRejection)
	d.set("recognition_self-other", recognitionSelf.Sub(recognitionOther))
	d.set("recognition_other_hit", recognitionOtherHit)
	return d.finish()
}
