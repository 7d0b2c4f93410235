package paradigm

import (
	"neurostat/domain/contrast"
)

// Definitions for the mental time travel (MTT) tasks, relative setting.
// These tasks model one regressor per trial category; contrasts combine the
// non-nuisance (beta) regressors only, and only the effects-of-interest
// extension applies.

var mttWENames = []string{
	"we_average_reference",
	"we_all_space_cue",
	"we_all_time_cue",
	"we_all_space-time_cue",
	"we_all_time-space_cue",
	"we_average_event",
	"we_space_event",
	"we_time_event",
	"we_space-time_event",
	"we_time-space_event",
	"we_westside_event",
	"we_eastside_event",
	"we_before_event",
	"we_after_event",
	"westside-eastside_event",
	"eastside-westside_event",
	"we_before-after_event",
	"we_after-before_event",
	"we_all_event_response",
}

func mttWERelative(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(mttWENames), nil
	}
	d := beginOfInterest("MTTWE", mttWENames, columns)
	d.set("we_average_reference", d.get("we_all_reference"))
	d.elem("we_all_space_cue", "we_all_time_cue", "we_all_event_response")
	d.set("we_westside_event",
		d.get("we_westside_close_event").Add(d.get("we_westside_far_event")))
	d.set("we_eastside_event",
		d.get("we_eastside_close_event").Add(d.get("we_eastside_far_event")))
	d.set("we_before_event",
		d.get("we_before_close_event").Add(d.get("we_before_far_event")))
	d.set("we_after_event",
		d.get("we_after_close_event").Add(d.get("we_after_far_event")))
	d.set("we_all_space-time_cue",
		d.val("we_all_space_cue").Sub(d.val("we_all_time_cue")))
	d.set("we_all_time-space_cue", d.val("we_all_space-time_cue").Neg())
	d.set("we_space_event", d.val("we_westside_event").Add(d.val("we_eastside_event")))
	d.set("we_time_event", d.val("we_before_event").Add(d.val("we_after_event")))
	d.set("we_average_event", d.val("we_space_event").Add(d.val("we_time_event")))
	d.set("we_space-time_event", d.val("we_space_event").Sub(d.val("we_time_event")))
	d.set("we_time-space_event", d.val("we_space-time_event").Neg())
	d.set("westside-eastside_event",
		d.val("we_westside_event").Sub(d.val("we_eastside_event")))
	d.set("eastside-westside_event", d.val("westside-eastside_event").Neg())
	d.set("we_before-after_event",
		d.val("we_before_event").Sub(d.val("we_after_event")))
	d.set("we_after-before_event", d.val("we_before-after_event").Neg())
	return d.finish()
}

var mttSNNames = []string{
	"sn_average_reference",
	"sn_all_space_cue",
	"sn_all_time_cue",
	"sn_all_space-time_cue",
	"sn_all_time-space_cue",
	"sn_average_event",
	"sn_space_event",
	"sn_time_event",
	"sn_space-time_event",
	"sn_time-space_event",
	"sn_southside_event",
	"sn_northside_event",
	"sn_before_event",
	"sn_after_event",
	"northside-southside_event",
	"southside-northside_event",
	"sn_before-after_event",
	"sn_after-before_event",
	"sn_all_event_response",
}

func mttSNRelative(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(mttSNNames), nil
	}
	d := beginOfInterest("MTTNS", mttSNNames, columns)
	d.set("sn_average_reference", d.get("sn_all_reference"))
	d.elem("sn_all_space_cue", "sn_all_time_cue", "sn_all_event_response")
	d.set("sn_southside_event",
		d.get("sn_southside_close_event").Add(d.get("sn_southside_far_event")))
	d.set("sn_northside_event",
		d.get("sn_northside_close_event").Add(d.get("sn_northside_far_event")))
	d.set("sn_before_event",
		d.get("sn_before_close_event").Add(d.get("sn_before_far_event")))
	d.set("sn_after_event",
		d.get("sn_after_close_event").Add(d.get("sn_after_far_event")))
	d.set("sn_all_space-time_cue",
		d.val("sn_all_space_cue").Sub(d.val("sn_all_time_cue")))
	d.set("sn_all_time-space_cue", d.val("sn_all_space-time_cue").Neg())
	d.set("sn_space_event", d.val("sn_southside_event").Add(d.val("sn_northside_event")))
	d.set("sn_time_event", d.val("sn_before_event").Add(d.val("sn_after_event")))
	d.set("sn_average_event", d.val("sn_space_event").Add(d.val("sn_time_event")))
	d.set("sn_space-time_event", d.val("sn_space_event").Sub(d.val("sn_time_event")))
	d.set("sn_time-space_event", d.val("sn_space-time_event").Neg())
	d.set("southside-northside_event",
		d.val("sn_southside_event").Sub(d.val("sn_northside_event")))
	d.set("northside-southside_event", d.val("southside-northside_event").Neg())
	d.set("sn_before-after_event",
		d.val("sn_before_event").Sub(d.val("sn_after_event")))
	d.set("sn_after-before_event", d.val("sn_before-after_event").Neg())
	return d.finish()
}
