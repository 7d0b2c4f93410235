package paradigm

import (
	"neurostat/domain/contrast"
)

// Definitions for the Lyon localizer battery.

var lyonMotoNames = []string{
	"instructions", "finger_right-fixation", "finger_left-fixation",
	"foot_left-fixation", "foot_right-fixation", "hand_left-fixation",
	"hand_right-fixation", "saccade-fixation", "tongue-fixation",
}

func lyonMoto(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(lyonMotoNames), nil
	}
	d := begin("lyon_moto", lyonMotoNames, columns)
	// fixation is modeled twice (left/right screen side); conditions are
	// compared against their average.
	fixation := d.get("fixation_left").Add(d.get("fixation_right")).Scale(.5)
	d.elem("instructions")
	d.set("finger_right-fixation", d.get("finger_right").Sub(fixation))
	d.set("finger_left-fixation", d.get("finger_left").Sub(fixation))
	d.set("foot_left-fixation", d.get("foot_left").Sub(fixation))
	d.set("foot_right-fixation", d.get("foot_right").Sub(fixation))
	d.set("hand_left-fixation", d.get("hand_left").Sub(fixation))
	d.set("hand_right-fixation", d.get("hand_right").Sub(fixation))
	d.set("saccade-fixation",
		d.get("saccade_left").Add(d.get("saccade_right")).Sub(fixation.Scale(2)))
	d.set("tongue-fixation",
		d.get("tongue_left").Add(d.get("tongue_right")).Sub(fixation.Scale(2)))
	return d.finish()
}

var lyonMCSENames = []string{
	"high_salience_left", "high_salience_right",
	"low_salience_left", "low_salience_right",
	"high-low_salience", "low-high_salience",
	"salience_left-right", "salience_right-left",
	"low+high_salience",
}

func lyonMCSE(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(lyonMCSENames), nil
	}
	d := begin("lyon_mcse", lyonMCSENames, columns)
	d.set("high_salience_left", d.get("hi_salience_left"))
	d.set("high_salience_right", d.get("hi_salience_right"))
	d.set("low_salience_left", d.get("low_salience_left"))
	d.set("low_salience_right", d.get("low_salience_right"))
	d.set("high-low_salience",
		d.get("hi_salience_left").Add(d.get("hi_salience_right")).
			Sub(d.get("low_salience_left")).Sub(d.get("low_salience_right")))
	d.set("low-high_salience", d.val("high-low_salience").Neg())
	d.set("salience_left-right",
		d.get("hi_salience_left").Sub(d.get("hi_salience_right")).
			Add(d.get("low_salience_left")).Sub(d.get("low_salience_right")))
	d.set("salience_right-left", d.val("salience_left-right").Neg())
	d.set("low+high_salience",
		contrast.Sum(d.get("hi_salience_left"), d.get("hi_salience_right"),
			d.get("low_salience_left"), d.get("low_salience_right")))
	return d.finish()
}

var lyonMVEBNames = []string{
	"response", "2_letters_different", "2_letters_same",
	"4_letters_different", "4_letters_same",
	"6_letters_different", "6_letters_same",
	"2_letters_different-same",
	"4_letters_different-same", "6_letters_different-same",
	"6_letters_different-2_letters_different",
}

func lyonMVEB(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(lyonMVEBNames), nil
	}
	d := begin("lyon_mveb", lyonMVEBNames, columns)
	d.elem("response", "2_letters_different", "2_letters_same",
		"4_letters_different", "4_letters_same",
		"6_letters_different", "6_letters_same")
	d.set("2_letters_different-same",
		d.get("2_letters_different").Sub(d.get("2_letters_same")))
	d.set("4_letters_different-same",
		d.get("4_letters_different").Sub(d.get("4_letters_same")))
	d.set("6_letters_different-same",
		d.get("6_letters_different").Sub(d.get("6_letters_same")))
	d.set("6_letters_different-2_letters_different",
		d.get("6_letters_different").Sub(d.get("2_letters_different")))
	return d.finish()
}

var lyonMVISNames = []string{
	"response",
	"2_dots-2_dots_control", "4_dots-4_dots_control",
	"6_dots-6_dots_control", "6_dots-2_dots", "dots-control",
}

func lyonMVIS(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(lyonMVISNames), nil
	}
	d := begin("lyon_mvis", lyonMVISNames, columns)
	d.elem("response")
	d.set("2_dots-2_dots_control", d.get("2_dots").Sub(d.get("2_dots_control")))
	d.set("4_dots-4_dots_control", d.get("4_dots").Sub(d.get("4_dots_control")))
	d.set("6_dots-6_dots_control", d.get("6_dots").Sub(d.get("6_dots_control")))
	d.set("6_dots-2_dots", d.get("6_dots").Sub(d.get("2_dots")))
	d.set("dots-control",
		contrast.Sum(d.get("6_dots"), d.get("4_dots"), d.get("2_dots")).
			Sub(contrast.Sum(d.get("2_dots_control"), d.get("6_dots_control"),
				d.get("4_dots_control"))))
	return d.finish()
}

var lyonLec1Names = []string{
	"pseudoword", "word", "random_string", "word-pseudoword",
	"word-random_string", "pseudoword-random_string",
}

func lyonLec1(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(lyonLec1Names), nil
	}
	d := begin("lyon_lec1", lyonLec1Names, columns)
	d.elem("pseudoword", "word", "random_string")
	d.set("word-pseudoword", d.get("word").Sub(d.get("pseudoword")))
	d.set("word-random_string", d.get("word").Sub(d.get("random_string")))
	d.set("pseudoword-random_string", d.get("pseudoword").Sub(d.get("random_string")))
	return d.finish()
}

var lyonLec2Names = []string{"attend", "unattend", "attend-unattend"}

func lyonLec2(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(lyonLec2Names), nil
	}
	d := begin("lyon_lec2", lyonLec2Names, columns)
	d.elem("attend", "unattend")
	d.set("attend-unattend", d.get("attend").Sub(d.get("unattend")))
	return d.finish()
}

var lyonAudiConditions = []string{
	"tear", "suomi", "yawn", "human", "music",
	"reverse", "speech", "alphabet", "cough", "environment",
	"laugh", "animals",
}

var lyonAudiNames = buildLyonAudiNames()

func buildLyonAudiNames() []string {
	names := make([]string, 0, 2*len(lyonAudiConditions)+1)
	names = append(names, lyonAudiConditions...)
	names = append(names, "silence")
	for _, name := range lyonAudiConditions {
		names = append(names, name+"-silence")
	}
	return names
}

func lyonAudi(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(lyonAudiNames), nil
	}
	d := begin("lyon_audi", lyonAudiNames, columns)
	d.elem("silence")
	for _, name := range lyonAudiConditions {
		d.elem(name)
		d.set(name+"-silence", d.get(name).Sub(d.get("silence")))
	}
	return d.finish()
}

var lyonVisuCanonical = []string{
	"scrambled", "scene", "tool", "face",
	"house", "animal", "characters", "pseudoword",
}

var lyonVisuNames = []string{
	"scrambled", "scene", "tool", "face", "target_fruit",
	"house", "animal", "characters", "pseudoword",
	"scene-scrambled", "tool-scrambled",
	"face-scrambled", "house-scrambled", "animal-scrambled",
	"characters-scrambled", "pseudoword-scrambled",
}

func lyonVisu(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(lyonVisuNames), nil
	}
	d := begin("lyon_visu", lyonVisuNames, columns)
	d.elem(lyonVisuCanonical...)
	d.elem("target_fruit")
	for _, name := range lyonVisuCanonical[1:] {
		d.set(name+"-scrambled", d.get(name).Sub(d.get("scrambled")))
	}
	return d.finish()
}
