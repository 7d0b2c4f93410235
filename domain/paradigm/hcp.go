package paradigm

import (
	"neurostat/domain/contrast"
)

// Definitions for the HCP task battery. HCP design matrices carry
// capitalized condition names, so these definitions case-fold the column
// labels before lookup.

var hcpEmotionNames = []string{"face", "shape", "face-shape", "shape-face"}

func hcpEmotion(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(hcpEmotionNames), nil
	}
	d := beginFolded("hcp_emotion", hcpEmotionNames, columns)
	d.elem("face", "shape")
	d.set("face-shape", d.get("face").Sub(d.get("shape")))
	d.set("shape-face", d.get("shape").Sub(d.get("face")))
	return d.finish()
}

var hcpGamblingNames = []string{
	"punishment-reward", "reward-punishment", "punishment", "reward",
}

func hcpGambling(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(hcpGamblingNames), nil
	}
	d := beginFolded("hcp_gambling", hcpGamblingNames, columns)
	d.elem("punishment", "reward")
	d.set("punishment-reward", d.get("punishment").Sub(d.get("reward")))
	d.set("reward-punishment", d.get("reward").Sub(d.get("punishment")))
	return d.finish()
}

var hcpLanguageNames = []string{"math-story", "story-math", "math", "story"}

func hcpLanguage(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(hcpLanguageNames), nil
	}
	d := beginFolded("hcp_language", hcpLanguageNames, columns)
	d.elem("math", "story")
	d.set("math-story", d.get("math").Sub(d.get("story")))
	d.set("story-math", d.get("story").Sub(d.get("math")))
	return d.finish()
}

var hcpMotorNames = []string{
	"left_hand", "right_hand", "left_foot", "right_foot",
	"tongue", "tongue-avg", "left_hand-avg", "right_hand-avg",
	"left_foot-avg", "right_foot-avg", "cue",
}

func hcpMotor(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(hcpMotorNames), nil
	}
	d := beginFolded("hcp_motor", hcpMotorNames, columns)
	average := contrast.Sum(
		d.get("left_hand"), d.get("right_hand"),
		d.get("left_foot"), d.get("right_foot"), d.get("tongue"),
	).Scale(1. / 5)
	d.elem("cue", "left_hand", "right_hand", "left_foot", "right_foot", "tongue")
	d.set("left_hand-avg", d.get("left_hand").Sub(average))
	d.set("right_hand-avg", d.get("right_hand").Sub(average))
	d.set("left_foot-avg", d.get("left_foot").Sub(average))
	d.set("right_foot-avg", d.get("right_foot").Sub(average))
	d.set("tongue-avg", d.get("tongue").Sub(average))
	return d.finish()
}

var hcpRelationalNames = []string{"relational", "relational-match", "match"}

func hcpRelational(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(hcpRelationalNames), nil
	}
	d := beginFolded("hcp_relational", hcpRelationalNames, columns)
	d.set("match", d.get("control"))
	d.set("relational", d.get("relational"))
	d.set("relational-match", d.get("relational").Sub(d.get("control")))
	return d.finish()
}

var hcpSocialNames = []string{"mental-random", "mental", "random"}

func hcpSocial(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(hcpSocialNames), nil
	}
	d := beginFolded("hcp_social", hcpSocialNames, columns)
	d.elem("mental", "random")
	d.set("mental-random", d.get("mental").Sub(d.get("random")))
	return d.finish()
}

var hcpWMNames = []string{
	"2back-0back", "0back-2back", "body-avg",
	"face-avg", "place-avg", "tools-avg",
	"0back_body", "2back_body", "0back_face", "2back_face",
	"0back_tools", "2back_tools", "0back_place", "2back_place",
}

func hcpWM(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(hcpWMNames), nil
	}
	d := beginFolded("hcp_wm", hcpWMNames, columns)
	d.elem("0back_body", "2back_body", "0back_face", "2back_face",
		"0back_tools", "2back_tools", "0back_place", "2back_place")
	twoBack := contrast.Sum(d.get("2back_body"), d.get("2back_face"),
		d.get("2back_tools"), d.get("2back_place"))
	zeroBack := contrast.Sum(d.get("0back_body"), d.get("0back_face"),
		d.get("0back_tools"), d.get("0back_place"))
	body := d.get("2back_body").Add(d.get("0back_body")).Scale(1. / 2)
	face := d.get("2back_face").Add(d.get("0back_face")).Scale(1. / 2)
	place := d.get("2back_place").Add(d.get("0back_place")).Scale(1. / 2)
	tools := d.get("2back_tools").Add(d.get("0back_tools")).Scale(1. / 2)
	average := twoBack.Add(zeroBack).Scale(1. / 8)
	d.set("2back-0back", twoBack.Sub(zeroBack))
	d.set("0back-2back", zeroBack.Sub(twoBack))
	d.set("body-avg", body.Sub(average))
	d.set("face-avg", face.Sub(average))
	d.set("place-avg", place.Sub(average))
	d.set("tools-avg", tools.Sub(average))
	return d.finish()
}
