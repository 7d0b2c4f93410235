package paradigm

import (
	"neurostat/domain/contrast"
)

var rsvpLanguageNames = []string{
	"complex", "simple", "jabberwocky", "word_list",
	"pseudoword_list", "consonant_string", "complex-simple",
	"sentence-jabberwocky", "sentence-word",
	"word-consonant_string", "jabberwocky-pseudo",
	"word-pseudo", "pseudo-consonant_string",
	"sentence-consonant_string", "simple-consonant_string",
	"complex-consonant_string", "sentence-pseudo", "probe",
	"jabberwocky-consonant_string",
}

// rsvpLanguage defines the RSVP language localizer. Sentence conditions are
// modeled as complex_sentence/simple_sentence columns but reported under
// shorter contrast names.
func rsvpLanguage(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(rsvpLanguageNames), nil
	}
	d := begin("language", rsvpLanguageNames, columns)
	complexSentence := d.get("complex_sentence")
	simpleSentence := d.get("simple_sentence")
	d.set("complex", complexSentence)
	d.set("simple", simpleSentence)
	d.elem("probe", "jabberwocky", "word_list", "pseudoword_list")
	d.set("consonant_string", d.get("consonant_strings"))
	d.set("complex-simple", complexSentence.Sub(simpleSentence))
	d.set("sentence-jabberwocky",
		complexSentence.Add(simpleSentence).Sub(d.get("jabberwocky").Scale(2)))
	d.set("sentence-word",
		complexSentence.Add(simpleSentence).Sub(d.get("word_list").Scale(2)))
	d.set("word-consonant_string",
		d.get("word_list").Sub(d.get("consonant_strings")))
	d.set("jabberwocky-pseudo",
		d.get("jabberwocky").Sub(d.get("pseudoword_list")))
	d.set("jabberwocky-consonant_string",
		d.get("jabberwocky").Sub(d.get("consonant_strings")))
	d.set("word-pseudo", d.get("word_list").Sub(d.get("pseudoword_list")))
	d.set("pseudo-consonant_string",
		d.get("pseudoword_list").Sub(d.get("consonant_strings")))
	d.set("sentence-consonant_string",
		complexSentence.Add(simpleSentence).Sub(d.get("consonant_strings").Scale(2)))
	d.set("simple-consonant_string", simpleSentence.Sub(d.get("consonant_strings")))
	d.set("complex-consonant_string", complexSentence.Sub(d.get("consonant_strings")))
	d.set("sentence-pseudo",
		complexSentence.Add(simpleSentence).Sub(d.get("pseudoword_list").Scale(2)))
	return d.finish()
}

var audioConditions = []string{
	"animal", "music", "nature", "speech", "tool", "voice",
}

var audioNames = []string{
	"animal", "music", "nature",
	"speech", "tool", "voice",
	"animal-others", "music-others", "nature-others",
	"speech-others", "tool-others", "voice-others", "mean-silence",
	"animal-silence", "music-silence", "nature-silence",
	"speech-silence", "tool-silence", "voice-silence",
}

func audio(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(audioNames), nil
	}
	d := begin("audio", audioNames, columns)
	// each condition against the mean of the other five
	others := contrast.Sum(d.get("animal"), d.get("music"), d.get("nature"),
		d.get("speech"), d.get("tool"), d.get("voice")).Scale(1. / 5)
	d.elem(audioConditions...)
	d.set("mean-silence", others.Sub(d.get("silence")))
	for _, name := range audioConditions {
		d.set(name+"-others", d.get(name).Sub(others))
		d.set(name+"-silence", d.get(name).Sub(d.get("silence")))
	}
	return d.finish()
}

var mathLanguageNames = []string{
	"colorlessg", "control", "arithfact", "tom", "geomfact",
	"general", "arithprin", "context", "math-others",
	"geometry-arithmetics", "tom_and_context-general",
	"tom-general",
}

func mathLanguage(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(mathLanguageNames), nil
	}
	d := begin("math_language", mathLanguageNames, columns)
	d.elem("colorlessg", "control", "arithfact", "tom", "geomfact",
		"general", "arithprin", "context")
	d.set("math-others",
		contrast.Sum(d.get("arithprin"), d.get("arithfact"), d.get("geomfact")).
			Sub(d.get("tom")).Sub(d.get("general")).Sub(d.get("context")))
	d.set("geometry-arithmetics",
		d.get("geomfact").Sub(
			d.get("arithprin").Add(d.get("arithfact")).Scale(.5)))
	d.set("tom_and_context-general",
		d.get("tom").Add(d.get("context")).Sub(d.get("general").Scale(2)))
	d.set("tom-general", d.get("tom").Sub(d.get("general")))
	return d.finish()
}

var spatialNavigationNames = []string{"experimental", "pointing", "control"}

func spatialNavigation(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(spatialNavigationNames), nil
	}
	d := begin("spatial_navigation", spatialNavigationNames, columns)
	d.elem("experimental", "control")
	d.set("pointing", d.get("pointing_phase"))
	return d.finish()
}

var biologicalMotion1Names = []string{
	"global_upright", "global_inverted",
	"natural_upright", "natural_inverted",
	"global_upright - natural_upright",
	"global_upright - global_inverted",
	"natural_upright - natural_inverted",
}

func biologicalMotion1(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(biologicalMotion1Names), nil
	}
	d := begin("biological_motion1", biologicalMotion1Names, columns)
	d.elem("global_upright", "global_inverted", "natural_upright", "natural_inverted")
	d.set("global_upright - natural_upright",
		d.get("global_upright").Sub(d.get("natural_upright")))
	d.set("global_upright - global_inverted",
		d.get("global_upright").Sub(d.get("global_inverted")))
	d.set("natural_upright - natural_inverted",
		d.get("natural_upright").Sub(d.get("natural_inverted")))
	return d.finish()
}

var biologicalMotion2Names = []string{
	"modified_upright", "modified_inverted",
	"natural_upright", "natural_inverted",
	"modified_upright - natural_upright",
	"modified_upright - modified_inverted",
	"natural_upright - natural_inverted",
}

func biologicalMotion2(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(biologicalMotion2Names), nil
	}
	d := begin("biological_motion2", biologicalMotion2Names, columns)
	d.elem("modified_upright", "modified_inverted", "natural_upright", "natural_inverted")
	d.set("modified_upright - natural_upright",
		d.get("modified_upright").Sub(d.get("natural_upright")))
	d.set("modified_upright - modified_inverted",
		d.get("modified_upright").Sub(d.get("modified_inverted")))
	d.set("natural_upright - natural_inverted",
		d.get("natural_upright").Sub(d.get("natural_inverted")))
	return d.finish()
}
