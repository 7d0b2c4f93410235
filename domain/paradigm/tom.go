package paradigm

import (
	"neurostat/domain/contrast"
)

// Theory-of-mind and pain protocol definitions.

var emotionalPainNames = []string{
	"physical_pain", "emotional_pain", "emotional-physical_pain",
}

func emotionalPain(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(emotionalPainNames), nil
	}
	d := begin("emotional_pain", emotionalPainNames, columns)
	d.elem("emotional_pain", "physical_pain")
	d.set("emotional-physical_pain",
		d.get("emotional_pain").Sub(d.get("physical_pain")))
	return d.finish()
}

var painMovieNames = []string{"movie_pain", "movie_mental", "movie_mental-pain"}

func painMovie(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(painMovieNames), nil
	}
	d := begin("pain_movie", painMovieNames, columns)
	d.set("movie_pain", d.get("pain"))
	d.set("movie_mental", d.get("mental"))
	d.set("movie_mental-pain", d.get("mental").Sub(d.get("pain")))
	return d.finish()
}

var theoryOfMindNames = []string{"belief", "photo", "belief-photo"}

func theoryOfMind(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(theoryOfMindNames), nil
	}
	d := begin("theory_of_mind", theoryOfMindNames, columns)
	d.elem("photo", "belief")
	d.set("belief-photo", d.get("belief").Sub(d.get("photo")))
	return d.finish()
}

var bangNames = []string{"talk", "no_talk", "talk-no_talk"}

func bang(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(bangNames), nil
	}
	d := begin("bang", bangNames, columns)
	d.elem("talk", "no_talk")
	d.set("talk-no_talk", d.get("talk").Sub(d.get("no_talk")))
	return d.finish()
}
