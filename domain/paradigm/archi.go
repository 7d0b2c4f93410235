package paradigm

import (
	"neurostat/domain/contrast"
)

// Definitions for the ARCHI localizer battery.

var archiStandardNames = []string{
	"audio_left_button_press", "audio_right_button_press",
	"video_left_button_press", "video_right_button_press",
	"left-right_button_press", "right-left_button_press",
	"listening-reading", "reading-listening",
	"motor-cognitive", "cognitive-motor", "reading-checkerboard",
	"horizontal-vertical", "vertical-horizontal",
	"horizontal_checkerboard", "vertical_checkerboard",
	"audio_sentence", "video_sentence",
	"audio_computation", "video_computation",
	"sentences", "computation",
	"computation-sentences", "sentences-computation",
}

func archiStandard(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(archiStandardNames), nil
	}
	d := begin("archi_standard", archiStandardNames, columns)
	audio := contrast.Sum(d.get("audio_left_hand"), d.get("audio_right_hand"),
		d.get("audio_computation"), d.get("audio_sentence"))
	video := contrast.Sum(d.get("video_left_hand"), d.get("video_right_hand"),
		d.get("video_computation"), d.get("video_sentence"))
	leftPress := d.get("audio_left_hand").Add(d.get("video_left_hand"))
	rightPress := d.get("audio_right_hand").Add(d.get("video_right_hand"))
	computation := d.get("audio_computation").Add(d.get("video_computation"))
	sentences := d.get("audio_sentence").Add(d.get("video_sentence"))

	d.set("audio_left_button_press", d.get("audio_left_hand"))
	d.set("audio_right_button_press", d.get("audio_right_hand"))
	d.set("video_left_button_press", d.get("video_left_hand"))
	d.set("video_right_button_press", d.get("video_right_hand"))
	d.elem("audio_sentence", "video_sentence", "audio_computation",
		"video_computation", "horizontal_checkerboard", "vertical_checkerboard")
	d.set("computation", computation)
	d.set("sentences", sentences)
	d.set("horizontal-vertical",
		d.get("horizontal_checkerboard").Sub(d.get("vertical_checkerboard")))
	d.set("vertical-horizontal",
		d.get("vertical_checkerboard").Sub(d.get("horizontal_checkerboard")))
	d.set("left-right_button_press", leftPress.Sub(rightPress))
	d.set("right-left_button_press", rightPress.Sub(leftPress))
	d.set("motor-cognitive",
		leftPress.Add(rightPress).Sub(computation).Sub(sentences))
	d.set("cognitive-motor", d.val("motor-cognitive").Neg())
	d.set("listening-reading", audio.Sub(video))
	d.set("reading-listening", video.Sub(audio))
	d.set("computation-sentences", computation.Sub(sentences))
	d.set("sentences-computation", sentences.Sub(computation))
	d.set("reading-checkerboard",
		d.get("video_sentence").Sub(d.get("horizontal_checkerboard")))
	return d.finish()
}

var archiSocialNames = []string{
	"triangle_mental-random", "false_belief-mechanistic_audio",
	"mechanistic_audio", "false_belief-mechanistic_video",
	"mechanistic_video", "false_belief-mechanistic",
	"speech-non_speech", "triangle_mental", "triangle_random",
	"false_belief_audio", "false_belief_video",
	"speech_sound", "non_speech_sound",
}

func archiSocial(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(archiSocialNames), nil
	}
	d := begin("archi_social", archiSocialNames, columns)
	d.set("triangle_mental", d.get("triangle_intention"))
	d.elem("triangle_random", "false_belief_audio", "mechanistic_audio",
		"false_belief_video", "mechanistic_video")
	d.set("speech_sound", d.get("speech"))
	d.set("non_speech_sound", d.get("non_speech"))
	d.set("triangle_mental-random",
		d.get("triangle_intention").Sub(d.get("triangle_random")))
	d.set("false_belief-mechanistic_audio",
		d.get("false_belief_audio").Sub(d.get("mechanistic_audio")))
	d.set("false_belief-mechanistic_video",
		d.get("false_belief_video").Sub(d.get("mechanistic_video")))
	d.set("speech-non_speech", d.get("speech").Sub(d.get("non_speech")))
	d.set("false_belief-mechanistic",
		d.val("false_belief-mechanistic_audio").
			Add(d.val("false_belief-mechanistic_video")))
	return d.finish()
}

var archiSpatialNames = []string{
	"saccades", "rotation_hand", "rotation_side", "object_grasp",
	"object_orientation", "hand-side", "grasp-orientation",
}

func archiSpatial(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(archiSpatialNames), nil
	}
	d := begin("archi_spatial", archiSpatialNames, columns)
	d.set("saccades", d.get("saccade"))
	d.elem("rotation_hand", "rotation_side", "object_grasp", "object_orientation")
	d.set("hand-side", d.get("rotation_hand").Sub(d.get("rotation_side")))
	d.set("grasp-orientation", d.get("object_grasp").Sub(d.get("object_orientation")))
	return d.finish()
}

var archiEmotionalNames = []string{
	"face_gender", "face_control", "face_trusty",
	"expression_intention", "expression_gender", "expression_control",
	"trusty_and_intention-control", "trusty_and_intention-gender",
	"expression_gender-control", "expression_intention-control",
	"expression_intention-gender", "face_trusty-control",
	"face_gender-control", "face_trusty-gender",
}

func archiEmotional(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(archiEmotionalNames), nil
	}
	d := begin("archi_emotional", archiEmotionalNames, columns)
	d.elem("face_gender", "face_control", "face_trusty",
		"expression_intention", "expression_gender", "expression_control")
	d.set("face_trusty-gender", d.get("face_trusty").Sub(d.get("face_gender")))
	d.set("face_gender-control", d.get("face_gender").Sub(d.get("face_control")))
	d.set("face_trusty-control", d.get("face_trusty").Sub(d.get("face_control")))
	d.set("expression_intention-gender",
		d.get("expression_intention").Sub(d.get("expression_gender")))
	d.set("expression_intention-control",
		d.get("expression_intention").Sub(d.get("expression_control")))
	d.set("expression_gender-control",
		d.get("expression_gender").Sub(d.get("expression_control")))
	d.set("trusty_and_intention-gender",
		d.val("face_trusty-gender").Add(d.val("expression_intention-gender")))
	d.set("trusty_and_intention-control",
		d.val("face_trusty-control").Add(d.val("expression_intention-control")))
	return d.finish()
}
