package paradigm

import (
	"testing"

	"neurostat/domain/contrast"
)

// paradigmColumns maps every recognized identifier to a synthetic design
// matrix carrying its required source regressors.
var paradigmColumns = map[string][]string{
	"archi_standard": {
		"audio_left_hand", "audio_right_hand", "video_left_hand",
		"video_right_hand", "audio_computation", "video_computation",
		"audio_sentence", "video_sentence",
		"horizontal_checkerboard", "vertical_checkerboard",
	},
	"archi_social": {
		"triangle_intention", "triangle_random", "false_belief_audio",
		"mechanistic_audio", "false_belief_video", "mechanistic_video",
		"speech", "non_speech",
	},
	"archi_spatial": {
		"saccade", "rotation_hand", "rotation_side",
		"object_grasp", "object_orientation",
	},
	"archi_emotional": {
		"face_gender", "face_control", "face_trusty",
		"expression_intention", "expression_gender", "expression_control",
	},
	"hcp_emotion":    {"FACE", "SHAPE"},
	"hcp_gambling":   {"PUNISHMENT", "REWARD"},
	"hcp_language":   {"MATH", "STORY"},
	"hcp_motor":      {"LEFT_HAND", "RIGHT_HAND", "LEFT_FOOT", "RIGHT_FOOT", "TONGUE", "CUE"},
	"hcp_relational": {"RELATIONAL", "CONTROL"},
	"hcp_social":     {"MENTAL", "RANDOM"},
	"hcp_wm": {
		"0BACK_BODY", "2BACK_BODY", "0BACK_FACE", "2BACK_FACE",
		"0BACK_TOOLS", "2BACK_TOOLS", "0BACK_PLACE", "2BACK_PLACE",
	},
	"language": {
		"complex_sentence", "simple_sentence", "probe", "jabberwocky",
		"word_list", "pseudoword_list", "consonant_strings",
	},
	"colour":      {"color", "grey"},
	"wedge":       wedgeNames,
	"wedge_anti":  wedgeNames,
	"wedge_clock": wedgeNames,
	"ring":        ringNames,
	"cont_ring":   ringNames,
	"exp_ring":    ringNames,
	"MTTWE": {
		"we_all_reference", "we_all_space_cue", "we_all_time_cue",
		"we_all_event_response",
		"we_westside_close_event", "we_westside_far_event",
		"we_eastside_close_event", "we_eastside_far_event",
		"we_before_close_event", "we_before_far_event",
		"we_after_close_event", "we_after_far_event",
	},
	"MTTNS": {
		"sn_all_reference", "sn_all_space_cue", "sn_all_time_cue",
		"sn_all_event_response",
		"sn_southside_close_event", "sn_southside_far_event",
		"sn_northside_close_event", "sn_northside_far_event",
		"sn_before_close_event", "sn_before_far_event",
		"sn_after_close_event", "sn_after_far_event",
	},
	"emotional_pain": {"physical_pain", "emotional_pain"},
	"pain_movie":     {"pain", "mental"},
	"theory_of_mind": {"belief", "photo"},
	"VSTM": {
		"response_num_1", "response_num_2", "response_num_3",
		"response_num_4", "response_num_5", "response_num_6",
	},
	"enumeration": {
		"response_num_1", "response_num_2", "response_num_3",
		"response_num_4", "response_num_5", "response_num_6",
		"response_num_7", "response_num_8",
	},
	"self": {
		"encode_self", "encode_other", "instructions", "false_alarm",
		"correct_rejection", "recognition_self_hit", "recognition_other_hit",
	},
	"lyon_moto": {
		"instructions", "fixation_left", "fixation_right",
		"finger_right", "finger_left", "foot_left", "foot_right",
		"hand_left", "hand_right", "saccade_left", "saccade_right",
		"tongue_left", "tongue_right",
	},
	"lyon_mcse": {
		"hi_salience_left", "hi_salience_right",
		"low_salience_left", "low_salience_right",
	},
	"lyon_mveb": {
		"response", "2_letters_different", "2_letters_same",
		"4_letters_different", "4_letters_same",
		"6_letters_different", "6_letters_same",
	},
	"lyon_mvis": {
		"response", "2_dots", "2_dots_control", "4_dots",
		"4_dots_control", "6_dots", "6_dots_control",
	},
	"lyon_lec1": {"pseudoword", "word", "random_string"},
	"lyon_lec2": {"attend", "unattend"},
	"lyon_audi": {
		"tear", "suomi", "yawn", "human", "music", "reverse", "speech",
		"alphabet", "cough", "environment", "laugh", "animals", "silence",
	},
	"lyon_visu": {
		"scrambled", "scene", "tool", "face", "house", "animal",
		"characters", "pseudoword", "target_fruit",
	},
	"audio": {
		"animal", "music", "nature", "speech", "tool", "voice", "silence",
	},
	"bang":                  {"talk", "no_talk"},
	"selective_stop_signal": {"go", "stop", "ignore"},
	"stop_signal":           {"go", "stop"},
	"stroop":                {"congruent", "incongruent"},
	"discount":              {"delay", "amount"},
	"attention": {
		"spatialcue", "doublecue", "spatial_incongruent",
		"spatial_congruent", "double_incongruent", "double_congruent",
	},
	"ward_and_aliport": {
		"ambiguous_intermediate", "ambiguous_direct",
		"unambiguous_intermediate", "unambiguous_direct",
	},
	"two_by_two": {
		"taskstay_cuestay", "taskswitch_cueswitch",
		"taskswitch_cuestay", "taskstay_cueswitch",
	},
	"columbia_cards": {"num_loss_cards", "loss", "gain"},
	"dot_patterns": {
		"cue", "correct_cue_correct_probe", "correct_cue_incorrect_probe",
		"incorrect_cue_correct_probe", "incorrect_cue_incorrect_probe",
	},
	"biological_motion1": {
		"global_upright", "global_inverted", "natural_upright", "natural_inverted",
	},
	"biological_motion2": {
		"modified_upright", "modified_inverted", "natural_upright", "natural_inverted",
	},
	"math_language": {
		"colorlessg", "control", "arithfact", "tom",
		"geomfact", "general", "arithprin", "context",
	},
	"spatial_navigation":  {"experimental", "control", "pointing_phase"},
	"preference_painting": {"painting_linear", "painting_constant", "painting_quadratic"},
	"preference_house":    {"house_linear", "house_constant", "house_quadratic"},
	"preference_face":     {"face_linear", "face_constant", "face_quadratic"},
	"preference_food":     {"food_linear", "food_constant", "food_quadratic"},
}

// TestEveryParadigmMatchesDeclaration runs every recognized identifier over
// a synthetic design matrix and checks that the produced contrast names
// equal the declared vocabulary plus the bookkeeping extension.
func TestEveryParadigmMatchesDeclaration(t *testing.T) {
	for _, id := range Identifiers() {
		t.Run(id, func(t *testing.T) {
			if id == "clips_trn" {
				set, err := MakeContrasts(id, []string{"tx", "constant"})
				if err != nil {
					t.Fatal(err)
				}
				if len(set) != 0 {
					t.Fatalf("clips_trn produced %d contrasts, want none", len(set))
				}
				return
			}
			source, ok := paradigmColumns[id]
			if !ok {
				t.Fatalf("no synthetic columns for identifier %q", id)
			}
			columns := append(append([]string{}, source...),
				"tx", "rx", "constant", "drift_0")
			set, err := MakeContrasts(id, columns)
			if err != nil {
				t.Fatal(err)
			}
			declared, err := MakeContrasts(id, nil)
			if err != nil {
				t.Fatal(err)
			}
			for name := range declared {
				c, ok := set[name]
				if !ok {
					t.Errorf("declared contrast %q not produced", name)
					continue
				}
				if len(c.Rows) != 1 {
					t.Errorf("contrast %q has %d rows, want 1", name, len(c.Rows))
					continue
				}
				if len(c.Vector()) != len(columns) {
					t.Errorf("contrast %q has length %d, want %d",
						name, len(c.Vector()), len(columns))
				}
			}
			for name := range set {
				if name == contrast.EffectsInterestKey || name == contrast.DerivativesKey {
					continue
				}
				if _, ok := declared[name]; !ok {
					t.Errorf("undeclared contrast %q produced", name)
				}
			}
			ei, ok := set[contrast.EffectsInterestKey]
			if !ok {
				t.Fatal("effects_interest missing")
			}
			if len(ei.Rows) != len(source) {
				t.Errorf("effects_interest has %d rows, want %d", len(ei.Rows), len(source))
			}
			if _, ok := set[contrast.DerivativesKey]; ok {
				t.Error("derivatives present without derivative columns")
			}
		})
	}
}

// TestEveryParadigmDerivativeExtension re-runs each definition with a
// derivative column added and checks the derivatives contrast appears for
// every paradigm except the beta-contrast (MTT) ones.
func TestEveryParadigmDerivativeExtension(t *testing.T) {
	for id, source := range paradigmColumns {
		columns := append(append([]string{}, source...),
			source[0]+"_derivative", "tx", "constant")
		set, err := MakeContrasts(id, columns)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		dv, ok := set[contrast.DerivativesKey]
		if id == "MTTWE" || id == "MTTNS" {
			if ok {
				t.Errorf("%s must not carry a derivatives contrast", id)
			}
			continue
		}
		if !ok {
			t.Errorf("%s: derivatives missing", id)
			continue
		}
		if len(dv.Rows) != 1 {
			t.Errorf("%s: derivatives has %d rows, want 1", id, len(dv.Rows))
		}
	}
}
