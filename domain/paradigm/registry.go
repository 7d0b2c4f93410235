package paradigm

import (
	"sort"
	"strings"

	"neurostat/domain/contrast"
	"neurostat/internal/errors"
)

// registry is the closed set of paradigm identifiers. Identifier families
// that share one definition are spelled out in aliases below rather than
// pattern-matched, so the mapping stays auditable.
var registry = map[string]Definition{
	"archi_standard":        archiStandard,
	"archi_social":          archiSocial,
	"archi_spatial":         archiSpatial,
	"archi_emotional":       archiEmotional,
	"hcp_emotion":           hcpEmotion,
	"hcp_gambling":          hcpGambling,
	"hcp_language":          hcpLanguage,
	"hcp_motor":             hcpMotor,
	"hcp_wm":                hcpWM,
	"hcp_relational":        hcpRelational,
	"hcp_social":            hcpSocial,
	"language":              rsvpLanguage,
	"colour":                colour,
	"wedge":                 wedge,
	"ring":                  ring,
	"MTTWE":                 mttWERelative,
	"MTTNS":                 mttSNRelative,
	"emotional_pain":        emotionalPain,
	"pain_movie":            painMovie,
	"theory_of_mind":        theoryOfMind,
	"VSTM":                  vstm,
	"enumeration":           enumeration,
	"clips_trn":             clipsTrn,
	"self":                  selfLocalizer,
	"lyon_moto":             lyonMoto,
	"lyon_mcse":             lyonMCSE,
	"lyon_mveb":             lyonMVEB,
	"lyon_mvis":             lyonMVIS,
	"lyon_lec1":             lyonLec1,
	"lyon_lec2":             lyonLec2,
	"lyon_audi":             lyonAudi,
	"lyon_visu":             lyonVisu,
	"audio":                 audio,
	"bang":                  bang,
	"selective_stop_signal": selectiveStopSignal,
	"stop_signal":           stopSignal,
	"stroop":                stroop,
	"discount":              discount,
	"attention":             attention,
	"ward_and_aliport":      towerTask,
	"two_by_two":            twoByTwo,
	"columbia_cards":        columbiaCards,
	"dot_patterns":          dotPatterns,
	"biological_motion1":    biologicalMotion1,
	"biological_motion2":    biologicalMotion2,
	"math_language":         mathLanguage,
	"spatial_navigation":    spatialNavigation,
}

// aliases maps the retinotopy identifier families onto their shared
// definitions: three wedge variants route to one wedge definition, three
// ring variants to one ring definition.
var aliases = map[string]string{
	"wedge_anti":  "wedge",
	"wedge_clock": "wedge",
	"cont_ring":   "ring",
	"exp_ring":    "ring",
}

// preferencePrefix introduces the multi-domain preference family:
// preference_<domain> with domain in preferenceDomains (a trailing plural
// "s" is tolerated).
const preferencePrefix = "preference_"

// MakeContrasts resolves a paradigm identifier and computes its contrast
// set for the given design-matrix columns (nil for schema-only). Unknown
// identifiers are an error naming the identifier, never an empty set.
func MakeContrasts(paradigmID string, columns []string) (contrast.Set, error) {
	if definition, ok := registry[paradigmID]; ok {
		return definition(columns)
	}
	if canonical, ok := aliases[paradigmID]; ok {
		return registry[canonical](columns)
	}
	if strings.HasPrefix(paradigmID, preferencePrefix) {
		domain := strings.TrimSuffix(paradigmID[len(preferencePrefix):], "s")
		return preferences(columns, domain)
	}
	return nil, errors.UnknownParadigm(paradigmID)
}

// Identifiers returns every recognized paradigm identifier, aliases and the
// preference family included, sorted.
func Identifiers() []string {
	ids := make([]string, 0, len(registry)+len(aliases)+len(preferenceDomains))
	for id := range registry {
		ids = append(ids, id)
	}
	for id := range aliases {
		ids = append(ids, id)
	}
	for _, domain := range preferenceDomains {
		ids = append(ids, preferencePrefix+domain)
	}
	sort.Strings(ids)
	return ids
}
