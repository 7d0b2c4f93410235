package paradigm

import (
	"fmt"

	"neurostat/domain/contrast"
	"neurostat/internal/errors"
)

// Parametric (ordered-factor) definitions: visual short-term memory and
// enumeration model the response-count scale with orthogonal polynomial
// trends; the preference tasks receive the trend regressors precomputed.

var vstmNames = []string{"vstm_linear", "vstm_constant", "vstm_quadratic"}

func vstm(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(vstmNames), nil
	}
	d := begin("VSTM", vstmNames, columns)
	response := orderedResponses(d, 6)
	poly := contrast.Poly(6)
	d.set("vstm_constant", contrast.Combine(poly.Constant, response))
	d.set("vstm_linear", contrast.Combine(poly.Linear, response))
	d.set("vstm_quadratic", contrast.Combine(poly.Quadratic, response))
	return d.finish()
}

var enumerationNames = []string{
	"enumeration_linear", "enumeration_constant", "enumeration_quadratic",
}

func enumeration(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(enumerationNames), nil
	}
	d := begin("enumeration", enumerationNames, columns)
	response := orderedResponses(d, 8)
	poly := contrast.Poly(8)
	d.set("enumeration_constant", contrast.Combine(poly.Constant, response))
	d.set("enumeration_linear", contrast.Combine(poly.Linear, response))
	d.set("enumeration_quadratic", contrast.Combine(poly.Quadratic, response))
	return d.finish()
}

// orderedResponses stacks the response_num_1..response_num_n regressors in
// factor-level order.
func orderedResponses(d *def, n int) []contrast.Vector {
	response := make([]contrast.Vector, n)
	for i := 1; i <= n; i++ {
		response[i-1] = d.get(fmt.Sprintf("response_num_%d", i))
	}
	return response
}

// preferenceDomains enumerates the stimulus domains of the preference task
// family.
var preferenceDomains = []string{"painting", "house", "face", "food"}

func preferences(columns []string, domain string) (contrast.Set, error) {
	valid := false
	for _, known := range preferenceDomains {
		if domain == known {
			valid = true
			break
		}
	}
	if !valid {
		return nil, errors.UnknownParadigm(preferencePrefix + domain)
	}
	names := []string{
		domain + "_linear", domain + "_constant", domain + "_quadratic",
	}
	if columns == nil {
		return schema(names), nil
	}
	d := begin(preferencePrefix+domain, names, columns)
	d.elem(names...)
	return d.finish()
}
