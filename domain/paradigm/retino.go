package paradigm

import (
	"neurostat/domain/contrast"
)

// Retinotopy and low-level vision definitions. The wedge definition serves
// the wedge, wedge_anti and wedge_clock identifiers; the ring definition
// serves ring, cont_ring and exp_ring (see aliases in registry.go).

var wedgeNames = []string{
	"lower_meridian", "lower_right", "right_meridian", "upper_right",
	"upper_meridian", "upper_left", "left_meridian", "lower_left",
}

func wedge(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(wedgeNames), nil
	}
	d := begin("wedge", wedgeNames, columns)
	d.elem(wedgeNames...)
	return d.finish()
}

var ringNames = []string{"foveal", "middle", "peripheral"}

func ring(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(ringNames), nil
	}
	d := begin("ring", ringNames, columns)
	d.elem(ringNames...)
	return d.finish()
}

var colourNames = []string{"color", "grey", "color-grey"}

func colour(columns []string) (contrast.Set, error) {
	if columns == nil {
		return schema(colourNames), nil
	}
	d := begin("colour", colourNames, columns)
	d.elem("color", "grey")
	d.set("color-grey", d.get("color").Sub(d.get("grey")))
	return d.finish()
}

// clipsTrn has no condition regressors: the naturalistic clips training runs
// are analyzed elsewhere, so its contrast set is deliberately empty.
func clipsTrn(columns []string) (contrast.Set, error) {
	return contrast.Set{}, nil
}
