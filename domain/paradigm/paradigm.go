// Package paradigm declares, per experimental paradigm, the set of named
// linear contrasts over a subject's design-matrix columns. Each definition
// states its contrast-name vocabulary up front and is validated against it:
// a definition that produces more or fewer names than it declares aborts
// with a schema-mismatch error.
package paradigm

import (
	"sort"
	"strings"

	"neurostat/domain/contrast"
	"neurostat/internal/errors"
)

// Definition computes the contrast set of one paradigm for the given ordered
// design-matrix column labels. A nil column slice requests the schema only:
// a map from each declared contrast name to an empty contrast, for callers
// that introspect the vocabulary before any design matrix exists.
type Definition func(columns []string) (contrast.Set, error)

// schema returns the declaration-only contrast set.
func schema(names []string) contrast.Set {
	set := make(contrast.Set, len(names))
	for _, name := range names {
		set[name] = contrast.Contrast{}
	}
	return set
}

// def accumulates one paradigm's contrasts. Elementary lookups record the
// first missing-regressor error and hand back zero vectors so definitions
// can stay declarative; finish surfaces the error.
type def struct {
	id        string
	declared  []string
	columns   []string
	con       map[string]contrast.Vector
	out       map[string]contrast.Vector
	err       error
	noDerivs  bool
	extension []string // columns used for the bookkeeping extensions
}

// begin builds the elementary contrasts for a definition.
func begin(id string, declared, columns []string) *def {
	d := &def{
		id:        id,
		declared:  declared,
		columns:   columns,
		out:       make(map[string]contrast.Vector, len(declared)),
		extension: columns,
	}
	d.con, d.err = contrast.Elementary(columns)
	return d
}

// beginFolded is begin with case-folded column labels, for paradigms whose
// design matrices carry capitalized condition names. The extensions still
// see the original labels.
func beginFolded(id string, declared, columns []string) *def {
	folded := make([]string, len(columns))
	for i, label := range columns {
		folded[i] = strings.ToLower(label)
	}
	d := begin(id, declared, folded)
	d.columns = folded
	d.extension = columns
	return d
}

// beginOfInterest is begin restricted to non-nuisance columns, used by the
// paradigms that model one regressor per trial category and discard motion,
// drift and confound terms before combining.
func beginOfInterest(id string, declared, columns []string) *def {
	d := &def{
		id:        id,
		declared:  declared,
		columns:   columns,
		out:       make(map[string]contrast.Vector, len(declared)),
		extension: columns,
		noDerivs:  true,
	}
	d.con, d.err = contrast.OfInterest(columns)
	return d
}

// get resolves one elementary contrast, recording a missing-regressor error
// on failure.
func (d *def) get(name string) contrast.Vector {
	v, ok := d.con[name]
	if !ok {
		if d.err == nil {
			d.err = errors.Wrapf(errors.MissingRegressor(name), "paradigm %s", d.id)
		}
		return make(contrast.Vector, len(d.columns))
	}
	return v
}

// first resolves an ordered fallback chain of elementary contrasts.
func (d *def) first(candidates ...string) contrast.Vector {
	v, err := contrast.FirstPresent(d.con, candidates...)
	if err != nil {
		if d.err == nil {
			d.err = errors.Wrapf(err, "paradigm %s", d.id)
		}
		return make(contrast.Vector, len(d.columns))
	}
	return v
}

// has reports whether the design matrix carries the named column.
func (d *def) has(name string) bool {
	_, ok := d.con[name]
	return ok
}

// set records a computed contrast.
func (d *def) set(name string, v contrast.Vector) {
	d.out[name] = v
}

// elem records the elementary contrast under its own label.
func (d *def) elem(names ...string) {
	for _, name := range names {
		d.out[name] = d.get(name)
	}
}

// val reads back a previously computed contrast.
func (d *def) val(name string) contrast.Vector {
	return d.out[name]
}

// finish validates the produced names against the declaration, then appends
// the bookkeeping extensions.
func (d *def) finish() (contrast.Set, error) {
	if d.err != nil {
		return nil, d.err
	}
	if missing, extra := diffNames(d.declared, d.out); len(missing) > 0 || len(extra) > 0 {
		return nil, errors.SchemaMismatch(d.id, missing, extra)
	}
	set := make(contrast.Set, len(d.out)+2)
	for _, name := range d.declared {
		set[name] = contrast.Single(d.out[name])
	}
	if !d.noDerivs {
		contrast.AppendDerivatives(d.extension, set)
	}
	contrast.AppendEffectsInterest(d.extension, set)
	return set, nil
}

// diffNames compares the declared vocabulary with the produced key set,
// order-independent.
func diffNames(declared []string, out map[string]contrast.Vector) (missing, extra []string) {
	want := make(map[string]bool, len(declared))
	for _, name := range declared {
		want[name] = true
	}
	for _, name := range declared {
		if _, ok := out[name]; !ok {
			missing = append(missing, name)
		}
	}
	for name := range out {
		if !want[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)
	return missing, extra
}
