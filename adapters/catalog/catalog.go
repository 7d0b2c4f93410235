// Package catalog handles the tabular index of first-level statistical
// images consumed by the group analysis: one record per (subject, task,
// contrast, acquisition) with the path of its statistical map. The catalog
// can live in a TSV/CSV file, an xlsx workbook, or a Postgres table.
package catalog

import (
	"neurostat/internal/errors"
)

// Record indexes one first-level statistical image.
type Record struct {
	Subject     string `db:"subject"`
	Task        string `db:"task"`
	Contrast    string `db:"contrast"`
	Acquisition string `db:"acquisition"`
	Path        string `db:"path"`
}

// Catalog is an ordered collection of image records.
type Catalog struct {
	Records []Record
}

// requiredColumns is the fixed header contract for file-based catalogs.
var requiredColumns = []string{"subject", "task", "contrast", "acquisition", "path"}

// ByAcquisition returns the sub-catalog whose acquisition label is one of
// the given ones, preserving order.
func (c *Catalog) ByAcquisition(labels ...string) *Catalog {
	want := make(map[string]bool, len(labels))
	for _, l := range labels {
		want[l] = true
	}
	out := &Catalog{}
	for _, rec := range c.Records {
		if want[rec.Acquisition] {
			out.Records = append(out.Records, rec)
		}
	}
	return out
}

// Subjects returns the deduplicated subject identifiers in first-seen order.
func (c *Catalog) Subjects() []string {
	return c.uniqueField(func(r Record) string { return r.Subject })
}

// Contrasts returns the deduplicated contrast names in first-seen order.
func (c *Catalog) Contrasts() []string {
	return c.uniqueField(func(r Record) string { return r.Contrast })
}

func (c *Catalog) uniqueField(field func(Record) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, rec := range c.Records {
		v := field(rec)
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// Column extracts one field across all records, in order.
func (c *Catalog) Column(field func(Record) string) []string {
	out := make([]string, len(c.Records))
	for i, rec := range c.Records {
		out[i] = field(rec)
	}
	return out
}

// Paths returns the image path of every record, in order.
func (c *Catalog) Paths() []string {
	return c.Column(func(r Record) string { return r.Path })
}

// Last returns the most recent record matching subject and contrast, or a
// catalog error when none exists. No partial aggregation: a missing entry
// fails the analysis.
func (c *Catalog) Last(subject, contrastName string) (Record, error) {
	for i := len(c.Records) - 1; i >= 0; i-- {
		rec := c.Records[i]
		if rec.Subject == subject && rec.Contrast == contrastName {
			return rec, nil
		}
	}
	return Record{}, errors.CatalogError(
		"no image for subject " + subject + ", contrast " + contrastName)
}
