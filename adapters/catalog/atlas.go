package catalog

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"neurostat/internal/errors"
)

// Atlas maps experimental conditions onto cognitive feature loadings.
// The table has conditions as rows and cognitive components as columns;
// missing loadings are treated as zero.
type Atlas struct {
	Features   []string
	conditions map[string][]float64
}

// ReadAtlas loads a cognitive annotation table from a TSV, CSV or xlsx
// file. The first column holds condition names.
func ReadAtlas(path string) (*Atlas, error) {
	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = readWorkbookRows(path)
	case ".tsv":
		rows, err = readDelimitedRows(path, '\t')
	case ".csv":
		rows, err = readDelimitedRows(path, ',')
	default:
		return nil, errors.CatalogError(
			fmt.Sprintf("unsupported atlas format %q", filepath.Ext(path)))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read atlas %s", path)
	}
	atlas, err := atlasFromRows(rows)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid atlas %s", path)
	}
	logrus.WithFields(logrus.Fields{
		"path":       path,
		"conditions": len(atlas.conditions),
		"features":   len(atlas.Features),
	}).Info("loaded cognitive atlas")
	return atlas, nil
}

func atlasFromRows(rows [][]string) (*Atlas, error) {
	if len(rows) < 2 {
		return nil, errors.CatalogError("atlas table has no data rows")
	}
	header := rows[0]
	if len(header) < 2 {
		return nil, errors.CatalogError("atlas table has no feature columns")
	}
	atlas := &Atlas{
		Features:   append([]string{}, header[1:]...),
		conditions: make(map[string][]float64, len(rows)-1),
	}
	for i, row := range rows[1:] {
		if len(row) == 0 || row[0] == "" {
			continue
		}
		loadings := make([]float64, len(atlas.Features))
		for j := range loadings {
			col := j + 1
			if col >= len(row) || row[col] == "" {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
			if err != nil {
				return nil, errors.CatalogError(
					fmt.Sprintf("row %d: bad loading %q", i+2, row[col]))
			}
			if math.IsNaN(v) {
				continue
			}
			loadings[j] = v
		}
		atlas.conditions[row[0]] = loadings
	}
	return atlas, nil
}

// Loadings returns the feature vector for a condition. Every analyzed
// condition must be annotated; an unknown condition is fatal.
func (a *Atlas) Loadings(condition string) ([]float64, error) {
	v, ok := a.conditions[condition]
	if !ok {
		return nil, errors.CatalogError(
			fmt.Sprintf("condition %q is not annotated in the atlas", condition))
	}
	return v, nil
}

// Conditions reports the annotated condition names.
func (a *Atlas) Conditions() []string {
	names := make([]string, 0, len(a.conditions))
	for name := range a.conditions {
		names = append(names, name)
	}
	return names
}
