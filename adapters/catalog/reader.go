package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"neurostat/internal/errors"
)

// Reader loads a catalog from a delimited text file or an xlsx workbook.
type Reader struct {
	filePath string
	fileType string // "tsv", "csv" or "xlsx"
}

// NewReader creates a catalog reader; the format is chosen from the file
// extension.
func NewReader(filePath string) *Reader {
	fileType := "tsv"
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".csv":
		fileType = "csv"
	case ".xlsx":
		fileType = "xlsx"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// Read loads and validates the catalog.
func (r *Reader) Read() (*Catalog, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.CatalogError(fmt.Sprintf("catalog file not found: %s", r.filePath))
	}
	var rows [][]string
	var err error
	switch r.fileType {
	case "xlsx":
		rows, err = r.readWorkbookRows()
	default:
		rows, err = r.readDelimitedRows()
	}
	if err != nil {
		return nil, err
	}
	cat, err := fromRows(rows)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", r.filePath)
	}
	log.WithFields(log.Fields{
		"catalog": r.filePath,
		"records": len(cat.Records),
	}).Info("catalog loaded")
	return cat, nil
}

func (r *Reader) readDelimitedRows() ([][]string, error) {
	comma := '\t'
	if r.fileType == "csv" {
		comma = ','
	}
	return readDelimitedRows(r.filePath, comma)
}

func (r *Reader) readWorkbookRows() ([][]string, error) {
	return readWorkbookRows(r.filePath)
}

func readDelimitedRows(path string, comma rune) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open table %s", path)
	}
	defer f.Close()
	reader := csv.NewReader(f)
	reader.Comma = comma
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse table %s", path)
	}
	return rows, nil
}

func readWorkbookRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open workbook %s", path)
	}
	defer f.Close()
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read sheet %s", sheet)
	}
	return rows, nil
}

// fromRows maps a header row plus data rows onto records, validating that
// every required column is present.
func fromRows(rows [][]string) (*Catalog, error) {
	if len(rows) < 2 {
		return nil, errors.CatalogError("catalog needs a header row and at least one record")
	}
	index := map[string]int{}
	for i, name := range rows[0] {
		index[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, errors.CatalogError(fmt.Sprintf("catalog is missing column %q", col))
		}
	}
	cat := &Catalog{Records: make([]Record, 0, len(rows)-1)}
	for n, row := range rows[1:] {
		get := func(col string) string {
			i := index[col]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		rec := Record{
			Subject:     get("subject"),
			Task:        get("task"),
			Contrast:    get("contrast"),
			Acquisition: get("acquisition"),
			Path:        get("path"),
		}
		if rec.Subject == "" || rec.Contrast == "" || rec.Path == "" {
			return nil, errors.CatalogError(fmt.Sprintf("catalog row %d is incomplete", n+2))
		}
		cat.Records = append(cat.Records, rec)
	}
	return cat, nil
}
