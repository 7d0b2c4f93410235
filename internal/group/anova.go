package group

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"neurostat/adapters/catalog"
	"neurostat/adapters/nifti"
	"neurostat/domain/design"
	"neurostat/internal/errors"
)

// AnovaResult names the statistical maps written by Anova.
type AnovaResult struct {
	SubjectMap  string
	ContrastMap string
	AcqMap      string
}

// Anova fits a fixed-effects model explaining every first-level map from
// the subject, contrast and acquisition it came from, and writes one
// F-derived z map per factor. Only the raw phase-encoding acquisitions
// enter the model; fixed-effects composites would duplicate them.
func Anova(cat *catalog.Catalog, masker *nifti.Masker, outDir string) (*AnovaResult, error) {
	filtered := cat.ByAcquisition("ap", "pa")
	if len(filtered.Records) == 0 {
		return nil, errors.CatalogError("no ap or pa acquisitions in catalog")
	}

	subjects, err := design.Encode("subject", filtered.Column(func(r catalog.Record) string { return r.Subject }))
	if err != nil {
		return nil, err
	}
	contrasts, err := design.Encode("contrast", filtered.Column(func(r catalog.Record) string { return r.Contrast }))
	if err != nil {
		return nil, err
	}
	acqs, err := design.Encode("acq", filtered.Column(func(r catalog.Record) string { return r.Acquisition }))
	if err != nil {
		return nil, err
	}
	dm, err := design.Build(subjects, contrasts, acqs)
	if err != nil {
		return nil, err
	}
	rows, cols := dm.X.Dims()
	logrus.WithFields(logrus.Fields{
		"observations":   rows,
		"regressors":     cols,
		"smallest_sv":    dm.SmallestSingularValue(),
		"subjects":       len(subjects.Classes),
		"contrast_names": len(contrasts.Classes),
	}).Info("assembled group design")

	data, err := masker.Transform(filtered.Paths())
	if err != nil {
		return nil, err
	}
	model, err := Fit(dm, data)
	if err != nil {
		return nil, err
	}

	result := &AnovaResult{
		SubjectMap:  filepath.Join(outDir, "subject_effect.nii.gz"),
		ContrastMap: filepath.Join(outDir, "contrast_effect.nii.gz"),
		AcqMap:      filepath.Join(outDir, "acq_effect.nii.gz"),
	}
	paths := []string{result.SubjectMap, result.ContrastMap, result.AcqMap}
	for i, path := range paths {
		z, err := factorMap(model, data, i)
		if err != nil {
			return nil, err
		}
		if err := masker.WriteMap(z, path); err != nil {
			return nil, err
		}
		logrus.WithField("path", path).Info("wrote effect map")
	}
	return result, nil
}

func factorMap(model *GLM, data *mat.Dense, factor int) ([]float64, error) {
	z, err := model.FactorZMap(data, factor)
	if err != nil {
		return nil, err
	}
	floorZ(z)
	return z, nil
}
