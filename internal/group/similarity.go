package group

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/montanaflynn/stats"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
	gostat "gonum.org/v1/gonum/stat"

	"neurostat/adapters/catalog"
	"neurostat/adapters/nifti"
	"neurostat/internal/errors"
)

// GlobalSimilarityResult summarizes how first-level maps relate across the
// whole dataset.
type GlobalSimilarityResult struct {
	SimilarityPath string
	EmbeddingPath  string
	WithinSubject  float64
	AcrossSubject  float64
	WithinContrast float64
}

// GlobalSimilarity correlates every fixed-effects map with every other one,
// summarizes the structure against subject and contrast identity, and
// writes a 2-D embedding of the maps. Only the ffx composites enter, so
// each subject/contrast pair contributes once.
func GlobalSimilarity(cat *catalog.Catalog, masker *nifti.Masker, outDir string) (*GlobalSimilarityResult, error) {
	ffx := cat.ByAcquisition("ffx")
	if len(ffx.Records) == 0 {
		return nil, errors.CatalogError("no ffx acquisitions in catalog")
	}
	data, err := masker.Transform(ffx.Paths())
	if err != nil {
		return nil, err
	}
	corr := imageCorrelation(data)

	subjects := ffx.Column(func(r catalog.Record) string { return r.Subject })
	contrasts := ffx.Column(func(r catalog.Record) string { return r.Contrast })
	result := &GlobalSimilarityResult{
		SimilarityPath: filepath.Join(outDir, "global_similarity.tsv"),
		EmbeddingPath:  filepath.Join(outDir, "map_embedding.tsv"),
		WithinSubject:  maskedMean(corr, sameLabelGram(subjects)),
		AcrossSubject:  maskedMean(corr, differentLabelGram(subjects)),
		WithinContrast: maskedMean(corr, sameLabelGram(contrasts)),
	}
	logrus.WithFields(logrus.Fields{
		"maps":            len(ffx.Records),
		"within_subject":  result.WithinSubject,
		"across_subject":  result.AcrossSubject,
		"within_contrast": result.WithinContrast,
	}).Info("computed global map similarity")

	if err := writeMatrixTSV(result.SimilarityPath, contrasts, corr); err != nil {
		return nil, err
	}
	embedding := Embed2D(data)
	if err := writeEmbeddingTSV(result.EmbeddingPath, subjects, contrasts, embedding); err != nil {
		return nil, err
	}
	return result, nil
}

// ConditionSimilarityResult relates brain-derived condition similarity to
// the cognitive annotation of the same conditions. The headline atlas
// correlation is taken from the within-subject matrix; the across-subject
// variant is reported alongside it.
type ConditionSimilarityResult struct {
	Conditions          []string
	WithinPath          string
	AcrossPath          string
	AtlasPearson        float64
	AtlasSpearman       float64
	AcrossAtlasPearson  float64
	AcrossAtlasSpearman float64
	AcrossPearson       float64
	AcrossSpearman      float64
}

// ConditionSimilarity builds condition-by-condition correlation matrices,
// first within subjects and then between all subject pairs, and compares
// the cross-subject structure to the cognitive atlas annotation.
func ConditionSimilarity(cat *catalog.Catalog, masker *nifti.Masker, atlas *catalog.Atlas, outDir string) (*ConditionSimilarityResult, error) {
	ffx := cat.ByAcquisition("ffx")
	if len(ffx.Records) == 0 {
		return nil, errors.CatalogError("no ffx acquisitions in catalog")
	}
	subjects := ffx.Subjects()
	conditions, dropped := sharedConditions(ffx, subjects)
	if len(dropped) > 0 {
		logrus.WithField("conditions", dropped).
			Warn("dropping conditions not mapped for every subject")
	}
	if len(conditions) < 2 {
		return nil, errors.CatalogError("fewer than two conditions shared by all subjects")
	}

	perSubject := make([]*mat.Dense, len(subjects))
	for i, subject := range subjects {
		maps, err := subjectConditionMaps(ffx, masker, subject, conditions)
		if err != nil {
			return nil, err
		}
		perSubject[i] = maps
	}

	n := len(conditions)
	within := mat.NewDense(n, n, nil)
	for _, maps := range perSubject {
		within.Add(within, imageCorrelation(maps))
	}
	within.Scale(1/float64(len(subjects)), within)

	across := mat.NewDense(n, n, nil)
	pairs := 0
	for i := range perSubject {
		for j := i + 1; j < len(perSubject); j++ {
			c := crossCorrelation(perSubject[i], perSubject[j])
			// orientation between the two subjects is arbitrary
			var sym mat.Dense
			sym.Add(c, c.T())
			sym.Scale(0.5, &sym)
			across.Add(across, &sym)
			pairs++
		}
	}
	if pairs > 0 {
		across.Scale(1/float64(pairs), across)
	}

	atlasSim, err := atlasSimilarity(atlas, conditions)
	if err != nil {
		return nil, err
	}
	result := &ConditionSimilarityResult{
		Conditions: conditions,
		WithinPath: filepath.Join(outDir, "condition_similarity_within.tsv"),
		AcrossPath: filepath.Join(outDir, "condition_similarity_across.tsv"),
	}
	result.AtlasPearson, result.AtlasSpearman, err = compareUpperTriangles(within, atlasSim)
	if err != nil {
		return nil, err
	}
	result.AcrossAtlasPearson, result.AcrossAtlasSpearman, err = compareUpperTriangles(across, atlasSim)
	if err != nil {
		return nil, err
	}
	result.AcrossPearson, result.AcrossSpearman, err = compareUpperTriangles(across, within)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"conditions":            n,
		"atlas_pearson":         result.AtlasPearson,
		"atlas_spearman":        result.AtlasSpearman,
		"across_atlas_pearson":  result.AcrossAtlasPearson,
		"across_atlas_spearman": result.AcrossAtlasSpearman,
		"across_pearson":        result.AcrossPearson,
		"across_spearman":       result.AcrossSpearman,
	}).Info("computed condition similarity")

	if err := writeMatrixTSV(result.WithinPath, conditions, within); err != nil {
		return nil, err
	}
	if err := writeMatrixTSV(result.AcrossPath, conditions, across); err != nil {
		return nil, err
	}
	return result, nil
}

// sharedConditions splits the catalog's contrast names into the sorted set
// available for every subject and the set missing for at least one.
func sharedConditions(cat *catalog.Catalog, subjects []string) (shared, dropped []string) {
	counts := map[string]map[string]bool{}
	for _, rec := range cat.Records {
		if counts[rec.Contrast] == nil {
			counts[rec.Contrast] = map[string]bool{}
		}
		counts[rec.Contrast][rec.Subject] = true
	}
	for name, seen := range counts {
		if len(seen) == len(subjects) {
			shared = append(shared, name)
		} else {
			dropped = append(dropped, name)
		}
	}
	sort.Strings(shared)
	sort.Strings(dropped)
	return shared, dropped
}

func subjectConditionMaps(cat *catalog.Catalog, masker *nifti.Masker, subject string, conditions []string) (*mat.Dense, error) {
	paths := make([]string, len(conditions))
	for i, cond := range conditions {
		rec, err := cat.Last(subject, cond)
		if err != nil {
			return nil, err
		}
		paths[i] = rec.Path
	}
	return masker.Transform(paths)
}

// imageCorrelation correlates the rows of data with each other.
func imageCorrelation(data *mat.Dense) *mat.Dense {
	n, _ := data.Dims()
	corr := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		corr.Set(i, i, 1)
		for j := i + 1; j < n; j++ {
			c := gostat.Correlation(data.RawRowView(i), data.RawRowView(j), nil)
			corr.Set(i, j, c)
			corr.Set(j, i, c)
		}
	}
	return corr
}

// crossCorrelation correlates the rows of a against the rows of b.
func crossCorrelation(a, b *mat.Dense) *mat.Dense {
	n, _ := a.Dims()
	m, _ := b.Dims()
	out := mat.NewDense(n, m, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			out.Set(i, j, gostat.Correlation(a.RawRowView(i), b.RawRowView(j), nil))
		}
	}
	return out
}

func atlasSimilarity(atlas *catalog.Atlas, conditions []string) (*mat.Dense, error) {
	loadings := make([][]float64, len(conditions))
	for i, cond := range conditions {
		v, err := atlas.Loadings(cond)
		if err != nil {
			return nil, err
		}
		loadings[i] = v
	}
	n := len(conditions)
	sim := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		sim.Set(i, i, 1)
		for j := i + 1; j < n; j++ {
			c := gostat.Correlation(loadings[i], loadings[j], nil)
			sim.Set(i, j, c)
			sim.Set(j, i, c)
		}
	}
	return sim, nil
}

// compareUpperTriangles correlates the strict upper triangles of two
// square matrices, keeping only entries where the reference matrix b is
// nonzero.
func compareUpperTriangles(a, b *mat.Dense) (pearson, spearman float64, err error) {
	n, _ := a.Dims()
	var va, vb []float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if b.At(i, j) == 0 {
				continue
			}
			va = append(va, a.At(i, j))
			vb = append(vb, b.At(i, j))
		}
	}
	if len(va) < 2 {
		return 0, 0, errors.New(errors.CodeDegenerateDesign,
			"not enough overlapping similarity entries to compare")
	}
	pearson, err = stats.Pearson(va, vb)
	if err != nil {
		return 0, 0, errors.Wrap(err, "pearson correlation failed")
	}
	spearman, err = stats.Pearson(rankValues(va), rankValues(vb))
	if err != nil {
		return 0, 0, errors.Wrap(err, "spearman correlation failed")
	}
	return pearson, spearman, nil
}

// rankValues assigns 1-based ranks, averaging over ties.
func rankValues(values []float64) []float64 {
	n := len(values)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return values[order[a]] < values[order[b]] })
	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && values[order[j+1]] == values[order[i]] {
			j++
		}
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[order[k]] = avg
		}
		i = j + 1
	}
	return ranks
}

// Embed2D projects the rows of a matrix onto their first two principal
// components.
func Embed2D(x *mat.Dense) *mat.Dense {
	rows, cols := x.Dims()
	centered := mat.NewDense(rows, cols, nil)
	for c := 0; c < cols; c++ {
		var mean float64
		for r := 0; r < rows; r++ {
			mean += x.At(r, c)
		}
		mean /= float64(rows)
		for r := 0; r < rows; r++ {
			centered.Set(r, c, x.At(r, c)-mean)
		}
	}
	var svd mat.SVD
	if !svd.Factorize(centered, mat.SVDThin) {
		return mat.NewDense(rows, 2, nil)
	}
	var u mat.Dense
	svd.UTo(&u)
	values := svd.Values(nil)
	out := mat.NewDense(rows, 2, nil)
	for r := 0; r < rows; r++ {
		for c := 0; c < 2 && c < len(values); c++ {
			out.Set(r, c, u.At(r, c)*values[c])
		}
	}
	return out
}

func writeMatrixTSV(path string, labels []string, m *mat.Dense) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create %s", path)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	w.Comma = '\t'
	if err := w.Write(append([]string{"label"}, labels...)); err != nil {
		return errors.Wrapf(err, "cannot write %s", path)
	}
	rows, cols := m.Dims()
	for r := 0; r < rows; r++ {
		record := make([]string, cols+1)
		record[0] = labels[r]
		for c := 0; c < cols; c++ {
			record[c+1] = strconv.FormatFloat(m.At(r, c), 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return errors.Wrapf(err, "cannot write %s", path)
		}
	}
	w.Flush()
	return w.Error()
}

func writeEmbeddingTSV(path string, subjects, contrasts []string, embedding *mat.Dense) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create %s", path)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	w.Comma = '\t'
	if err := w.Write([]string{"subject", "contrast", "dim1", "dim2"}); err != nil {
		return errors.Wrapf(err, "cannot write %s", path)
	}
	for i := range subjects {
		record := []string{
			subjects[i],
			contrasts[i],
			fmt.Sprintf("%g", embedding.At(i, 0)),
			fmt.Sprintf("%g", embedding.At(i, 1)),
		}
		if err := w.Write(record); err != nil {
			return errors.Wrapf(err, "cannot write %s", path)
		}
	}
	w.Flush()
	return w.Error()
}

// sameLabelGram marks the off-diagonal image pairs that share a label.
func sameLabelGram(labels []string) *mat.Dense {
	n := len(labels)
	g := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && labels[i] == labels[j] {
				g.Set(i, j, 1)
			}
		}
	}
	return g
}

// differentLabelGram marks the image pairs with distinct labels.
func differentLabelGram(labels []string) *mat.Dense {
	n := len(labels)
	g := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if labels[i] != labels[j] {
				g.Set(i, j, 1)
			}
		}
	}
	return g
}

// maskedMean averages the entries of m selected by the nonzero entries of
// mask.
func maskedMean(m, mask *mat.Dense) float64 {
	rows, cols := m.Dims()
	var sum float64
	var count int
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if mask.At(r, c) != 0 {
				sum += m.At(r, c)
				count++
			}
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
