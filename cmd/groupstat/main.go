// Command groupstat runs the group-level analyses over a catalog of
// first-level contrast maps: the fixed-effects ANOVA and the map and
// condition similarity analyses.
package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"neurostat/adapters/catalog"
	"neurostat/adapters/nifti"
	"neurostat/internal/config"
	"neurostat/internal/group"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if err := run(); err != nil {
		logrus.WithError(err).Fatal("group analysis failed")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Paths.Output, 0o755); err != nil {
		return err
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	masker, err := nifti.NewMasker(cfg.Paths.Mask)
	if err != nil {
		return err
	}
	if cfg.Analysis.Parallelism > 0 {
		masker.Parallelism = cfg.Analysis.Parallelism
	}

	manifest := group.NewManifest(cfg.Paths.Catalog, cfg.Paths.Mask)
	manifest.Subjects = len(cat.Subjects())
	manifest.Maps = len(cat.Records)

	if !cfg.Analysis.SkipAnova {
		anova, err := group.Anova(cat, masker, cfg.Paths.Output)
		if err != nil {
			return err
		}
		manifest.AddOutput(anova.SubjectMap, anova.ContrastMap, anova.AcqMap)
	}

	global, err := group.GlobalSimilarity(cat, masker, cfg.Paths.Output)
	if err != nil {
		return err
	}
	manifest.AddOutput(global.SimilarityPath, global.EmbeddingPath)

	if cfg.Paths.Atlas != "" {
		atlas, err := catalog.ReadAtlas(cfg.Paths.Atlas)
		if err != nil {
			return err
		}
		condition, err := group.ConditionSimilarity(cat, masker, atlas, cfg.Paths.Output)
		if err != nil {
			return err
		}
		manifest.AddOutput(condition.WithinPath, condition.AcrossPath)
	} else {
		logrus.Info("no atlas configured, skipping condition similarity")
	}

	return manifest.Finish(cfg.Paths.Output)
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Database.URL != "" {
		repo, err := catalog.NewRepository(cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		defer repo.Close()
		return repo.Load(context.Background())
	}
	return catalog.NewReader(cfg.Paths.Catalog).Read()
}
