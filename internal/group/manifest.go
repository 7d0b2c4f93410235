package group

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"neurostat/internal/errors"
)

// Manifest records one analysis run: what was analyzed, when, and which
// outputs were produced.
type Manifest struct {
	RunID       string    `json:"run_id"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at,omitempty"`
	CatalogPath string    `json:"catalog_path"`
	MaskPath    string    `json:"mask_path"`
	Subjects    int       `json:"subjects"`
	Maps        int       `json:"maps"`
	Outputs     []string  `json:"outputs"`
}

// NewManifest starts a manifest for a fresh run.
func NewManifest(catalogPath, maskPath string) *Manifest {
	return &Manifest{
		RunID:       uuid.New().String(),
		StartedAt:   time.Now().UTC(),
		CatalogPath: catalogPath,
		MaskPath:    maskPath,
	}
}

// AddOutput appends a produced artifact path.
func (m *Manifest) AddOutput(paths ...string) {
	m.Outputs = append(m.Outputs, paths...)
}

// Finish stamps the completion time and writes the manifest into outDir.
func (m *Manifest) Finish(outDir string) error {
	m.FinishedAt = time.Now().UTC()
	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Wrap(err, "cannot encode run manifest")
	}
	path := filepath.Join(outDir, "run_manifest.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return errors.Wrapf(err, "cannot write %s", path)
	}
	return nil
}
