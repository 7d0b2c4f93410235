package nifti

import (
	"fmt"
	"runtime"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"neurostat/internal/errors"
)

// Masker extracts in-mask voxel values from statistical images, yielding an
// images × voxels matrix, and projects flat voxel rows back into volumes.
type Masker struct {
	mask    *Image
	indices []int // flat voxel indices inside the mask
	// Parallelism bounds the number of images decoded concurrently by
	// Transform; zero means GOMAXPROCS.
	Parallelism int
}

// NewMasker fits a masker on a binary mask image: any voxel with a nonzero
// value is part of the mask.
func NewMasker(maskPath string) (*Masker, error) {
	mask, err := Load(maskPath)
	if err != nil {
		return nil, errors.Wrap(err, "cannot fit masker")
	}
	var indices []int
	for i, v := range mask.Data {
		if v != 0 {
			indices = append(indices, i)
		}
	}
	if len(indices) == 0 {
		return nil, errors.ImageIO(fmt.Sprintf("mask %s selects no voxels", maskPath), nil)
	}
	log.WithFields(log.Fields{
		"mask":   maskPath,
		"voxels": len(indices),
	}).Info("masker fitted")
	return &Masker{mask: mask, indices: indices}, nil
}

// NumVoxels returns the number of in-mask voxels.
func (m *Masker) NumVoxels() int {
	return len(m.indices)
}

// Transform loads every image and extracts its in-mask voxels, one matrix
// row per image, rows in input order. Images are loaded in parallel; any
// missing or geometry-mismatched image fails the whole call.
func (m *Masker) Transform(paths []string) (*mat.Dense, error) {
	out := mat.NewDense(len(paths), len(m.indices), nil)
	g := new(errgroup.Group)
	limit := m.Parallelism
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(limit)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			row, err := m.TransformOne(path)
			if err != nil {
				return err
			}
			out.SetRow(i, row)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// TransformOne extracts the in-mask voxels of a single image.
func (m *Masker) TransformOne(path string) ([]float64, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	if img.NumVoxels() != m.mask.NumVoxels() {
		return nil, errors.ImageIO(fmt.Sprintf(
			"image %s has %d voxels, mask has %d", path, img.NumVoxels(), m.mask.NumVoxels()), nil)
	}
	row := make([]float64, len(m.indices))
	for j, idx := range m.indices {
		row[j] = img.Data[idx]
	}
	return row, nil
}

// Inverse maps a flat in-mask voxel row back to a full volume with zeros
// outside the mask, in the mask's geometry.
func (m *Masker) Inverse(row []float64) (*Image, error) {
	if len(row) != len(m.indices) {
		return nil, errors.ImageIO(fmt.Sprintf(
			"row has %d values, mask selects %d voxels", len(row), len(m.indices)), nil)
	}
	data := make([]float64, m.mask.NumVoxels())
	for j, idx := range m.indices {
		data[idx] = row[j]
	}
	return NewFloat32Image(m.mask, data), nil
}

// WriteMap writes a flat in-mask voxel row as a volumetric image.
func (m *Masker) WriteMap(row []float64, path string) error {
	img, err := m.Inverse(row)
	if err != nil {
		return err
	}
	if err := img.Save(path); err != nil {
		return err
	}
	log.WithField("path", path).Info("effect map written")
	return nil
}
