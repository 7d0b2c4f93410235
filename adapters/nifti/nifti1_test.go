package nifti

import (
	"encoding/binary"
	"math"
	"path/filepath"
	"testing"
)

func testImage(nx, ny, nz int, data []float64) *Image {
	var header Header
	header.SizeOfHdr = minHeaderSize
	header.Dim = [8]int16{3, int16(nx), int16(ny), int16(nz), 1, 1, 1, 1}
	header.PixDim = [8]float32{0, 3, 3, 3, 0, 0, 0, 0}
	header.DataType = typeFloat64
	header.BitPix = 64
	header.SclSlope = 1
	header.VoxOffset = voxOffset
	header.Magic = [4]int8{'n', '+', '1', 0}
	return &Image{Header: header, Order: binary.LittleEndian, Data: data}
}

func sequence(n int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i)
	}
	return data
}

func TestSaveLoadRoundTrip(t *testing.T) {
	img := testImage(2, 3, 2, sequence(12))
	path := filepath.Join(t.TempDir(), "volume.nii")
	if err := img.Save(path); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	nx, ny, nz := got.Dims()
	if nx != 2 || ny != 3 || nz != 2 {
		t.Fatalf("dims = %d,%d,%d", nx, ny, nz)
	}
	for i, v := range got.Data {
		if v != float64(i) {
			t.Fatalf("voxel %d = %g, want %d", i, v, i)
		}
	}
}

func TestSaveLoadGzip(t *testing.T) {
	img := testImage(2, 2, 2, sequence(8))
	path := filepath.Join(t.TempDir(), "volume.nii.gz")
	if err := img.Save(path); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Data) != 8 || got.Data[7] != 7 {
		t.Fatalf("gzip round trip lost data: %v", got.Data)
	}
}

func TestLoadAppliesIntensityScaling(t *testing.T) {
	img := testImage(2, 2, 1, sequence(4))
	img.Header.SclSlope = 2
	img.Header.SclInter = 1
	path := filepath.Join(t.TempDir(), "scaled.nii")
	if err := img.Save(path); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	for i := range got.Data {
		want := float64(i)*2 + 1
		if math.Abs(got.Data[i]-want) > 1e-9 {
			t.Fatalf("voxel %d = %g, want %g", i, got.Data[i], want)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.nii")); err == nil {
		t.Fatal("expected an error for a missing image")
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	img := testImage(2, 2, 1, sequence(4))
	img.Header.Magic = [4]int8{'x', 'y', 'z', 0}
	path := filepath.Join(t.TempDir(), "bad.nii")
	if err := img.Save(path); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a bad magic string")
	}
}

func TestMaskerTransformAndInverse(t *testing.T) {
	dir := t.TempDir()
	maskData := []float64{0, 1, 0, 1, 1, 0, 0, 1}
	maskPath := filepath.Join(dir, "mask.nii.gz")
	if err := testImage(2, 2, 2, maskData).Save(maskPath); err != nil {
		t.Fatal(err)
	}
	masker, err := NewMasker(maskPath)
	if err != nil {
		t.Fatal(err)
	}
	if masker.NumVoxels() != 4 {
		t.Fatalf("mask selects %d voxels, want 4", masker.NumVoxels())
	}

	imgPath := filepath.Join(dir, "map.nii.gz")
	if err := testImage(2, 2, 2, sequence(8)).Save(imgPath); err != nil {
		t.Fatal(err)
	}
	data, err := masker.Transform([]string{imgPath, imgPath})
	if err != nil {
		t.Fatal(err)
	}
	rows, cols := data.Dims()
	if rows != 2 || cols != 4 {
		t.Fatalf("transformed matrix is %dx%d, want 2x4", rows, cols)
	}
	wantRow := []float64{1, 3, 4, 7}
	for j, want := range wantRow {
		if data.At(0, j) != want {
			t.Fatalf("row = %v, want %v", data.RawRowView(0), wantRow)
		}
	}

	vol, err := masker.Inverse(wantRow)
	if err != nil {
		t.Fatal(err)
	}
	for i, m := range maskData {
		if m == 0 && vol.Data[i] != 0 {
			t.Fatalf("out-of-mask voxel %d = %g", i, vol.Data[i])
		}
		if m != 0 && vol.Data[i] != float64(i) {
			t.Fatalf("in-mask voxel %d = %g, want %d", i, vol.Data[i], i)
		}
	}
}

func TestMaskerRejectsGeometryMismatch(t *testing.T) {
	dir := t.TempDir()
	maskPath := filepath.Join(dir, "mask.nii")
	if err := testImage(2, 2, 2, []float64{1, 1, 1, 1, 1, 1, 1, 1}).Save(maskPath); err != nil {
		t.Fatal(err)
	}
	masker, err := NewMasker(maskPath)
	if err != nil {
		t.Fatal(err)
	}
	smallPath := filepath.Join(dir, "small.nii")
	if err := testImage(2, 2, 1, sequence(4)).Save(smallPath); err != nil {
		t.Fatal(err)
	}
	if _, err := masker.TransformOne(smallPath); err == nil {
		t.Fatal("expected an error for mismatched geometry")
	}
}
