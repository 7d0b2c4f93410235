// Package nifti reads and writes NIfTI-1 volumetric images, the standard
// interchange format for statistical brain maps.
//
// Field layout follows the official nifti1.h definition,
// https://nifti.nimh.nih.gov/pub/dist/src/niftilib/nifti1.h
package nifti

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"neurostat/internal/errors"
)

// Header defines the structure of the NIfTI-1 header.
//
// Type translation from the C header to Go:
//
//	C     Go
//	-------------
//	int   int32
//	float float32
//	short int16
//	char  int8
type Header struct {
	SizeOfHdr          int32    // Must be 348
	UnusedDataType     [10]int8 // Unused
	UnusedDbName       [18]int8 // Unused
	UnusedExtents      int32    // Unused
	UnusedSessionError int16    // Unused
	UnusedRegular      int8     // Unused
	DimInfo            int8     // MRI slice ordering

	Dim           [8]int16   // Data array dimensions
	IntentP1      float32    // 1st intent parameter
	IntentP2      float32    // 2nd intent parameter
	IntentP3      float32    // 3rd intent parameter
	IntentCode    int16      // NIFTI_INTENT_* code
	DataType      int16      // Defines data type
	BitPix        int16      // Number bits/voxel
	SliceStart    int16      // First slice index
	PixDim        [8]float32 // Grid spacing
	VoxOffset     float32    // Offset into .nii file
	SclSlope      float32    // Data scaling: slope
	SclInter      float32    // Data scaling: offset
	SliceEnd      int16      // Last slice index
	SliceCode     int8       // Slice timing order
	XYZTUnits     int8       // Units of pixdim[1..4]
	CalMax        float32    // Max display intensity
	CalMin        float32    // Min display intensity
	SliceDuration float32    // Time for 1 slice
	TOffset       float32    // Time axis shift
	UnusedGlmax   int32      // Unused
	UnusedGlmin   int32      // Unused

	Descrip [80]int8 // Any text you like
	AuxFile [24]int8 // Auxiliary filename

	QFormCode int16 // NIFTI_XFORM_* code
	SFormCode int16 // NIFTI_XFORM_* code

	QuaternB float32 // Quaternion b param
	QuaternC float32 // Quaternion c param
	QuaternD float32 // Quaternion d param
	QOffsetX float32 // Quaternion x shift
	QOffsetY float32 // Quaternion y shift
	QOffsetZ float32 // Quaternion z shift

	SRowX [4]float32 // 1st row affine transform
	SRowY [4]float32 // 2nd row affine transform
	SRowZ [4]float32 // 3rd row affine transform

	IntentName [16]int8 // 'name' or meaning of data

	Magic [4]int8 // Must be "ni1\0" or "n+1\0"
}

// NIFTI_TYPE_* datatype codes from nifti1.h (the subset we read).
const (
	typeUint8   = 2
	typeInt16   = 4
	typeInt32   = 8
	typeFloat32 = 16
	typeFloat64 = 64
)

const (
	minHeaderSize = 348
	voxOffset     = 352
)

// Image is a volume decoded to float64, voxels ordered x-fastest as stored.
type Image struct {
	Header Header
	Order  binary.ByteOrder
	Data   []float64
}

// Dims returns the spatial dimensions of the volume.
func (img *Image) Dims() (nx, ny, nz int) {
	return int(img.Header.Dim[1]), int(img.Header.Dim[2]), int(img.Header.Dim[3])
}

// NumVoxels returns the total number of voxels.
func (img *Image) NumVoxels() int {
	nx, ny, nz := img.Dims()
	return nx * ny * nz
}

// Load reads a .nii or .nii.gz file. A missing or malformed file is a fatal
// image I/O error.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.ImageIO(fmt.Sprintf("cannot open image %s", path), err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.ImageIO(fmt.Sprintf("cannot decompress image %s", path), err)
		}
		defer gz.Close()
		r = gz
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.ImageIO(fmt.Sprintf("cannot read image %s", path), err)
	}
	img, err := Decode(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "image %s", path)
	}
	return img, nil
}

// Decode parses an in-memory .nii byte stream.
func Decode(raw []byte) (*Image, error) {
	if len(raw) < minHeaderSize {
		return nil, errors.ImageIO("truncated NIfTI header", nil)
	}
	header, order, err := readHeader(raw)
	if err != nil {
		return nil, err
	}
	offset := int(header.VoxOffset)
	if offset < minHeaderSize || offset > len(raw) {
		return nil, errors.ImageIO(fmt.Sprintf("bad vox_offset %d", offset), nil)
	}
	data, err := decodeVoxels(header, order, raw[offset:])
	if err != nil {
		return nil, err
	}
	// apply the affine intensity scaling when declared
	if header.SclSlope != 0 && (header.SclSlope != 1 || header.SclInter != 0) {
		slope := float64(header.SclSlope)
		inter := float64(header.SclInter)
		for i := range data {
			data[i] = data[i]*slope + inter
		}
	}
	return &Image{Header: header, Order: order, Data: data}, nil
}

// readHeader detects byte order from sizeof_hdr and decodes the fixed
// 348-byte header.
func readHeader(raw []byte) (Header, binary.ByteOrder, error) {
	var header Header
	var order binary.ByteOrder = binary.LittleEndian
	if err := binary.Read(bytes.NewReader(raw), order, &header); err != nil {
		return header, order, errors.ImageIO("cannot decode NIfTI header", err)
	}
	if header.SizeOfHdr != minHeaderSize {
		order = binary.BigEndian
		if err := binary.Read(bytes.NewReader(raw), order, &header); err != nil {
			return header, order, errors.ImageIO("cannot decode NIfTI header", err)
		}
		if header.SizeOfHdr != minHeaderSize {
			return header, order, errors.ImageIO(
				fmt.Sprintf("sizeof_hdr is %d, want %d", header.SizeOfHdr, minHeaderSize), nil)
		}
	}
	magic := string([]byte{byte(header.Magic[0]), byte(header.Magic[1]), byte(header.Magic[2])})
	if magic != "n+1" && magic != "ni1" {
		return header, order, errors.ImageIO(fmt.Sprintf("bad magic %q", magic), nil)
	}
	return header, order, nil
}

func decodeVoxels(header Header, order binary.ByteOrder, raw []byte) ([]float64, error) {
	n := 1
	ndim := int(header.Dim[0])
	if ndim < 1 || ndim > 7 {
		return nil, errors.ImageIO(fmt.Sprintf("bad dim[0]=%d", ndim), nil)
	}
	for i := 1; i <= ndim; i++ {
		if header.Dim[i] > 0 {
			n *= int(header.Dim[i])
		}
	}
	bytesPer := int(header.BitPix) / 8
	if len(raw) < n*bytesPer {
		return nil, errors.ImageIO(
			fmt.Sprintf("voxel data truncated: have %d bytes, want %d", len(raw), n*bytesPer), nil)
	}
	data := make([]float64, n)
	switch header.DataType {
	case typeUint8:
		for i := 0; i < n; i++ {
			data[i] = float64(raw[i])
		}
	case typeInt16:
		for i := 0; i < n; i++ {
			data[i] = float64(int16(order.Uint16(raw[2*i:])))
		}
	case typeInt32:
		for i := 0; i < n; i++ {
			data[i] = float64(int32(order.Uint32(raw[4*i:])))
		}
	case typeFloat32:
		for i := 0; i < n; i++ {
			data[i] = float64(math.Float32frombits(order.Uint32(raw[4*i:])))
		}
	case typeFloat64:
		for i := 0; i < n; i++ {
			data[i] = math.Float64frombits(order.Uint64(raw[8*i:]))
		}
	default:
		return nil, errors.ImageIO(fmt.Sprintf("unsupported datatype %d", header.DataType), nil)
	}
	return data, nil
}

// NewFloat32Image builds a float32 single-volume image reusing the geometry
// (dims, voxel sizes, affine) of a reference image.
func NewFloat32Image(ref *Image, data []float64) *Image {
	header := ref.Header
	header.Dim[0] = 3
	for i := 4; i < 8; i++ {
		header.Dim[i] = 1
	}
	header.DataType = typeFloat32
	header.BitPix = 32
	header.SclSlope = 1
	header.SclInter = 0
	header.VoxOffset = voxOffset
	header.Magic = [4]int8{'n', '+', '1', 0}
	return &Image{Header: header, Order: binary.LittleEndian, Data: data}
}

// Save writes the image as .nii, gzip-compressed when the path ends in .gz.
func (img *Image) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.ImageIO(fmt.Sprintf("cannot create image %s", path), err)
	}
	defer f.Close()

	var w io.Writer = f
	var gz *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		gz = gzip.NewWriter(f)
		w = gz
	}
	if err := img.encode(w); err != nil {
		return errors.Wrapf(err, "image %s", path)
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			return errors.ImageIO(fmt.Sprintf("cannot finish image %s", path), err)
		}
	}
	return nil
}

func (img *Image) encode(w io.Writer) error {
	order := binary.LittleEndian
	var buf bytes.Buffer
	if err := binary.Write(&buf, order, img.Header); err != nil {
		return errors.ImageIO("cannot encode NIfTI header", err)
	}
	// pad the header to vox_offset
	for buf.Len() < voxOffset {
		buf.WriteByte(0)
	}
	switch img.Header.DataType {
	case typeFloat32:
		for _, v := range img.Data {
			if err := binary.Write(&buf, order, float32(v)); err != nil {
				return errors.ImageIO("cannot encode voxel data", err)
			}
		}
	case typeFloat64:
		for _, v := range img.Data {
			if err := binary.Write(&buf, order, v); err != nil {
				return errors.ImageIO("cannot encode voxel data", err)
			}
		}
	default:
		return errors.ImageIO(fmt.Sprintf("unsupported write datatype %d", img.Header.DataType), nil)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.ImageIO("cannot write image bytes", err)
	}
	return nil
}
