// Package pog reads and writes POG, a minimal container for uncompressed or
// LZMA-compressed RGBA rasters.
//
// A POG buffer starts with the three ASCII bytes "POG" and a version tag
// (0 raw, 1 compressed). The payload holds the image width and height as
// little-endian uint32 values followed by one R, G, B, A record per pixel in
// row-major order.
//
// # Core Features
//
//   - Lossless round trip of any image.Image through the non-premultiplied NRGBA model
//   - Optional whole-payload compression (LZMA by default; Zstd, S2, LZ4 for closed deployments)
//   - Full validation before allocation, with errors matchable by errors.Is
//   - 64-bit xxHash fingerprints of the pixel data for cheap equality checks
//   - Registration with the standard image package
//
// # Basic Usage
//
// Encoding:
//
//	import "github.com/arloliu/pog"
//
//	data, err := pog.Encode(img, format.CompressionLZMA)
//	if err != nil {
//	    return err
//	}
//
// Decoding:
//
//	img, err := pog.Decode(data)
//	if errors.Is(err, errs.ErrSizeMismatch) {
//	    // payload does not match the declared dimensions
//	}
//
// Because the package registers itself with image.RegisterFormat, image.Decode
// and image.DecodeConfig also recognize POG streams once the package is imported.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec
// package. For custom codecs or the legacy headerless layout, use the codec
// package directly.
package pog

import (
	"bytes"
	"image"
	"io"

	"github.com/arloliu/pog/codec"
	"github.com/arloliu/pog/format"
	"github.com/arloliu/pog/section"
)

// defaultDecoder reads raw buffers and LZMA-compressed buffers.
var defaultDecoder = mustDecoder()

func mustDecoder() *codec.Decoder {
	dec, err := codec.NewDecoder()
	if err != nil {
		panic(err)
	}

	return dec
}

func init() {
	image.RegisterFormat("pog", section.Magic, DecodeImage, DecodeConfig)
}

// Encode serializes img into a POG buffer.
//
// Parameters:
//   - img: Source raster; pixels outside img.Bounds() are ignored
//   - compression: format.CompressionNone for a version 0 buffer, format.CompressionLZMA
//     for an interoperable version 1 buffer
//
// Returns:
//   - []byte: The encoded buffer
//   - error: ErrInvalidCompression, ErrUnsupportedDimension or ErrCompressionFailure
//
// Example:
//
//	data, err := pog.Encode(img, format.CompressionNone)
func Encode(img image.Image, compression format.CompressionType) ([]byte, error) {
	enc, err := codec.NewEncoder(codec.WithCompression(compression))
	if err != nil {
		return nil, err
	}

	return enc.Encode(img)
}

// EncodeTo serializes img and writes the buffer to w.
func EncodeTo(w io.Writer, img image.Image, compression format.CompressionType) (int64, error) {
	enc, err := codec.NewEncoder(codec.WithCompression(compression))
	if err != nil {
		return 0, err
	}

	return enc.EncodeTo(w, img)
}

// Decode reconstructs the raster stored in a raw or LZMA-compressed POG buffer.
//
// Returns:
//   - *image.NRGBA: Raster with bounds (0, 0)-(W, H)
//   - error: ErrTruncatedHeader, ErrBadMagic, ErrUnsupportedVersion, ErrCorruptPayload or ErrSizeMismatch
func Decode(data []byte) (*image.NRGBA, error) {
	return defaultDecoder.Decode(data)
}

// Inspect validates data and returns its description without building the image.
func Inspect(data []byte) (codec.Info, error) {
	return defaultDecoder.Inspect(data)
}

// DecodeImage reads a POG stream from r. It has the signature image.RegisterFormat expects.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, err := defaultDecoder.DecodeReader(r)
	if err != nil {
		return nil, err
	}

	return img, nil
}

// DecodeConfig returns the color model and dimensions of a POG stream.
//
// The payload of a compressed buffer has to be decompressed to reach the
// dimensions, so the whole stream is read and validated.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return image.Config{}, err
	}

	info, err := defaultDecoder.Inspect(buf.Bytes())
	if err != nil {
		return image.Config{}, err
	}

	return info.Config(), nil
}
