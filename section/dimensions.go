package section

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/arloliu/pog/endian"
	"github.com/arloliu/pog/errs"
)

// Dimensions holds the image size stored at the start of the decompressed payload.
type Dimensions struct {
	Width  uint32 // payload offset 0-3
	Height uint32 // payload offset 4-7
}

// NewDimensions validates that width and height fit the 32-bit fields.
//
// Returns:
//   - Dimensions: The validated dimensions
//   - error: ErrUnsupportedDimension if either value is negative or above math.MaxUint32
func NewDimensions(width, height int) (Dimensions, error) {
	if width < 0 || height < 0 || uint64(width) > math.MaxUint32 || uint64(height) > math.MaxUint32 {
		return Dimensions{}, fmt.Errorf("%w: %dx%d", errs.ErrUnsupportedDimension, width, height)
	}

	return Dimensions{Width: uint32(width), Height: uint32(height)}, nil
}

// IsEmpty reports whether the image has no pixels.
func (d Dimensions) IsEmpty() bool {
	return d.Width == 0 || d.Height == 0
}

// PixelCount returns W*H. The product of two uint32 values always fits in a uint64.
func (d Dimensions) PixelCount() uint64 {
	return uint64(d.Width) * uint64(d.Height)
}

// PayloadSize returns the exact decompressed payload length, 8 + 4*W*H.
//
// Returns:
//   - uint64: The payload length in bytes
//   - bool: false if the length overflows uint64
func (d Dimensions) PayloadSize() (uint64, bool) {
	hi, lo := bits.Mul64(d.PixelCount(), PixelSize)
	if hi != 0 {
		return 0, false
	}

	size, carry := bits.Add64(lo, DimensionsSize, 0)
	if carry != 0 {
		return 0, false
	}

	return size, true
}

// Validate checks that a decompressed payload of payloadLen bytes matches the dimensions exactly.
func (d Dimensions) Validate(payloadLen int) error {
	want, ok := d.PayloadSize()
	if !ok {
		return fmt.Errorf("%w: %dx%d overflows the payload size", errs.ErrSizeMismatch, d.Width, d.Height)
	}

	if payloadLen < 0 || uint64(payloadLen) != want {
		return fmt.Errorf("%w: payload is %d bytes, %dx%d needs %d", errs.ErrSizeMismatch, payloadLen, d.Width, d.Height, want)
	}

	return nil
}

// AppendTo appends width and height as little-endian uint32 values.
func (d Dimensions) AppendTo(dst []byte) []byte {
	engine := endian.GetLittleEndianEngine()
	dst = engine.AppendUint32(dst, d.Width)

	return engine.AppendUint32(dst, d.Height)
}

// ParseDimensions reads the little-endian width and height from the start of a payload.
//
// Returns:
//   - Dimensions: Parsed width and height
//   - error: ErrSizeMismatch if the payload is shorter than DimensionsSize
func ParseDimensions(payload []byte) (Dimensions, error) {
	return parseDimensions(payload, endian.GetLittleEndianEngine())
}

// ParseLegacyDimensions reads width and height of a headerless buffer.
//
// The headerless writer stored both fields in the byte order of the host that
// produced the file, so they are read in the native order of this host.
func ParseLegacyDimensions(payload []byte) (Dimensions, error) {
	return parseDimensions(payload, endian.GetNativeEngine())
}

func parseDimensions(payload []byte, engine endian.EndianEngine) (Dimensions, error) {
	if len(payload) < DimensionsSize {
		return Dimensions{}, fmt.Errorf("%w: payload is %d bytes, dimensions need %d", errs.ErrSizeMismatch, len(payload), DimensionsSize)
	}

	return Dimensions{
		Width:  engine.Uint32(payload[0:4]),
		Height: engine.Uint32(payload[4:8]),
	}, nil
}
