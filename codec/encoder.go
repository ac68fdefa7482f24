package codec

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/arloliu/pog/errs"
	"github.com/arloliu/pog/format"
	"github.com/arloliu/pog/internal/options"
	"github.com/arloliu/pog/internal/pool"
	"github.com/arloliu/pog/section"
)

// Encoder serializes rasters into POG buffers.
//
// An Encoder is immutable after construction and safe for concurrent use;
// each Encode call works on its own pooled payload buffer.
type Encoder struct {
	*EncoderConfig
}

// NewEncoder creates a new Encoder.
//
// Parameters:
//   - opts: Optional configuration (WithCompression, WithCodec)
//
// Returns:
//   - *Encoder: New encoder instance
//   - error: ErrInvalidCompression for unknown compression types or a nil codec
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	config := NewEncoderConfig()

	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &Encoder{EncoderConfig: config}, nil
}

// Version returns the version tag this encoder writes.
func (e *Encoder) Version() format.Version {
	return e.header.Version
}

// Encode serializes img into a new POG buffer.
//
// Pixels are emitted row-major starting at img.Bounds().Min. Every pixel is
// converted through color.NRGBAModel, so sources without an alpha channel are
// stored fully opaque. A raster with zero width or height yields a valid
// buffer without pixel records.
//
// Parameters:
//   - img: Source raster
//
// Returns:
//   - []byte: Header followed by the (possibly compressed) payload; never aliases internal buffers
//   - error: ErrUnsupportedDimension if a side exceeds 32 bits, ErrCompressionFailure if the codec fails
func (e *Encoder) Encode(img image.Image) ([]byte, error) {
	bounds := img.Bounds()

	dim, err := section.NewDimensions(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	payloadSize, ok := dim.PayloadSize()
	if !ok || payloadSize > uint64(math.MaxInt-section.HeaderSize) {
		return nil, fmt.Errorf("%w: %dx%d does not fit in memory", errs.ErrUnsupportedDimension, dim.Width, dim.Height)
	}

	bb := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(bb)

	bb.Grow(int(payloadSize))
	bb.B = dim.AppendTo(bb.B)
	bb.B = appendPixels(bb.B, img, bounds)

	payload, err := e.codec.Compress(bb.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCompressionFailure, err)
	}

	out := make([]byte, 0, section.HeaderSize+len(payload))
	out = e.header.AppendTo(out)
	out = append(out, payload...)

	return out, nil
}

// EncodeTo serializes img and writes the buffer to w.
//
// Returns:
//   - int64: Number of bytes written
//   - error: Encode errors or the error returned by w
func (e *Encoder) EncodeTo(w io.Writer, img image.Image) (int64, error) {
	data, err := e.Encode(img)
	if err != nil {
		return 0, err
	}

	n, err := w.Write(data)

	return int64(n), err
}

// appendPixels appends the R,G,B,A records of every pixel in b, row-major.
func appendPixels(dst []byte, img image.Image, b image.Rectangle) []byte {
	if src, ok := img.(*image.NRGBA); ok {
		rowLen := b.Dx() * section.PixelSize
		for y := b.Min.Y; y < b.Max.Y; y++ {
			off := src.PixOffset(b.Min.X, y)
			dst = append(dst, src.Pix[off:off+rowLen]...)
		}

		return dst
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c, _ := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			dst = append(dst, c.R, c.G, c.B, c.A)
		}
	}

	return dst
}
