package codec

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/arloliu/pog/errs"
	"github.com/arloliu/pog/format"
	"github.com/arloliu/pog/internal/hash"
	"github.com/arloliu/pog/internal/options"
	"github.com/arloliu/pog/section"
)

// Decoder validates POG buffers and reconstructs rasters from them.
//
// The decoder fully validates magic, version and payload size before it
// allocates the output image, so a failed call never yields a partially
// filled raster.
//
// A Decoder is immutable after construction and safe for concurrent use.
type Decoder struct {
	*DecoderConfig
}

// NewDecoder creates a new Decoder.
//
// Parameters:
//   - opts: Optional configuration (WithDecompression, WithDecoderCodec, WithLegacyFallback)
//
// Returns:
//   - *Decoder: New decoder instance
//   - error: ErrInvalidCompression for invalid decompressor settings
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	config := NewDecoderConfig()

	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &Decoder{DecoderConfig: config}, nil
}

// layout is a validated view of a POG buffer.
type layout struct {
	version format.Version
	legacy  bool
	dim     section.Dimensions
	payload []byte // decompressed payload, dimensions included
}

func (l layout) pixels() []byte {
	return l.payload[section.PixelsOffset:]
}

// Decode reconstructs the raster stored in data.
//
// The returned image has bounds (0, 0)-(W, H) and does not share memory with data.
//
// Returns:
//   - *image.NRGBA: Fully populated raster
//   - error: ErrTruncatedHeader, ErrBadMagic, ErrUnsupportedVersion,
//     ErrCorruptPayload, ErrSizeMismatch or ErrUnsupportedDimension
func (d *Decoder) Decode(data []byte) (*image.NRGBA, error) {
	l, err := d.parse(data)
	if err != nil {
		return nil, err
	}

	if uint64(l.dim.Width) > math.MaxInt || uint64(l.dim.Height) > math.MaxInt {
		return nil, fmt.Errorf("%w: %dx%d exceeds the host int size", errs.ErrUnsupportedDimension, l.dim.Width, l.dim.Height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, int(l.dim.Width), int(l.dim.Height)))
	// NewNRGBA uses a stride of exactly 4*W, so the records copy over in one pass.
	copy(img.Pix, l.pixels())

	return img, nil
}

// DecodeReader reads r to EOF and decodes the buffer.
func (d *Decoder) DecodeReader(r io.Reader) (*image.NRGBA, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read pog buffer: %w", err)
	}

	return d.Decode(data)
}

// Inspect validates data like Decode and describes it without building the image.
func (d *Decoder) Inspect(data []byte) (Info, error) {
	l, err := d.parse(data)
	if err != nil {
		return Info{}, err
	}

	return Info{
		Version:     l.version,
		Width:       l.dim.Width,
		Height:      l.dim.Height,
		Size:        len(data),
		PayloadSize: len(l.payload),
		Legacy:      l.legacy,
		Fingerprint: hash.Pixels(l.pixels()),
	}, nil
}

// parse runs the full validation sequence: header, decompression, dimensions, size.
func (d *Decoder) parse(data []byte) (layout, error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		if d.legacyFallback && errors.Is(err, errs.ErrBadMagic) {
			if l, ok := parseLegacy(data); ok {
				return l, nil
			}
		}

		return layout{}, err
	}

	payload := data[section.HeaderSize:]
	if header.IsCompressed() {
		payload, err = d.codec.Decompress(payload)
		if err != nil {
			return layout{}, fmt.Errorf("%w: %w", errs.ErrCorruptPayload, err)
		}
	}

	dim, err := section.ParseDimensions(payload)
	if err != nil {
		return layout{}, err
	}

	if err := dim.Validate(len(payload)); err != nil {
		return layout{}, err
	}

	return layout{version: header.Version, dim: dim, payload: payload}, nil
}

// parseLegacy accepts a headerless buffer only when its length matches the
// dimensions it declares exactly.
func parseLegacy(data []byte) (layout, bool) {
	dim, err := section.ParseLegacyDimensions(data)
	if err != nil {
		return layout{}, false
	}

	if dim.Validate(len(data)) != nil {
		return layout{}, false
	}

	return layout{version: format.VersionRaw, legacy: true, dim: dim, payload: data}, true
}
