package codec

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pog/compress"
	"github.com/arloliu/pog/errs"
	"github.com/arloliu/pog/format"
	"github.com/arloliu/pog/section"
)

// referencePayload is the payload of the 2x2 reference image:
// red, green / blue, transparent white.
var referencePayload = []byte{
	0x02, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00,
	0xFF, 0x00, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF,
	0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00,
}

func referenceImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 0xFF, A: 0xFF})
	img.SetNRGBA(1, 0, color.NRGBA{G: 0xFF, A: 0xFF})
	img.SetNRGBA(0, 1, color.NRGBA{B: 0xFF, A: 0xFF})
	img.SetNRGBA(1, 1, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x00})

	return img
}

// gradientImage builds a w x h raster with a smooth gradient and varying alpha.
func gradientImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: uint8(x + y), A: uint8(255 - x%7)})
		}
	}

	return img
}

func allCompressions() []format.CompressionType {
	return []format.CompressionType{
		format.CompressionNone,
		format.CompressionLZMA,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}
}

// failingCodec fails every call.
type failingCodec struct{}

var errCodecBroken = errors.New("codec broken")

func (failingCodec) Compress([]byte) ([]byte, error)   { return nil, errCodecBroken }
func (failingCodec) Decompress([]byte) ([]byte, error) { return nil, errCodecBroken }

var _ compress.Codec = failingCodec{}

// boundsOnly reports arbitrary bounds without backing pixels.
type boundsOnly struct {
	rect image.Rectangle
}

func (b boundsOnly) ColorModel() color.Model { return color.NRGBAModel }
func (b boundsOnly) Bounds() image.Rectangle { return b.rect }
func (b boundsOnly) At(int, int) color.Color { return color.NRGBA{} }

func TestNewEncoder(t *testing.T) {
	t.Run("Default is raw", func(t *testing.T) {
		enc, err := NewEncoder()
		require.NoError(t, err)
		require.Equal(t, format.VersionRaw, enc.Version())
		require.Equal(t, format.CompressionNone, enc.Compression())
		require.Equal(t, section.Header{Version: format.VersionRaw}, enc.Header())
	})

	t.Run("Compressed types write version 1", func(t *testing.T) {
		for _, comp := range allCompressions()[1:] {
			enc, err := NewEncoder(WithCompression(comp))
			require.NoError(t, err)
			require.Equal(t, format.VersionCompressed, enc.Version(), comp.String())
			require.Equal(t, comp, enc.Compression())
		}
	})

	t.Run("Invalid compression", func(t *testing.T) {
		enc, err := NewEncoder(WithCompression(format.CompressionType(99)))
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
		require.Nil(t, enc)
	})

	t.Run("Nil codec", func(t *testing.T) {
		_, err := NewEncoder(WithCodec(nil))
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})

	t.Run("Custom codec", func(t *testing.T) {
		enc, err := NewEncoder(WithCodec(compress.NewZstdCompressor()))
		require.NoError(t, err)
		require.Equal(t, format.VersionCompressed, enc.Version())
		require.Equal(t, format.CompressionType(0), enc.Compression())
	})
}

func TestEncoder_ReferenceVector(t *testing.T) {
	require := require.New(t)

	enc, err := NewEncoder()
	require.NoError(err)

	data, err := enc.Encode(referenceImage())
	require.NoError(err)

	want := append([]byte("POG\x00"), referencePayload...)
	require.Equal(want, data)
}

func TestEncoder_EmptyRaster(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	data, err := enc.Encode(image.NewNRGBA(image.Rect(0, 0, 0, 0)))
	require.NoError(t, err)
	require.Equal(t, []byte{'P', 'O', 'G', 0, 0, 0, 0, 0, 0, 0, 0, 0}, data)

	t.Run("Zero height keeps width", func(t *testing.T) {
		data, err := enc.Encode(image.NewNRGBA(image.Rect(0, 0, 3, 0)))
		require.NoError(t, err)
		require.Equal(t, []byte{'P', 'O', 'G', 0, 3, 0, 0, 0, 0, 0, 0, 0}, data)
	})
}

func TestEncoder_HeaderIntegrity(t *testing.T) {
	img := gradientImage(16, 9)

	for _, comp := range allCompressions() {
		t.Run(comp.String(), func(t *testing.T) {
			enc, err := NewEncoder(WithCompression(comp))
			require.NoError(t, err)

			data, err := enc.Encode(img)
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(data), section.HeaderSize)
			require.Equal(t, section.Magic, string(data[:section.MagicSize]))
			require.Equal(t, byte(comp.Version()), data[section.VersionOffset])
		})
	}
}

func TestEncoder_LZMAContainer(t *testing.T) {
	enc, err := NewEncoder(WithCompression(format.CompressionLZMA))
	require.NoError(t, err)

	data, err := enc.Encode(gradientImage(8, 8))
	require.NoError(t, err)

	xzMagic := []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}
	require.True(t, bytes.HasPrefix(data[section.HeaderSize:], xzMagic))
}

func TestEncoder_ColorConversion(t *testing.T) {
	t.Run("Gray is stored opaque", func(t *testing.T) {
		gray := image.NewGray(image.Rect(0, 0, 2, 1))
		gray.SetGray(0, 0, color.Gray{Y: 0x80})
		gray.SetGray(1, 0, color.Gray{Y: 0xFF})

		enc, err := NewEncoder()
		require.NoError(t, err)

		data, err := enc.Encode(gray)
		require.NoError(t, err)
		require.Equal(t, []byte{0x80, 0x80, 0x80, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, data[section.MinBufferSize:])
	})

	t.Run("Premultiplied RGBA is unpremultiplied", func(t *testing.T) {
		src := image.NewRGBA(image.Rect(0, 0, 1, 1))
		src.SetRGBA(0, 0, color.RGBA{R: 0x40, G: 0x20, B: 0x00, A: 0x80})

		enc, err := NewEncoder()
		require.NoError(t, err)

		data, err := enc.Encode(src)
		require.NoError(t, err)

		want, ok := color.NRGBAModel.Convert(src.At(0, 0)).(color.NRGBA)
		require.True(t, ok)
		require.Equal(t, []byte{want.R, want.G, want.B, want.A}, data[section.MinBufferSize:])
	})

	t.Run("Sub-image origin", func(t *testing.T) {
		full := gradientImage(4, 4)
		sub, ok := full.SubImage(image.Rect(1, 1, 3, 4)).(*image.NRGBA)
		require.True(t, ok)

		enc, err := NewEncoder()
		require.NoError(t, err)

		data, err := enc.Encode(sub)
		require.NoError(t, err)
		require.Len(t, data, section.MinBufferSize+2*3*section.PixelSize)
		require.Equal(t, []byte{2, 0, 0, 0, 3, 0, 0, 0}, data[section.HeaderSize:section.MinBufferSize])

		var want []byte
		for y := 1; y < 4; y++ {
			for x := 1; x < 3; x++ {
				c := full.NRGBAAt(x, y)
				want = append(want, c.R, c.G, c.B, c.A)
			}
		}
		require.Equal(t, want, data[section.MinBufferSize:])
	})
}

func TestEncoder_CompressionFailure(t *testing.T) {
	enc, err := NewEncoder(WithCodec(failingCodec{}))
	require.NoError(t, err)

	data, err := enc.Encode(gradientImage(2, 2))
	require.ErrorIs(t, err, errs.ErrCompressionFailure)
	require.ErrorIs(t, err, errCodecBroken)
	require.Nil(t, data)
}

func TestEncoder_UnsupportedDimension(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	t.Run("Payload overflows", func(t *testing.T) {
		side := ^uint32(0)
		img := boundsOnly{rect: image.Rect(0, 0, int(side), int(side))}
		if strconv.IntSize < 64 {
			img = boundsOnly{rect: image.Rect(0, 0, 1<<16, 1<<16)}
		}

		_, err := enc.Encode(img)
		require.ErrorIs(t, err, errs.ErrUnsupportedDimension)
	})

	t.Run("Side exceeds 32 bits", func(t *testing.T) {
		if strconv.IntSize < 64 {
			t.Skip("int cannot hold a side wider than 32 bits")
		}

		shift := 33
		img := boundsOnly{rect: image.Rect(0, 0, 1<<shift, 1)}

		_, err := enc.Encode(img)
		require.ErrorIs(t, err, errs.ErrUnsupportedDimension)
	})
}

func TestEncoder_EncodeTo(t *testing.T) {
	enc, err := NewEncoder(WithCompression(format.CompressionLZMA))
	require.NoError(t, err)

	img := gradientImage(10, 10)

	var buf bytes.Buffer
	n, err := enc.EncodeTo(&buf, img)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)

	data, err := enc.Encode(img)
	require.NoError(t, err)
	require.Equal(t, data, buf.Bytes())
}

func TestEncoder_ResultDoesNotAliasPool(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	first, err := enc.Encode(referenceImage())
	require.NoError(t, err)
	snapshot := bytes.Clone(first)

	_, err = enc.Encode(gradientImage(32, 32))
	require.NoError(t, err)
	require.Equal(t, snapshot, first)
}
