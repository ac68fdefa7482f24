package codec

import (
	"image"
	"image/color"

	"github.com/arloliu/pog/format"
	"github.com/arloliu/pog/internal/hash"
	"github.com/arloliu/pog/section"
)

// Info describes a validated POG buffer.
type Info struct {
	Version     format.Version // header version tag (VersionRaw for legacy buffers)
	Width       uint32
	Height      uint32
	Size        int    // encoded buffer length, header included
	PayloadSize int    // decompressed payload length, 8 + 4*W*H
	Legacy      bool   // buffer had no header and was read through the legacy fallback
	Fingerprint uint64 // xxHash64 of the pixel records
}

// IsCompressed reports whether the payload was stored compressed.
func (i Info) IsCompressed() bool {
	return i.Version == format.VersionCompressed
}

// CompressionRatio returns the encoded size relative to the equivalent raw buffer.
func (i Info) CompressionRatio() float64 {
	raw := section.HeaderSize + i.PayloadSize
	if i.Legacy {
		raw = i.PayloadSize
	}

	if raw == 0 {
		return 0
	}

	return float64(i.Size) / float64(raw)
}

// Config converts the dimensions to an image.Config with the NRGBA color model.
func (i Info) Config() image.Config {
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      int(i.Width),
		Height:     int(i.Height),
	}
}

// Fingerprint computes the xxHash64 of the pixel records of img.
//
// It equals Info.Fingerprint of any buffer that decodes to the same pixels,
// whatever the version tag of that buffer.
func Fingerprint(img *image.NRGBA) uint64 {
	b := img.Bounds()
	rowLen := b.Dx() * section.PixelSize

	return hash.Rows(b.Dy(), func(y int) []byte {
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		return img.Pix[off : off+rowLen]
	})
}
