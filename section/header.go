package section

import (
	"fmt"

	"github.com/arloliu/pog/errs"
	"github.com/arloliu/pog/format"
)

// Header represents the 4-byte header at the start of every POG buffer.
type Header struct {
	// Version selects the payload encoding, byte offset 3.
	Version format.Version
}

// NewHeader creates a header for payloads produced with the given compression type.
func NewHeader(compression format.CompressionType) Header {
	return Header{Version: compression.Version()}
}

// IsCompressed reports whether the payload must be run through the generic decompressor.
func (h Header) IsCompressed() bool {
	return h.Version == format.VersionCompressed
}

// Parse parses the header from the start of a POG buffer.
//
// Validation order is length, magic, version, so a short buffer is always
// reported as truncated and a foreign buffer as bad magic even when its fourth
// byte happens to look like a version.
//
// Parameters:
//   - data: POG buffer, only the first HeaderSize bytes are inspected
//
// Returns:
//   - error: ErrTruncatedHeader, ErrBadMagic or ErrUnsupportedVersion
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: got %d bytes, need %d", errs.ErrTruncatedHeader, len(data), HeaderSize)
	}

	if !HasMagic(data) {
		return fmt.Errorf("%w: %q", errs.ErrBadMagic, data[:MagicSize])
	}

	version := format.Version(data[VersionOffset])
	if !version.IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, version)
	}

	h.Version = version

	return nil
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst and returns the extended slice.
func (h Header) AppendTo(dst []byte) []byte {
	dst = append(dst, Magic...)

	return append(dst, byte(h.Version))
}

// ParseHeader parses a Header from the start of a POG buffer.
func ParseHeader(data []byte) (Header, error) {
	var h Header
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}

	return h, nil
}

// HasMagic reports whether data starts with the POG magic bytes.
func HasMagic(data []byte) bool {
	return len(data) >= MagicSize && string(data[:MagicSize]) == Magic
}
