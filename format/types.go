package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/pog/errs"
)

type (
	Version         uint8
	CompressionType uint8
)

const (
	VersionRaw        Version = 0x0 // VersionRaw marks an uncompressed payload.
	VersionCompressed Version = 0x1 // VersionCompressed marks a payload run through the generic compressor.

	CompressionNone CompressionType = 0x1 // CompressionNone stores the payload verbatim.
	CompressionLZMA CompressionType = 0x2 // CompressionLZMA is the default generic compressor (xz container).
	CompressionZstd CompressionType = 0x3 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x4 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x5 // CompressionLZ4 represents LZ4 block compression.
)

// IsValid reports whether v is a version the decoder understands.
func (v Version) IsValid() bool {
	return v == VersionRaw || v == VersionCompressed
}

func (v Version) String() string {
	switch v {
	case VersionRaw:
		return "Raw"
	case VersionCompressed:
		return "Compressed"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionLZMA:
		return "LZMA"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the known compression types.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

// Version returns the header version byte written for this compression type.
//
// Every generic compressor shares version 1; the header does not record which
// algorithm produced the payload.
func (c CompressionType) Version() Version {
	if c == CompressionNone {
		return VersionRaw
	}

	return VersionCompressed
}

// ParseCompressionType converts a case-insensitive name ("none", "lzma", "xz",
// "zstd", "s2", "lz4") into a CompressionType.
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "raw":
		return CompressionNone, nil
	case "lzma", "xz", "generic":
		return CompressionLZMA, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, name)
	}
}
