// Package errs defines the sentinel errors returned by the POG encoder and decoder.
//
// Every failure of an encode or decode call wraps exactly one of these values,
// so callers can classify errors with errors.Is:
//
//	img, err := pog.Decode(data)
//	if errors.Is(err, errs.ErrBadMagic) {
//	    // not a POG buffer
//	}
package errs

import "errors"

// Encoder errors.
var (
	// ErrUnsupportedDimension is returned when the raster width or height does not fit in 32 bits.
	ErrUnsupportedDimension = errors.New("unsupported dimension")
	// ErrCompressionFailure is returned when the generic compressor rejects the payload.
	ErrCompressionFailure = errors.New("compression failure")
)

// Decoder errors.
var (
	// ErrTruncatedHeader is returned when the buffer is shorter than the 4-byte header.
	ErrTruncatedHeader = errors.New("truncated header")
	// ErrBadMagic is returned when the buffer does not start with "POG".
	ErrBadMagic = errors.New("bad magic")
	// ErrUnsupportedVersion is returned when the version byte is neither 0 nor 1.
	ErrUnsupportedVersion = errors.New("unsupported version")
	// ErrCorruptPayload is returned when the compressed payload cannot be decompressed.
	ErrCorruptPayload = errors.New("corrupt payload")
	// ErrSizeMismatch is returned when the payload length is not 8 + 4*width*height.
	ErrSizeMismatch = errors.New("size mismatch")
)

// Configuration errors.
var (
	// ErrInvalidCompression is returned for unknown compression types or names.
	ErrInvalidCompression = errors.New("invalid compression type")
)
