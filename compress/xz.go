package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
)

// LZMACompressor compresses payloads with LZMA2 inside the .xz container.
//
// This is the generic compressor selected by version tag 1. The writer uses
// the library defaults (8 MiB dictionary, CRC64 check), which matches the
// default preset of Python's lzma module, so buffers are readable by any
// xz/lzma implementation and vice versa.
//
// Performance characteristics:
//   - Compression: slow compared to S2/LZ4, best ratio on photographic data
//   - Decompression: moderate, single-threaded
//   - Memory usage: dictionary-sized buffers per operation
type LZMACompressor struct{}

var _ Codec = (*LZMACompressor)(nil)

// NewLZMACompressor creates a new LZMA (xz) compressor with default settings.
func NewLZMACompressor() LZMACompressor {
	return LZMACompressor{}
}

// Compress compresses the input data into a single xz stream.
//
// Empty input still produces a complete xz stream, so every output is
// readable by other xz implementations.
func (c LZMACompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(data)/2 + 64)

	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("xz writer: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("xz compression failed: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("xz compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses an xz stream.
//
// The whole input must be consumed by valid xz streams; trailing garbage or a
// truncated stream is reported as an error. Empty input is not an xz stream
// and fails as well.
func (c LZMACompressor) Decompress(data []byte) ([]byte, error) {
	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("xz decompression failed: %w", err)
	}

	decompressed, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("xz decompression failed: %w", err)
	}

	return decompressed, nil
}
