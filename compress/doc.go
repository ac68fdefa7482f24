// Package compress provides the generic compressors used for version 1 POG payloads.
//
// A POG buffer with version tag 1 stores its whole payload (dimensions and
// pixel records) in compressed form. The header only says "compressed"; it
// does not name the algorithm. The interoperable choice, and the default of
// the encoder and decoder, is LZMA in the .xz container.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
// **NoOp** (format.CompressionNone): payload is stored verbatim, version tag 0.
//
// **LZMA** (format.CompressionLZMA): xz container, default preset. Readable by
// Python's lzma module and by standard xz utilities.
//
//	codec := compress.NewLZMACompressor()
//	compressed, _ := codec.Compress(payload)
//	original, _ := codec.Decompress(compressed)
//
// **Zstd** (format.CompressionZstd), **S2** (format.CompressionS2) and
// **LZ4** (format.CompressionLZ4): faster alternatives for deployments where
// encoder and decoder are configured with the same algorithm. Files written
// with them are not readable by tools that assume LZMA.
//
// # Algorithm Selection Guide
//
// | Workload                 | Recommended | Reason                         |
// |--------------------------|-------------|--------------------------------|
// | Exchanging .pog files    | LZMA        | Only interoperable choice      |
// | Smallest output          | LZMA        | Best ratio on pixel data       |
// | Internal caches          | Zstd        | Good ratio, fast decode        |
// | Hot path, low latency    | S2 or LZ4   | Minimal CPU cost               |
//
// # Thread Safety
//
// All codec implementations are stateless values and safe for concurrent use.
// Zstd and LZ4 keep their working state in sync.Pool instances.
//
// # Error Handling
//
// Compression errors are rare (resource exhaustion). Decompression fails on
// corrupted, truncated or foreign input; the POG decoder reports those as
// errs.ErrCorruptPayload.
package compress
