package codec

import (
	"fmt"

	"github.com/arloliu/pog/compress"
	"github.com/arloliu/pog/errs"
	"github.com/arloliu/pog/format"
	"github.com/arloliu/pog/internal/options"
)

// DecoderConfig holds the decompressor used for version 1 payloads and the
// legacy fallback switch.
type DecoderConfig struct {
	codec          compress.Decompressor
	legacyFallback bool
}

// NewDecoderConfig creates the default configuration: LZMA for version 1,
// headerless buffers rejected.
func NewDecoderConfig() *DecoderConfig {
	return &DecoderConfig{
		codec: compress.NewLZMACompressor(),
	}
}

// LegacyFallback reports whether headerless buffers are accepted.
func (c *DecoderConfig) LegacyFallback() bool {
	return c.legacyFallback
}

func (c *DecoderConfig) setDecompression(comp format.CompressionType) error {
	if comp == format.CompressionNone {
		return fmt.Errorf("%w: version 1 payloads need a real decompressor, got %s", errs.ErrInvalidCompression, comp)
	}

	codec, err := compress.GetCodec(comp)
	if err != nil {
		return err
	}
	c.codec = codec

	return nil
}

func (c *DecoderConfig) setCodec(codec compress.Decompressor) error {
	if codec == nil {
		return fmt.Errorf("%w: nil codec", errs.ErrInvalidCompression)
	}
	c.codec = codec

	return nil
}

// DecoderOption represents a functional option for configuring the DecoderConfig.
type DecoderOption = options.Option[*DecoderConfig]

// WithDecompression selects the built-in algorithm used for version 1 payloads.
// Default is format.CompressionLZMA; format.CompressionNone is rejected.
func WithDecompression(comp format.CompressionType) DecoderOption {
	return options.New(func(c *DecoderConfig) error {
		return c.setDecompression(comp)
	})
}

// WithDecoderCodec installs a custom decompressor for version 1 payloads.
func WithDecoderCodec(codec compress.Decompressor) DecoderOption {
	return options.New(func(c *DecoderConfig) error {
		return c.setCodec(codec)
	})
}

// WithLegacyFallback enables reading headerless buffers.
//
// Without the "POG" magic the decoder normally fails with ErrBadMagic. When
// enabled, such a buffer is accepted if it holds width and height in host
// byte order followed by exactly W*H pixel records. Default is false.
func WithLegacyFallback(enabled bool) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.legacyFallback = enabled
	})
}
