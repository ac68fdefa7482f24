package codec

import (
	"fmt"

	"github.com/arloliu/pog/compress"
	"github.com/arloliu/pog/errs"
	"github.com/arloliu/pog/format"
	"github.com/arloliu/pog/internal/options"
	"github.com/arloliu/pog/section"
)

// EncoderConfig holds the header and payload codec an Encoder writes with.
type EncoderConfig struct {
	header      section.Header
	compression format.CompressionType
	codec       compress.Codec
}

// NewEncoderConfig creates the default configuration: raw payload, version 0.
func NewEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		header:      section.NewHeader(format.CompressionNone),
		compression: format.CompressionNone,
		codec:       compress.NewNoOpCompressor(),
	}
}

// Header returns the header written in front of every payload.
func (c *EncoderConfig) Header() section.Header {
	return c.header
}

// Compression returns the configured compression type.
//
// It is format.CompressionType(0) when a custom codec was installed with WithCodec.
func (c *EncoderConfig) Compression() format.CompressionType {
	return c.compression
}

// setCompression selects a built-in codec and the matching version tag.
func (c *EncoderConfig) setCompression(comp format.CompressionType) error {
	codec, err := compress.GetCodec(comp)
	if err != nil {
		return err
	}

	c.header = section.NewHeader(comp)
	c.compression = comp
	c.codec = codec

	return nil
}

// setCodec installs a custom generic compressor; the payload is tagged as version 1.
func (c *EncoderConfig) setCodec(codec compress.Codec) error {
	if codec == nil {
		return fmt.Errorf("%w: nil codec", errs.ErrInvalidCompression)
	}

	c.header = section.Header{Version: format.VersionCompressed}
	c.compression = 0
	c.codec = codec

	return nil
}

// EncoderOption represents a functional option for configuring the EncoderConfig.
type EncoderOption = options.Option[*EncoderConfig]

// WithCompression selects the payload compression.
//
// format.CompressionNone writes version 0 buffers. Every other type writes
// version 1 buffers; format.CompressionLZMA is the interoperable choice.
// Default is format.CompressionNone.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setCompression(comp)
	})
}

// WithCodec installs a custom generic compressor for version 1 payloads.
//
// The decoder must be configured with a matching decompressor.
func WithCodec(codec compress.Codec) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setCodec(codec)
	})
}
