package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	_ "github.com/arloliu/pog" // registers POG with image.Decode
	"github.com/arloliu/pog/codec"
	"github.com/arloliu/pog/format"
)

const (
	pogExt = ".pog"
	pngExt = ".png"
)

var errMissingFile = errors.New("missing FILE argument")

type runner struct {
	out io.Writer
	log *zap.Logger
}

func (r *runner) encode(c *cli.Context) error {
	if c.NArg() < 1 {
		return errMissingFile
	}

	if c.IsSet("output") && c.NArg() > 1 {
		return errors.New("--output needs exactly one input file")
	}

	comp, err := format.ParseCompressionType(c.String("compression"))
	if err != nil {
		return err
	}

	enc, err := codec.NewEncoder(codec.WithCompression(comp))
	if err != nil {
		return err
	}

	for _, src := range c.Args().Slice() {
		dst := c.String("output")
		if dst == "" {
			dst = replaceExt(src, pogExt)
		}

		if err := r.encodeFile(enc, src, dst); err != nil {
			return fmt.Errorf("%s: %w", src, err)
		}
	}

	return nil
}

func (r *runner) encodeFile(enc *codec.Encoder, src, dst string) error {
	if filepath.Clean(src) == filepath.Clean(dst) {
		return errors.New("refusing to overwrite the input, use --output")
	}

	img, name, err := loadImage(src)
	if err != nil {
		return err
	}

	data, err := enc.Encode(img)
	if err != nil {
		return err
	}

	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return err
	}

	r.log.Info("encoded",
		zap.String("src", src),
		zap.String("dst", dst),
		zap.String("format", name),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
		zap.Int("bytes", len(data)),
		zap.Stringer("version", enc.Version()),
	)

	return nil
}

func (r *runner) decode(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("decode takes exactly one FILE argument")
	}

	dec, err := newDecoder(c)
	if err != nil {
		return err
	}

	src := c.Args().First()
	dst := c.String("output")
	if dst == "" {
		dst = replaceExt(src, pngExt)
	}

	if err := r.decodeFile(dec, src, dst); err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}

	return nil
}

func (r *runner) decodeFile(dec *codec.Decoder, src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	img, err := dec.Decode(data)
	if err != nil {
		return err
	}

	// encode fully before touching dst so a failure leaves no partial file
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}

	if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
		return err
	}

	r.log.Info("decoded",
		zap.String("src", src),
		zap.String("dst", dst),
		zap.Int("width", img.Rect.Dx()),
		zap.Int("height", img.Rect.Dy()),
	)

	return nil
}

func (r *runner) info(c *cli.Context) error {
	if c.NArg() < 1 {
		return errMissingFile
	}

	dec, err := newDecoder(c)
	if err != nil {
		return err
	}

	for _, path := range c.Args().Slice() {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		info, err := dec.Inspect(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		r.log.Debug("inspected",
			zap.String("path", path),
			zap.Uint32("width", info.Width),
			zap.Uint32("height", info.Height),
			zap.Int("payload", info.PayloadSize),
		)

		fmt.Fprintln(r.out, formatInfo(path, info))
	}

	return nil
}

// newDecoder builds a decoder from the --compression and --legacy flags.
// "none" keeps the default decompressor since raw buffers need none.
func newDecoder(c *cli.Context) (*codec.Decoder, error) {
	comp, err := format.ParseCompressionType(c.String("compression"))
	if err != nil {
		return nil, err
	}

	opts := []codec.DecoderOption{codec.WithLegacyFallback(c.Bool("legacy"))}
	if comp != format.CompressionNone {
		opts = append(opts, codec.WithDecompression(comp))
	}

	return codec.NewDecoder(opts...)
}

func loadImage(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	return image.Decode(f)
}

func formatInfo(path string, info codec.Info) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s: %s %dx%d, %d bytes, payload %d bytes, ratio %.3f, fingerprint %016x",
		path, info.Version, info.Width, info.Height, info.Size, info.PayloadSize, info.CompressionRatio(), info.Fingerprint)
	if info.Legacy {
		sb.WriteString(" (legacy)")
	}

	return sb.String()
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
