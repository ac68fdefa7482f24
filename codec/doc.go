// Package codec converts between rasters and POG buffers.
//
// An Encoder writes an image.Image as a POG buffer; a Decoder validates a
// buffer and rebuilds it as an *image.NRGBA. Both are configured with
// functional options and are safe for concurrent use once constructed.
//
// # Encoding
//
//	enc, err := codec.NewEncoder(codec.WithCompression(format.CompressionLZMA))
//	if err != nil {
//	    return err
//	}
//	data, err := enc.Encode(img)
//
// Pixels are stored as non-premultiplied R, G, B, A records. Sources in other
// color models go through color.NRGBAModel, so a grayscale or paletted image
// round-trips as its NRGBA equivalent.
//
// # Decoding
//
//	dec, err := codec.NewDecoder()
//	if err != nil {
//	    return err
//	}
//	img, err := dec.Decode(data)
//
// Decoding checks the header, decompresses the payload when the version tag
// is 1 and verifies that the payload length is exactly 8 + 4*W*H before the
// output raster is allocated. Every failure is one of the sentinel errors in
// package errs and can be matched with errors.Is.
//
// Inspect runs the same validation and returns an Info with the dimensions,
// sizes and an xxHash64 fingerprint of the pixel records.
//
// # Legacy Buffers
//
// Early writers emitted the payload without the "POG" header. Such buffers
// are rejected with errs.ErrBadMagic unless the decoder is built with
// WithLegacyFallback(true).
package codec
