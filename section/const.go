package section

// Magic identifies a POG buffer. It occupies the first three bytes.
const Magic = "POG"

// offsets and section sizes in the POG buffer
const (
	MagicSize      = len(Magic)                // magic bytes at offset 0
	VersionOffset  = MagicSize                 // byte offset of the version tag
	HeaderSize     = MagicSize + 1             // magic + version, payload starts here
	DimensionsSize = 8                         // width + height at payload offset 0
	PixelSize      = 4                         // R, G, B, A
	PixelsOffset   = DimensionsSize            // payload offset of the first pixel record
	MinBufferSize  = HeaderSize + PixelsOffset // smallest valid raw buffer (0×0 image)
)
