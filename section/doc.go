// Package section defines the fixed-size binary structures of a POG buffer.
//
// A POG buffer is a 4-byte header followed by a payload. The payload may be
// compressed as a whole; once decompressed it starts with the image
// dimensions and continues with one 4-byte record per pixel:
//
//	┌──────────────────────────────────────────────┐
//	│ Header (4 bytes, never compressed)           │
//	│  - Magic   (3 bytes): "POG"                  │
//	│  - Version (1 byte):  0 raw, 1 compressed    │
//	├──────────────────────────────────────────────┤
//	│ Payload (raw or compressed as a whole)       │
//	│  ┌────────────────────────────────────────┐  │
//	│  │ Dimensions (8 bytes)                   │  │
//	│  │  - Width  uint32 little-endian         │  │
//	│  │  - Height uint32 little-endian         │  │
//	│  ├────────────────────────────────────────┤  │
//	│  │ Pixels (W × H × 4 bytes, row-major)    │  │
//	│  │  - R, G, B, A                          │  │
//	│  └────────────────────────────────────────┘  │
//	└──────────────────────────────────────────────┘
//
// Records carry no coordinates: the pixel at (x, y) is record y*W + x. The
// decompressed payload length is therefore exactly 8 + 4*W*H.
//
// # Byte Order
//
// Width and height are always little-endian, independent of the host. The
// only exception is the legacy headerless layout, see ParseLegacyDimensions.
package section
