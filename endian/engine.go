// Package endian provides the byte order engines used by the POG header and payload.
//
// The canonical POG format stores width and height as little-endian uint32
// values on every host. The native byte order is only consulted when reading
// legacy headerless buffers, which were written in the order of the machine
// that produced them.
//
// # Basic Usage
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, width)
//	height := engine.Uint32(payload[4:8])
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned
// EndianEngine values are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// so one value can both decode fixed-width fields and append them to a buffer.
//
// binary.LittleEndian and binary.BigEndian satisfy this interface.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the engine used by the canonical POG format.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetNativeEngine returns the engine matching the host byte order.
func GetNativeEngine() EndianEngine {
	if IsNativeLittleEndian() {
		return binary.LittleEndian
	}

	return binary.BigEndian
}

// IsNativeLittleEndian reports whether the host stores integers least significant byte first.
func IsNativeLittleEndian() bool {
	// 0x0100: the first byte in memory is 0x00 on little-endian hosts.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	return b[0] == 0x00
}
