// Package endian maps tree byte orders onto encoding/binary engines.
//
// A tree stream carries two independent byte-order concerns: the payload
// byte order, chosen by the caller or forced by a header, and the header
// fields themselves, which are always little-endian. Both are expressed as
// an EndianEngine so encoders can append directly into a buffer:
//
//	engine := endian.GetEngine(format.LittleEndian)
//	buf = engine.AppendUint32(buf, payloadLen)
//
// Single bytes (tag discriminants, byte values and byte-array contents) are
// never routed through an engine.
//
// All functions in this package are safe for concurrent use. The returned
// engines are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"

	"github.com/Yellow-Dog-Man/Substrate/format"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// Native returns the host byte order as a format.EndianType.
func Native() format.EndianType {
	if CheckEndianness() == binary.BigEndian {
		return format.BigEndian
	}

	return format.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetHeaderEngine returns the engine used for header fields.
// Header fields are little-endian regardless of the payload byte order.
func GetHeaderEngine() EndianEngine {
	return binary.LittleEndian
}

// GetEngine returns the engine for the given byte order.
// Unknown values fall back to big-endian, the historical payload default.
func GetEngine(e format.EndianType) EndianEngine {
	if e == format.LittleEndian {
		return binary.LittleEndian
	}

	return binary.BigEndian
}

// TypeOf reports which format.EndianType an engine implements.
func TypeOf(engine EndianEngine) format.EndianType {
	if engine == EndianEngine(binary.LittleEndian) {
		return format.LittleEndian
	}

	return format.BigEndian
}

// Opposite returns the byte order that is not e.
func Opposite(e format.EndianType) format.EndianType {
	if e == format.LittleEndian {
		return format.BigEndian
	}

	return format.LittleEndian
}
