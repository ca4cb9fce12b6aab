// Package endian provides byte order utilities for binary encoding and
// decoding.
//
// It combines the standard library's ByteOrder and AppendByteOrder
// interfaces into a single EndianEngine interface so header writers can
// both read fixed-width fields and append them without a temporary buffer.
// All frame and block container headers in cursive are little-endian;
// element payloads are platform-native (see the frame package for the
// portability caveat).
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Native determines the host's byte order by inspecting the layout of a
// fixed integer value.
func Native() binary.ByteOrder {
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return Native() == binary.LittleEndian
}

// LittleEndian returns the little-endian engine, the standard for all
// cursive header fields.
func LittleEndian() EndianEngine {
	return binary.LittleEndian
}

// BigEndian returns the big-endian engine.
func BigEndian() EndianEngine {
	return binary.BigEndian
}
