// Package format defines the shared enums and layout constants for the
// cursive frame and block container formats.
package format

type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores bytes verbatim.
	CompressionZstd CompressionType = 0x2 // CompressionZstd is Zstandard block compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 is S2 (Snappy-compatible) compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 is LZ4 block compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression maps an algorithm name to its CompressionType.
// The empty string selects the default algorithm, Zstd.
func ParseCompression(name string) (CompressionType, bool) {
	switch name {
	case "lz4":
		return CompressionLZ4, true
	case "zstd", "":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "none":
		return CompressionNone, true
	default:
		return 0, false
	}
}

// Frame layout constants. A frame is an 8-byte prefix followed by a
// blockpack container:
//
//	bytes 0..4   total frame length, little-endian int32
//	byte  4      version:4 | flags:4
//	bytes 5..8   reserved, zero
//	bytes 8..    blockpack container (16-byte header + compressed payload)
const (
	FrameHeaderSize = 8
	FrameVersion    = 0

	// FrameFlagCompressed marks the payload as a blockpack container.
	// It is set on every well-formed frame, including empty ones.
	FrameFlagCompressed = 0x1
	// FrameFlagDelta marks the payload as delta pre-processed.
	FrameFlagDelta = 0x2

	FrameFlagMask = 0x0F
)

// PackVersionFlags packs a frame version and flag nibble into byte 4 of the
// frame header.
func PackVersionFlags(version, flags uint8) uint8 {
	return (version&0x0F)<<4 | flags&FrameFlagMask
}

// UnpackVersionFlags splits byte 4 of the frame header into its version and
// flag nibbles.
func UnpackVersionFlags(b uint8) (version, flags uint8) {
	return b >> 4, b & FrameFlagMask
}
