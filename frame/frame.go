// Package frame implements the columnar array codec: a contiguous run of
// fixed-size values serialized into a self-describing compressed frame.
//
// A frame is an 8-byte prefix around a blockpack container:
//
//	bytes 0..4   total frame length, little-endian int32
//	byte  4      version:4 | flags:4 (bit 0 compressed, bit 1 delta)
//	bytes 5..8   reserved, zero
//	bytes 8..    blockpack container
//
// Three encode paths exist, selected by the call site's type:
//
//   - Encode/Decode pass a fixed-size primitive's bytes straight through
//     the block compressor.
//   - EncodeDelta/EncodeTimes/EncodeDeltable pre-process delta-capable
//     elements so the shuffled bytes compress better, and set the delta
//     flag.
//   - EncodeAny serializes arbitrary values with msgpack and recurses
//     into the byte specialization of this codec.
//
// Header fields are little-endian; element bytes are platform-native, so
// frames are not portable between hosts of differing endianness without
// an external byteswap.
package frame

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/cursive-io/cursive/blockpack"
	"github.com/cursive-io/cursive/endian"
	"github.com/cursive-io/cursive/errs"
	"github.com/cursive-io/cursive/format"
)

// Primitive covers the fixed-size element kinds the dense path accepts.
type Primitive interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Integral covers the signed integral kinds eligible for the generic
// delta path.
type Integral interface {
	~int8 | ~int16 | ~int32 | ~int64
}

var le = endian.LittleEndian()

// sliceBytes reinterprets a value slice as its backing bytes.
func sliceBytes[T any](v []T) []byte {
	if len(v) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*int(unsafe.Sizeof(v[0])))
}

func writeHeader(dst []byte, total int, flags uint8) {
	le.PutUint32(dst[0:4], uint32(total))
	dst[4] = format.PackVersionFlags(format.FrameVersion, flags)
	dst[5] = 0
	dst[6] = 0
	dst[7] = 0
}

// encodeFrame frames raw element bytes into dst and returns the total
// frame length.
func encodeFrame(dst, raw []byte, typesize int, delta bool, cfg config) (int, error) {
	if err := cfg.validate(); err != nil {
		return 0, err
	}
	if len(dst) < format.FrameHeaderSize {
		return 0, errs.ErrInsufficientCapacity
	}

	flags := uint8(format.FrameFlagCompressed)
	if delta {
		flags |= format.FrameFlagDelta
	}

	if len(raw) == 0 {
		writeHeader(dst, format.FrameHeaderSize, flags)

		return format.FrameHeaderSize, nil
	}

	n, err := blockpack.Compress(dst[format.FrameHeaderSize:], raw, cfg.params(typesize))
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errs.ErrInsufficientCapacity
	}

	total := format.FrameHeaderSize + n
	if total > math.MaxInt32 {
		return 0, errs.ErrInsufficientCapacity
	}
	writeHeader(dst, total, flags)

	return total, nil
}

// decodeFrame validates the 8-byte prefix and returns the contained
// blockpack payload, the total frame length, and the flag nibble. An
// empty frame returns a nil payload.
func decodeFrame(src []byte) (payload []byte, total int, flags uint8, err error) {
	if len(src) < format.FrameHeaderSize {
		return nil, 0, 0, errs.ErrShortFrame
	}

	total = int(le.Uint32(src[0:4]))
	version, flags := format.UnpackVersionFlags(src[4])
	if version != format.FrameVersion {
		return nil, 0, 0, fmt.Errorf("frame version %d: %w", version, errs.ErrVersionMismatch)
	}
	if flags&format.FrameFlagCompressed == 0 {
		return nil, 0, 0, fmt.Errorf("compressed flag missing: %w", errs.ErrCorruptFrame)
	}
	if total < format.FrameHeaderSize || total > len(src) {
		return nil, 0, 0, fmt.Errorf("frame length %d: %w", total, errs.ErrCorruptFrame)
	}

	if total <= format.FrameHeaderSize+blockpack.HeaderSize {
		return nil, total, flags, nil
	}

	return src[format.FrameHeaderSize:total], total, flags, nil
}

// Bound returns the worst-case frame size for count elements of size
// elemSize. Use it to size the destination buffer of an encode call.
func Bound(count, elemSize int) int {
	return format.FrameHeaderSize + blockpack.Bound(count*elemSize)
}

// Encode frames values into dst and returns the frame length.
//
// Element bytes pass through the block compressor with a shuffle keyed to
// the element size. Fails with ErrInsufficientCapacity when dst is smaller
// than the encoded result; Bound gives a safe size.
func Encode[T Primitive](dst []byte, values []T, opts ...Option) (int, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var zero T

	return encodeFrame(dst, sliceBytes(values), int(unsafe.Sizeof(zero)), false, cfg)
}

// EncodeSlice is Encode into a freshly allocated buffer of Bound size: it
// returns the frame as a slice of that buffer.
func EncodeSlice[T Primitive](values []T, opts ...Option) ([]byte, error) {
	var zero T
	dst := make([]byte, Bound(len(values), int(unsafe.Sizeof(zero))))

	n, err := Encode(dst, values, opts...)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decode reads a frame produced by Encode and returns the reconstructed
// values and the total frame length.
//
// Frames carrying the delta flag are rejected with ErrDeltaUnsupported;
// use DecodeDelta, DecodeTimes, or DecodeDeltable for those.
func Decode[T Primitive](src []byte) ([]T, int, error) {
	payload, total, flags, err := decodeFrame(src)
	if err != nil {
		return nil, 0, err
	}
	if flags&format.FrameFlagDelta != 0 {
		return nil, 0, fmt.Errorf("frame: %w", errs.ErrDeltaUnsupported)
	}

	out, err := decodeDense[T](payload)
	if err != nil {
		return nil, 0, err
	}

	return out, total, nil
}

// blockSizes probes a blockpack payload, wrapping errors as frame errors.
func blockSizes(payload []byte) (nbytes, cbytes, blocksize int, err error) {
	nbytes, cbytes, blocksize, err = blockpack.BufferSizes(payload)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("frame: %w", err)
	}

	return nbytes, cbytes, blocksize, nil
}

// blockDecompress reconstructs a blockpack payload into dst.
func blockDecompress(dst, payload []byte) error {
	if _, err := blockpack.Decompress(dst, payload); err != nil {
		return fmt.Errorf("frame: %w: %w", errs.ErrCorruptFrame, err)
	}

	return nil
}

// decodeDense reconstructs a []T from a blockpack payload. A nil payload
// decodes to an empty slice.
func decodeDense[T Primitive](payload []byte) ([]T, error) {
	if payload == nil {
		return []T{}, nil
	}

	nbytes, _, _, err := blockSizes(payload)
	if err != nil {
		return nil, err
	}

	var zero T
	size := int(unsafe.Sizeof(zero))
	if nbytes%size != 0 {
		return nil, fmt.Errorf("frame: %d payload bytes for %d-byte elements: %w",
			nbytes, size, errs.ErrCorruptFrame)
	}

	out := make([]T, nbytes/size)
	if nbytes == 0 {
		return out, nil
	}
	if err := blockDecompress(sliceBytes(out), payload); err != nil {
		return nil, err
	}

	return out, nil
}
