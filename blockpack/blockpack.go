// Package blockpack implements the self-describing compressed block
// container consumed by the frame codec.
//
// A container is a 16-byte header followed by the codec's payload:
//
//	[0]      container version
//	[1]      codec identifier (format.CompressionType)
//	[2]      flags: bit 0 shuffle, bit 1 stored raw
//	[3]      element size in bytes (typesize)
//	[4:8]    nbytes: uncompressed payload length, little-endian uint32
//	[8:12]   cbytes: total container length, little-endian uint32
//	[12:16]  blocksize: split hint recorded by the writer (0 = whole buffer);
//	         the payload is always compressed as one block
//
// The header is always little-endian; the payload bytes are whatever the
// codec produced. A payload that a codec fails to shrink is stored raw so
// a container is never larger than HeaderSize + len(src).
package blockpack

import (
	"fmt"
	"runtime"

	"github.com/cursive-io/cursive/compress"
	"github.com/cursive-io/cursive/endian"
	"github.com/cursive-io/cursive/errs"
	"github.com/cursive-io/cursive/format"
	"github.com/cursive-io/cursive/internal/pool"
)

const (
	// HeaderSize is the fixed container header length.
	HeaderSize = 16
	// Version is the container version this package writes and reads.
	Version = 1

	flagShuffle   = 0x1
	flagStoredRaw = 0x2
)

// Params carries the knobs of a Compress call. The zero value is not
// usable; start from DefaultParams.
type Params struct {
	// Level is the codec effort hint. The built-in codecs do not read it:
	// each runs at a fixed effort (pure-Go Zstd at SpeedBetterCompression,
	// cgo Zstd at level 9).
	Level int
	// Shuffle enables the byte transpose pre-pass.
	Shuffle bool
	// TypeSize is the element size driving the shuffle. 0 and 1 both mean
	// byte elements (no transpose).
	TypeSize int
	// Algorithm selects the codec.
	Algorithm format.CompressionType
	// BlockSize is the split hint recorded in the header. 0 means the
	// implementation default (whole buffer).
	BlockSize int
	// Threads is the parallelism hint. The built-in codecs are
	// single-call and do not read the value; it is not written to the
	// header either.
	Threads int
}

// DefaultParams returns the parameters the frame codec starts from:
// level 9, shuffle on, Zstd, whole-buffer blocks, host parallelism.
func DefaultParams() Params {
	return Params{
		Level:     9,
		Shuffle:   true,
		TypeSize:  1,
		Algorithm: format.CompressionZstd,
		Threads:   runtime.GOMAXPROCS(0),
	}
}

// Bound returns the worst-case container size for srcLen input bytes.
// The stored-raw fallback caps the payload at srcLen.
func Bound(srcLen int) int {
	return HeaderSize + srcLen
}

var le = endian.LittleEndian()

func putHeader(dst []byte, codec format.CompressionType, flags uint8, typesize int, nbytes, cbytes, blocksize int) {
	dst[0] = Version
	dst[1] = uint8(codec)
	dst[2] = flags
	dst[3] = uint8(typesize)
	le.PutUint32(dst[4:8], uint32(nbytes))
	le.PutUint32(dst[8:12], uint32(cbytes))
	le.PutUint32(dst[12:16], uint32(blocksize))
}

// Compress writes a container for src into dst and returns the container
// length. It fails with ErrInsufficientCapacity if dst cannot hold the
// result; retry with at least Bound(len(src)) bytes.
func Compress(dst, src []byte, p Params) (int, error) {
	typesize := p.TypeSize
	if typesize <= 0 {
		typesize = 1
	}
	if typesize > 255 {
		return 0, fmt.Errorf("blockpack: typesize %d: %w", typesize, errs.ErrInvalidBlock)
	}

	codec, err := compress.ForType(p.Algorithm)
	if err != nil {
		return 0, fmt.Errorf("blockpack: %w", errs.ErrUnknownAlgorithm)
	}

	if len(src) == 0 {
		if len(dst) < HeaderSize {
			return 0, errs.ErrInsufficientCapacity
		}
		putHeader(dst, p.Algorithm, 0, typesize, 0, HeaderSize, p.BlockSize)

		return HeaderSize, nil
	}

	shuffled := src
	flags := uint8(0)
	if p.Shuffle && typesize > 1 {
		scratch := pool.GetFrameBuffer()
		defer pool.PutFrameBuffer(scratch)
		scratch.Grow(len(src))
		scratch.SetLength(len(src))
		Shuffle(scratch.B, src, typesize)
		shuffled = scratch.B
		flags |= flagShuffle
	}

	payload, err := codec.Compress(shuffled)
	if err != nil {
		return 0, fmt.Errorf("blockpack: compress: %w", err)
	}

	algorithm := p.Algorithm
	if len(payload) >= len(src) {
		// Incompressible; store the original bytes verbatim.
		payload = src
		flags = flagStoredRaw
		algorithm = format.CompressionNone
	}

	total := HeaderSize + len(payload)
	if total > len(dst) {
		return 0, errs.ErrInsufficientCapacity
	}

	putHeader(dst, algorithm, flags, typesize, len(src), total, p.BlockSize)
	copy(dst[HeaderSize:], payload)

	return total, nil
}

// BufferSizes probes a container header and returns the uncompressed
// length, the container length, and the block size hint.
func BufferSizes(src []byte) (nbytes, cbytes, blocksize int, err error) {
	if len(src) < HeaderSize {
		return 0, 0, 0, errs.ErrInvalidBlock
	}
	if src[0] != Version {
		return 0, 0, 0, errs.ErrVersionMismatch
	}

	nbytes = int(le.Uint32(src[4:8]))
	cbytes = int(le.Uint32(src[8:12]))
	blocksize = int(le.Uint32(src[12:16]))

	if cbytes < HeaderSize || cbytes > len(src) {
		return 0, 0, 0, errs.ErrInvalidBlock
	}

	return nbytes, cbytes, blocksize, nil
}

// Decompress reconstructs the original bytes of a container into dst and
// returns the byte count. dst must hold at least the probed nbytes.
func Decompress(dst, src []byte) (int, error) {
	nbytes, cbytes, _, err := BufferSizes(src)
	if err != nil {
		return 0, err
	}
	if nbytes == 0 {
		return 0, nil
	}
	if len(dst) < nbytes {
		return 0, errs.ErrInsufficientCapacity
	}

	algorithm := format.CompressionType(src[1])
	flags := src[2]
	typesize := int(src[3])
	payload := src[HeaderSize:cbytes]

	var raw []byte
	if flags&flagStoredRaw != 0 {
		raw = payload
	} else {
		codec, err := compress.ForType(algorithm)
		if err != nil {
			return 0, fmt.Errorf("blockpack: %w", errs.ErrUnknownAlgorithm)
		}
		raw, err = codec.Decompress(payload)
		if err != nil {
			return 0, fmt.Errorf("blockpack: decompress: %w", err)
		}
	}
	if len(raw) != nbytes {
		return 0, fmt.Errorf("blockpack: payload is %d bytes, header says %d: %w",
			len(raw), nbytes, errs.ErrInvalidBlock)
	}

	if flags&flagShuffle != 0 {
		Unshuffle(dst, raw, typesize)
	} else {
		copy(dst, raw)
	}

	return nbytes, nil
}
