// Package compress provides the block codecs consumed by the blockpack
// container.
//
// A payload handed to a Codec has already been pre-processed (byte
// shuffle, delta) by the layers above; codecs only move bytes. All codecs
// are safe for concurrent use and keep their heavy state in sync.Pools.
package compress

import (
	"fmt"

	"github.com/cursive-io/cursive/format"
)

// Compressor compresses a complete payload in one call.
//
// The returned slice is owned by the caller but may share memory with the
// input (NoOpCodec always, LZ4Codec for incompressible input); the input
// is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm. It validates
// the input and returns an error for corrupted or mismatched data.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCodec(),
	format.CompressionZstd: NewZstdCodec(),
	format.CompressionS2:   NewS2Codec(),
	format.CompressionLZ4:  NewLZ4Codec(),
}

// ForType retrieves the built-in Codec for the given compression type.
func ForType(t format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", t)
}
