//go:build cgozstd

package compress

import (
	"github.com/valyala/gozstd"
)

// Compress compresses data using the cgo Zstd binding.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 9), nil
}

// Decompress decompresses data using the cgo Zstd binding.
func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
