package frame

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// EncodeAny frames arbitrary values: the slice is serialized with msgpack
// and the resulting byte stream recurses into the byte specialization of
// the codec (typesize 1, no shuffle benefit, no delta).
//
// The nested layout is therefore a frame whose reconstructed payload is a
// complete msgpack document.
func EncodeAny[T any](dst []byte, values []T, opts ...Option) (int, error) {
	if len(values) == 0 {
		cfg := defaultConfig()
		for _, opt := range opts {
			opt(&cfg)
		}

		return encodeFrame(dst, nil, 1, false, cfg)
	}

	blob, err := msgpack.Marshal(values)
	if err != nil {
		return 0, fmt.Errorf("frame: marshal: %w", err)
	}

	return Encode(dst, blob, opts...)
}

// AnyBound returns a destination size that is safe for EncodeAny in
// common cases. Msgpack output size depends on the values, so this is an
// estimate; on ErrInsufficientCapacity retry with a larger buffer.
func AnyBound(count, elemSizeHint int) int {
	return Bound(count, elemSizeHint+8)
}

// DecodeAny reads a frame produced by EncodeAny.
func DecodeAny[T any](src []byte) ([]T, int, error) {
	blob, total, err := Decode[byte](src)
	if err != nil {
		return nil, 0, err
	}
	if len(blob) == 0 {
		return []T{}, total, nil
	}

	var out []T
	if err := msgpack.Unmarshal(blob, &out); err != nil {
		return nil, 0, fmt.Errorf("frame: unmarshal: %w", err)
	}

	return out, total, nil
}
