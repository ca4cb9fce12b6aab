package frame

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/cursive-io/cursive/errs"
	"github.com/cursive-io/cursive/format"
	"github.com/cursive-io/cursive/internal/pool"
)

// Deltable is the delta capability for user element types: Diff and Add
// must satisfy a.Add(b.Diff(a)) == b. Implementations must be fixed-size,
// pointer-free values so their bytes can pass through the dense path.
type Deltable[T any] interface {
	// Diff returns the delta from base to the receiver.
	Diff(base T) T
	// Add applies a delta to the receiver.
	Add(d T) T
}

// EncodeDelta frames signed integral values with delta-from-first
// pre-processing: the first value is stored verbatim, and every later
// element stores its difference from that fixed baseline.
//
// Deltas from a fixed baseline stay stationary for mean-reverting data,
// which reduces bit-plane variance after the shuffle. Timestamps want the
// opposite treatment; see EncodeTimes.
func EncodeDelta[T Integral](dst []byte, values []T, opts ...Option) (int, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var zero T
	size := int(unsafe.Sizeof(zero))

	if len(values) == 0 {
		return encodeFrame(dst, nil, size, true, cfg)
	}

	deltas := make([]T, len(values))
	deltas[0] = values[0]
	base := values[0]
	for i := 1; i < len(values); i++ {
		deltas[i] = values[i] - base
	}

	return encodeFrame(dst, sliceBytes(deltas), size, true, cfg)
}

// DecodeDelta reads a frame produced by EncodeDelta.
func DecodeDelta[T Integral](src []byte) ([]T, int, error) {
	payload, total, flags, err := decodeFrame(src)
	if err != nil {
		return nil, 0, err
	}
	if flags&format.FrameFlagDelta == 0 {
		return nil, 0, fmt.Errorf("frame: delta flag missing: %w", errs.ErrCorruptFrame)
	}

	out, err := decodeDense[T](payload)
	if err != nil {
		return nil, 0, err
	}

	// Reconstruct in place: element 0 is the baseline and stays verbatim.
	for i := 1; i < len(out); i++ {
		out[i] += out[0]
	}

	return out, total, nil
}

// EncodeDeltable frames delta-capable user values with delta-from-first
// pre-processing, mirroring EncodeDelta.
func EncodeDeltable[T Deltable[T]](dst []byte, values []T, opts ...Option) (int, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var zero T
	size := int(unsafe.Sizeof(zero))

	if len(values) == 0 {
		return encodeFrame(dst, nil, size, true, cfg)
	}

	deltas := make([]T, len(values))
	deltas[0] = values[0]
	for i := 1; i < len(values); i++ {
		deltas[i] = values[i].Diff(values[0])
	}

	return encodeFrame(dst, sliceBytes(deltas), size, true, cfg)
}

// DecodeDeltable reads a frame produced by EncodeDeltable.
func DecodeDeltable[T Deltable[T]](src []byte) ([]T, int, error) {
	payload, total, flags, err := decodeFrame(src)
	if err != nil {
		return nil, 0, err
	}
	if flags&format.FrameFlagDelta == 0 {
		return nil, 0, fmt.Errorf("frame: delta flag missing: %w", errs.ErrCorruptFrame)
	}
	if payload == nil {
		return []T{}, total, nil
	}

	nbytes, _, _, err := blockSizes(payload)
	if err != nil {
		return nil, 0, err
	}

	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 || nbytes%size != 0 {
		return nil, 0, fmt.Errorf("frame: %d payload bytes for %d-byte elements: %w",
			nbytes, size, errs.ErrCorruptFrame)
	}

	out := make([]T, nbytes/size)
	if nbytes > 0 {
		if err := blockDecompress(sliceBytes(out), payload); err != nil {
			return nil, 0, err
		}
	}
	for i := 1; i < len(out); i++ {
		out[i] = out[0].Add(out[i])
	}

	return out, total, nil
}

// EncodeTimes frames timestamps as their UnixNano ticks with
// delta-from-previous pre-processing: the first tick is stored verbatim
// and every later element stores the difference from its immediate
// predecessor.
//
// Monotone, roughly regular timestamps produce a small same-signed delta
// sequence that compresses better under the byte shuffle than
// deltas-from-first would; the two delta policies are deliberately
// different and must not be unified without re-measuring compression.
func EncodeTimes(dst []byte, times []time.Time, opts ...Option) (int, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(times) == 0 {
		return encodeFrame(dst, nil, 8, true, cfg)
	}

	deltas, release := pool.GetInt64Slice(len(times))
	defer release()

	prev := times[0].UnixNano()
	deltas[0] = prev
	for i := 1; i < len(times); i++ {
		tick := times[i].UnixNano()
		deltas[i] = tick - prev
		prev = tick
	}

	return encodeFrame(dst, sliceBytes(deltas), 8, true, cfg)
}

// DecodeTimes reads a frame produced by EncodeTimes. The reconstructed
// timestamps are in UTC; compare with time.Time.Equal.
func DecodeTimes(src []byte) ([]time.Time, int, error) {
	payload, total, flags, err := decodeFrame(src)
	if err != nil {
		return nil, 0, err
	}
	if flags&format.FrameFlagDelta == 0 {
		return nil, 0, fmt.Errorf("frame: delta flag missing: %w", errs.ErrCorruptFrame)
	}
	if payload == nil {
		return []time.Time{}, total, nil
	}

	nbytes, _, _, err := blockSizes(payload)
	if err != nil {
		return nil, 0, err
	}
	if nbytes%8 != 0 {
		return nil, 0, fmt.Errorf("frame: %d payload bytes for ticks: %w", nbytes, errs.ErrCorruptFrame)
	}

	count := nbytes / 8
	ticks, release := pool.GetInt64Slice(count)
	defer release()

	if count > 0 {
		if err := blockDecompress(sliceBytes(ticks), payload); err != nil {
			return nil, 0, err
		}
	}

	out := make([]time.Time, count)
	var acc int64
	for i, d := range ticks {
		acc += d
		out[i] = time.Unix(0, acc).UTC()
	}

	return out, total, nil
}
