// Package errs defines the sentinel errors shared across cursive packages.
//
// The cursor protocol reports "no element" through boolean returns, never
// through errors. The errors below are reserved for invariant violations
// and unavoidable external failures, and are meant to be matched with
// errors.Is after wrapping at call sites.
package errs

import "errors"

var (
	// ErrDisposed is returned when an operation is attempted on a cursor or
	// buffer after it has been disposed. Fatal to that handle; the caller
	// must obtain a new one.
	ErrDisposed = errors.New("handle is disposed")

	// ErrInsufficientCapacity is returned when a destination buffer is too
	// small to hold the encoded output. Recoverable: retry with a larger
	// buffer.
	ErrInsufficientCapacity = errors.New("insufficient destination capacity")

	// ErrCorruptFrame is returned when a frame fails structural validation:
	// bad flags, impossible lengths, or a compressor reporting failure.
	// The frame is rejected; no partial read is attempted.
	ErrCorruptFrame = errors.New("corrupt frame")

	// ErrVersionMismatch is returned when a frame's version nibble does not
	// match the reader's supported version.
	ErrVersionMismatch = errors.New("unsupported frame version")

	// ErrShortFrame is returned when the input is shorter than the minimum
	// frame size.
	ErrShortFrame = errors.New("frame shorter than header")

	// ErrDeltaUnsupported is returned when the delta flag is set on a frame
	// whose element type carries no delta capability.
	ErrDeltaUnsupported = errors.New("delta flag set for non-delta element type")

	// ErrInvalidBlock is returned when a blockpack container fails header
	// validation or decompresses to an unexpected size.
	ErrInvalidBlock = errors.New("invalid block container")

	// ErrUnknownAlgorithm is returned when a compression algorithm name or
	// identifier is not recognized.
	ErrUnknownAlgorithm = errors.New("unknown compression algorithm")

	// ErrKeyNotFound is returned by indexer-style accessors when the key is
	// absent. Try-variants report absence via a false return instead.
	ErrKeyNotFound = errors.New("key not found")

	// ErrReadOnlySeries is returned when a write is attempted on a sealed
	// series.
	ErrReadOnlySeries = errors.New("series is readonly")

	// ErrOutOfOrderKey is returned by Append when the key does not sort
	// strictly after the series' current maximum.
	ErrOutOfOrderKey = errors.New("append key is not greater than the last key")
)
