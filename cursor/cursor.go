// Package cursor defines the pull-based navigation protocol over ordered
// series and the combinators that compose cursors into pipelines.
//
// A Cursor is a stateful navigator over an ordered K->V mapping. It starts
// Uninitialized, positioned before the first element; movement operations
// place it AtElement, and on a sealed (readonly) series moving past the
// last element places it AfterEnd. Movement reports "no element" through
// boolean returns, never through errors.
//
// The key semantic of the protocol is the distinction between a
// provisional and a terminal end. A synchronous MoveNext returning false
// on a mutable series means "no element right now", not "sequence
// complete"; only NextCtx (the async move) folds that distinction into a
// terminal result, by waiting on the source's update token until either
// new data arrives or the source becomes readonly.
//
// Combinators (Empty, Map, Op, Comparison, Zip) are generic value types
// parametric in their inner cursor types, so a concrete pipeline
// monomorphizes into a nested type known at composition time. Boxing a
// pipeline into the Cursor interface is the explicit type-erasure step and
// costs one indirection per call; see Erase.
package cursor

import (
	"context"

	"github.com/cursive-io/cursive/compare"
	"github.com/cursive-io/cursive/errs"
	"github.com/cursive-io/cursive/gate"
)

// State identifies a cursor's position lifecycle.
type State uint8

const (
	// Uninitialized is the initial state; current key and value are
	// undefined and the cursor sits before the first element.
	Uninitialized State = iota
	// AtElement means the current key and value are valid.
	AtElement
	// AfterEnd means the cursor has moved past the last element of a
	// readonly series.
	AfterEnd
	// Disposed means the cursor has been closed; movement returns false.
	Disposed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case AtElement:
		return "AtElement"
	case AfterEnd:
		return "AfterEnd"
	case Disposed:
		return "Disposed"
	default:
		return "Unknown"
	}
}

// Lookup selects the neighbor policy for MoveAt.
type Lookup uint8

const (
	EQ Lookup = iota // exactly the given key
	LT               // greatest key strictly less than the given key
	LE               // greatest key less than or equal to the given key
	GE               // least key greater than or equal to the given key
	GT               // least key strictly greater than the given key
)

func (l Lookup) String() string {
	switch l {
	case EQ:
		return "EQ"
	case LT:
		return "LT"
	case LE:
		return "LE"
	case GE:
		return "GE"
	case GT:
		return "GT"
	default:
		return "Unknown"
	}
}

// Pair is an immutable key/value pair, the cursor's observable position.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Source is the capability an ordered-map implementation exposes to the
// cursor layer. A cursor holds a non-owning reference to its source; the
// cursor's lifetime must not exceed the source's.
type Source[K, V any] interface {
	// Cursor yields a fresh cursor positioned before the first element.
	Cursor() Cursor[K, V]
	// Comparer returns the total order the source's keys obey.
	Comparer() compare.Comparer[K]
	// IsIndexed reports whether key positions are sparse or opaque.
	IsIndexed() bool
	// IsReadOnly reports whether the source is sealed: no further appends
	// will occur.
	IsReadOnly() bool
	// Updated returns a token that completes true when new data is
	// available and false when the source becomes permanently readonly.
	Updated() *gate.Token
}

// Cursor is a single-reader navigator over an ordered series.
//
// A cursor instance is single-threaded; distinct cursors over the same
// source may be used concurrently. Movement on a Disposed cursor returns
// false; NextCtx on a Disposed cursor returns ErrDisposed.
type Cursor[K, V any] interface {
	// MoveFirst positions at the minimum key. Returns true if positioned
	// on an element.
	MoveFirst() bool
	// MoveLast positions at the maximum key.
	MoveLast() bool
	// MoveNext advances one key. A false return on a mutable series is
	// provisional: the position is unchanged and a later call may succeed.
	MoveNext() bool
	// MovePrevious regresses one key, symmetric to MoveNext.
	MovePrevious() bool
	// MoveAt positions exactly on key, or on its neighbor per dir.
	MoveAt(key K, dir Lookup) bool
	// MoveNextBatch returns the next chunk of consecutive elements as a
	// read-only segment, advancing the cursor past it. Cursors that cannot
	// produce batches return false immediately.
	MoveNextBatch() (Segment[K, V], bool)

	// CurrentKey returns the key at the current position. Valid only in
	// the AtElement state.
	CurrentKey() K
	// CurrentValue returns the value at the current position. Valid only
	// in the AtElement state.
	CurrentValue() V
	// TryGetValue performs a point lookup without moving the cursor.
	TryGetValue(key K) (V, bool)

	// Comparer returns the total order governing this cursor's keys.
	Comparer() compare.Comparer[K]
	// IsContinuous reports whether the cursor defines a value for every
	// key in its domain, not only at stored keys.
	IsContinuous() bool
	// IsReadOnly reports whether the cursor's source (or all operand
	// sources, for combinators) is sealed.
	IsReadOnly() bool
	// Updated returns a token that completes true when any underlying
	// source gains data, false when it is sealed.
	Updated() *gate.Token
	// State returns the cursor's lifecycle state.
	State() State

	// Clone produces an independent cursor with the same logical state.
	// Combinator clones deep-clone their inner cursors.
	Clone() Cursor[K, V]
	// Close releases inner resources. Idempotent.
	Close() error
}

// Segment is a read-only view over a run of consecutive elements, produced
// by batch-mode iteration.
type Segment[K, V any] struct {
	keys   []K
	values []V
}

// NewSegment wraps parallel key/value slices as a read-only segment.
// The slices must not be mutated after the call.
func NewSegment[K, V any](keys []K, values []V) Segment[K, V] {
	if len(keys) != len(values) {
		panic("NewSegment: key/value length mismatch")
	}

	return Segment[K, V]{keys: keys, values: values}
}

// Len returns the number of elements in the segment.
func (s Segment[K, V]) Len() int { return len(s.keys) }

// Key returns the i-th key.
func (s Segment[K, V]) Key(i int) K { return s.keys[i] }

// Value returns the i-th value.
func (s Segment[K, V]) Value(i int) V { return s.values[i] }

// Pair returns the i-th pair.
func (s Segment[K, V]) Pair(i int) Pair[K, V] {
	return Pair[K, V]{Key: s.keys[i], Value: s.values[i]}
}

// Keys returns the segment's keys. The returned slice is shared and must
// not be mutated.
func (s Segment[K, V]) Keys() []K { return s.keys }

// Values returns the segment's values. The returned slice is shared and
// must not be mutated.
func (s Segment[K, V]) Values() []V { return s.values }

// NextCtx is the shared async-move loop: it polls a synchronous MoveNext,
// returns a terminal false once the cursor's sources are readonly and
// exhausted, and otherwise waits for the cursor's update token or ctx
// cancellation and retries.
//
// The update token is acquired before the synchronous attempt so an append
// racing the failed MoveNext completes the very token being awaited. On
// cancellation the cursor's position is unchanged and ctx.Err() is
// returned.
func NextCtx[K, V any](ctx context.Context, c Cursor[K, V]) (bool, error) {
	for {
		tok := c.Updated()

		if c.MoveNext() {
			return true, nil
		}
		if c.State() == Disposed {
			return false, errs.ErrDisposed
		}
		if c.IsReadOnly() {
			return false, nil
		}

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-tok.Done():
			if !tok.Result() {
				// Sealed while waiting; drain anything that landed before
				// the seal, then report the terminal end.
				if c.MoveNext() {
					return true, nil
				}

				return false, nil
			}
		}
	}
}

// Erase boxes a concrete cursor pipeline into the uniform Cursor
// interface, discarding the pipeline shape from the type. Use it when
// storing cursors in heterogeneous collections or crossing an API
// boundary; each operation then pays one interface indirection.
func Erase[K, V any, C Cursor[K, V]](c C) Cursor[K, V] {
	return c
}
