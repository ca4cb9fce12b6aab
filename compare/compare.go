// Package compare provides the key comparator capability consumed by
// ordered series and cursors.
//
// A Comparer defines a total order over a key type. Cursors resolve every
// positioning decision through the comparator alone; they never compare
// keys by bit equality. A comparator must be stable for the lifetime of any
// series that uses it.
package compare

import (
	"cmp"
	"encoding/binary"
	"math"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Comparer defines a total order over K.
//
// Compare returns a negative value if a sorts before b, zero if they are
// equal under the order, and a positive value otherwise.
type Comparer[K any] interface {
	Compare(a, b K) int
}

// Hasher is an optional capability of a Comparer: a 64-bit key hash that is
// consistent with the order's equality, i.e. Compare(a,b) == 0 implies
// Hash(a) == Hash(b).
type Hasher[K any] interface {
	Hash(k K) uint64
}

// Hash64 computes the xxHash64 of the given bytes. It is the hash used by
// every built-in Hasher.
func Hash64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// natural orders keys by the language ordering of cmp.Ordered types.
type natural[K cmp.Ordered] struct{}

func (natural[K]) Compare(a, b K) int { return cmp.Compare(a, b) }

func (natural[K]) Hash(k K) uint64 {
	switch v := any(k).(type) {
	case string:
		return xxhash.Sum64String(v)
	case int:
		return hashUint64(uint64(int64(v)))
	case int8:
		return hashUint64(uint64(int64(v)))
	case int16:
		return hashUint64(uint64(int64(v)))
	case int32:
		return hashUint64(uint64(int64(v)))
	case int64:
		return hashUint64(uint64(v))
	case uint:
		return hashUint64(uint64(v))
	case uint8:
		return hashUint64(uint64(v))
	case uint16:
		return hashUint64(uint64(v))
	case uint32:
		return hashUint64(uint64(v))
	case uint64:
		return hashUint64(v)
	case uintptr:
		return hashUint64(uint64(v))
	case float32:
		return hashUint64(uint64(math.Float32bits(v)))
	case float64:
		return hashUint64(math.Float64bits(v))
	default:
		return 0
	}
}

func hashUint64(v uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)

	return xxhash.Sum64(b[:])
}

// Natural returns the comparator for the language ordering of K.
// The returned comparator also implements Hasher.
func Natural[K cmp.Ordered]() Comparer[K] {
	return natural[K]{}
}

// timeComparer orders time.Time values chronologically.
type timeComparer struct{}

func (timeComparer) Compare(a, b time.Time) int { return a.Compare(b) }

func (timeComparer) Hash(k time.Time) uint64 { return hashUint64(uint64(k.UnixNano())) }

// Time returns the chronological comparator for time.Time keys.
// The returned comparator also implements Hasher.
func Time() Comparer[time.Time] {
	return timeComparer{}
}

// reversed inverts the order of an inner comparator.
type reversed[K any] struct {
	inner Comparer[K]
}

func (r reversed[K]) Compare(a, b K) int { return r.inner.Compare(b, a) }

func (r reversed[K]) Hash(k K) uint64 {
	if h, ok := r.inner.(Hasher[K]); ok {
		return h.Hash(k)
	}

	return 0
}

// Reverse returns a comparator with the inverse order of c. Hashing, when
// c provides it, is unchanged: equality is symmetric under reversal.
func Reverse[K any](c Comparer[K]) Comparer[K] {
	if r, ok := c.(reversed[K]); ok {
		return r.inner
	}

	return reversed[K]{inner: c}
}

// Func adapts a plain compare function into a Comparer.
type Func[K any] func(a, b K) int

func (f Func[K]) Compare(a, b K) int { return f(a, b) }
