// Package series provides the in-memory ordered series that backs the
// cursor layer's Source capability.
//
// Sorted is an append-friendly ordered map: keys are unique, iteration
// order equals comparator order, and consumers observe growth through the
// update gate. A writer appends (or inserts) pairs and finally seals the
// series, which tells async readers that the stream is complete.
package series

import (
	"cmp"
	"fmt"
	"sort"
	"sync"

	"github.com/cursive-io/cursive/compare"
	"github.com/cursive-io/cursive/cursor"
	"github.com/cursive-io/cursive/errs"
	"github.com/cursive-io/cursive/gate"
)

// Sorted is an ordered K->V mapping with a total order supplied by a
// comparator.
//
// Reads (cursors, lookups) take a shared lock; writes take an exclusive
// lock and fire the update gate. A cursor holds a non-owning reference to
// its Sorted; the cursor must not outlive it.
type Sorted[K, V any] struct {
	mu      sync.RWMutex
	keys    []K
	vals    []V
	cmp     compare.Comparer[K]
	g       *gate.ManualGate
	sealed  bool
	version uint64
}

var _ cursor.Source[int, int] = (*Sorted[int, int])(nil)

// New creates an empty series ordered by the natural order of K.
func New[K cmp.Ordered, V any]() *Sorted[K, V] {
	return NewWithComparer[K, V](compare.Natural[K]())
}

// NewWithComparer creates an empty series ordered by c.
func NewWithComparer[K, V any](c compare.Comparer[K]) *Sorted[K, V] {
	return &Sorted[K, V]{
		cmp: c,
		g:   gate.NewManualGate(),
	}
}

// lowerBound returns the first index whose key is >= k. Caller holds a lock.
func (s *Sorted[K, V]) lowerBound(k K) int {
	return sort.Search(len(s.keys), func(i int) bool {
		return s.cmp.Compare(s.keys[i], k) >= 0
	})
}

// upperBound returns the first index whose key is > k. Caller holds a lock.
func (s *Sorted[K, V]) upperBound(k K) int {
	return sort.Search(len(s.keys), func(i int) bool {
		return s.cmp.Compare(s.keys[i], k) > 0
	})
}

// find returns the index of k and whether it is present. Caller holds a lock.
func (s *Sorted[K, V]) find(k K) (int, bool) {
	i := s.lowerBound(k)
	if i < len(s.keys) && s.cmp.Compare(s.keys[i], k) == 0 {
		return i, true
	}

	return i, false
}

// Len returns the number of stored pairs.
func (s *Sorted[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.keys)
}

// Get performs a point lookup.
func (s *Sorted[K, V]) Get(k K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i, ok := s.find(k); ok {
		return s.vals[i], true
	}

	var zero V

	return zero, false
}

// MustGet is the indexer accessor: it panics with ErrKeyNotFound when the
// key is absent. Use Get for the try-variant.
func (s *Sorted[K, V]) MustGet(k K) V {
	v, ok := s.Get(k)
	if !ok {
		panic(fmt.Errorf("series: %w", errs.ErrKeyNotFound))
	}

	return v
}

// At returns the pair at positional index i, or false if i is out of range.
func (s *Sorted[K, V]) At(i int) (cursor.Pair[K, V], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i < 0 || i >= len(s.keys) {
		return cursor.Pair[K, V]{}, false
	}

	return cursor.Pair[K, V]{Key: s.keys[i], Value: s.vals[i]}, true
}

// First returns the minimum pair.
func (s *Sorted[K, V]) First() (cursor.Pair[K, V], bool) {
	return s.At(0)
}

// Last returns the maximum pair.
func (s *Sorted[K, V]) Last() (cursor.Pair[K, V], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.keys)
	if n == 0 {
		return cursor.Pair[K, V]{}, false
	}

	return cursor.Pair[K, V]{Key: s.keys[n-1], Value: s.vals[n-1]}, true
}

// Append adds a pair whose key sorts strictly after the current maximum.
// This is the fast path for live time-series ingestion: it never shifts
// existing elements, so open cursors keep their positions.
func (s *Sorted[K, V]) Append(k K, v V) error {
	s.mu.Lock()
	if s.sealed {
		s.mu.Unlock()
		return errs.ErrReadOnlySeries
	}
	if n := len(s.keys); n > 0 && s.cmp.Compare(k, s.keys[n-1]) <= 0 {
		s.mu.Unlock()
		return fmt.Errorf("series: %w", errs.ErrOutOfOrderKey)
	}

	s.keys = append(s.keys, k)
	s.vals = append(s.vals, v)
	s.g.Set()
	s.mu.Unlock()

	return nil
}

// Set inserts a pair at its ordered position, or replaces the value of an
// existing key. Out-of-order inserts shift positions, which open cursors
// absorb by re-seeking their current key.
func (s *Sorted[K, V]) Set(k K, v V) error {
	s.mu.Lock()
	if s.sealed {
		s.mu.Unlock()
		return errs.ErrReadOnlySeries
	}

	i, ok := s.find(k)
	if ok {
		s.vals[i] = v
	} else {
		s.keys = append(s.keys, k)
		copy(s.keys[i+1:], s.keys[i:])
		s.keys[i] = k

		s.vals = append(s.vals, v)
		copy(s.vals[i+1:], s.vals[i:])
		s.vals[i] = v

		if i != len(s.keys)-1 {
			s.version++
		}
	}
	s.g.Set()
	s.mu.Unlock()

	return nil
}

// Seal marks the series readonly. No further writes are accepted and the
// update gate completes false for current and future waiters.
func (s *Sorted[K, V]) Seal() {
	s.mu.Lock()
	s.sealed = true
	s.g.Seal()
	s.mu.Unlock()
}

// IsReadOnly reports whether the series has been sealed.
func (s *Sorted[K, V]) IsReadOnly() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sealed
}

// IsIndexed reports false: positions in a Sorted are dense.
func (s *Sorted[K, V]) IsIndexed() bool { return false }

// Comparer returns the series' key order.
func (s *Sorted[K, V]) Comparer() compare.Comparer[K] { return s.cmp }

// Updated returns a token that completes true on the next write and false
// once the series is sealed. A token consumed by a previous wake is
// replaced with a fresh one.
func (s *Sorted[K, V]) Updated() *gate.Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.g.Reset()

	return s.g.Wait()
}

// Cursor yields a fresh cursor positioned before the first element.
func (s *Sorted[K, V]) Cursor() cursor.Cursor[K, V] {
	return s.NewCursor()
}

// NewCursor is Cursor without the interface boxing, for callers composing
// concrete pipelines.
func (s *Sorted[K, V]) NewCursor() *Cursor[K, V] {
	return &Cursor[K, V]{src: s}
}
