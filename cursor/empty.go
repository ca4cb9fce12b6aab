package cursor

import (
	"github.com/cursive-io/cursive/compare"
	"github.com/cursive-io/cursive/gate"
)

// Empty is the always-empty cursor: it stores no elements, is continuous,
// and answers every point lookup with the zero value. It exists as the
// neutral element for operator definitions.
type Empty[K, V any] struct {
	cmp   compare.Comparer[K]
	state State
}

var _ Cursor[int, int] = (*Empty[int, int])(nil)

// NewEmpty returns an empty cursor ordered by cmp.
func NewEmpty[K, V any](cmp compare.Comparer[K]) *Empty[K, V] {
	return &Empty[K, V]{cmp: cmp}
}

func (e *Empty[K, V]) MoveFirst() bool    { return false }
func (e *Empty[K, V]) MoveLast() bool     { return false }
func (e *Empty[K, V]) MoveNext() bool     { return false }
func (e *Empty[K, V]) MovePrevious() bool { return false }

func (e *Empty[K, V]) MoveAt(key K, dir Lookup) bool { return false }

func (e *Empty[K, V]) MoveNextBatch() (Segment[K, V], bool) {
	return Segment[K, V]{}, false
}

func (e *Empty[K, V]) CurrentKey() K {
	var zero K
	return zero
}

func (e *Empty[K, V]) CurrentValue() V {
	var zero V
	return zero
}

// TryGetValue always succeeds with the zero value: the empty cursor is
// continuous over its whole key domain.
func (e *Empty[K, V]) TryGetValue(key K) (V, bool) {
	var zero V
	return zero, true
}

func (e *Empty[K, V]) Comparer() compare.Comparer[K] { return e.cmp }
func (e *Empty[K, V]) IsContinuous() bool            { return true }
func (e *Empty[K, V]) IsReadOnly() bool              { return true }
func (e *Empty[K, V]) Updated() *gate.Token          { return gate.CompletedToken(false) }
func (e *Empty[K, V]) State() State                  { return e.state }

func (e *Empty[K, V]) Clone() Cursor[K, V] {
	return &Empty[K, V]{cmp: e.cmp, state: e.state}
}

func (e *Empty[K, V]) Close() error {
	e.state = Disposed
	return nil
}
