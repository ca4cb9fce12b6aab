package cursor

import (
	"github.com/cursive-io/cursive/compare"
	"github.com/cursive-io/cursive/gate"
)

// Map projects an inner cursor's values through a pure function while
// mirroring its keys and movement verbatim.
//
// The transform is applied lazily on each CurrentValue access, with a
// per-position cache so repeated reads of the same position do not
// re-evaluate it. Map is a value type parametric in its inner cursor type;
// composing maps nests the types rather than building a heap tree.
type Map[K, VIn, VOut any, C Cursor[K, VIn]] struct {
	inner C
	fn    func(K, VIn) VOut

	cached   bool
	cacheVal VOut
}

// NewMap wraps inner with the projection fn.
func NewMap[K, VIn, VOut any, C Cursor[K, VIn]](inner C, fn func(K, VIn) VOut) *Map[K, VIn, VOut, C] {
	return &Map[K, VIn, VOut, C]{inner: inner, fn: fn}
}

func (m *Map[K, VIn, VOut, C]) moved(ok bool) bool {
	m.cached = false
	return ok
}

func (m *Map[K, VIn, VOut, C]) MoveFirst() bool    { return m.moved(m.inner.MoveFirst()) }
func (m *Map[K, VIn, VOut, C]) MoveLast() bool     { return m.moved(m.inner.MoveLast()) }
func (m *Map[K, VIn, VOut, C]) MoveNext() bool     { return m.moved(m.inner.MoveNext()) }
func (m *Map[K, VIn, VOut, C]) MovePrevious() bool { return m.moved(m.inner.MovePrevious()) }

func (m *Map[K, VIn, VOut, C]) MoveAt(key K, dir Lookup) bool {
	return m.moved(m.inner.MoveAt(key, dir))
}

// MoveNextBatch refuses batching; the projected values would have to be
// materialized eagerly, defeating the lazy contract.
func (m *Map[K, VIn, VOut, C]) MoveNextBatch() (Segment[K, VOut], bool) {
	return Segment[K, VOut]{}, false
}

func (m *Map[K, VIn, VOut, C]) CurrentKey() K { return m.inner.CurrentKey() }

func (m *Map[K, VIn, VOut, C]) CurrentValue() VOut {
	if !m.cached {
		m.cacheVal = m.fn(m.inner.CurrentKey(), m.inner.CurrentValue())
		m.cached = true
	}

	return m.cacheVal
}

func (m *Map[K, VIn, VOut, C]) TryGetValue(key K) (VOut, bool) {
	v, ok := m.inner.TryGetValue(key)
	if !ok {
		var zero VOut
		return zero, false
	}

	return m.fn(key, v), true
}

func (m *Map[K, VIn, VOut, C]) Comparer() compare.Comparer[K] { return m.inner.Comparer() }
func (m *Map[K, VIn, VOut, C]) IsContinuous() bool            { return m.inner.IsContinuous() }
func (m *Map[K, VIn, VOut, C]) IsReadOnly() bool              { return m.inner.IsReadOnly() }
func (m *Map[K, VIn, VOut, C]) Updated() *gate.Token          { return m.inner.Updated() }
func (m *Map[K, VIn, VOut, C]) State() State                  { return m.inner.State() }

func (m *Map[K, VIn, VOut, C]) Clone() Cursor[K, VOut] {
	inner, ok := m.inner.Clone().(C)
	if !ok {
		panic("map: inner clone did not preserve its concrete type")
	}

	return &Map[K, VIn, VOut, C]{inner: inner, fn: m.fn}
}

func (m *Map[K, VIn, VOut, C]) Close() error {
	return m.inner.Close()
}
