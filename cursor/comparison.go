package cursor

import (
	"github.com/cursive-io/cursive/compare"
	"github.com/cursive-io/cursive/gate"
)

// Predicate is the capability a comparison combinator is parametrized
// over: a pure boolean test of the element value against a fixed operand.
type Predicate[V Number] interface {
	Test(v, operand V) bool
}

// Comparison predicate capabilities. The Rev variants test with the
// operand on the left, for source syntax where the scalar leads a
// non-symmetric comparison.
type (
	EqPred[V Number] struct{}
	NePred[V Number] struct{}
	LtPred[V Number] struct{}
	// LtRevPred tests operand < v.
	LtRevPred[V Number] struct{}
	GtPred[V Number]    struct{}
	// GtRevPred tests operand > v.
	GtRevPred[V Number] struct{}
	LePred[V Number]    struct{}
	// LeRevPred tests operand <= v.
	LeRevPred[V Number] struct{}
	GePred[V Number]    struct{}
	// GeRevPred tests operand >= v.
	GeRevPred[V Number] struct{}
)

func (EqPred[V]) Test(v, operand V) bool    { return v == operand }
func (NePred[V]) Test(v, operand V) bool    { return v != operand }
func (LtPred[V]) Test(v, operand V) bool    { return v < operand }
func (LtRevPred[V]) Test(v, operand V) bool { return operand < v }
func (GtPred[V]) Test(v, operand V) bool    { return v > operand }
func (GtRevPred[V]) Test(v, operand V) bool { return operand > v }
func (LePred[V]) Test(v, operand V) bool    { return v <= operand }
func (LeRevPred[V]) Test(v, operand V) bool { return operand <= v }
func (GePred[V]) Test(v, operand V) bool    { return v >= operand }
func (GeRevPred[V]) Test(v, operand V) bool { return operand >= v }

// Comparison yields the boolean result of testing every value of an inner
// cursor against a fixed operand. Like Op, the predicate is a compile-time
// capability so the test inlines.
type Comparison[K any, V Number, P Predicate[V], C Cursor[K, V]] struct {
	inner   C
	pred    P
	operand V
}

var _ Cursor[int, bool] = (*Comparison[int, int, EqPred[int], Cursor[int, int]])(nil)

// NewComparison wraps inner so each value v becomes pred.Test(v, operand).
func NewComparison[K any, V Number, P Predicate[V], C Cursor[K, V]](inner C, pred P, operand V) *Comparison[K, V, P, C] {
	return &Comparison[K, V, P, C]{inner: inner, pred: pred, operand: operand}
}

func (c *Comparison[K, V, P, C]) MoveFirst() bool    { return c.inner.MoveFirst() }
func (c *Comparison[K, V, P, C]) MoveLast() bool     { return c.inner.MoveLast() }
func (c *Comparison[K, V, P, C]) MoveNext() bool     { return c.inner.MoveNext() }
func (c *Comparison[K, V, P, C]) MovePrevious() bool { return c.inner.MovePrevious() }

func (c *Comparison[K, V, P, C]) MoveAt(key K, dir Lookup) bool { return c.inner.MoveAt(key, dir) }

func (c *Comparison[K, V, P, C]) MoveNextBatch() (Segment[K, bool], bool) {
	return Segment[K, bool]{}, false
}

func (c *Comparison[K, V, P, C]) CurrentKey() K { return c.inner.CurrentKey() }

func (c *Comparison[K, V, P, C]) CurrentValue() bool {
	return c.pred.Test(c.inner.CurrentValue(), c.operand)
}

func (c *Comparison[K, V, P, C]) TryGetValue(key K) (bool, bool) {
	v, ok := c.inner.TryGetValue(key)
	if !ok {
		return false, false
	}

	return c.pred.Test(v, c.operand), true
}

func (c *Comparison[K, V, P, C]) Comparer() compare.Comparer[K] { return c.inner.Comparer() }
func (c *Comparison[K, V, P, C]) IsContinuous() bool            { return c.inner.IsContinuous() }
func (c *Comparison[K, V, P, C]) IsReadOnly() bool              { return c.inner.IsReadOnly() }
func (c *Comparison[K, V, P, C]) Updated() *gate.Token          { return c.inner.Updated() }
func (c *Comparison[K, V, P, C]) State() State                  { return c.inner.State() }

func (c *Comparison[K, V, P, C]) Clone() Cursor[K, bool] {
	inner, ok := c.inner.Clone().(C)
	if !ok {
		panic("comparison: inner clone did not preserve its concrete type")
	}

	return &Comparison[K, V, P, C]{inner: inner, pred: c.pred, operand: c.operand}
}

func (c *Comparison[K, V, P, C]) Close() error { return c.inner.Close() }
