package cursor

import (
	"github.com/cursive-io/cursive/compare"
	"github.com/cursive-io/cursive/gate"
)

// Numeric constraints for the scalar op and comparison combinators.
type (
	// Integer covers the built-in integer kinds.
	Integer interface {
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
			~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
	}

	// Float covers the built-in floating-point kinds.
	Float interface {
		~float32 | ~float64
	}

	// Number covers every kind the scalar ops operate on.
	Number interface {
		Integer | Float
	}
)

// ScalarOp is the capability a scalar operation combinator is parametrized
// over: a pure function of the element value and a fixed operand. The
// capability is a compile-time type parameter so a concrete pipeline
// monomorphizes the operation down to the primitive instruction.
type ScalarOp[V Number] interface {
	Apply(v, operand V) V
}

// Scalar operation capabilities. The Rev variants swap operand order, used
// when the scalar sits on the left of a non-commutative operation in
// source syntax.
type (
	AddOp[V Number] struct{}
	SubOp[V Number] struct{}
	// SubRevOp computes operand - v.
	SubRevOp[V Number] struct{}
	MulOp[V Number]    struct{}
	DivOp[V Number]    struct{}
	// DivRevOp computes operand / v.
	DivRevOp[V Number] struct{}
	ModOp[V Integer]   struct{}
	// ModRevOp computes operand % v.
	ModRevOp[V Integer] struct{}
	// NegOp negates the value; the operand is ignored.
	NegOp[V Number] struct{}
	// PlusOp passes the value through unchanged; the operand is ignored.
	PlusOp[V Number] struct{}
)

func (AddOp[V]) Apply(v, operand V) V    { return v + operand }
func (SubOp[V]) Apply(v, operand V) V    { return v - operand }
func (SubRevOp[V]) Apply(v, operand V) V { return operand - v }
func (MulOp[V]) Apply(v, operand V) V    { return v * operand }
func (DivOp[V]) Apply(v, operand V) V    { return v / operand }
func (DivRevOp[V]) Apply(v, operand V) V { return operand / v }
func (ModOp[V]) Apply(v, operand V) V    { return v % operand }
func (ModRevOp[V]) Apply(v, operand V) V { return operand % v }
func (NegOp[V]) Apply(v, _ V) V          { return -v }
func (PlusOp[V]) Apply(v, _ V) V         { return v }

// Op applies a scalar operation to every value of an inner cursor. It is
// the specialization of Map whose transform is a recognized scalar
// operation carried as a zero-size capability type.
type Op[K any, V Number, O ScalarOp[V], C Cursor[K, V]] struct {
	inner   C
	op      O
	operand V
}

// NewOp wraps inner so each value v becomes op.Apply(v, operand).
func NewOp[K any, V Number, O ScalarOp[V], C Cursor[K, V]](inner C, op O, operand V) *Op[K, V, O, C] {
	return &Op[K, V, O, C]{inner: inner, op: op, operand: operand}
}

func (o *Op[K, V, O, C]) MoveFirst() bool    { return o.inner.MoveFirst() }
func (o *Op[K, V, O, C]) MoveLast() bool     { return o.inner.MoveLast() }
func (o *Op[K, V, O, C]) MoveNext() bool     { return o.inner.MoveNext() }
func (o *Op[K, V, O, C]) MovePrevious() bool { return o.inner.MovePrevious() }

func (o *Op[K, V, O, C]) MoveAt(key K, dir Lookup) bool { return o.inner.MoveAt(key, dir) }

func (o *Op[K, V, O, C]) MoveNextBatch() (Segment[K, V], bool) {
	return Segment[K, V]{}, false
}

func (o *Op[K, V, O, C]) CurrentKey() K { return o.inner.CurrentKey() }

func (o *Op[K, V, O, C]) CurrentValue() V {
	return o.op.Apply(o.inner.CurrentValue(), o.operand)
}

func (o *Op[K, V, O, C]) TryGetValue(key K) (V, bool) {
	v, ok := o.inner.TryGetValue(key)
	if !ok {
		var zero V
		return zero, false
	}

	return o.op.Apply(v, o.operand), true
}

func (o *Op[K, V, O, C]) Comparer() compare.Comparer[K] { return o.inner.Comparer() }
func (o *Op[K, V, O, C]) IsContinuous() bool            { return o.inner.IsContinuous() }
func (o *Op[K, V, O, C]) IsReadOnly() bool              { return o.inner.IsReadOnly() }
func (o *Op[K, V, O, C]) Updated() *gate.Token          { return o.inner.Updated() }
func (o *Op[K, V, O, C]) State() State                  { return o.inner.State() }

func (o *Op[K, V, O, C]) Clone() Cursor[K, V] {
	inner, ok := o.inner.Clone().(C)
	if !ok {
		panic("op: inner clone did not preserve its concrete type")
	}

	return &Op[K, V, O, C]{inner: inner, op: o.op, operand: o.operand}
}

func (o *Op[K, V, O, C]) Close() error { return o.inner.Close() }
