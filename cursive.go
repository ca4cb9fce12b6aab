// Package cursive provides ordered time-series data as composable cursor
// pipelines over live series, plus a columnar codec for shipping runs of
// values as compressed frames.
//
// A series is an ordered K->V mapping; a cursor navigates it forward,
// backward, by key, and asynchronously (waiting for appends). Combinators
// wrap one or two cursors and are cursors themselves, so arithmetic,
// comparisons, projections and joins compose into pipelines whose shape
// is known at composition time.
//
// # Basic Usage
//
// Building a live series and summing it with another:
//
//	import "github.com/cursive-io/cursive"
//
//	a := series.New[int64, float64]()
//	b := series.New[int64, float64]()
//	_ = a.Append(1, 10)
//	_ = a.Append(2, 20)
//	_ = b.Append(2, 200)
//	_ = b.Append(3, 300)
//
//	sum := cursive.ZipWith(a.Cursor(), b.Cursor(), func(x, y float64) float64 {
//	    return x + y
//	})
//	for sum.MoveNext() {
//	    fmt.Println(sum.CurrentKey(), sum.CurrentValue()) // 2 220
//	}
//
// Waiting for data that has not arrived yet:
//
//	ok, err := cursive.Next(ctx, sum) // blocks until both series advance
//
// Shipping a column over the wire:
//
//	buf := make([]byte, frame.Bound(len(vals), 8))
//	n, err := frame.Encode(buf, vals, frame.WithAlgorithm("lz4"))
//
// # Package Structure
//
// This package provides convenience wrappers over the cursor combinators
// for pipelines built from interface-typed cursors. For zero-indirection
// pipelines, compose the generic types in the cursor package directly;
// their type parameters preserve the pipeline shape and monomorphize the
// scalar operations.
package cursive

import (
	"context"

	"github.com/cursive-io/cursive/cursor"
)

// Next advances c asynchronously: it returns true when a next element is
// available, waits while any bound source is still mutable, and returns
// false only once the sources are sealed and drained.
func Next[K, V any](ctx context.Context, c cursor.Cursor[K, V]) (bool, error) {
	return cursor.NextCtx(ctx, c)
}

// Map projects every value of c through f, keeping keys and movement.
func Map[K, VIn, VOut any](c cursor.Cursor[K, VIn], f func(K, VIn) VOut) cursor.Cursor[K, VOut] {
	return cursor.NewMap[K, VIn, VOut, cursor.Cursor[K, VIn]](c, f)
}

// Zip pairs two cursors at the keys where both are defined.
func Zip[K, VL, VR any](l cursor.Cursor[K, VL], r cursor.Cursor[K, VR]) cursor.Cursor[K, cursor.Zipped[VL, VR]] {
	return cursor.NewZip[K, VL, VR, cursor.Cursor[K, VL], cursor.Cursor[K, VR]](l, r)
}

// ZipWith pairs two cursors and folds each pair through f.
func ZipWith[K, VL, VR, VOut any](l cursor.Cursor[K, VL], r cursor.Cursor[K, VR], f func(VL, VR) VOut) cursor.Cursor[K, VOut] {
	z := Zip(l, r)

	return Map(z, func(_ K, p cursor.Zipped[VL, VR]) VOut {
		return f(p.Left, p.Right)
	})
}

// Add yields v + x for every value v of c.
func Add[K any, V cursor.Number](c cursor.Cursor[K, V], x V) cursor.Cursor[K, V] {
	return cursor.NewOp[K, V, cursor.AddOp[V], cursor.Cursor[K, V]](c, cursor.AddOp[V]{}, x)
}

// Sub yields v - x.
func Sub[K any, V cursor.Number](c cursor.Cursor[K, V], x V) cursor.Cursor[K, V] {
	return cursor.NewOp[K, V, cursor.SubOp[V], cursor.Cursor[K, V]](c, cursor.SubOp[V]{}, x)
}

// RSub yields x - v, for the scalar-on-the-left spelling.
func RSub[K any, V cursor.Number](c cursor.Cursor[K, V], x V) cursor.Cursor[K, V] {
	return cursor.NewOp[K, V, cursor.SubRevOp[V], cursor.Cursor[K, V]](c, cursor.SubRevOp[V]{}, x)
}

// Mul yields v * x.
func Mul[K any, V cursor.Number](c cursor.Cursor[K, V], x V) cursor.Cursor[K, V] {
	return cursor.NewOp[K, V, cursor.MulOp[V], cursor.Cursor[K, V]](c, cursor.MulOp[V]{}, x)
}

// Div yields v / x.
func Div[K any, V cursor.Number](c cursor.Cursor[K, V], x V) cursor.Cursor[K, V] {
	return cursor.NewOp[K, V, cursor.DivOp[V], cursor.Cursor[K, V]](c, cursor.DivOp[V]{}, x)
}

// RDiv yields x / v.
func RDiv[K any, V cursor.Number](c cursor.Cursor[K, V], x V) cursor.Cursor[K, V] {
	return cursor.NewOp[K, V, cursor.DivRevOp[V], cursor.Cursor[K, V]](c, cursor.DivRevOp[V]{}, x)
}

// Mod yields v % x.
func Mod[K any, V cursor.Integer](c cursor.Cursor[K, V], x V) cursor.Cursor[K, V] {
	return cursor.NewOp[K, V, cursor.ModOp[V], cursor.Cursor[K, V]](c, cursor.ModOp[V]{}, x)
}

// RMod yields x % v.
func RMod[K any, V cursor.Integer](c cursor.Cursor[K, V], x V) cursor.Cursor[K, V] {
	return cursor.NewOp[K, V, cursor.ModRevOp[V], cursor.Cursor[K, V]](c, cursor.ModRevOp[V]{}, x)
}

// Negate yields -v.
func Negate[K any, V cursor.Number](c cursor.Cursor[K, V]) cursor.Cursor[K, V] {
	var zero V
	return cursor.NewOp[K, V, cursor.NegOp[V], cursor.Cursor[K, V]](c, cursor.NegOp[V]{}, zero)
}

// Plus yields v unchanged, the unary-plus identity.
func Plus[K any, V cursor.Number](c cursor.Cursor[K, V]) cursor.Cursor[K, V] {
	var zero V
	return cursor.NewOp[K, V, cursor.PlusOp[V], cursor.Cursor[K, V]](c, cursor.PlusOp[V]{}, zero)
}

// Eq yields v == x as a boolean series.
func Eq[K any, V cursor.Number](c cursor.Cursor[K, V], x V) cursor.Cursor[K, bool] {
	return cursor.NewComparison[K, V, cursor.EqPred[V], cursor.Cursor[K, V]](c, cursor.EqPred[V]{}, x)
}

// Ne yields v != x.
func Ne[K any, V cursor.Number](c cursor.Cursor[K, V], x V) cursor.Cursor[K, bool] {
	return cursor.NewComparison[K, V, cursor.NePred[V], cursor.Cursor[K, V]](c, cursor.NePred[V]{}, x)
}

// Lt yields v < x.
func Lt[K any, V cursor.Number](c cursor.Cursor[K, V], x V) cursor.Cursor[K, bool] {
	return cursor.NewComparison[K, V, cursor.LtPred[V], cursor.Cursor[K, V]](c, cursor.LtPred[V]{}, x)
}

// RLt yields x < v.
func RLt[K any, V cursor.Number](c cursor.Cursor[K, V], x V) cursor.Cursor[K, bool] {
	return cursor.NewComparison[K, V, cursor.LtRevPred[V], cursor.Cursor[K, V]](c, cursor.LtRevPred[V]{}, x)
}

// Gt yields v > x.
func Gt[K any, V cursor.Number](c cursor.Cursor[K, V], x V) cursor.Cursor[K, bool] {
	return cursor.NewComparison[K, V, cursor.GtPred[V], cursor.Cursor[K, V]](c, cursor.GtPred[V]{}, x)
}

// RGt yields x > v.
func RGt[K any, V cursor.Number](c cursor.Cursor[K, V], x V) cursor.Cursor[K, bool] {
	return cursor.NewComparison[K, V, cursor.GtRevPred[V], cursor.Cursor[K, V]](c, cursor.GtRevPred[V]{}, x)
}

// Le yields v <= x.
func Le[K any, V cursor.Number](c cursor.Cursor[K, V], x V) cursor.Cursor[K, bool] {
	return cursor.NewComparison[K, V, cursor.LePred[V], cursor.Cursor[K, V]](c, cursor.LePred[V]{}, x)
}

// RLe yields x <= v.
func RLe[K any, V cursor.Number](c cursor.Cursor[K, V], x V) cursor.Cursor[K, bool] {
	return cursor.NewComparison[K, V, cursor.LeRevPred[V], cursor.Cursor[K, V]](c, cursor.LeRevPred[V]{}, x)
}

// Ge yields v >= x.
func Ge[K any, V cursor.Number](c cursor.Cursor[K, V], x V) cursor.Cursor[K, bool] {
	return cursor.NewComparison[K, V, cursor.GePred[V], cursor.Cursor[K, V]](c, cursor.GePred[V]{}, x)
}

// RGe yields x >= v.
func RGe[K any, V cursor.Number](c cursor.Cursor[K, V], x V) cursor.Cursor[K, bool] {
	return cursor.NewComparison[K, V, cursor.GeRevPred[V], cursor.Cursor[K, V]](c, cursor.GeRevPred[V]{}, x)
}

// Collect drains c from the beginning and returns every pair it emits,
// stopping at the first provisional or terminal end.
func Collect[K, V any](c cursor.Cursor[K, V]) []cursor.Pair[K, V] {
	var out []cursor.Pair[K, V]
	if !c.MoveFirst() {
		return out
	}
	out = append(out, cursor.Pair[K, V]{Key: c.CurrentKey(), Value: c.CurrentValue()})
	for c.MoveNext() {
		out = append(out, cursor.Pair[K, V]{Key: c.CurrentKey(), Value: c.CurrentValue()})
	}

	return out
}
