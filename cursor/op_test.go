package cursor_test

import (
	"testing"

	"github.com/cursive-io/cursive/cursor"
	"github.com/stretchr/testify/require"
)

func collectValues[K, V any](t *testing.T, c cursor.Cursor[K, V]) []V {
	t.Helper()

	var out []V
	for c.MoveNext() {
		out = append(out, c.CurrentValue())
	}

	return out
}

func TestOp_Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		want []int64
		wrap func(c cursor.Cursor[int64, int64]) cursor.Cursor[int64, int64]
	}{
		{
			"add", []int64{15, 25},
			func(c cursor.Cursor[int64, int64]) cursor.Cursor[int64, int64] {
				return cursor.NewOp[int64, int64, cursor.AddOp[int64], cursor.Cursor[int64, int64]](c, cursor.AddOp[int64]{}, 5)
			},
		},
		{
			"sub", []int64{7, 17},
			func(c cursor.Cursor[int64, int64]) cursor.Cursor[int64, int64] {
				return cursor.NewOp[int64, int64, cursor.SubOp[int64], cursor.Cursor[int64, int64]](c, cursor.SubOp[int64]{}, 3)
			},
		},
		{
			"rsub", []int64{90, 80},
			func(c cursor.Cursor[int64, int64]) cursor.Cursor[int64, int64] {
				return cursor.NewOp[int64, int64, cursor.SubRevOp[int64], cursor.Cursor[int64, int64]](c, cursor.SubRevOp[int64]{}, 100)
			},
		},
		{
			"mul", []int64{30, 60},
			func(c cursor.Cursor[int64, int64]) cursor.Cursor[int64, int64] {
				return cursor.NewOp[int64, int64, cursor.MulOp[int64], cursor.Cursor[int64, int64]](c, cursor.MulOp[int64]{}, 3)
			},
		},
		{
			"div", []int64{5, 10},
			func(c cursor.Cursor[int64, int64]) cursor.Cursor[int64, int64] {
				return cursor.NewOp[int64, int64, cursor.DivOp[int64], cursor.Cursor[int64, int64]](c, cursor.DivOp[int64]{}, 2)
			},
		},
		{
			"rdiv", []int64{10, 5},
			func(c cursor.Cursor[int64, int64]) cursor.Cursor[int64, int64] {
				return cursor.NewOp[int64, int64, cursor.DivRevOp[int64], cursor.Cursor[int64, int64]](c, cursor.DivRevOp[int64]{}, 100)
			},
		},
		{
			"mod", []int64{1, 2},
			func(c cursor.Cursor[int64, int64]) cursor.Cursor[int64, int64] {
				return cursor.NewOp[int64, int64, cursor.ModOp[int64], cursor.Cursor[int64, int64]](c, cursor.ModOp[int64]{}, 3)
			},
		},
		{
			"rmod", []int64{3, 13},
			func(c cursor.Cursor[int64, int64]) cursor.Cursor[int64, int64] {
				return cursor.NewOp[int64, int64, cursor.ModRevOp[int64], cursor.Cursor[int64, int64]](c, cursor.ModRevOp[int64]{}, 13)
			},
		},
		{
			"negate", []int64{-10, -20},
			func(c cursor.Cursor[int64, int64]) cursor.Cursor[int64, int64] {
				return cursor.NewOp[int64, int64, cursor.NegOp[int64], cursor.Cursor[int64, int64]](c, cursor.NegOp[int64]{}, 0)
			},
		},
		{
			"plus", []int64{10, 20},
			func(c cursor.Cursor[int64, int64]) cursor.Cursor[int64, int64] {
				return cursor.NewOp[int64, int64, cursor.PlusOp[int64], cursor.Cursor[int64, int64]](c, cursor.PlusOp[int64]{}, 0)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := intSeries(t, [2]int64{1, 10}, [2]int64{2, 20})
			require.Equal(t, tt.want, collectValues(t, tt.wrap(s.Cursor())))
		})
	}
}

func TestOp_TryGetValue(t *testing.T) {
	s := intSeries(t, [2]int64{1, 10})
	op := cursor.NewOp[int64, int64, cursor.AddOp[int64], cursor.Cursor[int64, int64]](s.Cursor(), cursor.AddOp[int64]{}, 7)

	v, ok := op.TryGetValue(1)
	require.True(t, ok)
	require.Equal(t, int64(17), v)

	_, ok = op.TryGetValue(2)
	require.False(t, ok)
}

func TestComparison_Predicates(t *testing.T) {
	tests := []struct {
		name string
		want []bool
		wrap func(c cursor.Cursor[int64, int64]) cursor.Cursor[int64, bool]
	}{
		{
			"eq", []bool{false, true, false},
			func(c cursor.Cursor[int64, int64]) cursor.Cursor[int64, bool] {
				return cursor.NewComparison[int64, int64, cursor.EqPred[int64], cursor.Cursor[int64, int64]](c, cursor.EqPred[int64]{}, 20)
			},
		},
		{
			"ne", []bool{true, false, true},
			func(c cursor.Cursor[int64, int64]) cursor.Cursor[int64, bool] {
				return cursor.NewComparison[int64, int64, cursor.NePred[int64], cursor.Cursor[int64, int64]](c, cursor.NePred[int64]{}, 20)
			},
		},
		{
			"lt", []bool{true, false, false},
			func(c cursor.Cursor[int64, int64]) cursor.Cursor[int64, bool] {
				return cursor.NewComparison[int64, int64, cursor.LtPred[int64], cursor.Cursor[int64, int64]](c, cursor.LtPred[int64]{}, 20)
			},
		},
		{
			"lt reversed", []bool{false, false, true},
			func(c cursor.Cursor[int64, int64]) cursor.Cursor[int64, bool] {
				return cursor.NewComparison[int64, int64, cursor.LtRevPred[int64], cursor.Cursor[int64, int64]](c, cursor.LtRevPred[int64]{}, 20)
			},
		},
		{
			"le", []bool{true, true, false},
			func(c cursor.Cursor[int64, int64]) cursor.Cursor[int64, bool] {
				return cursor.NewComparison[int64, int64, cursor.LePred[int64], cursor.Cursor[int64, int64]](c, cursor.LePred[int64]{}, 20)
			},
		},
		{
			"ge", []bool{false, true, true},
			func(c cursor.Cursor[int64, int64]) cursor.Cursor[int64, bool] {
				return cursor.NewComparison[int64, int64, cursor.GePred[int64], cursor.Cursor[int64, int64]](c, cursor.GePred[int64]{}, 20)
			},
		},
		{
			"gt reversed", []bool{true, false, false},
			func(c cursor.Cursor[int64, int64]) cursor.Cursor[int64, bool] {
				return cursor.NewComparison[int64, int64, cursor.GtRevPred[int64], cursor.Cursor[int64, int64]](c, cursor.GtRevPred[int64]{}, 20)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := intSeries(t, [2]int64{1, 10}, [2]int64{2, 20}, [2]int64{3, 30})
			require.Equal(t, tt.want, collectValues(t, tt.wrap(s.Cursor())))
		})
	}
}

func TestComparison_KeysMirrorInner(t *testing.T) {
	s := intSeries(t, [2]int64{5, 1}, [2]int64{6, 2})
	c := cursor.NewComparison[int64, int64, cursor.GtPred[int64], cursor.Cursor[int64, int64]](s.Cursor(), cursor.GtPred[int64]{}, 1)

	require.True(t, c.MoveNext())
	require.Equal(t, int64(5), c.CurrentKey())
	require.False(t, c.CurrentValue())
	require.True(t, c.MoveNext())
	require.Equal(t, int64(6), c.CurrentKey())
	require.True(t, c.CurrentValue())
}
