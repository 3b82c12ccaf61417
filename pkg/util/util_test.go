package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Option_01(t *testing.T) {
	some, none := Some(3), None[int]()
	//
	require.True(t, some.HasValue())
	require.True(t, none.IsEmpty())
	require.Equal(t, 3, some.Unwrap())
	require.Equal(t, 7, none.UnwrapOr(7))
	require.Equal(t, "Some(3)", some.String())
	require.Equal(t, "None", none.String())
	require.Equal(t, Some("3"), MapOption(some, func(i int) string { return "3" }))
	require.NotNil(t, CatchUnrecoverable(func() { none.Unwrap() }))
}

func Test_Union_01(t *testing.T) {
	var (
		lhs = Union1[int, string](1)
		rhs = Union2[int, string]("one")
		eqi = func(l, r int) bool { return l == r }
		eqs = func(l, r string) bool { return l == r }
	)
	//
	require.True(t, lhs.HasFirst())
	require.True(t, rhs.HasSecond())
	require.Equal(t, "one", rhs.Second())
	require.True(t, EqualUnions(lhs, Union1[int, string](1), eqi, eqs))
	require.False(t, EqualUnions(lhs, rhs, eqi, eqs))
	// Taking the wrong side
	require.NotNil(t, CatchUnrecoverable(func() { lhs.Second() }))
}

func Test_Pair_01(t *testing.T) {
	p := NewPair(1, "a")
	l, r := p.Unpack()
	//
	require.Equal(t, 1, l)
	require.Equal(t, "a", r)
	require.Equal(t, "(1,a)", p.String())
}

func Test_Unrecoverable_01(t *testing.T) {
	err := CatchUnrecoverable(func() { Unrecoverable("bad cursor %d", 4) })
	require.NotNil(t, err)
	require.Equal(t, "bad cursor 4", err.Error())
	require.Nil(t, CatchUnrecoverable(func() {}))
	// Other panics propagate
	require.Panics(t, func() { CatchUnrecoverable(func() { panic("other") }) })
}

func Test_TablePrinter_01(t *testing.T) {
	table := NewTablePrinter(2, 2)
	table.SetRow(0, "name", "n")
	table.SetRow(1, "random", "1000")
	//
	require.Equal(t, []string{"   name |    n |", " random | 1000 |"}, table.Lines())
	//
	table.SetMaxWidth(3)
	require.Equal(t, []string{" nam |   n |", " ran | 100 |"}, table.Lines())
	require.NotNil(t, CatchUnrecoverable(func() { table.SetRow(0, "x") }))
}

func Test_GenerateRandomInputs_01(t *testing.T) {
	items := GenerateRandomInputs(100, 8)
	require.Len(t, items, 100)
	//
	for _, item := range items {
		require.Less(t, item, uint(8))
	}
}
