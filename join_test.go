package tuplejoin_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/tuplekit/tuplejoin"
	"github.com/tuplekit/tuplejoin/tuple"
)

func TestJoin(t *testing.T) {
	got := tuplejoin.Join_2_4(tuple.New2(1, 2), tuple.New4(3, 4, 5, 6))
	qt.Assert(t, qt.Equals(got, tuple.New6(1, 2, 3, 4, 5, 6)))
}

func TestSplit(t *testing.T) {
	left, right := tuplejoin.Split_2_4(tuple.New6(1, 2, 3, 4, 5, 6))
	qt.Assert(t, qt.Equals(left, tuple.New2(1, 2)))
	qt.Assert(t, qt.Equals(right, tuple.New4(3, 4, 5, 6)))
}

func TestJoinEmptyLeft(t *testing.T) {
	got := tuplejoin.Join_0_2(tuple.New0(), tuple.New2(1, 2))
	qt.Assert(t, qt.Equals(got, tuple.New2(1, 2)))
}

func TestJoinEmptyRight(t *testing.T) {
	got := tuplejoin.Join_2_0(tuple.New2(1, 2), tuple.New0())
	qt.Assert(t, qt.Equals(got, tuple.New2(1, 2)))
}

func TestJoinBothEmpty(t *testing.T) {
	got := tuplejoin.Join_0_0(tuple.New0(), tuple.New0())
	qt.Assert(t, qt.Equals(got, tuple.New0()))
}

func TestSplitAgainstEmptySide(t *testing.T) {
	l0, r0 := tuplejoin.Split_0_3(tuple.New3(1, 2, 3))
	qt.Assert(t, qt.Equals(l0, tuple.New0()))
	qt.Assert(t, qt.Equals(r0, tuple.New3(1, 2, 3)))

	l1, r1 := tuplejoin.Split_3_0(tuple.New3(1, 2, 3))
	qt.Assert(t, qt.Equals(l1, tuple.New3(1, 2, 3)))
	qt.Assert(t, qt.Equals(r1, tuple.New0()))
}

func TestSplitJoinInverse(t *testing.T) {
	l1 := tuple.New1(42)
	r1 := tuple.New1("x")
	gl1, gr1 := tuplejoin.Split_1_1(tuplejoin.Join_1_1(l1, r1))
	qt.Assert(t, qt.Equals(gl1, l1))
	qt.Assert(t, qt.Equals(gr1, r1))

	l2 := tuple.New2("a", "b")
	r3 := tuple.New3(1, 2, 3)
	gl2, gr3 := tuplejoin.Split_2_3(tuplejoin.Join_2_3(l2, r3))
	qt.Assert(t, qt.Equals(gl2, l2))
	qt.Assert(t, qt.Equals(gr3, r3))

	l5 := tuple.New5(1.5, 2.5, 3.5, 4.5, 5.5)
	r4 := tuple.New4("p", "q", "r", "s")
	gl5, gr4 := tuplejoin.Split_5_4(tuplejoin.Join_5_4(l5, r4))
	qt.Assert(t, qt.Equals(gl5, l5))
	qt.Assert(t, qt.Equals(gr4, r4))
}

func TestJoinSplitRoundTrip(t *testing.T) {
	// Every partition of the same 6-tuple must round trip.
	t6 := tuple.New6(1, 2, 3, 4, 5, 6)
	qt.Assert(t, qt.Equals(tuplejoin.Join_0_6(tuplejoin.Split_0_6(t6)), t6))
	qt.Assert(t, qt.Equals(tuplejoin.Join_1_5(tuplejoin.Split_1_5(t6)), t6))
	qt.Assert(t, qt.Equals(tuplejoin.Join_2_4(tuplejoin.Split_2_4(t6)), t6))
	qt.Assert(t, qt.Equals(tuplejoin.Join_3_3(tuplejoin.Split_3_3(t6)), t6))
	qt.Assert(t, qt.Equals(tuplejoin.Join_4_2(tuplejoin.Split_4_2(t6)), t6))
	qt.Assert(t, qt.Equals(tuplejoin.Join_5_1(tuplejoin.Split_5_1(t6)), t6))
	qt.Assert(t, qt.Equals(tuplejoin.Join_6_0(tuplejoin.Split_6_0(t6)), t6))
}

func TestJoinMixedTypes(t *testing.T) {
	type point struct{ x, y int }
	got := tuplejoin.Join_3_1(tuple.New3(1, "two", 3.0), tuple.New1(point{4, 5}))
	qt.Assert(t, qt.Equals(got, tuple.New4(1, "two", 3.0, point{4, 5})))
}

func TestJoinMaxArity(t *testing.T) {
	left := tuple.New13(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13)
	right := tuple.New13(14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26)
	got := tuplejoin.Join_13_13(left, right)
	want := tuple.New26(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26)
	qt.Assert(t, qt.Equals(got, want))

	gl, gr := tuplejoin.Split_13_13(got)
	qt.Assert(t, qt.Equals(gl, left))
	qt.Assert(t, qt.Equals(gr, right))
}
