package tuplejoin_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/tuplekit/tuplejoin"
	"github.com/tuplekit/tuplejoin/tuple"
)

func TestPush(t *testing.T) {
	got := tuplejoin.Push_3(tuple.New3(1, 2, 3), "hello")
	qt.Assert(t, qt.Equals(got, tuple.New4(1, 2, 3, "hello")))
}

func TestPop(t *testing.T) {
	rest, last := tuplejoin.Pop_2(tuple.New3("ferris", "the", "rustacean"))
	qt.Assert(t, qt.Equals(rest, tuple.New2("ferris", "the")))
	qt.Assert(t, qt.Equals(last, "rustacean"))
}

func TestPushEmpty(t *testing.T) {
	got := tuplejoin.Push_0(tuple.New0(), "only")
	qt.Assert(t, qt.Equals(got, tuple.New1("only")))
}

func TestPopPushInverse(t *testing.T) {
	r0, e0 := tuplejoin.Pop_0(tuplejoin.Push_0(tuple.New0(), "only"))
	qt.Assert(t, qt.Equals(r0, tuple.New0()))
	qt.Assert(t, qt.Equals(e0, "only"))

	t2 := tuple.New2(1, 2)
	r2, e2 := tuplejoin.Pop_2(tuplejoin.Push_2(t2, "three"))
	qt.Assert(t, qt.Equals(r2, t2))
	qt.Assert(t, qt.Equals(e2, "three"))

	t5 := tuple.New5("a", "b", "c", "d", "e")
	r5, e5 := tuplejoin.Pop_5(tuplejoin.Push_5(t5, 6))
	qt.Assert(t, qt.Equals(r5, t5))
	qt.Assert(t, qt.Equals(e5, 6))
}

func TestPushMaxArity(t *testing.T) {
	t13 := tuple.New13(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13)
	got := tuplejoin.Push_13(t13, "last")
	qt.Assert(t, qt.Equals(got, tuple.New14(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, "last")))

	rest, last := tuplejoin.Pop_13(got)
	qt.Assert(t, qt.Equals(rest, t13))
	qt.Assert(t, qt.Equals(last, "last"))
}
