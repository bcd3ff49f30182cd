package tuple_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/tuplekit/tuplejoin/tuple"
)

func TestNew(t *testing.T) {
	c := qt.New(t)
	p := tuple.New2(1, "two")
	c.Assert(p.A, qt.Equals, 1)
	c.Assert(p.B, qt.Equals, "two")
}

func TestEmpty(t *testing.T) {
	c := qt.New(t)
	c.Assert(tuple.New0(), qt.Equals, tuple.T0{})
}

func TestUnpack(t *testing.T) {
	c := qt.New(t)
	a, b, d := tuple.New3("x", 2, true).Unpack()
	c.Assert(a, qt.Equals, "x")
	c.Assert(b, qt.Equals, 2)
	c.Assert(d, qt.IsTrue)
}

func TestUnpackSingle(t *testing.T) {
	c := qt.New(t)
	c.Assert(tuple.New1("lone").Unpack(), qt.Equals, "lone")
}

func TestComparable(t *testing.T) {
	c := qt.New(t)
	c.Assert(tuple.New2(1, "a") == tuple.New2(1, "a"), qt.IsTrue)
	c.Assert(tuple.New2(1, "a") == tuple.New2(2, "a"), qt.IsFalse)
	c.Assert(tuple.New2(1, "a") == tuple.New2(1, "b"), qt.IsFalse)
}
