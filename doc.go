// Package tuplejoin joins and splits tuples at the type level.
//
// A tuple.Tn value holds n values, each with its own type. For every
// pair of operand arities up to 13, Join_i_j concatenates an i-tuple
// and a j-tuple into an (i+j)-tuple, and Split_i_j is its exact
// inverse. Push_i and Pop_i add and remove a single trailing value.
//
//	joined := tuplejoin.Join_2_4(tuple.New2(1, 2), tuple.New4(3, 4, 5, 6))
//	left, right := tuplejoin.Split_2_4(joined)
//
//	pushed := tuplejoin.Push_3(tuple.New3(1, 2, 3), "hello")
//	rest, last := tuplejoin.Pop_2(tuple.New3("ferris", "the", "rustacean"))
//
// Element types never need to be written at call sites; they are
// inferred from the arguments. Only the arity pair is named, and it
// must be, because distinct partitions of the same tuple type are
// distinct relations. Asking for an arity pair outside the generated
// table is a compile error; there is no runtime failure surface.
//
// The per-arity definitions are generated by the tuplegen command.
// Both operands may independently reach arity 13, so joined tuples go
// up to tuple.T26.
package tuplejoin

//go:generate go run ./cmd/tuplegen
