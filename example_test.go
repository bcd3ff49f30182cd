package tuplejoin_test

import (
	"fmt"

	"github.com/tuplekit/tuplejoin"
	"github.com/tuplekit/tuplejoin/tuple"
)

func Example_join_2_4() {
	joined := tuplejoin.Join_2_4(tuple.New2(1, 2), tuple.New4(3, 4, 5, 6))
	fmt.Println(joined.Unpack())
	// Output: 1 2 3 4 5 6
}

func Example_split_2_4() {
	left, right := tuplejoin.Split_2_4(tuple.New6(1, 2, 3, 4, 5, 6))
	fmt.Println(left.Unpack())
	fmt.Println(right.Unpack())
	// Output:
	// 1 2
	// 3 4 5 6
}

func Example_push_3() {
	pushed := tuplejoin.Push_3(tuple.New3(1, 2, 3), "hello")
	fmt.Println(pushed.Unpack())
	// Output: 1 2 3 hello
}

func Example_pop_2() {
	rest, last := tuplejoin.Pop_2(tuple.New3("ferris", "the", "rustacean"))
	fmt.Println(rest.Unpack())
	fmt.Println(last)
	// Output:
	// ferris the
	// rustacean
}
