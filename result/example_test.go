package result_test

import (
	"fmt"
	"strconv"

	"github.com/charmingruby/lazyiter/result"
)

func ExampleSequence() {
	parsed := []result.Result[int]{
		result.FromTuple(strconv.Atoi("1")),
		result.FromTuple(strconv.Atoi("x")),
	}
	res := result.Sequence(parsed)
	if res.IsErr() {
		fmt.Println(res.Err())
	}
	// Output:
	// strconv.Atoi: parsing "x": invalid syntax
}
