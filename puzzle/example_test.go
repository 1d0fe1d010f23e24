package puzzle_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/polycube/cover"
	"github.com/katalvlaran/polycube/puzzle"
)

func Example() {
	p := puzzle.Problem{
		Box:    cover.Box{W: 2, H: 1, D: 1},
		Pieces: []string{"1_", "1_"},
	}

	count := 0
	err := puzzle.Solve(context.Background(), p, func(*puzzle.Solution) {
		count++
	})
	if err != nil {
		panic(err)
	}

	fmt.Println(count)
	// Output: 2
}
