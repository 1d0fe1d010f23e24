package piece_test

import (
	"fmt"

	"github.com/katalvlaran/polycube/piece"
)

// Example shows looking up a piece and reading its unrotated bounding box.
func Example() {
	p, err := piece.Lookup("L_")
	if err != nil {
		panic(err)
	}
	min, max := p.Bounds()
	fmt.Println(len(p.Cubes), min, max)
	// Output: 5 {0 0 0} {1 3 0}
}
