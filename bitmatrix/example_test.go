package bitmatrix_test

import (
	"fmt"

	"github.com/katalvlaran/polycube/bitmatrix"
)

// Example demonstrates the basic create/set/insert-column workflow.
func Example() {
	m, err := bitmatrix.New(2, 3)
	if err != nil {
		panic(err)
	}
	_ = m.Set(1, 1, 1)
	_ = m.Set(2, 3, 1)

	// Insert a fresh zero column at position 2; column 3 becomes column 4.
	_ = m.InsertCol(2)

	v, _ := m.Get(2, 4)
	fmt.Println(v)
	// Output: 1
}
