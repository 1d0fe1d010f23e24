package cover

import (
	"fmt"

	"github.com/katalvlaran/polycube/bitmatrix"
)

// Box is a rectangular box of unit cells, W (x) x H (y) x D (z).
type Box struct {
	W, H, D int
}

// Validate checks that every dimension is at least 1.
func (b Box) Validate() error {
	if b.W < 1 || b.H < 1 || b.D < 1 {
		return ErrInvalidBox
	}

	return nil
}

// Cells returns the total number of unit cells in the box.
func (b Box) Cells() int {
	return b.W * b.H * b.D
}

// Matrix is a bit matrix together with the column-name and per-column
// popcount vectors the specification carries alongside it: Hdr[j-1] names
// column j, and Count[j-1] must always equal the number of 1 bits in
// column j of Bits.
type Matrix struct {
	Bits  *bitmatrix.BitMatrix
	Hdr   []string
	Count []int
}

// cellName formats the opaque, informational header for box-cell column
// (x, y, z). It is never parsed back, and no header is looked up by name
// during solving: package solver tracks columns by position.
func cellName(x, y, z int) string {
	return fmt.Sprintf("%d,%d,%d", x, y, z)
}

// ColumnOf returns the 1-based column index for box cell (x, y, z),
// Z-major with X fastest-varying: 1 + z*H*W + y*W + x.
func ColumnOf(box Box, x, y, z int) int {
	return 1 + z*box.H*box.W + y*box.W + x
}

// NewBoxMatrix allocates the initial matrix for a box: n = W*H*D box-cell
// columns (named by cellName, in Z-major / X-fastest order matching
// ColumnOf) and zero rows.
func NewBoxMatrix(box Box) (*Matrix, error) {
	if err := box.Validate(); err != nil {
		return nil, err
	}

	n := box.Cells()
	bits, err := bitmatrix.New(0, n)
	if err != nil {
		return nil, err
	}

	hdr := make([]string, n)
	for z := 0; z < box.D; z++ {
		for y := 0; y < box.H; y++ {
			for x := 0; x < box.W; x++ {
				hdr[ColumnOf(box, x, y, z)-1] = cellName(x, y, z)
			}
		}
	}

	return &Matrix{Bits: bits, Hdr: hdr, Count: make([]int, n)}, nil
}

// Clone returns a fully independent deep copy.
func (m *Matrix) Clone() *Matrix {
	hdr := make([]string, len(m.Hdr))
	copy(hdr, m.Hdr)
	count := make([]int, len(m.Count))
	copy(count, m.Count)

	return &Matrix{Bits: m.Bits.Clone(), Hdr: hdr, Count: count}
}
