package solver

import (
	"sort"

	"github.com/katalvlaran/polycube/bitmatrix"
	"github.com/katalvlaran/polycube/cover"
)

// Solve searches mat for every exact cover — every way to pick a subset of
// rows that covers each column exactly once — and invokes callback once per
// solution found, passing a *cover.Matrix whose Hdr matches mat's original
// Hdr and whose rows are the selected placements, in selection order.
//
// Column identity is tracked positionally rather than by header name, so
// Hdr entries need not be unique: adding the same piece to a box twice (two
// physical instances of one shape) produces two same-named piece columns,
// and Solve still keeps their coverage distinct.
//
// mat is read, never mutated; Solve clones internally before branching.
func Solve(mat *cover.Matrix, callback func(*cover.Matrix)) error {
	bits, err := bitmatrix.New(0, len(mat.Hdr))
	if err != nil {
		return err
	}
	hdr := make([]string, len(mat.Hdr))
	copy(hdr, mat.Hdr)
	sol := &cover.Matrix{Bits: bits, Hdr: hdr, Count: make([]int, len(mat.Hdr))}

	orig := make([]int, len(mat.Hdr))
	for i := range orig {
		orig[i] = i + 1
	}

	return solveRec(mat.Clone(), orig, sol, callback)
}

// solveRec performs one level of Algorithm X search. mat is this branch's
// remaining matrix (freely mutated here); orig[j-1] gives the column index,
// 1-based into sol's fixed Hdr, that mat's column j corresponds to.
func solveRec(mat *cover.Matrix, orig []int, sol *cover.Matrix, callback func(*cover.Matrix)) error {
	if mat.Bits.Cols() == 0 {
		callback(sol)

		return nil
	}

	c := 1
	best := mat.Count[0]
	for j := 2; j <= len(mat.Count); j++ {
		if mat.Count[j-1] < best {
			best, c = mat.Count[j-1], j
		}
	}
	if best == 0 {
		return nil // column c has no candidate row: dead branch
	}

	var rows []int
	for r := 1; r <= mat.Bits.Rows(); r++ {
		v, err := mat.Bits.Get(r, c)
		if err != nil {
			return err
		}
		if v == 1 {
			rows = append(rows, r)
		}
	}

	for _, r := range rows {
		mat2, orig2, sol2, err := branch(mat, orig, sol, r)
		if err != nil {
			return err
		}
		if err := solveRec(mat2, orig2, sol2, callback); err != nil {
			return err
		}
	}

	return nil
}

// branch selects row r of mat: it records r's coverage into a clone of sol,
// then removes from a clone of mat every row that conflicts with any column
// r covers, and finally removes those covered columns (and their entries in
// orig) entirely.
func branch(mat *cover.Matrix, orig []int, sol *cover.Matrix, r int) (*cover.Matrix, []int, *cover.Matrix, error) {
	mat2 := mat.Clone()
	sol2 := sol.Clone()
	orig2 := append([]int(nil), orig...)

	newSolRow := sol2.Bits.Rows() + 1
	if err := sol2.Bits.InsertRow(newSolRow); err != nil {
		return nil, nil, nil, err
	}

	var covered []int
	for j := 1; j <= mat.Bits.Cols(); j++ {
		v, err := mat.Bits.Get(r, j)
		if err != nil {
			return nil, nil, nil, err
		}
		if v != 1 {
			continue
		}
		covered = append(covered, j)

		solCol := orig[j-1]
		if err := sol2.Bits.Set(newSolRow, solCol, 1); err != nil {
			return nil, nil, nil, err
		}
		sol2.Count[solCol-1]++
	}

	for _, j := range covered {
		if err := removeConflictingRows(mat2, j); err != nil {
			return nil, nil, nil, err
		}
	}

	sortedCovered := append([]int(nil), covered...)
	sort.Sort(sort.Reverse(sort.IntSlice(sortedCovered)))
	for _, j := range sortedCovered {
		if err := mat2.Bits.RemoveCol(j); err != nil {
			return nil, nil, nil, err
		}
		mat2.Hdr = append(mat2.Hdr[:j-1], mat2.Hdr[j:]...)
		mat2.Count = append(mat2.Count[:j-1], mat2.Count[j:]...)
		orig2 = append(orig2[:j-1], orig2[j:]...)
	}

	return mat2, orig2, sol2, nil
}

// removeConflictingRows deletes every row of mat with a 1 in column j,
// decrementing every column's count for each cube of ones it removes.
func removeConflictingRows(mat *cover.Matrix, j int) error {
	i := 1
	for i <= mat.Bits.Rows() {
		v, err := mat.Bits.Get(i, j)
		if err != nil {
			return err
		}
		if v != 1 {
			i++
			continue
		}

		for jj := 1; jj <= mat.Bits.Cols(); jj++ {
			vv, err := mat.Bits.Get(i, jj)
			if err != nil {
				return err
			}
			if vv == 1 {
				mat.Count[jj-1]--
			}
		}
		if err := mat.Bits.RemoveRow(i); err != nil {
			return err
		}
		// row i removed: the next row has shifted into slot i, do not advance.
	}

	return nil
}
