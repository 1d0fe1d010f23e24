package cover

import (
	"fmt"

	"github.com/katalvlaran/polycube/orientation"
	"github.com/katalvlaran/polycube/piece"
)

// AddPiece appends one new piece-column to mat, named p.Name, then appends
// one matrix row for every distinct legal placement of p inside box across
// every orientation allowed by opts.OrientationLimit, deduplicating rows
// that repeat an earlier placement of this same piece bit-for-bit.
//
// Stage 1 (Validate): box and piece preconditions, orientation limit.
// Stage 2 (Prepare): append the piece column.
// Stage 3 (Execute): for each orientation, for each translation, place and dedup.
// Stage 4 (Finalize): column popcounts reflect every kept row exactly.
//
// Complexity: see package doc comment.
func AddPiece(mat *Matrix, box Box, p piece.Piece, opts Options) error {
	if err := box.Validate(); err != nil {
		return err
	}
	if len(p.Cubes) == 0 {
		return fmt.Errorf("cover.AddPiece(%q): %w", p.Name, ErrEmptyPiece)
	}
	limit := opts.OrientationLimit
	if limit < 1 {
		return fmt.Errorf("cover.AddPiece(%q): %w", p.Name, ErrInvalidOrientationLimit)
	}
	if limit > orientation.Count {
		limit = orientation.Count
	}

	pieceCol := mat.Bits.Cols() + 1
	if err := mat.Bits.InsertCol(pieceCol); err != nil {
		return err
	}
	mat.Hdr = append(mat.Hdr, p.Name)
	mat.Count = append(mat.Count, 0)

	minB, maxB := p.Bounds()
	firstRow := mat.Bits.Rows() + 1 // first row number this piece will occupy, if any are kept

	for o := 1; o <= limit; o++ {
		rot, err := orientation.At(o)
		if err != nil {
			return err
		}

		bx0, bx1 := rotatedAxisRange(rot, minB, maxB, 0)
		by0, by1 := rotatedAxisRange(rot, minB, maxB, 1)
		bz0, bz1 := rotatedAxisRange(rot, minB, maxB, 2)

		xp := box.W - (bx1 - bx0)
		yp := box.H - (by1 - by0)
		zp := box.D - (bz1 - bz0)
		if xp < 1 || yp < 1 || zp < 1 {
			continue // piece does not fit the box in this orientation
		}

		if opts.ConstrainX {
			xp = ceilDiv(xp, 2)
		}
		if opts.ConstrainY {
			yp = ceilDiv(yp, 2)
		}
		if opts.ConstrainZ {
			zp = ceilDiv(zp, 2)
		}

		for xo := -bx0; xo < -bx0+xp; xo++ {
			for yo := -by0; yo < -by0+yp; yo++ {
				for zo := -bz0; zo < -bz0+zp; zo++ {
					if err := placeOne(mat, box, p, rot, xo, yo, zo, pieceCol, firstRow); err != nil {
						return err
					}
				}
			}
		}
	}

	return nil
}

// placeOne inserts one candidate row for a single (orientation, translation)
// placement, dropping it if it duplicates an earlier placement of this piece.
func placeOne(mat *Matrix, box Box, p piece.Piece, rot orientation.Rotation, xo, yo, zo, pieceCol, firstRow int) error {
	newRow := mat.Bits.Rows() + 1
	if err := mat.Bits.InsertRow(newRow); err != nil {
		return err
	}
	if err := mat.Bits.Set(newRow, pieceCol, 1); err != nil {
		return err
	}

	for _, c := range p.Cubes {
		rx, ry, rz := rot.Apply(c.X, c.Y, c.Z)
		x, y, z := rx+xo, ry+yo, rz+zo
		if x < 0 || x >= box.W || y < 0 || y >= box.H || z < 0 || z >= box.D {
			// The translation range above is derived from the piece's own
			// rotated bounding box, so every cube must land in-box; if one
			// doesn't, the range computation itself has a bug.
			panic(fmt.Sprintf("cover: placement outside box for piece %q: (%d,%d,%d)", p.Name, x, y, z))
		}
		col := ColumnOf(box, x, y, z)
		if err := mat.Bits.Set(newRow, col, 1); err != nil {
			return err
		}
	}

	for r := firstRow; r < newRow; r++ {
		eq, err := mat.Bits.EqualRows(r, newRow)
		if err != nil {
			return err
		}
		if eq {
			return mat.Bits.RemoveRow(newRow)
		}
	}

	for j := 1; j <= mat.Bits.Cols(); j++ {
		v, err := mat.Bits.Get(newRow, j)
		if err != nil {
			return err
		}
		if v == 1 {
			mat.Count[j-1]++
		}
	}

	return nil
}

// rotatedAxisRange rotates the piece's two bounding-box corners under rot
// and returns the canonical (min, max) along the given axis (0=x, 1=y, 2=z).
// Because every orientation is a signed coordinate permutation, rotating
// just the two corners and re-ordering per axis reproduces the rotated
// bounding box exactly.
func rotatedAxisRange(rot orientation.Rotation, min, max piece.Cube, axis int) (lo, hi int) {
	minX, minY, minZ := rot.Apply(min.X, min.Y, min.Z)
	maxX, maxY, maxZ := rot.Apply(max.X, max.Y, max.Z)
	var a, b int
	switch axis {
	case 0:
		a, b = minX, maxX
	case 1:
		a, b = minY, maxY
	default:
		a, b = minZ, maxZ
	}
	if a > b {
		a, b = b, a
	}

	return a, b
}

// ceilDiv returns ceil(n/by) for n >= 0 and by >= 1.
func ceilDiv(n, by int) int {
	return (n + by - 1) / by
}
