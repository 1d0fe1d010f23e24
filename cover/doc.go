// Package cover builds the exact-cover matrix that package solver searches:
// a bitmatrix.BitMatrix whose columns are first the box's W*H*D unit cells
// (Z-major, X fastest-varying) and then one column per piece occurrence,
// carried alongside a parallel column-name vector and a per-column
// popcount vector that must always equal the matrix's own column sums.
//
// What & Why:
//
//	AddPiece enumerates every legal rotated, translated placement of a
//	piece inside the box, appends one matrix row per distinct placement,
//	and discards rows that duplicate an earlier placement of the same
//	piece bit-for-bit. This is the one place correctness of the whole
//	search is decided: a missing or duplicated row here changes which
//	exact covers exist.
//
// Complexity:
//
//	AddPiece is O(orientations * translations * |piece.Cubes| * dedupRows)
//	per piece, where dedupRows is the number of placements already kept
//	for that piece.
package cover
