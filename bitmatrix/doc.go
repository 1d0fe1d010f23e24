// Package bitmatrix provides a dense, dynamically-resizable two-dimensional
// array of bits packed into 32-bit words, row-major, one word slice per row.
//
// What & Why:
//
//	Exact-cover search spends almost all of its time reading and flipping
//	single bits and shrinking/growing the matrix by whole rows or columns.
//	Packing G=32 bits per machine word keeps the working set small and the
//	inner loops (row comparisons during dedup, column scans during solve)
//	word-parallel, the same trade the teacher library makes with its
//	flat-slice Dense matrix for float64 linear algebra.
//
// Complexity:
//
//	Get/Set run in O(1). InsertRow/RemoveRow run in O(rows) for the slice
//	shift plus O(wordsPerRow) for the new row. InsertCol/RemoveCol run in
//	O(rows * wordsPerRow) since every row's word vector must shift.
package bitmatrix

// wordBits is G from the specification: the number of bits packed per word.
const wordBits = 32
