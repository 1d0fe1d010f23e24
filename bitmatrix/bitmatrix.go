package bitmatrix

import "fmt"

// BitMatrix is a dense m×n array of bits, 1-indexed on its public surface.
// Each row is stored as its own []uint32 word slice of length
// ceil(cols/wordBits); bit (i, j) lives at word (j-1)/wordBits, bit position
// (j-1)%wordBits (bit 0 = least significant).
//
// Invariant: every row's word slice has length wordsFor(cols), and any bit
// at a position >= cols within the last word of a row is always zero.
type BitMatrix struct {
	cols int
	rows [][]uint32
}

// wordsFor returns the number of wordBits-wide words needed to hold n bits.
func wordsFor(n int) int {
	if n <= 0 {
		return 0
	}

	return (n + wordBits - 1) / wordBits
}

// bitErrorf wraps an underlying sentinel with method/index context.
func bitErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("BitMatrix.%s(%d,%d): %w", method, i, j, err)
}

// New allocates an m×n zero BitMatrix.
// Complexity: O(m * ceil(n/wordBits)).
func New(m, n int) (*BitMatrix, error) {
	if m < 0 || n < 0 {
		return nil, ErrInvalidDimensions
	}

	rows := make([][]uint32, m)
	for i := range rows {
		rows[i] = make([]uint32, wordsFor(n))
	}

	return &BitMatrix{cols: n, rows: rows}, nil
}

// Rows returns the current number of logical rows.
// Complexity: O(1).
func (b *BitMatrix) Rows() int {
	return len(b.rows)
}

// Cols returns the current number of logical columns.
// Complexity: O(1).
func (b *BitMatrix) Cols() int {
	return b.cols
}

// Clone returns a fully independent deep copy: mutating the clone never
// affects the original and vice versa.
// Complexity: O(m * ceil(n/wordBits)).
func (b *BitMatrix) Clone() *BitMatrix {
	rows := make([][]uint32, len(b.rows))
	for i, w := range b.rows {
		cw := make([]uint32, len(w))
		copy(cw, w)
		rows[i] = cw
	}

	return &BitMatrix{cols: b.cols, rows: rows}
}

// Equal reports whether b and other have the same dimensions and bits.
// Satisfies the go-cmp Equatable contract (a method of this exact shape),
// so cmp.Equal(b, other) works despite BitMatrix's unexported fields.
func (b *BitMatrix) Equal(other *BitMatrix) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.cols != other.cols || len(b.rows) != len(other.rows) {
		return false
	}
	for i := range b.rows {
		if len(b.rows[i]) != len(other.rows[i]) {
			return false
		}
		for k := range b.rows[i] {
			if b.rows[i][k] != other.rows[i][k] {
				return false
			}
		}
	}

	return true
}

// locate validates (i, j) and returns the 0-based row index, word index, and
// bit position, or an error if out of range.
func (b *BitMatrix) locate(method string, i, j int) (row, word, bit int, err error) {
	if i < 1 || i > len(b.rows) {
		return 0, 0, 0, bitErrorf(method, i, j, ErrRowOutOfRange)
	}
	if j < 1 || j > b.cols {
		return 0, 0, 0, bitErrorf(method, i, j, ErrColOutOfRange)
	}

	return i - 1, (j - 1) / wordBits, (j - 1) % wordBits, nil
}

// Get returns the bit at (i, j), 1-indexed.
// Complexity: O(1). Never mutates the matrix.
func (b *BitMatrix) Get(i, j int) (int, error) {
	row, word, bit, err := b.locate("Get", i, j)
	if err != nil {
		return 0, err
	}

	return int((b.rows[row][word] >> uint(bit)) & 1), nil
}

// Set writes v (0 or 1) at (i, j), 1-indexed, changing exactly that bit.
// Complexity: O(1).
func (b *BitMatrix) Set(i, j, v int) error {
	if v != 0 && v != 1 {
		return bitErrorf("Set", i, j, ErrInvalidBitValue)
	}
	row, word, bit, err := b.locate("Set", i, j)
	if err != nil {
		return err
	}

	if v == 1 {
		b.rows[row][word] |= uint32(1) << uint(bit)
	} else {
		b.rows[row][word] &^= uint32(1) << uint(bit)
	}

	return nil
}

// EqualRows reports whether rows i and j (1-indexed) are bit-for-bit
// identical. Because stale high bits above cols are always zero (the
// package invariant), whole-word equality is equivalent to logical row
// equality, so this compares word slices directly without masking.
// Complexity: O(ceil(cols/wordBits)).
func (b *BitMatrix) EqualRows(i, j int) (bool, error) {
	if i < 1 || i > len(b.rows) {
		return false, bitErrorf("EqualRows", i, j, ErrRowOutOfRange)
	}
	if j < 1 || j > len(b.rows) {
		return false, bitErrorf("EqualRows", i, j, ErrRowOutOfRange)
	}

	wi, wj := b.rows[i-1], b.rows[j-1]
	for k := range wi {
		if wi[k] != wj[k] {
			return false, nil
		}
	}

	return true, nil
}
