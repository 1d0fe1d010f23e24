package bitmatrix

// InsertRow inserts a zero row at position i (1 ≤ i ≤ Rows()+1), shifting
// rows i..Rows() down by one.
// Complexity: O(Rows()) for the slice shift.
func (b *BitMatrix) InsertRow(i int) error {
	if i < 1 || i > len(b.rows)+1 {
		return bitErrorf("InsertRow", i, 0, ErrRowOutOfRange)
	}

	newRow := make([]uint32, wordsFor(b.cols))
	b.rows = append(b.rows, nil)
	copy(b.rows[i:], b.rows[i-1:len(b.rows)-1])
	b.rows[i-1] = newRow

	return nil
}

// RemoveRow deletes row i (1 ≤ i ≤ Rows()), shifting rows i+1..Rows() up by one.
// Complexity: O(Rows()) for the slice shift.
func (b *BitMatrix) RemoveRow(i int) error {
	if i < 1 || i > len(b.rows) {
		return bitErrorf("RemoveRow", i, 0, ErrRowOutOfRange)
	}

	copy(b.rows[i-1:], b.rows[i:])
	b.rows = b.rows[:len(b.rows)-1]

	return nil
}
