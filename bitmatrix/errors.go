// Package bitmatrix: sentinel error set.
// Every exported operation validates its own preconditions and returns one
// of these sentinels (optionally wrapped with fmt.Errorf("%w")) rather than
// panicking on caller-supplied bad input. Matrix state is left unmutated
// whenever a precondition check fails.
package bitmatrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("bitmatrix: dimensions must be >= 0")

	// ErrRowOutOfRange indicates a row index outside the valid 1..rows (or 1..rows+1 for insert) range.
	ErrRowOutOfRange = errors.New("bitmatrix: row index out of range")

	// ErrColOutOfRange indicates a column index outside the valid 1..cols (or 1..cols+1 for insert) range.
	ErrColOutOfRange = errors.New("bitmatrix: column index out of range")

	// ErrInvalidBitValue indicates that Set was called with a value other than 0 or 1.
	ErrInvalidBitValue = errors.New("bitmatrix: bit value must be 0 or 1")
)
