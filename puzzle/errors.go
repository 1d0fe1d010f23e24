package puzzle

import "errors"

var (
	// ErrNoPieces indicates a Problem with an empty piece list.
	ErrNoPieces = errors.New("puzzle: problem has no pieces")
)
