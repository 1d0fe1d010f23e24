package cover

import "errors"

var (
	// ErrInvalidBox indicates a box dimension less than 1.
	ErrInvalidBox = errors.New("cover: box dimensions must be >= 1")

	// ErrEmptyPiece indicates a piece with no cube offsets was passed to AddPiece.
	ErrEmptyPiece = errors.New("cover: piece has no cubes")

	// ErrInvalidOrientationLimit indicates a non-positive OrientationLimit option.
	ErrInvalidOrientationLimit = errors.New("cover: orientation limit must be >= 1")
)
