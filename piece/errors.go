package piece

import "errors"

// ErrUnknownPiece indicates a lookup by a name not present in the catalogue.
var ErrUnknownPiece = errors.New("piece: unknown name")
