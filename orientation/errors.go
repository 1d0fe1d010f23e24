package orientation

import "errors"

// ErrInvalidIndex indicates an orientation index outside 1..Count.
var ErrInvalidIndex = errors.New("orientation: index out of range")
