package piece

import "fmt"

// Cube is one unit-cube offset relative to a piece's arbitrary reference cube.
type Cube struct {
	X, Y, Z int
}

// Piece is a named polycube: a short label and its non-empty set of offsets.
type Piece struct {
	Name  string
	Cubes []Cube
}

// Lookup returns the catalogue entry for name, or ErrUnknownPiece.
// Complexity: O(len(library)).
func Lookup(name string) (Piece, error) {
	for _, p := range library {
		if p.Name == name {
			return p, nil
		}
	}

	return Piece{}, fmt.Errorf("piece.Lookup(%q): %w", name, ErrUnknownPiece)
}

// Names returns every catalogue name, in catalogue order.
func Names() []string {
	names := make([]string, len(library))
	for i, p := range library {
		names[i] = p.Name
	}

	return names
}

// Count returns the number of distinct pieces in the catalogue.
func Count() int {
	return len(library)
}

// Bounds returns the piece's axis-aligned bounding box: the minimum and
// maximum offset along each axis, over its unrotated cube list.
func (p Piece) Bounds() (min, max Cube) {
	min, max = p.Cubes[0], p.Cubes[0]
	for _, c := range p.Cubes[1:] {
		if c.X < min.X {
			min.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.Z < min.Z {
			min.Z = c.Z
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
		if c.Z > max.Z {
			max.Z = c.Z
		}
	}

	return min, max
}
