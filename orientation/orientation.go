package orientation

import "fmt"

// Count is the number of proper cube rotations.
const Count = 24

// Rotation is a signed coordinate permutation: applying it to a vector
// multiplies the vector by a 3x3 matrix whose entries are all in {-1,0,1}
// with exactly one nonzero entry per row and column.
type Rotation struct {
	m [3][3]int
}

// Apply rotates (x, y, z) under r and returns the rotated coordinates.
// Complexity: O(1).
func (r Rotation) Apply(x, y, z int) (int, int, int) {
	v := [3]int{x, y, z}
	var out [3]int
	for row := 0; row < 3; row++ {
		s := 0
		for col := 0; col < 3; col++ {
			s += r.m[row][col] * v[col]
		}
		out[row] = s
	}

	return out[0], out[1], out[2]
}

// table holds the 24 rotations in the canonical enumeration order described
// in the package doc comment. Built once at init from a small set of base
// "up axis" reorientations composed with the four rotations about z.
var table [Count]Rotation

func init() {
	// Each base matrix reorients the named "up" axis to point along +z;
	// composing it with a rotation about z then sweeps the four headings.
	// Order fixed by the specification: +z, +y, +x, -z, -y, -x.
	bases := [6][3][3]int{
		identity3,       // +z up: already at +z
		rotXPlus90,      // +y up: (x,y,z) -> (x,-z,y)
		rotYMinus90,     // +x up: (x,y,z) -> (-z,y,x)
		rot180AboutX,    // -z up: (x,y,z) -> (x,-y,-z)
		rotXMinus90,     // -y up: (x,y,z) -> (x,z,-y)
		rotYPlus90,      // -x up: (x,y,z) -> (z,y,-x)
	}
	sweeps := [4][3][3]int{
		identity3,  // 0 degrees about z
		rotZPlus90, // 90 degrees about z
		rot180AboutZ,
		rotZMinus90,
	}

	idx := 0
	for _, base := range bases {
		for _, sweep := range sweeps {
			table[idx] = Rotation{m: mulMat(sweep, base)}
			idx++
		}
	}
}

// At returns the rotation at the given 1-based index (1..Count, identity at 1).
func At(index int) (Rotation, error) {
	if index < 1 || index > Count {
		return Rotation{}, fmt.Errorf("orientation.At(%d): %w", index, ErrInvalidIndex)
	}

	return table[index-1], nil
}

// mulMat returns a*b (matrix product), applying b first then a to a vector.
func mulMat(a, b [3][3]int) [3][3]int {
	var out [3][3]int
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s := 0
			for k := 0; k < 3; k++ {
				s += a[i][k] * b[k][j]
			}
			out[i][j] = s
		}
	}

	return out
}

var (
	identity3 = [3][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	// rotXPlus90 maps (x,y,z) -> (x,-z,y): rotate +90 degrees about the x axis.
	rotXPlus90 = [3][3]int{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}}

	// rotXMinus90 maps (x,y,z) -> (x,z,-y): rotate -90 degrees about the x axis.
	rotXMinus90 = [3][3]int{{1, 0, 0}, {0, 0, 1}, {0, -1, 0}}

	// rot180AboutX maps (x,y,z) -> (x,-y,-z): rotate 180 degrees about the x axis.
	rot180AboutX = [3][3]int{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}}

	// rotYMinus90 maps (x,y,z) -> (-z,y,x): rotate -90 degrees about the y axis.
	rotYMinus90 = [3][3]int{{0, 0, -1}, {0, 1, 0}, {1, 0, 0}}

	// rotYPlus90 maps (x,y,z) -> (z,y,-x): rotate +90 degrees about the y axis.
	rotYPlus90 = [3][3]int{{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}}

	// rotZPlus90 maps (x,y,z) -> (-y,x,z): rotate +90 degrees about the z axis.
	rotZPlus90 = [3][3]int{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}

	// rotZMinus90 maps (x,y,z) -> (y,-x,z): rotate -90 degrees about the z axis.
	rotZMinus90 = [3][3]int{{0, 1, 0}, {-1, 0, 0}, {0, 0, 1}}

	// rot180AboutZ maps (x,y,z) -> (-x,-y,z): rotate 180 degrees about the z axis.
	rot180AboutZ = [3][3]int{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}
)
