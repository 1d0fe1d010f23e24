package piece

// library is the closed, static catalogue described in the specification's
// external-interfaces section. Offsets are chosen so that every piece is a
// connected polycube of the size implied by its name, and so that every
// chiral pair is a genuine mirror image (constructed by flipping one axis
// and re-normalizing to non-negative offsets) rather than a rotation of the
// other — the 24 proper rotations in package orientation can never map one
// member of a chiral pair onto the other.
var library = []Piece{
	{Name: "1_", Cubes: []Cube{{0, 0, 0}}},
	{Name: "2_", Cubes: []Cube{{0, 0, 0}, {1, 0, 0}}},

	{Name: "3I", Cubes: []Cube{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}},
	{Name: "3L", Cubes: []Cube{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}}},

	{Name: "4I", Cubes: []Cube{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}}},
	{Name: "4O", Cubes: []Cube{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}},
	{Name: "4L", Cubes: []Cube{{0, 0, 0}, {0, 1, 0}, {0, 2, 0}, {1, 0, 0}}},
	{Name: "4S", Cubes: []Cube{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {2, 1, 0}}},
	{Name: "4T", Cubes: []Cube{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {1, 1, 0}}},
	// 4^ is the achiral "tripod" tetracube: three arms from a corner cube.
	{Name: "4^", Cubes: []Cube{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}},
	// 4< / 4> are the unique chiral pair of free tetracubes (the "screw").
	{Name: "4<", Cubes: []Cube{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}}},
	{Name: "4>", Cubes: []Cube{{0, 1, 0}, {1, 1, 0}, {1, 0, 0}, {1, 0, 1}}},

	// Classic flat pentominoes, z=0.
	{Name: "F_", Cubes: []Cube{{1, 0, 0}, {2, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 2, 0}}},
	{Name: "I_", Cubes: []Cube{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}, {4, 0, 0}}},
	{Name: "L_", Cubes: []Cube{{0, 0, 0}, {0, 1, 0}, {0, 2, 0}, {0, 3, 0}, {1, 3, 0}}},
	{Name: "N_", Cubes: []Cube{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 2, 0}, {1, 3, 0}}},
	{Name: "P_", Cubes: []Cube{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}, {0, 2, 0}}},
	{Name: "T_", Cubes: []Cube{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {1, 1, 0}, {1, 2, 0}}},
	{Name: "U_", Cubes: []Cube{{0, 0, 0}, {2, 0, 0}, {0, 1, 0}, {1, 1, 0}, {2, 1, 0}}},
	{Name: "V_", Cubes: []Cube{{0, 0, 0}, {0, 1, 0}, {0, 2, 0}, {1, 2, 0}, {2, 2, 0}}},
	{Name: "W_", Cubes: []Cube{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 2, 0}, {2, 2, 0}}},
	{Name: "X_", Cubes: []Cube{{1, 0, 0}, {0, 1, 0}, {1, 1, 0}, {2, 1, 0}, {1, 2, 0}}},
	{Name: "Y_", Cubes: []Cube{{1, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 2, 0}, {1, 3, 0}}},
	{Name: "Z_", Cubes: []Cube{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {1, 2, 0}, {2, 2, 0}}},

	// Genuinely 3D (non-flat), achiral pentacubes.
	{Name: "Q_", Cubes: []Cube{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}, {0, 0, 1}}},
	{Name: "A_", Cubes: []Cube{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {1, 1, 0}, {1, 0, 1}}},
	{Name: "T1", Cubes: []Cube{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {1, 0, 1}, {1, 0, 2}}},
	{Name: "T2", Cubes: []Cube{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {1, 1, 0}, {1, 1, 1}}},
	{Name: "L3", Cubes: []Cube{{0, 0, 0}, {0, 0, 1}, {0, 0, 2}, {1, 0, 2}, {1, 1, 2}}},

	// Chiral pentacube pairs: each left-handed piece and its mirror image.
	{Name: "L1", Cubes: []Cube{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {2, 1, 0}, {2, 1, 1}}},
	{Name: "J1", Cubes: []Cube{{0, 0, 1}, {1, 0, 1}, {2, 0, 1}, {2, 1, 1}, {2, 1, 0}}},

	{Name: "L2", Cubes: []Cube{{0, 0, 0}, {0, 1, 0}, {0, 2, 0}, {1, 2, 0}, {1, 2, 1}}},
	{Name: "J2", Cubes: []Cube{{1, 0, 0}, {1, 1, 0}, {1, 2, 0}, {0, 2, 0}, {0, 2, 1}}},

	{Name: "L4", Cubes: []Cube{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {1, 2, 0}, {1, 2, 1}}},
	{Name: "J4", Cubes: []Cube{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {1, 2, 1}, {1, 2, 0}}},

	{Name: "N1", Cubes: []Cube{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {2, 1, 1}}},
	{Name: "S1", Cubes: []Cube{{2, 0, 0}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {0, 1, 1}}},

	{Name: "N2", Cubes: []Cube{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 1, 1}, {1, 2, 1}}},
	{Name: "S2", Cubes: []Cube{{1, 0, 0}, {1, 1, 0}, {0, 1, 0}, {0, 1, 1}, {0, 2, 1}}},

	{Name: "V1", Cubes: []Cube{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}}},
	{Name: "V2", Cubes: []Cube{{0, 1, 0}, {0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {1, 1, 1}}},
}
