// Package orientation enumerates the 24 proper rotations of the cube as
// integer coordinate permutations with signs, in a fixed, observable order:
// six "up" axes (+z, +y, +x, −z, −y, −x), each with four rotations (0°, 90°,
// 180°, 270°) about that up axis. The identity rotation is index 1.
//
// The enumeration order is part of the public contract: a piece's
// orientation-lock budget ("use only the first N orientations") refers to
// this exact ordering.
package orientation
