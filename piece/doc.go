// Package piece is the static, read-only catalogue of named polycubes used
// to build exact-cover problems: monocube through pentacubes, including the
// 3D-chiral pairs. Each entry is a short name and a non-empty list of
// integer (x, y, z) cube offsets relative to an arbitrary reference cube.
//
// Lookup is a linear scan over the closed set (around 40 entries) — the
// catalogue is small and static, so there is no benefit to a map here over
// the clarity of a flat, literal table.
package piece
