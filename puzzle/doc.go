// Package puzzle is the thin external-interface layer: it consumes a
// Problem record naming a box and a multiset of pieces (plus optional
// symmetry-breaking and orientation-locking hints), builds the exact-cover
// matrix via package cover, and drives package solver to emit every
// tiling as a Solution.
//
// This is glue, not core: the only logic beyond straightforward wiring is
// translating Problem's flat, single-target constrain/lock fields into
// per-occurrence cover.Options, and optional context cancellation between
// solutions. The search itself carries no cancellation support (see
// package solver); Solve layers it on by checking ctx.Err() at the point
// where solutions are reported and unwinding the search early.
package puzzle
