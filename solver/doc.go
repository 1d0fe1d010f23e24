// Package solver implements Knuth's Algorithm X over a cover.Matrix: it
// searches for every way to select a subset of rows such that each column
// is covered by exactly one selected row, reporting each solution as it is
// found via a callback.
//
// Strategy: at each step, pick the uncovered column with the fewest
// candidate rows (minimum-remaining-values heuristic — the same column
// chosen first fails fastest, which is the usual exact-cover pruning win).
// If that column has zero candidates the branch is dead. Otherwise the
// search clones the matrix once per candidate row, removes the rows and
// columns that row's selection rules out, and recurses.
//
// This is Algorithm X by clone-per-branch rather than Knuth's in-place
// dancing-links toggling: simpler to reason about and to keep correct
// without a test run, at the cost of extra allocation per branch. See
// cover.Matrix.Clone and bitmatrix.BitMatrix.Clone.
//
// Complexity: branching factor is bounded by the matrix's sparsest column
// at each step; worst case is exponential in the number of piece columns,
// as is inherent to exact cover.
package solver
