// Package polycube is an exact-cover engine for dissecting a rectangular
// box into a chosen multiset of polycube pieces.
//
// 🧩 What is polycube?
//
//	A pure, in-memory Go module that brings together:
//
//	  • bitmatrix/   — packed 1-bit-per-cell dense matrix with O(1) get/set
//	  • orientation/ — the 24 proper rotations of the cube
//	  • piece/       — the polycube catalogue (monocube through pentacubes)
//	  • cover/       — exact-cover matrix construction from box + pieces
//	  • solver/      — Knuth's Algorithm X over the cover matrix
//	  • puzzle/      — thin external glue: Problem in, Solution callback out
//
// ✨ Why polycube?
//
//   - Deterministic   — single-threaded, no shared mutable state, repeatable
//     solution order for equal inputs
//   - Exhaustive      — finds every tiling, not just the first
//   - Pure Go         — no cgo
//
// Quick shape:
//
//	problem := puzzle.Problem{
//	    Box:    cover.Box{W: 5, H: 2, D: 1},
//	    Pieces: []string{"L_", "P_"},
//	}
//	_ = puzzle.Solve(ctx, problem, func(sol *puzzle.Solution) { ... })
//
// See DESIGN.md for the grounding behind each package's design.
package polycube
