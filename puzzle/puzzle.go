package puzzle

import (
	"context"
	"fmt"

	"github.com/katalvlaran/polycube/cover"
	"github.com/katalvlaran/polycube/piece"
	"github.com/katalvlaran/polycube/solver"
)

// Problem is the external record consumed by Solve: a box and an ordered
// multiset of piece names to place inside it, plus optional
// symmetry-breaking and orientation-locking hints.
//
// Constrain is shorthand for setting ConstrainX, ConstrainY, and ConstrainZ
// to the same piece name. Each of Constrain/ConstrainX/ConstrainY/ConstrainZ
// and Lock names at most one piece; when Pieces contains more than one
// occurrence of that name, the hint applies only to the first occurrence —
// enough to break the symmetry a duplicate piece introduces without
// over-constraining every copy of it. LockCount left at its zero value
// defaults to 1, the same as omitting it entirely.
type Problem struct {
	Box        cover.Box
	Pieces     []string
	Constrain  string
	ConstrainX string
	ConstrainY string
	ConstrainZ string
	Lock       string
	LockCount  int
}

// Solution is an alias for the matrix snapshot solver.Solve reports: a
// *cover.Matrix whose Hdr matches the problem matrix's original Hdr and
// whose rows are the chosen placements.
type Solution = cover.Matrix

// cancelSignal unwinds Solve's search early; it is only ever recovered by
// Solve itself, never allowed to escape as a panic.
type cancelSignal struct{ err error }

// Solve builds the exact-cover matrix for p and reports every tiling via
// callback, in the order package solver finds them. It returns ctx.Err()
// if ctx is done by the time a solution is about to be reported; solutions
// already reported before cancellation are not undone.
func Solve(ctx context.Context, p Problem, callback func(*Solution)) (err error) {
	if len(p.Pieces) == 0 {
		return ErrNoPieces
	}

	mat, err := cover.NewBoxMatrix(p.Box)
	if err != nil {
		return err
	}

	firstIdx := make(map[string]int, len(p.Pieces))
	for i, name := range p.Pieces {
		if _, ok := firstIdx[name]; !ok {
			firstIdx[name] = i
		}
	}

	lockCount := p.LockCount
	if lockCount < 1 {
		lockCount = 1
	}

	for i, name := range p.Pieces {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}

		pc, lookupErr := piece.Lookup(name)
		if lookupErr != nil {
			return lookupErr
		}

		var opts []cover.Option
		if i == firstIdx[name] {
			if p.Constrain == name {
				opts = append(opts, cover.WithConstrainX(true), cover.WithConstrainY(true), cover.WithConstrainZ(true))
			}
			if p.ConstrainX == name {
				opts = append(opts, cover.WithConstrainX(true))
			}
			if p.ConstrainY == name {
				opts = append(opts, cover.WithConstrainY(true))
			}
			if p.ConstrainZ == name {
				opts = append(opts, cover.WithConstrainZ(true))
			}
			if p.Lock == name {
				opts = append(opts, cover.WithOrientationLimit(lockCount))
			}
		}

		if err := cover.AddPiece(mat, p.Box, pc, cover.NewOptions(opts...)); err != nil {
			return fmt.Errorf("puzzle.Solve: piece %q: %w", name, err)
		}
	}

	defer func() {
		if r := recover(); r != nil {
			cs, ok := r.(cancelSignal)
			if !ok {
				panic(r)
			}
			err = cs.err
		}
	}()

	wrapped := func(sol *cover.Matrix) {
		if cerr := ctx.Err(); cerr != nil {
			panic(cancelSignal{cerr})
		}
		callback(sol)
	}

	return solver.Solve(mat, wrapped)
}
