package cover_test

import (
	"testing"

	"github.com/katalvlaran/polycube/cover"
	"github.com/katalvlaran/polycube/piece"
	"github.com/stretchr/testify/require"
)

func mustPiece(t *testing.T, name string) piece.Piece {
	t.Helper()
	p, err := piece.Lookup(name)
	require.NoError(t, err)

	return p
}

func popcount(t *testing.T, mat *cover.Matrix, col int) int {
	t.Helper()
	n := 0
	for r := 1; r <= mat.Bits.Rows(); r++ {
		v, err := mat.Bits.Get(r, col)
		require.NoError(t, err)
		n += v
	}

	return n
}

func rowOnesCount(t *testing.T, mat *cover.Matrix, row int) int {
	t.Helper()
	n := 0
	for j := 1; j <= mat.Bits.Cols(); j++ {
		v, err := mat.Bits.Get(row, j)
		require.NoError(t, err)
		n += v
	}

	return n
}

func TestNewBoxMatrixColumnCountAndRejectsBadBox(t *testing.T) {
	mat, err := cover.NewBoxMatrix(cover.Box{W: 2, H: 3, D: 4})
	require.NoError(t, err)
	require.Equal(t, 24, mat.Bits.Cols())
	require.Equal(t, 0, mat.Bits.Rows())
	require.Len(t, mat.Hdr, 24)
	require.Len(t, mat.Count, 24)

	_, err = cover.NewBoxMatrix(cover.Box{W: 0, H: 1, D: 1})
	require.ErrorIs(t, err, cover.ErrInvalidBox)
}

func TestColumnOfIsZMajorXFastest(t *testing.T) {
	box := cover.Box{W: 3, H: 2, D: 2}
	require.Equal(t, 1, cover.ColumnOf(box, 0, 0, 0))
	require.Equal(t, 3, cover.ColumnOf(box, 2, 0, 0))
	require.Equal(t, 4, cover.ColumnOf(box, 0, 1, 0))
	require.Equal(t, 7, cover.ColumnOf(box, 0, 0, 1))
}

func TestAddPieceTrivialBoxSingleCube(t *testing.T) {
	box := cover.Box{W: 1, H: 1, D: 1}
	mat, err := cover.NewBoxMatrix(box)
	require.NoError(t, err)

	p := mustPiece(t, "1_")
	require.NoError(t, cover.AddPiece(mat, box, p, cover.NewOptions()))

	require.Equal(t, 1, mat.Bits.Rows())
	require.Equal(t, 2, mat.Bits.Cols()) // 1 box cell + 1 piece column
	require.Equal(t, len(p.Cubes)+1, rowOnesCount(t, mat, 1))
	require.Equal(t, 1, mat.Count[0])
	require.Equal(t, 1, mat.Count[1])
}

func TestAddPieceUnsolvableBoxStillBuildsRows(t *testing.T) {
	box := cover.Box{W: 2, H: 1, D: 1}
	mat, err := cover.NewBoxMatrix(box)
	require.NoError(t, err)

	p := mustPiece(t, "1_")
	require.NoError(t, cover.AddPiece(mat, box, p, cover.NewOptions()))
	// Two translational positions for a monocube in a 2x1x1 box.
	require.Equal(t, 2, mat.Bits.Rows())
}

func TestAddPieceCountMatchesPopcount(t *testing.T) {
	box := cover.Box{W: 5, H: 2, D: 1}
	mat, err := cover.NewBoxMatrix(box)
	require.NoError(t, err)

	require.NoError(t, cover.AddPiece(mat, box, mustPiece(t, "L_"), cover.NewOptions()))
	require.NoError(t, cover.AddPiece(mat, box, mustPiece(t, "P_"), cover.NewOptions()))

	for j := 1; j <= mat.Bits.Cols(); j++ {
		require.Equal(t, popcount(t, mat, j), mat.Count[j-1], "column %d", j)
	}
	for r := 1; r <= mat.Bits.Rows(); r++ {
		ones := rowOnesCount(t, mat, r)
		require.True(t, ones == len(mustPiece(t, "L_").Cubes)+1 || ones == len(mustPiece(t, "P_").Cubes)+1)
	}
}

func TestAddPieceConstrainHalvesTranslationRange(t *testing.T) {
	box := cover.Box{W: 2, H: 2, D: 2}
	unconstrained, err := cover.NewBoxMatrix(box)
	require.NoError(t, err)
	require.NoError(t, cover.AddPiece(unconstrained, box, mustPiece(t, "1_"), cover.NewOptions()))
	require.Equal(t, 8, unconstrained.Bits.Rows())

	constrained, err := cover.NewBoxMatrix(box)
	require.NoError(t, err)
	opts := cover.NewOptions(cover.WithConstrainX(true), cover.WithConstrainY(true), cover.WithConstrainZ(true))
	require.NoError(t, cover.AddPiece(constrained, box, mustPiece(t, "1_"), opts))
	require.Equal(t, 1, constrained.Bits.Rows())
}

func TestAddPieceOrientationLimitLocksToFirstOrientations(t *testing.T) {
	box := cover.Box{W: 1, H: 1, D: 1}
	mat, err := cover.NewBoxMatrix(box)
	require.NoError(t, err)

	opts := cover.NewOptions(cover.WithOrientationLimit(1))
	require.NoError(t, cover.AddPiece(mat, box, mustPiece(t, "1_"), opts))
	require.Equal(t, 1, mat.Bits.Rows()) // isotropic piece: lock is a no-op on row count
}

func TestAddPieceRejectsInvalidOrientationLimit(t *testing.T) {
	box := cover.Box{W: 1, H: 1, D: 1}
	mat, err := cover.NewBoxMatrix(box)
	require.NoError(t, err)

	opts := cover.NewOptions(cover.WithOrientationLimit(0))
	err = cover.AddPiece(mat, box, mustPiece(t, "1_"), opts)
	require.ErrorIs(t, err, cover.ErrInvalidOrientationLimit)
}

func TestAddPieceDedupesRepeatedOrientationsOfSymmetricPiece(t *testing.T) {
	// A monocube looks identical under all 24 orientations; every
	// translation must be kept exactly once despite 24 orientations tried.
	box := cover.Box{W: 3, H: 1, D: 1}
	mat, err := cover.NewBoxMatrix(box)
	require.NoError(t, err)
	require.NoError(t, cover.AddPiece(mat, box, mustPiece(t, "1_"), cover.NewOptions()))
	require.Equal(t, 3, mat.Bits.Rows())
}
