package piece_test

import (
	"testing"

	"github.com/katalvlaran/polycube/piece"
	"github.com/stretchr/testify/require"
)

func TestNoDuplicateNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, name := range piece.Names() {
		require.False(t, seen[name], "duplicate piece name %q", name)
		seen[name] = true
	}
	require.Equal(t, piece.Count(), len(seen))
}

func TestCatalogueSize(t *testing.T) {
	require.InDelta(t, 40, piece.Count(), 5)
}

func TestLookupUnknown(t *testing.T) {
	_, err := piece.Lookup("does-not-exist")
	require.ErrorIs(t, err, piece.ErrUnknownPiece)
}

func TestEveryPieceIsConnected(t *testing.T) {
	for _, name := range piece.Names() {
		p, err := piece.Lookup(name)
		require.NoError(t, err)
		require.True(t, isConnected(p.Cubes), "piece %q is not a connected polycube", name)
	}
}

func TestChiralPairsAreDistinctCubeSets(t *testing.T) {
	pairs := [][2]string{
		{"L1", "J1"}, {"L2", "J2"}, {"L4", "J4"},
		{"N1", "S1"}, {"N2", "S2"}, {"V1", "V2"},
	}
	for _, pair := range pairs {
		a, err := piece.Lookup(pair[0])
		require.NoError(t, err)
		b, err := piece.Lookup(pair[1])
		require.NoError(t, err)
		require.Equal(t, len(a.Cubes), len(b.Cubes))
		require.NotEqual(t, cubeSet(a.Cubes), cubeSet(b.Cubes))
	}
}

func isConnected(cubes []piece.Cube) bool {
	if len(cubes) == 0 {
		return false
	}
	set := cubeSet(cubes)
	visited := map[piece.Cube]bool{cubes[0]: true}
	queue := []piece.Cube{cubes[0]}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range []piece.Cube{
			{c.X + 1, c.Y, c.Z}, {c.X - 1, c.Y, c.Z},
			{c.X, c.Y + 1, c.Z}, {c.X, c.Y - 1, c.Z},
			{c.X, c.Y, c.Z + 1}, {c.X, c.Y, c.Z - 1},
		} {
			if set[d] && !visited[d] {
				visited[d] = true
				queue = append(queue, d)
			}
		}
	}

	return len(visited) == len(cubes)
}

func cubeSet(cubes []piece.Cube) map[piece.Cube]bool {
	set := make(map[piece.Cube]bool, len(cubes))
	for _, c := range cubes {
		set[c] = true
	}

	return set
}
