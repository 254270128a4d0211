package mapgen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/GeneralsMapGen/internal/game/core"
	"github.com/mitchelldurbincs/GeneralsMapGen/internal/testutil"
)

// newTestMap builds a map from fixture rows with room for 8 players.
func newTestMap(t *testing.T, topology Topology, conn Connectivity, rows ...string) *Map {
	t.Helper()
	b, err := testutil.ParseBoard(rows...)
	require.NoError(t, err)
	m, err := NewMapFromBoard(b, topology, conn, 8)
	require.NoError(t, err)
	return m
}

// newOpenMap builds a map of plain land.
func newOpenMap(t *testing.T, w, h int, topology Topology) *Map {
	t.Helper()
	m, err := NewMapFromBoard(testutil.OpenBoard(w, h), topology, Conn4, 8)
	require.NoError(t, err)
	return m
}

func newTestRandom() *RandomUtility {
	return NewRandomUtility(testutil.NewTestRNG(12345))
}

func coords(pts ...[2]int) []core.Coordinate {
	out := make([]core.Coordinate, len(pts))
	for i, p := range pts {
		out[i] = core.NewCoordinate(p[0], p[1])
	}
	return out
}
