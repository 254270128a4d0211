package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/GeneralsMapGen/internal/game/core"
)

func TestParseBoard(t *testing.T) {
	b, err := ParseBoard(
		".~M",
		"#..",
	)
	require.NoError(t, err)
	assert.Equal(t, 3, b.W)
	assert.Equal(t, 2, b.H)
	assert.Equal(t, core.TileLand, b.GetTile(0, 0).Type)
	assert.Equal(t, core.TileWater, b.GetTile(1, 0).Type)
	assert.Equal(t, core.TileMountain, b.GetTile(2, 0).Type)
	assert.Equal(t, core.TileLava, b.GetTile(0, 1).Type)
}

func TestParseBoardErrors(t *testing.T) {
	_, err := ParseBoard()
	assert.Error(t, err)

	_, err = ParseBoard("...", "..")
	assert.ErrorContains(t, err, "row 1")

	_, err = ParseBoard(".x.")
	assert.ErrorContains(t, err, "unknown fixture tile")
}

func TestMustParseBoardPanics(t *testing.T) {
	assert.Panics(t, func() { MustParseBoard("..", ".") })
}
