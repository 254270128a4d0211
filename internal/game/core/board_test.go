package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{"small board", 5, 5},
		{"rectangular board", 10, 20},
		{"minimum board", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := NewBoard(tt.width, tt.height)

			assert.Equal(t, tt.width, board.W)
			assert.Equal(t, tt.height, board.H)
			assert.Len(t, board.T, tt.width*tt.height)
			assert.Equal(t, NewSize(tt.width, tt.height), board.Size())

			for i, tile := range board.T {
				assert.Equal(t, TileLand, tile.Type, "tile %d should be land", i)
			}
		})
	}
}

func TestBoard_IdxXY(t *testing.T) {
	board := NewBoard(5, 4)

	tests := []struct {
		x, y     int
		expected int
	}{
		{0, 0, 0},
		{4, 0, 4},
		{0, 1, 5},
		{2, 2, 12},
		{4, 3, 19},
	}

	for _, tt := range tests {
		idx := board.Idx(tt.x, tt.y)
		assert.Equal(t, tt.expected, idx, "Idx(%d,%d) should be %d", tt.x, tt.y, tt.expected)
		x, y := board.XY(idx)
		assert.Equal(t, tt.x, x)
		assert.Equal(t, tt.y, y)
	}
}

func TestBoard_InBounds(t *testing.T) {
	board := NewBoard(3, 2)

	assert.True(t, board.InBounds(0, 0))
	assert.True(t, board.InBounds(2, 1))
	assert.False(t, board.InBounds(3, 0))
	assert.False(t, board.InBounds(0, 2))
	assert.False(t, board.InBounds(-1, 0))
	assert.Nil(t, board.GetTile(5, 5))
}

func TestBoard_SetType(t *testing.T) {
	board := NewBoard(4, 4)

	board.SetType(NewCoordinate(1, 1), TileMountain)
	board.SetType(NewCoordinate(2, 1), TileWater)
	board.SetType(NewCoordinate(3, 3), TileLava)
	board.SetType(NewCoordinate(9, 9), TileWater)

	tile := board.GetTile(1, 1)
	require.NotNil(t, tile)
	assert.True(t, tile.IsMountain())
	assert.True(t, board.GetTile(2, 1).IsWater())
	assert.Equal(t, 1, board.Count(TileMountain))
	assert.Equal(t, 1, board.Count(TileWater))
	assert.Equal(t, 1, board.Count(TileLava))
	assert.Equal(t, 13, board.Count(TileLand))
}

func TestBoard_TerrainQueries(t *testing.T) {
	board := NewBoard(3, 1)
	board.SetType(NewCoordinate(1, 0), TileMountain)
	board.SetType(NewCoordinate(2, 0), TileLava)

	tests := []struct {
		name      string
		coord     Coordinate
		buildable bool
		mountain  bool
	}{
		{"Land", NewCoordinate(0, 0), true, false},
		{"Mountain", NewCoordinate(1, 0), false, true},
		{"Lava", NewCoordinate(2, 0), false, false},
		{"OutOfBounds", NewCoordinate(3, 0), false, false},
		{"Invalid", InvalidCoordinate, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.buildable, board.IsBuildable(tt.coord))
			assert.Equal(t, tt.mountain, board.IsMountain(tt.coord))
		})
	}
}
