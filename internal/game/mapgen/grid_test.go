package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/GeneralsMapGen/internal/game/core"
)

func TestNewGrid(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		g, err := NewGrid(core.NewSize(4, 3), Bounded, Conn4)
		require.NoError(t, err)
		assert.Equal(t, 12, g.Len())
		assert.Equal(t, uint32(7), g.MaxDistance())
	})

	t.Run("ZeroSize", func(t *testing.T) {
		_, err := NewGrid(core.NewSize(0, 3), Bounded, Conn4)
		assert.ErrorIs(t, err, core.ErrInvalidSize)
	})

	t.Run("UnsupportedConnectivity", func(t *testing.T) {
		_, err := NewGrid(core.NewSize(3, 3), Bounded, Connectivity(5))
		assert.Error(t, err)
	})

	t.Run("OddHeightHexTorus", func(t *testing.T) {
		_, err := NewGrid(core.NewSize(5, 5), Toroidal, Conn6)
		assert.ErrorIs(t, err, core.ErrInvalidSize)
	})

	t.Run("EvenHeightHexTorus", func(t *testing.T) {
		_, err := NewGrid(core.NewSize(5, 4), Toroidal, Conn6)
		assert.NoError(t, err)
	})

	t.Run("OddHeightHexBounded", func(t *testing.T) {
		_, err := NewGrid(core.NewSize(5, 5), Bounded, Conn6)
		assert.NoError(t, err)
	})
}

func TestGridIndexRoundTrip(t *testing.T) {
	g, err := NewGrid(core.NewSize(7, 5), Bounded, Conn4)
	require.NoError(t, err)

	for idx := 0; idx < g.Len(); idx++ {
		assert.Equal(t, idx, g.Index(g.Point(idx)))
	}
	pts := g.Points()
	require.Len(t, pts, 35)
	assert.Equal(t, core.NewCoordinate(0, 0), pts[0])
	assert.Equal(t, core.NewCoordinate(6, 4), pts[34])
}

func TestGridNeighbors(t *testing.T) {
	tests := []struct {
		name     string
		topology Topology
		conn     Connectivity
		at       core.Coordinate
		expected []core.Coordinate
	}{
		{
			name: "Bounded4Corner", topology: Bounded, conn: Conn4,
			at:       core.NewCoordinate(0, 0),
			expected: coords([2]int{1, 0}, [2]int{0, 1}),
		},
		{
			name: "Bounded4Middle", topology: Bounded, conn: Conn4,
			at:       core.NewCoordinate(2, 2),
			expected: coords([2]int{2, 1}, [2]int{3, 2}, [2]int{2, 3}, [2]int{1, 2}),
		},
		{
			name: "Toroidal4Corner", topology: Toroidal, conn: Conn4,
			at:       core.NewCoordinate(0, 0),
			expected: coords([2]int{0, 4}, [2]int{1, 0}, [2]int{0, 1}, [2]int{4, 0}),
		},
		{
			name: "Bounded8Corner", topology: Bounded, conn: Conn8,
			at:       core.NewCoordinate(4, 4),
			expected: coords([2]int{4, 3}, [2]int{3, 4}, [2]int{3, 3}),
		},
		{
			name: "HexEvenRow", topology: Bounded, conn: Conn6,
			at:       core.NewCoordinate(2, 2),
			expected: coords([2]int{1, 2}, [2]int{3, 2}, [2]int{1, 1}, [2]int{2, 1}, [2]int{1, 3}, [2]int{2, 3}),
		},
		{
			name: "HexOddRow", topology: Bounded, conn: Conn6,
			at:       core.NewCoordinate(2, 1),
			expected: coords([2]int{1, 1}, [2]int{3, 1}, [2]int{2, 0}, [2]int{3, 0}, [2]int{2, 2}, [2]int{3, 2}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(core.NewSize(5, 5), tt.topology, tt.conn)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, g.Neighbors(tt.at, nil))
		})
	}
}

func TestGridHexTorusSeam(t *testing.T) {
	g, err := NewGrid(core.NewSize(6, 4), Toroidal, Conn6)
	require.NoError(t, err)

	// row 0 is even, so the row above it (3) must be odd and shifted right
	assert.Equal(t,
		coords([2]int{5, 0}, [2]int{1, 0}, [2]int{5, 3}, [2]int{0, 3}, [2]int{5, 1}, [2]int{0, 1}),
		g.Neighbors(core.NewCoordinate(0, 0), nil))
	assert.Equal(t,
		coords([2]int{4, 3}, [2]int{0, 3}, [2]int{5, 2}, [2]int{0, 2}, [2]int{5, 0}, [2]int{0, 0}),
		g.Neighbors(core.NewCoordinate(5, 3), nil))
}

func TestGridNeighborsAreMutual(t *testing.T) {
	tests := []struct {
		name     string
		size     core.Size
		topology Topology
		conn     Connectivity
	}{
		{"Bounded4", core.NewSize(5, 5), Bounded, Conn4},
		{"Bounded6", core.NewSize(5, 5), Bounded, Conn6},
		{"Bounded6EvenHeight", core.NewSize(6, 4), Bounded, Conn6},
		{"Bounded8", core.NewSize(5, 5), Bounded, Conn8},
		{"Toroidal4", core.NewSize(5, 5), Toroidal, Conn4},
		{"Toroidal6", core.NewSize(6, 4), Toroidal, Conn6},
		{"Toroidal6OddWidth", core.NewSize(5, 6), Toroidal, Conn6},
		{"Toroidal8", core.NewSize(5, 5), Toroidal, Conn8},
		{"Toroidal6Narrow", core.NewSize(2, 2), Toroidal, Conn6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(tt.size, tt.topology, tt.conn)
			require.NoError(t, err)

			for _, c := range g.Points() {
				for _, n := range g.Neighbors(c, nil) {
					assert.Contains(t, g.Neighbors(n, nil), c, "%s -> %s is one-way", c, n)
				}
			}
		})
	}
}

func TestParseTopology(t *testing.T) {
	topo, err := ParseTopology("toroidal")
	require.NoError(t, err)
	assert.Equal(t, Toroidal, topo)

	topo, err = ParseTopology("")
	require.NoError(t, err)
	assert.Equal(t, Bounded, topo)

	_, err = ParseTopology("hexagonal")
	assert.Error(t, err)
	assert.Equal(t, "toroidal", Toroidal.String())
}
