package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/GeneralsMapGen/internal/common"
	"github.com/mitchelldurbincs/GeneralsMapGen/internal/game/core"
	"github.com/mitchelldurbincs/GeneralsMapGen/internal/testutil"
)

type metric func(g Grid, a, b core.Coordinate) uint32

func manhattan(_ Grid, a, b core.Coordinate) uint32 {
	return uint32(common.Abs(a.X-b.X) + common.Abs(a.Y-b.Y))
}

func wrappedManhattan(g Grid, a, b core.Coordinate) uint32 {
	dx := common.Abs(a.X - b.X)
	dy := common.Abs(a.Y - b.Y)
	return uint32(min(dx, g.Size.W-dx) + min(dy, g.Size.H-dy))
}

func chebyshev(_ Grid, a, b core.Coordinate) uint32 {
	return uint32(max(common.Abs(a.X-b.X), common.Abs(a.Y-b.Y)))
}

func wrappedChebyshev(g Grid, a, b core.Coordinate) uint32 {
	dx := common.Abs(a.X - b.X)
	dy := common.Abs(a.Y - b.Y)
	return uint32(max(min(dx, g.Size.W-dx), min(dy, g.Size.H-dy)))
}

// hexDistance converts odd-shifted offset rows to cube coordinates.
func hexDistance(_ Grid, a, b core.Coordinate) uint32 {
	cube := func(c core.Coordinate) (int, int) {
		return c.X - (c.Y-(c.Y&1))/2, c.Y
	}
	aq, ar := cube(a)
	bq, br := cube(b)
	dq, dr := aq-bq, ar-br
	return uint32((common.Abs(dq) + common.Abs(dr) + common.Abs(dq+dr)) / 2)
}

// wrappedHexDistance takes the nearest periodic image of b. The height is even,
// so shifting by whole heights keeps the row parity.
func wrappedHexDistance(g Grid, a, b core.Coordinate) uint32 {
	best := Unreachable
	for kx := -2; kx <= 2; kx++ {
		for ky := -2; ky <= 2; ky++ {
			img := core.Coordinate{X: b.X + kx*g.Size.W, Y: b.Y + ky*g.Size.H}
			best = min(best, hexDistance(g, a, img))
		}
	}
	return best
}

func TestDistancesToMatchesBruteForce(t *testing.T) {
	tests := []struct {
		name     string
		topology Topology
		conn     Connectivity
		metric   metric
	}{
		{"BoundedManhattan", Bounded, Conn4, manhattan},
		{"ToroidalManhattan", Toroidal, Conn4, wrappedManhattan},
		{"BoundedChebyshev", Bounded, Conn8, chebyshev},
		{"ToroidalChebyshev", Toroidal, Conn8, wrappedChebyshev},
		{"BoundedHex", Bounded, Conn6, hexDistance},
		{"ToroidalHex", Toroidal, Conn6, wrappedHexDistance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrid(core.NewSize(11, 8), tt.topology, tt.conn)
			require.NoError(t, err)

			rng := testutil.NewTestRNG(99)
			seeds := Region{}.Set()
			for seeds.Size() < 4 {
				seeds.Put(g.Point(rng.Intn(g.Len())))
			}

			field := DistancesTo(g, seeds.Has)
			require.Equal(t, g.Len(), field.Len())
			for _, c := range g.Points() {
				want := Unreachable
				seeds.Each(func(s core.Coordinate) {
					want = min(want, tt.metric(g, c, s))
				})
				assert.Equal(t, want, field.At(c), "distance at %s", c)
			}
		})
	}
}

func TestDistancesToNoSeeds(t *testing.T) {
	g, err := NewGrid(core.NewSize(6, 4), Bounded, Conn4)
	require.NoError(t, err)

	field := DistancesTo(g, func(core.Coordinate) bool { return false })
	for _, c := range g.Points() {
		assert.Equal(t, Unreachable, field.At(c))
	}
	assert.Greater(t, Unreachable, g.MaxDistance())
}

func TestDistancesToPoints(t *testing.T) {
	g, err := NewGrid(core.NewSize(5, 1), Bounded, Conn4)
	require.NoError(t, err)

	seeds := []core.Coordinate{
		core.InvalidCoordinate,
		core.NewCoordinate(7, 0),
		core.NewCoordinate(1, 0),
		core.NewCoordinate(1, 0),
	}
	field := DistancesToPoints(g, seeds)
	for x, want := range []uint32{1, 0, 1, 2, 3} {
		assert.Equal(t, want, field.At(core.NewCoordinate(x, 0)))
	}
}

func TestDistancesToWithBorder(t *testing.T) {
	t.Run("BoundedEdgeCountsAsObstacle", func(t *testing.T) {
		g, err := NewGrid(core.NewSize(7, 5), Bounded, Conn4)
		require.NoError(t, err)

		field := DistancesToWithBorder(g, func(core.Coordinate) bool { return false })
		for _, c := range g.Points() {
			want := uint32(min(c.X+1, c.Y+1, g.Size.W-c.X, g.Size.H-c.Y))
			assert.Equal(t, want, field.At(c), "distance at %s", c)
		}
	})

	t.Run("ObstacleStillWins", func(t *testing.T) {
		g, err := NewGrid(core.NewSize(7, 7), Bounded, Conn4)
		require.NoError(t, err)

		center := core.NewCoordinate(3, 3)
		field := DistancesToWithBorder(g, func(c core.Coordinate) bool { return c == center })
		assert.Equal(t, uint32(0), field.At(center))
		assert.Equal(t, uint32(1), field.At(core.NewCoordinate(3, 2)))
		assert.Equal(t, uint32(2), field.At(core.NewCoordinate(2, 2)))
		assert.Equal(t, uint32(1), field.At(core.NewCoordinate(0, 3)))
	})

	t.Run("ToroidalHasNoEdge", func(t *testing.T) {
		g, err := NewGrid(core.NewSize(4, 4), Toroidal, Conn4)
		require.NoError(t, err)

		field := DistancesToWithBorder(g, func(core.Coordinate) bool { return false })
		assert.Equal(t, Unreachable, field.Min(g.Points()))
	})
}

func TestDistancesAreSymmetric(t *testing.T) {
	for _, topology := range []Topology{Bounded, Toroidal} {
		for _, conn := range []Connectivity{Conn4, Conn6, Conn8} {
			g, err := NewGrid(core.NewSize(7, 6), topology, conn)
			require.NoError(t, err)

			fields := make([]*DistanceField, g.Len())
			for idx := range fields {
				fields[idx] = DistancesToPoints(g, []core.Coordinate{g.Point(idx)})
			}
			for _, a := range g.Points() {
				for _, b := range g.Points() {
					assert.Equal(t, fields[g.Index(a)].At(b), fields[g.Index(b)].At(a),
						"%s %d-conn: d(%s, %s)", topology, conn, a, b)
				}
			}
		}
	}
}

func TestDistanceFieldMinMax(t *testing.T) {
	g, err := NewGrid(core.NewSize(5, 1), Bounded, Conn4)
	require.NoError(t, err)
	field := DistancesToPoints(g, []core.Coordinate{core.NewCoordinate(0, 0)})

	area := Region(coords([2]int{1, 0}, [2]int{3, 0}))
	assert.Equal(t, uint32(3), field.Max(area))
	assert.Equal(t, uint32(1), field.Min(area))
	assert.Equal(t, uint32(0), field.Max(Region{}))
	assert.Equal(t, Unreachable, field.Min(Region{}))
}
