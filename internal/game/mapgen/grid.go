package mapgen

import (
	"fmt"

	"github.com/mitchelldurbincs/GeneralsMapGen/internal/common"
	"github.com/mitchelldurbincs/GeneralsMapGen/internal/game/core"
)

// Topology decides what happens to neighbour lookups at the map edge.
type Topology int

const (
	// Bounded drops neighbours outside the grid.
	Bounded Topology = iota
	// Toroidal wraps both axes, so every cell has a full neighbourhood.
	Toroidal
)

func (t Topology) String() string {
	switch t {
	case Bounded:
		return "bounded"
	case Toroidal:
		return "toroidal"
	default:
		return fmt.Sprintf("Topology(%d)", int(t))
	}
}

// ParseTopology converts a config value into a Topology.
func ParseTopology(s string) (Topology, error) {
	switch s {
	case "bounded", "":
		return Bounded, nil
	case "toroidal", "torus":
		return Toroidal, nil
	default:
		return Bounded, fmt.Errorf("mapgen: unknown topology %q", s)
	}
}

// Connectivity selects which cells count as adjacent.
type Connectivity int

const (
	// Conn4 uses N, E, S, W.
	Conn4 Connectivity = 4
	// Conn6 uses the six neighbours of an offset-row hex grid (odd rows shifted right).
	Conn6 Connectivity = 6
	// Conn8 adds the four diagonals to Conn4.
	Conn8 Connectivity = 8
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	// hex neighbours for even and odd rows
	offsets6Even = [][2]int{{-1, 0}, {1, 0}, {-1, -1}, {0, -1}, {-1, 1}, {0, 1}}
	offsets6Odd  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {1, -1}, {0, 1}, {1, 1}}
)

// Grid describes the size and addressing rules of a map. It carries no terrain.
type Grid struct {
	Size     core.Size
	Topology Topology
	Conn     Connectivity
}

// NewGrid validates the dimensions and returns a grid.
func NewGrid(size core.Size, topology Topology, conn Connectivity) (Grid, error) {
	if size.W <= 0 || size.H <= 0 {
		return Grid{}, fmt.Errorf("mapgen: grid %s: %w", size, core.ErrInvalidSize)
	}
	switch conn {
	case Conn4, Conn6, Conn8:
	default:
		return Grid{}, fmt.Errorf("mapgen: unsupported connectivity %d", conn)
	}
	// Row parity picks the hex offsets, so wrapping an odd height would pair
	// two even rows across the seam and leave one-way neighbours.
	if topology == Toroidal && conn == Conn6 && size.H%2 == 1 {
		return Grid{}, fmt.Errorf("mapgen: toroidal hex grid %s needs an even height: %w", size, core.ErrInvalidSize)
	}
	return Grid{Size: size, Topology: topology, Conn: conn}, nil
}

// Len returns the number of cells.
func (g Grid) Len() int { return g.Size.Area() }

// Index maps an in-bounds coordinate to its row-major linear index.
func (g Grid) Index(c core.Coordinate) int { return c.ToIndex(g.Size.W) }

// Point maps a linear index back to a coordinate.
func (g Grid) Point(idx int) core.Coordinate { return core.FromIndex(idx, g.Size.W) }

// Contains reports whether c is an in-bounds coordinate of the grid.
func (g Grid) Contains(c core.Coordinate) bool { return g.Size.Contains(c) }

// MaxDistance is an upper bound for every finite grid-step distance on the grid.
func (g Grid) MaxDistance() uint32 { return uint32(g.Size.W + g.Size.H) }

// Points returns every coordinate of the grid in row-major order.
func (g Grid) Points() Region {
	pts := make(Region, 0, g.Len())
	for idx := 0; idx < g.Len(); idx++ {
		pts = append(pts, g.Point(idx))
	}
	return pts
}

func (g Grid) offsets(y int) [][2]int {
	switch g.Conn {
	case Conn8:
		return offsets8
	case Conn6:
		if common.Abs(y)%2 == 1 {
			return offsets6Odd
		}
		return offsets6Even
	default:
		return offsets4
	}
}

// Neighbors appends the neighbours of c to buf and returns it. Passing a reused
// buffer keeps the traversal loops allocation free.
func (g Grid) Neighbors(c core.Coordinate, buf []core.Coordinate) []core.Coordinate {
	buf = buf[:0]
	for _, d := range g.offsets(c.Y) {
		n := core.Coordinate{X: c.X + d[0], Y: c.Y + d[1]}
		if g.Topology == Toroidal {
			n.X = common.Wrap(n.X, g.Size.W)
			n.Y = common.Wrap(n.Y, g.Size.H)
			if n == c {
				continue
			}
		} else if !g.Contains(n) {
			continue
		}
		buf = append(buf, n)
	}
	return buf
}
