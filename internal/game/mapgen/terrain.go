package mapgen

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/mitchelldurbincs/GeneralsMapGen/internal/game/core"
)

// Terrain is the per-tile query surface of the surrounding terrain model.
type Terrain interface {
	IsBuildable(c core.Coordinate) bool
	IsMountain(c core.Coordinate) bool
}

// Region is an ordered collection of grid coordinates. Order only matters for
// iteration and is stable for the lifetime of a call.
type Region []core.Coordinate

// Set returns the coordinates of the region as a set.
func (r Region) Set() mapset.Set[core.Coordinate] {
	s := mapset.New[core.Coordinate]()
	for _, c := range r {
		s.Put(c)
	}
	return s
}

// Map ties a grid to its terrain and owns the headquarters table.
type Map struct {
	Grid    Grid
	Terrain Terrain
	// HQs is indexed by player number. Unassigned entries hold core.InvalidCoordinate.
	HQs []core.Coordinate
}

// NewMap creates a map with room for maxPlayers headquarters, all unassigned.
func NewMap(grid Grid, terrain Terrain, maxPlayers int) (*Map, error) {
	if terrain == nil {
		return nil, fmt.Errorf("mapgen: terrain is required")
	}
	if maxPlayers < 0 {
		return nil, fmt.Errorf("mapgen: max players %d: %w", maxPlayers, ErrInvalidPlayerCount)
	}
	hqs := make([]core.Coordinate, maxPlayers)
	for i := range hqs {
		hqs[i] = core.InvalidCoordinate
	}
	return &Map{Grid: grid, Terrain: terrain, HQs: hqs}, nil
}

// NewMapFromBoard wraps a core.Board with the given addressing rules.
func NewMapFromBoard(b *core.Board, topology Topology, conn Connectivity, maxPlayers int) (*Map, error) {
	grid, err := NewGrid(b.Size(), topology, conn)
	if err != nil {
		return nil, err
	}
	return NewMap(grid, b, maxPlayers)
}

// IsObstacle reports whether c cannot be built on.
func (m *Map) IsObstacle(c core.Coordinate) bool {
	return !m.Terrain.IsBuildable(c)
}

// IsMountain reports whether c is a minable mountain.
func (m *Map) IsMountain(c core.Coordinate) bool {
	return m.Terrain.IsMountain(c)
}

// AssignedHQs returns the valid entries of the headquarters table.
func (m *Map) AssignedHQs() []core.Coordinate {
	return validHQs(m.HQs)
}

// HQOf returns the headquarters of a player and whether one is assigned.
func (m *Map) HQOf(player int) (core.Coordinate, bool) {
	if player < 0 || player >= len(m.HQs) || !m.HQs[player].Valid() {
		return core.InvalidCoordinate, false
	}
	return m.HQs[player], true
}

func validHQs(table []core.Coordinate) []core.Coordinate {
	hqs := make([]core.Coordinate, 0, len(table))
	for _, c := range table {
		if c.Valid() {
			hqs = append(hqs, c)
		}
	}
	return hqs
}
