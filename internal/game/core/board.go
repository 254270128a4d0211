package core

// TerrainType classifies a single map cell.
type TerrainType uint8

const (
	TileLand     TerrainType = iota // buildable ground
	TileWater                       // impassable, not buildable
	TileMountain                    // minable, not buildable
	TileLava                        // impassable, not buildable
)

// Tile represents a single cell on the map.
type Tile struct {
	Type TerrainType
}

func (t *Tile) IsLand() bool     { return t.Type == TileLand }
func (t *Tile) IsWater() bool    { return t.Type == TileWater }
func (t *Tile) IsMountain() bool { return t.Type == TileMountain }

// IsBuildable reports whether a headquarters or building may stand on the tile.
func (t *Tile) IsBuildable() bool { return t.Type == TileLand }

// Board is the in-memory terrain model of a generated map.
type Board struct {
	W, H int
	T    []Tile // length = W*H (row-major)
}

func NewBoard(w, h int) *Board {
	b := &Board{W: w, H: h, T: make([]Tile, w*h)}
	for i := range b.T {
		// All tiles start as plain land
		b.T[i].Type = TileLand
	}
	return b
}

func (b *Board) Idx(x, y int) int      { return y*b.W + x }
func (b *Board) XY(idx int) (int, int) { return idx % b.W, idx / b.W }

// Size returns the board dimensions
func (b *Board) Size() Size { return Size{W: b.W, H: b.H} }

// InBounds checks if coordinates are within board boundaries
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// GetTile safely returns a tile pointer if coordinates are valid, nil otherwise
func (b *Board) GetTile(x, y int) *Tile {
	if !b.InBounds(x, y) {
		return nil
	}
	return &b.T[b.Idx(x, y)]
}

// SetType sets the terrain of the tile at c. Out-of-bounds coordinates are ignored.
func (b *Board) SetType(c Coordinate, typ TerrainType) {
	if t := b.GetTile(c.X, c.Y); t != nil {
		t.Type = typ
	}
}

// IsBuildable reports whether c is in bounds and buildable.
func (b *Board) IsBuildable(c Coordinate) bool {
	t := b.GetTile(c.X, c.Y)
	return t != nil && t.IsBuildable()
}

// IsMountain reports whether c is in bounds and a minable mountain.
func (b *Board) IsMountain(c Coordinate) bool {
	t := b.GetTile(c.X, c.Y)
	return t != nil && t.IsMountain()
}

// Count returns the number of tiles of the given type
func (b *Board) Count(typ TerrainType) int {
	n := 0
	for i := range b.T {
		if b.T[i].Type == typ {
			n++
		}
	}
	return n
}
