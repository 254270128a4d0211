package testutil

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/GeneralsMapGen/internal/game/core"
)

// Fixture legend: '.' land, '~' water, 'M' mountain, '#' lava.
var fixtureTiles = map[rune]core.TerrainType{
	'.': core.TileLand,
	'~': core.TileWater,
	'M': core.TileMountain,
	'#': core.TileLava,
}

// ParseBoard builds a board from rows of fixture characters. Rows must all have
// the same length; surrounding whitespace on each row is ignored.
func ParseBoard(rows ...string) (*core.Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("testutil: board fixture has no rows")
	}
	h := len(rows)
	w := len([]rune(strings.TrimSpace(rows[0])))
	if w == 0 {
		return nil, fmt.Errorf("testutil: board fixture has empty rows")
	}

	b := core.NewBoard(w, h)
	for y, row := range rows {
		cells := []rune(strings.TrimSpace(row))
		if len(cells) != w {
			return nil, fmt.Errorf("testutil: row %d has %d cells, want %d", y, len(cells), w)
		}
		for x, r := range cells {
			typ, ok := fixtureTiles[r]
			if !ok {
				return nil, fmt.Errorf("testutil: unknown fixture tile %q at (%d,%d)", r, x, y)
			}
			b.T[b.Idx(x, y)].Type = typ
		}
	}
	return b, nil
}

// MustParseBoard is ParseBoard for fixtures known to be valid
func MustParseBoard(rows ...string) *core.Board {
	b, err := ParseBoard(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

// OpenBoard returns a board of plain land
func OpenBoard(w, h int) *core.Board {
	return core.NewBoard(w, h)
}
