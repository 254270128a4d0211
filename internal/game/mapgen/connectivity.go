package mapgen

import "github.com/mitchelldurbincs/GeneralsMapGen/internal/game/core"

// ConnectedAreas partitions the non-obstacle cells of the map into connected regions.
// Regions are returned in the scan order of their first cell; cells inside a region are
// in BFS order starting from that cell.
//
// Time:   O(W·H·d), d = number of neighbours per cell.
// Memory: O(W·H) for the visited flags and output.
func ConnectedAreas(m *Map) []Region {
	g := m.Grid
	seen := make([]bool, g.Len())
	var areas []Region
	var nbuf []core.Coordinate

	for i0 := 0; i0 < g.Len(); i0++ {
		if seen[i0] {
			continue
		}
		start := g.Point(i0)
		if m.IsObstacle(start) {
			continue
		}

		queue := []core.Coordinate{start}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			nbuf = g.Neighbors(queue[qi], nbuf)
			for _, n := range nbuf {
				ni := g.Index(n)
				if seen[ni] || m.IsObstacle(n) {
					continue
				}
				seen[ni] = true
				queue = append(queue, n)
			}
		}
		areas = append(areas, Region(queue))
	}
	return areas
}

// FindLargestConnectedArea returns the largest connected region of buildable cells.
// When several regions share the largest size, the one whose first cell comes first in
// row-major order wins. The result is empty if every cell is an obstacle.
func FindLargestConnectedArea(m *Map) Region {
	return LargestArea(ConnectedAreas(m))
}

// LargestArea returns the biggest region, the earliest one on ties.
func LargestArea(areas []Region) Region {
	var largest Region
	for _, area := range areas {
		if len(area) > len(largest) {
			largest = area
		}
	}
	if largest == nil {
		return Region{}
	}
	return largest
}
