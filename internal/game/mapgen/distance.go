package mapgen

import (
	"math"

	"github.com/mitchelldurbincs/GeneralsMapGen/internal/game/core"
)

// Unreachable marks cells with no path to any seed. It is larger than any finite
// distance on a grid, which is bounded by W+H.
const Unreachable uint32 = math.MaxUint32

// DistanceField stores one grid-step distance per cell.
type DistanceField struct {
	grid   Grid
	values []uint32
}

func newDistanceField(g Grid) *DistanceField {
	values := make([]uint32, g.Len())
	for i := range values {
		values[i] = Unreachable
	}
	return &DistanceField{grid: g, values: values}
}

// At returns the distance stored for c.
func (f *DistanceField) At(c core.Coordinate) uint32 {
	return f.values[f.grid.Index(c)]
}

// Len returns the number of cells in the field.
func (f *DistanceField) Len() int { return len(f.values) }

// Max returns the largest value inside area, or 0 for an empty area.
func (f *DistanceField) Max(area Region) uint32 {
	var best uint32
	for _, c := range area {
		if d := f.At(c); d > best {
			best = d
		}
	}
	return best
}

// Min returns the smallest value inside area, or Unreachable for an empty area.
func (f *DistanceField) Min(area Region) uint32 {
	best := Unreachable
	for _, c := range area {
		if d := f.At(c); d < best {
			best = d
		}
	}
	return best
}

// DistancesTo computes, for every cell, the distance to the nearest cell matching pred.
func DistancesTo(g Grid, pred func(core.Coordinate) bool) *DistanceField {
	var seeds []core.Coordinate
	for idx := 0; idx < g.Len(); idx++ {
		if c := g.Point(idx); pred(c) {
			seeds = append(seeds, c)
		}
	}
	return DistancesToPoints(g, seeds)
}

// DistancesToPoints computes, for every cell, the distance to the nearest seed.
// Invalid or out-of-bounds seeds are ignored.
func DistancesToPoints(g Grid, seeds []core.Coordinate) *DistanceField {
	f := newDistanceField(g)
	queue := make([]core.Coordinate, 0, len(seeds))
	for _, s := range seeds {
		if !g.Contains(s) || f.values[g.Index(s)] == 0 {
			continue
		}
		f.values[g.Index(s)] = 0
		queue = append(queue, s)
	}
	f.propagate(queue)
	return f
}

// DistancesToWithBorder is DistancesTo where, on a bounded grid, the area outside
// the map also counts as matching: edge cells are at most one step away.
func DistancesToWithBorder(g Grid, pred func(core.Coordinate) bool) *DistanceField {
	f := newDistanceField(g)
	var queue []core.Coordinate
	for idx := 0; idx < g.Len(); idx++ {
		if c := g.Point(idx); pred(c) {
			f.values[idx] = 0
			queue = append(queue, c)
		}
	}
	if g.Topology == Bounded {
		// queued after every 0 so the queue stays sorted by distance
		for idx := 0; idx < g.Len(); idx++ {
			c := g.Point(idx)
			if f.values[idx] != 0 && isEdge(g, c) {
				f.values[idx] = 1
				queue = append(queue, c)
			}
		}
	}
	f.propagate(queue)
	return f
}

func isEdge(g Grid, c core.Coordinate) bool {
	return c.X == 0 || c.Y == 0 || c.X == g.Size.W-1 || c.Y == g.Size.H-1
}

// propagate runs the breadth-first expansion. The queue must be sorted by distance;
// cells then enter it in non-decreasing order, so the first assignment is final.
func (f *DistanceField) propagate(queue []core.Coordinate) {
	g := f.grid
	var nbuf []core.Coordinate
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		next := f.values[g.Index(cur)] + 1
		nbuf = g.Neighbors(cur, nbuf)
		for _, n := range nbuf {
			ni := g.Index(n)
			if f.values[ni] != Unreachable {
				continue
			}
			f.values[ni] = next
			queue = append(queue, n)
		}
	}
}
