package mapgen

import (
	"math/rand"

	"github.com/mitchelldurbincs/GeneralsMapGen/internal/game/core"
)

// RandomUtility wraps the injected generator used by map generation. Callers own the
// *rand.Rand, so seeding it identically reproduces a run.
type RandomUtility struct {
	rng *rand.Rand
}

// NewRandomUtility wraps rng. It panics on a nil generator.
func NewRandomUtility(rng *rand.Rand) *RandomUtility {
	if rng == nil {
		panic("mapgen: RandomUtility requires a non-nil *rand.Rand")
	}
	return &RandomUtility{rng: rng}
}

// Index returns a random index in [0, n).
func (r *RandomUtility) Index(n int) int {
	return r.rng.Intn(n)
}

// IntBetween returns a random integer in [lo, hi].
func (r *RandomUtility) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Intn(hi-lo+1)
}

// Point returns a random in-bounds coordinate of g.
func (r *RandomUtility) Point(g Grid) core.Coordinate {
	return g.Point(r.rng.Intn(g.Len()))
}

// Item returns a random element of region, or InvalidCoordinate if it is empty.
func (r *RandomUtility) Item(region Region) core.Coordinate {
	if len(region) == 0 {
		return core.InvalidCoordinate
	}
	return region[r.rng.Intn(len(region))]
}
