package mapgen

import (
	"fmt"
	"slices"
	"sort"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/zyedidia/generic/mapset"

	"github.com/mitchelldurbincs/GeneralsMapGen/internal/common"
	"github.com/mitchelldurbincs/GeneralsMapGen/internal/game/core"
)

// SelectorParams holds the tunables of the HQ candidate selector.
type SelectorParams struct {
	// MinObstacleDistance and MaxObstacleDistance bound the obstacle distance a
	// candidate must keep. The required distance is the largest obstacle distance
	// found in the area, clamped into this band.
	MinObstacleDistance uint32
	MaxObstacleDistance uint32
	// MountainTolerance is the half-width of the accepted mountain distance band.
	MountainTolerance uint32
	// MinPlayerDistance rejects candidates closer than this to an assigned HQ.
	// Zero only rejects occupied cells.
	MinPlayerDistance uint32
}

// DefaultSelectorParams returns the tuned defaults: obstacle band [2, 4], mountain tolerance 5.
func DefaultSelectorParams() SelectorParams {
	return SelectorParams{
		MinObstacleDistance: 2,
		MaxObstacleDistance: 4,
		MountainTolerance:   5,
	}
}

// selector evaluates HQ candidates within one area. The terrain derived fields do not
// change between players, so they are computed once.
type selector struct {
	grid   Grid
	area   Region
	params SelectorParams

	obstacleDistance *DistanceField
	mountainDistance *DistanceField

	minObstacleDistance  uint32
	minMountainDistance  uint32
	maxMountainDistance  uint32
	noMountainsAvailable bool
}

func newSelector(m *Map, area Region, playerDistanceToMountains uint32, params SelectorParams) (*selector, error) {
	if len(area) == 0 {
		return nil, ErrNoValidRegion
	}
	for _, c := range area {
		if !m.Grid.Contains(c) {
			return nil, fmt.Errorf("mapgen: area point %s outside %s grid: %w", c, m.Grid.Size, core.ErrInvalidCoordinates)
		}
	}

	s := &selector{
		grid:             m.Grid,
		area:             area,
		params:           params,
		obstacleDistance: DistancesToWithBorder(m.Grid, m.IsObstacle),
		mountainDistance: DistancesTo(m.Grid, m.IsMountain),
	}
	s.minObstacleDistance = common.Clamp(s.obstacleDistance.Max(area), params.MinObstacleDistance, params.MaxObstacleDistance)
	s.minMountainDistance = max(s.mountainDistance.Min(area), playerDistanceToMountains)
	s.maxMountainDistance = m.Grid.MaxDistance()
	// No cell can satisfy the mountain band, so the criterion is dropped.
	s.noMountainsAvailable = s.minMountainDistance > s.maxMountainDistance
	return s, nil
}

// candidates returns all admissible positions for the next HQ given the current
// table, best first. Quality is the distance to the nearest assigned HQ.
func (s *selector) candidates(table []core.Coordinate) Region {
	hqs := validHQs(table)
	quality := DistancesToPoints(s.grid, hqs)

	// Cells that already hold an HQ have quality 0 and are never candidates.
	minQuality := max(s.params.MinPlayerDistance, 1)
	admissible := make([]bool, len(s.area))
	for i, c := range s.area {
		admissible[i] = s.obstacleDistance.At(c) >= s.minObstacleDistance &&
			(len(hqs) == 0 || quality.At(c) >= minQuality)
	}

	var positions Region
	allowed := s.minMountainDistance
	for {
		for i, c := range s.area {
			if !admissible[i] {
				continue
			}
			if s.noMountainsAvailable || common.AbsDiff(s.mountainDistance.At(c), allowed) < s.params.MountainTolerance {
				positions = append(positions, c)
			}
		}
		if len(positions) > 0 {
			break
		}
		if allowed < s.maxMountainDistance {
			allowed++
			continue
		}
		// fall back to ignoring the desired mountain distance
		for i, c := range s.area {
			if admissible[i] {
				positions = append(positions, c)
			}
		}
		break
	}

	sort.SliceStable(positions, func(i, j int) bool {
		return quality.At(positions[i]) > quality.At(positions[j])
	})
	return positions
}

// FindHqPositions returns every suitable HQ position within area, highest quality
// first. Good positions sit well inside buildable land, keep the requested distance
// to mountains and are far away from the HQs already in m.HQs. An empty area is
// rejected with ErrNoValidRegion; an empty result means no position qualifies.
func FindHqPositions(m *Map, area Region, playerDistanceToMountains uint32, params SelectorParams) (Region, error) {
	s, err := newSelector(m, area, playerDistanceToMountains, params)
	if err != nil {
		return nil, err
	}
	return s.candidates(m.HQs), nil
}

// PlaceHeadquarter places the HQ of a single player at the best position within area.
func PlaceHeadquarter(m *Map, index int, area Region, playerDistanceToMountains uint32, params SelectorParams) error {
	if index < 0 || index >= len(m.HQs) {
		return fmt.Errorf("mapgen: player index %d: %w", index, ErrInvalidPlayerCount)
	}
	positions, err := FindHqPositions(m, area, playerDistanceToMountains, params)
	if err != nil {
		return err
	}
	if len(positions) == 0 {
		return ErrNoCandidateFound
	}
	m.HQs[index] = positions[0]
	return nil
}

// PlacementOptions configures a Placer.
type PlacementOptions struct {
	Players                   int
	PlayerDistanceToMountains uint32
	// Retries is the number of additional full attempts after the first one fails.
	Retries  int
	Selector SelectorParams
}

// DefaultPlacementOptions returns options for the given number of players with 10 retries.
func DefaultPlacementOptions(players int) PlacementOptions {
	return PlacementOptions{
		Players:  players,
		Retries:  10,
		Selector: DefaultSelectorParams(),
	}
}

// PlacementResult summarises a successful placement.
type PlacementResult struct {
	Attempts int
	AreaSize int
	HQs      []core.Coordinate
}

// Placer assigns one HQ per player, retrying whole attempts on failure.
type Placer struct {
	opts   PlacementOptions
	rnd    *RandomUtility
	logger zerolog.Logger

	onAttemptFailed func(attempt int, err error)
}

// NewPlacer creates a placer. rnd is only used to vary retry attempts.
func NewPlacer(opts PlacementOptions, rnd *RandomUtility, logger zerolog.Logger) *Placer {
	return &Placer{
		opts:   opts,
		rnd:    rnd,
		logger: logger.With().Str("component", "HQPlacer").Logger(),
	}
}

// OnAttemptFailed registers a callback invoked after every failed attempt.
func (p *Placer) OnAttemptFailed(fn func(attempt int, err error)) {
	p.onAttemptFailed = fn
}

// Place puts the HQs inside the largest connected area of the map.
func (p *Placer) Place(m *Map) (PlacementResult, error) {
	area := FindLargestConnectedArea(m)
	if len(area) == 0 {
		p.logger.Error().Msg("Map has no buildable area")
		return PlacementResult{}, &PlacementError{Stage: StageRegionAnalysis, Player: -1, Err: ErrNoValidRegion}
	}
	p.logger.Debug().Int("area_size", len(area)).Msg("Largest connected area found")
	return p.PlaceInArea(m, area)
}

// PlaceInArea puts the HQs inside area. Pass m.Grid.Points() to search the whole map.
// m.HQs is only written when every player received a position.
func (p *Placer) PlaceInArea(m *Map, area Region) (PlacementResult, error) {
	number := p.opts.Players
	if number < 0 || number > len(m.HQs) {
		return PlacementResult{}, fmt.Errorf("mapgen: %d players for %d HQ slots: %w", number, len(m.HQs), ErrInvalidPlayerCount)
	}
	if len(area) == 0 {
		return PlacementResult{}, &PlacementError{Stage: StageRegionAnalysis, Player: -1, Err: ErrNoValidRegion}
	}

	sel, err := newSelector(m, area, p.opts.PlayerDistanceToMountains, p.opts.Selector)
	if err != nil {
		return PlacementResult{}, &PlacementError{Stage: StageRegionAnalysis, Player: -1, Err: err}
	}

	retries := max(p.opts.Retries, 0)
	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		table, err := p.attempt(sel, m.HQs, number, attempt)
		if err != nil {
			lastErr = err
			p.logger.Warn().
				Err(err).
				Int("attempt", attempt).
				Int("retries", retries).
				Msg("HQ placement attempt failed")
			if p.onAttemptFailed != nil {
				p.onAttemptFailed(attempt, err)
			}
			continue
		}

		copy(m.HQs, table)
		result := PlacementResult{
			Attempts: attempt + 1,
			AreaSize: len(area),
			HQs:      slices.Clone(table[:number]),
		}
		p.logger.Info().
			Int("players", number).
			Int("attempts", result.Attempts).
			Int("area_size", result.AreaSize).
			Msg("Headquarters placed")
		return result, nil
	}

	return PlacementResult{}, &PlacementError{
		Stage:   StageRetryExhaustion,
		Player:  -1,
		Attempt: retries,
		Err:     fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, retries+1, lastErr),
	}
}

// attempt runs one full pass over all players on a copy of the HQ table.
func (p *Placer) attempt(sel *selector, current []core.Coordinate, number, attempt int) ([]core.Coordinate, error) {
	table := slices.Clone(current)
	for i := 0; i < number; i++ {
		table[i] = core.InvalidCoordinate
	}

	for player := 0; player < number; player++ {
		positions := sel.candidates(table)
		if len(positions) == 0 {
			return nil, &PlacementError{Stage: StageCandidateSelection, Player: player, Attempt: attempt, Err: ErrNoCandidateFound}
		}
		pick := positions[0]
		// Retries start from a random admissible position for the first player so
		// the greedy chain explores a different layout.
		if attempt > 0 && player == 0 && p.rnd != nil {
			pick = p.rnd.Item(positions)
		}
		table[player] = pick
		p.logger.Debug().
			Int("player", player).
			Int("attempt", attempt).
			Int("x", pick.X).
			Int("y", pick.Y).
			Int("candidates", len(positions)).
			Msg("HQ candidate chosen")
	}

	seen := mapset.New[core.Coordinate]()
	for _, c := range validHQs(table) {
		if seen.Has(c) {
			return nil, &PlacementError{
				Stage:   StageCandidateSelection,
				Player:  -1,
				Attempt: attempt,
				Err:     fmt.Errorf("%w: duplicate HQ at %s", ErrNoCandidateFound, c),
			}
		}
		seen.Put(c)
	}
	return table, nil
}

// PlaceHeadquarters places number HQs inside the largest connected area of m with
// default selector parameters.
func PlaceHeadquarters(m *Map, rnd *RandomUtility, number int, playerDistanceToMountains uint32, retries int) error {
	opts := DefaultPlacementOptions(number)
	opts.PlayerDistanceToMountains = playerDistanceToMountains
	opts.Retries = retries
	_, err := NewPlacer(opts, rnd, log.Logger).Place(m)
	return err
}
