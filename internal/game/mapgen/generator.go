package mapgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/GeneralsMapGen/internal/game/core"
	"github.com/mitchelldurbincs/GeneralsMapGen/internal/game/events"
	"github.com/mitchelldurbincs/GeneralsMapGen/internal/game/states"
)

// MapConfig holds configuration for map generation
type MapConfig struct {
	Width       int
	Height      int
	PlayerCount int
	Topology    Topology
	Conn        Connectivity

	NumMountainVeins int
	MinVeinLength    int
	MaxVeinLength    int
	NumLakes         int
	MaxLakeSize      int

	PlayerDistanceToMountains uint32
	Retries                   int
	Selector                  SelectorParams
}

// DefaultMapConfig returns a sensible default configuration
func DefaultMapConfig(w, h, players int) MapConfig {
	return MapConfig{
		Width:            w,
		Height:           h,
		PlayerCount:      players,
		Topology:         Bounded,
		Conn:             Conn4,
		NumMountainVeins: (w * h) / 50,
		MinVeinLength:    3,
		MaxVeinLength:    max(w/4, 3),
		NumLakes:         (w * h) / 200,
		MaxLakeSize:      12,
		Retries:          10,
		Selector:         DefaultSelectorParams(),
	}
}

// Validate checks the configuration before any generation work starts
func (c MapConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("mapgen: %dx%d: %w", c.Width, c.Height, core.ErrInvalidSize)
	}
	if c.PlayerCount < 0 {
		return fmt.Errorf("mapgen: %d players: %w", c.PlayerCount, ErrInvalidPlayerCount)
	}
	if _, err := NewGrid(core.NewSize(c.Width, c.Height), c.Topology, c.Conn); err != nil {
		return err
	}
	if c.MinVeinLength < 0 || c.MaxVeinLength < c.MinVeinLength {
		return fmt.Errorf("mapgen: vein length range [%d, %d] is invalid", c.MinVeinLength, c.MaxVeinLength)
	}
	if c.Selector.MinObstacleDistance > c.Selector.MaxObstacleDistance {
		return fmt.Errorf("mapgen: obstacle distance band [%d, %d] is invalid",
			c.Selector.MinObstacleDistance, c.Selector.MaxObstacleDistance)
	}
	return nil
}

// GeneratedMap is the output of one generation run
type GeneratedMap struct {
	RunID     string
	Board     *core.Board
	Map       *Map
	Placement PlacementResult
	Phases    []states.Transition
}

// Generator handles map generation with deterministic RNG
type Generator struct {
	config    MapConfig
	rnd       *RandomUtility
	logger    zerolog.Logger
	publisher events.Publisher
}

// NewGenerator creates a new map generator
func NewGenerator(config MapConfig, rng *rand.Rand) *Generator {
	return &Generator{
		config: config,
		rnd:    NewRandomUtility(rng),
		logger: log.With().Str("component", "MapGenerator").Logger(),
	}
}

// SetLogger replaces the generator logger
func (g *Generator) SetLogger(logger zerolog.Logger) {
	g.logger = logger.With().Str("component", "MapGenerator").Logger()
}

// SetEventPublisher makes the generator publish progress events
func (g *Generator) SetEventPublisher(p events.Publisher) {
	g.publisher = p
}

func (g *Generator) publish(e events.Event) {
	if g.publisher != nil {
		g.publisher.Publish(e)
	}
}

// GenerateMap creates the terrain and places one headquarters per player
func (g *Generator) GenerateMap() (*GeneratedMap, error) {
	if err := g.config.Validate(); err != nil {
		return nil, err
	}
	runID := uuid.NewString()
	logger := g.logger.With().Str("run_id", runID).Logger()
	phases := states.NewMachine(runID, g.publisher, logger)

	board := core.NewBoard(g.config.Width, g.config.Height)
	m, err := NewMapFromBoard(board, g.config.Topology, g.config.Conn, g.config.PlayerCount)
	if err != nil {
		return nil, g.fail(runID, phases, logger, StageTerrain, err)
	}

	if err := phases.TransitionTo(states.PhaseTerrain, "generating terrain"); err != nil {
		return nil, g.fail(runID, phases, logger, StageTerrain, err)
	}
	g.placeLakes(board, m.Grid)
	g.placeMountains(board, m.Grid)
	g.publish(events.NewMapGeneratedEvent(runID, board.Size(), g.config.Topology.String(),
		board.Count(core.TileMountain), board.Count(core.TileWater)))
	logger.Debug().
		Int("width", board.W).
		Int("height", board.H).
		Int("mountains", board.Count(core.TileMountain)).
		Int("water", board.Count(core.TileWater)).
		Msg("Terrain generated")

	if err := phases.TransitionTo(states.PhaseRegionAnalysis, "terrain generated"); err != nil {
		return nil, g.fail(runID, phases, logger, StageRegionAnalysis, err)
	}
	areas := ConnectedAreas(m)
	area := LargestArea(areas)
	g.publish(events.NewRegionAnalyzedEvent(runID, len(areas), len(area)))
	if len(area) == 0 {
		err := &PlacementError{Stage: StageRegionAnalysis, Player: -1, Err: ErrNoValidRegion}
		return nil, g.fail(runID, phases, logger, StageRegionAnalysis, err)
	}

	opts := PlacementOptions{
		Players:                   g.config.PlayerCount,
		PlayerDistanceToMountains: g.config.PlayerDistanceToMountains,
		Retries:                   g.config.Retries,
		Selector:                  g.config.Selector,
	}
	placer := NewPlacer(opts, g.rnd, logger)
	placer.OnAttemptFailed(func(attempt int, err error) {
		g.publish(events.NewPlacementAttemptFailedEvent(runID, attempt, err.Error()))
	})

	if err := phases.TransitionTo(states.PhasePlacement, "largest area found"); err != nil {
		return nil, g.fail(runID, phases, logger, StageCandidateSelection, err)
	}
	result, err := placer.PlaceInArea(m, area)
	if err != nil {
		return nil, g.fail(runID, phases, logger, StageCandidateSelection, err)
	}

	for player, hq := range result.HQs {
		g.publish(events.NewHeadquartersPlacedEvent(runID, player, hq, result.Attempts))
	}
	if err := phases.TransitionTo(states.PhaseComplete, "headquarters placed"); err != nil {
		return nil, g.fail(runID, phases, logger, StageCandidateSelection, err)
	}

	return &GeneratedMap{
		RunID:     runID,
		Board:     board,
		Map:       m,
		Placement: result,
		Phases:    phases.History(),
	}, nil
}

// fail moves the run to PhaseFailed, publishes placement.failed and wraps err.
// A PlacementError carries its own stage, which wins over stage.
func (g *Generator) fail(runID string, phases *states.Machine, logger zerolog.Logger, stage Stage, err error) error {
	var perr *PlacementError
	if errors.As(err, &perr) {
		stage = perr.Stage
	}
	if ferr := phases.Fail(err); ferr != nil {
		logger.Warn().Err(ferr).Str("phase", phases.Current().String()).Msg("Could not mark run as failed")
	}
	g.publish(events.NewPlacementFailedEvent(runID, string(stage), err.Error()))
	logger.Error().Err(err).Str("stage", string(stage)).Msg("Map generation failed")
	return fmt.Errorf("map generation failed: %w", err)
}

// placeMountains draws random-walk mountain veins
func (g *Generator) placeMountains(b *core.Board, grid Grid) {
	var nbuf []core.Coordinate
	for v := 0; v < g.config.NumMountainVeins; v++ {
		length := g.rnd.IntBetween(g.config.MinVeinLength, g.config.MaxVeinLength)
		c := g.rnd.Point(grid)
		for i := 0; i < length; i++ {
			b.SetType(c, core.TileMountain)
			nbuf = grid.Neighbors(c, nbuf)
			if len(nbuf) == 0 {
				break
			}
			c = nbuf[g.rnd.Index(len(nbuf))]
		}
	}
}

// placeLakes grows water blobs from random seeds
func (g *Generator) placeLakes(b *core.Board, grid Grid) {
	if g.config.MaxLakeSize <= 0 {
		return
	}
	var nbuf []core.Coordinate
	for l := 0; l < g.config.NumLakes; l++ {
		size := g.rnd.IntBetween(1, g.config.MaxLakeSize)
		frontier := Region{g.rnd.Point(grid)}
		for placed := 0; placed < size && len(frontier) > 0; {
			i := g.rnd.Index(len(frontier))
			c := frontier[i]
			frontier[i] = frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]

			if b.GetTile(c.X, c.Y).IsWater() {
				continue
			}
			b.SetType(c, core.TileWater)
			placed++
			nbuf = grid.Neighbors(c, nbuf)
			frontier = append(frontier, nbuf...)
		}
	}
}
