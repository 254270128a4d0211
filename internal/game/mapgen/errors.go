package mapgen

import (
	"errors"
	"fmt"
)

var (
	// ErrNoValidRegion means there is no area to search: every cell is an obstacle or
	// the caller supplied an empty area.
	ErrNoValidRegion = errors.New("mapgen: no valid region to place headquarters in")
	// ErrNoCandidateFound means the selector found no admissible position for a player.
	ErrNoCandidateFound = errors.New("mapgen: could not find any valid HQ position")
	// ErrRetriesExhausted means every placement attempt failed.
	ErrRetriesExhausted = errors.New("mapgen: headquarters placement retries exhausted")
	// ErrInvalidPlayerCount means the requested number of players does not fit the HQ table.
	ErrInvalidPlayerCount = errors.New("mapgen: invalid player count")
)

// Stage names the part of the generation pipeline that failed.
type Stage string

const (
	StageTerrain            Stage = "terrain generation"
	StageRegionAnalysis     Stage = "region analysis"
	StageCandidateSelection Stage = "candidate selection"
	StageRetryExhaustion    Stage = "retry exhaustion"
)

// PlacementError describes a failed placement. It unwraps to one of the sentinel errors.
type PlacementError struct {
	Stage   Stage
	Player  int // -1 when no single player is responsible
	Attempt int
	Err     error
}

func (e *PlacementError) Error() string {
	if e.Player >= 0 {
		return fmt.Sprintf("%s failed for player %d (attempt %d): %v", e.Stage, e.Player, e.Attempt, e.Err)
	}
	return fmt.Sprintf("%s failed (attempt %d): %v", e.Stage, e.Attempt, e.Err)
}

func (e *PlacementError) Unwrap() error { return e.Err }
