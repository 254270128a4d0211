package events

import (
	"github.com/mitchelldurbincs/GeneralsMapGen/internal/game/core"
)

// Event type constants
const (
	TypeMapGenerated           = "map.generated"
	TypeRegionAnalyzed         = "region.analyzed"
	TypeHeadquartersPlaced     = "hq.placed"
	TypePlacementAttemptFailed = "placement.attempt_failed"
	TypePlacementFailed        = "placement.failed"
	TypePhaseChanged           = "phase.changed"
)

// MapGeneratedEvent is published once the terrain of a run is complete
type MapGeneratedEvent struct {
	BaseEvent
	Size      core.Size
	Topology  string
	Mountains int
	Water     int
}

// NewMapGeneratedEvent creates a new MapGeneratedEvent
func NewMapGeneratedEvent(runID string, size core.Size, topology string, mountains, water int) *MapGeneratedEvent {
	return &MapGeneratedEvent{
		BaseEvent: newBaseEvent(TypeMapGenerated, runID),
		Size:      size,
		Topology:  topology,
		Mountains: mountains,
		Water:     water,
	}
}

// RegionAnalyzedEvent reports the result of the connectivity analysis
type RegionAnalyzedEvent struct {
	BaseEvent
	Regions         int
	LargestAreaSize int
}

// NewRegionAnalyzedEvent creates a new RegionAnalyzedEvent
func NewRegionAnalyzedEvent(runID string, regions, largest int) *RegionAnalyzedEvent {
	return &RegionAnalyzedEvent{
		BaseEvent:       newBaseEvent(TypeRegionAnalyzed, runID),
		Regions:         regions,
		LargestAreaSize: largest,
	}
}

// HeadquartersPlacedEvent is published for every committed HQ
type HeadquartersPlacedEvent struct {
	BaseEvent
	PlayerID int
	Position core.Coordinate
	Attempts int
}

// NewHeadquartersPlacedEvent creates a new HeadquartersPlacedEvent
func NewHeadquartersPlacedEvent(runID string, playerID int, pos core.Coordinate, attempts int) *HeadquartersPlacedEvent {
	return &HeadquartersPlacedEvent{
		BaseEvent: newBaseEvent(TypeHeadquartersPlaced, runID),
		PlayerID:  playerID,
		Position:  pos,
		Attempts:  attempts,
	}
}

// PlacementAttemptFailedEvent is published when one full placement attempt fails
type PlacementAttemptFailedEvent struct {
	BaseEvent
	Attempt int
	Reason  string
}

// NewPlacementAttemptFailedEvent creates a new PlacementAttemptFailedEvent
func NewPlacementAttemptFailedEvent(runID string, attempt int, reason string) *PlacementAttemptFailedEvent {
	return &PlacementAttemptFailedEvent{
		BaseEvent: newBaseEvent(TypePlacementAttemptFailed, runID),
		Attempt:   attempt,
		Reason:    reason,
	}
}

// PlacementFailedEvent is published when a run gives up on placing HQs
type PlacementFailedEvent struct {
	BaseEvent
	Stage  string
	Reason string
}

// NewPlacementFailedEvent creates a new PlacementFailedEvent
func NewPlacementFailedEvent(runID, stage, reason string) *PlacementFailedEvent {
	return &PlacementFailedEvent{
		BaseEvent: newBaseEvent(TypePlacementFailed, runID),
		Stage:     stage,
		Reason:    reason,
	}
}

// PhaseChangedEvent is published on every generation phase transition
type PhaseChangedEvent struct {
	BaseEvent
	From   string
	To     string
	Reason string
}

// NewPhaseChangedEvent creates a new PhaseChangedEvent
func NewPhaseChangedEvent(runID, from, to, reason string) *PhaseChangedEvent {
	return &PhaseChangedEvent{
		BaseEvent: newBaseEvent(TypePhaseChanged, runID),
		From:      from,
		To:        to,
		Reason:    reason,
	}
}
