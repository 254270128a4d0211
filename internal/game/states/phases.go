package states

import (
	"fmt"
	"slices"
)

// Phase is a stage of one map generation run
type Phase int

const (
	// PhaseIdle - no run in progress
	PhaseIdle Phase = iota

	// PhaseTerrain - lakes and mountain veins are being drawn
	PhaseTerrain

	// PhaseRegionAnalysis - connected buildable areas are being computed
	PhaseRegionAnalysis

	// PhasePlacement - headquarters are being placed
	PhasePlacement

	// PhaseComplete - every player has a headquarters
	PhaseComplete

	// PhaseFailed - the run was aborted
	PhaseFailed
)

// String returns the string representation of a Phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseTerrain:
		return "Terrain"
	case PhaseRegionAnalysis:
		return "RegionAnalysis"
	case PhasePlacement:
		return "Placement"
	case PhaseComplete:
		return "Complete"
	case PhaseFailed:
		return "Failed"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if the phase ends a run
func (p Phase) IsTerminal() bool {
	return p == PhaseComplete || p == PhaseFailed
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p Phase) AllowedTransitions() []Phase {
	switch p {
	case PhaseIdle:
		return []Phase{PhaseTerrain, PhaseFailed}
	case PhaseTerrain:
		return []Phase{PhaseRegionAnalysis, PhaseFailed}
	case PhaseRegionAnalysis:
		return []Phase{PhasePlacement, PhaseFailed}
	case PhasePlacement:
		return []Phase{PhaseComplete, PhaseFailed}
	case PhaseComplete, PhaseFailed:
		return []Phase{PhaseIdle}
	default:
		return []Phase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p Phase) CanTransitionTo(target Phase) bool {
	return slices.Contains(p.AllowedTransitions(), target)
}
