package states

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/GeneralsMapGen/internal/game/events"
)

// Transition represents a phase change in the history
type Transition struct {
	From      Phase
	To        Phase
	Timestamp time.Time
	Reason    string
}

// Machine tracks the phase of one generation run and records every transition
type Machine struct {
	mu             sync.RWMutex
	runID          string
	current        Phase
	history        []Transition
	maxHistorySize int
	publisher      events.Publisher
	logger         zerolog.Logger
}

// NewMachine creates a machine in PhaseIdle. publisher may be nil.
func NewMachine(runID string, publisher events.Publisher, logger zerolog.Logger) *Machine {
	return &Machine{
		runID:          runID,
		current:        PhaseIdle,
		history:        make([]Transition, 0, 8),
		maxHistorySize: 100,
		publisher:      publisher,
		logger:         logger.With().Str("component", "PhaseMachine").Logger(),
	}
}

// Current returns the current phase
func (m *Machine) Current() Phase {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.current
}

// TransitionTo moves to target if the current phase allows it
func (m *Machine) TransitionTo(target Phase, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.transitionLocked(target, reason)
}

func (m *Machine) transitionLocked(target Phase, reason string) error {
	if !m.current.CanTransitionTo(target) {
		return fmt.Errorf("invalid transition from %s to %s", m.current, target)
	}

	previous := m.current
	m.current = target
	m.addToHistory(Transition{
		From:      previous,
		To:        target,
		Timestamp: time.Now(),
		Reason:    reason,
	})

	if m.publisher != nil {
		m.publisher.Publish(events.NewPhaseChangedEvent(m.runID, previous.String(), target.String(), reason))
	}

	m.logger.Debug().
		Str("from_phase", previous.String()).
		Str("to_phase", target.String()).
		Str("reason", reason).
		Msg("Phase transition completed")

	return nil
}

// Fail moves to PhaseFailed from any non-terminal phase
func (m *Machine) Fail(err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.transitionLocked(PhaseFailed, err.Error())
}

// addToHistory adds a transition to the history, maintaining max size
func (m *Machine) addToHistory(transition Transition) {
	m.history = append(m.history, transition)

	if len(m.history) > m.maxHistorySize {
		m.history = m.history[len(m.history)-m.maxHistorySize:]
	}
}

// History returns a copy of the transition history
func (m *Machine) History() []Transition {
	m.mu.RLock()
	defer m.mu.RUnlock()

	history := make([]Transition, len(m.history))
	copy(history, m.history)
	return history
}

// CanTransitionTo checks if a transition to the target phase is allowed
func (m *Machine) CanTransitionTo(target Phase) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.current.CanTransitionTo(target)
}
