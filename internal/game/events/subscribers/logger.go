package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/GeneralsMapGen/internal/game/events"
)

// LoggerSubscriber logs generation events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	logEvent := ls.logger.WithLevel(ls.levelFor(event)).
		Str("event_type", event.Type()).
		Str("run_id", event.RunID()).
		Time("timestamp", event.Timestamp())

	switch e := event.(type) {
	case *events.MapGeneratedEvent:
		logEvent.
			Int("map_width", e.Size.W).
			Int("map_height", e.Size.H).
			Str("topology", e.Topology).
			Int("mountains", e.Mountains).
			Int("water", e.Water)

	case *events.RegionAnalyzedEvent:
		logEvent.
			Int("regions", e.Regions).
			Int("largest_area", e.LargestAreaSize)

	case *events.HeadquartersPlacedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("x", e.Position.X).
			Int("y", e.Position.Y).
			Int("attempts", e.Attempts)

	case *events.PlacementAttemptFailedEvent:
		logEvent.
			Int("attempt", e.Attempt).
			Str("reason", e.Reason)

	case *events.PlacementFailedEvent:
		logEvent.
			Str("stage", e.Stage).
			Str("reason", e.Reason)

	case *events.PhaseChangedEvent:
		logEvent.
			Str("from_phase", e.From).
			Str("to_phase", e.To).
			Str("reason", e.Reason)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Map generation event")
}

// levelFor raises failures to at least warn, whatever the configured level.
func (ls *LoggerSubscriber) levelFor(event events.Event) zerolog.Level {
	level := ls.logLevel
	switch event.Type() {
	case events.TypePlacementAttemptFailed:
		if level < zerolog.WarnLevel {
			level = zerolog.WarnLevel
		}
	case events.TypePlacementFailed:
		if level < zerolog.ErrorLevel {
			level = zerolog.ErrorLevel
		}
	}
	return level
}
