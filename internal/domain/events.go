package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies an engine event on the message broker
type EventType string

const (
	EventStarsEarned        EventType = "stars.earned"
	EventStarsSpent         EventType = "stars.spent"
	EventPowerConsumed      EventType = "power.consumed"
	EventPowerCancelled     EventType = "power.cancelled"
	EventChallengeCreated   EventType = "challenge.created"
	EventChallengeResolved  EventType = "challenge.resolved"
	EventJudgeAssigned      EventType = "judge.assigned"
)

// Event is an engine fact published after a successful commit. Consumers
// (notifications, analytics) treat it as at-least-once.
type Event struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	SquadID   string                 `json:"squad_id"`
	PlayerID  string                 `json:"player_id,omitempty"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// NewEvent creates an engine event with a fresh id
func NewEvent(eventType EventType, squadID, playerID string, payload map[string]interface{}, now time.Time) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		SquadID:   squadID,
		PlayerID:  playerID,
		Payload:   payload,
		Timestamp: now,
	}
}
