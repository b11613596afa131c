package events

import (
	"coup-toolbox/internal/player"
)

// Event is a marker interface for all event types.
type Event interface{}

// Listener defines an interface for any component that wants to react to events.
type Listener interface {
	HandleEvent(e Event)
}

// Manager (or Event Bus) manages listeners and dispatches events.
type Manager struct {
	listeners []Listener
}

func NewManager() *Manager {
	return &Manager{}
}
func (em *Manager) Subscribe(l Listener) {
	em.listeners = append(em.listeners, l)
}
func (em *Manager) Publish(e Event) {
	for _, l := range em.listeners {
		l.HandleEvent(e)
	}
}

// --- Event Types ---

// GameReadyEvent is published once the builder has seated every player.
type GameReadyEvent struct {
	GameID  string
	Players []player.View
}

type PlayerJoinedEvent struct {
	GameID string
	Player player.View
}

type TurnStartEvent struct {
	TurnNumber int
	Round      int
	PlayerName string
}

type RoundStartEvent struct {
	Round int
}

// ActionAppliedEvent follows every successful gather, tax, bribe, arrest, sanction or coup.
type ActionAppliedEvent struct {
	Actor  string
	Target string // Empty for self-directed actions
	Action player.Action
}

type AbilityUsedEvent struct {
	Actor    string
	Role     player.Role
	Target   string
	Revealed int // Spy only
}

// PassiveTriggeredEvent is published when a Merchant collects at turn start.
type PassiveTriggeredEvent struct {
	PlayerName string
	Coins      int
}

type TurnSkippedEvent struct {
	PlayerName string
}

type PlayerEliminatedEvent struct {
	PlayerName string
	By         string
}

type PlayerRestoredEvent struct {
	PlayerName string
	By         string
	Index      int
}

type GameOverEvent struct {
	GameID string
	Winner string
	Turns  int
	Rounds int
}
