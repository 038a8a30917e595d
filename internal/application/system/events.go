package system

import "github.com/younwookim/platformer/internal/domain/entity"

// Event reports something that happened during a simulation step.
// Adapters (audio, effects, logging) react to events; the core never calls them.
type Event interface {
	isEvent()
}

// CoinCollectedEvent is emitted once per coin picked up
type CoinCollectedEvent struct {
	Coin  entity.Coin
	Score int // Score after the pickup
}

func (CoinCollectedEvent) isEvent() {}

// PlayerHitEvent is emitted when the player touches an enemy
type PlayerHitEvent struct {
	LivesLeft int
}

func (PlayerHitEvent) isEvent() {}

// GameOverEvent is emitted on the transition into the game-over state
type GameOverEvent struct {
	Won   bool
	Score int
}

func (GameOverEvent) isEvent() {}

// RestartEvent is emitted when a finished session is restarted
type RestartEvent struct{}

func (RestartEvent) isEvent() {}
