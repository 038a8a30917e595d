package system

import (
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// PickupSystem resolves enemy contact and coin pickup
type PickupSystem struct {
	config *config.GameConfig
}

// NewPickupSystem creates a new pickup system
func NewPickupSystem(cfg *config.GameConfig) *PickupSystem {
	return &PickupSystem{config: cfg}
}

// Update checks hazards then coins against the player and appends the
// resulting events. It must run after player and enemies have moved.
func (s *PickupSystem) Update(w *World, events []Event) []Event {
	events = s.checkHazards(w, events)

	// A loss this frame takes priority over coins the player is touching
	if w.Over() {
		return events
	}

	events = s.collectCoins(w, events)
	if w.Won() {
		w.State = state.StateGameOver
		events = append(events, GameOverEvent{Won: true, Score: w.Score})
	}
	return events
}

// checkHazards handles enemy contact.
// In lives mode each contact costs a life and respawns the player;
// otherwise any contact ends the game.
func (s *PickupSystem) checkHazards(w *World, events []Event) []Event {
	for _, enemy := range w.Enemies {
		if !w.Player.Overlaps(enemy.Rect) {
			continue
		}

		if !w.LivesMode {
			w.State = state.StateGameOver
			events = append(events, PlayerHitEvent{LivesLeft: 0})
			return append(events, GameOverEvent{Won: false, Score: w.Score})
		}

		w.Lives--
		w.RespawnPlayer()
		w.ShakeFrames = s.config.Feedback.ShakeFrames
		events = append(events, PlayerHitEvent{LivesLeft: w.Lives})

		if w.Lives <= 0 {
			// no shake on the game-over screen; it would never count down
			w.Lives = 0
			w.ShakeFrames = 0
			w.State = state.StateGameOver
			return append(events, GameOverEvent{Won: false, Score: w.Score})
		}
	}
	return events
}

// collectCoins removes every coin the player overlaps.
// Indices are gathered first and the slice is filtered afterwards so the
// collection is never modified while it is being scanned.
func (s *PickupSystem) collectCoins(w *World, events []Event) []Event {
	var collected []int
	for i := range w.Coins {
		if w.Player.Overlaps(w.Coins[i].Rect) {
			collected = append(collected, i)
		}
	}
	if len(collected) == 0 {
		return events
	}

	remaining := w.Coins[:0]
	next := 0
	for i, coin := range w.Coins {
		if next < len(collected) && collected[next] == i {
			next++
			w.Score += s.config.Scoring.CoinValue
			events = append(events, CoinCollectedEvent{Coin: coin, Score: w.Score})
			continue
		}
		remaining = append(remaining, coin)
	}
	w.Coins = remaining
	return events
}
