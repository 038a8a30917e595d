package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/platformer/internal/domain/entity"
)

func TestEventTypes(t *testing.T) {
	events := []Event{
		CoinCollectedEvent{Coin: entity.NewCoin(1, 2, 15), Score: 50},
		PlayerHitEvent{LivesLeft: 2},
		GameOverEvent{Won: true, Score: 250},
		RestartEvent{},
	}

	for _, e := range events {
		e.isEvent() // Should not panic
	}

	coin, ok := events[0].(CoinCollectedEvent)
	assert.True(t, ok)
	assert.Equal(t, 50, coin.Score)
	assert.Equal(t, 1.0, coin.Coin.X)
}
