package playing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/domain/entity"
)

func createTestWorld() *system.World {
	cfg := createTestConfig()
	return system.NewWorld(cfg, &entity.Level{
		Platforms: []entity.Platform{entity.NewPlatform(0, 580, cfg.World.Width, 20)},
		Coins:     []entity.Coin{entity.NewCoin(2000, 100, 15)},
	})
}

func TestNewEffects_StarFieldIsFixed(t *testing.T) {
	cfg := createTestConfig()

	a := NewEffects(cfg)
	b := NewEffects(cfg)

	require.Len(t, a.stars, cfg.Render.StarCount)
	assert.Equal(t, a.stars, b.stars)
	for _, s := range a.stars {
		assert.GreaterOrEqual(t, s.X, 0.0)
		assert.Less(t, s.X, float64(cfg.Display.ScreenWidth))
		assert.Less(t, s.Y, cfg.GroundTop())
	}
}

func TestNewEffects_SeedChangesStars(t *testing.T) {
	cfg := createTestConfig()
	other := createTestConfig()
	other.Render.StarSeed = 7

	assert.NotEqual(t, NewEffects(cfg).stars, NewEffects(other).stars)
}

func TestEffects_TrailRingBuffer(t *testing.T) {
	cfg := createTestConfig()
	cfg.Feedback.TrailLength = 3
	e := NewEffects(cfg)
	w := createTestWorld()

	for i := 0; i < 5; i++ {
		w.Player.X = float64(100 + i*10)
		e.Update(w)
	}

	trail := e.Trail()
	require.Len(t, trail, 3)
	assert.Equal(t, 120.0+10, trail[0].X, "oldest kept point")
	assert.Equal(t, 140.0+10, trail[2].X, "newest point")
	assert.Equal(t, 5, e.tick)

	e.Reset()
	assert.Empty(t, e.Trail())
}

func TestEffects_NoTrail(t *testing.T) {
	cfg := createTestConfig()
	cfg.Feedback.TrailLength = 0
	e := NewEffects(cfg)

	e.Update(createTestWorld())

	assert.Empty(t, e.Trail())
}

func TestEffects_ShakeOnlyWhileFramesRemain(t *testing.T) {
	e := NewEffects(createTestConfig())

	dx, dy := e.Shake(0, 6)
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	dx, dy = e.Shake(10, 6)
	assert.LessOrEqual(t, dx, 6.0)
	assert.GreaterOrEqual(t, dy, -6.0)
}

func TestStarAlpha_Range(t *testing.T) {
	s := star{Phase: 1.3}
	for tick := 0; tick < 500; tick++ {
		a := StarAlpha(s, tick)
		assert.GreaterOrEqual(t, a, 0.3-1e-9)
		assert.LessOrEqual(t, a, 1.0+1e-9)
	}
}

func TestCoinPulse_Range(t *testing.T) {
	for tick := 0; tick < 500; tick++ {
		v := CoinPulse(tick)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestSkyColor(t *testing.T) {
	assert.Equal(t, skyTop, SkyColor(0, 600))
	assert.Equal(t, skyBottom, SkyColor(600, 600))
	assert.Equal(t, skyBottom, SkyColor(900, 600), "clamped below the screen")
	assert.Equal(t, skyTop, SkyColor(10, 0))

	mid := SkyColor(300, 600)
	assert.Greater(t, mid.R, skyTop.R)
	assert.Less(t, mid.R, skyBottom.R)
}

func TestBlink(t *testing.T) {
	assert.True(t, Blink(0))
	assert.True(t, Blink(1))
	assert.False(t, Blink(3))
	assert.True(t, Blink(6))
}
