package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayer(t *testing.T) {
	player := NewPlayer(100, 560, 20)

	require.NotNil(t, player)
	assert.Equal(t, 100.0, player.X)
	assert.Equal(t, 560.0, player.Y)
	assert.Equal(t, 20.0, player.W)
	assert.Equal(t, 20.0, player.H)
	assert.Equal(t, 580.0, player.Bottom())
	assert.Equal(t, 0.0, player.VY)
	assert.Equal(t, 0, player.JumpCount)
	assert.False(t, player.OnGround)
	assert.Equal(t, 10.0, player.Radius())
}

func TestPlayer_Reset(t *testing.T) {
	player := NewPlayer(100, 560, 20)
	player.X = 900
	player.Y = 42
	player.VY = 7.5
	player.OnGround = true
	player.JumpCount = 2

	player.Reset(100, 560)

	assert.Equal(t, 100.0, player.X)
	assert.Equal(t, 560.0, player.Y)
	assert.Equal(t, 0.0, player.VY)
	assert.Equal(t, 0, player.JumpCount)
	assert.False(t, player.OnGround)
}

func TestPlayer_CanJump(t *testing.T) {
	player := NewPlayer(0, 0, 20)

	assert.True(t, player.CanJump(MaxJumps))

	player.JumpCount = 1
	assert.True(t, player.CanJump(MaxJumps), "double jump is allowed")

	player.JumpCount = 2
	assert.False(t, player.CanJump(MaxJumps))
}

func TestPlayer_Land(t *testing.T) {
	player := NewPlayer(0, 575, 20)
	player.VY = 3.2
	player.JumpCount = 2

	player.Land(580)

	assert.Equal(t, 580.0, player.Bottom())
	assert.Equal(t, 0.0, player.VY)
	assert.True(t, player.OnGround)
	assert.Equal(t, 0, player.JumpCount)
}
