package systems_test

import (
	"testing"

	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/gamemath"
	"github.com/automoto/streetbrawl/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPauseFreezesSimulation(t *testing.T) {
	b := newBrawl(t, hold{Move: gamemath.V(1, 0), Face: 1})
	steps(b, 5)
	now := systems.NowMs(b.ECS.World)
	at := pos(b.Player)

	systems.TogglePause(b.ECS)
	steps(b, 30)
	assert.Equal(t, now, systems.NowMs(b.ECS.World))
	assert.Equal(t, at, pos(b.Player))

	systems.TogglePause(b.ECS)
	b.Step()
	assert.Greater(t, systems.NowMs(b.ECS.World), now)
	assert.Greater(t, pos(b.Player).X, at.X)
}

func TestRestartOnlyWhenPausedOrOver(t *testing.T) {
	b := newBrawl(t, nil)
	systems.RequestRestart(b.ECS)
	assert.False(t, systems.Session(b.ECS).Restart)

	systems.TogglePause(b.ECS)
	systems.RequestRestart(b.ECS)
	assert.True(t, systems.Session(b.ECS).Restart)
}

func TestGameOverCannotPause(t *testing.T) {
	b := newBrawl(t, nil)
	systems.Session(b.ECS).GameOver = true
	systems.TogglePause(b.ECS)
	assert.False(t, systems.Session(b.ECS).Paused)
}

func TestRestartResetsBrawl(t *testing.T) {
	b := newBrawl(t, nil)
	setPos(b.Player, cfg.Wave.FirstTriggerX+100, 480)
	steps(b, 2)
	require.True(t, systems.DirectorState(b.ECS.World).Active)
	require.NotEmpty(t, systems.Enemies(b.ECS.World))
	components.Health.Get(b.Player).Current = 40
	systems.CameraState(b.ECS.World).Position.X = 700

	systems.TogglePause(b.ECS)
	systems.RequestRestart(b.ECS)
	b.Step()

	s := systems.Session(b.ECS)
	assert.False(t, s.Paused)
	assert.False(t, s.Restart)
	assert.Equal(t, cfg.Player.Health, components.Health.Get(b.Player).Current)
	assert.Equal(t, gamemath.V(cfg.Player.SpawnX, cfg.Player.SpawnY), pos(b.Player))
	assert.Empty(t, systems.Enemies(b.ECS.World))
	assert.Len(t, systems.BodySpace(b.ECS.World).Objects(), 1)
	assert.Zero(t, systems.CameraX(b.ECS))

	dir := systems.DirectorState(b.ECS.World)
	assert.False(t, dir.Active)
	assert.Zero(t, dir.Wave)
	assert.Equal(t, cfg.Wave.FirstTriggerX, dir.NextTriggerX)
}

func TestRestartAfterGameOver(t *testing.T) {
	b := newBrawl(t, nil)
	systems.ApplyDamage(b.ECS.World, b.Player, 1000, false, gamemath.V(1, 0))
	steps(b, 400)
	require.True(t, systems.Session(b.ECS).GameOver)

	systems.RequestRestart(b.ECS)
	b.Step()

	assert.False(t, systems.Session(b.ECS).GameOver)
	d := components.Death.Get(b.Player)
	assert.False(t, d.Dead)
	assert.True(t, d.Visible)
	assert.Equal(t, cfg.StateIdle, components.State.Get(b.Player).Current)
}
