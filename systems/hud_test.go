package systems_test

import (
	"testing"

	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoBlinksOutsideWaves(t *testing.T) {
	b := newBrawl(t, nil)
	hud := systems.HUDState(b.ECS.World)

	b.Step()
	assert.True(t, hud.GoVisible)
	assert.Equal(t, []cfg.SoundID{cfg.SoundGoBell}, systems.DrainSFX(b.ECS.World))

	// 36 ticks is 600ms, the first hidden half cycle
	steps(b, 35)
	assert.False(t, hud.GoVisible)
	assert.Empty(t, systems.DrainSFX(b.ECS.World))

	steps(b, 36)
	assert.True(t, hud.GoVisible)
	assert.Equal(t, []cfg.SoundID{cfg.SoundGoBell}, systems.DrainSFX(b.ECS.World), "rings once per visible edge")
}

func TestGoHiddenDuringWave(t *testing.T) {
	b := newBrawl(t, nil)
	b.Step()
	require.True(t, systems.HUDState(b.ECS.World).GoVisible)

	systems.DirectorState(b.ECS.World).Active = true
	systems.UpdateHUD(b.ECS)
	assert.False(t, systems.HUDState(b.ECS.World).GoVisible)
}

func TestHUDTargetsClosestEnemyInRange(t *testing.T) {
	b := newBrawl(t, nil)
	far := spawnDummy(b, cfg.Player.SpawnX+300, cfg.Player.SpawnY, 100)
	near := spawnDummy(b, cfg.Player.SpawnX+200, cfg.Player.SpawnY, 100)
	spawnDummy(b, cfg.Player.SpawnX+600, cfg.Player.SpawnY, 100)

	systems.UpdateHUD(b.ECS)
	hud := systems.HUDState(b.ECS.World)
	require.True(t, hud.HasTarget)
	assert.Equal(t, near.Entity(), hud.Target)

	systems.RemoveCharacter(b.ECS.World, near)
	systems.UpdateHUD(b.ECS)
	assert.Equal(t, far.Entity(), hud.Target)

	systems.RemoveCharacter(b.ECS.World, far)
	systems.UpdateHUD(b.ECS)
	assert.False(t, hud.HasTarget, "nothing within range")
}

func TestComboDisplayFades(t *testing.T) {
	b := newBrawl(t, nil)
	hud := systems.HUDState(b.ECS.World)
	hud.ArmCombo(3, hud.ComboPos, cfg.Combat.ComboDisplay, cfg.Display.ComboPopTicks,
		cfg.Display.ComboFadeTicks, cfg.Display.ComboPopScale)
	assert.Equal(t, cfg.Display.ComboPopScale, hud.ComboScale)

	for i := 0; i < cfg.Display.ComboPopTicks; i++ {
		hud.StepCombo()
	}
	assert.InDelta(t, 1, hud.ComboScale, 1e-6)
	assert.Equal(t, 1.0, hud.ComboAlpha)

	for hud.ComboTimer > 0 {
		hud.StepCombo()
	}
	assert.Zero(t, hud.ComboAlpha)
	assert.Equal(t, 3, hud.ComboCount)
}
