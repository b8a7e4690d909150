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

func TestDoubleJumpCap(t *testing.T) {
	jump := components.IntentData{Jump: true}
	b := newBrawl(t, &systems.Scripted{Steps: []components.IntentData{jump, jump, jump}})

	steps(b, 3)

	f := components.Fighter.Get(b.Player)
	tr := components.Transform.Get(b.Player)
	assert.Equal(t, cfg.Physics.MaxJumps, f.Jumps)
	assert.Equal(t, cfg.StateJump, components.State.Get(b.Player).Current)
	assert.InDelta(t, cfg.Physics.JumpPower-cfg.Physics.Gravity, tr.VZ, 1e-9, "third jump refused")
}

func TestJumpLandsBackToIdle(t *testing.T) {
	b := newBrawl(t, &systems.Scripted{Steps: []components.IntentData{{Jump: true}}})

	steps(b, 80)

	tr := components.Transform.Get(b.Player)
	f := components.Fighter.Get(b.Player)
	assert.True(t, tr.Grounded())
	assert.Zero(t, tr.VZ)
	assert.Zero(t, f.Jumps)
	assert.Zero(t, f.JumpAnimTimer)
	assert.Equal(t, cfg.StateIdle, components.State.Get(b.Player).Current)
}

func TestWalkAndFriction(t *testing.T) {
	right := components.IntentData{Move: gamemath.V(1, 0), Face: 1}
	script := make([]components.IntentData, 30)
	for i := range script {
		script[i] = right
	}
	b := newBrawl(t, &systems.Scripted{Steps: script})

	for i := 0; i < 30; i++ {
		b.Step()
		assert.LessOrEqual(t, components.Motion.Get(b.Player).Velocity.Magnitude(), cfg.Player.Locomotion.MaxSpeed+1e-9)
	}
	assert.Equal(t, cfg.StateWalk, components.State.Get(b.Player).Current)
	assert.Greater(t, pos(b.Player).X, cfg.Player.SpawnX)

	for i := 0; i < 60; i++ {
		b.Step()
	}
	assert.Equal(t, cfg.StateIdle, components.State.Get(b.Player).Current)
	assert.True(t, components.Motion.Get(b.Player).Velocity.IsZero(), "friction snaps to rest")
}

func TestRunningRaisesSpeedCap(t *testing.T) {
	b := newBrawl(t, hold{Move: gamemath.V(1, 0), Face: 1, Running: true})

	steps(b, 30)

	v := components.Motion.Get(b.Player).Velocity.Magnitude()
	assert.Greater(t, v, cfg.Player.Locomotion.MaxSpeed)
	assert.LessOrEqual(t, v, cfg.Player.Locomotion.MaxSpeed*cfg.Player.Locomotion.RunSpeedMult+1e-9)
}

func TestAttackRootsPlayer(t *testing.T) {
	b := newBrawl(t, hold{Attack: true, Move: gamemath.V(1, 0), Face: 1})

	b.Step()

	require.True(t, components.State.Get(b.Player).Attacking(cfg.AttackCombo))
	assert.True(t, components.Motion.Get(b.Player).Velocity.IsZero())
	assert.Equal(t, cfg.Player.SpawnX, pos(b.Player).X)
}

func TestLockedStatesIgnoreIntent(t *testing.T) {
	b := newBrawl(t, hold{Jump: true, Attack: true})
	components.State.Get(b.Player).Set(cfg.StateStun, 10)

	b.Step()

	st := components.State.Get(b.Player)
	assert.Equal(t, cfg.StateStun, st.Current)
	assert.Nil(t, st.Attack)
	assert.Zero(t, components.Transform.Get(b.Player).VZ)
	assert.Equal(t, components.IntentData{}, *components.Intent.Get(b.Player))
}

func TestLeavingAttackClearsVariant(t *testing.T) {
	st := &components.StateData{}
	st.SetAttack(cfg.AttackCombo, 5)
	require.NotNil(t, st.Attack)

	st.Set(cfg.StateIdle, 0)
	assert.Nil(t, st.Attack)
	assert.False(t, st.Is(cfg.StateAttack, cfg.StateStun, cfg.StateKnockback, cfg.StateDown))
}

func TestKnockbackLandsDownThenRecovers(t *testing.T) {
	b := newBrawl(t, nil)
	en := spawnDummy(b, 600, 450, 100)
	systems.ApplyDamage(b.ECS.World, en, 10, true, gamemath.V(1, 0))

	var sawDown bool
	for i := 0; i < 200; i++ {
		b.Step()
		st := components.State.Get(en)
		if st.Current == cfg.StateDown {
			sawDown = true
			assert.True(t, components.Transform.Get(en).Grounded())
			assert.True(t, components.Motion.Get(en).Knockback.IsZero())
		}
	}
	assert.True(t, sawDown)
	assert.Equal(t, cfg.StateIdle, components.State.Get(en).Current)
	assert.Greater(t, pos(en).X, 600.0)
}

func TestDeathSequenceRemovesEnemy(t *testing.T) {
	b := newBrawl(t, nil)
	en := spawnDummy(b, 600, 450, 10)
	systems.ApplyDamage(b.ECS.World, en, 10, false, gamemath.V(1, 0))
	require.True(t, components.Death.Get(en).Dead)

	var blinked bool
	for i := 0; i < 400 && en.Valid(); i++ {
		d := components.Death.Get(en)
		if !d.Visible {
			blinked = true
		}
		b.Step()
	}
	assert.True(t, blinked)
	assert.False(t, en.Valid())
	assert.Empty(t, systems.Enemies(b.ECS.World))
	assert.Len(t, systems.BodySpace(b.ECS.World).Objects(), 1, "only the player body remains")
}

func TestPlayerDeathEndsGame(t *testing.T) {
	b := newBrawl(t, nil)
	systems.ApplyDamage(b.ECS.World, b.Player, 1000, false, gamemath.V(-1, 0))

	steps(b, 400)

	require.True(t, components.Death.Get(b.Player).Finished)
	assert.True(t, systems.Session(b.ECS).GameOver)
	assert.True(t, b.Player.Valid(), "the player is never pruned")

	now := systems.NowMs(b.ECS.World)
	b.Step()
	assert.Equal(t, now, systems.NowMs(b.ECS.World), "game over halts the clock")
}

func TestPressesDuringLockAreDropped(t *testing.T) {
	tests := []struct {
		name  string
		state cfg.StateID
		press func(s *systems.InputSignal)
	}{
		{name: "attack while stunned", state: cfg.StateStun, press: func(s *systems.InputSignal) { s.Attack = true }},
		{name: "special while knocked back", state: cfg.StateKnockback, press: func(s *systems.InputSignal) { s.Special = true }},
		{name: "jump while down", state: cfg.StateDown, press: func(s *systems.InputSignal) { s.Jump = true }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := &systems.InputSignal{}
			b := newBrawl(t, &systems.HumanInput{Signal: sig})
			components.State.Get(b.Player).Set(tt.state, 10)
			tt.press(sig)

			b.Step()
			assert.Equal(t, systems.InputSignal{}, *sig, "pending edges cleared")

			steps(b, 30)
			st := components.State.Get(b.Player)
			f := components.Fighter.Get(b.Player)
			assert.Equal(t, cfg.StateIdle, st.Current)
			assert.Equal(t, int64(-1), f.LastAttackMs, "no attack replayed")
			assert.Zero(t, f.Jumps)
			assert.Equal(t, cfg.Player.Health, components.Health.Get(b.Player).Current, "special not paid")
		})
	}
}

func TestDeathFinishesAfterBlinkDuration(t *testing.T) {
	b := newBrawl(t, nil)
	en := spawnDummy(b, 600, 450, 100)
	d := components.Death.Get(en)
	d.Dead, d.Visible = true, true
	components.State.Get(en).Set(cfg.StateDown, 0)

	for i := 0; i < cfg.Death.BlinkDuration; i++ {
		systems.UpdateCharacter(b.ECS.World, en)
	}
	require.True(t, components.Transform.Get(en).Grounded())
	assert.Equal(t, cfg.Death.BlinkDuration, d.BlinkTimer)
	assert.False(t, d.Finished)

	systems.UpdateCharacter(b.ECS.World, en)
	assert.True(t, d.Finished)
	assert.Equal(t, cfg.StateDown, components.State.Get(en).Current)
}
