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

func TestWaveStartsPastTrigger(t *testing.T) {
	b := newBrawl(t, nil)
	dir := systems.DirectorState(b.ECS.World)
	require.Equal(t, cfg.Wave.FirstTriggerX, dir.NextTriggerX)

	setPos(b.Player, cfg.Wave.FirstTriggerX+100, 480)
	b.Step()

	assert.True(t, dir.Active)
	assert.Equal(t, 1, dir.Wave)
	enemies := systems.Enemies(b.ECS.World)
	require.Len(t, enemies, 1, "the first enemy arrives on the trigger tick")
	total := dir.ToSpawn + 1
	assert.GreaterOrEqual(t, total, cfg.Wave.MinEnemies)
	assert.LessOrEqual(t, total, cfg.Wave.MaxEnemies)

	b.Step()
	assert.Len(t, systems.Enemies(b.ECS.World), 1)

	p := pos(enemies[0])
	cam := systems.CameraX(b.ECS)
	assert.GreaterOrEqual(t, p.Y, cfg.MinDepth())
	assert.LessOrEqual(t, p.Y, cfg.MaxDepth())
	assert.True(t, p.X < cam || p.X > cam+float64(cfg.Screen.Width), "spawns off screen")
	assert.Contains(t, formationOffsets(), components.AI.Get(enemies[0]).TargetOffset)
}

func formationOffsets() []gamemath.Vec2 {
	var out []gamemath.Vec2
	for _, f := range cfg.Wave.Formation {
		out = append(out, gamemath.V(f[0], f[1]))
	}
	return out
}

func TestSpawnCadence(t *testing.T) {
	b := newBrawl(t, nil)
	setPos(b.Player, cfg.Wave.FirstTriggerX+100, 480)
	b.Step()
	dir := systems.DirectorState(b.ECS.World)
	dir.ToSpawn = 3

	b.Step()
	require.Len(t, systems.Enemies(b.ECS.World), 1)
	for _, en := range systems.Enemies(b.ECS.World) {
		setController(en, systems.Idle{})
	}

	steps(b, cfg.Wave.SpawnInterval-2)
	assert.Len(t, systems.Enemies(b.ECS.World), 1)
	b.Step()
	assert.Len(t, systems.Enemies(b.ECS.World), 2)
}

func TestArenaLock(t *testing.T) {
	b := newBrawl(t, nil)
	setPos(b.Player, cfg.Wave.FirstTriggerX+100, 480)
	b.Step()
	cam := systems.CameraX(b.ECS)

	setPos(b.Player, cam+5000, 480)
	b.Step()
	assert.Equal(t, cam+float64(cfg.Screen.Width)-cfg.Wave.ArenaMargin, pos(b.Player).X)

	setPos(b.Player, cam-300, 480)
	b.Step()
	assert.Equal(t, cam+cfg.Wave.ArenaMargin, pos(b.Player).X)
	assert.Equal(t, cam, systems.CameraX(b.ECS), "camera holds during a wave")
}

func TestWaveLocksArenaOnTriggerTick(t *testing.T) {
	b := newBrawl(t, nil)
	setPos(b.Player, 5000, 480)

	b.Step()

	assert.True(t, systems.DirectorState(b.ECS.World).Active)
	assert.Equal(t, float64(cfg.Screen.Width)-cfg.Wave.ArenaMargin, pos(b.Player).X)
	assert.Len(t, systems.Enemies(b.ECS.World), 1)
}

func TestFreeRoamLeftEdge(t *testing.T) {
	b := newBrawl(t, nil)
	setPos(b.Player, 0, 480)
	b.Step()
	assert.Equal(t, cfg.Wave.FreeRoamMargin, pos(b.Player).X)
}

func TestWaveCompletes(t *testing.T) {
	b := newBrawl(t, nil)
	setPos(b.Player, cfg.Wave.FirstTriggerX+100, 480)
	b.Step()
	dir := systems.DirectorState(b.ECS.World)
	require.True(t, dir.Active)
	total := dir.ToSpawn + len(systems.Enemies(b.ECS.World))

	spawned := 0
	for i := 0; i < 100 && dir.Active; i++ {
		for _, en := range systems.Enemies(b.ECS.World) {
			spawned++
			systems.RemoveCharacter(b.ECS.World, en)
		}
		b.Step()
	}

	assert.False(t, dir.Active)
	assert.Equal(t, total, spawned)
	assert.Zero(t, dir.ToSpawn)
	assert.Equal(t, 1, dir.Wave)
	gap := dir.NextTriggerX - pos(b.Player).X
	assert.Contains(t, []float64{500, 750, 1000}, gap)
}

func TestCameraFollowsRight(t *testing.T) {
	b := newBrawl(t, nil)
	setPos(b.Player, 600, 480)

	systems.UpdateCamera(b.ECS)
	assert.InDelta(t, (600-480)*cfg.Camera.FollowSmoothing, systems.CameraX(b.ECS), 1e-9)

	setPos(b.Player, 100, 480)
	before := systems.CameraX(b.ECS)
	systems.UpdateCamera(b.ECS)
	assert.Equal(t, before, systems.CameraX(b.ECS), "never scrolls back")
}

func TestCameraStaticDuringWave(t *testing.T) {
	b := newBrawl(t, nil)
	systems.DirectorState(b.ECS.World).Active = true
	setPos(b.Player, 900, 480)

	systems.UpdateCamera(b.ECS)
	assert.Zero(t, systems.CameraX(b.ECS))
}
