package factory_test

import (
	"testing"

	"github.com/automoto/streetbrawl/assets"
	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/gamemath"
	"github.com/automoto/streetbrawl/systems"
	"github.com/automoto/streetbrawl/systems/factory"
	"github.com/automoto/streetbrawl/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newBrawl() *factory.Brawl {
	return factory.NewBrawl(ecs.NewECS(donburi.NewWorld()), 1, assets.DefaultRepository(), systems.Idle{})
}

func TestNewBrawlPopulatesWorld(t *testing.T) {
	b := newBrawl()
	w := b.ECS.World

	p, ok := systems.PlayerEntry(w)
	require.True(t, ok)
	assert.Equal(t, b.Player.Entity(), p.Entity())
	assert.Equal(t, gamemath.V(cfg.Player.SpawnX, cfg.Player.SpawnY), components.Transform.Get(p).Position)
	assert.Equal(t, cfg.Player.Health, components.Health.Get(p).Current)
	assert.Equal(t, cfg.StateIdle, components.State.Get(p).Current)

	require.NotNil(t, systems.HUDState(w))
	require.NotNil(t, systems.DirectorState(w))
	assert.Equal(t, cfg.Wave.FirstTriggerX, systems.DirectorState(w).NextTriggerX)
	require.NotNil(t, systems.BodySpace(w))
	assert.Len(t, systems.BodySpace(w).Objects(), 1)
	assert.Zero(t, systems.CameraX(b.ECS))
	assert.Empty(t, systems.Enemies(w))
}

func TestCreateEnemyAddsBody(t *testing.T) {
	b := newBrawl()
	en := factory.CreateEnemy(b.ECS, assets.DefaultRepository(), gamemath.V(600, 450), gamemath.V(75, -15))

	assert.True(t, en.HasComponent(tags.Enemy))
	assert.Equal(t, cfg.Enemy.Health, components.Health.Get(en).Current)
	assert.Equal(t, cfg.DirectionLeft, components.Fighter.Get(en).Facing)
	assert.Equal(t, gamemath.V(75, -15), components.AI.Get(en).TargetOffset)

	obj := components.Object.Get(en).Object
	require.NotNil(t, obj)
	assert.True(t, obj.HasTags(tags.ResolvFighter, tags.ResolvEnemy))
	assert.Len(t, systems.BodySpace(b.ECS.World).Objects(), 2)
}

func TestSpawnOrderIsStable(t *testing.T) {
	b := newBrawl()
	spawn := factory.EnemySpawner(assets.DefaultRepository())
	var want []donburi.Entity
	for i := 0; i < 5; i++ {
		want = append(want, spawn(b.ECS, gamemath.V(float64(600+i*100), 450), gamemath.Vec2{}).Entity())
	}

	var got []donburi.Entity
	for _, en := range systems.Enemies(b.ECS.World) {
		got = append(got, en.Entity())
	}
	assert.Equal(t, want, got)
	assert.Equal(t, b.Player.Entity(), systems.Roster(b.ECS.World)[0].Entity())
}
