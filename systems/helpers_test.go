package systems_test

import (
	"testing"

	"github.com/automoto/streetbrawl/assets"
	"github.com/automoto/streetbrawl/components"
	"github.com/automoto/streetbrawl/gamemath"
	"github.com/automoto/streetbrawl/systems"
	"github.com/automoto/streetbrawl/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testSeed = 12345

// hold returns the same intent on every tick.
type hold components.IntentData

func (h hold) Intent(donburi.World, *donburi.Entry) components.IntentData {
	return components.IntentData(h)
}

func newBrawl(t *testing.T, provider components.IntentProvider) *factory.Brawl {
	t.Helper()
	if provider == nil {
		provider = systems.Idle{}
	}
	return factory.NewBrawl(ecs.NewECS(donburi.NewWorld()), testSeed, assets.DefaultRepository(), provider)
}

// spawnDummy creates an enemy that never acts on its own.
func spawnDummy(b *factory.Brawl, x, y float64, hp int) *donburi.Entry {
	en := factory.CreateEnemy(b.ECS, assets.DefaultRepository(), gamemath.V(x, y), gamemath.Vec2{})
	components.Controller.SetValue(en, components.ControllerData{Provider: systems.Idle{}})
	h := components.Health.Get(en)
	h.Current, h.Max = hp, hp
	return en
}

func setController(en *donburi.Entry, p components.IntentProvider) {
	components.Controller.SetValue(en, components.ControllerData{Provider: p})
}

func steps(b *factory.Brawl, n int) {
	for i := 0; i < n; i++ {
		b.Step()
	}
}

func pos(en *donburi.Entry) gamemath.Vec2 {
	return components.Transform.Get(en).Position
}

func setPos(en *donburi.Entry, x, y float64) {
	components.Transform.Get(en).Position = gamemath.V(x, y)
	systems.SyncBody(en)
}
