package factory

import (
	"math/rand"

	"github.com/automoto/streetbrawl/archetypes"
	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWorld creates the session singletons. seed feeds the shared random
// source used by the director and the AI.
func CreateWorld(ecs *ecs.ECS, seed int64) *donburi.Entry {
	world := archetypes.World.Spawn(ecs)
	components.RNG.SetValue(world, components.RNGData{Rand: rand.New(rand.NewSource(seed))})
	hud := components.HUD.Get(world)
	hud.ClearFeedback()
	return world
}

// CreateDirector creates the idle wave director.
func CreateDirector(ecs *ecs.ECS) *donburi.Entry {
	director := archetypes.Director.Spawn(ecs)
	components.Director.SetValue(director, components.DirectorData{
		NextTriggerX: cfg.Wave.FirstTriggerX,
	})
	return director
}
