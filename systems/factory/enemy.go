package factory

import (
	"github.com/automoto/streetbrawl/archetypes"
	"github.com/automoto/streetbrawl/assets"
	"github.com/automoto/streetbrawl/components"
	"github.com/automoto/streetbrawl/gamemath"
	"github.com/automoto/streetbrawl/systems"
	"github.com/automoto/streetbrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a thug at pos that keeps offset from the player. The AI
// draws from the world's random source.
func CreateEnemy(ecs *ecs.ECS, repo *assets.Repository, pos, offset gamemath.Vec2) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	bindAnimations(enemy, repo, EnemyAnimations)
	components.Controller.SetValue(enemy, components.ControllerData{Provider: systems.NewAIController(nil)})
	components.AI.SetValue(enemy, components.AIData{TargetOffset: offset})
	systems.InitFighter(ecs.World, enemy, systems.EnemySpec(pos))
	systems.AttachBody(ecs.World, enemy, tags.ResolvEnemy)

	return enemy
}

// EnemySpawner adapts CreateEnemy for the wave director.
func EnemySpawner(repo *assets.Repository) systems.SpawnFunc {
	return func(e *ecs.ECS, pos, offset gamemath.Vec2) *donburi.Entry {
		return CreateEnemy(e, repo, pos, offset)
	}
}
