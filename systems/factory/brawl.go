package factory

import (
	"github.com/automoto/streetbrawl/assets"
	"github.com/automoto/streetbrawl/components"
	"github.com/automoto/streetbrawl/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Brawl is a populated world ready to be stepped.
type Brawl struct {
	ECS      *ecs.ECS
	Pipeline *systems.Pipeline
	Player   *donburi.Entry
}

// NewBrawl creates the singletons and the player. The player is driven by
// provider, the enemies by AI.
func NewBrawl(ecs *ecs.ECS, seed int64, repo *assets.Repository, provider components.IntentProvider) *Brawl {
	CreateWorld(ecs, seed)
	CreateSpace(ecs)
	CreateCamera(ecs)
	CreateDirector(ecs)
	player := CreatePlayer(ecs, repo, provider)
	return &Brawl{
		ECS:      ecs,
		Pipeline: systems.NewPipeline(EnemySpawner(repo)),
		Player:   player,
	}
}

// Step runs one simulation tick.
func (b *Brawl) Step() {
	b.Pipeline.Step(b.ECS)
}
