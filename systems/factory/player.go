package factory

import (
	"github.com/automoto/streetbrawl/archetypes"
	"github.com/automoto/streetbrawl/assets"
	"github.com/automoto/streetbrawl/components"
	"github.com/automoto/streetbrawl/systems"
	"github.com/automoto/streetbrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player at its start position. provider may be a
// *systems.HumanInput or any scripted source.
func CreatePlayer(ecs *ecs.ECS, repo *assets.Repository, provider components.IntentProvider) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	bindAnimations(player, repo, PlayerAnimations)
	components.Controller.SetValue(player, components.ControllerData{Provider: provider})
	systems.InitFighter(ecs.World, player, systems.PlayerSpec())
	systems.AttachBody(ecs.World, player, tags.ResolvPlayer)

	return player
}
