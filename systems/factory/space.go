package factory

import (
	"github.com/automoto/streetbrawl/archetypes"
	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/systems"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the broadphase grid for character bodies.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	w, h := systems.SpaceSize()
	spaceData := resolv.NewSpace(w, h, cfg.Separation.CellSize, cfg.Separation.CellSize)
	components.Space.Set(space, spaceData)
	return space
}
