package archetypes

import (
	"github.com/automoto/streetbrawl/components"
	cfg "github.com/automoto/streetbrawl/config"
	"github.com/automoto/streetbrawl/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	character = []donburi.IComponentType{
		components.Transform,
		components.Motion,
		components.Fighter,
		components.Locomotion,
		components.Health,
		components.State,
		components.Death,
		components.Flash,
		components.Animation,
		components.Intent,
		components.Controller,
		components.Object,
	}
	Player = newArchetype(
		append([]donburi.IComponentType{tags.Player}, character...)...,
	)
	Enemy = newArchetype(
		append([]donburi.IComponentType{tags.Enemy, components.AI}, character...)...,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Director = newArchetype(
		components.Director,
	)
	// World holds the session singletons.
	World = newArchetype(
		components.Clock,
		components.RNG,
		components.Audio,
		components.HUD,
		components.Session,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
