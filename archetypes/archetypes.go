package archetypes

import (
	"github.com/automoto/scrollwalk/components"
	cfg "github.com/automoto/scrollwalk/config"
	"github.com/automoto/scrollwalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Animation,
	)
	Background = newArchetype(
		tags.Background,
		components.Background,
	)
	Joystick = newArchetype(
		tags.Joystick,
		components.Joystick,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
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
