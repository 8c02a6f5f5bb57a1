package factory

import (
	"github.com/automoto/scrollwalk/archetypes"
	"github.com/automoto/scrollwalk/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateBackground(ecs *ecs.ECS, mirror *ebiten.Image) *donburi.Entry {
	bg := archetypes.Background.Spawn(ecs)
	components.Background.SetValue(bg, components.BackgroundData{Mirror: mirror})
	return bg
}
