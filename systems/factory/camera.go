package factory

import (
	"github.com/automoto/scrollwalk/archetypes"
	"github.com/automoto/scrollwalk/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
