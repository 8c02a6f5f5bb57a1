package factory

import (
	"github.com/automoto/scrollwalk/archetypes"
	"github.com/automoto/scrollwalk/components"
	"github.com/automoto/scrollwalk/motion"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateJoystick builds the four touch regions for a width x height viewport
// and registers their bounds in space.
func CreateJoystick(ecs *ecs.ECS, space *resolv.Space, width, height int) *donburi.Entry {
	joystick := archetypes.Joystick.Spawn(ecs)

	regions := motion.NewRegions(width, height)
	for _, r := range regions {
		r.Bounds.Data = joystick
		space.Add(r.Bounds)
	}

	components.Joystick.SetValue(joystick, components.JoystickData{Regions: regions})
	return joystick
}
