package systems

import (
	"github.com/automoto/scrollwalk/components"
	"github.com/automoto/scrollwalk/motion"
	"github.com/automoto/scrollwalk/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera snaps the visible background window to the player's scroll offset.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	camera.Position.X = float64(motion.PixelOrigin(player.Offset.X))
	camera.Position.Y = float64(motion.PixelOrigin(player.Offset.Y))
}
