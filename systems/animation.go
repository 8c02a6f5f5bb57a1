package systems

import (
	"github.com/automoto/scrollwalk/components"
	"github.com/automoto/scrollwalk/motion"
	"github.com/automoto/scrollwalk/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimation picks the direction and clock the character frame is sampled at.
// Must run AFTER UpdateMovement.
func UpdateAnimation(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	anim := components.Animation.Get(playerEntry)
	input := getOrCreateInput(ecs)

	anim.Direction, anim.Clock = motion.Select(player.State, input.Motion)
}
