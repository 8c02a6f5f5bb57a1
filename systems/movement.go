package systems

import (
	"github.com/automoto/scrollwalk/components"
	cfg "github.com/automoto/scrollwalk/config"
	"github.com/automoto/scrollwalk/motion"
	"github.com/automoto/scrollwalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DeltaTime is the elapsed time covered by one Update call.
func DeltaTime() float64 {
	return 1 / float64(ebiten.TPS())
}

// UpdateMovement scrolls the background and advances the animation clock.
func UpdateMovement(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	input := getOrCreateInput(ecs)

	player.Moving = motion.Step(&player.State, input.Motion, DeltaTime(), cfg.Movement.Speed)
}
