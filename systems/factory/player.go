package factory

import (
	"github.com/automoto/scrollwalk/archetypes"
	"github.com/automoto/scrollwalk/assets"
	"github.com/automoto/scrollwalk/components"
	cfg "github.com/automoto/scrollwalk/config"
	"github.com/automoto/scrollwalk/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the character, slicing its animations out of sheet.
func CreatePlayer(ecs *ecs.ECS, sheet *ebiten.Image) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Player.SetValue(player, components.PlayerData{
		State: motion.NewState(),
	})

	fw, fh := assets.FrameSize(sheet, cfg.Sheet)
	components.Animation.SetValue(player, components.AnimationData{
		Set:         assets.CharacterAnimations(sheet, cfg.Sheet, cfg.Movement.FrameInterval),
		FrameWidth:  fw,
		FrameHeight: fh,
		Direction:   cfg.Down,
	})

	return player
}
