package components

import (
	"github.com/automoto/scrollwalk/assets/animations"
	cfg "github.com/automoto/scrollwalk/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Set         animations.Set[*ebiten.Image]
	FrameWidth  int
	FrameHeight int

	// Selected for the current tick
	Direction cfg.Direction
	Clock     float64
}

// Frame returns the image selected for the current tick.
func (a *AnimationData) Frame() *ebiten.Image {
	return a.Set.KeyFrame(a.Direction, a.Clock)
}

var Animation = donburi.NewComponentType[AnimationData]()
