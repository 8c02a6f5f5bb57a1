package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// BackgroundData holds the pre-mirrored background tile.
type BackgroundData struct {
	Mirror *ebiten.Image
}

var Background = donburi.NewComponentType[BackgroundData]()
