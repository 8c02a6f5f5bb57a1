package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the visible window into the background.
type CameraData struct {
	Position math.Vec2 // top-left corner in whole background pixels
}

var Camera = donburi.NewComponentType[CameraData]()
