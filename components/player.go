package components

import (
	"github.com/automoto/scrollwalk/motion"
	"github.com/yohamta/donburi"
)

// PlayerData is the movement context for the camera-locked character.
type PlayerData struct {
	motion.State
	Moving bool // whether the last tick applied any movement
}

var Player = donburi.NewComponentType[PlayerData]()
